package payroll

import (
	"fmt"

	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Frequency is how often an employee is paid
type Frequency string

const (
	FrequencyWeekly      Frequency = "WEEKLY"
	FrequencyFortnightly Frequency = "FORTNIGHTLY"
	FrequencySemiMonthly Frequency = "SEMI_MONTHLY"
	FrequencyMonthly     Frequency = "MONTHLY"
)

// PeriodsPerYear returns the number of pay periods in a fiscal year, or 0 for
// an unknown frequency.
func (f Frequency) PeriodsPerYear() int {
	switch f {
	case FrequencyWeekly:
		return 52
	case FrequencyFortnightly:
		return 26
	case FrequencySemiMonthly:
		return 24
	case FrequencyMonthly:
		return 12
	}
	return 0
}

// IsValid checks if the frequency is a known value
func (f Frequency) IsValid() bool {
	return f.PeriodsPerYear() > 0
}

// TaxBracket is one band of the annual income tax schedule. UpTo is the
// annual upper bound of the band; zero means unbounded.
type TaxBracket struct {
	UpTo decimal.Decimal
	Rate decimal.Decimal
}

// RateTable holds the statutory rates and ceilings used by the calculator.
// All amounts are annual.
type RateTable struct {
	NISEmployeeRate  decimal.Decimal
	NISEmployerRate  decimal.Decimal
	NISAnnualCeiling decimal.Decimal

	IncomeTaxBrackets []TaxBracket

	NHTEmployeeRate decimal.Decimal
	NHTEmployerRate decimal.Decimal

	EducationTaxEmployeeRate decimal.Decimal
	EducationTaxEmployerRate decimal.Decimal

	HEARTEmployerRate decimal.Decimal
}

// DefaultRateTable returns the current statutory rate table
func DefaultRateTable() RateTable {
	return RateTable{
		NISEmployeeRate:  decimal.RequireFromString("0.03"),
		NISEmployerRate:  decimal.RequireFromString("0.03"),
		NISAnnualCeiling: decimal.RequireFromString("5000000.00"),
		IncomeTaxBrackets: []TaxBracket{
			{UpTo: decimal.RequireFromString("1500096.00"), Rate: decimal.Zero},
			{UpTo: decimal.RequireFromString("6000000.00"), Rate: decimal.RequireFromString("0.25")},
			{UpTo: decimal.Zero, Rate: decimal.RequireFromString("0.30")},
		},
		NHTEmployeeRate:          decimal.RequireFromString("0.02"),
		NHTEmployerRate:          decimal.RequireFromString("0.03"),
		EducationTaxEmployeeRate: decimal.RequireFromString("0.0225"),
		EducationTaxEmployerRate: decimal.RequireFromString("0.035"),
		HEARTEmployerRate:        decimal.RequireFromString("0.03"),
	}
}

// Validate checks that rates are fractions and brackets are ascending with
// an unbounded top band.
func (r RateTable) Validate() error {
	rates := map[string]decimal.Decimal{
		"nis_employee_rate":           r.NISEmployeeRate,
		"nis_employer_rate":           r.NISEmployerRate,
		"nht_employee_rate":           r.NHTEmployeeRate,
		"nht_employer_rate":           r.NHTEmployerRate,
		"education_tax_employee_rate": r.EducationTaxEmployeeRate,
		"education_tax_employer_rate": r.EducationTaxEmployerRate,
		"heart_employer_rate":         r.HEARTEmployerRate,
	}
	for name, rate := range rates {
		if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return shared.NewValidationError("INVALID_RATE_TABLE", fmt.Sprintf("%s must be in [0, 1)", name))
		}
	}
	if !r.NISEmployeeRate.IsPositive() {
		return shared.NewValidationError("INVALID_RATE_TABLE", "nis_employee_rate must be positive")
	}
	if !r.NISAnnualCeiling.IsPositive() {
		return shared.NewValidationError("INVALID_RATE_TABLE", "nis_annual_ceiling must be positive")
	}
	if len(r.IncomeTaxBrackets) == 0 {
		return shared.NewValidationError("INVALID_RATE_TABLE", "at least one income tax bracket is required")
	}

	prev := decimal.Zero
	last := len(r.IncomeTaxBrackets) - 1
	for i, b := range r.IncomeTaxBrackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return shared.NewValidationError("INVALID_RATE_TABLE", fmt.Sprintf("bracket %d rate must be in [0, 1)", i+1))
		}
		if i == last {
			if !b.UpTo.IsZero() {
				return shared.NewValidationError("INVALID_RATE_TABLE", "the top income tax bracket must be unbounded")
			}
			break
		}
		if !b.UpTo.GreaterThan(prev) {
			return shared.NewValidationError("INVALID_RATE_TABLE", fmt.Sprintf("bracket %d bound must exceed the previous bound", i+1))
		}
		prev = b.UpTo
	}
	return nil
}
