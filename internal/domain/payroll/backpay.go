package payroll

import (
	"time"

	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BackPayInput describes a retroactive salary increase
type BackPayInput struct {
	EmployeeID    uuid.UUID
	OldSalary     decimal.Decimal
	NewSalary     decimal.Decimal
	EffectiveDate time.Time
	ThroughDate   time.Time
	Frequency     Frequency
}

// BackPayResult is a lump-sum preview of what is owed for the elapsed periods
type BackPayResult struct {
	EmployeeID           uuid.UUID
	PeriodsCount         int
	PerPeriodSalaryDelta decimal.Decimal

	GrossBackPay      decimal.Decimal
	IncomeTaxDelta    decimal.Decimal
	NISDelta          decimal.Decimal
	NHTDelta          decimal.Decimal
	EducationTaxDelta decimal.Decimal
	TotalDeductions   decimal.Decimal
	NetBackPay        decimal.Decimal

	EmployerNISDelta          decimal.Decimal
	EmployerNHTDelta          decimal.Decimal
	EmployerEducationTaxDelta decimal.Decimal
	EmployerHEARTDelta        decimal.Decimal
	EmployerTotalDelta        decimal.Decimal
}

// CountPeriods returns the number of complete pay periods from from up to through.
func CountPeriods(f Frequency, from, through time.Time) int {
	from, through = dateOnly(from), dateOnly(through)
	if !through.After(from) {
		return 0
	}
	switch f {
	case FrequencyMonthly:
		return completeMonths(from, through)
	case FrequencySemiMonthly:
		months := completeMonths(from, through)
		n := months * 2
		if daysBetween(from.AddDate(0, months, 0), through) >= 15 {
			n++
		}
		return n
	case FrequencyWeekly:
		return daysBetween(from, through) / 7
	case FrequencyFortnightly:
		return daysBetween(from, through) / 14
	}
	return 0
}

func completeMonths(from, through time.Time) int {
	months := monthsBetween(from, through)
	if through.Day() < from.Day() {
		months--
	}
	return max(months, 0)
}

// CalculateBackPay runs the calculator at both salaries for a single period
// and scales the differences by the number of elapsed periods.
func (c *Calculator) CalculateBackPay(in BackPayInput) (BackPayResult, error) {
	if !in.Frequency.IsValid() {
		return BackPayResult{}, shared.NewValidationError("INVALID_FREQUENCY", "unknown pay frequency")
	}
	if in.OldSalary.IsNegative() {
		return BackPayResult{}, shared.NewValidationError("INVALID_SALARY", "old salary cannot be negative")
	}
	if !in.NewSalary.GreaterThan(in.OldSalary) {
		return BackPayResult{}, shared.NewValidationError("INVALID_SALARY", "new salary must exceed old salary")
	}
	if in.EffectiveDate.IsZero() || in.ThroughDate.IsZero() {
		return BackPayResult{}, shared.NewValidationError("INVALID_DATE_RANGE", "effective and through dates are required")
	}
	if in.ThroughDate.Before(in.EffectiveDate) {
		return BackPayResult{}, shared.NewValidationError("INVALID_DATE_RANGE", "through date cannot precede the effective date")
	}

	before, err := c.Calculate(CalculationInput{BasicSalary: in.OldSalary, Frequency: in.Frequency})
	if err != nil {
		return BackPayResult{}, err
	}
	after, err := c.Calculate(CalculationInput{BasicSalary: in.NewSalary, Frequency: in.Frequency})
	if err != nil {
		return BackPayResult{}, err
	}

	periods := CountPeriods(in.Frequency, in.EffectiveDate, in.ThroughDate)
	n := decimal.NewFromInt(int64(periods))
	delta := func(a, b decimal.Decimal) decimal.Decimal {
		return a.Sub(b).Mul(n)
	}

	return BackPayResult{
		EmployeeID:           in.EmployeeID,
		PeriodsCount:         periods,
		PerPeriodSalaryDelta: after.GrossPay.Sub(before.GrossPay),

		GrossBackPay:      delta(after.GrossPay, before.GrossPay),
		IncomeTaxDelta:    delta(after.Employee.IncomeTax, before.Employee.IncomeTax),
		NISDelta:          delta(after.Employee.NIS, before.Employee.NIS),
		NHTDelta:          delta(after.Employee.NHT, before.Employee.NHT),
		EducationTaxDelta: delta(after.Employee.EducationTax, before.Employee.EducationTax),
		TotalDeductions:   delta(after.Employee.Total, before.Employee.Total),
		NetBackPay:        delta(after.NetPay, before.NetPay),

		EmployerNISDelta:          delta(after.Employer.NIS, before.Employer.NIS),
		EmployerNHTDelta:          delta(after.Employer.NHT, before.Employer.NHT),
		EmployerEducationTaxDelta: delta(after.Employer.EducationTax, before.Employer.EducationTax),
		EmployerHEARTDelta:        delta(after.Employer.HEART, before.Employer.HEART),
		EmployerTotalDelta:        delta(after.Employer.Total, before.Employer.Total),
	}, nil
}
