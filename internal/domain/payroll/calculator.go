package payroll

import (
	"fmt"

	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/erp/ledgercore/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// CalculationInput is one employee's pay for one period.
//
// YTDGross and YTDNIS seed the social insurance ceiling. When PeriodNumber is
// positive, income tax is computed cumulatively from YTDTaxable and
// YTDIncomeTax; otherwise the period is taxed on its own.
type CalculationInput struct {
	BasicSalary         decimal.Decimal
	Overtime            decimal.Decimal
	Bonus               decimal.Decimal
	Commission          decimal.Decimal
	Allowances          decimal.Decimal
	PensionContribution decimal.Decimal
	OtherDeductions     decimal.Decimal
	Frequency           Frequency

	YTDGross     decimal.Decimal
	YTDNIS       decimal.Decimal
	YTDTaxable   decimal.Decimal
	YTDIncomeTax decimal.Decimal
	PeriodNumber int
}

// EmployeeDeductions are withheld from the employee's gross pay
type EmployeeDeductions struct {
	IncomeTax    decimal.Decimal
	NIS          decimal.Decimal
	NHT          decimal.Decimal
	EducationTax decimal.Decimal
	Other        decimal.Decimal
	Total        decimal.Decimal
}

// EmployerContributions are paid by the employer on top of gross pay
type EmployerContributions struct {
	NIS          decimal.Decimal
	NHT          decimal.Decimal
	EducationTax decimal.Decimal
	HEART        decimal.Decimal
	Total        decimal.Decimal
}

// CalculationResult is the outcome of a payroll calculation
type CalculationResult struct {
	GrossPay      decimal.Decimal
	InsurableWage decimal.Decimal
	TaxableIncome decimal.Decimal
	Employee      EmployeeDeductions
	Employer      EmployerContributions
	NetPay        decimal.Decimal
}

// Calculator computes statutory payroll deductions from a rate table.
// It performs no I/O and is safe for concurrent use.
type Calculator struct {
	rates RateTable
}

// NewCalculator creates a calculator after validating the rate table
func NewCalculator(rates RateTable) (*Calculator, error) {
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{rates: rates}, nil
}

// Rates returns the rate table in use
func (c *Calculator) Rates() RateTable {
	return c.rates
}

// Calculate computes gross pay, statutory deductions, employer contributions
// and net pay. Every derived amount is rounded half-up to two places.
func (c *Calculator) Calculate(in CalculationInput) (CalculationResult, error) {
	if err := in.validate(); err != nil {
		return CalculationResult{}, err
	}

	gross := valueobject.RoundMoney(valueobject.Sum(in.BasicSalary, in.Overtime, in.Bonus, in.Commission, in.Allowances))
	if !gross.IsPositive() {
		return zeroResult(), nil
	}

	r := c.rates
	pension := valueobject.RoundMoney(in.PensionContribution)
	other := valueobject.RoundMoney(in.OtherDeductions)

	insurable := c.insurableWage(gross, in.YTDGross, in.YTDNIS)
	nisEmployee := valueobject.PercentOf(insurable, r.NISEmployeeRate)
	nisEmployer := valueobject.PercentOf(insurable, r.NISEmployerRate)

	taxable := valueobject.MaxZero(gross.Sub(nisEmployee).Sub(pension))
	incomeTax := c.incomeTax(taxable, in)

	nhtEmployee := valueobject.PercentOf(gross, r.NHTEmployeeRate)
	nhtEmployer := valueobject.PercentOf(gross, r.NHTEmployerRate)

	// Both sides share the employee-side base.
	eduEmployee := valueobject.PercentOf(taxable, r.EducationTaxEmployeeRate)
	eduEmployer := valueobject.PercentOf(taxable, r.EducationTaxEmployerRate)

	heart := valueobject.PercentOf(gross, r.HEARTEmployerRate)

	employee := EmployeeDeductions{
		IncomeTax:    incomeTax,
		NIS:          nisEmployee,
		NHT:          nhtEmployee,
		EducationTax: eduEmployee,
		Other:        other,
		Total:        valueobject.Sum(incomeTax, nisEmployee, nhtEmployee, eduEmployee, other),
	}
	employer := EmployerContributions{
		NIS:          nisEmployer,
		NHT:          nhtEmployer,
		EducationTax: eduEmployer,
		HEART:        heart,
		Total:        valueobject.Sum(nisEmployer, nhtEmployer, eduEmployer, heart),
	}

	return CalculationResult{
		GrossPay:      gross,
		InsurableWage: insurable,
		TaxableIncome: taxable,
		Employee:      employee,
		Employer:      employer,
		NetPay:        gross.Sub(employee.Total),
	}, nil
}

// insurableWage is the part of gross still under the annual NIS ceiling.
// Headroom is the lesser of the wage headroom and the contribution headroom
// implied by YTD contributions.
func (c *Calculator) insurableWage(gross, ytdGross, ytdNIS decimal.Decimal) decimal.Decimal {
	r := c.rates
	wageHeadroom := r.NISAnnualCeiling.Sub(ytdGross)
	maxContribution := r.NISAnnualCeiling.Mul(r.NISEmployeeRate)
	contributionHeadroom := maxContribution.Sub(ytdNIS).Div(r.NISEmployeeRate)

	remaining := valueobject.MaxZero(decimal.Min(wageHeadroom, contributionHeadroom))
	return valueobject.RoundMoney(decimal.Min(gross, remaining))
}

func (c *Calculator) incomeTax(taxable decimal.Decimal, in CalculationInput) decimal.Decimal {
	periods := decimal.NewFromInt(int64(in.Frequency.PeriodsPerYear()))

	if in.PeriodNumber > 0 {
		fraction := decimal.NewFromInt(int64(in.PeriodNumber)).Div(periods)
		cumulative := in.YTDTaxable.Add(taxable)
		due := c.bracketTax(cumulative, fraction)
		return valueobject.MaxZero(due.Sub(in.YTDIncomeTax))
	}
	return c.bracketTax(taxable, decimal.NewFromInt(1).Div(periods))
}

// bracketTax applies the progressive schedule with every bound scaled by fraction.
func (c *Calculator) bracketTax(income, fraction decimal.Decimal) decimal.Decimal {
	tax := decimal.Zero
	lower := decimal.Zero
	for _, b := range c.rates.IncomeTaxBrackets {
		if !income.GreaterThan(lower) {
			break
		}
		upper := income
		if !b.UpTo.IsZero() {
			upper = decimal.Min(income, valueobject.RoundMoney(b.UpTo.Mul(fraction)))
		}
		if upper.GreaterThan(lower) {
			tax = tax.Add(valueobject.PercentOf(upper.Sub(lower), b.Rate))
		}
		if b.UpTo.IsZero() {
			break
		}
		lower = valueobject.RoundMoney(b.UpTo.Mul(fraction))
	}
	return tax
}

func (in CalculationInput) validate() error {
	if !in.Frequency.IsValid() {
		return shared.NewValidationError("INVALID_FREQUENCY", fmt.Sprintf("unknown pay frequency %q", in.Frequency))
	}
	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"basic salary", in.BasicSalary},
		{"overtime", in.Overtime},
		{"bonus", in.Bonus},
		{"commission", in.Commission},
		{"allowances", in.Allowances},
		{"pension contribution", in.PensionContribution},
		{"other deductions", in.OtherDeductions},
		{"YTD gross", in.YTDGross},
		{"YTD NIS", in.YTDNIS},
		{"YTD taxable", in.YTDTaxable},
		{"YTD income tax", in.YTDIncomeTax},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return shared.NewValidationError("INVALID_PAY_COMPONENT", a.name+" cannot be negative")
		}
	}
	if in.PeriodNumber < 0 || in.PeriodNumber > in.Frequency.PeriodsPerYear() {
		return shared.NewValidationError("INVALID_PERIOD_NUMBER",
			fmt.Sprintf("period number must be between 0 and %d", in.Frequency.PeriodsPerYear()))
	}
	return nil
}

func zeroResult() CalculationResult {
	z := decimal.Zero
	return CalculationResult{
		GrossPay:      z,
		InsurableWage: z,
		TaxableIncome: z,
		Employee:      EmployeeDeductions{IncomeTax: z, NIS: z, NHT: z, EducationTax: z, Other: z, Total: z},
		Employer:      EmployerContributions{NIS: z, NHT: z, EducationTax: z, HEART: z, Total: z},
		NetPay:        z,
	}
}
