package payroll

import (
	"strings"

	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/erp/ledgercore/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PensionPlan is an employee's enrolment in a pension scheme. Contributions
// to approved plans are deducted before income tax.
type PensionPlan struct {
	shared.CompanyAggregateRoot
	EmployeeID   uuid.UUID
	Provider     string
	EmployeeRate decimal.Decimal
	EmployerRate decimal.Decimal
	IsApproved   bool
	IsActive     bool
}

// NewPensionPlan creates an active pension plan
func NewPensionPlan(companyID, employeeID uuid.UUID, provider string, employeeRate, employerRate decimal.Decimal, approved bool) (*PensionPlan, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_EMPLOYEE", "Employee ID cannot be empty")
	}
	one := decimal.NewFromInt(1)
	if employeeRate.IsNegative() || employeeRate.GreaterThan(one) || employerRate.IsNegative() || employerRate.GreaterThan(one) {
		return nil, shared.NewValidationError("INVALID_PENSION_RATE", "Pension rates must be between 0 and 1")
	}
	return &PensionPlan{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		EmployeeID:           employeeID,
		Provider:             strings.TrimSpace(provider),
		EmployeeRate:         employeeRate,
		EmployerRate:         employerRate,
		IsApproved:           approved,
		IsActive:             true,
	}, nil
}

// EmployeeAmount is the greater of the explicit contribution and the plan rate applied to gross
func (p *PensionPlan) EmployeeAmount(explicit, gross decimal.Decimal) decimal.Decimal {
	return decimal.Max(valueobject.RoundMoney(explicit), valueobject.PercentOf(gross, p.EmployeeRate))
}

// EmployerAmount is the employer's matching contribution
func (p *PensionPlan) EmployerAmount(gross decimal.Decimal) decimal.Decimal {
	return valueobject.PercentOf(gross, p.EmployerRate)
}
