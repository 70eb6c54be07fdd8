package payroll

import (
	"strings"

	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/erp/ledgercore/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LoanDeduction is a standing deduction that repays an employee loan
type LoanDeduction struct {
	shared.CompanyAggregateRoot
	EmployeeID       uuid.UUID
	Description      string
	MonthlyDeduction decimal.Decimal
	RemainingBalance decimal.Decimal
	TotalPaid        decimal.Decimal
	IsActive         bool
}

// NewLoanDeduction creates an active loan deduction
func NewLoanDeduction(companyID, employeeID uuid.UUID, description string, monthly, balance decimal.Decimal) (*LoanDeduction, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_EMPLOYEE", "Employee ID cannot be empty")
	}
	if !monthly.IsPositive() {
		return nil, shared.NewValidationError("INVALID_LOAN_DEDUCTION", "Monthly deduction must be positive")
	}
	if !balance.IsPositive() {
		return nil, shared.NewValidationError("INVALID_LOAN_BALANCE", "Loan balance must be positive")
	}
	return &LoanDeduction{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		EmployeeID:           employeeID,
		Description:          strings.TrimSpace(description),
		MonthlyDeduction:     valueobject.RoundMoney(monthly),
		RemainingBalance:     valueobject.RoundMoney(balance),
		TotalPaid:            decimal.Zero,
		IsActive:             true,
	}, nil
}

// PeriodAmount is the deduction for one pay period, scaled from the monthly
// amount and capped at the remaining balance.
func (l *LoanDeduction) PeriodAmount(f Frequency) decimal.Decimal {
	if !l.IsActive || !f.IsValid() {
		return decimal.Zero
	}
	perPeriod := valueobject.RoundMoney(l.MonthlyDeduction.Mul(decimal.NewFromInt(12)).
		Div(decimal.NewFromInt(int64(f.PeriodsPerYear()))))
	return decimal.Min(perPeriod, valueobject.MaxZero(l.RemainingBalance))
}

// Apply records a repayment and deactivates the loan once it is paid off
func (l *LoanDeduction) Apply(amount decimal.Decimal) error {
	if !l.IsActive {
		return shared.NewStateConflictError("LOAN_INACTIVE", "Loan deduction is not active")
	}
	if amount.IsNegative() || amount.GreaterThan(l.RemainingBalance) {
		return shared.NewValidationError("INVALID_LOAN_PAYMENT", "Repayment must be between zero and the remaining balance")
	}
	l.RemainingBalance = l.RemainingBalance.Sub(amount)
	l.TotalPaid = l.TotalPaid.Add(amount)
	if !l.RemainingBalance.IsPositive() {
		l.RemainingBalance = decimal.Zero
		l.IsActive = false
	}
	l.IncrementVersion()
	return nil
}
