package payroll

import (
	"fmt"
	"time"

	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RemittanceType is a statutory deduction remitted to a government agency
type RemittanceType string

const (
	RemittancePAYE         RemittanceType = "PAYE"
	RemittanceNIS          RemittanceType = "NIS"
	RemittanceNHT          RemittanceType = "NHT"
	RemittanceEducationTax RemittanceType = "EDUCATION_TAX"
	RemittanceHEART        RemittanceType = "HEART"
)

// RemittanceTypes lists every remittance type in reporting order
func RemittanceTypes() []RemittanceType {
	return []RemittanceType{RemittancePAYE, RemittanceNIS, RemittanceNHT, RemittanceEducationTax, RemittanceHEART}
}

// IsValid checks if the remittance type is a known value
func (t RemittanceType) IsValid() bool {
	switch t {
	case RemittancePAYE, RemittanceNIS, RemittanceNHT, RemittanceEducationTax, RemittanceHEART:
		return true
	}
	return false
}

// RemittanceStatus is the payment status of a remittance
type RemittanceStatus string

const (
	RemittanceStatusPending RemittanceStatus = "PENDING"
	RemittanceStatusOverdue RemittanceStatus = "OVERDUE"
	RemittanceStatusPaid    RemittanceStatus = "PAID"
)

// RemittanceDueDay is the day of the following month on which remittances fall due
const RemittanceDueDay = 14

// PeriodMonth formats a remittance period as YYYY-MM
func PeriodMonth(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// MonthBounds returns the first instant of the month and of the next month
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// RemittanceDueDate returns the 14th of the month after the period
func RemittanceDueDate(year int, month time.Month) time.Time {
	return time.Date(year, month+1, RemittanceDueDay, 0, 0, 0, 0, time.UTC)
}

// RemittanceAmounts are the employee and employer portions of one type
type RemittanceAmounts struct {
	Employee decimal.Decimal
	Employer decimal.Decimal
}

// Total is the amount due for the type
func (a RemittanceAmounts) Total() decimal.Decimal {
	return a.Employee.Add(a.Employer)
}

// SumRemittances aggregates statutory amounts per type across entries
func SumRemittances(entries []PayrollEntry) map[RemittanceType]RemittanceAmounts {
	out := make(map[RemittanceType]RemittanceAmounts, 5)
	for _, t := range RemittanceTypes() {
		out[t] = RemittanceAmounts{Employee: decimal.Zero, Employer: decimal.Zero}
	}
	add := func(t RemittanceType, employee, employer decimal.Decimal) {
		a := out[t]
		a.Employee = a.Employee.Add(employee)
		a.Employer = a.Employer.Add(employer)
		out[t] = a
	}
	for _, e := range entries {
		add(RemittancePAYE, e.IncomeTax, decimal.Zero)
		add(RemittanceNIS, e.NIS, e.EmployerNIS)
		add(RemittanceNHT, e.NHT, e.EmployerNHT)
		add(RemittanceEducationTax, e.EducationTax, e.EmployerEducationTax)
		add(RemittanceHEART, decimal.Zero, e.EmployerHEART)
	}
	return out
}

// StatutoryRemittance is the monthly obligation for one deduction type.
// There is at most one per (company, type, period month).
type StatutoryRemittance struct {
	shared.CompanyAggregateRoot
	RemittanceType RemittanceType
	PeriodMonth    string
	EmployeeAmount decimal.Decimal
	EmployerAmount decimal.Decimal
	AmountDue      decimal.Decimal
	AmountPaid     decimal.Decimal
	DueDate        time.Time
	Status         RemittanceStatus
	PaidAt         *time.Time
	JournalEntryID *uuid.UUID
}

// NewStatutoryRemittance creates a PENDING remittance for a month
func NewStatutoryRemittance(companyID uuid.UUID, t RemittanceType, year int, month time.Month, amounts RemittanceAmounts) (*StatutoryRemittance, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_COMPANY", "Company ID cannot be empty")
	}
	if !t.IsValid() {
		return nil, shared.NewValidationError("INVALID_REMITTANCE_TYPE", fmt.Sprintf("unknown remittance type %q", t))
	}
	if month < time.January || month > time.December {
		return nil, shared.NewValidationError("INVALID_PERIOD", "Month must be between 1 and 12")
	}
	return &StatutoryRemittance{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		RemittanceType:       t,
		PeriodMonth:          PeriodMonth(year, month),
		EmployeeAmount:       amounts.Employee,
		EmployerAmount:       amounts.Employer,
		AmountDue:            amounts.Total(),
		AmountPaid:           decimal.Zero,
		DueDate:              RemittanceDueDate(year, month),
		Status:               RemittanceStatusPending,
	}, nil
}

// UpdateAmounts refreshes the amounts of an unpaid remittance, keeping its
// status and payments. It reports whether anything changed.
func (r *StatutoryRemittance) UpdateAmounts(amounts RemittanceAmounts) (bool, error) {
	if r.Status == RemittanceStatusPaid {
		return false, shared.NewStateConflictError("REMITTANCE_PAID", "A paid remittance cannot be changed")
	}
	if r.EmployeeAmount.Equal(amounts.Employee) && r.EmployerAmount.Equal(amounts.Employer) {
		return false, nil
	}
	r.EmployeeAmount = amounts.Employee
	r.EmployerAmount = amounts.Employer
	r.AmountDue = amounts.Total()
	r.IncrementVersion()
	return true, nil
}

// Outstanding is the unpaid part of the amount due
func (r *StatutoryRemittance) Outstanding() decimal.Decimal {
	out := r.AmountDue.Sub(r.AmountPaid)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

// RecordPayment applies a payment and marks the remittance PAID once settled
func (r *StatutoryRemittance) RecordPayment(amount decimal.Decimal, journalEntryID uuid.UUID, at time.Time) error {
	if r.Status == RemittanceStatusPaid {
		return shared.NewStateConflictError("REMITTANCE_PAID", "Remittance has already been paid")
	}
	if !amount.IsPositive() {
		return shared.NewValidationError("INVALID_PAYMENT_AMOUNT", "Payment amount must be positive")
	}
	r.AmountPaid = r.AmountPaid.Add(amount)
	r.JournalEntryID = &journalEntryID
	if r.AmountPaid.GreaterThanOrEqual(r.AmountDue) {
		r.Status = RemittanceStatusPaid
		r.PaidAt = &at
	}
	r.IncrementVersion()
	return nil
}

// MarkOverdue flags a PENDING remittance whose due date is before asOf
func (r *StatutoryRemittance) MarkOverdue(asOf time.Time) bool {
	if r.Status != RemittanceStatusPending || !r.DueDate.Before(asOf) {
		return false
	}
	r.Status = RemittanceStatusOverdue
	r.IncrementVersion()
	return true
}
