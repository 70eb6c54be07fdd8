package payroll

import (
	"fmt"
	"strings"
	"time"

	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/erp/ledgercore/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RunStatus is the lifecycle status of a payroll run
type RunStatus string

const (
	RunStatusDraft    RunStatus = "DRAFT"
	RunStatusApproved RunStatus = "APPROVED"
	RunStatusPaid     RunStatus = "PAID"
)

// YTDStatuses are the run statuses that count toward year-to-date totals
var YTDStatuses = []RunStatus{RunStatusDraft, RunStatusApproved, RunStatusPaid}

// RemittableStatuses are the run statuses included in statutory remittances
var RemittableStatuses = []RunStatus{RunStatusApproved, RunStatusPaid}

// EmployeePay is the per-employee input to a payroll run
type EmployeePay struct {
	EmployeeID          uuid.UUID
	EmployeeName        string
	BasicSalary         decimal.Decimal
	Overtime            decimal.Decimal
	Bonus               decimal.Decimal
	Commission          decimal.Decimal
	Allowances          decimal.Decimal
	PensionContribution decimal.Decimal
	LoanDeductions      decimal.Decimal
	OtherDeductions     decimal.Decimal
}

// PayrollEntry is one employee's line in a payroll run. Entries are frozen
// once the run leaves DRAFT.
type PayrollEntry struct {
	ID           uuid.UUID
	RunID        uuid.UUID
	CompanyID    uuid.UUID
	LineNo       int
	EmployeeID   uuid.UUID
	EmployeeName string

	BasicSalary         decimal.Decimal
	Overtime            decimal.Decimal
	Bonus               decimal.Decimal
	Commission          decimal.Decimal
	Allowances          decimal.Decimal
	PensionContribution decimal.Decimal
	LoanDeductions      decimal.Decimal
	OtherDeductions     decimal.Decimal

	GrossPay             decimal.Decimal
	TaxableIncome        decimal.Decimal
	IncomeTax            decimal.Decimal
	NIS                  decimal.Decimal
	NHT                  decimal.Decimal
	EducationTax         decimal.Decimal
	TotalDeductions      decimal.Decimal
	NetPay               decimal.Decimal
	EmployerNIS          decimal.Decimal
	EmployerNHT          decimal.Decimal
	EmployerEducationTax decimal.Decimal
	EmployerHEART        decimal.Decimal
	EmployerPension      decimal.Decimal
	EmployerTotal        decimal.Decimal
}

// NewPayrollEntry records the calculator output for an employee
func NewPayrollEntry(pay EmployeePay, result CalculationResult, employerPension decimal.Decimal) PayrollEntry {
	return PayrollEntry{
		ID:                   uuid.New(),
		EmployeeID:           pay.EmployeeID,
		EmployeeName:         strings.TrimSpace(pay.EmployeeName),
		BasicSalary:          pay.BasicSalary,
		Overtime:             pay.Overtime,
		Bonus:                pay.Bonus,
		Commission:           pay.Commission,
		Allowances:           pay.Allowances,
		PensionContribution:  pay.PensionContribution,
		LoanDeductions:       pay.LoanDeductions,
		OtherDeductions:      pay.OtherDeductions,
		GrossPay:             result.GrossPay,
		TaxableIncome:        result.TaxableIncome,
		IncomeTax:            result.Employee.IncomeTax,
		NIS:                  result.Employee.NIS,
		NHT:                  result.Employee.NHT,
		EducationTax:         result.Employee.EducationTax,
		TotalDeductions:      result.Employee.Total,
		NetPay:               result.NetPay,
		EmployerNIS:          result.Employer.NIS,
		EmployerNHT:          result.Employer.NHT,
		EmployerEducationTax: result.Employer.EducationTax,
		EmployerHEART:        result.Employer.HEART,
		EmployerPension:      employerPension,
		EmployerTotal:        result.Employer.Total.Add(employerPension),
	}
}

// RunTotals are the summed amounts of a payroll run
type RunTotals struct {
	GrossPay             decimal.Decimal
	IncomeTax            decimal.Decimal
	NIS                  decimal.Decimal
	NHT                  decimal.Decimal
	EducationTax         decimal.Decimal
	EmployerNIS          decimal.Decimal
	EmployerNHT          decimal.Decimal
	EmployerEducationTax decimal.Decimal
	EmployerHEART        decimal.Decimal
	EmployeePension      decimal.Decimal
	EmployerPension      decimal.Decimal
	OtherDeductions      decimal.Decimal
	NetPay               decimal.Decimal
}

// EmployerStatutory is the employer's statutory contribution total
func (t RunTotals) EmployerStatutory() decimal.Decimal {
	return valueobject.Sum(t.EmployerNIS, t.EmployerNHT, t.EmployerEducationTax, t.EmployerHEART)
}

// SumEntries aggregates entry amounts. OtherDeductions covers loans and
// other withholdings; pension is carried separately.
func SumEntries(entries []PayrollEntry) RunTotals {
	t := RunTotals{
		GrossPay: decimal.Zero, IncomeTax: decimal.Zero, NIS: decimal.Zero, NHT: decimal.Zero,
		EducationTax: decimal.Zero, EmployerNIS: decimal.Zero, EmployerNHT: decimal.Zero,
		EmployerEducationTax: decimal.Zero, EmployerHEART: decimal.Zero, EmployeePension: decimal.Zero,
		EmployerPension: decimal.Zero, OtherDeductions: decimal.Zero, NetPay: decimal.Zero,
	}
	for _, e := range entries {
		t.GrossPay = t.GrossPay.Add(e.GrossPay)
		t.IncomeTax = t.IncomeTax.Add(e.IncomeTax)
		t.NIS = t.NIS.Add(e.NIS)
		t.NHT = t.NHT.Add(e.NHT)
		t.EducationTax = t.EducationTax.Add(e.EducationTax)
		t.EmployerNIS = t.EmployerNIS.Add(e.EmployerNIS)
		t.EmployerNHT = t.EmployerNHT.Add(e.EmployerNHT)
		t.EmployerEducationTax = t.EmployerEducationTax.Add(e.EmployerEducationTax)
		t.EmployerHEART = t.EmployerHEART.Add(e.EmployerHEART)
		t.EmployeePension = t.EmployeePension.Add(e.PensionContribution)
		t.EmployerPension = t.EmployerPension.Add(e.EmployerPension)
		t.OtherDeductions = t.OtherDeductions.Add(e.LoanDeductions).Add(e.OtherDeductions)
		t.NetPay = t.NetPay.Add(e.NetPay)
	}
	return t
}

// PayrollRun is a batch of employee payments for one pay period
type PayrollRun struct {
	shared.CompanyAggregateRoot
	RunNumber             int64
	PeriodStart           time.Time
	PeriodEnd             time.Time
	PayDate               time.Time
	Frequency             Frequency
	Status                RunStatus
	Totals                RunTotals
	ApprovedBy            *uuid.UUID
	ApprovedAt            *time.Time
	PaidAt                *time.Time
	JournalEntryID        *uuid.UUID
	PaymentJournalEntryID *uuid.UUID
	Entries               []PayrollEntry
}

// NewPayrollRun creates a DRAFT run
func NewPayrollRun(companyID, createdBy uuid.UUID, runNumber int64, periodStart, periodEnd, payDate time.Time, frequency Frequency) (*PayrollRun, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_COMPANY", "Company ID cannot be empty")
	}
	if err := ValidatePeriod(periodStart, periodEnd, payDate, frequency); err != nil {
		return nil, err
	}
	if runNumber <= 0 {
		return nil, shared.NewValidationError("INVALID_RUN_NUMBER", "Run number must be positive")
	}
	return &PayrollRun{
		CompanyAggregateRoot: shared.NewCompanyAggregateRootWithCreator(companyID, createdBy),
		RunNumber:            runNumber,
		PeriodStart:          periodStart,
		PeriodEnd:            periodEnd,
		PayDate:              payDate,
		Frequency:            frequency,
		Status:               RunStatusDraft,
		Totals:               SumEntries(nil),
		Entries:              make([]PayrollEntry, 0),
	}, nil
}

// ValidatePeriod checks the dates and frequency of a run
func ValidatePeriod(periodStart, periodEnd, payDate time.Time, frequency Frequency) error {
	if !frequency.IsValid() {
		return shared.NewValidationError("INVALID_FREQUENCY", fmt.Sprintf("unknown pay frequency %q", frequency))
	}
	if periodStart.IsZero() || periodEnd.IsZero() {
		return shared.NewValidationError("INVALID_PERIOD", "Period start and end are required")
	}
	if periodEnd.Before(periodStart) {
		return shared.NewValidationError("INVALID_PERIOD", "Period end cannot precede period start")
	}
	if payDate.IsZero() {
		return shared.NewValidationError("INVALID_PAY_DATE", "Pay date is required")
	}
	return nil
}

// AddEntry appends an employee entry and refreshes totals
func (r *PayrollRun) AddEntry(entry PayrollEntry) error {
	if r.Status != RunStatusDraft {
		return shared.NewStateConflictError("RUN_NOT_DRAFT", "Entries can only be added to a DRAFT run")
	}
	for _, e := range r.Entries {
		if e.EmployeeID == entry.EmployeeID {
			return shared.NewValidationError("DUPLICATE_EMPLOYEE",
				fmt.Sprintf("employee %s appears more than once in the run", entry.EmployeeID))
		}
	}
	entry.RunID = r.ID
	entry.CompanyID = r.CompanyID
	entry.LineNo = len(r.Entries) + 1
	r.Entries = append(r.Entries, entry)
	r.RecalculateTotals()
	return nil
}

// RecalculateTotals re-aggregates totals from the entries
func (r *PayrollRun) RecalculateTotals() {
	r.Totals = SumEntries(r.Entries)
}

// Approve moves a DRAFT run to APPROVED
func (r *PayrollRun) Approve(approvedBy, journalEntryID uuid.UUID, at time.Time) error {
	if r.Status != RunStatusDraft {
		return shared.NewStateConflictError("RUN_NOT_DRAFT",
			fmt.Sprintf("payroll run %d is %s; only DRAFT runs can be approved", r.RunNumber, r.Status))
	}
	if len(r.Entries) == 0 {
		return shared.NewValidationError("EMPTY_RUN", "A payroll run needs at least one entry")
	}
	r.Status = RunStatusApproved
	r.ApprovedBy = &approvedBy
	r.ApprovedAt = &at
	r.JournalEntryID = &journalEntryID
	r.IncrementVersion()
	return nil
}

// MarkPaid moves an APPROVED run to PAID
func (r *PayrollRun) MarkPaid(paymentJournalEntryID uuid.UUID, at time.Time) error {
	if r.Status != RunStatusApproved {
		return shared.NewStateConflictError("RUN_NOT_APPROVED",
			fmt.Sprintf("payroll run %d is %s; only APPROVED runs can be paid", r.RunNumber, r.Status))
	}
	r.Status = RunStatusPaid
	r.PaidAt = &at
	r.PaymentJournalEntryID = &paymentJournalEntryID
	r.IncrementVersion()
	return nil
}

// YTDTotals are an employee's fiscal-year-to-date amounts
type YTDTotals struct {
	Gross     decimal.Decimal
	NIS       decimal.Decimal
	Taxable   decimal.Decimal
	IncomeTax decimal.Decimal
}

// ZeroYTD returns empty YTD totals
func ZeroYTD() YTDTotals {
	return YTDTotals{Gross: decimal.Zero, NIS: decimal.Zero, Taxable: decimal.Zero, IncomeTax: decimal.Zero}
}
