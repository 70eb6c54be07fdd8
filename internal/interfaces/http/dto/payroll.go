package dto

import (
	"time"

	"github.com/erp/ledgercore/internal/domain/payroll"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmployeePayRequest is one employee's pay inputs for a run
type EmployeePayRequest struct {
	EmployeeID          uuid.UUID       `json:"employee_id" binding:"required"`
	EmployeeName        string          `json:"employee_name" binding:"required,max=200"`
	BasicSalary         decimal.Decimal `json:"basic_salary"`
	Overtime            decimal.Decimal `json:"overtime"`
	Bonus               decimal.Decimal `json:"bonus"`
	Commission          decimal.Decimal `json:"commission"`
	Allowances          decimal.Decimal `json:"allowances"`
	PensionContribution decimal.Decimal `json:"pension_contribution"`
	LoanDeductions      decimal.Decimal `json:"loan_deductions"`
	OtherDeductions     decimal.Decimal `json:"other_deductions"`
}

// CreatePayrollRunRequest calculates a DRAFT payroll run
type CreatePayrollRunRequest struct {
	PeriodStart string               `json:"period_start" binding:"required,datetime=2006-01-02"`
	PeriodEnd   string               `json:"period_end" binding:"required,datetime=2006-01-02"`
	PayDate     string               `json:"pay_date" binding:"required,datetime=2006-01-02"`
	Frequency   string               `json:"frequency" binding:"required,oneof=WEEKLY FORTNIGHTLY SEMI_MONTHLY MONTHLY"`
	Employees   []EmployeePayRequest `json:"employees" binding:"required,min=1,dive"`
}

// EmployeePays converts the request employees
func (r CreatePayrollRunRequest) EmployeePays() []payroll.EmployeePay {
	out := make([]payroll.EmployeePay, 0, len(r.Employees))
	for _, e := range r.Employees {
		out = append(out, payroll.EmployeePay{
			EmployeeID:          e.EmployeeID,
			EmployeeName:        e.EmployeeName,
			BasicSalary:         e.BasicSalary,
			Overtime:            e.Overtime,
			Bonus:               e.Bonus,
			Commission:          e.Commission,
			Allowances:          e.Allowances,
			PensionContribution: e.PensionContribution,
			LoanDeductions:      e.LoanDeductions,
			OtherDeductions:     e.OtherDeductions,
		})
	}
	return out
}

// PayPayrollRunRequest records the payout of an APPROVED run. PaidAt defaults to today.
type PayPayrollRunRequest struct {
	PaidAt string `json:"paid_at" binding:"omitempty,datetime=2006-01-02"`
}

// PayrollEntryResponse is one employee's calculated pay
type PayrollEntryResponse struct {
	LineNo       int       `json:"line_no"`
	EmployeeID   uuid.UUID `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`

	BasicSalary         decimal.Decimal `json:"basic_salary"`
	Overtime            decimal.Decimal `json:"overtime"`
	Bonus               decimal.Decimal `json:"bonus"`
	Commission          decimal.Decimal `json:"commission"`
	Allowances          decimal.Decimal `json:"allowances"`
	PensionContribution decimal.Decimal `json:"pension_contribution"`
	LoanDeductions      decimal.Decimal `json:"loan_deductions"`
	OtherDeductions     decimal.Decimal `json:"other_deductions"`

	GrossPay             decimal.Decimal `json:"gross_pay"`
	TaxableIncome        decimal.Decimal `json:"taxable_income"`
	IncomeTax            decimal.Decimal `json:"income_tax"`
	NIS                  decimal.Decimal `json:"nis"`
	NHT                  decimal.Decimal `json:"nht"`
	EducationTax         decimal.Decimal `json:"education_tax"`
	TotalDeductions      decimal.Decimal `json:"total_deductions"`
	NetPay               decimal.Decimal `json:"net_pay"`
	EmployerNIS          decimal.Decimal `json:"employer_nis"`
	EmployerNHT          decimal.Decimal `json:"employer_nht"`
	EmployerEducationTax decimal.Decimal `json:"employer_education_tax"`
	EmployerHEART        decimal.Decimal `json:"employer_heart"`
	EmployerPension      decimal.Decimal `json:"employer_pension"`
	EmployerTotal        decimal.Decimal `json:"employer_total"`
}

// RunTotalsResponse are the summed amounts of a run
type RunTotalsResponse struct {
	GrossPay             decimal.Decimal `json:"gross_pay"`
	IncomeTax            decimal.Decimal `json:"income_tax"`
	NIS                  decimal.Decimal `json:"nis"`
	NHT                  decimal.Decimal `json:"nht"`
	EducationTax         decimal.Decimal `json:"education_tax"`
	EmployerNIS          decimal.Decimal `json:"employer_nis"`
	EmployerNHT          decimal.Decimal `json:"employer_nht"`
	EmployerEducationTax decimal.Decimal `json:"employer_education_tax"`
	EmployerHEART        decimal.Decimal `json:"employer_heart"`
	EmployeePension      decimal.Decimal `json:"employee_pension"`
	EmployerPension      decimal.Decimal `json:"employer_pension"`
	OtherDeductions      decimal.Decimal `json:"other_deductions"`
	NetPay               decimal.Decimal `json:"net_pay"`
}

// PayrollRunResponse is a payroll run with its entries
type PayrollRunResponse struct {
	ID                    uuid.UUID              `json:"id"`
	RunNumber             int64                  `json:"run_number"`
	PeriodStart           string                 `json:"period_start"`
	PeriodEnd             string                 `json:"period_end"`
	PayDate               string                 `json:"pay_date"`
	Frequency             string                 `json:"frequency"`
	Status                string                 `json:"status"`
	Totals                RunTotalsResponse      `json:"totals"`
	ApprovedBy            *uuid.UUID             `json:"approved_by,omitempty"`
	ApprovedAt            *time.Time             `json:"approved_at,omitempty"`
	PaidAt                *time.Time             `json:"paid_at,omitempty"`
	JournalEntryID        *uuid.UUID             `json:"journal_entry_id,omitempty"`
	PaymentJournalEntryID *uuid.UUID             `json:"payment_journal_entry_id,omitempty"`
	Version               int                    `json:"version"`
	Entries               []PayrollEntryResponse `json:"entries"`
}

// ToPayrollRunResponse converts a domain run
func ToPayrollRunResponse(r *payroll.PayrollRun) PayrollRunResponse {
	entries := make([]PayrollEntryResponse, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, PayrollEntryResponse{
			LineNo:               e.LineNo,
			EmployeeID:           e.EmployeeID,
			EmployeeName:         e.EmployeeName,
			BasicSalary:          e.BasicSalary,
			Overtime:             e.Overtime,
			Bonus:                e.Bonus,
			Commission:           e.Commission,
			Allowances:           e.Allowances,
			PensionContribution:  e.PensionContribution,
			LoanDeductions:       e.LoanDeductions,
			OtherDeductions:      e.OtherDeductions,
			GrossPay:             e.GrossPay,
			TaxableIncome:        e.TaxableIncome,
			IncomeTax:            e.IncomeTax,
			NIS:                  e.NIS,
			NHT:                  e.NHT,
			EducationTax:         e.EducationTax,
			TotalDeductions:      e.TotalDeductions,
			NetPay:               e.NetPay,
			EmployerNIS:          e.EmployerNIS,
			EmployerNHT:          e.EmployerNHT,
			EmployerEducationTax: e.EmployerEducationTax,
			EmployerHEART:        e.EmployerHEART,
			EmployerPension:      e.EmployerPension,
			EmployerTotal:        e.EmployerTotal,
		})
	}
	t := r.Totals
	return PayrollRunResponse{
		ID:          r.ID,
		RunNumber:   r.RunNumber,
		PeriodStart: r.PeriodStart.Format(DateLayout),
		PeriodEnd:   r.PeriodEnd.Format(DateLayout),
		PayDate:     r.PayDate.Format(DateLayout),
		Frequency:   string(r.Frequency),
		Status:      string(r.Status),
		Totals: RunTotalsResponse{
			GrossPay:             t.GrossPay,
			IncomeTax:            t.IncomeTax,
			NIS:                  t.NIS,
			NHT:                  t.NHT,
			EducationTax:         t.EducationTax,
			EmployerNIS:          t.EmployerNIS,
			EmployerNHT:          t.EmployerNHT,
			EmployerEducationTax: t.EmployerEducationTax,
			EmployerHEART:        t.EmployerHEART,
			EmployeePension:      t.EmployeePension,
			EmployerPension:      t.EmployerPension,
			OtherDeductions:      t.OtherDeductions,
			NetPay:               t.NetPay,
		},
		ApprovedBy:            r.ApprovedBy,
		ApprovedAt:            r.ApprovedAt,
		PaidAt:                r.PaidAt,
		JournalEntryID:        r.JournalEntryID,
		PaymentJournalEntryID: r.PaymentJournalEntryID,
		Version:               r.Version,
		Entries:               entries,
	}
}

// BackPayRequest previews retroactive pay after a salary change
type BackPayRequest struct {
	EmployeeID    uuid.UUID       `json:"employee_id" binding:"required"`
	OldSalary     decimal.Decimal `json:"old_salary"`
	NewSalary     decimal.Decimal `json:"new_salary"`
	EffectiveDate string          `json:"effective_date" binding:"required,datetime=2006-01-02"`
	ThroughDate   string          `json:"through_date" binding:"omitempty,datetime=2006-01-02"`
	Frequency     string          `json:"frequency" binding:"required,oneof=WEEKLY FORTNIGHTLY SEMI_MONTHLY MONTHLY"`
}

// BackPayResponse is the lump-sum back-pay preview
type BackPayResponse struct {
	EmployeeID           uuid.UUID       `json:"employee_id"`
	PeriodsCount         int             `json:"periods_count"`
	PerPeriodSalaryDelta decimal.Decimal `json:"per_period_salary_delta"`

	GrossBackPay      decimal.Decimal `json:"gross_back_pay"`
	IncomeTaxDelta    decimal.Decimal `json:"income_tax_delta"`
	NISDelta          decimal.Decimal `json:"nis_delta"`
	NHTDelta          decimal.Decimal `json:"nht_delta"`
	EducationTaxDelta decimal.Decimal `json:"education_tax_delta"`
	TotalDeductions   decimal.Decimal `json:"total_deductions"`
	NetBackPay        decimal.Decimal `json:"net_back_pay"`

	EmployerNISDelta          decimal.Decimal `json:"employer_nis_delta"`
	EmployerNHTDelta          decimal.Decimal `json:"employer_nht_delta"`
	EmployerEducationTaxDelta decimal.Decimal `json:"employer_education_tax_delta"`
	EmployerHEARTDelta        decimal.Decimal `json:"employer_heart_delta"`
	EmployerTotalDelta        decimal.Decimal `json:"employer_total_delta"`
}

// ToBackPayResponse converts a domain back-pay result
func ToBackPayResponse(r *payroll.BackPayResult) BackPayResponse {
	return BackPayResponse{
		EmployeeID:                r.EmployeeID,
		PeriodsCount:              r.PeriodsCount,
		PerPeriodSalaryDelta:      r.PerPeriodSalaryDelta,
		GrossBackPay:              r.GrossBackPay,
		IncomeTaxDelta:            r.IncomeTaxDelta,
		NISDelta:                  r.NISDelta,
		NHTDelta:                  r.NHTDelta,
		EducationTaxDelta:         r.EducationTaxDelta,
		TotalDeductions:           r.TotalDeductions,
		NetBackPay:                r.NetBackPay,
		EmployerNISDelta:          r.EmployerNISDelta,
		EmployerNHTDelta:          r.EmployerNHTDelta,
		EmployerEducationTaxDelta: r.EmployerEducationTaxDelta,
		EmployerHEARTDelta:        r.EmployerHEARTDelta,
		EmployerTotalDelta:        r.EmployerTotalDelta,
	}
}

// GenerateRemittancesRequest builds the remittances of a month
type GenerateRemittancesRequest struct {
	Year  int `json:"year" binding:"required,min=2000,max=2100"`
	Month int `json:"month" binding:"required,min=1,max=12"`
}

// ListRemittancesQuery filters remittances by period
type ListRemittancesQuery struct {
	Year  int `form:"year" binding:"required,min=2000,max=2100"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// PayRemittanceRequest records a payment. A missing amount pays the outstanding balance.
type PayRemittanceRequest struct {
	Amount decimal.Decimal `json:"amount"`
	PaidAt string          `json:"paid_at" binding:"omitempty,datetime=2006-01-02"`
}

// MarkOverdueRequest flags unpaid remittances past their due date. AsOf defaults to today.
type MarkOverdueRequest struct {
	AsOf string `json:"as_of" binding:"omitempty,datetime=2006-01-02"`
}

// MarkOverdueResponse reports how many remittances were flagged
type MarkOverdueResponse struct {
	Updated int `json:"updated"`
}

// RemittanceResponse is a statutory remittance
type RemittanceResponse struct {
	ID             uuid.UUID       `json:"id"`
	RemittanceType string          `json:"remittance_type"`
	PeriodMonth    string          `json:"period_month"`
	EmployeeAmount decimal.Decimal `json:"employee_amount"`
	EmployerAmount decimal.Decimal `json:"employer_amount"`
	AmountDue      decimal.Decimal `json:"amount_due"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	DueDate        string          `json:"due_date"`
	Status         string          `json:"status"`
	PaidAt         *time.Time      `json:"paid_at,omitempty"`
	JournalEntryID *uuid.UUID      `json:"journal_entry_id,omitempty"`
}

// ToRemittanceResponse converts a domain remittance
func ToRemittanceResponse(r *payroll.StatutoryRemittance) RemittanceResponse {
	return RemittanceResponse{
		ID:             r.ID,
		RemittanceType: string(r.RemittanceType),
		PeriodMonth:    r.PeriodMonth,
		EmployeeAmount: r.EmployeeAmount,
		EmployerAmount: r.EmployerAmount,
		AmountDue:      r.AmountDue,
		AmountPaid:     r.AmountPaid,
		DueDate:        r.DueDate.Format(DateLayout),
		Status:         string(r.Status),
		PaidAt:         r.PaidAt,
		JournalEntryID: r.JournalEntryID,
	}
}

// ToRemittanceResponses converts a list of domain remittances
func ToRemittanceResponses(in []payroll.StatutoryRemittance) []RemittanceResponse {
	out := make([]RemittanceResponse, 0, len(in))
	for i := range in {
		out = append(out, ToRemittanceResponse(&in[i]))
	}
	return out
}
