package models

import (
	"time"

	"github.com/erp/ledgercore/internal/domain/payroll"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollRunModel is the persistence model for a payroll run.
type PayrollRunModel struct {
	AggregateModel
	CompanyID             uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_payroll_run_company_number,priority:1"`
	CreatedBy             *uuid.UUID        `gorm:"type:uuid"`
	RunNumber             int64             `gorm:"not null;uniqueIndex:idx_payroll_run_company_number,priority:2"`
	PeriodStart           time.Time         `gorm:"not null;index"`
	PeriodEnd             time.Time         `gorm:"not null;index"`
	PayDate               time.Time         `gorm:"not null"`
	Frequency             payroll.Frequency `gorm:"type:varchar(20);not null"`
	Status                payroll.RunStatus `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	GrossPay              decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	IncomeTax             decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	NIS                   decimal.Decimal   `gorm:"column:nis;type:decimal(18,4);not null"`
	NHT                   decimal.Decimal   `gorm:"column:nht;type:decimal(18,4);not null"`
	EducationTax          decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	EmployerNIS           decimal.Decimal   `gorm:"column:employer_nis;type:decimal(18,4);not null"`
	EmployerNHT           decimal.Decimal   `gorm:"column:employer_nht;type:decimal(18,4);not null"`
	EmployerEducationTax  decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	EmployerHEART         decimal.Decimal   `gorm:"column:employer_heart;type:decimal(18,4);not null"`
	EmployeePension       decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	EmployerPension       decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	OtherDeductions       decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	NetPay                decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	ApprovedBy            *uuid.UUID        `gorm:"type:uuid"`
	ApprovedAt            *time.Time
	PaidAt                *time.Time
	JournalEntryID        *uuid.UUID          `gorm:"type:uuid"`
	PaymentJournalEntryID *uuid.UUID          `gorm:"type:uuid"`
	Entries               []PayrollEntryModel `gorm:"foreignKey:RunID"`
}

// TableName returns the table name for GORM
func (PayrollRunModel) TableName() string {
	return "payroll_runs"
}

// ToDomain converts the persistence model to a domain PayrollRun
func (m *PayrollRunModel) ToDomain() *payroll.PayrollRun {
	run := &payroll.PayrollRun{
		CompanyAggregateRoot: companyRoot(m.AggregateModel, m.CompanyID, m.CreatedBy),
		RunNumber:            m.RunNumber,
		PeriodStart:          m.PeriodStart,
		PeriodEnd:            m.PeriodEnd,
		PayDate:              m.PayDate,
		Frequency:            m.Frequency,
		Status:               m.Status,
		Totals: payroll.RunTotals{
			GrossPay:             m.GrossPay,
			IncomeTax:            m.IncomeTax,
			NIS:                  m.NIS,
			NHT:                  m.NHT,
			EducationTax:         m.EducationTax,
			EmployerNIS:          m.EmployerNIS,
			EmployerNHT:          m.EmployerNHT,
			EmployerEducationTax: m.EmployerEducationTax,
			EmployerHEART:        m.EmployerHEART,
			EmployeePension:      m.EmployeePension,
			EmployerPension:      m.EmployerPension,
			OtherDeductions:      m.OtherDeductions,
			NetPay:               m.NetPay,
		},
		ApprovedBy:            m.ApprovedBy,
		ApprovedAt:            m.ApprovedAt,
		PaidAt:                m.PaidAt,
		JournalEntryID:        m.JournalEntryID,
		PaymentJournalEntryID: m.PaymentJournalEntryID,
		Entries:               make([]payroll.PayrollEntry, len(m.Entries)),
	}
	for i := range m.Entries {
		run.Entries[i] = m.Entries[i].ToDomain()
	}
	return run
}

// PayrollRunModelFromDomain creates a persistence model from a domain PayrollRun
func PayrollRunModelFromDomain(r *payroll.PayrollRun) *PayrollRunModel {
	m := &PayrollRunModel{
		AggregateModel:        aggregateFromDomain(r.CompanyAggregateRoot),
		CompanyID:             r.CompanyID,
		CreatedBy:             r.CreatedBy,
		RunNumber:             r.RunNumber,
		PeriodStart:           r.PeriodStart,
		PeriodEnd:             r.PeriodEnd,
		PayDate:               r.PayDate,
		Frequency:             r.Frequency,
		Status:                r.Status,
		GrossPay:              r.Totals.GrossPay,
		IncomeTax:             r.Totals.IncomeTax,
		NIS:                   r.Totals.NIS,
		NHT:                   r.Totals.NHT,
		EducationTax:          r.Totals.EducationTax,
		EmployerNIS:           r.Totals.EmployerNIS,
		EmployerNHT:           r.Totals.EmployerNHT,
		EmployerEducationTax:  r.Totals.EmployerEducationTax,
		EmployerHEART:         r.Totals.EmployerHEART,
		EmployeePension:       r.Totals.EmployeePension,
		EmployerPension:       r.Totals.EmployerPension,
		OtherDeductions:       r.Totals.OtherDeductions,
		NetPay:                r.Totals.NetPay,
		ApprovedBy:            r.ApprovedBy,
		ApprovedAt:            r.ApprovedAt,
		PaidAt:                r.PaidAt,
		JournalEntryID:        r.JournalEntryID,
		PaymentJournalEntryID: r.PaymentJournalEntryID,
		Entries:               make([]PayrollEntryModel, len(r.Entries)),
	}
	for i := range r.Entries {
		m.Entries[i] = PayrollEntryModelFromDomain(&r.Entries[i], r.CreatedAt)
	}
	return m
}

// PayrollEntryModel is the persistence model for one employee's payroll line.
type PayrollEntryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	RunID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_payroll_entry_run_employee,priority:1"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null;index"`
	LineNo       int       `gorm:"not null"`
	EmployeeID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_payroll_entry_run_employee,priority:2"`
	EmployeeName string    `gorm:"type:varchar(200)"`

	BasicSalary         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Overtime            decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Bonus               decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Commission          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Allowances          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	PensionContribution decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	LoanDeductions      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	OtherDeductions     decimal.Decimal `gorm:"type:decimal(18,4);not null"`

	GrossPay             decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TaxableIncome        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	IncomeTax            decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	NIS                  decimal.Decimal `gorm:"column:nis;type:decimal(18,4);not null"`
	NHT                  decimal.Decimal `gorm:"column:nht;type:decimal(18,4);not null"`
	EducationTax         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TotalDeductions      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	NetPay               decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	EmployerNIS          decimal.Decimal `gorm:"column:employer_nis;type:decimal(18,4);not null"`
	EmployerNHT          decimal.Decimal `gorm:"column:employer_nht;type:decimal(18,4);not null"`
	EmployerEducationTax decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	EmployerHEART        decimal.Decimal `gorm:"column:employer_heart;type:decimal(18,4);not null"`
	EmployerPension      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	EmployerTotal        decimal.Decimal `gorm:"type:decimal(18,4);not null"`

	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PayrollEntryModel) TableName() string {
	return "payroll_entries"
}

// ToDomain converts the persistence model to a domain PayrollEntry
func (m *PayrollEntryModel) ToDomain() payroll.PayrollEntry {
	return payroll.PayrollEntry{
		ID:                   m.ID,
		RunID:                m.RunID,
		CompanyID:            m.CompanyID,
		LineNo:               m.LineNo,
		EmployeeID:           m.EmployeeID,
		EmployeeName:         m.EmployeeName,
		BasicSalary:          m.BasicSalary,
		Overtime:             m.Overtime,
		Bonus:                m.Bonus,
		Commission:           m.Commission,
		Allowances:           m.Allowances,
		PensionContribution:  m.PensionContribution,
		LoanDeductions:       m.LoanDeductions,
		OtherDeductions:      m.OtherDeductions,
		GrossPay:             m.GrossPay,
		TaxableIncome:        m.TaxableIncome,
		IncomeTax:            m.IncomeTax,
		NIS:                  m.NIS,
		NHT:                  m.NHT,
		EducationTax:         m.EducationTax,
		TotalDeductions:      m.TotalDeductions,
		NetPay:               m.NetPay,
		EmployerNIS:          m.EmployerNIS,
		EmployerNHT:          m.EmployerNHT,
		EmployerEducationTax: m.EmployerEducationTax,
		EmployerHEART:        m.EmployerHEART,
		EmployerPension:      m.EmployerPension,
		EmployerTotal:        m.EmployerTotal,
	}
}

// PayrollEntryModelFromDomain creates a persistence model from a domain PayrollEntry
func PayrollEntryModelFromDomain(e *payroll.PayrollEntry, createdAt time.Time) PayrollEntryModel {
	return PayrollEntryModel{
		ID:                   e.ID,
		RunID:                e.RunID,
		CompanyID:            e.CompanyID,
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
		CreatedAt:            createdAt,
	}
}

// LoanDeductionModel is the persistence model for an employee loan deduction.
type LoanDeductionModel struct {
	CompanyAggregateModel
	EmployeeID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description      string          `gorm:"type:varchar(200)"`
	MonthlyDeduction decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	RemainingBalance decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TotalPaid        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	IsActive         bool            `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (LoanDeductionModel) TableName() string {
	return "loan_deductions"
}

// ToDomain converts the persistence model to a domain LoanDeduction
func (m *LoanDeductionModel) ToDomain() *payroll.LoanDeduction {
	return &payroll.LoanDeduction{
		CompanyAggregateRoot: m.ToDomainCompanyAggregateRoot(),
		EmployeeID:           m.EmployeeID,
		Description:          m.Description,
		MonthlyDeduction:     m.MonthlyDeduction,
		RemainingBalance:     m.RemainingBalance,
		TotalPaid:            m.TotalPaid,
		IsActive:             m.IsActive,
	}
}

// LoanDeductionModelFromDomain creates a persistence model from a domain LoanDeduction
func LoanDeductionModelFromDomain(l *payroll.LoanDeduction) *LoanDeductionModel {
	m := &LoanDeductionModel{
		EmployeeID:       l.EmployeeID,
		Description:      l.Description,
		MonthlyDeduction: l.MonthlyDeduction,
		RemainingBalance: l.RemainingBalance,
		TotalPaid:        l.TotalPaid,
		IsActive:         l.IsActive,
	}
	m.FromDomainCompanyAggregateRoot(l.CompanyAggregateRoot)
	return m
}

// PensionPlanModel is the persistence model for an employee pension plan.
type PensionPlanModel struct {
	CompanyAggregateModel
	EmployeeID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Provider     string          `gorm:"type:varchar(200)"`
	EmployeeRate decimal.Decimal `gorm:"type:decimal(9,6);not null"`
	EmployerRate decimal.Decimal `gorm:"type:decimal(9,6);not null"`
	IsApproved   bool            `gorm:"not null;default:false"`
	IsActive     bool            `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (PensionPlanModel) TableName() string {
	return "pension_plans"
}

// ToDomain converts the persistence model to a domain PensionPlan
func (m *PensionPlanModel) ToDomain() *payroll.PensionPlan {
	return &payroll.PensionPlan{
		CompanyAggregateRoot: m.ToDomainCompanyAggregateRoot(),
		EmployeeID:           m.EmployeeID,
		Provider:             m.Provider,
		EmployeeRate:         m.EmployeeRate,
		EmployerRate:         m.EmployerRate,
		IsApproved:           m.IsApproved,
		IsActive:             m.IsActive,
	}
}

// PensionPlanModelFromDomain creates a persistence model from a domain PensionPlan
func PensionPlanModelFromDomain(p *payroll.PensionPlan) *PensionPlanModel {
	m := &PensionPlanModel{
		EmployeeID:   p.EmployeeID,
		Provider:     p.Provider,
		EmployeeRate: p.EmployeeRate,
		EmployerRate: p.EmployerRate,
		IsApproved:   p.IsApproved,
		IsActive:     p.IsActive,
	}
	m.FromDomainCompanyAggregateRoot(p.CompanyAggregateRoot)
	return m
}

// StatutoryRemittanceModel is the persistence model for a monthly statutory remittance.
type StatutoryRemittanceModel struct {
	AggregateModel
	CompanyID      uuid.UUID                `gorm:"type:uuid;not null;uniqueIndex:idx_remittance_company_type_period,priority:1"`
	CreatedBy      *uuid.UUID               `gorm:"type:uuid"`
	RemittanceType payroll.RemittanceType   `gorm:"type:varchar(20);not null;uniqueIndex:idx_remittance_company_type_period,priority:2"`
	PeriodMonth    string                   `gorm:"type:char(7);not null;uniqueIndex:idx_remittance_company_type_period,priority:3"`
	EmployeeAmount decimal.Decimal          `gorm:"type:decimal(18,4);not null"`
	EmployerAmount decimal.Decimal          `gorm:"type:decimal(18,4);not null"`
	AmountDue      decimal.Decimal          `gorm:"type:decimal(18,4);not null"`
	AmountPaid     decimal.Decimal          `gorm:"type:decimal(18,4);not null"`
	DueDate        time.Time                `gorm:"not null;index"`
	Status         payroll.RemittanceStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	PaidAt         *time.Time
	JournalEntryID *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (StatutoryRemittanceModel) TableName() string {
	return "statutory_remittances"
}

// ToDomain converts the persistence model to a domain StatutoryRemittance
func (m *StatutoryRemittanceModel) ToDomain() *payroll.StatutoryRemittance {
	return &payroll.StatutoryRemittance{
		CompanyAggregateRoot: companyRoot(m.AggregateModel, m.CompanyID, m.CreatedBy),
		RemittanceType:       m.RemittanceType,
		PeriodMonth:          m.PeriodMonth,
		EmployeeAmount:       m.EmployeeAmount,
		EmployerAmount:       m.EmployerAmount,
		AmountDue:            m.AmountDue,
		AmountPaid:           m.AmountPaid,
		DueDate:              m.DueDate,
		Status:               m.Status,
		PaidAt:               m.PaidAt,
		JournalEntryID:       m.JournalEntryID,
	}
}

// StatutoryRemittanceModelFromDomain creates a persistence model from a domain StatutoryRemittance
func StatutoryRemittanceModelFromDomain(r *payroll.StatutoryRemittance) *StatutoryRemittanceModel {
	return &StatutoryRemittanceModel{
		AggregateModel: aggregateFromDomain(r.CompanyAggregateRoot),
		CompanyID:      r.CompanyID,
		CreatedBy:      r.CreatedBy,
		RemittanceType: r.RemittanceType,
		PeriodMonth:    r.PeriodMonth,
		EmployeeAmount: r.EmployeeAmount,
		EmployerAmount: r.EmployerAmount,
		AmountDue:      r.AmountDue,
		AmountPaid:     r.AmountPaid,
		DueDate:        r.DueDate,
		Status:         r.Status,
		PaidAt:         r.PaidAt,
		JournalEntryID: r.JournalEntryID,
	}
}
