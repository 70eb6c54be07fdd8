package models

import (
	"time"

	"github.com/erp/ledgercore/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountModel is the persistence model for a general ledger account.
type AccountModel struct {
	AggregateModel
	CompanyID     uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex:idx_gl_account_company_number,priority:1"`
	CreatedBy     *uuid.UUID           `gorm:"type:uuid"`
	AccountNumber string               `gorm:"type:varchar(20);not null;uniqueIndex:idx_gl_account_company_number,priority:2"`
	Name          string               `gorm:"type:varchar(200);not null"`
	Type          ledger.AccountType   `gorm:"type:varchar(20);not null;index"`
	SubType       string               `gorm:"type:varchar(50)"`
	NormalBalance ledger.NormalBalance `gorm:"type:varchar(10);not null"`
	IsSystem      bool                 `gorm:"not null;default:false"`
	IsControl     bool                 `gorm:"not null;default:false"`
	IsTax         bool                 `gorm:"not null;default:false"`
	IsBank        bool                 `gorm:"not null;default:false"`
	IsActive      bool                 `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (AccountModel) TableName() string {
	return "gl_accounts"
}

// ToDomain converts the persistence model to a domain Account
func (m *AccountModel) ToDomain() *ledger.Account {
	return &ledger.Account{
		CompanyAggregateRoot: companyRoot(m.AggregateModel, m.CompanyID, m.CreatedBy),
		AccountNumber:        m.AccountNumber,
		Name:                 m.Name,
		Type:                 m.Type,
		SubType:              m.SubType,
		NormalBalance:        m.NormalBalance,
		IsSystem:             m.IsSystem,
		IsControl:            m.IsControl,
		IsTax:                m.IsTax,
		IsBank:               m.IsBank,
		IsActive:             m.IsActive,
	}
}

// AccountModelFromDomain creates a persistence model from a domain Account
func AccountModelFromDomain(a *ledger.Account) *AccountModel {
	return &AccountModel{
		AggregateModel: aggregateFromDomain(a.CompanyAggregateRoot),
		CompanyID:      a.CompanyID,
		CreatedBy:      a.CreatedBy,
		AccountNumber:  a.AccountNumber,
		Name:           a.Name,
		Type:           a.Type,
		SubType:        a.SubType,
		NormalBalance:  a.NormalBalance,
		IsSystem:       a.IsSystem,
		IsControl:      a.IsControl,
		IsTax:          a.IsTax,
		IsBank:         a.IsBank,
		IsActive:       a.IsActive,
	}
}

// JournalEntryModel is the persistence model for a posted journal entry.
type JournalEntryModel struct {
	AggregateModel
	CompanyID        uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:idx_journal_entry_company_number,priority:1"`
	CreatedBy        *uuid.UUID         `gorm:"type:uuid"`
	EntryNumber      int64              `gorm:"not null;uniqueIndex:idx_journal_entry_company_number,priority:2"`
	EntryDate        time.Time          `gorm:"not null;index"`
	Description      string             `gorm:"type:varchar(500);not null"`
	Reference        string             `gorm:"type:varchar(100)"`
	SourceModule     string             `gorm:"type:varchar(30);not null;index:idx_journal_entry_source,priority:1"`
	SourceDocumentID *uuid.UUID         `gorm:"type:uuid;index:idx_journal_entry_source,priority:2"`
	TotalDebits      decimal.Decimal    `gorm:"type:decimal(18,4);not null"`
	TotalCredits     decimal.Decimal    `gorm:"type:decimal(18,4);not null"`
	Status           ledger.EntryStatus `gorm:"type:varchar(20);not null;default:'POSTED'"`
	ReversalOfID     *uuid.UUID         `gorm:"type:uuid"`
	ReversedByID     *uuid.UUID         `gorm:"type:uuid"`
	PostedBy         uuid.UUID          `gorm:"type:uuid"`
	Lines            []JournalLineModel `gorm:"foreignKey:EntryID"`
}

// TableName returns the table name for GORM
func (JournalEntryModel) TableName() string {
	return "journal_entries"
}

// ToDomain converts the persistence model to a domain JournalEntry
func (m *JournalEntryModel) ToDomain() *ledger.JournalEntry {
	entry := &ledger.JournalEntry{
		CompanyAggregateRoot: companyRoot(m.AggregateModel, m.CompanyID, m.CreatedBy),
		EntryNumber:          m.EntryNumber,
		EntryDate:            m.EntryDate,
		Description:          m.Description,
		Reference:            m.Reference,
		SourceModule:         m.SourceModule,
		SourceDocumentID:     m.SourceDocumentID,
		TotalDebits:          m.TotalDebits,
		TotalCredits:         m.TotalCredits,
		Status:               m.Status,
		ReversalOfID:         m.ReversalOfID,
		ReversedByID:         m.ReversedByID,
		PostedBy:             m.PostedBy,
		Lines:                make([]ledger.JournalLine, len(m.Lines)),
	}
	for i, l := range m.Lines {
		entry.Lines[i] = l.ToDomain()
	}
	return entry
}

// JournalEntryModelFromDomain creates a persistence model from a domain JournalEntry
func JournalEntryModelFromDomain(e *ledger.JournalEntry) *JournalEntryModel {
	m := &JournalEntryModel{
		AggregateModel:   aggregateFromDomain(e.CompanyAggregateRoot),
		CompanyID:        e.CompanyID,
		CreatedBy:        e.CreatedBy,
		EntryNumber:      e.EntryNumber,
		EntryDate:        e.EntryDate,
		Description:      e.Description,
		Reference:        e.Reference,
		SourceModule:     e.SourceModule,
		SourceDocumentID: e.SourceDocumentID,
		TotalDebits:      e.TotalDebits,
		TotalCredits:     e.TotalCredits,
		Status:           e.Status,
		ReversalOfID:     e.ReversalOfID,
		ReversedByID:     e.ReversedByID,
		PostedBy:         e.PostedBy,
		Lines:            make([]JournalLineModel, len(e.Lines)),
	}
	for i, l := range e.Lines {
		m.Lines[i] = JournalLineModel{
			ID:            l.ID,
			EntryID:       e.ID,
			CompanyID:     e.CompanyID,
			LineNo:        l.LineNo,
			AccountID:     l.AccountID,
			AccountNumber: l.AccountNumber,
			Description:   l.Description,
			DebitAmount:   l.Debit,
			CreditAmount:  l.Credit,
			CreatedAt:     e.CreatedAt,
		}
	}
	return m
}

// JournalLineModel is the persistence model for a journal line.
type JournalLineModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key"`
	EntryID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	CompanyID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	LineNo        int             `gorm:"not null"`
	AccountID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountNumber string          `gorm:"type:varchar(20);not null"`
	Description   string          `gorm:"type:varchar(500)"`
	DebitAmount   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreditAmount  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (JournalLineModel) TableName() string {
	return "journal_lines"
}

// ToDomain converts the persistence model to a domain JournalLine
func (m *JournalLineModel) ToDomain() ledger.JournalLine {
	return ledger.JournalLine{
		ID:            m.ID,
		LineNo:        m.LineNo,
		AccountID:     m.AccountID,
		AccountNumber: m.AccountNumber,
		Description:   m.Description,
		Debit:         m.DebitAmount,
		Credit:        m.CreditAmount,
	}
}

// LedgerSequenceModel is a per-company named counter.
type LedgerSequenceModel struct {
	CompanyID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(50);primaryKey"`
	LastValue int64     `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (LedgerSequenceModel) TableName() string {
	return "ledger_sequences"
}
