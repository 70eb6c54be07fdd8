package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Sequence names used with SequenceRepository
const (
	SequenceJournalEntry = "journal_entry"
	SequencePayrollRun   = "payroll_run"
)

// AccountRepository persists the chart of accounts
type AccountRepository interface {
	// FindByNumber returns shared.ErrNotFound when the company has no such account
	FindByNumber(ctx context.Context, companyID uuid.UUID, number string) (*Account, error)
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*Account, error)
	FindAll(ctx context.Context, companyID uuid.UUID) ([]Account, error)
	// Create inserts a new account; a duplicate number is a state conflict
	Create(ctx context.Context, account *Account) error
	// CreateIfAbsent inserts the account unless (company, number) already exists
	CreateIfAbsent(ctx context.Context, account *Account) error
}

// JournalEntryRepository persists journal entries with their lines
type JournalEntryRepository interface {
	Create(ctx context.Context, entry *JournalEntry) error
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*JournalEntry, error)
	FindBySource(ctx context.Context, companyID uuid.UUID, sourceModule string, sourceDocumentID uuid.UUID) ([]JournalEntry, error)
	// MarkReversed links the reversal; it fails with a state conflict if the
	// entry was reversed concurrently
	MarkReversed(ctx context.Context, companyID, id, reversedByID uuid.UUID) error
	// AccountTotals sums line activity per account for entries dated on or before asOf
	AccountTotals(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]AccountTotal, error)
}

// SequenceRepository hands out gap-free per-company counters
type SequenceRepository interface {
	Next(ctx context.Context, companyID uuid.UUID, name string) (int64, error)
}
