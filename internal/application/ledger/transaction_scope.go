package ledger

import (
	"context"

	"github.com/erp/ledgercore/internal/domain/ledger"
)

// TransactionScope provides transactional access to ledger repositories.
// Everything done through the repositories handed to fn commits or rolls
// back together.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to ledger repositories within a transaction.
type TransactionalRepositories interface {
	// AccountRepo returns the chart-of-accounts repository scoped to the current transaction
	AccountRepo() ledger.AccountRepository
	// JournalRepo returns the journal entry repository scoped to the current transaction
	JournalRepo() ledger.JournalEntryRepository
	// SequenceRepo returns the number sequence repository scoped to the current transaction
	SequenceRepo() ledger.SequenceRepository
}

// NoOpTransactionScope runs the function against fixed repositories without
// a real transaction. Used by tests.
type NoOpTransactionScope struct {
	accountRepo  ledger.AccountRepository
	journalRepo  ledger.JournalEntryRepository
	sequenceRepo ledger.SequenceRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	accountRepo ledger.AccountRepository,
	journalRepo ledger.JournalEntryRepository,
	sequenceRepo ledger.SequenceRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		accountRepo:  accountRepo,
		journalRepo:  journalRepo,
		sequenceRepo: sequenceRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *NoOpTransactionScope) AccountRepo() ledger.AccountRepository      { return s.accountRepo }
func (s *NoOpTransactionScope) JournalRepo() ledger.JournalEntryRepository { return s.journalRepo }
func (s *NoOpTransactionScope) SequenceRepo() ledger.SequenceRepository    { return s.sequenceRepo }

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
