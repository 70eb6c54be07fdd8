package persistence

import (
	"context"

	appledger "github.com/erp/ledgercore/internal/application/ledger"
	apppayroll "github.com/erp/ledgercore/internal/application/payroll"
	"github.com/erp/ledgercore/internal/domain/ledger"
	"github.com/erp/ledgercore/internal/domain/payroll"
	"gorm.io/gorm"
)

// GormLedgerTransactionScope implements the ledger TransactionScope using GORM transactions.
type GormLedgerTransactionScope struct {
	db *gorm.DB
}

// NewGormLedgerTransactionScope creates a new GormLedgerTransactionScope.
func NewGormLedgerTransactionScope(db *gorm.DB) *GormLedgerTransactionScope {
	return &GormLedgerTransactionScope{db: db}
}

// Execute runs fn within a database transaction, rolling back if it returns an error.
func (s *GormLedgerTransactionScope) Execute(ctx context.Context, fn func(repos appledger.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// GormPayrollTransactionScope implements the payroll TransactionScope using GORM transactions.
type GormPayrollTransactionScope struct {
	db *gorm.DB
}

// NewGormPayrollTransactionScope creates a new GormPayrollTransactionScope.
func NewGormPayrollTransactionScope(db *gorm.DB) *GormPayrollTransactionScope {
	return &GormPayrollTransactionScope{db: db}
}

// Execute runs fn within a database transaction, rolling back if it returns an error.
func (s *GormPayrollTransactionScope) Execute(ctx context.Context, fn func(repos apppayroll.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTransactionalRepositories{tx: tx})
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

func (r *gormTransactionalRepositories) AccountRepo() ledger.AccountRepository {
	return NewGormAccountRepository(r.tx)
}

func (r *gormTransactionalRepositories) JournalRepo() ledger.JournalEntryRepository {
	return NewGormJournalEntryRepository(r.tx)
}

func (r *gormTransactionalRepositories) SequenceRepo() ledger.SequenceRepository {
	return NewGormSequenceRepository(r.tx)
}

func (r *gormTransactionalRepositories) RunRepo() payroll.PayrollRunRepository {
	return NewGormPayrollRunRepository(r.tx)
}

func (r *gormTransactionalRepositories) LoanRepo() payroll.LoanDeductionRepository {
	return NewGormLoanDeductionRepository(r.tx)
}

func (r *gormTransactionalRepositories) PensionRepo() payroll.PensionPlanRepository {
	return NewGormPensionPlanRepository(r.tx)
}

func (r *gormTransactionalRepositories) RemittanceRepo() payroll.RemittanceRepository {
	return NewGormRemittanceRepository(r.tx)
}

var (
	_ appledger.TransactionScope           = (*GormLedgerTransactionScope)(nil)
	_ apppayroll.TransactionScope          = (*GormPayrollTransactionScope)(nil)
	_ apppayroll.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
)
