package payroll

import (
	"context"

	appledger "github.com/erp/ledgercore/internal/application/ledger"
	"github.com/erp/ledgercore/internal/domain/payroll"
)

// TransactionScope provides transactional access to payroll and ledger
// repositories, so a run and its journal entry commit atomically.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories extends the ledger repositories with the payroll ones.
type TransactionalRepositories interface {
	appledger.TransactionalRepositories
	// RunRepo returns the payroll run repository scoped to the current transaction
	RunRepo() payroll.PayrollRunRepository
	// LoanRepo returns the loan deduction repository scoped to the current transaction
	LoanRepo() payroll.LoanDeductionRepository
	// PensionRepo returns the pension plan repository scoped to the current transaction
	PensionRepo() payroll.PensionPlanRepository
	// RemittanceRepo returns the remittance repository scoped to the current transaction
	RemittanceRepo() payroll.RemittanceRepository
}
