package payroll

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PayrollRunRepository persists payroll runs with their entries
type PayrollRunRepository interface {
	// Create inserts the run and all of its entries
	Create(ctx context.Context, run *PayrollRun) error
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*PayrollRun, error)
	// UpdateStatus saves status fields only if the stored run still has the
	// expected status and version; otherwise it returns a state conflict.
	UpdateStatus(ctx context.Context, run *PayrollRun, expected RunStatus) error
	// YTDTotals sums entries per employee over runs in the given statuses
	// whose period starts in [from, before).
	YTDTotals(ctx context.Context, companyID uuid.UUID, employeeIDs []uuid.UUID, from, before time.Time, statuses []RunStatus) (map[uuid.UUID]YTDTotals, error)
	// EntriesForPeriodEnd returns entries of runs in the given statuses whose
	// period ends in [from, to).
	EntriesForPeriodEnd(ctx context.Context, companyID uuid.UUID, from, to time.Time, statuses []RunStatus) ([]PayrollEntry, error)
}

// LoanDeductionRepository persists employee loan deductions
type LoanDeductionRepository interface {
	Create(ctx context.Context, loan *LoanDeduction) error
	FindActiveByEmployees(ctx context.Context, companyID uuid.UUID, employeeIDs []uuid.UUID) ([]LoanDeduction, error)
	Save(ctx context.Context, loan *LoanDeduction) error
}

// PensionPlanRepository persists pension plans
type PensionPlanRepository interface {
	Create(ctx context.Context, plan *PensionPlan) error
	FindActiveByEmployees(ctx context.Context, companyID uuid.UUID, employeeIDs []uuid.UUID) ([]PensionPlan, error)
}

// RemittanceRepository persists statutory remittances
type RemittanceRepository interface {
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*StatutoryRemittance, error)
	FindByPeriod(ctx context.Context, companyID uuid.UUID, t RemittanceType, periodMonth string) (*StatutoryRemittance, error)
	ListByPeriod(ctx context.Context, companyID uuid.UUID, periodMonth string) ([]StatutoryRemittance, error)
	FindPendingDueBefore(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]StatutoryRemittance, error)
	// CreateIfAbsent inserts the remittance unless one already exists for its
	// (company, type, period month); it reports whether a row was inserted.
	CreateIfAbsent(ctx context.Context, r *StatutoryRemittance) (bool, error)
	// Save updates a remittance with an optimistic version check
	Save(ctx context.Context, r *StatutoryRemittance) error
}
