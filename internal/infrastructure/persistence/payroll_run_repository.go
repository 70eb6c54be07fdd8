package persistence

import (
	"context"
	"time"

	"github.com/erp/ledgercore/internal/domain/payroll"
	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/erp/ledgercore/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPayrollRunRepository implements PayrollRunRepository using GORM
type GormPayrollRunRepository struct {
	db *gorm.DB
}

// NewGormPayrollRunRepository creates a new GormPayrollRunRepository
func NewGormPayrollRunRepository(db *gorm.DB) *GormPayrollRunRepository {
	return &GormPayrollRunRepository{db: db}
}

// WithTx returns a new repository with the given transaction
func (r *GormPayrollRunRepository) WithTx(tx *gorm.DB) *GormPayrollRunRepository {
	return &GormPayrollRunRepository{db: tx}
}

// Create inserts the run header followed by its entries
func (r *GormPayrollRunRepository) Create(ctx context.Context, run *payroll.PayrollRun) error {
	model := models.PayrollRunModelFromDomain(run)
	entries := model.Entries
	model.Entries = nil

	db := r.db.WithContext(ctx)
	if err := db.Omit("Entries").Create(model).Error; err != nil {
		return translateError("create payroll run", err)
	}
	if len(entries) > 0 {
		if err := db.Create(&entries).Error; err != nil {
			return translateError("create payroll entries", err)
		}
	}
	return nil
}

// FindByID finds a payroll run with its entries
func (r *GormPayrollRunRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*payroll.PayrollRun, error) {
	var model models.PayrollRunModel
	if err := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("line_no ASC") }).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&model).Error; err != nil {
		return nil, translateError("find payroll run", err)
	}
	return model.ToDomain(), nil
}

// UpdateStatus persists the lifecycle fields of a run. The run's Version has
// already been incremented by the domain transition.
func (r *GormPayrollRunRepository) UpdateStatus(ctx context.Context, run *payroll.PayrollRun, expected payroll.RunStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.PayrollRunModel{}).
		Where("id = ? AND company_id = ? AND status = ? AND version = ?", run.ID, run.CompanyID, expected, run.Version-1).
		Updates(map[string]any{
			"status":                   run.Status,
			"approved_by":              run.ApprovedBy,
			"approved_at":              run.ApprovedAt,
			"paid_at":                  run.PaidAt,
			"journal_entry_id":         run.JournalEntryID,
			"payment_journal_entry_id": run.PaymentJournalEntryID,
			"version":                  run.Version,
			"updated_at":               run.UpdatedAt,
		})
	if result.Error != nil {
		return translateError("update payroll run status", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewStateConflictError("RUN_STATUS_CONFLICT",
			"Payroll run was modified concurrently or is no longer "+string(expected))
	}
	return nil
}

// YTDTotals sums each employee's entries over runs whose period starts in [from, before)
func (r *GormPayrollRunRepository) YTDTotals(ctx context.Context, companyID uuid.UUID, employeeIDs []uuid.UUID, from, before time.Time, statuses []payroll.RunStatus) (map[uuid.UUID]payroll.YTDTotals, error) {
	out := make(map[uuid.UUID]payroll.YTDTotals, len(employeeIDs))
	for _, id := range employeeIDs {
		out[id] = payroll.ZeroYTD()
	}
	if len(employeeIDs) == 0 || len(statuses) == 0 {
		return out, nil
	}

	var rows []models.PayrollEntryModel
	err := r.db.WithContext(ctx).
		Model(&models.PayrollEntryModel{}).
		Joins("JOIN payroll_runs ON payroll_runs.id = payroll_entries.run_id").
		Where("payroll_runs.company_id = ?", companyID).
		Where("payroll_runs.status IN ?", statuses).
		Where("payroll_runs.period_start >= ? AND payroll_runs.period_start < ?", from, before).
		Where("payroll_entries.employee_id IN ?", employeeIDs).
		Find(&rows).Error
	if err != nil {
		return nil, translateError("sum year-to-date payroll", err)
	}

	for _, row := range rows {
		t := out[row.EmployeeID]
		t.Gross = t.Gross.Add(row.GrossPay)
		t.NIS = t.NIS.Add(row.NIS)
		t.Taxable = t.Taxable.Add(row.TaxableIncome)
		t.IncomeTax = t.IncomeTax.Add(row.IncomeTax)
		out[row.EmployeeID] = t
	}
	return out, nil
}

// EntriesForPeriodEnd returns entries of runs whose period ends in [from, to)
func (r *GormPayrollRunRepository) EntriesForPeriodEnd(ctx context.Context, companyID uuid.UUID, from, to time.Time, statuses []payroll.RunStatus) ([]payroll.PayrollEntry, error) {
	if len(statuses) == 0 {
		return nil, nil
	}
	var rows []models.PayrollEntryModel
	err := r.db.WithContext(ctx).
		Model(&models.PayrollEntryModel{}).
		Joins("JOIN payroll_runs ON payroll_runs.id = payroll_entries.run_id").
		Where("payroll_runs.company_id = ?", companyID).
		Where("payroll_runs.status IN ?", statuses).
		Where("payroll_runs.period_end >= ? AND payroll_runs.period_end < ?", from, to).
		Order("payroll_runs.run_number ASC, payroll_entries.line_no ASC").
		Find(&rows).Error
	if err != nil {
		return nil, translateError("list payroll entries for period", err)
	}
	entries := make([]payroll.PayrollEntry, len(rows))
	for i := range rows {
		entries[i] = rows[i].ToDomain()
	}
	return entries, nil
}

// Ensure GormPayrollRunRepository implements PayrollRunRepository
var _ payroll.PayrollRunRepository = (*GormPayrollRunRepository)(nil)
