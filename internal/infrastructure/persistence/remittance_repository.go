package persistence

import (
	"context"
	"time"

	"github.com/erp/ledgercore/internal/domain/payroll"
	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/erp/ledgercore/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRemittanceRepository implements RemittanceRepository using GORM
type GormRemittanceRepository struct {
	db *gorm.DB
}

// NewGormRemittanceRepository creates a new GormRemittanceRepository
func NewGormRemittanceRepository(db *gorm.DB) *GormRemittanceRepository {
	return &GormRemittanceRepository{db: db}
}

// WithTx returns a new repository with the given transaction
func (r *GormRemittanceRepository) WithTx(tx *gorm.DB) *GormRemittanceRepository {
	return &GormRemittanceRepository{db: tx}
}

// FindByID finds a remittance by ID
func (r *GormRemittanceRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*payroll.StatutoryRemittance, error) {
	var model models.StatutoryRemittanceModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&model).Error; err != nil {
		return nil, translateError("find remittance", err)
	}
	return model.ToDomain(), nil
}

// FindByPeriod finds the remittance of one type for a period month
func (r *GormRemittanceRepository) FindByPeriod(ctx context.Context, companyID uuid.UUID, t payroll.RemittanceType, periodMonth string) (*payroll.StatutoryRemittance, error) {
	var model models.StatutoryRemittanceModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND remittance_type = ? AND period_month = ?", companyID, t, periodMonth).
		First(&model).Error; err != nil {
		return nil, translateError("find remittance by period", err)
	}
	return model.ToDomain(), nil
}

// ListByPeriod lists all remittances for a period month
func (r *GormRemittanceRepository) ListByPeriod(ctx context.Context, companyID uuid.UUID, periodMonth string) ([]payroll.StatutoryRemittance, error) {
	var rows []models.StatutoryRemittanceModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND period_month = ?", companyID, periodMonth).
		Order("remittance_type ASC").
		Find(&rows).Error; err != nil {
		return nil, translateError("list remittances", err)
	}
	return remittancesToDomain(rows), nil
}

// FindPendingDueBefore lists PENDING remittances due before asOf
func (r *GormRemittanceRepository) FindPendingDueBefore(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]payroll.StatutoryRemittance, error) {
	var rows []models.StatutoryRemittanceModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND status = ? AND due_date < ?", companyID, payroll.RemittanceStatusPending, asOf).
		Order("due_date ASC").
		Find(&rows).Error; err != nil {
		return nil, translateError("find pending remittances", err)
	}
	return remittancesToDomain(rows), nil
}

// CreateIfAbsent inserts the remittance unless its period already has one
func (r *GormRemittanceRepository) CreateIfAbsent(ctx context.Context, rem *payroll.StatutoryRemittance) (bool, error) {
	model := models.StatutoryRemittanceModelFromDomain(rem)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "company_id"}, {Name: "remittance_type"}, {Name: "period_month"}},
			DoNothing: true,
		}).
		Create(model)
	if result.Error != nil {
		return false, translateError("create remittance", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// Save updates a remittance with optimistic locking
func (r *GormRemittanceRepository) Save(ctx context.Context, rem *payroll.StatutoryRemittance) error {
	result := r.db.WithContext(ctx).
		Model(&models.StatutoryRemittanceModel{}).
		Where("id = ? AND company_id = ? AND version = ?", rem.ID, rem.CompanyID, rem.Version-1).
		Updates(map[string]any{
			"employee_amount":  rem.EmployeeAmount,
			"employer_amount":  rem.EmployerAmount,
			"amount_due":       rem.AmountDue,
			"amount_paid":      rem.AmountPaid,
			"status":           rem.Status,
			"paid_at":          rem.PaidAt,
			"journal_entry_id": rem.JournalEntryID,
			"version":          rem.Version,
			"updated_at":       rem.UpdatedAt,
		})
	if result.Error != nil {
		return translateError("save remittance", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

func remittancesToDomain(rows []models.StatutoryRemittanceModel) []payroll.StatutoryRemittance {
	out := make([]payroll.StatutoryRemittance, len(rows))
	for i := range rows {
		out[i] = *rows[i].ToDomain()
	}
	return out
}

// Ensure GormRemittanceRepository implements RemittanceRepository
var _ payroll.RemittanceRepository = (*GormRemittanceRepository)(nil)
