package persistence

import (
	"context"

	"github.com/erp/ledgercore/internal/domain/payroll"
	"github.com/erp/ledgercore/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPensionPlanRepository implements PensionPlanRepository using GORM
type GormPensionPlanRepository struct {
	db *gorm.DB
}

// NewGormPensionPlanRepository creates a new GormPensionPlanRepository
func NewGormPensionPlanRepository(db *gorm.DB) *GormPensionPlanRepository {
	return &GormPensionPlanRepository{db: db}
}

// WithTx returns a new repository with the given transaction
func (r *GormPensionPlanRepository) WithTx(tx *gorm.DB) *GormPensionPlanRepository {
	return &GormPensionPlanRepository{db: tx}
}

// Create inserts a new pension plan
func (r *GormPensionPlanRepository) Create(ctx context.Context, plan *payroll.PensionPlan) error {
	model := models.PensionPlanModelFromDomain(plan)
	return translateError("create pension plan", r.db.WithContext(ctx).Create(model).Error)
}

// FindActiveByEmployees returns active plans for the employees
func (r *GormPensionPlanRepository) FindActiveByEmployees(ctx context.Context, companyID uuid.UUID, employeeIDs []uuid.UUID) ([]payroll.PensionPlan, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	var rows []models.PensionPlanModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_active = ? AND employee_id IN ?", companyID, true, employeeIDs).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, translateError("find active pension plans", err)
	}
	plans := make([]payroll.PensionPlan, len(rows))
	for i := range rows {
		plans[i] = *rows[i].ToDomain()
	}
	return plans, nil
}

// Ensure GormPensionPlanRepository implements PensionPlanRepository
var _ payroll.PensionPlanRepository = (*GormPensionPlanRepository)(nil)
