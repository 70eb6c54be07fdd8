package persistence

import (
	"context"

	"github.com/erp/ledgercore/internal/domain/payroll"
	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/erp/ledgercore/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormLoanDeductionRepository implements LoanDeductionRepository using GORM
type GormLoanDeductionRepository struct {
	db *gorm.DB
}

// NewGormLoanDeductionRepository creates a new GormLoanDeductionRepository
func NewGormLoanDeductionRepository(db *gorm.DB) *GormLoanDeductionRepository {
	return &GormLoanDeductionRepository{db: db}
}

// WithTx returns a new repository with the given transaction
func (r *GormLoanDeductionRepository) WithTx(tx *gorm.DB) *GormLoanDeductionRepository {
	return &GormLoanDeductionRepository{db: tx}
}

// Create inserts a new loan deduction
func (r *GormLoanDeductionRepository) Create(ctx context.Context, loan *payroll.LoanDeduction) error {
	model := models.LoanDeductionModelFromDomain(loan)
	return translateError("create loan deduction", r.db.WithContext(ctx).Create(model).Error)
}

// FindActiveByEmployees returns active loans for the employees, oldest first
func (r *GormLoanDeductionRepository) FindActiveByEmployees(ctx context.Context, companyID uuid.UUID, employeeIDs []uuid.UUID) ([]payroll.LoanDeduction, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	var rows []models.LoanDeductionModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_active = ? AND employee_id IN ?", companyID, true, employeeIDs).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, translateError("find active loan deductions", err)
	}
	loans := make([]payroll.LoanDeduction, len(rows))
	for i := range rows {
		loans[i] = *rows[i].ToDomain()
	}
	return loans, nil
}

// Save updates a loan deduction with optimistic locking
func (r *GormLoanDeductionRepository) Save(ctx context.Context, loan *payroll.LoanDeduction) error {
	result := r.db.WithContext(ctx).
		Model(&models.LoanDeductionModel{}).
		Where("id = ? AND company_id = ? AND version = ?", loan.ID, loan.CompanyID, loan.Version-1).
		Updates(map[string]any{
			"remaining_balance": loan.RemainingBalance,
			"total_paid":        loan.TotalPaid,
			"is_active":         loan.IsActive,
			"version":           loan.Version,
			"updated_at":        loan.UpdatedAt,
		})
	if result.Error != nil {
		return translateError("save loan deduction", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Ensure GormLoanDeductionRepository implements LoanDeductionRepository
var _ payroll.LoanDeductionRepository = (*GormLoanDeductionRepository)(nil)
