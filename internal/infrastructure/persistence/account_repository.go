package persistence

import (
	"context"

	"github.com/erp/ledgercore/internal/domain/ledger"
	"github.com/erp/ledgercore/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAccountRepository implements AccountRepository using GORM
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GormAccountRepository
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// WithTx returns a new repository with the given transaction
func (r *GormAccountRepository) WithTx(tx *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: tx}
}

// FindByNumber finds an account by its number within a company
func (r *GormAccountRepository) FindByNumber(ctx context.Context, companyID uuid.UUID, number string) (*ledger.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND account_number = ?", companyID, number).
		First(&model).Error; err != nil {
		return nil, translateError("find account by number", err)
	}
	return model.ToDomain(), nil
}

// FindByID finds an account by ID within a company
func (r *GormAccountRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*ledger.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&model).Error; err != nil {
		return nil, translateError("find account", err)
	}
	return model.ToDomain(), nil
}

// FindAll returns the company's chart of accounts ordered by number
func (r *GormAccountRepository) FindAll(ctx context.Context, companyID uuid.UUID) ([]ledger.Account, error) {
	var rows []models.AccountModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("account_number ASC").
		Find(&rows).Error; err != nil {
		return nil, translateError("list accounts", err)
	}
	accounts := make([]ledger.Account, len(rows))
	for i := range rows {
		accounts[i] = *rows[i].ToDomain()
	}
	return accounts, nil
}

// Create inserts a new account
func (r *GormAccountRepository) Create(ctx context.Context, account *ledger.Account) error {
	model := models.AccountModelFromDomain(account)
	return translateError("create account", r.db.WithContext(ctx).Create(model).Error)
}

// CreateIfAbsent inserts the account unless the company already has the number.
// Concurrent creators race on the unique index; the loser is a no-op.
func (r *GormAccountRepository) CreateIfAbsent(ctx context.Context, account *ledger.Account) error {
	model := models.AccountModelFromDomain(account)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "company_id"}, {Name: "account_number"}},
			DoNothing: true,
		}).
		Create(model).Error
	return translateError("create account if absent", err)
}

// Ensure GormAccountRepository implements AccountRepository
var _ ledger.AccountRepository = (*GormAccountRepository)(nil)
