package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/erp/ledgercore/internal/domain/ledger"
	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/erp/ledgercore/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSequenceRepository implements SequenceRepository with a counter row per
// (company, name). The UPDATE takes the row lock, so concurrent callers in
// other transactions queue behind it and never see the same value.
type GormSequenceRepository struct {
	db *gorm.DB
}

// NewGormSequenceRepository creates a new GormSequenceRepository
func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

// WithTx returns a new repository with the given transaction
func (r *GormSequenceRepository) WithTx(tx *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: tx}
}

// Next increments the counter and returns the new value. It must run inside
// the transaction that consumes the value.
func (r *GormSequenceRepository) Next(ctx context.Context, companyID uuid.UUID, name string) (int64, error) {
	db := r.db.WithContext(ctx)

	seed := models.LedgerSequenceModel{CompanyID: companyID, Name: name, LastValue: 0, UpdatedAt: time.Now()}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return 0, translateError("seed sequence", err)
	}

	result := db.Model(&models.LedgerSequenceModel{}).
		Where("company_id = ? AND name = ?", companyID, name).
		Updates(map[string]any{
			"last_value": gorm.Expr("last_value + ?", 1),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return 0, translateError("increment sequence", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, shared.NewPersistenceError("increment sequence", errors.New("sequence row missing after seed"))
	}

	var row models.LedgerSequenceModel
	if err := db.Where("company_id = ? AND name = ?", companyID, name).First(&row).Error; err != nil {
		return 0, translateError("read sequence", err)
	}
	return row.LastValue, nil
}

// Ensure GormSequenceRepository implements SequenceRepository
var _ ledger.SequenceRepository = (*GormSequenceRepository)(nil)
