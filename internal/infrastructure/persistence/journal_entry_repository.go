package persistence

import (
	"context"
	"time"

	"github.com/erp/ledgercore/internal/domain/ledger"
	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/erp/ledgercore/internal/domain/shared/valueobject"
	"github.com/erp/ledgercore/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormJournalEntryRepository implements JournalEntryRepository using GORM
type GormJournalEntryRepository struct {
	db *gorm.DB
}

// NewGormJournalEntryRepository creates a new GormJournalEntryRepository
func NewGormJournalEntryRepository(db *gorm.DB) *GormJournalEntryRepository {
	return &GormJournalEntryRepository{db: db}
}

// WithTx returns a new repository with the given transaction
func (r *GormJournalEntryRepository) WithTx(tx *gorm.DB) *GormJournalEntryRepository {
	return &GormJournalEntryRepository{db: tx}
}

// Create inserts the entry header and its lines
func (r *GormJournalEntryRepository) Create(ctx context.Context, entry *ledger.JournalEntry) error {
	model := models.JournalEntryModelFromDomain(entry)
	lines := model.Lines
	model.Lines = nil

	db := r.db.WithContext(ctx)
	if err := db.Omit("Lines").Create(model).Error; err != nil {
		return translateError("create journal entry", err)
	}
	if len(lines) > 0 {
		if err := db.Create(&lines).Error; err != nil {
			return translateError("create journal lines", err)
		}
	}
	return nil
}

// FindByID finds a journal entry with its lines
func (r *GormJournalEntryRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*ledger.JournalEntry, error) {
	var model models.JournalEntryModel
	if err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("line_no ASC") }).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&model).Error; err != nil {
		return nil, translateError("find journal entry", err)
	}
	return model.ToDomain(), nil
}

// FindBySource finds entries posted for a source document, oldest first
func (r *GormJournalEntryRepository) FindBySource(ctx context.Context, companyID uuid.UUID, sourceModule string, sourceDocumentID uuid.UUID) ([]ledger.JournalEntry, error) {
	var rows []models.JournalEntryModel
	if err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("line_no ASC") }).
		Where("company_id = ? AND source_module = ? AND source_document_id = ?", companyID, sourceModule, sourceDocumentID).
		Order("entry_number ASC").
		Find(&rows).Error; err != nil {
		return nil, translateError("find journal entries by source", err)
	}
	entries := make([]ledger.JournalEntry, len(rows))
	for i := range rows {
		entries[i] = *rows[i].ToDomain()
	}
	return entries, nil
}

// MarkReversed links a reversal entry to the original
func (r *GormJournalEntryRepository) MarkReversed(ctx context.Context, companyID, id, reversedByID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.JournalEntryModel{}).
		Where("company_id = ? AND id = ? AND reversed_by_id IS NULL", companyID, id).
		Updates(map[string]any{
			"reversed_by_id": reversedByID,
			"version":        gorm.Expr("version + 1"),
			"updated_at":     time.Now(),
		})
	if result.Error != nil {
		return translateError("mark journal entry reversed", result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.NewStateConflictError("ENTRY_ALREADY_REVERSED", "Journal entry has already been reversed")
	}
	return nil
}

type accountTotalRow struct {
	AccountID     uuid.UUID
	AccountNumber string
	Debits        decimal.Decimal
	Credits       decimal.Decimal
}

// AccountTotals sums debits and credits per account up to and including asOf
func (r *GormJournalEntryRepository) AccountTotals(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]ledger.AccountTotal, error) {
	var rows []accountTotalRow
	err := r.db.WithContext(ctx).
		Table("journal_lines AS l").
		Select("l.account_id, l.account_number, COALESCE(SUM(l.debit_amount), 0) AS debits, COALESCE(SUM(l.credit_amount), 0) AS credits").
		Joins("JOIN journal_entries AS e ON e.id = l.entry_id").
		Where("e.company_id = ? AND e.entry_date <= ?", companyID, asOf).
		Group("l.account_id, l.account_number").
		Order("l.account_number ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, translateError("sum account totals", err)
	}

	totals := make([]ledger.AccountTotal, len(rows))
	for i, row := range rows {
		totals[i] = ledger.AccountTotal{
			AccountID:     row.AccountID,
			AccountNumber: row.AccountNumber,
			Debits:        valueobject.RoundMoney(row.Debits),
			Credits:       valueobject.RoundMoney(row.Credits),
		}
	}
	return totals, nil
}

// Ensure GormJournalEntryRepository implements JournalEntryRepository
var _ ledger.JournalEntryRepository = (*GormJournalEntryRepository)(nil)
