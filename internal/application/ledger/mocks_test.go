package ledger

import (
	"context"
	"time"

	"github.com/erp/ledgercore/internal/domain/ledger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock implementation of ledger.AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByNumber(ctx context.Context, companyID uuid.UUID, number string) (*ledger.Account, error) {
	args := m.Called(ctx, companyID, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*ledger.Account, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAll(ctx context.Context, companyID uuid.UUID) ([]ledger.Account, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.Account), args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *ledger.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) CreateIfAbsent(ctx context.Context, account *ledger.Account) error {
	return m.Called(ctx, account).Error(0)
}

// MockJournalEntryRepository is a mock implementation of ledger.JournalEntryRepository
type MockJournalEntryRepository struct {
	mock.Mock
}

func (m *MockJournalEntryRepository) Create(ctx context.Context, entry *ledger.JournalEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockJournalEntryRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*ledger.JournalEntry, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryRepository) FindBySource(ctx context.Context, companyID uuid.UUID, sourceModule string, sourceDocumentID uuid.UUID) ([]ledger.JournalEntry, error) {
	args := m.Called(ctx, companyID, sourceModule, sourceDocumentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.JournalEntry), args.Error(1)
}

func (m *MockJournalEntryRepository) MarkReversed(ctx context.Context, companyID, id, reversedByID uuid.UUID) error {
	return m.Called(ctx, companyID, id, reversedByID).Error(0)
}

func (m *MockJournalEntryRepository) AccountTotals(ctx context.Context, companyID uuid.UUID, asOf time.Time) ([]ledger.AccountTotal, error) {
	args := m.Called(ctx, companyID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ledger.AccountTotal), args.Error(1)
}

// MockSequenceRepository is a mock implementation of ledger.SequenceRepository
type MockSequenceRepository struct {
	mock.Mock
}

func (m *MockSequenceRepository) Next(ctx context.Context, companyID uuid.UUID, name string) (int64, error) {
	args := m.Called(ctx, companyID, name)
	return args.Get(0).(int64), args.Error(1)
}
