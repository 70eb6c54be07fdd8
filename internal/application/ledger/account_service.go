package ledger

import (
	"context"
	"fmt"

	"github.com/erp/ledgercore/internal/domain/ledger"
	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateAccountCommand is a request to add a user-defined account
type CreateAccountCommand struct {
	CompanyID     uuid.UUID
	UserID        uuid.UUID
	AccountNumber string
	Name          string
	Type          ledger.AccountType
	SubType       string
	NormalBalance ledger.NormalBalance
}

// AccountService manages the chart of accounts
type AccountService struct {
	accountRepo ledger.AccountRepository
	logger      *zap.Logger
}

// NewAccountService creates a new AccountService
func NewAccountService(accountRepo ledger.AccountRepository, logger *zap.Logger) *AccountService {
	return &AccountService{accountRepo: accountRepo, logger: logger}
}

// CreateAccount adds an account. System codes are reserved for the
// canonical chart.
func (s *AccountService) CreateAccount(ctx context.Context, cmd CreateAccountCommand) (*ledger.Account, error) {
	if ledger.IsSystemCode(cmd.AccountNumber) {
		return nil, shared.NewValidationError("RESERVED_ACCOUNT_NUMBER",
			fmt.Sprintf("account number %s is reserved for the system chart", cmd.AccountNumber))
	}
	account, err := ledger.NewAccount(cmd.CompanyID, cmd.AccountNumber, cmd.Name, cmd.Type, cmd.NormalBalance)
	if err != nil {
		return nil, err
	}
	account.SubType = cmd.SubType
	if cmd.UserID != uuid.Nil {
		createdBy := cmd.UserID
		account.CreatedBy = &createdBy
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		s.logger.Error("failed to create account",
			zap.String("company_id", cmd.CompanyID.String()),
			zap.String("account_number", account.AccountNumber),
			zap.Error(err))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("account created",
		zap.String("company_id", cmd.CompanyID.String()),
		zap.String("account_number", account.AccountNumber))
	return account, nil
}

// ListAccounts returns the company's chart of accounts
func (s *AccountService) ListAccounts(ctx context.Context, companyID uuid.UUID) ([]ledger.Account, error) {
	accounts, err := s.accountRepo.FindAll(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}
