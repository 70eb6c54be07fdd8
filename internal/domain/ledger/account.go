package ledger

import (
	"strings"

	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/google/uuid"
)

// AccountType is the classification of a general ledger account
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeIncome    AccountType = "INCOME"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// IsValid checks if the account type is a known value
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeIncome, AccountTypeExpense:
		return true
	}
	return false
}

// DefaultNormalBalance returns the side on which the type normally carries its balance
func (t AccountType) DefaultNormalBalance() NormalBalance {
	switch t {
	case AccountTypeAsset, AccountTypeExpense:
		return NormalBalanceDebit
	default:
		return NormalBalanceCredit
	}
}

// NormalBalance is the side on which an account increases
type NormalBalance string

const (
	NormalBalanceDebit  NormalBalance = "DEBIT"
	NormalBalanceCredit NormalBalance = "CREDIT"
)

// IsValid checks if the normal balance is a known value
func (n NormalBalance) IsValid() bool {
	return n == NormalBalanceDebit || n == NormalBalanceCredit
}

// Account is a general ledger account in a company's chart of accounts.
// AccountNumber is unique per company and never changes once created.
type Account struct {
	shared.CompanyAggregateRoot
	AccountNumber string
	Name          string
	Type          AccountType
	SubType       string
	NormalBalance NormalBalance
	IsSystem      bool
	IsControl     bool
	IsTax         bool
	IsBank        bool
	IsActive      bool
}

// NewAccount creates a user-defined account
func NewAccount(companyID uuid.UUID, number, name string, accountType AccountType, normal NormalBalance) (*Account, error) {
	if companyID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_COMPANY", "Company ID cannot be empty")
	}
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, shared.NewValidationError("INVALID_ACCOUNT_NUMBER", "Account number cannot be empty")
	}
	if len(number) > 20 {
		return nil, shared.NewValidationError("INVALID_ACCOUNT_NUMBER", "Account number cannot exceed 20 characters")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("INVALID_ACCOUNT_NAME", "Account name cannot be empty")
	}
	if !accountType.IsValid() {
		return nil, shared.NewValidationError("INVALID_ACCOUNT_TYPE", "Account type is not valid")
	}
	if normal == "" {
		normal = accountType.DefaultNormalBalance()
	}
	if !normal.IsValid() {
		return nil, shared.NewValidationError("INVALID_NORMAL_BALANCE", "Normal balance must be DEBIT or CREDIT")
	}

	return &Account{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		AccountNumber:        number,
		Name:                 name,
		Type:                 accountType,
		NormalBalance:        normal,
		IsActive:             true,
	}, nil
}

// NewSystemAccount materializes a canonical chart definition for a company
func NewSystemAccount(companyID uuid.UUID, def ChartAccount) *Account {
	return &Account{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		AccountNumber:        def.Number,
		Name:                 def.Name,
		Type:                 def.Type,
		SubType:              def.SubType,
		NormalBalance:        def.NormalBalance,
		IsSystem:             true,
		IsControl:            def.IsControl,
		IsTax:                def.IsTax,
		IsBank:               def.IsBank,
		IsActive:             true,
	}
}

// Deactivate stops the account from accepting new postings
func (a *Account) Deactivate() error {
	if !a.IsActive {
		return shared.NewStateConflictError("ACCOUNT_INACTIVE", "Account is already inactive")
	}
	a.IsActive = false
	a.IncrementVersion()
	return nil
}
