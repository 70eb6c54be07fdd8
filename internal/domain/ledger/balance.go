package ledger

import (
	"github.com/erp/ledgercore/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SignedBalance returns an account balance signed by its normal side:
// debit-normal accounts report debits minus credits, credit-normal accounts
// report credits minus debits.
func SignedBalance(normal NormalBalance, debits, credits decimal.Decimal) decimal.Decimal {
	if normal == NormalBalanceCredit {
		return credits.Sub(debits)
	}
	return debits.Sub(credits)
}

// AccountTotal is the summed activity of one account
type AccountTotal struct {
	AccountID     uuid.UUID
	AccountNumber string
	Debits        decimal.Decimal
	Credits       decimal.Decimal
}

// TrialBalanceLine is one row of a trial balance
type TrialBalanceLine struct {
	AccountID     uuid.UUID
	AccountNumber string
	AccountName   string
	AccountType   AccountType
	NormalBalance NormalBalance
	Debits        decimal.Decimal
	Credits       decimal.Decimal
	Balance       decimal.Decimal
}

// TrialBalance lists every account with activity
type TrialBalance struct {
	Lines        []TrialBalanceLine
	TotalDebits  decimal.Decimal
	TotalCredits decimal.Decimal
}

// IsBalanced reports whether total debits equal total credits within tolerance
func (tb TrialBalance) IsBalanced() bool {
	return tb.TotalDebits.Sub(tb.TotalCredits).Abs().LessThanOrEqual(valueobject.BalanceTolerance)
}

// BuildTrialBalance joins account activity with account metadata. Totals
// whose account is unknown are skipped.
func BuildTrialBalance(accounts []Account, totals []AccountTotal) TrialBalance {
	byID := make(map[uuid.UUID]Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}

	tb := TrialBalance{
		Lines:        make([]TrialBalanceLine, 0, len(totals)),
		TotalDebits:  decimal.Zero,
		TotalCredits: decimal.Zero,
	}
	for _, t := range totals {
		account, ok := byID[t.AccountID]
		if !ok {
			continue
		}
		tb.Lines = append(tb.Lines, TrialBalanceLine{
			AccountID:     account.ID,
			AccountNumber: account.AccountNumber,
			AccountName:   account.Name,
			AccountType:   account.Type,
			NormalBalance: account.NormalBalance,
			Debits:        t.Debits,
			Credits:       t.Credits,
			Balance:       SignedBalance(account.NormalBalance, t.Debits, t.Credits),
		})
		tb.TotalDebits = tb.TotalDebits.Add(t.Debits)
		tb.TotalCredits = tb.TotalCredits.Add(t.Credits)
	}
	return tb
}
