package ledger

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSignedBalance(t *testing.T) {
	assert.True(t, SignedBalance(NormalBalanceDebit, d("100"), d("30")).Equal(d("70")))
	assert.True(t, SignedBalance(NormalBalanceCredit, d("100"), d("30")).Equal(d("-70")))
	assert.True(t, SignedBalance(NormalBalanceCredit, d("30"), d("100")).Equal(d("70")))
}

func TestBuildTrialBalance(t *testing.T) {
	companyID := uuid.New()
	cash := NewSystemAccount(companyID, mustChart(t, AccountCashOnHand))
	revenue := NewSystemAccount(companyID, mustChart(t, AccountSalesRevenue))

	tb := BuildTrialBalance([]Account{*cash, *revenue}, []AccountTotal{
		{AccountID: cash.ID, Debits: d("500"), Credits: d("100")},
		{AccountID: revenue.ID, Debits: d("100"), Credits: d("500")},
		{AccountID: uuid.New(), Debits: d("1"), Credits: d("0")},
	})

	assert.Len(t, tb.Lines, 2)
	assert.True(t, tb.Lines[0].Balance.Equal(d("400")))
	assert.True(t, tb.Lines[1].Balance.Equal(d("400")))
	assert.True(t, tb.TotalDebits.Equal(d("600")))
	assert.True(t, tb.IsBalanced())
}
