package posting

import (
	"github.com/erp/ledgercore/internal/domain/ledger"
	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TenderMethod is how money changes hands
type TenderMethod string

const (
	TenderCash         TenderMethod = "CASH"
	TenderCard         TenderMethod = "CARD"
	TenderBankTransfer TenderMethod = "BANK_TRANSFER"
	TenderCheque       TenderMethod = "CHEQUE"
	TenderMobile       TenderMethod = "MOBILE"
)

// CashAccountFor returns the cash account for CASH and the operating bank
// account for every other method.
func CashAccountFor(method TenderMethod) string {
	if method == TenderCash {
		return ledger.AccountCashOnHand
	}
	return ledger.AccountBankOperating
}

// Tender is one payment instrument used on a sale or refund
type Tender struct {
	Method TenderMethod
	Amount decimal.Decimal
}

func requireNonNegative(fields map[string]decimal.Decimal) error {
	for name, v := range fields {
		if v.IsNegative() {
			return shared.NewValidationError("INVALID_AMOUNT", name+" cannot be negative")
		}
	}
	return nil
}
