package posting

import (
	"fmt"

	"github.com/erp/ledgercore/internal/domain/ledger"
	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InvoiceEvent carries the amounts of a customer invoice. Total defaults to
// subtotal - discount + tax when zero and must equal it otherwise.
type InvoiceEvent struct {
	InvoiceNumber string
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
}

func (e InvoiceEvent) total() decimal.Decimal {
	if e.Total.IsZero() {
		return e.Subtotal.Sub(e.Discount).Add(e.Tax)
	}
	return e.Total
}

// InvoiceCreated books a receivable against gross revenue, output tax and a
// contra-revenue discount.
func InvoiceCreated(e InvoiceEvent) ([]ledger.DraftLine, error) {
	if err := requireNonNegative(map[string]decimal.Decimal{
		"subtotal": e.Subtotal, "discount": e.Discount, "tax": e.Tax, "total": e.Total,
	}); err != nil {
		return nil, err
	}
	expected := e.Subtotal.Sub(e.Discount).Add(e.Tax)
	if !e.Total.IsZero() && !e.Total.Equal(expected) {
		return nil, shared.NewValidationError("INVOICE_TOTAL_MISMATCH",
			fmt.Sprintf("invoice total %s does not equal subtotal - discount + tax (%s)",
				e.Total.StringFixed(2), expected.StringFixed(2)))
	}
	memo := "Invoice " + e.InvoiceNumber
	return []ledger.DraftLine{
		ledger.DebitLine(ledger.AccountAccountsReceivable, e.total(), memo),
		ledger.CreditLine(ledger.AccountSalesRevenue, e.Subtotal, memo),
		ledger.CreditLine(ledger.AccountTaxPayable, e.Tax, memo+" tax"),
		ledger.DebitLine(ledger.AccountSalesDiscounts, e.Discount, memo+" discount"),
	}, nil
}

// InvoiceCancelled is the exact mirror of InvoiceCreated
func InvoiceCancelled(e InvoiceEvent) ([]ledger.DraftLine, error) {
	lines, err := InvoiceCreated(e)
	if err != nil {
		return nil, err
	}
	return ledger.MirrorLines(lines), nil
}

// PaymentEvent is a customer payment against receivables
type PaymentEvent struct {
	Reference string
	Amount    decimal.Decimal
	Method    TenderMethod
}

// PaymentReceived books cash or bank against receivables
func PaymentReceived(e PaymentEvent) ([]ledger.DraftLine, error) {
	if err := requireNonNegative(map[string]decimal.Decimal{"amount": e.Amount}); err != nil {
		return nil, err
	}
	memo := "Payment " + e.Reference
	return []ledger.DraftLine{
		ledger.DebitLine(CashAccountFor(e.Method), e.Amount, memo),
		ledger.CreditLine(ledger.AccountAccountsReceivable, e.Amount, memo),
	}, nil
}
