package posting

import (
	"github.com/erp/ledgercore/internal/domain/ledger"
	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/erp/ledgercore/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// POSOrderEvent is a completed point-of-sale order. Tender amounts only set
// the proportions; cash tendered above the total is change.
type POSOrderEvent struct {
	OrderNumber string
	Subtotal    decimal.Decimal
	Discount    decimal.Decimal
	Tax         decimal.Decimal
	CostOfGoods decimal.Decimal
	Tenders     []Tender
}

// Total is the amount collected
func (e POSOrderEvent) Total() decimal.Decimal {
	return e.Subtotal.Sub(e.Discount).Add(e.Tax)
}

// POSOrderCompleted books the sale, its tenders and the cost of goods sold
func POSOrderCompleted(e POSOrderEvent) ([]ledger.DraftLine, error) {
	if err := requireNonNegative(map[string]decimal.Decimal{
		"subtotal": e.Subtotal, "discount": e.Discount, "tax": e.Tax, "cost of goods": e.CostOfGoods,
	}); err != nil {
		return nil, err
	}
	memo := "POS order " + e.OrderNumber

	lines, err := tenderLines(e.Tenders, e.Total(), memo, false)
	if err != nil {
		return nil, err
	}
	return append(lines,
		ledger.DebitLine(ledger.AccountSalesDiscounts, e.Discount, memo+" discount"),
		ledger.DebitLine(ledger.AccountCostOfGoodsSold, e.CostOfGoods, memo+" cost of goods"),
		ledger.CreditLine(ledger.AccountInventory, e.CostOfGoods, memo+" cost of goods"),
		ledger.CreditLine(ledger.AccountSalesRevenue, e.Subtotal, memo),
		ledger.CreditLine(ledger.AccountTaxPayable, e.Tax, memo+" tax"),
	), nil
}

// ReturnItem is one returned product line
type ReturnItem struct {
	Quantity          decimal.Decimal
	RestockedQuantity decimal.Decimal
	UnitCost          decimal.Decimal
}

// POSReturnEvent is a completed refund. Tenders are the refund instruments.
type POSReturnEvent struct {
	ReturnNumber string
	Subtotal     decimal.Decimal
	Discount     decimal.Decimal
	Tax          decimal.Decimal
	Items        []ReturnItem
	Tenders      []Tender
}

// Total is the amount refunded
func (e POSReturnEvent) Total() decimal.Decimal {
	return e.Subtotal.Sub(e.Discount).Add(e.Tax)
}

// RestockedCost is the cost of the goods put back into inventory
func (e POSReturnEvent) RestockedCost() (decimal.Decimal, error) {
	cost := decimal.Zero
	for _, item := range e.Items {
		if item.Quantity.IsNegative() || item.RestockedQuantity.IsNegative() || item.UnitCost.IsNegative() {
			return decimal.Zero, shared.NewValidationError("INVALID_RETURN_ITEM", "return quantities and costs cannot be negative")
		}
		if item.RestockedQuantity.GreaterThan(item.Quantity) {
			return decimal.Zero, shared.NewValidationError("INVALID_RETURN_ITEM", "restocked quantity cannot exceed returned quantity")
		}
		cost = cost.Add(item.RestockedQuantity.Mul(item.UnitCost))
	}
	return valueobject.RoundMoney(cost), nil
}

// POSReturnCompleted mirrors the order pattern for the refunded amounts.
// Only restocked goods move back into inventory.
func POSReturnCompleted(e POSReturnEvent) ([]ledger.DraftLine, error) {
	if err := requireNonNegative(map[string]decimal.Decimal{
		"subtotal": e.Subtotal, "discount": e.Discount, "tax": e.Tax,
	}); err != nil {
		return nil, err
	}
	restocked, err := e.RestockedCost()
	if err != nil {
		return nil, err
	}
	memo := "POS return " + e.ReturnNumber

	lines, err := tenderLines(e.Tenders, e.Total(), memo, true)
	if err != nil {
		return nil, err
	}
	return append(lines,
		ledger.CreditLine(ledger.AccountSalesDiscounts, e.Discount, memo+" discount"),
		ledger.DebitLine(ledger.AccountInventory, restocked, memo+" restock"),
		ledger.CreditLine(ledger.AccountCostOfGoodsSold, restocked, memo+" restock"),
		ledger.DebitLine(ledger.AccountSalesRevenue, e.Subtotal, memo),
		ledger.DebitLine(ledger.AccountTaxPayable, e.Tax, memo+" tax"),
	), nil
}

// tenderLines splits total across tenders by their amounts, the last
// tender taking the rounding remainder.
func tenderLines(tenders []Tender, total decimal.Decimal, memo string, refund bool) ([]ledger.DraftLine, error) {
	if len(tenders) == 0 {
		return nil, shared.NewValidationError("MISSING_TENDER", "at least one tender is required")
	}
	weights := make([]decimal.Decimal, len(tenders))
	for i, t := range tenders {
		weights[i] = t.Amount
	}
	shares, err := valueobject.AllocateByWeights(total, weights)
	if err != nil {
		return nil, shared.NewValidationError("INVALID_TENDER", err.Error())
	}

	lines := make([]ledger.DraftLine, 0, len(tenders)+5)
	for i, t := range tenders {
		account := CashAccountFor(t.Method)
		desc := memo + " " + string(t.Method)
		if refund {
			lines = append(lines, ledger.CreditLine(account, shares[i], desc))
		} else {
			lines = append(lines, ledger.DebitLine(account, shares[i], desc))
		}
	}
	return lines, nil
}
