package dto

import (
	"time"

	"github.com/erp/ledgercore/internal/domain/ledger"
	"github.com/erp/ledgercore/internal/domain/posting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// ParseDate parses a validated calendar date. An empty string yields the zero time.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// JournalLineRequest is one line of a manual journal entry
type JournalLineRequest struct {
	AccountNumber string          `json:"account_number" binding:"required,max=20"`
	Description   string          `json:"description" binding:"max=500"`
	Debit         decimal.Decimal `json:"debit"`
	Credit        decimal.Decimal `json:"credit"`
}

// PostJournalEntryRequest posts a manual journal entry
type PostJournalEntryRequest struct {
	EntryDate        string               `json:"entry_date" binding:"required,datetime=2006-01-02"`
	Description      string               `json:"description" binding:"required,max=500"`
	Reference        string               `json:"reference" binding:"max=100"`
	SourceDocumentID *uuid.UUID           `json:"source_document_id"`
	Lines            []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// DraftLines converts the request lines
func (r PostJournalEntryRequest) DraftLines() []ledger.DraftLine {
	lines := make([]ledger.DraftLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		lines = append(lines, ledger.DraftLine{
			AccountNumber: l.AccountNumber,
			Description:   l.Description,
			Debit:         l.Debit,
			Credit:        l.Credit,
		})
	}
	return lines
}

// ReverseJournalEntryRequest reverses a posted entry. EntryDate defaults to today.
type ReverseJournalEntryRequest struct {
	EntryDate string `json:"entry_date" binding:"omitempty,datetime=2006-01-02"`
	Reason    string `json:"reason" binding:"required,max=500"`
}

// PostResultResponse identifies a posted entry
type PostResultResponse struct {
	EntryID     uuid.UUID `json:"entry_id"`
	EntryNumber int64     `json:"entry_number"`
}

// EventHeader carries the fields shared by every business event posting
type EventHeader struct {
	EventDate  string     `json:"event_date" binding:"required,datetime=2006-01-02"`
	DocumentID *uuid.UUID `json:"document_id"`
}

// InvoiceEventRequest posts an invoice creation or cancellation
type InvoiceEventRequest struct {
	EventHeader
	InvoiceNumber string          `json:"invoice_number" binding:"required,max=50"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
}

// ToEvent converts the request
func (r InvoiceEventRequest) ToEvent() posting.InvoiceEvent {
	return posting.InvoiceEvent{
		InvoiceNumber: r.InvoiceNumber,
		Subtotal:      r.Subtotal,
		Discount:      r.Discount,
		Tax:           r.Tax,
		Total:         r.Total,
	}
}

// PaymentEventRequest posts a received customer payment
type PaymentEventRequest struct {
	EventHeader
	Reference string          `json:"reference" binding:"required,max=100"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method" binding:"required,oneof=CASH CARD BANK_TRANSFER CHEQUE MOBILE"`
}

// ToEvent converts the request
func (r PaymentEventRequest) ToEvent() posting.PaymentEvent {
	return posting.PaymentEvent{
		Reference: r.Reference,
		Amount:    r.Amount,
		Method:    posting.TenderMethod(r.Method),
	}
}

// ExpenseEventRequest posts a paid operating expense
type ExpenseEventRequest struct {
	EventHeader
	Reference     string          `json:"reference" binding:"required,max=100"`
	Category      string          `json:"category" binding:"required,oneof=RENT UTILITIES OFFICE_SUPPLIES TRAVEL MARKETING MAINTENANCE INSURANCE PROFESSIONAL_FEES OTHER"`
	Description   string          `json:"description" binding:"max=500"`
	Amount        decimal.Decimal `json:"amount"`
	Tax           decimal.Decimal `json:"tax"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	TaxClaimable  bool            `json:"tax_claimable"`
	PaymentMethod string          `json:"payment_method" binding:"required,oneof=CASH CARD BANK_TRANSFER CHEQUE MOBILE"`
}

// ToEvent converts the request
func (r ExpenseEventRequest) ToEvent() posting.ExpenseEvent {
	return posting.ExpenseEvent{
		Reference:     r.Reference,
		Category:      posting.ExpenseCategory(r.Category),
		Description:   r.Description,
		Amount:        r.Amount,
		Tax:           r.Tax,
		TaxRate:       r.TaxRate,
		TaxClaimable:  r.TaxClaimable,
		PaymentMethod: posting.TenderMethod(r.PaymentMethod),
	}
}

// TenderRequest is one payment instrument of a sale or refund
type TenderRequest struct {
	Method string          `json:"method" binding:"required,oneof=CASH CARD BANK_TRANSFER CHEQUE MOBILE"`
	Amount decimal.Decimal `json:"amount"`
}

func toTenders(in []TenderRequest) []posting.Tender {
	out := make([]posting.Tender, 0, len(in))
	for _, t := range in {
		out = append(out, posting.Tender{Method: posting.TenderMethod(t.Method), Amount: t.Amount})
	}
	return out
}

// POSOrderEventRequest posts a completed point-of-sale order
type POSOrderEventRequest struct {
	EventHeader
	OrderNumber string          `json:"order_number" binding:"required,max=50"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Discount    decimal.Decimal `json:"discount"`
	Tax         decimal.Decimal `json:"tax"`
	CostOfGoods decimal.Decimal `json:"cost_of_goods"`
	Tenders     []TenderRequest `json:"tenders" binding:"required,min=1,dive"`
}

// ToEvent converts the request
func (r POSOrderEventRequest) ToEvent() posting.POSOrderEvent {
	return posting.POSOrderEvent{
		OrderNumber: r.OrderNumber,
		Subtotal:    r.Subtotal,
		Discount:    r.Discount,
		Tax:         r.Tax,
		CostOfGoods: r.CostOfGoods,
		Tenders:     toTenders(r.Tenders),
	}
}

// ReturnItemRequest is one returned item line
type ReturnItemRequest struct {
	Quantity          decimal.Decimal `json:"quantity"`
	RestockedQuantity decimal.Decimal `json:"restocked_quantity"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
}

// POSReturnEventRequest posts a completed point-of-sale refund
type POSReturnEventRequest struct {
	EventHeader
	ReturnNumber string              `json:"return_number" binding:"required,max=50"`
	Subtotal     decimal.Decimal     `json:"subtotal"`
	Discount     decimal.Decimal     `json:"discount"`
	Tax          decimal.Decimal     `json:"tax"`
	Items        []ReturnItemRequest `json:"items" binding:"dive"`
	Tenders      []TenderRequest     `json:"tenders" binding:"required,min=1,dive"`
}

// ToEvent converts the request
func (r POSReturnEventRequest) ToEvent() posting.POSReturnEvent {
	items := make([]posting.ReturnItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, posting.ReturnItem{
			Quantity:          it.Quantity,
			RestockedQuantity: it.RestockedQuantity,
			UnitCost:          it.UnitCost,
		})
	}
	return posting.POSReturnEvent{
		ReturnNumber: r.ReturnNumber,
		Subtotal:     r.Subtotal,
		Discount:     r.Discount,
		Tax:          r.Tax,
		Items:        items,
		Tenders:      toTenders(r.Tenders),
	}
}

// CreateAccountRequest adds a user-defined account to the chart
type CreateAccountRequest struct {
	AccountNumber string `json:"account_number" binding:"required,max=20"`
	Name          string `json:"name" binding:"required,max=200"`
	Type          string `json:"type" binding:"required,oneof=ASSET LIABILITY EQUITY INCOME EXPENSE"`
	SubType       string `json:"sub_type" binding:"max=50"`
	NormalBalance string `json:"normal_balance" binding:"omitempty,oneof=DEBIT CREDIT"`
}

// AccountResponse is a chart-of-accounts entry
type AccountResponse struct {
	ID            uuid.UUID `json:"id"`
	AccountNumber string    `json:"account_number"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	SubType       string    `json:"sub_type,omitempty"`
	NormalBalance string    `json:"normal_balance"`
	IsSystem      bool      `json:"is_system"`
	IsControl     bool      `json:"is_control"`
	IsTax         bool      `json:"is_tax"`
	IsBank        bool      `json:"is_bank"`
	IsActive      bool      `json:"is_active"`
}

// ToAccountResponse converts a domain account
func ToAccountResponse(a *ledger.Account) AccountResponse {
	return AccountResponse{
		ID:            a.ID,
		AccountNumber: a.AccountNumber,
		Name:          a.Name,
		Type:          string(a.Type),
		SubType:       a.SubType,
		NormalBalance: string(a.NormalBalance),
		IsSystem:      a.IsSystem,
		IsControl:     a.IsControl,
		IsTax:         a.IsTax,
		IsBank:        a.IsBank,
		IsActive:      a.IsActive,
	}
}

// TrialBalanceQuery selects the trial balance cut-off. AsOf defaults to today.
type TrialBalanceQuery struct {
	AsOf string `form:"as_of" binding:"omitempty,datetime=2006-01-02"`
}

// TrialBalanceLineResponse is one account row of a trial balance
type TrialBalanceLineResponse struct {
	AccountID     uuid.UUID       `json:"account_id"`
	AccountNumber string          `json:"account_number"`
	AccountName   string          `json:"account_name"`
	AccountType   string          `json:"account_type"`
	NormalBalance string          `json:"normal_balance"`
	Debits        decimal.Decimal `json:"debits"`
	Credits       decimal.Decimal `json:"credits"`
	Balance       decimal.Decimal `json:"balance"`
}

// TrialBalanceResponse is the trial balance as of a date
type TrialBalanceResponse struct {
	AsOf         string                     `json:"as_of"`
	Currency     string                     `json:"currency"`
	Lines        []TrialBalanceLineResponse `json:"lines"`
	TotalDebits  decimal.Decimal            `json:"total_debits"`
	TotalCredits decimal.Decimal            `json:"total_credits"`
	Balanced     bool                       `json:"balanced"`
}

// ToTrialBalanceResponse converts a domain trial balance
func ToTrialBalanceResponse(tb *ledger.TrialBalance, asOf time.Time, currency string) TrialBalanceResponse {
	lines := make([]TrialBalanceLineResponse, 0, len(tb.Lines))
	for _, l := range tb.Lines {
		lines = append(lines, TrialBalanceLineResponse{
			AccountID:     l.AccountID,
			AccountNumber: l.AccountNumber,
			AccountName:   l.AccountName,
			AccountType:   string(l.AccountType),
			NormalBalance: string(l.NormalBalance),
			Debits:        l.Debits,
			Credits:       l.Credits,
			Balance:       l.Balance,
		})
	}
	return TrialBalanceResponse{
		AsOf:         asOf.Format(DateLayout),
		Currency:     currency,
		Lines:        lines,
		TotalDebits:  tb.TotalDebits,
		TotalCredits: tb.TotalCredits,
		Balanced:     tb.IsBalanced(),
	}
}
