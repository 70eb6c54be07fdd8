package ledger

import (
	"context"
	"time"

	"github.com/erp/ledgercore/internal/domain/ledger"
	"github.com/erp/ledgercore/internal/domain/posting"
	"github.com/google/uuid"
)

// EventContext carries the fields every business-event posting shares
type EventContext struct {
	CompanyID  uuid.UUID
	UserID     uuid.UUID
	Date       time.Time
	DocumentID uuid.UUID
}

func (e EventContext) command(source, description, reference string, lines []ledger.DraftLine) PostCommand {
	cmd := PostCommand{
		CompanyID:    e.CompanyID,
		UserID:       e.UserID,
		Date:         e.Date,
		Description:  description,
		Reference:    reference,
		SourceModule: source,
		Lines:        lines,
	}
	if e.DocumentID != uuid.Nil {
		id := e.DocumentID
		cmd.SourceDocumentID = &id
	}
	return cmd
}

// EventPostingService turns business events into journal entries through
// the posting templates, so callers never assemble lines by hand.
type EventPostingService struct {
	posting *PostingService
}

// NewEventPostingService creates a new EventPostingService
func NewEventPostingService(postingService *PostingService) *EventPostingService {
	return &EventPostingService{posting: postingService}
}

// InvoiceCreated posts a new customer invoice
func (s *EventPostingService) InvoiceCreated(ctx context.Context, ec EventContext, e posting.InvoiceEvent) (*PostResult, error) {
	lines, err := posting.InvoiceCreated(e)
	if err != nil {
		return nil, err
	}
	return s.posting.Post(ctx, ec.command(ledger.SourceInvoice, "Invoice "+e.InvoiceNumber, e.InvoiceNumber, lines))
}

// InvoiceCancelled posts the mirror of a cancelled invoice
func (s *EventPostingService) InvoiceCancelled(ctx context.Context, ec EventContext, e posting.InvoiceEvent) (*PostResult, error) {
	lines, err := posting.InvoiceCancelled(e)
	if err != nil {
		return nil, err
	}
	return s.posting.Post(ctx, ec.command(ledger.SourceInvoice, "Cancelled invoice "+e.InvoiceNumber, e.InvoiceNumber, lines))
}

// PaymentReceived posts a customer payment
func (s *EventPostingService) PaymentReceived(ctx context.Context, ec EventContext, e posting.PaymentEvent) (*PostResult, error) {
	lines, err := posting.PaymentReceived(e)
	if err != nil {
		return nil, err
	}
	return s.posting.Post(ctx, ec.command(ledger.SourcePayment, "Payment "+e.Reference, e.Reference, lines))
}

// ExpenseRecorded posts a paid expense
func (s *EventPostingService) ExpenseRecorded(ctx context.Context, ec EventContext, e posting.ExpenseEvent) (*PostResult, error) {
	lines, err := posting.ExpenseRecorded(e)
	if err != nil {
		return nil, err
	}
	description := e.Description
	if description == "" {
		description = "Expense " + e.Reference
	}
	return s.posting.Post(ctx, ec.command(ledger.SourceExpense, description, e.Reference, lines))
}

// POSOrderCompleted posts a completed point-of-sale order
func (s *EventPostingService) POSOrderCompleted(ctx context.Context, ec EventContext, e posting.POSOrderEvent) (*PostResult, error) {
	lines, err := posting.POSOrderCompleted(e)
	if err != nil {
		return nil, err
	}
	return s.posting.Post(ctx, ec.command(ledger.SourcePOS, "POS order "+e.OrderNumber, e.OrderNumber, lines))
}

// POSReturnCompleted posts a completed point-of-sale refund
func (s *EventPostingService) POSReturnCompleted(ctx context.Context, ec EventContext, e posting.POSReturnEvent) (*PostResult, error) {
	lines, err := posting.POSReturnCompleted(e)
	if err != nil {
		return nil, err
	}
	return s.posting.Post(ctx, ec.command(ledger.SourcePOS, "POS return "+e.ReturnNumber, e.ReturnNumber, lines))
}
