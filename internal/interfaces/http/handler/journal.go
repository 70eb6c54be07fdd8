package handler

import (
	"fmt"

	appledger "github.com/erp/ledgercore/internal/application/ledger"
	"github.com/erp/ledgercore/internal/domain/ledger"
	"github.com/erp/ledgercore/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// JournalHandler handles journal posting endpoints
type JournalHandler struct {
	BaseHandler
	posting *appledger.PostingService
	events  *appledger.EventPostingService
}

// NewJournalHandler creates a new JournalHandler
func NewJournalHandler(posting *appledger.PostingService, events *appledger.EventPostingService) *JournalHandler {
	return &JournalHandler{posting: posting, events: events}
}

// Post godoc
// @ID           postJournalEntry
// @Summary      Post a manual journal entry
// @Description  Posts a manual journal entry
// @Tags         journal
// @Accept       json
// @Produce      json
// @Param        X-Company-ID header string true "Company scope" format(uuid)
// @Param        X-User-ID header string false "Acting user" format(uuid)
// @Param        Idempotency-Key header string false "Replays the first successful response for a repeated key"
// @Param        request body dto.PostJournalEntryRequest true "Journal entry"
// @Success      201 {object} APIResponse[dto.PostResultResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /journal-entries [post]
func (h *JournalHandler) Post(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	var req dto.PostJournalEntryRequest
	if !h.BindJSON(c, &req) {
		return
	}
	date, err := dto.ParseDate(req.EntryDate)
	if err != nil {
		h.BadRequest(c, "Invalid entry_date")
		return
	}

	result, err := h.posting.Post(c.Request.Context(), appledger.PostCommand{
		CompanyID:        scope.CompanyID,
		UserID:           scope.UserID,
		Date:             date,
		Description:      req.Description,
		Reference:        req.Reference,
		SourceModule:     ledger.SourceManual,
		SourceDocumentID: req.SourceDocumentID,
		Lines:            req.DraftLines(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toPostResultResponse(result))
}

// Reverse godoc
// @ID           reverseJournalEntry
// @Summary      Reverse a journal entry
// @Description  Posts the mirror image of an entry
// @Tags         journal
// @Accept       json
// @Produce      json
// @Param        X-Company-ID header string true "Company scope" format(uuid)
// @Param        X-User-ID header string false "Acting user" format(uuid)
// @Param        Idempotency-Key header string false "Replays the first successful response for a repeated key"
// @Param        id path string true "Journal entry ID" format(uuid)
// @Param        request body dto.ReverseJournalEntryRequest true "Reversal"
// @Success      201 {object} APIResponse[dto.PostResultResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /journal-entries/{id}/reverse [post]
func (h *JournalHandler) Reverse(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	entryID, ok := h.pathID(c)
	if !ok {
		return
	}
	var req dto.ReverseJournalEntryRequest
	if !h.BindJSON(c, &req) {
		return
	}
	date, err := dto.ParseDate(req.EntryDate)
	if err != nil {
		h.BadRequest(c, "Invalid entry_date")
		return
	}

	result, err := h.posting.Reverse(c.Request.Context(), appledger.ReverseCommand{
		CompanyID: scope.CompanyID,
		UserID:    scope.UserID,
		EntryID:   entryID,
		Date:      date,
		Reason:    req.Reason,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toPostResultResponse(result))
}

// InvoiceCreated godoc
// @ID           postInvoiceCreated
// @Summary      Post an invoice
// @Description  Posts the receivable and revenue of a new invoice
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        X-Company-ID header string true "Company scope" format(uuid)
// @Param        X-User-ID header string false "Acting user" format(uuid)
// @Param        Idempotency-Key header string false "Replays the first successful response for a repeated key"
// @Param        request body dto.InvoiceEventRequest true "Invoice event"
// @Success      201 {object} APIResponse[dto.PostResultResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /events/invoice-created [post]
func (h *JournalHandler) InvoiceCreated(c *gin.Context) {
	var req dto.InvoiceEventRequest
	h.postEvent(c, &req, &req.EventHeader, func(ec appledger.EventContext) (*appledger.PostResult, error) {
		return h.events.InvoiceCreated(c.Request.Context(), ec, req.ToEvent())
	})
}

// InvoiceCancelled godoc
// @ID           postInvoiceCancelled
// @Summary      Reverse an invoice
// @Description  Reverses the invoice posting
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        X-Company-ID header string true "Company scope" format(uuid)
// @Param        X-User-ID header string false "Acting user" format(uuid)
// @Param        Idempotency-Key header string false "Replays the first successful response for a repeated key"
// @Param        request body dto.InvoiceEventRequest true "Invoice event"
// @Success      201 {object} APIResponse[dto.PostResultResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /events/invoice-cancelled [post]
func (h *JournalHandler) InvoiceCancelled(c *gin.Context) {
	var req dto.InvoiceEventRequest
	h.postEvent(c, &req, &req.EventHeader, func(ec appledger.EventContext) (*appledger.PostResult, error) {
		return h.events.InvoiceCancelled(c.Request.Context(), ec, req.ToEvent())
	})
}

// PaymentReceived godoc
// @ID           postPaymentReceived
// @Summary      Post a customer payment
// @Description  Posts a customer payment
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        X-Company-ID header string true "Company scope" format(uuid)
// @Param        X-User-ID header string false "Acting user" format(uuid)
// @Param        Idempotency-Key header string false "Replays the first successful response for a repeated key"
// @Param        request body dto.PaymentEventRequest true "Payment event"
// @Success      201 {object} APIResponse[dto.PostResultResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /events/payment-received [post]
func (h *JournalHandler) PaymentReceived(c *gin.Context) {
	var req dto.PaymentEventRequest
	h.postEvent(c, &req, &req.EventHeader, func(ec appledger.EventContext) (*appledger.PostResult, error) {
		return h.events.PaymentReceived(c.Request.Context(), ec, req.ToEvent())
	})
}

// ExpenseRecorded godoc
// @ID           postExpenseRecorded
// @Summary      Post an expense
// @Description  Posts an expense
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        X-Company-ID header string true "Company scope" format(uuid)
// @Param        X-User-ID header string false "Acting user" format(uuid)
// @Param        Idempotency-Key header string false "Replays the first successful response for a repeated key"
// @Param        request body dto.ExpenseEventRequest true "Expense event"
// @Success      201 {object} APIResponse[dto.PostResultResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /events/expense-recorded [post]
func (h *JournalHandler) ExpenseRecorded(c *gin.Context) {
	var req dto.ExpenseEventRequest
	h.postEvent(c, &req, &req.EventHeader, func(ec appledger.EventContext) (*appledger.PostResult, error) {
		return h.events.ExpenseRecorded(c.Request.Context(), ec, req.ToEvent())
	})
}

// POSOrderCompleted godoc
// @ID           postPOSOrderCompleted
// @Summary      Post a point-of-sale order
// @Description  Posts a point-of-sale order
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        X-Company-ID header string true "Company scope" format(uuid)
// @Param        X-User-ID header string false "Acting user" format(uuid)
// @Param        Idempotency-Key header string false "Replays the first successful response for a repeated key"
// @Param        request body dto.POSOrderEventRequest true "POS order event"
// @Success      201 {object} APIResponse[dto.PostResultResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /events/pos-order-completed [post]
func (h *JournalHandler) POSOrderCompleted(c *gin.Context) {
	var req dto.POSOrderEventRequest
	h.postEvent(c, &req, &req.EventHeader, func(ec appledger.EventContext) (*appledger.PostResult, error) {
		return h.events.POSOrderCompleted(c.Request.Context(), ec, req.ToEvent())
	})
}

// POSReturnCompleted godoc
// @ID           postPOSReturnCompleted
// @Summary      Post a point-of-sale return
// @Description  Posts a point-of-sale return
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        X-Company-ID header string true "Company scope" format(uuid)
// @Param        X-User-ID header string false "Acting user" format(uuid)
// @Param        Idempotency-Key header string false "Replays the first successful response for a repeated key"
// @Param        request body dto.POSReturnEventRequest true "POS return event"
// @Success      201 {object} APIResponse[dto.PostResultResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /events/pos-return-completed [post]
func (h *JournalHandler) POSReturnCompleted(c *gin.Context) {
	var req dto.POSReturnEventRequest
	h.postEvent(c, &req, &req.EventHeader, func(ec appledger.EventContext) (*appledger.PostResult, error) {
		return h.events.POSReturnCompleted(c.Request.Context(), ec, req.ToEvent())
	})
}

// postEvent binds req, whose header is embedded at hdr, and runs post
func (h *JournalHandler) postEvent(c *gin.Context, req any, hdr *dto.EventHeader, post func(appledger.EventContext) (*appledger.PostResult, error)) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	if !h.BindJSON(c, req) {
		return
	}
	date, err := dto.ParseDate(hdr.EventDate)
	if err != nil {
		h.BadRequest(c, fmt.Sprintf("Invalid event_date %q", hdr.EventDate))
		return
	}
	ec := appledger.EventContext{
		CompanyID: scope.CompanyID,
		UserID:    scope.UserID,
		Date:      date,
	}
	if hdr.DocumentID != nil {
		ec.DocumentID = *hdr.DocumentID
	}

	result, err := post(ec)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toPostResultResponse(result))
}

func toPostResultResponse(r *appledger.PostResult) dto.PostResultResponse {
	return dto.PostResultResponse{EntryID: r.EntryID, EntryNumber: r.EntryNumber}
}
