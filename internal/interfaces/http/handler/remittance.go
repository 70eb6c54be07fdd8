package handler

import (
	"time"

	apppayroll "github.com/erp/ledgercore/internal/application/payroll"
	"github.com/erp/ledgercore/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// RemittanceHandler handles statutory remittance endpoints
type RemittanceHandler struct {
	BaseHandler
	remittances *apppayroll.RemittanceService
	now         func() time.Time
}

// NewRemittanceHandler creates a new RemittanceHandler
func NewRemittanceHandler(remittances *apppayroll.RemittanceService) *RemittanceHandler {
	return &RemittanceHandler{remittances: remittances, now: time.Now}
}

// Generate godoc
// @ID           generateRemittances
// @Summary      Generate monthly remittances
// @Description  Builds or refreshes the remittances of a month from its approved and paid runs
// @Tags         remittances
// @Accept       json
// @Produce      json
// @Param        X-Company-ID header string true "Company scope" format(uuid)
// @Param        X-User-ID header string false "Acting user" format(uuid)
// @Param        request body dto.GenerateRemittancesRequest true "Remittance month"
// @Success      200 {object} APIResponse[[]dto.RemittanceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /remittances/generate [post]
func (h *RemittanceHandler) Generate(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	var req dto.GenerateRemittancesRequest
	if !h.BindJSON(c, &req) {
		return
	}
	out, err := h.remittances.Generate(c.Request.Context(), apppayroll.GenerateCommand{
		CompanyID: scope.CompanyID,
		Year:      req.Year,
		Month:     time.Month(req.Month),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToRemittanceResponses(out))
}

// List godoc
// @ID           listRemittances
// @Summary      List remittances of a month
// @Description  Returns the remittances of a month
// @Tags         remittances
// @Produce      json
// @Param        X-Company-ID header string true "Company scope" format(uuid)
// @Param        X-User-ID header string false "Acting user" format(uuid)
// @Param        year query int true "Year" minimum(2000) maximum(2100)
// @Param        month query int true "Month" minimum(1) maximum(12)
// @Success      200 {object} APIResponse[[]dto.RemittanceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /remittances [get]
func (h *RemittanceHandler) List(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	var query dto.ListRemittancesQuery
	if !h.BindQuery(c, &query) {
		return
	}
	out, err := h.remittances.ListRemittances(c.Request.Context(), scope.CompanyID, query.Year, time.Month(query.Month))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToRemittanceResponses(out))
}

// Pay godoc
// @ID           payRemittance
// @Summary      Pay a remittance
// @Description  Records a payment against a remittance and posts it
// @Tags         remittances
// @Accept       json
// @Produce      json
// @Param        X-Company-ID header string true "Company scope" format(uuid)
// @Param        X-User-ID header string false "Acting user" format(uuid)
// @Param        Idempotency-Key header string false "Replays the first successful response for a repeated key"
// @Param        id path string true "Remittance ID" format(uuid)
// @Param        request body dto.PayRemittanceRequest false "Payment"
// @Success      200 {object} APIResponse[dto.RemittanceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /remittances/{id}/pay [post]
func (h *RemittanceHandler) Pay(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req dto.PayRemittanceRequest
	if c.Request.ContentLength != 0 && !h.BindJSON(c, &req) {
		return
	}
	paidAt, err := dto.ParseDate(req.PaidAt)
	if err != nil {
		h.BadRequest(c, "Invalid paid_at date")
		return
	}

	r, err := h.remittances.Pay(c.Request.Context(), apppayroll.PayRemittanceCommand{
		CompanyID:    scope.CompanyID,
		UserID:       scope.UserID,
		RemittanceID: id,
		Amount:       req.Amount,
		PaidAt:       paidAt,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToRemittanceResponse(r))
}

// MarkOverdue godoc
// @ID           markRemittancesOverdue
// @Summary      Mark overdue remittances
// @Description  Flags unpaid remittances whose due date has passed
// @Tags         remittances
// @Accept       json
// @Produce      json
// @Param        X-Company-ID header string true "Company scope" format(uuid)
// @Param        X-User-ID header string false "Acting user" format(uuid)
// @Param        request body dto.MarkOverdueRequest false "Cut-off date"
// @Success      200 {object} APIResponse[dto.MarkOverdueResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /remittances/mark-overdue [post]
func (h *RemittanceHandler) MarkOverdue(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	var req dto.MarkOverdueRequest
	if c.Request.ContentLength != 0 && !h.BindJSON(c, &req) {
		return
	}
	asOf, err := dto.ParseDate(req.AsOf)
	if err != nil {
		h.BadRequest(c, "Invalid as_of date")
		return
	}
	if asOf.IsZero() {
		asOf = today(h.now)
	}

	n, err := h.remittances.MarkOverdue(c.Request.Context(), scope.CompanyID, asOf)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.MarkOverdueResponse{Updated: n})
}
