package handler

import (
	"time"

	appledger "github.com/erp/ledgercore/internal/application/ledger"
	"github.com/erp/ledgercore/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// TrialBalanceHandler handles trial balance endpoints
type TrialBalanceHandler struct {
	BaseHandler
	trialBalance *appledger.TrialBalanceService
	currency     string
	now          func() time.Time
}

// NewTrialBalanceHandler creates a new TrialBalanceHandler. currency labels
// the amounts in the response.
func NewTrialBalanceHandler(trialBalance *appledger.TrialBalanceService, currency string) *TrialBalanceHandler {
	return &TrialBalanceHandler{
		trialBalance: trialBalance,
		currency:     currency,
		now:          time.Now,
	}
}

// Get godoc
// @ID           getTrialBalance
// @Summary      Get the trial balance
// @Description  Returns per-account debits, credits and balances as of a date, today by default
// @Tags         ledger
// @Produce      json
// @Param        X-Company-ID header string true "Company scope" format(uuid)
// @Param        X-User-ID header string false "Acting user" format(uuid)
// @Param        as_of query string false "Cut-off date (YYYY-MM-DD), today by default" format(date)
// @Success      200 {object} APIResponse[dto.TrialBalanceResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /trial-balance [get]
func (h *TrialBalanceHandler) Get(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	var query dto.TrialBalanceQuery
	if !h.BindQuery(c, &query) {
		return
	}
	asOf, err := dto.ParseDate(query.AsOf)
	if err != nil {
		h.BadRequest(c, "Invalid as_of date")
		return
	}
	if asOf.IsZero() {
		asOf = today(h.now)
	}

	tb, err := h.trialBalance.TrialBalance(c.Request.Context(), scope.CompanyID, asOf)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToTrialBalanceResponse(tb, asOf, h.currency))
}

// today is the current calendar date in UTC
func today(now func() time.Time) time.Time {
	t := now().UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
