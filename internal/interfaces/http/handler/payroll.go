package handler

import (
	"time"

	apppayroll "github.com/erp/ledgercore/internal/application/payroll"
	"github.com/erp/ledgercore/internal/domain/payroll"
	"github.com/erp/ledgercore/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// PayrollHandler handles payroll run and back-pay endpoints
type PayrollHandler struct {
	BaseHandler
	runs    *apppayroll.RunService
	backPay *apppayroll.BackPayService
	now     func() time.Time
}

// NewPayrollHandler creates a new PayrollHandler
func NewPayrollHandler(runs *apppayroll.RunService, backPay *apppayroll.BackPayService) *PayrollHandler {
	return &PayrollHandler{runs: runs, backPay: backPay, now: time.Now}
}

// CreateRun godoc
// @ID           createPayrollRun
// @Summary      Create a payroll run
// @Description  Calculates a DRAFT payroll run
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Param        X-Company-ID header string true "Company scope" format(uuid)
// @Param        X-User-ID header string false "Acting user" format(uuid)
// @Param        request body dto.CreatePayrollRunRequest true "Pay period and employees"
// @Success      201 {object} APIResponse[dto.PayrollRunResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /payroll-runs [post]
func (h *PayrollHandler) CreateRun(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	var req dto.CreatePayrollRunRequest
	if !h.BindJSON(c, &req) {
		return
	}
	start, err1 := dto.ParseDate(req.PeriodStart)
	end, err2 := dto.ParseDate(req.PeriodEnd)
	payDate, err3 := dto.ParseDate(req.PayDate)
	if err1 != nil || err2 != nil || err3 != nil {
		h.BadRequest(c, "Invalid period or pay date")
		return
	}

	run, err := h.runs.CreateRun(c.Request.Context(), apppayroll.CreateRunCommand{
		CompanyID:   scope.CompanyID,
		UserID:      scope.UserID,
		PeriodStart: start,
		PeriodEnd:   end,
		PayDate:     payDate,
		Frequency:   payroll.Frequency(req.Frequency),
		Employees:   req.EmployeePays(),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.ToPayrollRunResponse(run))
}

// GetRun godoc
// @ID           getPayrollRun
// @Summary      Get a payroll run
// @Description  Returns a run with its entries
// @Tags         payroll
// @Produce      json
// @Param        X-Company-ID header string true "Company scope" format(uuid)
// @Param        X-User-ID header string false "Acting user" format(uuid)
// @Param        id path string true "Payroll run ID" format(uuid)
// @Success      200 {object} APIResponse[dto.PayrollRunResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /payroll-runs/{id} [get]
func (h *PayrollHandler) GetRun(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	runID, ok := h.pathID(c)
	if !ok {
		return
	}
	run, err := h.runs.GetRun(c.Request.Context(), scope.CompanyID, runID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToPayrollRunResponse(run))
}

// ApproveRun godoc
// @ID           approvePayrollRun
// @Summary      Approve a payroll run
// @Description  Approves a DRAFT run and posts its accrual entry
// @Tags         payroll
// @Produce      json
// @Param        X-Company-ID header string true "Company scope" format(uuid)
// @Param        X-User-ID header string false "Acting user" format(uuid)
// @Param        Idempotency-Key header string false "Replays the first successful response for a repeated key"
// @Param        id path string true "Payroll run ID" format(uuid)
// @Success      200 {object} APIResponse[dto.PayrollRunResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /payroll-runs/{id}/approve [post]
func (h *PayrollHandler) ApproveRun(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	runID, ok := h.pathID(c)
	if !ok {
		return
	}
	run, err := h.runs.ApproveRun(c.Request.Context(), apppayroll.ApproveRunCommand{
		CompanyID: scope.CompanyID,
		UserID:    scope.UserID,
		RunID:     runID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToPayrollRunResponse(run))
}

// PayRun godoc
// @ID           payPayrollRun
// @Summary      Mark a payroll run paid
// @Description  Records the payout of an APPROVED run
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Param        X-Company-ID header string true "Company scope" format(uuid)
// @Param        X-User-ID header string false "Acting user" format(uuid)
// @Param        Idempotency-Key header string false "Replays the first successful response for a repeated key"
// @Param        id path string true "Payroll run ID" format(uuid)
// @Param        request body dto.PayPayrollRunRequest false "Payment date"
// @Success      200 {object} APIResponse[dto.PayrollRunResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /payroll-runs/{id}/pay [post]
func (h *PayrollHandler) PayRun(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	runID, ok := h.pathID(c)
	if !ok {
		return
	}
	var req dto.PayPayrollRunRequest
	if c.Request.ContentLength != 0 && !h.BindJSON(c, &req) {
		return
	}
	paidAt, err := dto.ParseDate(req.PaidAt)
	if err != nil {
		h.BadRequest(c, "Invalid paid_at date")
		return
	}

	run, err := h.runs.MarkRunPaid(c.Request.Context(), apppayroll.MarkRunPaidCommand{
		CompanyID: scope.CompanyID,
		UserID:    scope.UserID,
		RunID:     runID,
		PaidAt:    paidAt,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToPayrollRunResponse(run))
}

// BackPay godoc
// @ID           previewBackPay
// @Summary      Preview back pay
// @Description  Previews the retroactive pay of a salary change. Nothing is stored
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Param        X-Company-ID header string true "Company scope" format(uuid)
// @Param        X-User-ID header string false "Acting user" format(uuid)
// @Param        request body dto.BackPayRequest true "Salary change"
// @Success      200 {object} APIResponse[dto.BackPayResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /payroll/back-pay [post]
func (h *PayrollHandler) BackPay(c *gin.Context) {
	if _, ok := h.scope(c); !ok {
		return
	}
	var req dto.BackPayRequest
	if !h.BindJSON(c, &req) {
		return
	}
	effective, err1 := dto.ParseDate(req.EffectiveDate)
	through, err2 := dto.ParseDate(req.ThroughDate)
	if err1 != nil || err2 != nil {
		h.BadRequest(c, "Invalid effective or through date")
		return
	}
	if through.IsZero() {
		through = today(h.now)
	}

	result, err := h.backPay.Preview(c.Request.Context(), payroll.BackPayInput{
		EmployeeID:    req.EmployeeID,
		OldSalary:     req.OldSalary,
		NewSalary:     req.NewSalary,
		EffectiveDate: effective,
		ThroughDate:   through,
		Frequency:     payroll.Frequency(req.Frequency),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.ToBackPayResponse(result))
}
