package handler

import (
	appledger "github.com/erp/ledgercore/internal/application/ledger"
	"github.com/erp/ledgercore/internal/domain/ledger"
	"github.com/erp/ledgercore/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles chart of accounts endpoints
type AccountHandler struct {
	BaseHandler
	accounts *appledger.AccountService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accounts *appledger.AccountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// Create godoc
// @ID           createAccount
// @Summary      Create an account
// @Description  Adds a user-defined account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        X-Company-ID header string true "Company scope" format(uuid)
// @Param        X-User-ID header string false "Acting user" format(uuid)
// @Param        request body dto.CreateAccountRequest true "Account"
// @Success      201 {object} APIResponse[dto.AccountResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /accounts [post]
func (h *AccountHandler) Create(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	var req dto.CreateAccountRequest
	if !h.BindJSON(c, &req) {
		return
	}

	account, err := h.accounts.CreateAccount(c.Request.Context(), appledger.CreateAccountCommand{
		CompanyID:     scope.CompanyID,
		UserID:        scope.UserID,
		AccountNumber: req.AccountNumber,
		Name:          req.Name,
		Type:          ledger.AccountType(req.Type),
		SubType:       req.SubType,
		NormalBalance: ledger.NormalBalance(req.NormalBalance),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.ToAccountResponse(account))
}

// List godoc
// @ID           listAccounts
// @Summary      List the chart of accounts
// @Description  Returns the company's chart of accounts
// @Tags         accounts
// @Produce      json
// @Param        X-Company-ID header string true "Company scope" format(uuid)
// @Param        X-User-ID header string false "Acting user" format(uuid)
// @Success      200 {object} APIResponse[[]dto.AccountResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /accounts [get]
func (h *AccountHandler) List(c *gin.Context) {
	scope, ok := h.scope(c)
	if !ok {
		return
	}
	accounts, err := h.accounts.ListAccounts(c.Request.Context(), scope.CompanyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	resp := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		resp = append(resp, dto.ToAccountResponse(&accounts[i]))
	}
	h.Success(c, resp)
}
