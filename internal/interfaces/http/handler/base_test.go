package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/erp/ledgercore/internal/interfaces/http/dto"
	"github.com/erp/ledgercore/internal/interfaces/http/middleware"
	"github.com/erp/ledgercore/tests/testutil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, path string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, nil)
	c.Set(middleware.RequestIDKey, "req-test")
	return c, w
}

func TestBaseHandler_HandleError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		kind    string
		message string
	}{
		{
			name:    "validation",
			err:     shared.NewValidationError("INVALID_LINE_AMOUNT", "Line 2 has both a debit and a credit"),
			status:  http.StatusBadRequest,
			code:    "INVALID_LINE_AMOUNT",
			kind:    "VALIDATION",
			message: "Line 2 has both a debit and a credit",
		},
		{
			name:   "out of balance",
			err:    shared.NewOutOfBalanceError("debits 10.00 do not equal credits 9.00"),
			status: http.StatusUnprocessableEntity,
			code:   "OUT_OF_BALANCE",
			kind:   "OUT_OF_BALANCE",
		},
		{
			name:   "wrapped state conflict",
			err:    fmt.Errorf("approve: %w", shared.NewStateConflictError("RUN_NOT_DRAFT", "run is not a draft")),
			status: http.StatusConflict,
			code:   "RUN_NOT_DRAFT",
			kind:   "STATE_CONFLICT",
		},
		{
			name:    "not found",
			err:     shared.NewNotFoundError("Payroll run"),
			status:  http.StatusNotFound,
			code:    "NOT_FOUND",
			message: "Payroll run not found",
		},
		{
			name:    "persistence hides driver detail",
			err:     shared.NewPersistenceError("save journal entry", errors.New("pq: connection reset by peer")),
			status:  http.StatusInternalServerError,
			code:    "PERSISTENCE_FAILURE",
			message: "The request could not be completed",
		},
		{
			name:    "plain error",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			code:    dto.ErrCodeInternal,
			message: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(http.MethodPost, "/")
			h := &BaseHandler{}
			h.HandleError(c, tt.err)

			require.Equal(t, tt.status, w.Code)
			resp := decode(t, w, nil)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Equal(t, "req-test", resp.Error.RequestID)
			if tt.kind != "" {
				assert.Equal(t, tt.kind, resp.Error.Kind)
			}
			if tt.message != "" {
				assert.Equal(t, tt.message, resp.Error.Message)
			}
			assert.NotContains(t, w.Body.String(), "pq:")
		})
	}

	t.Run("nil error writes nothing", func(t *testing.T) {
		c, w := newTestContext(http.MethodPost, "/")
		(&BaseHandler{}).HandleError(c, nil)
		assert.Zero(t, w.Body.Len())
	})
}

func TestBaseHandler_Scope(t *testing.T) {
	h := &BaseHandler{}

	t.Run("missing company", func(t *testing.T) {
		c, w := newTestContext(http.MethodGet, "/")
		_, ok := h.scope(c)
		assert.False(t, ok)
		requireErrorCode(t, w, http.StatusBadRequest, dto.ErrCodeMissingScope)
	})

	t.Run("company and user", func(t *testing.T) {
		company, user := uuid.New(), uuid.New()
		c, _ := newTestContext(http.MethodGet, "/")
		c.Set(middleware.CompanyIDKey, company)
		c.Set(middleware.UserIDKey, user)

		s, ok := h.scope(c)
		require.True(t, ok)
		assert.Equal(t, company, s.CompanyID)
		assert.Equal(t, user, s.UserID)
	})
}

func TestBaseHandler_PathID(t *testing.T) {
	h := &BaseHandler{}

	t.Run("valid", func(t *testing.T) {
		id := uuid.New()
		c, _ := newTestContext(http.MethodGet, "/")
		c.Params = gin.Params{{Key: "id", Value: id.String()}}
		got, ok := h.pathID(c)
		require.True(t, ok)
		assert.Equal(t, id, got)
	})

	t.Run("malformed", func(t *testing.T) {
		c, w := newTestContext(http.MethodGet, "/")
		c.Params = gin.Params{{Key: "id", Value: "42"}}
		_, ok := h.pathID(c)
		assert.False(t, ok)
		requireErrorCode(t, w, http.StatusBadRequest, dto.ErrCodeValidation)
	})
}

func TestHandlers_RequireCompanyScope(t *testing.T) {
	journal := NewJournalHandler(nil, nil)
	payrollHandler := NewPayrollHandler(nil, nil)
	remittances := NewRemittanceHandler(nil)
	accounts := NewAccountHandler(nil)

	handlers := map[string]gin.HandlerFunc{
		"post journal":   journal.Post,
		"create run":     payrollHandler.CreateRun,
		"list accounts":  accounts.List,
		"mark overdue":   remittances.MarkOverdue,
		"back pay":       payrollHandler.BackPay,
		"generate remit": remittances.Generate,
	}
	for name, h := range handlers {
		testutil.RunHTTPTestCases(t, h, []testutil.HTTPTestCase{
			{
				Name:           name + " without company",
				Method:         http.MethodPost,
				Body:           map[string]any{},
				User:           testutil.TestUserID(),
				ExpectedStatus: http.StatusBadRequest,
				Validate: func(t *testing.T, tc *testutil.TestContext) {
					testutil.AssertErrorResponse(t, tc, dto.ErrCodeMissingScope)
				},
			},
		})
	}
}
