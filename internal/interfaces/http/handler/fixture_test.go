package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	appledger "github.com/erp/ledgercore/internal/application/ledger"
	apppayroll "github.com/erp/ledgercore/internal/application/payroll"
	"github.com/erp/ledgercore/internal/domain/payroll"
	"github.com/erp/ledgercore/internal/infrastructure/persistence"
	"github.com/erp/ledgercore/internal/interfaces/http/dto"
	"github.com/erp/ledgercore/internal/interfaces/http/middleware"
	"github.com/erp/ledgercore/tests/testutil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// apiFixture serves the handlers over a private SQLite database
type apiFixture struct {
	engine  *gin.Engine
	company uuid.UUID
	user    uuid.UUID
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	db := testutil.NewSQLiteDB(t)
	logger := zap.NewNop()
	calc, err := payroll.NewCalculator(payroll.DefaultRateTable())
	require.NoError(t, err)

	accountRepo := persistence.NewGormAccountRepository(db)
	journalRepo := persistence.NewGormJournalEntryRepository(db)
	posting := appledger.NewPostingService(persistence.NewGormLedgerTransactionScope(db), logger,
		appledger.WithClock(func() time.Time { return fixedNow }))
	payrollScope := persistence.NewGormPayrollTransactionScope(db)
	clock := apppayroll.WithClock(func() time.Time { return fixedNow })

	journal := NewJournalHandler(posting, appledger.NewEventPostingService(posting))
	accounts := NewAccountHandler(appledger.NewAccountService(accountRepo, logger))
	trialBalance := NewTrialBalanceHandler(appledger.NewTrialBalanceService(accountRepo, journalRepo, logger), "JMD")
	trialBalance.now = func() time.Time { return fixedNow }
	payrollHandler := NewPayrollHandler(
		apppayroll.NewRunService(payrollScope, posting, calc, logger, clock),
		apppayroll.NewBackPayService(calc, logger),
	)
	payrollHandler.now = func() time.Time { return fixedNow }
	remittances := NewRemittanceHandler(apppayroll.NewRemittanceService(payrollScope, posting, logger, clock))
	remittances.now = func() time.Time { return fixedNow }

	engine := gin.New()
	engine.Use(middleware.RequestID(), middleware.CompanyScope())
	v1 := engine.Group("/api/v1")
	v1.POST("/journal-entries", journal.Post)
	v1.POST("/journal-entries/:id/reverse", journal.Reverse)
	v1.POST("/events/invoice-created", journal.InvoiceCreated)
	v1.POST("/events/invoice-cancelled", journal.InvoiceCancelled)
	v1.POST("/events/payment-received", journal.PaymentReceived)
	v1.POST("/events/expense-recorded", journal.ExpenseRecorded)
	v1.POST("/events/pos-order-completed", journal.POSOrderCompleted)
	v1.POST("/events/pos-return-completed", journal.POSReturnCompleted)
	v1.GET("/accounts", accounts.List)
	v1.POST("/accounts", accounts.Create)
	v1.GET("/trial-balance", trialBalance.Get)
	v1.POST("/payroll-runs", payrollHandler.CreateRun)
	v1.GET("/payroll-runs/:id", payrollHandler.GetRun)
	v1.POST("/payroll-runs/:id/approve", payrollHandler.ApproveRun)
	v1.POST("/payroll-runs/:id/pay", payrollHandler.PayRun)
	v1.POST("/payroll/back-pay", payrollHandler.BackPay)
	v1.GET("/remittances", remittances.List)
	v1.POST("/remittances/generate", remittances.Generate)
	v1.POST("/remittances/mark-overdue", remittances.MarkOverdue)
	v1.POST("/remittances/:id/pay", remittances.Pay)

	return &apiFixture{
		engine:  engine,
		company: testutil.TestCompanyID(),
		user:    testutil.TestUserID(),
	}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	return f.doAs(t, f.company, method, path, body)
}

func (f *apiFixture) doAs(t *testing.T, company uuid.UUID, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(middleware.CompanyIDHeader, company.String())
	req.Header.Set(middleware.UserIDHeader, f.user.String())

	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

// decode unmarshals the envelope, with data decoded into out when non-nil
func decode(t *testing.T, w *httptest.ResponseRecorder, out any) dto.Response {
	t.Helper()

	var raw struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   *dto.ErrorInfo  `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw), w.Body.String())
	if out != nil && len(raw.Data) > 0 {
		require.NoError(t, json.Unmarshal(raw.Data, out))
	}
	return dto.Response{Success: raw.Success, Error: raw.Error}
}

func requireErrorCode(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	require.Equal(t, status, w.Code, w.Body.String())
	resp := decode(t, w, nil)
	require.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	require.Equal(t, code, resp.Error.Code)
	require.NotEmpty(t, resp.Error.RequestID)
}

func line(account, debit, credit string) map[string]any {
	l := map[string]any{"account_number": account}
	if debit != "" {
		l["debit"] = debit
	}
	if credit != "" {
		l["credit"] = credit
	}
	return l
}
