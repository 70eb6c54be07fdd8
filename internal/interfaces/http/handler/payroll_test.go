package handler

import (
	"net/http"
	"testing"

	"github.com/erp/ledgercore/internal/interfaces/http/dto"
	"github.com/erp/ledgercore/tests/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func januaryRunBody(employees ...map[string]any) map[string]any {
	return map[string]any{
		"period_start": "2024-01-01",
		"period_end":   "2024-01-31",
		"pay_date":     "2024-01-31",
		"frequency":    "MONTHLY",
		"employees":    employees,
	}
}

func employee(id uuid.UUID, name, salary string) map[string]any {
	return map[string]any{
		"employee_id":   id.String(),
		"employee_name": name,
		"basic_salary":  salary,
	}
}

func createRun(t *testing.T, f *apiFixture) dto.PayrollRunResponse {
	t.Helper()
	w := f.do(t, http.MethodPost, "/api/v1/payroll-runs", januaryRunBody(
		employee(testutil.NewTestUUID("emp-1"), "Alicia Brown", "300000.00"),
		employee(testutil.NewTestUUID("emp-2"), "Devon Clarke", "180000.00"),
	))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var run dto.PayrollRunResponse
	decode(t, w, &run)
	return run
}

func TestPayrollHandler_RunLifecycle(t *testing.T) {
	f := newAPIFixture(t)

	run := createRun(t, f)
	assert.Equal(t, "DRAFT", run.Status)
	assert.Equal(t, int64(1), run.RunNumber)
	require.Len(t, run.Entries, 2)
	assert.True(t, testutil.Money("480000").Equal(run.Totals.GrossPay), run.Totals.GrossPay.String())
	assert.Nil(t, run.JournalEntryID, "draft runs are not posted")
	for _, e := range run.Entries {
		assert.True(t, e.NetPay.IsPositive())
		assert.True(t, e.GrossPay.Sub(e.TotalDeductions).Equal(e.NetPay))
	}

	base := "/api/v1/payroll-runs/" + run.ID.String()

	t.Run("pay before approval", func(t *testing.T) {
		w := f.do(t, http.MethodPost, base+"/pay", nil)
		requireErrorCode(t, w, http.StatusConflict, "RUN_NOT_APPROVED")
	})

	w := f.do(t, http.MethodPost, base+"/approve", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var approved dto.PayrollRunResponse
	decode(t, w, &approved)
	assert.Equal(t, "APPROVED", approved.Status)
	require.NotNil(t, approved.JournalEntryID)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, f.user, *approved.ApprovedBy)

	t.Run("approve twice", func(t *testing.T) {
		w := f.do(t, http.MethodPost, base+"/approve", nil)
		requireErrorCode(t, w, http.StatusConflict, "RUN_NOT_DRAFT")
	})

	w = f.do(t, http.MethodPost, base+"/pay", map[string]any{"paid_at": "2024-01-31"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var paid dto.PayrollRunResponse
	decode(t, w, &paid)
	assert.Equal(t, "PAID", paid.Status)
	require.NotNil(t, paid.PaymentJournalEntryID)
	require.NotNil(t, paid.PaidAt)

	w = f.do(t, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched dto.PayrollRunResponse
	decode(t, w, &fetched)
	assert.Equal(t, "PAID", fetched.Status)
	assert.Len(t, fetched.Entries, 2)

	w = f.do(t, http.MethodGet, "/api/v1/trial-balance", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tb dto.TrialBalanceResponse
	decode(t, w, &tb)
	assert.True(t, tb.Balanced, "payroll postings keep the ledger balanced")
}

func TestPayrollHandler_CreateRunRejections(t *testing.T) {
	f := newAPIFixture(t)
	emp := testutil.NewTestUUID("emp-1")

	t.Run("no employees", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/api/v1/payroll-runs", januaryRunBody())
		requireErrorCode(t, w, http.StatusBadRequest, dto.ErrCodeValidation)
	})

	t.Run("unknown frequency", func(t *testing.T) {
		body := januaryRunBody(employee(emp, "Alicia Brown", "1000"))
		body["frequency"] = "DAILY"
		w := f.do(t, http.MethodPost, "/api/v1/payroll-runs", body)
		requireErrorCode(t, w, http.StatusBadRequest, dto.ErrCodeValidation)
	})

	t.Run("negative salary", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/api/v1/payroll-runs", januaryRunBody(employee(emp, "Alicia Brown", "-1")))
		requireErrorCode(t, w, http.StatusBadRequest, "INVALID_PAY_COMPONENT")
	})

	t.Run("period end before start", func(t *testing.T) {
		body := januaryRunBody(employee(emp, "Alicia Brown", "1000"))
		body["period_end"] = "2023-12-31"
		w := f.do(t, http.MethodPost, "/api/v1/payroll-runs", body)
		requireErrorCode(t, w, http.StatusBadRequest, "INVALID_PERIOD")
	})
}

func TestPayrollHandler_GetRunNotFound(t *testing.T) {
	f := newAPIFixture(t)
	run := createRun(t, f)

	w := f.do(t, http.MethodGet, "/api/v1/payroll-runs/"+uuid.NewString(), nil)
	requireErrorCode(t, w, http.StatusNotFound, "NOT_FOUND")

	w = f.doAs(t, uuid.New(), http.MethodGet, "/api/v1/payroll-runs/"+run.ID.String(), nil)
	requireErrorCode(t, w, http.StatusNotFound, "NOT_FOUND")
}

func TestPayrollHandler_BackPay(t *testing.T) {
	f := newAPIFixture(t)
	emp := testutil.NewTestUUID("emp-1")

	w := f.do(t, http.MethodPost, "/api/v1/payroll/back-pay", map[string]any{
		"employee_id":    emp.String(),
		"old_salary":     "200000.00",
		"new_salary":     "220000.00",
		"effective_date": "2024-01-01",
		"through_date":   "2024-03-31",
		"frequency":      "MONTHLY",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result dto.BackPayResponse
	decode(t, w, &result)
	assert.Equal(t, emp, result.EmployeeID)
	assert.Equal(t, 2, result.PeriodsCount, "two complete months from Jan 1 to Mar 31")
	assert.True(t, testutil.Money("20000").Equal(result.PerPeriodSalaryDelta))
	assert.True(t, testutil.Money("40000").Equal(result.GrossBackPay))
	assert.True(t, result.GrossBackPay.Sub(result.TotalDeductions).Equal(result.NetBackPay))

	t.Run("through date defaults to today", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/api/v1/payroll/back-pay", map[string]any{
			"employee_id":    emp.String(),
			"old_salary":     "200000.00",
			"new_salary":     "220000.00",
			"effective_date": "2024-01-01",
			"frequency":      "MONTHLY",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var r dto.BackPayResponse
		decode(t, w, &r)
		assert.Positive(t, r.PeriodsCount)
	})

	t.Run("salary decrease", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/api/v1/payroll/back-pay", map[string]any{
			"employee_id":    emp.String(),
			"old_salary":     "220000.00",
			"new_salary":     "200000.00",
			"effective_date": "2024-01-01",
			"through_date":   "2024-03-31",
			"frequency":      "MONTHLY",
		})
		requireErrorCode(t, w, http.StatusBadRequest, "INVALID_SALARY")
	})
}
