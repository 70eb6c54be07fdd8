package payroll

import (
	"errors"
	"testing"
	"time"

	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraftRun(t *testing.T) *PayrollRun {
	t.Helper()
	run, err := NewPayrollRun(uuid.New(), uuid.New(), 1,
		date(2024, 5, 1), date(2024, 5, 31), date(2024, 5, 31), FrequencyMonthly)
	require.NoError(t, err)
	return run
}

func calculatedEntry(t *testing.T, basic string) PayrollEntry {
	t.Helper()
	c := newTestCalculator(t)
	pay := EmployeePay{EmployeeID: uuid.New(), EmployeeName: "Employee", BasicSalary: d(basic)}
	res, err := c.Calculate(CalculationInput{BasicSalary: pay.BasicSalary, Frequency: FrequencyMonthly})
	require.NoError(t, err)
	return NewPayrollEntry(pay, res, decimal.Zero)
}

func TestNewPayrollRun(t *testing.T) {
	run := newDraftRun(t)
	assert.Equal(t, RunStatusDraft, run.Status)
	assert.Equal(t, 1, run.Version)
	assert.True(t, run.Totals.GrossPay.IsZero())

	_, err := NewPayrollRun(uuid.New(), uuid.New(), 1, date(2024, 5, 31), date(2024, 5, 1), date(2024, 5, 31), FrequencyMonthly)
	assert.True(t, errors.Is(err, shared.ErrValidation))

	_, err = NewPayrollRun(uuid.New(), uuid.New(), 1, date(2024, 5, 1), date(2024, 5, 31), date(2024, 5, 31), "DAILY")
	assert.True(t, errors.Is(err, shared.ErrValidation))
}

func TestPayrollRun_AddEntry(t *testing.T) {
	run := newDraftRun(t)
	e1 := calculatedEntry(t, "100000")
	e2 := calculatedEntry(t, "600000")

	require.NoError(t, run.AddEntry(e1))
	require.NoError(t, run.AddEntry(e2))

	assert.Equal(t, 1, run.Entries[0].LineNo)
	assert.Equal(t, 2, run.Entries[1].LineNo)
	assert.Equal(t, run.ID, run.Entries[1].RunID)
	assertDec(t, "700000", run.Totals.GrossPay)
	assertDec(t, "118348", run.Totals.IncomeTax)
	assertDec(t, "21000", run.Totals.NIS)

	t.Run("rejects duplicate employee", func(t *testing.T) {
		err := run.AddEntry(e1)
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})
}

func TestPayrollRun_Lifecycle(t *testing.T) {
	run := newDraftRun(t)
	require.NoError(t, run.AddEntry(calculatedEntry(t, "100000")))

	approver := uuid.New()
	entryID := uuid.New()
	now := time.Now()

	t.Run("cannot pay a draft", func(t *testing.T) {
		err := run.MarkPaid(uuid.New(), now)
		assert.True(t, errors.Is(err, shared.ErrStateConflict))
	})

	require.NoError(t, run.Approve(approver, entryID, now))
	assert.Equal(t, RunStatusApproved, run.Status)
	assert.Equal(t, entryID, *run.JournalEntryID)
	assert.Equal(t, 2, run.Version)

	t.Run("approving twice conflicts", func(t *testing.T) {
		err := run.Approve(approver, uuid.New(), now)
		assert.True(t, errors.Is(err, shared.ErrStateConflict))
		assert.Equal(t, entryID, *run.JournalEntryID)
	})

	t.Run("entries are frozen", func(t *testing.T) {
		err := run.AddEntry(calculatedEntry(t, "50000"))
		assert.True(t, errors.Is(err, shared.ErrStateConflict))
	})

	require.NoError(t, run.MarkPaid(uuid.New(), now))
	assert.Equal(t, RunStatusPaid, run.Status)
}

func TestPayrollRun_ApproveEmptyRun(t *testing.T) {
	run := newDraftRun(t)
	err := run.Approve(uuid.New(), uuid.New(), time.Now())
	assert.True(t, errors.Is(err, shared.ErrValidation))
}

func TestLoanDeduction(t *testing.T) {
	loan, err := NewLoanDeduction(uuid.New(), uuid.New(), "Car loan", d("10000"), d("25000"))
	require.NoError(t, err)

	t.Run("scales monthly amount to frequency", func(t *testing.T) {
		assertDec(t, "10000", loan.PeriodAmount(FrequencyMonthly))
		assertDec(t, "5000", loan.PeriodAmount(FrequencySemiMonthly))
		assertDec(t, "2307.69", loan.PeriodAmount(FrequencyWeekly))
	})

	require.NoError(t, loan.Apply(d("10000")))
	require.NoError(t, loan.Apply(d("10000")))
	assertDec(t, "5000", loan.RemainingBalance)

	t.Run("caps at the remaining balance", func(t *testing.T) {
		assertDec(t, "5000", loan.PeriodAmount(FrequencyMonthly))
	})

	require.NoError(t, loan.Apply(d("5000")))
	assert.False(t, loan.IsActive)
	assertDec(t, "25000", loan.TotalPaid)
	assert.True(t, loan.PeriodAmount(FrequencyMonthly).IsZero())
	assert.True(t, errors.Is(loan.Apply(d("1")), shared.ErrStateConflict))
}

func TestPensionPlan(t *testing.T) {
	plan, err := NewPensionPlan(uuid.New(), uuid.New(), "Sagicor", d("0.05"), d("0.05"), true)
	require.NoError(t, err)

	assertDec(t, "5000", plan.EmployeeAmount(decimal.Zero, d("100000")))
	assertDec(t, "7000", plan.EmployeeAmount(d("7000"), d("100000")))
	assertDec(t, "5000", plan.EmployerAmount(d("100000")))

	_, err = NewPensionPlan(uuid.New(), uuid.New(), "x", d("1.5"), d("0"), true)
	assert.Error(t, err)
}

func TestStatutoryRemittance(t *testing.T) {
	companyID := uuid.New()
	r, err := NewStatutoryRemittance(companyID, RemittanceNIS, 2024, time.May,
		RemittanceAmounts{Employee: d("3000"), Employer: d("3000")})
	require.NoError(t, err)

	assert.Equal(t, "2024-05", r.PeriodMonth)
	assert.Equal(t, date(2024, 6, 14), r.DueDate)
	assert.Equal(t, RemittanceStatusPending, r.Status)
	assertDec(t, "6000", r.AmountDue)

	t.Run("december is due in january", func(t *testing.T) {
		assert.Equal(t, date(2025, 1, 14), RemittanceDueDate(2024, time.December))
	})

	t.Run("update keeps status and payments", func(t *testing.T) {
		changed, err := r.UpdateAmounts(RemittanceAmounts{Employee: d("3000"), Employer: d("3000")})
		require.NoError(t, err)
		assert.False(t, changed)

		changed, err = r.UpdateAmounts(RemittanceAmounts{Employee: d("3600"), Employer: d("3600")})
		require.NoError(t, err)
		assert.True(t, changed)
		assertDec(t, "7200", r.AmountDue)
		assert.Equal(t, RemittanceStatusPending, r.Status)
	})

	t.Run("overdue only after due date", func(t *testing.T) {
		assert.False(t, r.MarkOverdue(date(2024, 6, 14)))
		assert.True(t, r.MarkOverdue(date(2024, 6, 15)))
		assert.Equal(t, RemittanceStatusOverdue, r.Status)
	})

	t.Run("partial then full payment", func(t *testing.T) {
		require.NoError(t, r.RecordPayment(d("5000"), uuid.New(), time.Now()))
		assert.Equal(t, RemittanceStatusOverdue, r.Status)
		assertDec(t, "2200", r.Outstanding())

		require.NoError(t, r.RecordPayment(d("2200"), uuid.New(), time.Now()))
		assert.Equal(t, RemittanceStatusPaid, r.Status)
		assert.NotNil(t, r.PaidAt)
	})

	t.Run("paid remittance is immutable", func(t *testing.T) {
		assert.True(t, errors.Is(r.RecordPayment(d("1"), uuid.New(), time.Now()), shared.ErrStateConflict))
		_, err := r.UpdateAmounts(RemittanceAmounts{Employee: d("1"), Employer: d("1")})
		assert.True(t, errors.Is(err, shared.ErrStateConflict))
	})
}

func TestSumRemittances(t *testing.T) {
	entries := []PayrollEntry{calculatedEntry(t, "100000"), calculatedEntry(t, "600000")}
	sums := SumRemittances(entries)

	assertDec(t, "118348", sums[RemittancePAYE].Total())
	assertDec(t, "21000", sums[RemittanceNIS].Employee)
	assertDec(t, "21000", sums[RemittanceNIS].Employer)
	assertDec(t, "0", sums[RemittanceHEART].Employee)
	assertDec(t, "21000", sums[RemittanceHEART].Employer)
	assert.Len(t, sums, 5)
}
