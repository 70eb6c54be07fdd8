package payroll_test

import (
	"context"
	"errors"
	"testing"
	"time"

	apppayroll "github.com/erp/ledgercore/internal/application/payroll"
	"github.com/erp/ledgercore/internal/domain/ledger"
	"github.com/erp/ledgercore/internal/domain/payroll"
	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/erp/ledgercore/tests/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *payrollFixture) approvedRun(t *testing.T, month time.Month, employees ...payroll.EmployeePay) *payroll.PayrollRun {
	t.Helper()
	ctx := context.Background()
	run, err := f.runs.CreateRun(ctx, f.monthlyRun(month, employees...))
	require.NoError(t, err)
	run, err = f.runs.ApproveRun(ctx, apppayroll.ApproveRunCommand{CompanyID: f.company, UserID: f.user, RunID: run.ID})
	require.NoError(t, err)
	return run
}

func byType(rems []payroll.StatutoryRemittance) map[payroll.RemittanceType]payroll.StatutoryRemittance {
	out := make(map[payroll.RemittanceType]payroll.StatutoryRemittance, len(rems))
	for _, r := range rems {
		out[r.RemittanceType] = r
	}
	return out
}

func TestRemittanceService_Generate(t *testing.T) {
	f := newPayrollFixture(t)
	ctx := context.Background()
	f.approvedRun(t, time.May, employee("alice", "100000"), employee("bob", "100000"))

	_, err := f.runs.CreateRun(ctx, f.monthlyRun(time.May, employee("carol", "100000")))
	require.NoError(t, err)

	rems, err := f.remittances.Generate(ctx, apppayroll.GenerateCommand{CompanyID: f.company, Year: 2024, Month: time.May})
	require.NoError(t, err)
	got := byType(rems)

	// PAYE is zero at this salary, so only four types are due.
	require.Len(t, got, 4)
	assert.NotContains(t, got, payroll.RemittancePAYE)

	nis := got[payroll.RemittanceNIS]
	assert.Equal(t, "6000.00", nis.EmployeeAmount.StringFixed(2), "draft runs are excluded")
	assert.Equal(t, "6000.00", nis.EmployerAmount.StringFixed(2))
	assert.Equal(t, "12000.00", nis.AmountDue.StringFixed(2))
	assert.Equal(t, "2024-05", nis.PeriodMonth)
	assert.True(t, nis.DueDate.Equal(testutil.Date(2024, 6, 14)))
	assert.Equal(t, payroll.RemittanceStatusPending, nis.Status)

	heart := got[payroll.RemittanceHEART]
	assert.Equal(t, "0.00", heart.EmployeeAmount.StringFixed(2))
	assert.Equal(t, "6000.00", heart.AmountDue.StringFixed(2))

	edu := got[payroll.RemittanceEducationTax]
	assert.Equal(t, "11155.00", edu.AmountDue.StringFixed(2))
}

func TestRemittanceService_Generate_Idempotent(t *testing.T) {
	f := newPayrollFixture(t)
	ctx := context.Background()
	f.approvedRun(t, time.May, employee("alice", "100000"))
	cmd := apppayroll.GenerateCommand{CompanyID: f.company, Year: 2024, Month: time.May}

	first, err := f.remittances.Generate(ctx, cmd)
	require.NoError(t, err)
	second, err := f.remittances.Generate(ctx, cmd)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	a, b := byType(first), byType(second)
	for typ, r := range a {
		assert.Equal(t, r.ID, b[typ].ID)
		assert.True(t, r.AmountDue.Equal(b[typ].AmountDue))
		assert.Equal(t, r.Version, b[typ].Version, "unchanged amounts are not rewritten")
	}

	var count int64
	require.NoError(t, f.db.Table("statutory_remittances").Count(&count).Error)
	assert.Equal(t, int64(len(first)), count)
}

func TestRemittanceService_Generate_RefreshesUnpaidAndKeepsPaid(t *testing.T) {
	f := newPayrollFixture(t)
	ctx := context.Background()
	f.approvedRun(t, time.May, employee("alice", "100000"))
	cmd := apppayroll.GenerateCommand{CompanyID: f.company, Year: 2024, Month: time.May}

	rems, err := f.remittances.Generate(ctx, cmd)
	require.NoError(t, err)
	heart := byType(rems)[payroll.RemittanceHEART]

	paid, err := f.remittances.Pay(ctx, apppayroll.PayRemittanceCommand{CompanyID: f.company, UserID: f.user, RemittanceID: heart.ID})
	require.NoError(t, err)
	assert.Equal(t, payroll.RemittanceStatusPaid, paid.Status)

	f.approvedRun(t, time.May, employee("bob", "100000"))
	rems, err = f.remittances.Generate(ctx, cmd)
	require.NoError(t, err)
	got := byType(rems)

	assert.Equal(t, "12000.00", got[payroll.RemittanceNIS].AmountDue.StringFixed(2), "pending amounts are refreshed")
	assert.Equal(t, "3000.00", got[payroll.RemittanceHEART].AmountDue.StringFixed(2), "paid remittances are untouched")
	assert.Equal(t, payroll.RemittanceStatusPaid, got[payroll.RemittanceHEART].Status)
}

func TestRemittanceService_Pay(t *testing.T) {
	f := newPayrollFixture(t)
	ctx := context.Background()
	f.approvedRun(t, time.May, employee("alice", "100000"))

	rems, err := f.remittances.Generate(ctx, apppayroll.GenerateCommand{CompanyID: f.company, Year: 2024, Month: time.May})
	require.NoError(t, err)
	nis := byType(rems)[payroll.RemittanceNIS]

	partial, err := f.remittances.Pay(ctx, apppayroll.PayRemittanceCommand{
		CompanyID: f.company, UserID: f.user, RemittanceID: nis.ID, Amount: testutil.Money("1000"),
	})
	require.NoError(t, err)
	assert.Equal(t, payroll.RemittanceStatusPending, partial.Status)
	assert.Equal(t, "1000.00", partial.AmountPaid.StringFixed(2))
	assert.Equal(t, "5000.00", f.balance(t, ledger.AccountNISPayable))

	settled, err := f.remittances.Pay(ctx, apppayroll.PayRemittanceCommand{CompanyID: f.company, UserID: f.user, RemittanceID: nis.ID})
	require.NoError(t, err)
	assert.Equal(t, payroll.RemittanceStatusPaid, settled.Status)
	assert.Equal(t, "6000.00", settled.AmountPaid.StringFixed(2))
	require.NotNil(t, settled.PaidAt)
	assert.Equal(t, "0.00", f.balance(t, ledger.AccountNISPayable))

	before := f.entryCount(t)
	_, err = f.remittances.Pay(ctx, apppayroll.PayRemittanceCommand{CompanyID: f.company, RemittanceID: nis.ID})
	assert.True(t, errors.Is(err, shared.ErrStateConflict))
	assert.Equal(t, before, f.entryCount(t), "a rejected payment posts nothing")

	_, err = f.remittances.Pay(ctx, apppayroll.PayRemittanceCommand{CompanyID: f.company, RemittanceID: uuid.New()})
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestRemittanceService_MarkOverdue(t *testing.T) {
	f := newPayrollFixture(t)
	ctx := context.Background()
	f.approvedRun(t, time.May, employee("alice", "100000"))

	rems, err := f.remittances.Generate(ctx, apppayroll.GenerateCommand{CompanyID: f.company, Year: 2024, Month: time.May})
	require.NoError(t, err)
	_, err = f.remittances.Pay(ctx, apppayroll.PayRemittanceCommand{
		CompanyID: f.company, UserID: f.user, RemittanceID: byType(rems)[payroll.RemittanceHEART].ID,
	})
	require.NoError(t, err)

	n, err := f.remittances.MarkOverdue(ctx, f.company, testutil.Date(2024, 6, 14))
	require.NoError(t, err)
	assert.Zero(t, n, "not overdue on the due date")

	n, err = f.remittances.MarkOverdue(ctx, f.company, testutil.Date(2024, 6, 15))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	listed, err := f.remittances.ListRemittances(ctx, f.company, 2024, time.May)
	require.NoError(t, err)
	for _, r := range listed {
		if r.RemittanceType == payroll.RemittanceHEART {
			assert.Equal(t, payroll.RemittanceStatusPaid, r.Status)
		} else {
			assert.Equal(t, payroll.RemittanceStatusOverdue, r.Status)
		}
	}
}

func TestRemittanceService_Generate_Validation(t *testing.T) {
	f := newPayrollFixture(t)

	_, err := f.remittances.Generate(context.Background(), apppayroll.GenerateCommand{CompanyID: f.company, Year: 2024, Month: 13})
	assert.True(t, errors.Is(err, shared.ErrValidation))
}
