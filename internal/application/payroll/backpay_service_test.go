package payroll_test

import (
	"context"
	"errors"
	"testing"

	apppayroll "github.com/erp/ledgercore/internal/application/payroll"
	"github.com/erp/ledgercore/internal/domain/payroll"
	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/erp/ledgercore/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBackPayService(t *testing.T) *apppayroll.BackPayService {
	t.Helper()
	calc, err := payroll.NewCalculator(payroll.DefaultRateTable())
	require.NoError(t, err)
	return apppayroll.NewBackPayService(calc, zap.NewNop())
}

func TestBackPayService_Preview(t *testing.T) {
	svc := newBackPayService(t)

	res, err := svc.Preview(context.Background(), payroll.BackPayInput{
		EmployeeID:    testutil.NewTestUUID("alice"),
		OldSalary:     testutil.Money("80000"),
		NewSalary:     testutil.Money("90000"),
		EffectiveDate: testutil.Date(2024, 1, 1),
		ThroughDate:   testutil.Date(2024, 4, 1),
		Frequency:     payroll.FrequencyMonthly,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, res.PeriodsCount)
	assert.Equal(t, "30000.00", res.GrossBackPay.StringFixed(2))
	assert.Equal(t, "27845.25", res.NetBackPay.StringFixed(2))
}

func TestBackPayService_Preview_RequiresRaise(t *testing.T) {
	svc := newBackPayService(t)

	_, err := svc.Preview(context.Background(), payroll.BackPayInput{
		EmployeeID:    testutil.NewTestUUID("alice"),
		OldSalary:     testutil.Money("90000"),
		NewSalary:     testutil.Money("85000"),
		EffectiveDate: testutil.Date(2024, 1, 1),
		ThroughDate:   testutil.Date(2024, 4, 1),
		Frequency:     payroll.FrequencyMonthly,
	})
	assert.True(t, errors.Is(err, shared.ErrValidation))
}
