package integration

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	appledger "github.com/erp/ledgercore/internal/application/ledger"
	apppayroll "github.com/erp/ledgercore/internal/application/payroll"
	"github.com/erp/ledgercore/internal/domain/ledger"
	"github.com/erp/ledgercore/internal/domain/payroll"
	"github.com/erp/ledgercore/internal/infrastructure/persistence"
	"github.com/erp/ledgercore/tests/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPostgres_ConcurrentPostingIsGapFree(t *testing.T) {
	tdb := NewSharedTestDB(t)
	ctx := context.Background()
	company := uuid.New()

	svc := appledger.NewPostingService(persistence.NewGormLedgerTransactionScope(tdb.DB), zap.NewNop())

	const workers = 25
	numbers := make([]int64, 0, workers)
	var mu sync.Mutex
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.Post(ctx, appledger.PostCommand{
				CompanyID:    company,
				UserID:       testutil.TestUserID(),
				Date:         testutil.Date(2024, 5, 31),
				Description:  "Cash sale",
				SourceModule: ledger.SourceManual,
				Lines: []ledger.DraftLine{
					ledger.DebitLine(ledger.AccountCashOnHand, testutil.Money("100.00"), ""),
					ledger.CreditLine(ledger.AccountBankOperating, testutil.Money("100.00"), ""),
				},
			})
			if err != nil {
				errs <- err
				return
			}
			mu.Lock()
			numbers = append(numbers, res.EntryNumber)
			mu.Unlock()
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	sort.Slice(numbers, func(i, j int) bool { return numbers[i] < numbers[j] })
	require.Len(t, numbers, workers)
	for i, n := range numbers {
		assert.Equal(t, int64(i+1), n)
	}

	var accounts int64
	require.NoError(t, tdb.DB.Table("gl_accounts").Where("company_id = ?", company).Count(&accounts).Error)
	assert.Equal(t, int64(2), accounts, "system accounts are created once")
}

func TestPostgres_PayrollCycle(t *testing.T) {
	tdb := NewSharedTestDB(t)
	ctx := context.Background()
	company := uuid.New()
	user := testutil.TestUserID()
	log := zap.NewNop()

	calc, err := payroll.NewCalculator(payroll.DefaultRateTable())
	require.NoError(t, err)

	posting := appledger.NewPostingService(persistence.NewGormLedgerTransactionScope(tdb.DB), log)
	scope := persistence.NewGormPayrollTransactionScope(tdb.DB)
	runs := apppayroll.NewRunService(scope, posting, calc, log)
	remittances := apppayroll.NewRemittanceService(scope, posting, log)
	balances := appledger.NewTrialBalanceService(
		persistence.NewGormAccountRepository(tdb.DB),
		persistence.NewGormJournalEntryRepository(tdb.DB),
		log,
	)

	start := testutil.Date(2024, time.May, 1)
	end := testutil.Date(2024, time.May, 31)
	run, err := runs.CreateRun(ctx, apppayroll.CreateRunCommand{
		CompanyID:   company,
		UserID:      user,
		PeriodStart: start,
		PeriodEnd:   end,
		PayDate:     end,
		Frequency:   payroll.FrequencyMonthly,
		Employees: []payroll.EmployeePay{
			{EmployeeID: uuid.New(), EmployeeName: "alice", BasicSalary: testutil.Money("100000")},
			{EmployeeID: uuid.New(), EmployeeName: "bob", BasicSalary: testutil.Money("100000")},
		},
	})
	require.NoError(t, err)

	_, err = runs.ApproveRun(ctx, apppayroll.ApproveRunCommand{CompanyID: company, UserID: user, RunID: run.ID})
	require.NoError(t, err)
	_, err = runs.MarkRunPaid(ctx, apppayroll.MarkRunPaidCommand{CompanyID: company, UserID: user, RunID: run.ID, PaidAt: end})
	require.NoError(t, err)

	rems, err := remittances.Generate(ctx, apppayroll.GenerateCommand{CompanyID: company, Year: 2024, Month: time.May})
	require.NoError(t, err)
	require.NotEmpty(t, rems)
	for _, rem := range rems {
		_, err := remittances.Pay(ctx, apppayroll.PayRemittanceCommand{
			CompanyID:    company,
			UserID:       user,
			RemittanceID: rem.ID,
			PaidAt:       testutil.Date(2024, time.June, 10),
		})
		require.NoError(t, err)
	}

	tb, err := balances.TrialBalance(ctx, company, testutil.Date(2024, time.June, 30))
	require.NoError(t, err)
	assert.True(t, tb.IsBalanced())

	for _, l := range tb.Lines {
		switch l.AccountNumber {
		case ledger.AccountSalariesPayable:
			assert.True(t, l.Balance.IsZero(), "net pay settled")
		case ledger.AccountSalariesExpense:
			assert.Equal(t, "200000.00", l.Balance.StringFixed(2))
		}
	}
}
