package telemetry_test

import (
	"context"
	"testing"
	"time"

	"github.com/erp/ledgercore/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// collectSums reads every int64 sum from the reader, summed across attribute sets.
func collectSums(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				out[m.Name] += dp.Value
			}
		}
	}
	return out
}

func newTestLedgerMetrics(t *testing.T) (*telemetry.LedgerMetrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	m, err := telemetry.NewLedgerMetrics(provider.Meter("test"))
	require.NoError(t, err)
	return m, reader
}

func TestNewLedgerMetrics_NilMeter(t *testing.T) {
	m, err := telemetry.NewLedgerMetrics(nil)
	require.Error(t, err)
	assert.Nil(t, m)
	assert.Equal(t, "NewLedgerMetrics: meter cannot be nil", err.Error())
}

func TestLedgerMetrics_RecordJournalPosted(t *testing.T) {
	m, reader := newTestLedgerMetrics(t)
	ctx := context.Background()
	companyID := uuid.New()

	m.RecordJournalPosted(ctx, companyID, "INVOICE", decimal.RequireFromString("1150.25"), 5*time.Millisecond)
	m.RecordJournalPosted(ctx, companyID, "PAYMENT", decimal.RequireFromString("100"), time.Millisecond)
	m.RecordPostingRejected(ctx, companyID, "MANUAL", "OUT_OF_BALANCE")

	sums := collectSums(t, reader)
	assert.Equal(t, int64(2), sums["ledger_journal_entries_posted_total"])
	assert.Equal(t, int64(125025), sums["ledger_posted_amount_cents_total"])
	assert.Equal(t, int64(1), sums["ledger_posting_rejected_total"])
}

func TestLedgerMetrics_PayrollAndRemittances(t *testing.T) {
	m, reader := newTestLedgerMetrics(t)
	ctx := context.Background()
	companyID := uuid.New()

	m.RecordPayrollRun(ctx, companyID, "DRAFT", decimal.NewFromInt(300000))
	m.RecordPayrollRun(ctx, companyID, "APPROVED", decimal.NewFromInt(300000))
	m.RecordRemittance(ctx, companyID, "NIS", "created", decimal.Zero)
	m.RecordRemittance(ctx, companyID, "NIS", "paid", decimal.RequireFromString("18000.50"))

	sums := collectSums(t, reader)
	assert.Equal(t, int64(2), sums["payroll_runs_total"])
	assert.Equal(t, int64(30000000), sums["payroll_gross_cents_total"])
	assert.Equal(t, int64(2), sums["payroll_remittances_total"])
	assert.Equal(t, int64(1800050), sums["payroll_remittance_paid_cents_total"])
}

func TestLedgerMetrics_NilReceiver(t *testing.T) {
	var m *telemetry.LedgerMetrics
	ctx := context.Background()

	assert.NotPanics(t, func() {
		m.RecordJournalPosted(ctx, uuid.New(), "MANUAL", decimal.NewFromInt(1), time.Second)
		m.RecordPostingRejected(ctx, uuid.New(), "MANUAL", "")
		m.RecordPayrollRun(ctx, uuid.New(), "DRAFT", decimal.NewFromInt(1))
		m.RecordRemittance(ctx, uuid.New(), "PAYE", "paid", decimal.NewFromInt(1))
	})
}
