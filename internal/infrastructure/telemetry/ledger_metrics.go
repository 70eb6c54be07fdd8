package telemetry

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// LedgerMetrics records posting and payroll activity. A nil *LedgerMetrics
// is valid and records nothing.
type LedgerMetrics struct {
	entriesPosted    *Counter
	postedAmount     *Counter
	postingRejected  *Counter
	postingDuration  *Histogram
	payrollRuns      *Counter
	payrollGross     *Counter
	remittances      *Counter
	remittanceAmount *Counter
}

// NewLedgerMetrics creates the ledger instruments on the given meter.
func NewLedgerMetrics(meter metric.Meter) (*LedgerMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	m := &LedgerMetrics{}
	var err error
	if m.entriesPosted, err = NewCounter(meter, "ledger_journal_entries_posted_total",
		"Journal entries posted", "{entries}"); err != nil {
		return nil, err
	}
	if m.postedAmount, err = NewCounter(meter, "ledger_posted_amount_cents_total",
		"Sum of posted debits in cents", "{cents}"); err != nil {
		return nil, err
	}
	if m.postingRejected, err = NewCounter(meter, "ledger_posting_rejected_total",
		"Posting requests rejected, by error kind", "{requests}"); err != nil {
		return nil, err
	}
	if m.postingDuration, err = NewHistogram(meter, HistogramOpts{
		Name:        "ledger_posting_duration_seconds",
		Description: "Time to validate and persist a journal entry",
		Unit:        "s",
		Boundaries:  DBDurationBuckets,
	}); err != nil {
		return nil, err
	}
	if m.payrollRuns, err = NewCounter(meter, "payroll_runs_total",
		"Payroll run transitions, by resulting status", "{runs}"); err != nil {
		return nil, err
	}
	if m.payrollGross, err = NewCounter(meter, "payroll_gross_cents_total",
		"Gross pay of created payroll runs in cents", "{cents}"); err != nil {
		return nil, err
	}
	if m.remittances, err = NewCounter(meter, "payroll_remittances_total",
		"Statutory remittance changes, by type and outcome", "{remittances}"); err != nil {
		return nil, err
	}
	if m.remittanceAmount, err = NewCounter(meter, "payroll_remittance_paid_cents_total",
		"Statutory remittance payments in cents", "{cents}"); err != nil {
		return nil, err
	}
	return m, nil
}

// RecordJournalPosted counts a posted entry and its debit total.
func (m *LedgerMetrics) RecordJournalPosted(ctx context.Context, companyID uuid.UUID, sourceModule string, total decimal.Decimal, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := []attribute.KeyValue{AttrCompanyID.String(companyID.String()), AttrSourceModule.String(sourceModule)}
	m.entriesPosted.Inc(ctx, attrs...)
	m.postedAmount.AddCents(ctx, total, attrs...)
	m.postingDuration.RecordDuration(ctx, elapsed, AttrSourceModule.String(sourceModule))
}

// RecordPostingRejected counts a posting that failed with the given error kind.
func (m *LedgerMetrics) RecordPostingRejected(ctx context.Context, companyID uuid.UUID, sourceModule, kind string) {
	if m == nil {
		return
	}
	if kind == "" {
		kind = "UNKNOWN"
	}
	m.postingRejected.Inc(ctx,
		AttrCompanyID.String(companyID.String()),
		AttrSourceModule.String(sourceModule),
		AttrErrorKind.String(kind),
	)
}

// RecordPayrollRun counts a run reaching status. Gross is only added for new runs.
func (m *LedgerMetrics) RecordPayrollRun(ctx context.Context, companyID uuid.UUID, status string, gross decimal.Decimal) {
	if m == nil {
		return
	}
	attrs := []attribute.KeyValue{AttrCompanyID.String(companyID.String()), AttrRunStatus.String(status)}
	m.payrollRuns.Inc(ctx, attrs...)
	if status == "DRAFT" {
		m.payrollGross.AddCents(ctx, gross, AttrCompanyID.String(companyID.String()))
	}
}

// RecordRemittance counts a remittance outcome (created, updated, paid, overdue).
// Amount is added to the paid total only for payments.
func (m *LedgerMetrics) RecordRemittance(ctx context.Context, companyID uuid.UUID, remittanceType, outcome string, amount decimal.Decimal) {
	if m == nil {
		return
	}
	m.remittances.Inc(ctx,
		AttrCompanyID.String(companyID.String()),
		AttrRemittance.String(remittanceType),
		AttrOutcome.String(outcome),
	)
	if outcome == "paid" {
		m.remittanceAmount.AddCents(ctx, amount, AttrRemittance.String(remittanceType))
	}
}

// ErrMeterNil is returned when meter is nil.
var ErrMeterNil = &MetricsError{Op: "NewLedgerMetrics", Err: "meter cannot be nil"}

// MetricsError represents a metrics-related error.
type MetricsError struct {
	Op  string
	Err string
}

func (e *MetricsError) Error() string {
	return e.Op + ": " + e.Err
}
