package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingExporter struct {
	records []sdklog.Record
}

func (e *recordingExporter) Export(_ context.Context, records []sdklog.Record) error {
	for _, r := range records {
		e.records = append(e.records, r.Clone())
	}
	return nil
}

func (e *recordingExporter) Shutdown(context.Context) error   { return nil }
func (e *recordingExporter) ForceFlush(context.Context) error { return nil }

func TestLoggerProvider_Disabled(t *testing.T) {
	lp, err := NewLoggerProvider(context.Background(), LogsConfig{}, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, lp.IsEnabled())

	base := zap.NewNop()
	assert.Same(t, base, lp.Bridge(base, zapcore.InfoLevel))
	assert.NoError(t, lp.Shutdown(context.Background()))
}

func TestLoggerProvider_BridgeTeesRecords(t *testing.T) {
	exporter := &recordingExporter{}
	lp := newLoggerProvider(
		sdklog.NewLoggerProvider(sdklog.WithProcessor(sdklog.NewSimpleProcessor(exporter))),
		LogsConfig{Enabled: true, ServiceName: "ledgercore"},
	)
	defer func() { _ = lp.Shutdown(context.Background()) }()

	core, recorded := observer.New(zapcore.DebugLevel)
	logger := lp.Bridge(zap.New(core), zapcore.WarnLevel)

	logger.Info("entry posted")
	logger.Error("posting rejected", zap.String("code", "OUT_OF_BALANCE"))

	assert.Equal(t, 2, recorded.Len(), "the local core keeps every entry")
	require.Len(t, exporter.records, 1, "only warn and above are exported")
	assert.Equal(t, "posting rejected", exporter.records[0].Body().AsString())
}

func exportedAttrs(r sdklog.Record) map[string]string {
	out := map[string]string{}
	r.WalkAttributes(func(kv otellog.KeyValue) bool {
		out[kv.Key] = kv.Value.String()
		return true
	})
	return out
}

func TestLoggerProvider_RedactsPayrollFields(t *testing.T) {
	exporter := &recordingExporter{}
	lp := newLoggerProvider(
		sdklog.NewLoggerProvider(sdklog.WithProcessor(sdklog.NewSimpleProcessor(exporter))),
		LogsConfig{Enabled: true, ServiceName: "ledgercore"},
	)
	defer func() { _ = lp.Shutdown(context.Background()) }()

	core, recorded := observer.New(zapcore.DebugLevel)
	logger := lp.Bridge(zap.New(core), zapcore.InfoLevel).With(zap.String("employee_name", "Alicia Brown"))

	logger.Info("payroll entry calculated",
		zap.String("net_pay", "182500.00"),
		zap.String("run_number", "7"),
	)

	require.Len(t, exporter.records, 1)
	attrs := exportedAttrs(exporter.records[0])
	assert.Equal(t, "[REDACTED]", attrs["net_pay"])
	assert.Equal(t, "[REDACTED]", attrs["employee_name"])
	assert.Equal(t, "7", attrs["run_number"])

	local := recorded.All()[0].ContextMap()
	assert.Equal(t, "182500.00", local["net_pay"], "local output keeps the value")
	assert.Equal(t, "Alicia Brown", local["employee_name"])
}

func TestLoggerProvider_CustomRedaction(t *testing.T) {
	lp := newLoggerProvider(nil, LogsConfig{RedactFields: []string{"iban"}})
	assert.Contains(t, lp.redact, "iban")
	assert.NotContains(t, lp.redact, "net_pay")
}
