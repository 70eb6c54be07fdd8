package telemetry_test

import (
	"context"
	"testing"

	"github.com/erp/ledgercore/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
)

func TestNewTracerProvider_Disabled(t *testing.T) {
	tp, err := telemetry.NewTracerProvider(context.Background(), telemetry.TracerConfig{}, zap.NewNop())
	require.NoError(t, err)
	assert.False(t, tp.IsEnabled())
	assert.NoError(t, tp.Shutdown(context.Background()))
}

func TestNewTracerProvider_WithSpanProcessor(t *testing.T) {
	original := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(original) })

	sr := tracetest.NewSpanRecorder()
	tp, err := telemetry.NewTracerProvider(context.Background(), telemetry.TracerConfig{
		Enabled:        true,
		SamplingRatio:  1,
		ServiceName:    "ledgercore-test",
		ServiceVersion: "1.2.3",
		Environment:    "test",
	}, zap.NewNop(), telemetry.WithSpanProcessor(sr))
	require.NoError(t, err)
	require.True(t, tp.IsEnabled())

	_, span := telemetry.StartServiceSpan(context.Background(), "ledger", "post")
	span.End()
	require.NoError(t, tp.Shutdown(context.Background()))

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "ledger.post", ended[0].Name())

	attrs := map[string]string{}
	for _, kv := range ended[0].Resource().Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "ledgercore-test", attrs["service.name"])
	assert.Equal(t, "1.2.3", attrs["service.version"])
	assert.Equal(t, "test", attrs["deployment.environment.name"])
}

func TestNewTracerProvider_NeverSample(t *testing.T) {
	original := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(original) })

	sr := tracetest.NewSpanRecorder()
	tp, err := telemetry.NewTracerProvider(context.Background(), telemetry.TracerConfig{
		Enabled:     true,
		ServiceName: "ledgercore-test",
	}, zap.NewNop(), telemetry.WithSpanProcessor(sr))
	require.NoError(t, err)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := telemetry.StartSpan(context.Background(), "unsampled")
	span.End()
	assert.Empty(t, sr.Ended())
}
