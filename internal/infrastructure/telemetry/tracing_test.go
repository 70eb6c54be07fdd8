package telemetry_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/erp/ledgercore/internal/infrastructure/telemetry"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTestTracer installs an in-memory span recorder as the global provider.
func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	original := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(original)
		_ = tp.Shutdown(context.Background())
	})
	return sr
}

func TestStartServiceSpan(t *testing.T) {
	sr := setupTestTracer(t)

	companyID := uuid.New()
	_, span := telemetry.StartServiceSpan(context.Background(), "posting", "post",
		telemetry.WithAttribute(telemetry.SpanAttrCompanyID, companyID),
	)
	telemetry.SetAttributes(span,
		telemetry.SpanAttrEntryNumber, int64(42),
		telemetry.SpanAttrLineCount, 3,
		99, "ignored",
	)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "posting.post", spans[0].Name())

	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, companyID.String(), attrs[telemetry.SpanAttrCompanyID])
	assert.Equal(t, "42", attrs[telemetry.SpanAttrEntryNumber])
	assert.Equal(t, "3", attrs[telemetry.SpanAttrLineCount])
	assert.Len(t, attrs, 3)
}

func TestRecordError(t *testing.T) {
	sr := setupTestTracer(t)

	_, span := telemetry.StartSpan(context.Background(), "payroll_run.approve")
	telemetry.RecordError(span, errors.New("run is not DRAFT"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "run is not DRAFT", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 1)
}

func TestRecordError_DomainError(t *testing.T) {
	sr := setupTestTracer(t)

	_, span := telemetry.StartServiceSpan(context.Background(), "posting", "post")
	err := fmt.Errorf("post entry: %w", shared.NewOutOfBalanceError("debits 100.00 do not equal credits 90.00"))
	telemetry.RecordError(span, err)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, string(shared.KindOutOfBalance), attrs[telemetry.SpanAttrErrorKind])
	assert.NotEmpty(t, attrs[telemetry.SpanAttrErrorCode])
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestSetAttributes_DomainValues(t *testing.T) {
	sr := setupTestTracer(t)

	runID := uuid.New()
	_, span := telemetry.StartSpan(context.Background(), "payroll.create_run")
	telemetry.SetAttributes(span,
		telemetry.SpanAttrRunID, runID,
		telemetry.SpanAttrAmount, decimal.RequireFromString("182500.5"),
		telemetry.SpanAttrPeriodMonth, time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
	)
	span.End()

	attrs := map[string]string{}
	for _, kv := range sr.Ended()[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, runID.String(), attrs[telemetry.SpanAttrRunID])
	assert.Equal(t, "182500.50", attrs[telemetry.SpanAttrAmount])
	assert.Equal(t, "2024-01-31", attrs[telemetry.SpanAttrPeriodMonth])
}

func TestRecordError_NilIsNoop(t *testing.T) {
	sr := setupTestTracer(t)

	_, span := telemetry.StartSpan(context.Background(), "noop")
	telemetry.RecordError(span, nil)
	telemetry.SetOK(span)
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
}

func TestGetTraceID(t *testing.T) {
	assert.Empty(t, telemetry.GetTraceID(context.Background()))

	setupTestTracer(t)
	ctx, span := telemetry.StartSpan(context.Background(), "with-trace")
	defer span.End()
	assert.Len(t, telemetry.GetTraceID(ctx), 32)
	assert.Len(t, telemetry.GetSpanID(ctx), 16)
}
