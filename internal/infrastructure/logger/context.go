package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type scopeKey struct{}

// requestScope is what one request carries for logging. Each With* call
// stores a copy, so scopes of concurrent requests never alias.
type requestScope struct {
	logger    *zap.Logger
	requestID string
	companyID string
	userID    string
}

func scopeFrom(ctx context.Context) requestScope {
	s, _ := ctx.Value(scopeKey{}).(requestScope)
	return s
}

func (s requestScope) store(ctx context.Context) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// WithContext attaches logger to ctx
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	s := scopeFrom(ctx)
	s.logger = logger
	return s.store(ctx)
}

// FromContext returns the request logger with trace_id and span_id of the
// active span, or a no-op logger when none was attached.
func FromContext(ctx context.Context) *zap.Logger {
	s := scopeFrom(ctx)
	if s.logger == nil {
		return zap.NewNop()
	}
	return WithTraceContext(ctx, s.logger)
}

// WithRequestID records the request ID and returns the enriched logger.
func WithRequestID(ctx context.Context, logger *zap.Logger, requestID string) (context.Context, *zap.Logger) {
	s := scopeFrom(ctx)
	s.requestID = requestID
	s.logger = logger.With(zap.String("request_id", requestID))
	return s.store(ctx), s.logger
}

// WithCompanyID records the company scope and returns the enriched logger.
func WithCompanyID(ctx context.Context, logger *zap.Logger, companyID string) (context.Context, *zap.Logger) {
	s := scopeFrom(ctx)
	s.companyID = companyID
	s.logger = logger.With(zap.String("company_id", companyID))
	return s.store(ctx), s.logger
}

// WithUserID records the acting user and returns the enriched logger.
func WithUserID(ctx context.Context, logger *zap.Logger, userID string) (context.Context, *zap.Logger) {
	s := scopeFrom(ctx)
	s.userID = userID
	s.logger = logger.With(zap.String("user_id", userID))
	return s.store(ctx), s.logger
}

func GetRequestID(ctx context.Context) string { return scopeFrom(ctx).requestID }

func GetCompanyID(ctx context.Context) string { return scopeFrom(ctx).companyID }

func GetUserID(ctx context.Context) string { return scopeFrom(ctx).userID }

// GetTraceID returns the trace ID of the active span, or "".
func GetTraceID(ctx context.Context) string {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		return sc.TraceID().String()
	}
	return ""
}

// WithTraceContext tags logger with the IDs of the active span, if any.
func WithTraceContext(ctx context.Context, logger *zap.Logger) *zap.Logger {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return logger
	}
	return logger.With(
		zap.String("trace_id", sc.TraceID().String()),
		zap.String("span_id", sc.SpanID().String()),
	)
}
