package middleware

import (
	"net/http"

	"github.com/erp/ledgercore/internal/infrastructure/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// untracedPaths are probe endpoints polled often enough to drown real traffic
var untracedPaths = map[string]bool{"/health": true, "/ready": true}

// TracingConfig configures Tracing.
type TracingConfig struct {
	Enabled     bool
	ServiceName string
	// TraceProbes also traces /health and /ready
	TraceProbes bool
}

// Tracing starts a server span per request through otelgin, named after the
// route pattern, e.g. "POST /api/v1/journal-entries".
func Tracing(cfg TracingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}
	name := cfg.ServiceName
	if name == "" {
		name = telemetry.TracerName
	}
	var opts []otelgin.Option
	if !cfg.TraceProbes {
		opts = append(opts, otelgin.WithFilter(func(r *http.Request) bool {
			return !untracedPaths[r.URL.Path]
		}))
	}
	return otelgin.Middleware(name, opts...)
}

// SpanAttributes tags the server span with the request scope and fails it
// on 5xx responses. It runs after Tracing and CompanyScope.
func SpanAttributes() gin.HandlerFunc {
	return func(c *gin.Context) {
		span := trace.SpanFromContext(c.Request.Context())
		if !span.IsRecording() {
			c.Next()
			return
		}

		attrs := make([]attribute.KeyValue, 0, 3)
		if id := GetRequestID(c); id != "" {
			attrs = append(attrs, attribute.String(telemetry.SpanAttrRequestID, id))
		}
		if id := GetCompanyID(c); id != uuid.Nil {
			attrs = append(attrs, attribute.String(telemetry.SpanAttrCompanyID, id.String()))
		}
		if id := GetUserID(c); id != uuid.Nil {
			attrs = append(attrs, attribute.String(telemetry.SpanAttrUserID, id.String()))
		}
		span.SetAttributes(attrs...)

		c.Next()

		status := c.Writer.Status()
		if status < http.StatusInternalServerError {
			return
		}
		if err := c.Errors.Last(); err != nil {
			span.RecordError(err.Err)
		}
		span.SetStatus(codes.Error, http.StatusText(status))
	}
}
