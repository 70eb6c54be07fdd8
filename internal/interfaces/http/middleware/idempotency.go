package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/erp/ledgercore/internal/infrastructure/logger"
	"github.com/erp/ledgercore/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IdempotentReplayHeader marks a response served from the idempotency store
const IdempotentReplayHeader = "Idempotent-Replayed"

// MaxIdempotencyKeyLength bounds client-supplied keys
const MaxIdempotencyKeyLength = 200

// IdempotencyConfig configures the idempotency middleware
type IdempotencyConfig struct {
	Store shared.IdempotencyStore
	TTL   time.Duration
}

type storedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type bodyCaptureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCaptureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the first successful response of a request carrying an
// Idempotency-Key header. Keys are scoped by company and route. A retry that
// arrives while the first request is still running gets 409; a failed
// request releases its key so the client can retry.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = shared.DefaultIdempotencyTTL
	}

	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))
		if key == "" || cfg.Store == nil {
			c.Next()
			return
		}
		if len(key) > MaxIdempotencyKeyLength {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeBadRequest, "Idempotency-Key is too long", GetRequestID(c)))
			return
		}

		ctx := c.Request.Context()
		log := logger.FromContext(ctx)
		scoped := GetCompanyID(c).String() + ":" + c.Request.Method + ":" + c.FullPath() + ":" + key

		result, found, err := cfg.Store.Lookup(ctx, scoped)
		if err != nil {
			log.Error("idempotency lookup failed", zap.Error(err))
			abortStoreUnavailable(c)
			return
		}
		if found {
			if result == "" {
				abortInFlight(c)
				return
			}
			replay(c, log, result)
			return
		}

		reserved, err := cfg.Store.Reserve(ctx, scoped, ttl)
		if err != nil {
			log.Error("idempotency reservation failed", zap.Error(err))
			abortStoreUnavailable(c)
			return
		}
		if !reserved {
			abortInFlight(c)
			return
		}

		writer := &bodyCaptureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			if err := cfg.Store.Release(ctx, scoped); err != nil {
				log.Warn("failed to release idempotency key", zap.Error(err))
			}
			return
		}

		stored, err := json.Marshal(storedResponse{Status: status, Body: writer.body.Bytes()})
		if err == nil {
			err = cfg.Store.Complete(ctx, scoped, string(stored), ttl)
		}
		if err != nil {
			log.Warn("failed to store idempotent response", zap.Error(err))
		}
	}
}

func replay(c *gin.Context, log *zap.Logger, result string) {
	var stored storedResponse
	if err := json.Unmarshal([]byte(result), &stored); err != nil {
		log.Error("corrupt idempotent response", zap.Error(err))
		abortStoreUnavailable(c)
		return
	}
	log.Info("replaying idempotent response", zap.Int("status", stored.Status))
	c.Header(IdempotentReplayHeader, "true")
	c.Data(stored.Status, "application/json; charset=utf-8", stored.Body)
	c.Abort()
}

func abortInFlight(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusConflict, dto.NewErrorResponseWithRequestID(
		dto.ErrCodeRequestInFlight,
		"A request with this Idempotency-Key is already being processed",
		GetRequestID(c),
	))
}

func abortStoreUnavailable(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponseWithRequestID(
		dto.ErrCodeInternal, "Idempotency check failed", GetRequestID(c)))
}
