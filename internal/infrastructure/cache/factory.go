package cache

import (
	"fmt"
	"strings"

	"github.com/erp/ledgercore/internal/domain/shared"
	"github.com/erp/ledgercore/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Backend names accepted in IDEMPOTENCY_BACKEND
const (
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

type redisDialer func(RedisConfig) (shared.IdempotencyStore, error)

type storeOptions struct {
	logger *zap.Logger
	dial   redisDialer
}

// StoreOption configures OpenIdempotencyStore
type StoreOption func(*storeOptions)

// WithLogger logs which backend was selected
func WithLogger(logger *zap.Logger) StoreOption {
	return func(o *storeOptions) { o.logger = logger }
}

func withRedisDialer(dial redisDialer) StoreOption {
	return func(o *storeOptions) { o.dial = dial }
}

// OpenIdempotencyStore returns the store selected by idem.Backend. An
// unreachable Redis degrades to the in-memory store unless idem.RequireRedis
// is set.
func OpenIdempotencyStore(redis config.RedisConfig, idem config.IdempotencyConfig, opts ...StoreOption) (shared.IdempotencyStore, error) {
	o := storeOptions{
		logger: zap.NewNop(),
		dial: func(cfg RedisConfig) (shared.IdempotencyStore, error) {
			return NewRedisIdempotencyStore(cfg)
		},
	}
	for _, opt := range opts {
		opt(&o)
	}

	switch backend := strings.ToLower(strings.TrimSpace(idem.Backend)); backend {
	case BackendMemory:
		o.logger.Info("Idempotency keys kept in memory")
		return NewInMemoryIdempotencyStore(), nil
	case BackendRedis, "":
	default:
		return nil, fmt.Errorf("unknown idempotency backend %q", backend)
	}

	store, err := o.dial(RedisConfig{
		Host:     redis.Host,
		Port:     redis.Port,
		Password: redis.Password,
		DB:       redis.DB,
	})
	switch {
	case err == nil:
		o.logger.Info("Idempotency keys kept in Redis", zap.String("addr", fmt.Sprintf("%s:%d", redis.Host, redis.Port)))
		return store, nil
	case idem.RequireRedis:
		return nil, fmt.Errorf("redis is required for idempotency: %w", err)
	default:
		o.logger.Warn("Redis unreachable, idempotency keys kept in memory; retries are not deduplicated across instances",
			zap.Error(err))
		return NewInMemoryIdempotencyStore(), nil
	}
}
