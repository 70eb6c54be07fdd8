package shared

import (
	"context"
	"time"
)

// IdempotencyStore remembers client-supplied idempotency keys so a retried
// request replays the first result instead of posting twice.
type IdempotencyStore interface {
	// Reserve claims key for ttl. It returns false if the key was already claimed.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Complete stores the serialized result for a reserved key.
	Complete(ctx context.Context, key, result string, ttl time.Duration) error

	// Lookup returns the stored result. found is true once the key has been
	// reserved; result stays empty until Complete is called.
	Lookup(ctx context.Context, key string) (result string, found bool, err error)

	// Release drops a reservation whose request failed, so it can be retried.
	Release(ctx context.Context, key string) error

	Close() error
}

// DefaultIdempotencyTTL is how long a key and its result are remembered when
// no TTL is configured.
const DefaultIdempotencyTTL = 24 * time.Hour
