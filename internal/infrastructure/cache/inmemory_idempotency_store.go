package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/erp/ledgercore/internal/domain/shared"
)

// ErrStoreClosed is returned by a store used after Close
var ErrStoreClosed = errors.New("idempotency store is closed")

const defaultSweepInterval = 5 * time.Minute

type reservation struct {
	result    string
	expiresAt time.Time
}

func (r reservation) live(now time.Time) bool {
	return now.Before(r.expiresAt)
}

// InMemoryIdempotencyStore keeps idempotency keys in process memory. Keys are
// not shared between instances, so it suits single-instance deployments and
// tests. Expired keys are swept lazily on writes.
type InMemoryIdempotencyStore struct {
	mu        sync.Mutex
	keys      map[string]reservation
	now       func() time.Time
	interval  time.Duration
	lastSweep time.Time
	closed    bool
}

// NewInMemoryIdempotencyStore creates an empty store.
func NewInMemoryIdempotencyStore() *InMemoryIdempotencyStore {
	return &InMemoryIdempotencyStore{
		keys:     make(map[string]reservation),
		now:      time.Now,
		interval: defaultSweepInterval,
	}
}

// Reserve claims key for ttl. Expired keys can be claimed again.
func (s *InMemoryIdempotencyStore) Reserve(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false, ErrStoreClosed
	}

	now := s.now()
	s.maybeSweep(now)
	if r, ok := s.keys[key]; ok && r.live(now) {
		return false, nil
	}
	s.keys[key] = reservation{expiresAt: now.Add(ttl)}
	return true, nil
}

// Complete stores the result for key and extends its lifetime to ttl.
func (s *InMemoryIdempotencyStore) Complete(_ context.Context, key, result string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	s.keys[key] = reservation{result: result, expiresAt: s.now().Add(ttl)}
	return nil
}

// Lookup returns the stored result of a live key.
func (s *InMemoryIdempotencyStore) Lookup(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", false, ErrStoreClosed
	}
	r, ok := s.keys[key]
	if !ok || !r.live(s.now()) {
		return "", false, nil
	}
	return r.result, true, nil
}

// Release drops key.
func (s *InMemoryIdempotencyStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	delete(s.keys, key)
	return nil
}

// Close drops every key. Calling it again is a no-op.
func (s *InMemoryIdempotencyStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.keys = nil
	return nil
}

// Ping reports whether the store is still open.
func (s *InMemoryIdempotencyStore) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	return nil
}

// maybeSweep removes expired keys at most once per interval. Callers hold mu.
func (s *InMemoryIdempotencyStore) maybeSweep(now time.Time) {
	if now.Sub(s.lastSweep) < s.interval {
		return
	}
	s.lastSweep = now
	for key, r := range s.keys {
		if !r.live(now) {
			delete(s.keys, key)
		}
	}
}

// Len returns the number of keys held, expired or not.
func (s *InMemoryIdempotencyStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.keys)
}

var _ shared.IdempotencyStore = (*InMemoryIdempotencyStore)(nil)
