package cache

import (
	"context"
	"time"
)

// Store is a best-effort result cache. Implementations must never fail
// the caller: an unreachable backend reads as a miss and writes as a
// no-op, so computation never depends on cache health.
type Store interface {
	// Get returns the cached bytes for key and whether the lookup hit.
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

// Noop is a Store that caches nothing.
type Noop struct{}

func (Noop) Get(ctx context.Context, key string) ([]byte, bool) { return nil, false }

func (Noop) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {}
