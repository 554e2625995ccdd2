package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ecofootprint/ecofootprint/internal/cache"
)

// Strategy computes one footprint result. CacheKey returns the key the
// marshaled result is cached under, or "" when the result must not be
// cached.
type Strategy interface {
	CacheKey() string
	Compute(ctx context.Context) (interface{}, error)
}

// Pipeline sequences cache-lookup, computation and cache-store around a
// Strategy. A cache hit returns the stored bytes verbatim, so cached and
// fresh responses are byte-for-byte identical for the same input.
type Pipeline struct {
	cache  cache.Store
	ttl    time.Duration
	logger *slog.Logger
}

func New(store cache.Store, ttl time.Duration, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		cache:  store,
		ttl:    ttl,
		logger: logger,
	}
}

// Run executes the strategy, consulting the cache first when the
// strategy is cacheable.
func (p *Pipeline) Run(ctx context.Context, s Strategy) (json.RawMessage, error) {
	key := s.CacheKey()

	if key != "" {
		if cached, ok := p.cache.Get(ctx, key); ok {
			p.logger.Debug("cache hit", "key", key)
			return cached, nil
		}
	}

	result, err := s.Compute(ctx)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	if key != "" {
		p.cache.Set(ctx, key, payload, p.ttl)
	}

	return payload, nil
}
