package cache

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backed by a Redis server. Availability is tracked
// with a connected flag that is checked before every operation and
// re-probed with a ping once it drops, so a Redis outage degrades to
// cache bypass instead of failing requests.
type Redis struct {
	client    *redis.Client
	logger    *slog.Logger
	connected atomic.Bool
}

func NewRedis(client *redis.Client, logger *slog.Logger) *Redis {
	r := &Redis{client: client, logger: logger}
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("redis unavailable, caching disabled until it recovers", "error", err)
	} else {
		r.connected.Store(true)
	}
	return r
}

// Connected reports whether the last Redis operation succeeded.
func (r *Redis) Connected() bool {
	return r.connected.Load()
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	if !r.ready(ctx) {
		return nil, false
	}

	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		r.degrade("get", key, err)
		return nil, false
	}
	return val, true
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if !r.ready(ctx) {
		return
	}

	if err := r.client.SetEx(ctx, key, value, ttl).Err(); err != nil {
		r.degrade("set", key, err)
	}
}

func (r *Redis) ready(ctx context.Context) bool {
	if r.connected.Load() {
		return true
	}
	if err := r.client.Ping(ctx).Err(); err != nil {
		return false
	}
	r.connected.Store(true)
	r.logger.Info("redis connection recovered")
	return true
}

func (r *Redis) degrade(op, key string, err error) {
	r.connected.Store(false)
	r.logger.Warn("cache operation failed, bypassing cache", "op", op, "key", key, "error", err)
}
