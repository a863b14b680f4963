package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// cache wraps an optional Redis client. Every method is a no-op when the
// client is nil.
type cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func newCache(rdb *redis.Client, ttl time.Duration) cache {
	return cache{redis: rdb, ttl: ttl}
}

// get decodes the cached JSON value into dst and reports whether it did.
func (c cache) get(ctx context.Context, key string, dst any) bool {
	if c.redis == nil {
		return false
	}
	cached, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("failed to read cache", "key", key, "error", err)
		}
		return false
	}
	return json.Unmarshal([]byte(cached), dst) == nil
}

func (c cache) set(ctx context.Context, key string, value any) {
	if c.redis == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.Error("failed to set cache", "key", key, "error", err)
	}
}

// deletePattern removes every key matching a glob pattern.
func (c cache) deletePattern(ctx context.Context, pattern string) {
	if c.redis == nil {
		return
	}
	iter := c.redis.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		c.redis.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		slog.Warn("failed to invalidate cache", "pattern", pattern, "error", err)
	}
}
