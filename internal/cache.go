package internal

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// TargetCache is an optional shared cache of code -> target URL for
// the redirect path. Targets are immutable, so an entry can only go
// stale through deletion; Evict covers that, and the synchronous click
// increment reports not-found when the row is gone, so a stale
// existence hit still ends in a 404. Click counts are never cached.
// A nil *TargetCache is valid and always misses.
type TargetCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTargetCache(rdb *redis.Client, ttl time.Duration) *TargetCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TargetCache{rdb: rdb, ttl: ttl}
}

func (c *TargetCache) Get(ctx context.Context, code string) (string, bool) {
	if c == nil {
		return "", false
	}
	target, err := c.rdb.Get(ctx, cacheKey(code)).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		slog.Warn("cache read failed", "code", code, "err", err)
		return "", false
	}
	return target, true
}

func (c *TargetCache) Set(ctx context.Context, code, target string) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, cacheKey(code), target, c.ttl).Err(); err != nil {
		slog.Warn("cache write failed", "code", code, "err", err)
	}
}

func (c *TargetCache) Evict(ctx context.Context, code string) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, cacheKey(code)).Err(); err != nil {
		slog.Warn("cache eviction failed", "code", code, "err", err)
	}
}

func cacheKey(code string) string {
	return "url:" + code
}
