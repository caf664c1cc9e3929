package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter enforces per-account cooldowns with SET NX keys. A limiter
// without a redis client allows everything.
type RateLimiter struct {
	rdb *redis.Client
}

func NewRateLimiter(rdb *redis.Client) *RateLimiter {
	return &RateLimiter{rdb: rdb}
}

func rateLimitKey(telegramID int64, action string) string {
	return fmt.Sprintf("rate_limit:account:%d:%s", telegramID, action)
}

func (l *RateLimiter) Allow(ctx context.Context, telegramID int64, action string, window time.Duration) (bool, error) {
	if l == nil || l.rdb == nil || window <= 0 {
		return true, nil
	}

	wasSet, err := l.rdb.SetNX(ctx, rateLimitKey(telegramID, action), "locked", window).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit in redis: %w", err)
	}

	return wasSet, nil
}

func (l *RateLimiter) TTL(ctx context.Context, telegramID int64, action string) (time.Duration, error) {
	if l == nil || l.rdb == nil {
		return 0, nil
	}
	return l.rdb.TTL(ctx, rateLimitKey(telegramID, action)).Result()
}

func (l *RateLimiter) Clear(ctx context.Context, telegramID int64, action string) error {
	if l == nil || l.rdb == nil {
		return nil
	}
	return l.rdb.Del(ctx, rateLimitKey(telegramID, action)).Err()
}
