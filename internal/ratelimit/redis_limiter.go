package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/electricpro/storefront/internal/config"
	"github.com/redis/go-redis/v9"
)

// Limiter caps order submissions per client with a sliding window kept in
// a redis sorted set, one set per client key.
type Limiter struct {
	client *redis.Client
	max    int64
	window time.Duration
	now    func() time.Time
}

func NewLimiter(client *redis.Client, cfg *config.RateConfig) *Limiter {
	return &Limiter{
		client: client,
		max:    cfg.MaxAttempts,
		window: cfg.WindowSize,
		now:    time.Now,
	}
}

// WithClock overrides the limiter's time source.
func (l *Limiter) WithClock(now func() time.Time) *Limiter {
	l.now = now

	return l
}

// Allow records an attempt for key and reports whether it fits in the
// window, how many attempts remain, and how long to wait when denied.
func (l *Limiter) Allow(ctx context.Context, key string) (bool, int64, time.Duration, error) {
	redisKey := "checkout_attempts:" + key

	now := l.now()
	windowStart := now.Add(-l.window).UnixNano()

	pipe := l.client.Pipeline()

	// drop attempts that fell out of the window, then record this one
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: strconv.FormatInt(now.UnixNano(), 10),
	})
	countCmd := pipe.ZCard(ctx, redisKey)
	pipe.Expire(ctx, redisKey, l.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, 0, fmt.Errorf("failed to check submission window for %s: %w", key, err)
	}

	count := countCmd.Val()
	if count > l.max {
		return false, 0, l.window, nil
	}

	return true, l.max - count, 0, nil
}
