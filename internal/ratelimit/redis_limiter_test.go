package ratelimit_test

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/electricpro/storefront/internal/config"
	"github.com/electricpro/storefront/internal/ratelimit"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*ratelimit.Limiter, redismock.ClientMock, time.Time) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.RateConfig{MaxAttempts: 3, WindowSize: time.Minute}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	limiter := ratelimit.NewLimiter(client, cfg).WithClock(func() time.Time { return now })

	return limiter, mock, now
}

func expectWindow(mock redismock.ClientMock, now time.Time, window time.Duration, key string, count int64) {
	redisKey := "checkout_attempts:" + key
	windowStart := strconv.FormatInt(now.Add(-window).UnixNano(), 10)
	member := strconv.FormatInt(now.UnixNano(), 10)

	mock.ExpectZRemRangeByScore(redisKey, "0", windowStart).SetVal(0)
	mock.ExpectZAdd(redisKey, redis.Z{Score: float64(now.UnixNano()), Member: member}).SetVal(1)
	mock.ExpectZCard(redisKey).SetVal(count)
	mock.ExpectExpire(redisKey, window).SetVal(true)
}

func TestLimiter_Allow(t *testing.T) {
	ctx := t.Context()

	t.Run("Within Window", func(t *testing.T) {
		// Arrange
		limiter, mock, now := setup(t)
		expectWindow(mock, now, time.Minute, "10.0.0.1", 2)

		// Act
		allowed, remaining, wait, err := limiter.Allow(ctx, "10.0.0.1")

		// Assert
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, int64(1), remaining)
		assert.Zero(t, wait)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Exactly At Limit Still Allowed", func(t *testing.T) {
		limiter, mock, now := setup(t)
		expectWindow(mock, now, time.Minute, "10.0.0.1", 3)

		allowed, remaining, _, err := limiter.Allow(ctx, "10.0.0.1")

		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, int64(0), remaining)
	})

	t.Run("Over Limit Denied", func(t *testing.T) {
		limiter, mock, now := setup(t)
		expectWindow(mock, now, time.Minute, "10.0.0.1", 4)

		allowed, _, wait, err := limiter.Allow(ctx, "10.0.0.1")

		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Equal(t, time.Minute, wait)
	})

	t.Run("Redis Failure Propagates", func(t *testing.T) {
		limiter, mock, now := setup(t)
		redisKey := "checkout_attempts:10.0.0.1"
		windowStart := strconv.FormatInt(now.Add(-time.Minute).UnixNano(), 10)
		mock.ExpectZRemRangeByScore(redisKey, "0", windowStart).SetErr(errors.New("connection reset"))

		_, _, _, err := limiter.Allow(ctx, "10.0.0.1")

		assert.Error(t, err)
	})
}
