package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const rateLimitKeyPrefix = "rate_limit:"

// RateLimitRepository counts requests per key in fixed Redis windows.
type RateLimitRepository struct {
	client redis.Cmdable
	log    *zap.SugaredLogger
}

func NewRateLimitRepository(client redis.Cmdable, log *zap.SugaredLogger) *RateLimitRepository {
	return &RateLimitRepository{client: client, log: log}
}

// Allow counts a hit for key and reports whether it is within limit for the
// current window. When it is not, retryAfter is the time left in the window.
func (r *RateLimitRepository) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error) {
	redisKey := rateLimitKeyPrefix + key

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, window)
	ttl := pipe.PTTL(ctx, redisKey)
	_, err := pipe.Exec(ctx)

	r.log.Debugw(
		"rate limit",
		"key", redisKey,
		"count", incr.Val(),
		"ttl", ttl.Val(),
		"error", err,
	)

	if err != nil {
		return false, 0, err
	}

	if incr.Val() <= int64(limit) {
		return true, 0, nil
	}

	retryAfter := ttl.Val()
	if retryAfter <= 0 {
		retryAfter = window
	}
	return false, retryAfter, nil
}
