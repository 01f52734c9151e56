package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lentefilmes/site-admin/internal/core/ports"
	"github.com/lentefilmes/site-admin/internal/infrastructure/ratelimit"
)

// RateLimiter is a fixed-window attempt counter shared by every instance.
// Key format: ratelimit:<scope>:<identifier>
type RateLimiter struct {
	client *redis.Client
	scope  string
	max    int
	window time.Duration
}

// NewRateLimiter returns a limiter allowing max attempts per window within scope.
func NewRateLimiter(client *redis.Client, scope string, max int, window time.Duration) *RateLimiter {
	if max <= 0 {
		max = ratelimit.DefaultMaxAttempts
	}
	if window <= 0 {
		window = ratelimit.DefaultWindow
	}
	return &RateLimiter{client: client, scope: scope, max: max, window: window}
}

// Check increments the counter; the first increment of a window sets its expiry.
func (l *RateLimiter) Check(ctx context.Context, identifier string) (ports.RateLimitResult, error) {
	key := l.key(identifier)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, l.window)
	ttl := pipe.PTTL(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return ports.RateLimitResult{}, fmt.Errorf("rate limit check: %w", err)
	}

	count := int(incr.Val())
	if count > l.max {
		retry := ttl.Val()
		if retry <= 0 {
			retry = l.window
		}
		return ports.RateLimitResult{
			Allowed:    false,
			Remaining:  0,
			RetryAfter: ratelimit.CeilSeconds(retry),
		}, nil
	}
	return ports.RateLimitResult{Allowed: true, Remaining: l.max - count}, nil
}

// Reset drops the counter for identifier.
func (l *RateLimiter) Reset(ctx context.Context, identifier string) error {
	if err := l.client.Del(ctx, l.key(identifier)).Err(); err != nil {
		return fmt.Errorf("rate limit reset: %w", err)
	}
	return nil
}

func (l *RateLimiter) key(identifier string) string {
	return fmt.Sprintf("ratelimit:%s:%s", l.scope, identifier)
}
