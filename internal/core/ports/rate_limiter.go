package ports

import (
	"context"
	"time"
)

// RateLimitResult is the outcome of a single attempt check.
type RateLimitResult struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// RateLimiter bounds attempts per identifier inside a fixed window.
type RateLimiter interface {
	Check(ctx context.Context, identifier string) (RateLimitResult, error)
	Reset(ctx context.Context, identifier string) error
}
