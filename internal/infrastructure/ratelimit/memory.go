// Package ratelimit holds the in-process fixed-window attempt limiter used to
// slow down credential stuffing on the login endpoint.
//
// State lives in the Memory value, so every instance of the service counts
// separately and a restart forgets all counters. Deployments with several
// instances should use the Redis-backed limiter instead.
package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/lentefilmes/site-admin/internal/core/ports"
)

const (
	DefaultMaxAttempts = 5
	DefaultWindow      = 15 * time.Minute

	// sweepThreshold is the map size above which expired entries are purged.
	sweepThreshold = 1000
)

type entry struct {
	count   int
	resetAt time.Time
}

// Memory is a fixed-window counter keyed by client identifier.
type Memory struct {
	mu      sync.Mutex
	entries map[string]*entry
	max     int
	window  time.Duration
	now     func() time.Time
}

// NewMemory returns a limiter allowing max attempts per window. Non-positive
// values fall back to the defaults.
func NewMemory(max int, window time.Duration) *Memory {
	if max <= 0 {
		max = DefaultMaxAttempts
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Memory{
		entries: make(map[string]*entry),
		max:     max,
		window:  window,
		now:     time.Now,
	}
}

// WithClock replaces time.Now, for tests.
func (m *Memory) WithClock(now func() time.Time) *Memory {
	m.now = now
	return m
}

// Check records an attempt for identifier and reports whether it may proceed.
func (m *Memory) Check(_ context.Context, identifier string) (ports.RateLimitResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if len(m.entries) > sweepThreshold {
		m.sweep(now)
	}

	e, ok := m.entries[identifier]
	if !ok || !now.Before(e.resetAt) {
		m.entries[identifier] = &entry{count: 1, resetAt: now.Add(m.window)}
		return ports.RateLimitResult{Allowed: true, Remaining: m.max - 1}, nil
	}

	if e.count >= m.max {
		return ports.RateLimitResult{
			Allowed:    false,
			Remaining:  0,
			RetryAfter: CeilSeconds(e.resetAt.Sub(now)),
		}, nil
	}

	e.count++
	return ports.RateLimitResult{Allowed: true, Remaining: m.max - e.count}, nil
}

// Reset forgets identifier, typically after a successful login.
func (m *Memory) Reset(_ context.Context, identifier string) error {
	m.mu.Lock()
	delete(m.entries, identifier)
	m.mu.Unlock()
	return nil
}

// Len returns the number of tracked identifiers.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *Memory) sweep(now time.Time) {
	for k, e := range m.entries {
		if !now.Before(e.resetAt) {
			delete(m.entries, k)
		}
	}
}

// CeilSeconds rounds d up to whole seconds, never below one.
func CeilSeconds(d time.Duration) time.Duration {
	s := math.Ceil(d.Seconds())
	if s < 1 {
		s = 1
	}
	return time.Duration(s) * time.Second
}
