package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultDedupTTL = 10 * time.Minute

// LeadDedup remembers recent contact-form submissions so a double click or a
// browser retry does not create a second lead.
// Key format: dedup:lead:<fingerprint>
type LeadDedup struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLeadDedup wraps client. A non-positive ttl uses ten minutes.
func NewLeadDedup(client *redis.Client, ttl time.Duration) *LeadDedup {
	if ttl <= 0 {
		ttl = defaultDedupTTL
	}
	return &LeadDedup{client: client, ttl: ttl}
}

// Lookup returns the lead id stored for fingerprint, or "" when unseen.
func (d *LeadDedup) Lookup(ctx context.Context, fingerprint string) (string, error) {
	id, err := d.client.Get(ctx, d.key(fingerprint)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("dedup lookup: %w", err)
	}
	return id, nil
}

// Remember records fingerprint → leadID until the TTL expires.
func (d *LeadDedup) Remember(ctx context.Context, fingerprint, leadID string) error {
	if err := d.client.Set(ctx, d.key(fingerprint), leadID, d.ttl).Err(); err != nil {
		return fmt.Errorf("dedup remember: %w", err)
	}
	return nil
}

func (d *LeadDedup) key(fingerprint string) string {
	return "dedup:lead:" + fingerprint
}
