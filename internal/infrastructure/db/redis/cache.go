package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const cachePrefix = "site:cache:"

// ContentCache stores JSON-encoded public payloads with a TTL.
type ContentCache struct {
	client *redis.Client
}

// NewContentCache wraps client.
func NewContentCache(client *redis.Client) *ContentCache {
	return &ContentCache{client: client}
}

func (c *ContentCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, cachePrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

func (c *ContentCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	return c.client.Set(ctx, cachePrefix+key, raw, ttl).Err()
}

func (c *ContentCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = cachePrefix + k
	}
	return c.client.Del(ctx, full...).Err()
}
