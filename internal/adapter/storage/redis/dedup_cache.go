package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DedupCache implements ports.DedupCache using Redis. It marks references
// whose wallet effect already committed so replayed callbacks short-circuit
// before touching the database. Losing a key is harmless: the payment
// request table remains the authoritative duplicate check.
type DedupCache struct {
	client *goredis.Client
	prefix string
}

// NewDedupCache creates a new Redis-backed callback dedup cache.
func NewDedupCache(client *goredis.Client) *DedupCache {
	return &DedupCache{
		client: client,
		prefix: "reconciled:",
	}
}

// Seen reports whether the reference was already applied.
// A missing key returns false, nil.
func (c *DedupCache) Seen(ctx context.Context, reference string) (bool, error) {
	_, err := c.client.Get(ctx, c.prefix+reference).Result()
	if err != nil {
		if err == goredis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("redis dedup get: %w", err)
	}
	return true, nil
}

// Mark records the reference as applied with a TTL.
func (c *DedupCache) Mark(ctx context.Context, reference string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.prefix+reference, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis dedup set: %w", err)
	}
	return nil
}
