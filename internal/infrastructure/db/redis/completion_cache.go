package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// CompletionCache stores completion text keyed by query, backed by Redis.
// Key format: completion:<sha256(normalized query)>
type CompletionCache struct {
	client *redis.Client
}

// NewCompletionCache creates a CompletionCache wrapping the given Redis client.
func NewCompletionCache(client *redis.Client) *CompletionCache {
	return &CompletionCache{client: client}
}

// Get returns the cached completion for query, if any.
func (c *CompletionCache) Get(ctx context.Context, query string) (string, bool, error) {
	val, err := c.client.Get(ctx, c.key(query)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("completion cache get: %w", err)
	}
	return val, true, nil
}

// Set stores the completion for query, expiring after ttl.
func (c *CompletionCache) Set(ctx context.Context, query, response string, ttl time.Duration) error {
	if err := c.client.Set(ctx, c.key(query), response, ttl).Err(); err != nil {
		return fmt.Errorf("completion cache set: %w", err)
	}
	return nil
}

func (c *CompletionCache) key(query string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(query))))
	return "completion:" + hex.EncodeToString(sum[:])
}
