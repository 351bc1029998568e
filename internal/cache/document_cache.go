package cache

import (
	"context"
	"fmt"
	"time"
)

// DocumentCache stores rendered quotation PDFs. Keys carry the fingerprint of
// the assembled document, so any change to the header, the client or the
// catalog text makes the previous entry unreachable.
type DocumentCache struct {
	redis *RedisClient
	ttl   time.Duration
}

// NewDocumentCache creates a new DocumentCache.
func NewDocumentCache(redis *RedisClient, ttl time.Duration) *DocumentCache {
	return &DocumentCache{redis: redis, ttl: ttl}
}

// key returns the Redis key for one version of a quotation document.
// Format: quotation:pdf:{id}:{fingerprint}
func (c *DocumentCache) key(id int, fingerprint string) string {
	return fmt.Sprintf("quotation:pdf:%d:%s", id, fingerprint)
}

// Get returns the cached document, or ErrMiss.
func (c *DocumentCache) Get(ctx context.Context, id int, fingerprint string) ([]byte, error) {
	return c.redis.GetBytes(ctx, c.key(id, fingerprint))
}

// Set stores a rendered document.
func (c *DocumentCache) Set(ctx context.Context, id int, fingerprint string, pdf []byte) error {
	if err := c.redis.SetBytes(ctx, c.key(id, fingerprint), pdf, c.ttl); err != nil {
		return fmt.Errorf("failed to cache document %d: %w", id, err)
	}
	return nil
}
