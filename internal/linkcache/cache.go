package linkcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"dub-server/internal/clients/redis"
	"dub-server/internal/observability"
	"dub-server/internal/store"
)

// TTL of a cached link
const TTL = 24 * time.Hour

// Key returns the cache key of a short link. Domains are case-insensitive, keys are not.
func Key(domain, key string) string {
	return fmt.Sprintf("linkcache:%s:%s", strings.ToLower(domain), key)
}

// Cache stores resolved links in Redis
type Cache struct {
	redis  RedisClient
	logger *observability.Logger
}

// New creates a new link cache
func New(client RedisClient, logger *observability.Logger) *Cache {
	return &Cache{
		redis:  client,
		logger: logger,
	}
}

// Get returns the cached link, or nil on a miss.
// Errors are returned so callers can fall back to the database.
func (c *Cache) Get(ctx context.Context, domain, key string) (*store.Link, error) {
	raw, err := c.redis.Get(ctx, Key(domain, key))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			observability.LinkCacheLookups.WithLabelValues("miss").Inc()
			return nil, nil
		}
		observability.LinkCacheLookups.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to read link cache: %w", err)
	}

	var link store.Link
	if err := json.Unmarshal([]byte(raw), &link); err != nil {
		// A corrupt entry is treated as a miss and overwritten by the caller.
		observability.LinkCacheLookups.WithLabelValues("error").Inc()
		c.logger.Error(ctx, "failed to decode cached link", err)
		return nil, nil
	}

	observability.LinkCacheLookups.WithLabelValues("hit").Inc()
	return &link, nil
}

// Set caches a link under its current domain and key
func (c *Cache) Set(ctx context.Context, link store.Link) error {
	payload, err := json.Marshal(link)
	if err != nil {
		return fmt.Errorf("failed to encode link: %w", err)
	}
	if err := c.redis.Set(ctx, Key(link.Domain, link.Key), payload, TTL); err != nil {
		return fmt.Errorf("failed to write link cache: %w", err)
	}
	return nil
}

// Delete removes one cached link
func (c *Cache) Delete(ctx context.Context, domain, key string) error {
	return c.DeleteMany(ctx, []store.LinkRef{{Domain: domain, Key: key}})
}

// DeleteMany removes cached links in one round trip
func (c *Cache) DeleteMany(ctx context.Context, refs []store.LinkRef) error {
	if len(refs) == 0 {
		return nil
	}
	keys := make([]string, len(refs))
	for i, ref := range refs {
		keys[i] = Key(ref.Domain, ref.Key)
	}
	if err := c.redis.Del(ctx, keys...); err != nil {
		return fmt.Errorf("failed to delete link cache: %w", err)
	}
	return nil
}
