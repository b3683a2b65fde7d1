package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"plateful/config"
	"plateful/internal/domain/service"

	"github.com/redis/go-redis/v9"
)

const defaultSearchCacheTTL = 10 * time.Minute

// redisSearchCache implements service.SearchCache on top of Redis.
// Every Redis failure is treated as a cache miss so the search path keeps
// working when the cache is down.
type redisSearchCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// noopSearchCache is used when caching is disabled or Redis is absent.
type noopSearchCache struct{}

func (noopSearchCache) Get(context.Context, string) (json.RawMessage, bool) { return nil, false }
func (noopSearchCache) Set(context.Context, string, json.RawMessage)        {}

// NewSearchCache is the constructor for the search-response cache.
func NewSearchCache(cfg *config.Config, client *redis.Client, logger *slog.Logger) service.SearchCache {
	if client == nil || cfg.SearchCache == nil || !cfg.SearchCache.Enabled {
		return noopSearchCache{}
	}

	ttl := cfg.SearchCache.TTL
	if ttl <= 0 {
		ttl = defaultSearchCacheTTL
	}

	return &redisSearchCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get returns the cached payload for the key, or ok=false on a miss.
func (c *redisSearchCache) Get(ctx context.Context, key string) (json.RawMessage, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("search cache read failed", slog.String("error", err.Error()))
		}

		return nil, false
	}

	return payload, true
}

// Set stores the payload under the key for the configured TTL.
func (c *redisSearchCache) Set(ctx context.Context, key string, payload json.RawMessage) {
	if err := c.client.Set(ctx, key, []byte(payload), c.ttl).Err(); err != nil {
		c.logger.Warn("search cache write failed", slog.String("error", err.Error()))
	}
}
