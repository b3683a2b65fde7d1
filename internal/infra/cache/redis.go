// Package cache provides the Redis-backed read-through cache for upstream
// recipe-search responses.
package cache

import (
	"context"
	"log/slog"

	"plateful/config"
	"plateful/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// NewRedisClient creates the Redis connection and registers its lifecycle
// with Fx. The returned client is nil when no Redis is configured; the cache
// layer degrades to a no-op in that case.
func NewRedisClient(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) *redis.Client {
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		logger.Info("redis not configured, search cache disabled")

		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(pingCtx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			logger.Info("redis connected", slog.String("addr", cfg.Redis.Addr))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return client
}
