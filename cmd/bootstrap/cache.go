package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"venue-booking/internal/infra/cache"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewAvailabilityCache,
		func(c queries.AvailabilityCache) commands.AvailabilityInvalidator { return c },
	),
)

// NewAvailabilityCache falls back to a cache that always misses when Redis is
// disabled. An unreachable Redis is only logged; reads go to Postgres.
func NewAvailabilityCache(lc fx.Lifecycle, cfg config.Config) queries.AvailabilityCache {
	if !cfg.Redis.Enabled {
		slog.Info("availability cache disabled")
		return cache.NoopCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			defer cancel()
			if err := client.Ping(pingCtx).Err(); err != nil {
				slog.Warn("redis unreachable, availability reads will hit the database", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewAvailabilityCache(client, cfg.Redis.CacheTTL)
}
