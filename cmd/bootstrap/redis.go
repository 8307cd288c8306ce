package bootstrap

import (
	"context"

	"charter-quote-api/internal/infra/cache"
	"charter-quote-api/internal/pkg/config"

	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewQuoteCache,
	),
)

func NewQuoteCache(lc fx.Lifecycle, cfg config.Config) *cache.QuoteCache {
	c := cache.NewQuoteCache(cfg.Redis)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return c.Close()
		},
	})

	return c
}
