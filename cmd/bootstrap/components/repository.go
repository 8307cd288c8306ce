package components

import (
	"charter-quote-api/internal/infra/cache"
	"charter-quote-api/internal/infra/events"
	repo_impl "charter-quote-api/internal/infra/repository"
	"charter-quote-api/internal/usecase/commands"
	"charter-quote-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewRepositoryDB,
		fx.Annotate(
			repo_impl.NewAirportRepository,
			fx.As(new(commands.AirportRepository)),
		),
		fx.Annotate(
			repo_impl.NewAircraftRepository,
			fx.As(new(commands.AircraftRepository)),
		),
		fx.Annotate(
			repo_impl.NewExtraRepository,
			fx.As(new(commands.ExtraRepository)),
		),
		fx.Annotate(
			repo_impl.NewPromoCodeRepository,
			fx.As(new(commands.PromoCodeRepository)),
		),
		fx.Annotate(
			repo_impl.NewQuoteRepository,
			fx.As(new(commands.QuoteRepository)),
			fx.As(new(queries.QuoteReadStore)),
		),
		func(c *cache.QuoteCache) commands.QuoteCache { return c },
		func(c *cache.QuoteCache) queries.QuoteCacheReader { return c },
		func(p *events.Producer) commands.EventProducer { return p },
	),
)

func NewRepositoryDB(pool *pgxpool.Pool) repo_impl.DB {
	return pool
}
