package components

import (
	"charter-quote-api/internal/domain/quote"
	"charter-quote-api/internal/pkg/clock"
	"charter-quote-api/internal/pkg/config"
	"charter-quote-api/internal/usecase/commands"
	"charter-quote-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(clk clock.Clock, cfg config.Config) *quote.Factory {
		return quote.NewFactory(clk, cfg.Quote.BookingBaseURL)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewQuoteCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewQuoteQueries,
	),
)
