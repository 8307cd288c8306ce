package components

import (
	"charter-quote-api/internal/handler"
	"charter-quote-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewQuoteHandler,
	),
	fx.Invoke(handler.NewRouter),
)
