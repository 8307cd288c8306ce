package bootstrap

import (
	"context"

	"charter-quote-api/internal/infra/events"
	"charter-quote-api/internal/pkg/config"

	"go.uber.org/fx"
)

var KafkaModule = fx.Module("kafka",
	fx.Provide(
		NewEventProducer,
	),
)

func NewEventProducer(lc fx.Lifecycle, cfg config.Config) *events.Producer {
	p := events.NewProducer(cfg.Kafka)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})

	return p
}
