package events

import (
	"context"
	"encoding/json"
	"time"

	"charter-quote-api/internal/domain/quote"
	"charter-quote-api/internal/pkg/config"

	"github.com/segmentio/kafka-go"
)

// QuoteEvent is the analytics payload published for each issued quote.
type QuoteEvent struct {
	Type         string    `json:"type"`
	QuoteID      string    `json:"quote_id"`
	Origin       string    `json:"origin"`
	Destination  string    `json:"destination"`
	Passengers   int       `json:"passengers"`
	IsRoundTrip  bool      `json:"is_round_trip"`
	Total        float64   `json:"total"`
	PromoApplied bool      `json:"promo_applied"`
	CreatedAt    time.Time `json:"created_at"`
}

type Producer struct {
	writer *kafka.Writer
	topic  string
}

func NewProducer(cfg config.KafkaConfig) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
		topic: cfg.QuoteEventsTopic,
	}
}

func (p *Producer) PublishQuoteCreated(ctx context.Context, q *quote.Quote, promoApplied bool) error {
	event := QuoteEvent{
		Type:         "quote_created",
		QuoteID:      q.ID.String(),
		Origin:       q.FlightDetails.Origin,
		Destination:  q.FlightDetails.Destination,
		Passengers:   q.FlightDetails.Passengers,
		IsRoundTrip:  q.FlightDetails.IsRoundTrip,
		Total:        q.Pricing.Total,
		PromoApplied: promoApplied,
		CreatedAt:    q.CreatedAt,
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.QuoteID),
		Value: data,
		Time:  event.CreatedAt,
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
