package commands

import (
	"context"
	"time"

	"charter-quote-api/internal/domain/quote"
)

type AirportRepository interface {
	FindByID(ctx context.Context, id int64) (*quote.AirportSpec, error)
}

type AircraftRepository interface {
	FindByID(ctx context.Context, id int64) (*quote.AircraftSpec, error)
	ListAll(ctx context.Context) ([]quote.AircraftSpec, error)
}

type ExtraRepository interface {
	// FindByIDs returns only the extras that exist; unknown IDs are dropped.
	FindByIDs(ctx context.Context, ids []int64) ([]quote.ExtraSpec, error)
}

// PromoCodeSnapshot is the raw promo row as read from the store.
type PromoCodeSnapshot struct {
	ID            int64
	Code          string
	DiscountType  string
	DiscountValue float64
	IsActive      bool
	ValidUntil    time.Time
	RemainingUses int
}

type PromoCodeRepository interface {
	// FindEligibleByCode resolves a code that is active, still valid at now,
	// and has uses left. Ineligible or unknown codes report not found.
	FindEligibleByCode(ctx context.Context, code string, now time.Time) (*PromoCodeSnapshot, error)
	// ConsumeUse atomically decrements the remaining-uses counter, refusing
	// to go below zero. Reports whether a use was actually reserved.
	ConsumeUse(ctx context.Context, id int64) (bool, error)
}

type QuoteRepository interface {
	Save(ctx context.Context, q *quote.Quote) error
}

type QuoteCache interface {
	SetQuote(ctx context.Context, q *quote.Quote) error
}

type EventProducer interface {
	PublishQuoteCreated(ctx context.Context, q *quote.Quote, promoApplied bool) error
}
