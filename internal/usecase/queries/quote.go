package queries

import (
	"context"
	"log/slog"

	"charter-quote-api/internal/domain/quote"
	"charter-quote-api/internal/infra"
	"charter-quote-api/internal/pkg/clock"
	"charter-quote-api/internal/pkg/errs"

	"github.com/google/uuid"
)

type QuoteReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*quote.Quote, error)
}

type QuoteCacheReader interface {
	// GetQuote returns nil without error on a cache miss.
	GetQuote(ctx context.Context, id uuid.UUID) (*quote.Quote, error)
	SetQuote(ctx context.Context, q *quote.Quote) error
}

type QuoteQueries interface {
	GetQuote(ctx context.Context, id uuid.UUID) (*quote.Quote, error)
}

type quoteQueriesImpl struct {
	store QuoteReadStore
	cache QuoteCacheReader
	clock clock.Clock
}

func NewQuoteQueries(store QuoteReadStore, cache QuoteCacheReader, clock clock.Clock) QuoteQueries {
	return &quoteQueriesImpl{
		store: store,
		cache: cache,
		clock: clock,
	}
}

// GetQuote serves read-through from the cache; the store is authoritative.
// A quote past its expiry is indistinguishable from an unknown one, even
// though the row outlives the cache entry.
func (q *quoteQueriesImpl) GetQuote(ctx context.Context, id uuid.UUID) (*quote.Quote, error) {
	now := q.clock.Now()

	cached, err := q.cache.GetQuote(ctx, id)
	if err != nil {
		slog.Warn("quote cache read failed", "quote_id", id, "error", err)
	} else if cached != nil && cached.ExpiresAt.After(now) {
		return cached, nil
	}

	stored, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrQuoteNotFound
		}
		return nil, errs.Wrap(err, "failed to find quote")
	}
	if !stored.ExpiresAt.After(now) {
		return nil, errs.ErrQuoteNotFound
	}

	if cacheErr := q.cache.SetQuote(ctx, stored); cacheErr != nil {
		slog.Warn("quote cache backfill failed", "quote_id", id, "error", cacheErr)
	}

	return stored, nil
}
