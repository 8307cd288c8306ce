//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"charter-quote-api/internal/infra"
	"charter-quote-api/internal/pkg/clock"
	"charter-quote-api/internal/pkg/errs"
	"charter-quote-api/internal/usecase/queries"
	"charter-quote-api/tests/common/builder"
	queriesmock "charter-quote-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newQuoteQueries(t *testing.T, now time.Time) (queries.QuoteQueries, *queriesmock.MockQuoteReadStore, *queriesmock.MockQuoteCacheReader) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockQuoteReadStore(ctrl)
	cache := queriesmock.NewMockQuoteCacheReader(ctrl)
	return queries.NewQuoteQueries(store, cache, clock.NewMockClock(now)), store, cache
}

func TestGetQuote(t *testing.T) {
	ctx := context.Background()
	b := builder.NewQuoteBuilder()
	stored := b.BuildDomain()

	t.Run("cache hit never touches the store", func(t *testing.T) {
		uc, _, cache := newQuoteQueries(t, b.Now)
		cache.EXPECT().GetQuote(ctx, stored.ID).Return(stored, nil)

		result, err := uc.GetQuote(ctx, stored.ID)

		require.NoError(t, err)
		assert.Equal(t, stored, result)
	})

	t.Run("cache miss falls back to the store and backfills", func(t *testing.T) {
		uc, store, cache := newQuoteQueries(t, b.Now)
		cache.EXPECT().GetQuote(ctx, stored.ID).Return(nil, nil)
		store.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
		cache.EXPECT().SetQuote(ctx, stored).Return(nil)

		result, err := uc.GetQuote(ctx, stored.ID)

		require.NoError(t, err)
		assert.Equal(t, stored, result)
	})

	t.Run("cache failure degrades to the store", func(t *testing.T) {
		uc, store, cache := newQuoteQueries(t, b.Now)
		cache.EXPECT().GetQuote(ctx, stored.ID).Return(nil, errors.New("redis down"))
		store.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
		cache.EXPECT().SetQuote(ctx, stored).Return(errors.New("redis down"))

		result, err := uc.GetQuote(ctx, stored.ID)

		require.NoError(t, err)
		assert.Equal(t, stored, result)
	})

	t.Run("unknown quote maps to the not-found sentinel", func(t *testing.T) {
		uc, store, cache := newQuoteQueries(t, b.Now)
		id := uuid.New()
		cache.EXPECT().GetQuote(ctx, id).Return(nil, nil)
		store.EXPECT().FindByID(ctx, id).Return(nil, infra.WrapRepoErr("quote not found", errors.New("no rows"), infra.KindNotFound))

		_, err := uc.GetQuote(ctx, id)

		assert.ErrorIs(t, err, errs.ErrQuoteNotFound)
	})

	t.Run("expired quote in the store reads as not found", func(t *testing.T) {
		uc, store, cache := newQuoteQueries(t, stored.ExpiresAt.Add(time.Hour))
		cache.EXPECT().GetQuote(ctx, stored.ID).Return(nil, nil)
		store.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

		_, err := uc.GetQuote(ctx, stored.ID)

		assert.ErrorIs(t, err, errs.ErrQuoteNotFound)
	})

	t.Run("expiry boundary is exclusive", func(t *testing.T) {
		uc, store, cache := newQuoteQueries(t, stored.ExpiresAt)
		cache.EXPECT().GetQuote(ctx, stored.ID).Return(nil, nil)
		store.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

		_, err := uc.GetQuote(ctx, stored.ID)

		assert.ErrorIs(t, err, errs.ErrQuoteNotFound)
	})

	t.Run("stale cache entry is ignored, not served", func(t *testing.T) {
		uc, store, cache := newQuoteQueries(t, stored.ExpiresAt.Add(time.Hour))
		cache.EXPECT().GetQuote(ctx, stored.ID).Return(stored, nil)
		store.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

		_, err := uc.GetQuote(ctx, stored.ID)

		assert.ErrorIs(t, err, errs.ErrQuoteNotFound)
	})
}
