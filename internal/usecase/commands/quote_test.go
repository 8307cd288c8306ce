//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"charter-quote-api/internal/domain/quote"
	"charter-quote-api/internal/infra"
	"charter-quote-api/internal/pkg/clock"
	"charter-quote-api/internal/pkg/errs"
	"charter-quote-api/internal/usecase/commands"
	"charter-quote-api/tests/common/builder"
	commandsmock "charter-quote-api/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type quoteMocks struct {
	airport  *commandsmock.MockAirportRepository
	aircraft *commandsmock.MockAircraftRepository
	extra    *commandsmock.MockExtraRepository
	promo    *commandsmock.MockPromoCodeRepository
	quote    *commandsmock.MockQuoteRepository
	cache    *commandsmock.MockQuoteCache
	producer *commandsmock.MockEventProducer
}

func newQuoteCommands(t *testing.T, now time.Time) (commands.QuoteCommands, *quoteMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &quoteMocks{
		airport:  commandsmock.NewMockAirportRepository(ctrl),
		aircraft: commandsmock.NewMockAircraftRepository(ctrl),
		extra:    commandsmock.NewMockExtraRepository(ctrl),
		promo:    commandsmock.NewMockPromoCodeRepository(ctrl),
		quote:    commandsmock.NewMockQuoteRepository(ctrl),
		cache:    commandsmock.NewMockQuoteCache(ctrl),
		producer: commandsmock.NewMockEventProducer(ctrl),
	}

	clk := clock.NewMockClock(now)
	factory := quote.NewFactory(clk, "http://localhost:54321")

	uc := commands.NewQuoteCommands(m.airport, m.aircraft, m.extra, m.promo, m.quote, m.cache, m.producer, factory, clk)
	return uc, m
}

func (m *quoteMocks) expectRoute(b *builder.QuoteBuilder) {
	origin := b.BuildOrigin()
	destination := b.BuildDestination()
	m.airport.EXPECT().FindByID(gomock.Any(), b.OriginID).Return(&origin, nil)
	m.airport.EXPECT().FindByID(gomock.Any(), b.DestinationID).Return(&destination, nil)
}

func (m *quoteMocks) expectSideEffects() {
	m.quote.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
	m.cache.EXPECT().SetQuote(gomock.Any(), gomock.Any()).Return(nil)
	m.producer.EXPECT().PublishQuoteCreated(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
}

func TestCreateQuote(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	notFound := infra.WrapRepoErr("not found", errors.New("no rows"), infra.KindNotFound)

	t.Run("success: auto selection picks the cheapest fitting aircraft", func(t *testing.T) {
		b := builder.NewQuoteBuilder()
		uc, m := newQuoteCommands(t, now)

		m.expectRoute(b)
		m.aircraft.EXPECT().ListAll(gomock.Any()).Return(b.BuildCatalog(), nil)
		m.expectSideEffects()

		result, err := uc.CreateQuote(ctx, b.BuildParams())

		require.NoError(t, err)
		assert.Equal(t, int64(1), result.Aircraft.ID)
		assert.Equal(t, now.Add(24*time.Hour), result.ExpiresAt)
		assert.Zero(t, result.Pricing.PromoDiscount)
	})

	t.Run("success: explicit aircraft skips the catalog entirely", func(t *testing.T) {
		aircraftID := int64(1)
		b := builder.NewQuoteBuilder().With(func(b *builder.QuoteBuilder) {
			b.AircraftTypeID = &aircraftID
			b.Passengers = 12 // over the explicit aircraft's capacity
		})
		uc, m := newQuoteCommands(t, now)

		m.expectRoute(b)
		small := b.BuildCatalog()[0]
		m.aircraft.EXPECT().FindByID(gomock.Any(), aircraftID).Return(&small, nil)
		m.expectSideEffects()

		result, err := uc.CreateQuote(ctx, b.BuildParams())

		require.NoError(t, err)
		assert.Equal(t, small.ID, result.Aircraft.ID)
		assert.Equal(t, 12, result.FlightDetails.Passengers)
	})

	t.Run("success: extras are resolved and priced", func(t *testing.T) {
		b := builder.NewQuoteBuilder().With(func(b *builder.QuoteBuilder) {
			b.ExtraIDs = []int64{1, 2}
		})
		uc, m := newQuoteCommands(t, now)

		m.expectRoute(b)
		m.aircraft.EXPECT().ListAll(gomock.Any()).Return(b.BuildCatalog(), nil)
		m.extra.EXPECT().FindByIDs(gomock.Any(), []int64{1, 2}).Return(b.BuildExtras(), nil)
		m.expectSideEffects()

		result, err := uc.CreateQuote(ctx, b.BuildParams())

		require.NoError(t, err)
		assert.InDelta(t, 500, result.Pricing.ExtrasCost, 1e-9)
		assert.Len(t, result.SelectedExtras, 2)
	})

	t.Run("error: unknown origin airport", func(t *testing.T) {
		b := builder.NewQuoteBuilder()
		uc, m := newQuoteCommands(t, now)

		m.airport.EXPECT().FindByID(gomock.Any(), b.OriginID).Return(nil, notFound)

		_, err := uc.CreateQuote(ctx, b.BuildParams())

		assert.ErrorIs(t, err, errs.ErrAirportNotFound)
	})

	t.Run("error: unknown explicit aircraft", func(t *testing.T) {
		aircraftID := int64(99)
		b := builder.NewQuoteBuilder().With(func(b *builder.QuoteBuilder) {
			b.AircraftTypeID = &aircraftID
		})
		uc, m := newQuoteCommands(t, now)

		m.expectRoute(b)
		m.aircraft.EXPECT().FindByID(gomock.Any(), aircraftID).Return(nil, notFound)

		_, err := uc.CreateQuote(ctx, b.BuildParams())

		assert.ErrorIs(t, err, errs.ErrNoSuitableAircraft)
	})

	t.Run("error: no aircraft fits the journey", func(t *testing.T) {
		b := builder.NewQuoteBuilder().With(func(b *builder.QuoteBuilder) {
			b.Passengers = 20
		})
		uc, m := newQuoteCommands(t, now)

		m.expectRoute(b)
		m.aircraft.EXPECT().ListAll(gomock.Any()).Return(b.BuildCatalog(), nil)

		_, err := uc.CreateQuote(ctx, b.BuildParams())

		assert.ErrorIs(t, err, errs.ErrNoSuitableAircraft)
	})

	t.Run("promo: eligible code reserves a use and discounts the quote", func(t *testing.T) {
		code := "SUMMER10"
		b := builder.NewQuoteBuilder().With(func(b *builder.QuoteBuilder) {
			b.PromoCode = &code
		})
		uc, m := newQuoteCommands(t, now)

		m.expectRoute(b)
		m.aircraft.EXPECT().ListAll(gomock.Any()).Return(b.BuildCatalog(), nil)
		snapshot := b.BuildPromoSnapshot()
		m.promo.EXPECT().FindEligibleByCode(gomock.Any(), code, now).Return(snapshot, nil)
		m.promo.EXPECT().ConsumeUse(gomock.Any(), snapshot.ID).Return(true, nil)
		m.expectSideEffects()

		result, err := uc.CreateQuote(ctx, b.BuildParams())

		require.NoError(t, err)
		assert.InDelta(t, result.Pricing.FlightCost*0.10, result.Pricing.PromoDiscount, 1e-9)
	})

	t.Run("promo: unknown code prices without a discount", func(t *testing.T) {
		code := "NOPE"
		b := builder.NewQuoteBuilder().With(func(b *builder.QuoteBuilder) {
			b.PromoCode = &code
		})
		uc, m := newQuoteCommands(t, now)

		m.expectRoute(b)
		m.aircraft.EXPECT().ListAll(gomock.Any()).Return(b.BuildCatalog(), nil)
		m.promo.EXPECT().FindEligibleByCode(gomock.Any(), code, now).Return(nil, notFound)
		m.expectSideEffects()

		result, err := uc.CreateQuote(ctx, b.BuildParams())

		require.NoError(t, err)
		assert.Zero(t, result.Pricing.PromoDiscount)
	})

	t.Run("promo: losing the race for the last use drops the discount", func(t *testing.T) {
		code := "SUMMER10"
		b := builder.NewQuoteBuilder().With(func(b *builder.QuoteBuilder) {
			b.PromoCode = &code
		})
		uc, m := newQuoteCommands(t, now)

		m.expectRoute(b)
		m.aircraft.EXPECT().ListAll(gomock.Any()).Return(b.BuildCatalog(), nil)
		snapshot := b.BuildPromoSnapshot()
		m.promo.EXPECT().FindEligibleByCode(gomock.Any(), code, now).Return(snapshot, nil)
		m.promo.EXPECT().ConsumeUse(gomock.Any(), snapshot.ID).Return(false, nil)
		m.expectSideEffects()

		result, err := uc.CreateQuote(ctx, b.BuildParams())

		require.NoError(t, err)
		assert.Zero(t, result.Pricing.PromoDiscount)
	})

	t.Run("persistence failure still returns the quote and skips the cache", func(t *testing.T) {
		b := builder.NewQuoteBuilder()
		uc, m := newQuoteCommands(t, now)

		m.expectRoute(b)
		m.aircraft.EXPECT().ListAll(gomock.Any()).Return(b.BuildCatalog(), nil)
		m.quote.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
		m.producer.EXPECT().PublishQuoteCreated(gomock.Any(), gomock.Any(), false).Return(nil)

		result, err := uc.CreateQuote(ctx, b.BuildParams())

		require.NoError(t, err)
		require.NotNil(t, result)
	})

	t.Run("event publish failure is swallowed", func(t *testing.T) {
		b := builder.NewQuoteBuilder()
		uc, m := newQuoteCommands(t, now)

		m.expectRoute(b)
		m.aircraft.EXPECT().ListAll(gomock.Any()).Return(b.BuildCatalog(), nil)
		m.quote.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
		m.cache.EXPECT().SetQuote(gomock.Any(), gomock.Any()).Return(nil)
		m.producer.EXPECT().PublishQuoteCreated(gomock.Any(), gomock.Any(), false).Return(errors.New("broker down"))

		_, err := uc.CreateQuote(ctx, b.BuildParams())

		require.NoError(t, err)
	})
}
