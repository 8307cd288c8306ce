package commands

import (
	"context"
	"log/slog"

	"charter-quote-api/internal/domain/promo"
	"charter-quote-api/internal/domain/quote"
	"charter-quote-api/internal/infra"
	"charter-quote-api/internal/pkg/clock"
	"charter-quote-api/internal/pkg/errs"
)

type CreateQuoteParams struct {
	OriginID         int64
	DestinationID    int64
	DepartureDate    string
	ReturnDate       *string
	Passengers       int
	AircraftTypeID   *int64
	ExtraIDs         []int64
	PromoCode        *string
	SubscriptionTier string
}

type QuoteCommands interface {
	CreateQuote(ctx context.Context, params CreateQuoteParams) (*quote.Quote, error)
}

type quoteCommandsImpl struct {
	airportRepo  AirportRepository
	aircraftRepo AircraftRepository
	extraRepo    ExtraRepository
	promoRepo    PromoCodeRepository
	quoteRepo    QuoteRepository
	cache        QuoteCache
	producer     EventProducer
	factory      *quote.Factory
	clock        clock.Clock
}

func NewQuoteCommands(
	airportRepo AirportRepository,
	aircraftRepo AircraftRepository,
	extraRepo ExtraRepository,
	promoRepo PromoCodeRepository,
	quoteRepo QuoteRepository,
	cache QuoteCache,
	producer EventProducer,
	factory *quote.Factory,
	clock clock.Clock,
) QuoteCommands {
	return &quoteCommandsImpl{
		airportRepo:  airportRepo,
		aircraftRepo: aircraftRepo,
		extraRepo:    extraRepo,
		promoRepo:    promoRepo,
		quoteRepo:    quoteRepo,
		cache:        cache,
		producer:     producer,
		factory:      factory,
		clock:        clock,
	}
}

// CreateQuote resolves the reference data, selects an aircraft, reserves a
// promo use when applicable, and prices the quote. Persistence, caching and
// the analytics event are best-effort: their failure never fails a quote
// that was already computed.
func (q *quoteCommandsImpl) CreateQuote(ctx context.Context, params CreateQuoteParams) (*quote.Quote, error) {
	origin, err := q.resolveAirport(ctx, params.OriginID)
	if err != nil {
		return nil, err
	}
	destination, err := q.resolveAirport(ctx, params.DestinationID)
	if err != nil {
		return nil, err
	}

	aircraft, err := q.selectAircraft(ctx, params, *origin, *destination)
	if err != nil {
		return nil, err
	}

	extras, err := q.resolveExtras(ctx, params.ExtraIDs)
	if err != nil {
		return nil, err
	}

	promoEntity, err := q.redeemPromoCode(ctx, params.PromoCode)
	if err != nil {
		return nil, err
	}

	result := q.factory.NewQuote(quote.Input{
		Origin:        *origin,
		Destination:   *destination,
		Aircraft:      aircraft,
		Extras:        extras,
		Tier:          quote.Tier(params.SubscriptionTier),
		Promo:         promoEntity,
		Passengers:    params.Passengers,
		DepartureDate: params.DepartureDate,
		ReturnDate:    params.ReturnDate,
	})

	if saveErr := q.quoteRepo.Save(ctx, result); saveErr != nil {
		// The quote is still returned to the caller; retrieval just won't
		// find it later.
		slog.Warn("failed to persist quote", "quote_id", result.ID, "error", saveErr)
	} else if cacheErr := q.cache.SetQuote(ctx, result); cacheErr != nil {
		slog.Warn("failed to cache quote", "quote_id", result.ID, "error", cacheErr)
	}

	if pubErr := q.producer.PublishQuoteCreated(ctx, result, promoEntity != nil); pubErr != nil {
		slog.Warn("failed to publish quote event", "quote_id", result.ID, "error", pubErr)
	}

	return result, nil
}

func (q *quoteCommandsImpl) resolveAirport(ctx context.Context, id int64) (*quote.AirportSpec, error) {
	airport, err := q.airportRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAirportNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return airport, nil
}

func (q *quoteCommandsImpl) selectAircraft(
	ctx context.Context,
	params CreateQuoteParams,
	origin, destination quote.AirportSpec,
) (quote.AircraftSpec, error) {
	if params.AircraftTypeID != nil {
		// Explicitly requested aircraft bypasses the range/capacity check.
		requested, err := q.aircraftRepo.FindByID(ctx, *params.AircraftTypeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return quote.AircraftSpec{}, errs.ErrNoSuitableAircraft
			}
			return quote.AircraftSpec{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return quote.ExplicitSelection(*requested).Choose(nil)
	}

	catalog, err := q.aircraftRepo.ListAll(ctx)
	if err != nil {
		return quote.AircraftSpec{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	distance := quote.Distance(origin.Coordinates(), destination.Coordinates())
	selected, err := quote.AutoSelection(distance, params.Passengers).Choose(catalog)
	if err != nil {
		return quote.AircraftSpec{}, errs.ErrNoSuitableAircraft
	}
	return selected, nil
}

func (q *quoteCommandsImpl) resolveExtras(ctx context.Context, ids []int64) ([]quote.ExtraSpec, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	extras, err := q.extraRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return extras, nil
}

// redeemPromoCode resolves an eligible code and reserves one use with an
// atomic conditional decrement. A code that is unknown, ineligible, or lost
// a concurrent race for its last use prices the quote without a discount
// rather than failing the request.
func (q *quoteCommandsImpl) redeemPromoCode(ctx context.Context, code *string) (*promo.PromoCode, error) {
	if code == nil {
		return nil, nil
	}

	snapshot, err := q.promoRepo.FindEligibleByCode(ctx, *code, q.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity, err := promo.NewPromoCode(
		snapshot.ID,
		snapshot.Code,
		promo.DiscountType(snapshot.DiscountType),
		snapshot.DiscountValue,
		snapshot.IsActive,
		snapshot.ValidUntil,
		snapshot.RemainingUses,
	)
	if err != nil {
		slog.Warn("skipping malformed promo code", "code", snapshot.Code, "error", err)
		return nil, nil
	}
	if !entity.IsEligibleAt(q.clock.Now()) {
		return nil, nil
	}

	consumed, err := q.promoRepo.ConsumeUse(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !consumed {
		// Lost the race for the last remaining use.
		return nil, nil
	}

	return entity, nil
}
