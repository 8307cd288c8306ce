//go:build unit || e2e

package builder

import (
	"time"

	"charter-quote-api/internal/domain/quote"
	reqdto "charter-quote-api/internal/handler/dto/request"
	"charter-quote-api/internal/pkg/clock"
	"charter-quote-api/internal/pkg/config"
	"charter-quote-api/internal/usecase/commands"
)

// QuoteBuilder assembles consistent reference data for quote tests: a
// Madrid-Barcelona route, a small aircraft catalog and a couple of extras.
type QuoteBuilder struct {
	OriginID         int64
	DestinationID    int64
	DepartureDate    string
	ReturnDate       *string
	Passengers       int
	AircraftTypeID   *int64
	ExtraIDs         []int64
	PromoCode        *string
	SubscriptionTier string
	Now              time.Time
}

func NewQuoteBuilder() *QuoteBuilder {
	return &QuoteBuilder{
		OriginID:         1,
		DestinationID:    2,
		DepartureDate:    "2025-06-01",
		Passengers:       4,
		SubscriptionTier: "free",
		Now:              time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *QuoteBuilder) With(mutate func(*QuoteBuilder)) *QuoteBuilder {
	mutate(b)
	return b
}

func (b *QuoteBuilder) BuildOrigin() quote.AirportSpec {
	return quote.AirportSpec{ID: b.OriginID, IATACode: "MAD", Latitude: 40.4719, Longitude: -3.5626}
}

func (b *QuoteBuilder) BuildDestination() quote.AirportSpec {
	return quote.AirportSpec{ID: b.DestinationID, IATACode: "BCN", Latitude: 41.2971, Longitude: 2.0785}
}

// BuildCatalog returns the aircraft ordered by hourly rate, the way the
// repository serves them.
func (b *QuoteBuilder) BuildCatalog() []quote.AircraftSpec {
	return []quote.AircraftSpec{
		{ID: 1, Name: "Citation CJ3+", Category: "light", MaxPassengers: 6, RangeKm: 3778, CruiseSpeedKmh: 770, HourlyRate: 2900},
		{ID: 2, Name: "Gulfstream G450", Category: "heavy", MaxPassengers: 14, RangeKm: 8000, CruiseSpeedKmh: 850, HourlyRate: 7500},
	}
}

func (b *QuoteBuilder) BuildExtras() []quote.ExtraSpec {
	catering := "Full in-flight catering"
	return []quote.ExtraSpec{
		{ID: 1, Name: "Catering", Price: 350, Description: &catering},
		{ID: 2, Name: "Ground transfer", Price: 150},
	}
}

func (b *QuoteBuilder) BuildPromoSnapshot() *commands.PromoCodeSnapshot {
	return &commands.PromoCodeSnapshot{
		ID:            7,
		Code:          "SUMMER10",
		DiscountType:  "percentage",
		DiscountValue: 10,
		IsActive:      true,
		ValidUntil:    b.Now.Add(30 * 24 * time.Hour),
		RemainingUses: 5,
	}
}

func (b *QuoteBuilder) BuildCreateRequestDTO() reqdto.CreateQuoteRequest {
	return reqdto.CreateQuoteRequest{
		OriginID:         b.OriginID,
		DestinationID:    b.DestinationID,
		DepartureDate:    b.DepartureDate,
		ReturnDate:       b.ReturnDate,
		Passengers:       b.Passengers,
		AircraftTypeID:   b.AircraftTypeID,
		Extras:           b.ExtraIDs,
		PromoCode:        b.PromoCode,
		SubscriptionTier: b.SubscriptionTier,
	}
}

func (b *QuoteBuilder) BuildParams() commands.CreateQuoteParams {
	return b.BuildCreateRequestDTO().ToParams()
}

// BuildDomain prices a quote through the real factory using the builder's
// fixed clock, with the cheapest catalog aircraft and no extras or promo.
func (b *QuoteBuilder) BuildDomain() *quote.Quote {
	factory := quote.NewFactory(clock.NewMockClock(b.Now), config.NewTestConfig().Quote.BookingBaseURL)
	return factory.NewQuote(quote.Input{
		Origin:        b.BuildOrigin(),
		Destination:   b.BuildDestination(),
		Aircraft:      b.BuildCatalog()[0],
		Tier:          quote.Tier(b.SubscriptionTier),
		Passengers:    b.Passengers,
		DepartureDate: b.DepartureDate,
		ReturnDate:    b.ReturnDate,
	})
}
