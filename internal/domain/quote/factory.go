package quote

import (
	"fmt"
	"math"
	"time"

	"charter-quote-api/internal/domain/promo"
	"charter-quote-api/internal/pkg/clock"

	"github.com/google/uuid"
)

const quoteValidity = 24 * time.Hour

// Input carries the resolved reference data for one quote computation. The
// promo entry must only be set when a use has already been reserved against
// the store; the factory assumes eligibility was settled by the caller.
type Input struct {
	Origin        AirportSpec
	Destination   AirportSpec
	Aircraft      AircraftSpec
	Extras        []ExtraSpec
	Tier          Tier
	Promo         *promo.PromoCode
	Passengers    int
	DepartureDate string
	ReturnDate    *string
}

type Factory struct {
	clock          clock.Clock
	bookingBaseURL string
}

func NewFactory(clock clock.Clock, bookingBaseURL string) *Factory {
	return &Factory{
		clock:          clock,
		bookingBaseURL: bookingBaseURL,
	}
}

// NewQuote runs the pricing pipeline: distance, flight time and cost,
// extras, both discounts against the same pre-discount base, tax, totals.
// Pure and deterministic apart from the generated identifiers and the
// injected clock.
func (f *Factory) NewQuote(in Input) *Quote {
	distance := Distance(in.Origin.Coordinates(), in.Destination.Coordinates())
	isRoundTrip := in.ReturnDate != nil

	flightTime, flightCost := FlightCost(distance, in.Aircraft, isRoundTrip)
	extrasCost := ExtrasCost(in.Extras)
	base := flightCost + extrasCost

	sub := NewSubscriptionDiscount(in.Tier, base)

	var promoDiscount float64
	if in.Promo != nil {
		promoDiscount = in.Promo.DiscountAmount(base)
	}

	now := f.clock.Now()
	extras := in.Extras
	if extras == nil {
		extras = []ExtraSpec{}
	}

	return &Quote{
		ID:        uuid.New(),
		CreatedAt: now,
		ExpiresAt: now.Add(quoteValidity),
		FlightDetails: FlightDetails{
			OriginID:            in.Origin.ID,
			Origin:              in.Origin.IATACode,
			DestinationID:       in.Destination.ID,
			Destination:         in.Destination.IATACode,
			DistanceKm:          int(math.Round(distance)),
			EstimatedFlightTime: flightTime,
			DepartureDate:       in.DepartureDate,
			ReturnDate:          in.ReturnDate,
			IsRoundTrip:         isRoundTrip,
			Passengers:          in.Passengers,
		},
		Aircraft:       in.Aircraft,
		SelectedExtras: extras,
		Pricing:        NewPricing(flightCost, extrasCost, sub, promoDiscount),
		// The booking token is a fresh identifier, independent of the quote ID.
		BookingLink: fmt.Sprintf("%s/functions/v1/charter-booking?quote=%s", f.bookingBaseURL, uuid.NewString()),
	}
}
