package quote

import (
	"time"

	"github.com/google/uuid"
)

// FlightDetails is the route block of a quote: resolved airports, rounded
// distance, and the truncated display flight time.
type FlightDetails struct {
	OriginID            int64
	Origin              string
	DestinationID       int64
	Destination         string
	DistanceKm          int
	EstimatedFlightTime FlightTime
	DepartureDate       string
	ReturnDate          *string
	IsRoundTrip         bool
	Passengers          int
}

// Quote is the priced result of a request. Created once, never mutated;
// persistence and caching happen outside the domain.
type Quote struct {
	ID             uuid.UUID
	CreatedAt      time.Time
	ExpiresAt      time.Time
	FlightDetails  FlightDetails
	Aircraft       AircraftSpec
	SelectedExtras []ExtraSpec
	Pricing        Pricing
	BookingLink    string
}
