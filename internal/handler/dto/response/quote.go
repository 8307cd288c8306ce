package response

import (
	"time"

	"charter-quote-api/internal/domain/quote"

	"github.com/google/uuid"
)

type QuoteResponse struct {
	QuoteID        uuid.UUID             `json:"quote_id"`
	CreatedAt      time.Time             `json:"created_at"`
	ExpiresAt      time.Time             `json:"expires_at"`
	FlightDetails  FlightDetailsResponse `json:"flight_details"`
	Aircraft       AircraftResponse      `json:"aircraft"`
	SelectedExtras []ExtraResponse       `json:"selected_extras"`
	Pricing        PricingResponse       `json:"pricing"`
	BookingLink    string                `json:"booking_link"`
}

type FlightDetailsResponse struct {
	OriginID            int64              `json:"origin_id"`
	Origin              string             `json:"origin"`
	DestinationID       int64              `json:"destination_id"`
	Destination         string             `json:"destination"`
	DistanceKm          int                `json:"distance_km"`
	EstimatedFlightTime FlightTimeResponse `json:"estimated_flight_time"`
	DepartureDate       string             `json:"departure_date"`
	ReturnDate          *string            `json:"return_date"`
	IsRoundTrip         bool               `json:"is_round_trip"`
	Passengers          int                `json:"passengers"`
}

type FlightTimeResponse struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

type AircraftResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	MaxPassengers  int     `json:"max_passengers"`
	RangeKm        float64 `json:"range_km"`
	CruiseSpeedKmh float64 `json:"cruise_speed_kmh"`
	HourlyRate     float64 `json:"hourly_rate"`
}

type ExtraResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description *string `json:"description,omitempty"`
}

type PricingResponse struct {
	FlightCost           float64                      `json:"flight_cost"`
	ExtrasCost           float64                      `json:"extras_cost"`
	SubscriptionDiscount SubscriptionDiscountResponse `json:"subscription_discount"`
	PromoDiscount        float64                      `json:"promo_discount"`
	Subtotal             float64                      `json:"subtotal"`
	Taxes                float64                      `json:"taxes"`
	Total                float64                      `json:"total"`
}

type SubscriptionDiscountResponse struct {
	Percentage float64 `json:"percentage"`
	Amount     float64 `json:"amount"`
}

func FromQuote(q *quote.Quote) *QuoteResponse {
	extras := make([]ExtraResponse, len(q.SelectedExtras))
	for i, e := range q.SelectedExtras {
		extras[i] = ExtraResponse{
			ID:          e.ID,
			Name:        e.Name,
			Price:       e.Price,
			Description: e.Description,
		}
	}

	return &QuoteResponse{
		QuoteID:   q.ID,
		CreatedAt: q.CreatedAt,
		ExpiresAt: q.ExpiresAt,
		FlightDetails: FlightDetailsResponse{
			OriginID:      q.FlightDetails.OriginID,
			Origin:        q.FlightDetails.Origin,
			DestinationID: q.FlightDetails.DestinationID,
			Destination:   q.FlightDetails.Destination,
			DistanceKm:    q.FlightDetails.DistanceKm,
			EstimatedFlightTime: FlightTimeResponse{
				Hours:   q.FlightDetails.EstimatedFlightTime.Hours,
				Minutes: q.FlightDetails.EstimatedFlightTime.Minutes,
			},
			DepartureDate: q.FlightDetails.DepartureDate,
			ReturnDate:    q.FlightDetails.ReturnDate,
			IsRoundTrip:   q.FlightDetails.IsRoundTrip,
			Passengers:    q.FlightDetails.Passengers,
		},
		Aircraft: AircraftResponse{
			ID:             q.Aircraft.ID,
			Name:           q.Aircraft.Name,
			Category:       q.Aircraft.Category,
			MaxPassengers:  q.Aircraft.MaxPassengers,
			RangeKm:        q.Aircraft.RangeKm,
			CruiseSpeedKmh: q.Aircraft.CruiseSpeedKmh,
			HourlyRate:     q.Aircraft.HourlyRate,
		},
		SelectedExtras: extras,
		Pricing: PricingResponse{
			FlightCost: q.Pricing.FlightCost,
			ExtrasCost: q.Pricing.ExtrasCost,
			SubscriptionDiscount: SubscriptionDiscountResponse{
				Percentage: q.Pricing.SubscriptionDiscount.Percentage,
				Amount:     q.Pricing.SubscriptionDiscount.Amount,
			},
			PromoDiscount: q.Pricing.PromoDiscount,
			Subtotal:      q.Pricing.Subtotal,
			Taxes:         q.Pricing.Taxes,
			Total:         q.Pricing.Total,
		},
		BookingLink: q.BookingLink,
	}
}
