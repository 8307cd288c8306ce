package request

import (
	"strings"

	"charter-quote-api/internal/usecase/commands"
)

// CreateQuoteRequest is the wire payload of the quote form. Origin,
// destination, departure date and passenger count are mandatory; the tier
// string is passed through as-is because unrecognized tiers simply earn no
// discount.
type CreateQuoteRequest struct {
	OriginID         int64   `json:"origin_id" binding:"required"`
	DestinationID    int64   `json:"destination_id" binding:"required"`
	DepartureDate    string  `json:"departure_date" binding:"required"`
	ReturnDate       *string `json:"return_date,omitempty"`
	Passengers       int     `json:"passengers" binding:"required,gt=0"`
	AircraftTypeID   *int64  `json:"aircraft_type_id,omitempty"`
	Extras           []int64 `json:"extras,omitempty"`
	PromoCode        *string `json:"promo_code,omitempty"`
	SubscriptionTier string  `json:"subscription_tier"`
}

func (r CreateQuoteRequest) GetPromoCode() *string {
	if r.PromoCode == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.PromoCode)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CreateQuoteRequest) GetReturnDate() *string {
	if r.ReturnDate == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.ReturnDate)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (r CreateQuoteRequest) ToParams() commands.CreateQuoteParams {
	return commands.CreateQuoteParams{
		OriginID:         r.OriginID,
		DestinationID:    r.DestinationID,
		DepartureDate:    r.DepartureDate,
		ReturnDate:       r.GetReturnDate(),
		Passengers:       r.Passengers,
		AircraftTypeID:   r.AircraftTypeID,
		ExtraIDs:         r.Extras,
		PromoCode:        r.GetPromoCode(),
		SubscriptionTier: r.SubscriptionTier,
	}
}
