package quote

import "math"

const taxRate = 0.075

// FlightTime is the displayed flight time: whole hours plus whole minutes,
// both truncated. Billing uses a separate half-hour rounded-up figure.
type FlightTime struct {
	Hours   int
	Minutes int
}

// FlightCost computes the estimated flight time and the billed cost of a
// single leg. Billing rounds the real-valued flight time UP to the nearest
// half hour; the displayed time truncates instead, so the two can disagree.
// A round trip costs exactly twice the one-way figure.
func FlightCost(distanceKm float64, aircraft AircraftSpec, roundTrip bool) (FlightTime, float64) {
	flightTimeHours := distanceKm / aircraft.CruiseSpeedKmh

	hours := int(math.Floor(flightTimeHours))
	minutes := int(math.Floor((flightTimeHours - float64(hours)) * 60))

	billedHours := math.Ceil(flightTimeHours*2) / 2
	cost := aircraft.HourlyRate * billedHours
	if roundTrip {
		cost *= 2
	}

	return FlightTime{Hours: hours, Minutes: minutes}, cost
}

// ExtrasCost sums the prices of the resolved extras. Order-independent.
func ExtrasCost(extras []ExtraSpec) float64 {
	var total float64
	for _, e := range extras {
		total += e.Price
	}
	return total
}

// SubscriptionDiscount is the tier discount applied to a quote, kept with
// its percentage for the pricing breakdown.
type SubscriptionDiscount struct {
	Percentage float64
	Amount     float64
}

// NewSubscriptionDiscount computes the tier discount against the
// pre-discount base (flight cost + extras cost). It is not compounded with
// the promo discount, which uses the same base.
func NewSubscriptionDiscount(tier Tier, base float64) SubscriptionDiscount {
	pct := tier.DiscountPercent()
	return SubscriptionDiscount{
		Percentage: pct,
		Amount:     base * pct / 100,
	}
}

// Pricing is the full cost breakdown of a quote.
//
// Subtotal is deliberately not floored at zero: discounts exceeding
// flight+extras pass a negative subtotal (and taxes, and total) through
// unchanged. Pending product clarification.
type Pricing struct {
	FlightCost           float64
	ExtrasCost           float64
	SubscriptionDiscount SubscriptionDiscount
	PromoDiscount        float64
	Subtotal             float64
	Taxes                float64
	Total                float64
}

func NewPricing(flightCost, extrasCost float64, sub SubscriptionDiscount, promoDiscount float64) Pricing {
	subtotal := flightCost + extrasCost - sub.Amount - promoDiscount
	taxes := subtotal * taxRate
	return Pricing{
		FlightCost:           flightCost,
		ExtrasCost:           extrasCost,
		SubscriptionDiscount: sub,
		PromoDiscount:        promoDiscount,
		Subtotal:             subtotal,
		Taxes:                taxes,
		Total:                subtotal + taxes,
	}
}
