package promo

import (
	"errors"
	"time"
)

var (
	ErrUnknownDiscountType = errors.New("unknown discount type")
	ErrNegativeDiscount    = errors.New("discount value cannot be negative")
)

type DiscountType string

const (
	DiscountTypePercentage  DiscountType = "percentage"
	DiscountTypeFixedAmount DiscountType = "fixed_amount"
)

// PromoCode is a redeemable discount token. Remaining uses is the one piece
// of shared mutable state in the system; the entity only reads it, the
// store decrements it with a conditional update.
type PromoCode struct {
	id            int64
	code          string
	discountType  DiscountType
	discountValue float64
	active        bool
	validUntil    time.Time
	remainingUses int
}

func NewPromoCode(
	id int64,
	code string,
	discountType DiscountType,
	discountValue float64,
	active bool,
	validUntil time.Time,
	remainingUses int,
) (*PromoCode, error) {
	if discountType != DiscountTypePercentage && discountType != DiscountTypeFixedAmount {
		return nil, ErrUnknownDiscountType
	}
	if discountValue < 0 {
		return nil, ErrNegativeDiscount
	}

	return &PromoCode{
		id:            id,
		code:          code,
		discountType:  discountType,
		discountValue: discountValue,
		active:        active,
		validUntil:    validUntil,
		remainingUses: remainingUses,
	}, nil
}

// IsEligibleAt reports whether the code can be redeemed at t: it must be
// active, within its validity window, and have uses left.
func (p *PromoCode) IsEligibleAt(t time.Time) bool {
	if !p.active {
		return false
	}
	if t.After(p.validUntil) {
		return false
	}
	return p.remainingUses > 0
}

// DiscountAmount computes the discount against the pre-discount base
// (flight cost + extras cost). Percentage codes scale with the base; fixed
// codes ignore it.
func (p *PromoCode) DiscountAmount(base float64) float64 {
	if p.discountType == DiscountTypePercentage {
		return base * p.discountValue / 100
	}
	return p.discountValue
}

func (p *PromoCode) ID() int64                  { return p.id }
func (p *PromoCode) Code() string               { return p.code }
func (p *PromoCode) DiscountType() DiscountType { return p.discountType }
func (p *PromoCode) DiscountValue() float64     { return p.discountValue }
func (p *PromoCode) IsActive() bool             { return p.active }
func (p *PromoCode) ValidUntil() time.Time      { return p.validUntil }
func (p *PromoCode) RemainingUses() int         { return p.remainingUses }
