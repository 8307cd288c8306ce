package repository

import (
	"context"
	"time"

	"charter-quote-api/internal/infra"
	"charter-quote-api/internal/usecase/commands"
)

type PromoCodeRepository struct {
	db DB
}

func NewPromoCodeRepository(db DB) *PromoCodeRepository {
	return &PromoCodeRepository{db: db}
}

// FindEligibleByCode resolves a promo code that is active, unexpired at
// now, and has uses left. The eligibility filter lives in the query so
// ineligible codes are indistinguishable from unknown ones.
func (r *PromoCodeRepository) FindEligibleByCode(ctx context.Context, code string, now time.Time) (*commands.PromoCodeSnapshot, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, code, discount_type, discount_value, is_active, valid_until, remaining_uses
		 FROM promo_codes
		 WHERE code = $1 AND is_active = true AND valid_until >= $2 AND remaining_uses > 0`,
		code, now)

	var p commands.PromoCodeSnapshot
	err := row.Scan(&p.ID, &p.Code, &p.DiscountType, &p.DiscountValue, &p.IsActive, &p.ValidUntil, &p.RemainingUses)
	if err != nil {
		if isNoRows(err) {
			return nil, infra.WrapRepoErr("promo code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promo code", err)
	}
	return &p, nil
}

// ConsumeUse reserves one use with a single conditional update, so
// concurrent redemptions can never push the counter below zero.
func (r *PromoCodeRepository) ConsumeUse(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.Exec(ctx,
		`UPDATE promo_codes SET remaining_uses = remaining_uses - 1 WHERE id = $1 AND remaining_uses > 0`, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to consume promo code use", err)
	}
	return res.RowsAffected() > 0, nil
}
