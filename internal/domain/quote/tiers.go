package quote

// Tier is a caller-supplied subscription class used for discount
// eligibility.
type Tier string

const (
	TierFree     Tier = "free"
	TierPremium  Tier = "premium"
	TierBusiness Tier = "business"
	TierElite    Tier = "elite"
)

// Extend by adding entries, not by branching.
var tierDiscountPercent = map[Tier]float64{
	TierFree:     0,
	TierPremium:  5,
	TierBusiness: 10,
	TierElite:    15,
}

// DiscountPercent returns the discount percentage for a tier. Unrecognized
// tiers get no discount.
func (t Tier) DiscountPercent() float64 {
	return tierDiscountPercent[t]
}
