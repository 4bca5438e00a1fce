// Package coverage - Coverage window weighting
// Each tier carries a weekly-hours proxy used to penalize vendors whose
// window is narrower than the buyer requires.
package coverage

import (
	"github.com/shopspring/decimal"

	"support-cost/core/types"
)

// MaxWeight is the weight of the widest tier, used for unrecognized tiers
const MaxWeight = 168

var weights = map[types.CoverageTier]int64{
	types.CoverageBusiness: 40,
	types.Coverage16x5:     80,
	types.Coverage24x7:     MaxWeight,
}

// Weight returns the weekly-hours proxy for a tier. Unrecognized tiers
// weigh as much as 24x7.
func Weight(tier types.CoverageTier) int64 {
	if !tier.Valid() {
		return MaxWeight
	}
	return weights[tier]
}

// Multiplier scales a price by required/offered weight when the offered
// window is narrower than required, and is 1 otherwise.
func Multiplier(required, offered types.CoverageTier) decimal.Decimal {
	req := Weight(required)
	off := Weight(offered)
	if off >= req {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromInt(req).Div(decimal.NewFromInt(off))
}

// Adjust applies Multiplier to amount and returns both
func Adjust(amount decimal.Decimal, required, offered types.CoverageTier) (decimal.Decimal, decimal.Decimal) {
	m := Multiplier(required, offered)
	return amount.Mul(m), m
}
