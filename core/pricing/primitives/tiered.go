// Package primitives - Tiered pricing primitives
// Volume tiers charge one flat fee for the whole month.
package primitives

import (
	"slices"

	"github.com/shopspring/decimal"

	"support-cost/core/types"
)

// TieredFee returns the fee of the first tier, by ascending ceiling, whose
// ceiling covers tickets. Volumes above every ceiling fall into the last
// tier, which is open-ended. No tiers means no charge.
func TieredFee(tiers []types.Tier, tickets decimal.Decimal) decimal.Decimal {
	if len(tiers) == 0 {
		return decimal.Zero
	}

	ordered := slices.Clone(tiers)
	slices.SortStableFunc(ordered, func(a, b types.Tier) int {
		return a.UpTo.Cmp(b.UpTo)
	})

	for _, tier := range ordered {
		if tier.UpTo.GreaterThanOrEqual(tickets) {
			return tier.Fee
		}
	}
	return ordered[len(ordered)-1].Fee
}
