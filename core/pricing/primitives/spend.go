package primitives

import (
	"github.com/shopspring/decimal"

	"support-cost/core/types"
)

// PercentOfSpend charges Percent of projected spend, floored at MinFee when set
func PercentOfSpend(rules types.PercentSpendRules, projectedSpend decimal.Decimal) decimal.Decimal {
	cost := percentOf(projectedSpend, rules.Percent)
	if rules.MinFee != nil {
		cost = decimal.Max(cost, *rules.MinFee)
	}
	return cost
}
