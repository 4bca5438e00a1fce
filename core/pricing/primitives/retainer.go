package primitives

import (
	"github.com/shopspring/decimal"

	"support-cost/core/types"
)

// RetainerWithAddons applies, in order: the base retainer, the extra
// language surcharge, the phone fee, the 24x7 uplift and finally the
// channel-mix adjustments. Every step is skipped when its rule is unset.
func RetainerWithAddons(rules types.RetainerRules, scenario *types.Scenario) decimal.Decimal {
	cost := decimal.Zero
	if rules.BaseRetainer != nil {
		cost = *rules.BaseRetainer
	}

	if rules.PerExtraLanguage != nil {
		extra := scenario.LanguagesCount - 1
		if extra > 0 {
			cost = cost.Add(rules.PerExtraLanguage.Mul(decimal.NewFromInt(int64(extra))))
		}
	}

	if rules.PhoneFee != nil && scenario.UsesChannel(types.ChannelPhone) {
		cost = cost.Add(*rules.PhoneFee)
	}

	if rules.Uplift24x7Pct != nil && scenario.Coverage == types.Coverage24x7 {
		cost = cost.Mul(one.Add(rules.Uplift24x7Pct.Div(hundred)))
	}

	for _, ch := range types.Channels {
		share, ok := scenario.ChannelMix.Share(ch)
		if !ok {
			continue
		}
		adj, ok := rules.ChannelAdjustments.Amount(ch)
		if !ok {
			continue
		}
		cost = cost.Add(percentOf(adj, share))
	}

	return cost
}
