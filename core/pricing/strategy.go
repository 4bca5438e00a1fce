// Package pricing dispatches a vendor to the pricing primitive for its model.
package pricing

import (
	"github.com/shopspring/decimal"

	"support-cost/core/pricing/primitives"
	"support-cost/core/types"
	"support-cost/core/usage"
	"support-cost/internal/errors"
)

// Input is everything a pricing model may read
type Input struct {
	Scenario   *types.Scenario
	Projection usage.Projection
}

// Calculate returns the vendor's monthly cost in the vendor's own currency,
// before any coverage or currency adjustment. The result is never negative.
func Calculate(vendor *types.Vendor, in Input) (decimal.Decimal, error) {
	if !vendor.Model.Valid() {
		return decimal.Zero, errors.Pricing("unknown pricing model %q", vendor.Model).
			WithContext("vendor", vendor.ID)
	}

	rules := normalize(vendor.Rules)
	if rules == nil {
		// Absent rules price as the zero-valued variant of the model
		var err error
		if rules, err = types.DecodeRules(vendor.Model, nil); err != nil {
			return decimal.Zero, err
		}
	}
	if rules.Model() != vendor.Model {
		return decimal.Zero, errors.Pricing(
			"rules for %q do not match pricing model %q", rules.Model(), vendor.Model).
			WithContext("vendor", vendor.ID)
	}

	var cost decimal.Decimal
	switch r := rules.(type) {
	case types.PercentSpendRules:
		cost = primitives.PercentOfSpend(r, in.Projection.Spend)
	case types.TieredRules:
		cost = primitives.TieredFee(r.Tiers, in.Projection.Tickets)
	case types.PerIncidentRules:
		cost = primitives.PerIncident(r, in.Scenario)
	case types.RetainerRules:
		cost = primitives.RetainerWithAddons(r, in.Scenario)
	default:
		return decimal.Zero, errors.Pricing("unsupported rules type %T", rules)
	}

	if cost.IsNegative() {
		cost = decimal.Zero
	}
	return cost, nil
}

// normalize dereferences pointer variants so the switch above only deals
// with values. A nil pointer is treated as absent rules.
func normalize(r types.Rules) types.Rules {
	switch p := r.(type) {
	case *types.PercentSpendRules:
		if p == nil {
			return nil
		}
		return *p
	case *types.TieredRules:
		if p == nil {
			return nil
		}
		return *p
	case *types.PerIncidentRules:
		if p == nil {
			return nil
		}
		return *p
	case *types.RetainerRules:
		if p == nil {
			return nil
		}
		return *p
	}
	return r
}
