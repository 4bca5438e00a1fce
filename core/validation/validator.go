// Package validation - Comparison input validation
// Checks a vendor list and scenario before any cost is computed.
package validation

import (
	"support-cost/core/types"
)

// Rule returns an error message, or "" when the input passes
type Rule func(vendors []types.Vendor, scenario *types.Scenario) string

// DefaultRules returns the standard rules in reporting order
func DefaultRules() []Rule {
	return []Rule{
		requireVendors,
		requireScenario,
		requirePositiveTickets,
		requireNonNegativeSpend,
	}
}

// Validate runs every rule and collects the failures
func Validate(vendors []types.Vendor, scenario *types.Scenario) types.Validation {
	return ValidateWith(DefaultRules(), vendors, scenario)
}

// ValidateWith runs the given rules
func ValidateWith(rules []Rule, vendors []types.Vendor, scenario *types.Scenario) types.Validation {
	errs := []string{}
	for _, rule := range rules {
		if msg := rule(vendors, scenario); msg != "" {
			errs = append(errs, msg)
		}
	}
	return types.Validation{Valid: len(errs) == 0, Errors: errs}
}

func requireVendors(vendors []types.Vendor, _ *types.Scenario) string {
	if len(vendors) == 0 {
		return "vendor list is empty"
	}
	return ""
}

func requireScenario(_ []types.Vendor, scenario *types.Scenario) string {
	if scenario == nil {
		return "scenario is missing"
	}
	return ""
}

func requirePositiveTickets(_ []types.Vendor, scenario *types.Scenario) string {
	if scenario != nil && !scenario.MonthlyTicketsTotal.IsPositive() {
		return "monthly tickets total must be greater than zero"
	}
	return ""
}

func requireNonNegativeSpend(_ []types.Vendor, scenario *types.Scenario) string {
	if scenario != nil && scenario.CloudSpend.IsNegative() {
		return "cloud spend must not be negative"
	}
	return ""
}
