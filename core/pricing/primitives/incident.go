package primitives

import (
	"github.com/shopspring/decimal"

	"support-cost/core/types"
	"support-cost/core/usage"
)

// PerIncident projects each severity bucket on its own and prices it at
// the severity's unit price. Severities without a price cost nothing.
func PerIncident(rules types.PerIncidentRules, scenario *types.Scenario) decimal.Decimal {
	total := decimal.Zero
	for _, sev := range types.Severities {
		count, ok := scenario.TicketsBySeverity[sev]
		if !ok {
			continue
		}
		price, ok := rules.Prices[sev]
		if !ok {
			continue
		}
		projected := usage.ProjectValue(count, scenario.TicketGrowthPct, scenario.MonthsToProject)
		total = total.Add(projected.Mul(price))
	}
	return total
}
