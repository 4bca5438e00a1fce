package types

import "github.com/shopspring/decimal"

// ComparisonResult is the evaluation of one vendor against one scenario.
// All amounts are in the scenario's reporting currency.
type ComparisonResult struct {
	VendorID   string `json:"vendor_id"`
	VendorName string `json:"vendor_name"`

	// MonthlyCost is the projected monthly cost after coverage and currency adjustment
	MonthlyCost decimal.Decimal `json:"monthly_cost"`

	// AnnualCost is twelve months at MonthlyCost
	AnnualCost decimal.Decimal `json:"annual_cost"`

	// CostPerTicket is MonthlyCost over projected tickets
	CostPerTicket decimal.Decimal `json:"cost_per_ticket"`

	// MeetsSLA is true when Gaps is empty
	MeetsSLA bool     `json:"meets_sla"`
	Gaps     []string `json:"gaps"`

	Notes string `json:"notes,omitempty"`

	// Assumptions records the inputs behind the figures
	Assumptions Assumptions `json:"assumptions"`
}

// Assumptions documents how a result was derived
type Assumptions struct {
	ProjectedTickets   decimal.Decimal `json:"projected_tickets"`
	ProjectedSpend     decimal.Decimal `json:"projected_spend"`
	CoverageMultiplier decimal.Decimal `json:"coverage_multiplier"`

	// BaseCost is the pricing strategy output in the vendor's currency
	BaseCost decimal.Decimal `json:"base_cost"`

	SourceCurrency Currency `json:"source_currency"`

	// Warnings lists non-fatal degradations such as a missing FX rate
	Warnings []string `json:"warnings,omitempty"`
}

// Validation reports whether a comparison can be trusted
type Validation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Comparison is the outcome of evaluating every vendor for one scenario
type Comparison struct {
	ScenarioName string             `json:"scenario_name"`
	Currency     Currency           `json:"currency"`
	Results      []ComparisonResult `json:"results"`
	Validation   Validation         `json:"validation"`

	// Fingerprint identifies the exact vendor and scenario input
	Fingerprint string `json:"fingerprint,omitempty"`
}

// CheapestCompliant returns the lowest-cost result that meets the SLA.
// Results are already sorted by monthly cost.
func (c *Comparison) CheapestCompliant() (ComparisonResult, bool) {
	for _, r := range c.Results {
		if r.MeetsSLA {
			return r, true
		}
	}
	return ComparisonResult{}, false
}
