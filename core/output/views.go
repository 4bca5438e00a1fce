package output

import (
	"fmt"

	"support-cost/core/types"
)

// TableRow is one vendor line ready for display
type TableRow struct {
	VendorID    string   `json:"vendor_id"`
	Vendor      string   `json:"vendor"`
	Monthly     string   `json:"monthly"`
	Annual      string   `json:"annual"`
	PerTicket   string   `json:"per_ticket"`
	SLAFit      string   `json:"sla_fit"`
	MeetsSLA    bool     `json:"meets_sla"`
	Gaps        []string `json:"gaps,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
	Multiplier  string   `json:"coverage_multiplier"`
	ProjTickets string   `json:"projected_tickets"`
	ProjSpend   string   `json:"projected_spend"`
	Source      string   `json:"source_currency"`
}

// TableView is the tabular projection of a comparison
type TableView struct {
	Scenario string     `json:"scenario"`
	Currency string     `json:"currency"`
	Valid    bool       `json:"valid"`
	Errors   []string   `json:"errors,omitempty"`
	Rows     []TableRow `json:"rows"`
}

// ChartView is a chart-series projection: parallel vendor names and
// monthly costs in the reporting currency
type ChartView struct {
	Labels       []string  `json:"labels"`
	MonthlyCosts []float64 `json:"monthly_costs"`
	Currency     string    `json:"currency"`
}

// SLALabel is the short SLA-fit label shown per vendor
func SLALabel(r types.ComparisonResult) string {
	if r.MeetsSLA {
		return "Meets SLA"
	}
	return fmt.Sprintf("SLA gaps (%d)", len(r.Gaps))
}

// Table builds the tabular view of a comparison
func Table(cmp types.Comparison) TableView {
	view := TableView{
		Scenario: cmp.ScenarioName,
		Currency: string(cmp.Currency),
		Valid:    cmp.Validation.Valid,
		Errors:   cmp.Validation.Errors,
		Rows:     make([]TableRow, 0, len(cmp.Results)),
	}
	for _, r := range cmp.Results {
		view.Rows = append(view.Rows, TableRow{
			VendorID:    r.VendorID,
			Vendor:      r.VendorName,
			Monthly:     FormatCurrency(r.MonthlyCost, cmp.Currency),
			Annual:      FormatCurrency(r.AnnualCost, cmp.Currency),
			PerTicket:   FormatCurrency(r.CostPerTicket, cmp.Currency),
			SLAFit:      SLALabel(r),
			MeetsSLA:    r.MeetsSLA,
			Gaps:        r.Gaps,
			Notes:       r.Notes,
			Warnings:    r.Assumptions.Warnings,
			Multiplier:  r.Assumptions.CoverageMultiplier.StringFixed(2),
			ProjTickets: r.Assumptions.ProjectedTickets.StringFixed(0),
			ProjSpend:   FormatCurrency(r.Assumptions.ProjectedSpend, cmp.Currency),
			Source:      string(r.Assumptions.SourceCurrency),
		})
	}
	return view
}

// Chart builds the chart-series view of a comparison
func Chart(cmp types.Comparison) ChartView {
	view := ChartView{
		Labels:       make([]string, 0, len(cmp.Results)),
		MonthlyCosts: make([]float64, 0, len(cmp.Results)),
		Currency:     string(cmp.Currency),
	}
	for _, r := range cmp.Results {
		view.Labels = append(view.Labels, r.VendorName)
		view.MonthlyCosts = append(view.MonthlyCosts, r.MonthlyCost.Round(2).InexactFloat64())
	}
	return view
}
