package output

import (
	"io"
	"strings"

	"support-cost/core/types"
	"support-cost/core/ui"
)

// CLIFormatter renders comparisons as terminal tables
type CLIFormatter struct {
	opts Options
}

// NewCLIFormatter creates a CLI formatter
func NewCLIFormatter(opts Options) *CLIFormatter {
	return &CLIFormatter{opts: opts}
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes one section per scenario
func (f *CLIFormatter) Render(w io.Writer, comparisons []types.Comparison) error {
	out := ui.NewWriter(w, f.opts.NoColor)
	for i := range comparisons {
		f.renderOne(out, &comparisons[i])
	}
	return nil
}

func (f *CLIFormatter) renderOne(out *ui.Writer, cmp *types.Comparison) {
	view := Table(*cmp)

	title := view.Scenario
	if title == "" {
		title = "Scenario"
	}
	out.Header(title + " (" + view.Currency + ")")

	for _, e := range view.Errors {
		out.Error("%s", e)
	}
	if !view.Valid && len(view.Rows) == 0 {
		return
	}

	headers := []string{"Vendor", "Monthly", "Annual", "Per ticket", "SLA"}
	if f.opts.ShowAssumptions {
		headers = append(headers, "Coverage x", "Tickets")
	}
	if f.opts.ShowNotes {
		headers = append(headers, "Notes")
	}

	table := out.NewTable(headers...).AlignRight(1, 2, 3)
	for _, row := range view.Rows {
		cells := []string{row.Vendor, row.Monthly, row.Annual, row.PerTicket, row.SLAFit}
		if f.opts.ShowAssumptions {
			cells = append(cells, row.Multiplier, row.ProjTickets)
		}
		if f.opts.ShowNotes {
			cells = append(cells, row.Notes)
		}
		table.AddRow(cells...)
	}
	table.Render()

	for _, row := range view.Rows {
		if len(row.Gaps) == 0 && len(row.Warnings) == 0 {
			continue
		}
		out.Println("")
		out.SubHeader(row.Vendor)
		for _, g := range row.Gaps {
			out.Detail("gap: %s", g)
		}
		for _, w := range row.Warnings {
			out.Warning("%s", w)
		}
	}

	out.Println("")
	if best, ok := cmp.CheapestCompliant(); ok {
		out.Success("Cheapest compliant: %s at %s/month",
			best.VendorName, FormatCurrency(best.MonthlyCost, cmp.Currency))
	} else if len(view.Rows) > 0 {
		names := make([]string, 0, len(view.Rows))
		for _, row := range view.Rows {
			names = append(names, row.Vendor)
		}
		out.Warning("No vendor meets the SLA (%s)", strings.Join(names, ", "))
	}
}
