package output

import (
	"fmt"
	"io"
	"strings"

	"support-cost/core/types"
)

// MarkdownFormatter renders comparisons as a markdown report
type MarkdownFormatter struct {
	opts Options
}

// NewMarkdownFormatter creates a markdown formatter
func NewMarkdownFormatter(opts Options) *MarkdownFormatter {
	return &MarkdownFormatter{opts: opts}
}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render writes one section per scenario
func (f *MarkdownFormatter) Render(w io.Writer, comparisons []types.Comparison) error {
	var sb strings.Builder
	sb.WriteString("# Support Vendor Comparison\n")

	for i := range comparisons {
		cmp := &comparisons[i]
		view := Table(*cmp)

		fmt.Fprintf(&sb, "\n## %s (%s)\n\n", escapeCell(view.Scenario), view.Currency)
		if cmp.Fingerprint != "" {
			fmt.Fprintf(&sb, "Input fingerprint: `%s`\n\n", cmp.Fingerprint)
		}

		if len(view.Errors) > 0 {
			sb.WriteString("**Validation errors:**\n\n")
			for _, e := range view.Errors {
				fmt.Fprintf(&sb, "- %s\n", e)
			}
			sb.WriteString("\n")
		}
		if len(view.Rows) == 0 {
			continue
		}

		headers := []string{"Vendor", "Monthly", "Annual", "Per ticket", "SLA fit"}
		if f.opts.ShowAssumptions {
			headers = append(headers, "Coverage x", "Tickets")
		}
		if f.opts.ShowNotes {
			headers = append(headers, "Notes")
		}
		sb.WriteString("| " + strings.Join(headers, " | ") + " |\n")
		sb.WriteString("|" + strings.Repeat("---|", len(headers)) + "\n")

		for _, row := range view.Rows {
			cells := []string{escapeCell(row.Vendor), row.Monthly, row.Annual, row.PerTicket, row.SLAFit}
			if f.opts.ShowAssumptions {
				cells = append(cells, row.Multiplier, row.ProjTickets)
			}
			if f.opts.ShowNotes {
				cells = append(cells, escapeCell(row.Notes))
			}
			sb.WriteString("| " + strings.Join(cells, " | ") + " |\n")
		}

		for _, row := range view.Rows {
			if len(row.Gaps) == 0 && len(row.Warnings) == 0 {
				continue
			}
			fmt.Fprintf(&sb, "\n### %s\n\n", escapeCell(row.Vendor))
			for _, g := range row.Gaps {
				fmt.Fprintf(&sb, "- %s\n", g)
			}
			for _, wn := range row.Warnings {
				fmt.Fprintf(&sb, "- ⚠️ %s\n", wn)
			}
		}

		if best, ok := cmp.CheapestCompliant(); ok {
			fmt.Fprintf(&sb, "\n**Cheapest compliant:** %s at %s/month\n",
				escapeCell(best.VendorName), FormatCurrency(best.MonthlyCost, cmp.Currency))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
