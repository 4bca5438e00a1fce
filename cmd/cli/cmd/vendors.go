// Package cmd - vendors command
package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"support-cost/adapters/input"
	"support-cost/core/types"
	"support-cost/core/ui"
	"support-cost/internal/config"
	"support-cost/internal/logging"
)

var catalogFile string

// vendorsCmd lists a vendor catalog
var vendorsCmd = &cobra.Command{
	Use:   "vendors",
	Short: "Validate and list a vendor catalog",
	Long: `Load a vendor catalog, validate every entry, and print a summary of
each vendor's pricing model and published service levels.

Examples:
  support-cost vendors --vendors vendors.hcl`,
	Args: cobra.NoArgs,
	RunE: runVendors,
}

func init() {
	vendorsCmd.Flags().StringVar(&catalogFile, "vendors", "", "vendor catalog file (.json, .yaml, .yml, .hcl)")
	_ = vendorsCmd.MarkFlagRequired("vendors")
}

func runVendors(cmd *cobra.Command, args []string) error {
	vendors, err := input.NewLoader(input.WithLogger(logging.Logger)).LoadVendors(catalogFile)
	if err != nil {
		return err
	}

	w := ui.NewWriter(cmd.OutOrStdout(), config.Get().Output.NoColor)
	w.Header("Vendors")

	table := w.NewTable("ID", "Name", "Currency", "Model", "Coverage", "SLA terms")
	for i := range vendors {
		v := &vendors[i]
		table.AddRow(v.ID, v.Name, currencyLabel(v.Currency), string(v.Model), coverageLabel(v.SLA), slaTerms(v.SLA))
	}
	table.Render()

	w.Println("")
	w.Success("%d vendors loaded from %s", len(vendors), catalogFile)
	return nil
}

func currencyLabel(c types.Currency) string {
	if c == "" {
		return "(scenario)"
	}
	return string(c)
}

func coverageLabel(s *types.SLA) string {
	if s == nil || s.Coverage == "" {
		return "-"
	}
	return string(s.Coverage)
}

func slaTerms(s *types.SLA) string {
	if s == nil {
		return "none"
	}
	var parts []string
	for _, sev := range types.Severities {
		if v, ok := s.ResponseMinutes[sev]; ok {
			parts = append(parts, string(sev)+" "+v.String()+"m")
		}
		if v, ok := s.ResolutionHours[sev]; ok {
			parts = append(parts, string(sev)+" fix "+v.String()+"h")
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}
