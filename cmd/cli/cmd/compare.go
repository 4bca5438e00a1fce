// Package cmd - compare command
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"support-cost/adapters/input"
	"support-cost/core/engine"
	"support-cost/core/output"
	"support-cost/core/types"
	"support-cost/internal/config"
	"support-cost/internal/logging"
)

var (
	vendorsFile     string
	scenarioFiles   []string
	outputFormat    string
	outputPath      string
	strictCurrency  bool
	showNotes       bool
	showAssumptions bool
	noColor         bool
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare vendors for one or more scenarios",
	Long: `Price every vendor in a catalog against each scenario, check SLA fit,
and print the vendors cheapest first.

Catalogs and scenarios may be JSON, YAML or HCL. A file may hold a single
entry or a list. Each --scenario file produces its own comparison.

Examples:
  support-cost compare --vendors vendors.hcl --scenario growth.yaml
  support-cost compare --vendors vendors.json --scenario s.json --format json
  support-cost compare --vendors vendors.json --scenario s.json --strict-currency`,
	Args: cobra.NoArgs,
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&vendorsFile, "vendors", "", "vendor catalog file (.json, .yaml, .yml, .hcl)")
	compareCmd.Flags().StringArrayVarP(&scenarioFiles, "scenario", "s", nil, "scenario file; repeat for several")
	compareCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format ("+formatNames()+")")
	compareCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the report to a file instead of stdout")
	compareCmd.Flags().BoolVar(&strictCurrency, "strict-currency", false, "fail a vendor when an exchange rate is missing")
	compareCmd.Flags().BoolVar(&showNotes, "notes", false, "include vendor notes")
	compareCmd.Flags().BoolVar(&showAssumptions, "assumptions", false, "include projected volumes and coverage multipliers")
	compareCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	_ = compareCmd.MarkFlagRequired("vendors")
	_ = compareCmd.MarkFlagRequired("scenario")
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	applyFlagOverrides(cmd, cfg)

	loader := input.NewLoader(
		input.WithLogger(logging.Logger),
		input.WithDefaultCurrency(cfg.Engine.DefaultCurrency),
	)

	vendors, err := loader.LoadVendors(vendorsFile)
	if err != nil {
		return err
	}

	var scenarios []types.Scenario
	for _, path := range scenarioFiles {
		loaded, err := loader.LoadScenarios(path)
		if err != nil {
			return err
		}
		scenarios = append(scenarios, loaded...)
	}

	logging.Info("comparing vendors",
		zap.Int("vendors", len(vendors)),
		zap.Int("scenarios", len(scenarios)),
		zap.Bool("strict_currency", cfg.Engine.StrictCurrency),
	)

	eng := engine.New(
		engine.WithLogger(logging.Logger),
		engine.WithConfig(engine.Config{StrictCurrency: cfg.Engine.StrictCurrency}),
	)
	comparisons := eng.CompareAll(vendors, scenarios)

	registry := output.DefaultRegistry(output.Options{
		ShowNotes:       cfg.Output.ShowNotes,
		ShowAssumptions: cfg.Output.ShowAssumptions,
		NoColor:         cfg.Output.NoColor || outputPath != "",
	})
	formatter, err := registry.Get(output.Format(cfg.Output.DefaultFormat))
	if err != nil {
		return err
	}
	if formatter.Format() == output.FormatXLSX && outputPath == "" {
		return fmt.Errorf("xlsx output requires --output")
	}

	if err := writeReport(cmd.OutOrStdout(), formatter, comparisons); err != nil {
		return err
	}

	invalid := 0
	for _, c := range comparisons {
		if !c.Validation.Valid {
			invalid++
		}
	}
	if invalid > 0 {
		logging.Warn("comparisons with validation errors", zap.Int("invalid", invalid), zap.Int("total", len(comparisons)))
		return fmt.Errorf("%d of %d comparisons reported validation errors", invalid, len(comparisons))
	}
	return nil
}

func formatNames() string {
	formats := output.DefaultRegistry(output.Options{}).Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// applyFlagOverrides lets explicitly set flags win over file and env config
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.DefaultFormat = outputFormat
	}
	if flags.Changed("strict-currency") {
		cfg.Engine.StrictCurrency = strictCurrency
	}
	if flags.Changed("notes") {
		cfg.Output.ShowNotes = showNotes
	}
	if flags.Changed("assumptions") {
		cfg.Output.ShowAssumptions = showAssumptions
	}
	if flags.Changed("no-color") {
		cfg.Output.NoColor = noColor
	}
}

func writeReport(stdout io.Writer, formatter output.Formatter, comparisons []types.Comparison) error {
	if outputPath == "" {
		return formatter.Render(stdout, comparisons)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := formatter.Render(f, comparisons); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	logging.Info("report written", zap.String("path", outputPath), zap.String("format", string(formatter.Format())))
	return nil
}
