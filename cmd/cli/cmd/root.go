// Package cmd provides the CLI commands for support-cost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"support-cost/internal/config"
	"support-cost/internal/logging"
)

// Version is set at build time
var Version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "support-cost",
	Short: "Compare premium support vendors by cost and SLA fit",
	Long: `support-cost estimates what each premium support vendor would charge
for a given support scenario and checks whether its service levels meet
the scenario's requirements.

Examples:
  support-cost compare --vendors vendors.hcl --scenario growth.yaml
  support-cost compare --vendors vendors.json --scenario a.json --scenario b.json --format markdown
  support-cost compare --vendors vendors.yaml --scenario s.yaml --format xlsx --output report.xlsx
  support-cost vendors --vendors vendors.hcl`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.support-cost/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(vendorsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	logging.Debug("configuration loaded", zap.String("path", path))
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "support-cost version %s\n", Version)
	},
}
