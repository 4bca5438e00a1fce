// Package cmd - config command
package cmd

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"support-cost/internal/config"
	"support-cost/internal/errors"
)

// configCmd manages configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration, including environment overrides",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := json.MarshalIndent(config.Get(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		if err := config.Default().Save(path); err != nil {
			return errors.Wrapf(errors.TypeConfig, err, "failed to write config to %s", path)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
