// Package main is the entry point for the support-cost CLI.
package main

import (
	"os"

	"support-cost/cmd/cli/cmd"
	"support-cost/internal/logging"
)

func main() {
	err := cmd.Execute()
	logging.Sync()
	if err != nil {
		os.Exit(1)
	}
}
