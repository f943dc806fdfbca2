// Package cmd holds the coffeeshop command line.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{ //nolint:gochecknoglobals
	Use:   "coffeeshop",
	Short: "Coffee shop point-of-sale service",
	Long: `coffeeshop runs the point-of-sale API for menu, orders, payments,
tables, inventory and customers, and the kitchen board that follows orders
through their lifecycle.

Configuration is read from config/config.yaml and environment overrides.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
