// Cargo command for the harbor CLI.
package main

import "github.com/spf13/cobra"

var cargoCmd = &cobra.Command{
	Use:   "cargo",
	Short: "List refrigerated cargo and the minimum temperature each needs",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		newPrinter(cmd).Temperatures(cfg.TemperatureTable())
	},
}
