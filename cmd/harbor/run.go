// Run command for the harbor CLI.
package main

import (
	"github.com/mesh-intelligence/harbor/internal/manifest"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run <manifest.yaml>",
	Short: "Run a fleet manifest",
	Long: `Run builds the ships and containers a manifest describes and executes
its steps in order. Steps may declare the result they expect, for example
"expect: overfill". The command exits 1 when any step ends otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := manifest.Load(args[0])
		if err != nil {
			return userError(err)
		}
		log.Debug("manifest loaded", zap.String("path", args[0]), zap.Int("steps", len(m.Steps)))
		return execute(cmd, m)
	},
}
