// Demo command for the harbor CLI.
package main

import (
	"github.com/mesh-intelligence/harbor/internal/manifest"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in reference scenario",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return execute(cmd, manifest.Demo())
	},
}
