// Init command for the harbor CLI.
package main

import (
	"fmt"

	"github.com/mesh-intelligence/harbor/internal/config"
	"github.com/mesh-intelligence/harbor/internal/paths"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config.yaml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return sysError(err)
		}
		path, written, err := config.WriteDefault(configDir)
		if err != nil {
			return sysError(err)
		}
		if written {
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "kept", path)
		}
		return nil
	},
}
