// Root command for the harbor CLI.
package main

import (
	"fmt"

	"github.com/mesh-intelligence/harbor/internal/config"
	"github.com/mesh-intelligence/harbor/internal/logging"
	"github.com/mesh-intelligence/harbor/internal/paths"
	"github.com/mesh-intelligence/harbor/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagNoColor   bool
	flagLogLevel  string
)

// Set by PersistentPreRunE for every subcommand.
var (
	cfg *config.Config
	log *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "harbor",
	Short:         "Harbor loads cargo containers onto ships",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := paths.ResolveConfigDir(flagConfigDir)
		if err != nil {
			return sysError(fmt.Errorf("resolve config dir: %w", err))
		}

		cfg, err = config.Load(configDir)
		if err != nil {
			return userError(err)
		}
		if flagLogLevel != "" {
			cfg.LogLevel = flagLogLevel
		}
		if flagNoColor {
			cfg.Color = false
		}

		log, err = logging.New(cfg.LogLevel, cfg.LogFormat)
		if err != nil {
			return userError(err)
		}
		log.Debug("config loaded", zap.String("dir", configDir), zap.String("level", cfg.LogLevel))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir, or $HARBOR_CONFIG_DIR)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable coloured output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(cargoCmd)
}

// resetFlags restores flag defaults so run can be called repeatedly.
func resetFlags() {
	flagConfigDir = ""
	flagNoColor = false
	flagLogLevel = ""
	cfg = nil
	log = nil
}

// newPrinter returns a report printer on the command's output.
func newPrinter(cmd *cobra.Command) *report.Printer {
	return report.New(cmd.OutOrStdout(), cfg.Color)
}
