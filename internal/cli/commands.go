package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"vigil/internal/errors"
)

// Command-specific flags
var (
	dashThemeFlag   string
	dashRefreshFlag string
	initForce       bool
	checkTimeout    string
)

// dashCmd starts the dashboard explicitly. Identical to running vigil
// with no arguments.
var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Start the metrics dashboard",
	Long: `Start the interactive terminal dashboard.

Polls the configured backend for node and service metrics. While the
backend is unreachable the dashboard runs on synthetic data and keeps
trying to reconnect.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  tab         Switch between node and service panels
  up/k down/j Move selection
  [ / ]       Previous / next tab
  space       Pin selection for the compare tab
  r           Toggle configured filters
  t / T       Cycle themes
  ?           Show help

Examples:
  vigil dash
  vigil dash --theme nord
  vigil dash --refresh 500ms`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashCommand(configFlag, dashThemeFlag, dashRefreshFlag)
	},
}

// initCmd creates a new .vigil.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .vigil.yaml configuration",
	Long: `Initialize a new vigil configuration file.

Creates a .vigil.yaml in the current directory, guiding you through
backend URL and node setup with interactive prompts.

Examples:
  vigil init
  vigil init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

// checkCmd tests backend connectivity
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Test backend connectivity",
	Long: `Probe the configured metrics backend and report the result.

Retries with exponential backoff, then reports how many series answered
the probe query.

Examples:
  vigil check
  vigil check --timeout 30s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		timeout := 15 * time.Second
		if checkTimeout != "" {
			parsed, err := time.ParseDuration(checkTimeout)
			if err != nil {
				return errors.WrapWithCode(err, errors.ErrConfig,
					fmt.Sprintf("Invalid timeout: %s", checkTimeout),
					"Use a valid duration like 10s, 30s, or 1m")
			}
			timeout = parsed
		}
		return checkCommand(configFlag, timeout)
	},
}

func init() {
	// dash command flags
	dashCmd.Flags().StringVar(&dashThemeFlag, "theme", "", "color theme (overrides config)")
	dashCmd.Flags().StringVar(&dashRefreshFlag, "refresh", "", "refresh rate (e.g., 250ms, 1s)")

	// the bare root command reuses the dash flags
	rootCmd.Flags().StringVar(&dashThemeFlag, "theme", "", "color theme (overrides config)")
	rootCmd.Flags().StringVar(&dashRefreshFlag, "refresh", "", "refresh rate (e.g., 250ms, 1s)")

	// init command flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	// check command flags
	checkCmd.Flags().StringVar(&checkTimeout, "timeout", "", "overall probe timeout (e.g., 15s)")

	// Register all commands
	rootCmd.AddCommand(dashCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(checkCmd)
}
