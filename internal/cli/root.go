// Package cli wires the vigil commands together.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vigil/internal/errors"
)

// Persistent flags available to every command.
var (
	configFlag string
)

// rootCmd is the base command. Running vigil with no subcommand starts
// the dashboard.
var rootCmd = &cobra.Command{
	Use:   "vigil",
	Short: "Terminal dashboard for homelab metrics",
	Long: `vigil is an interactive terminal dashboard that polls a
Prometheus-compatible backend and renders live node and service metrics
with tables, gauges, and trend graphs.

When the backend is unreachable, vigil falls back to synthetic data so
the dashboard stays alive, and reconnects automatically.

Examples:
  vigil                 start the dashboard
  vigil init            create a .vigil.yaml config
  vigil check           test backend connectivity`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashCommand(configFlag, dashThemeFlag, dashRefreshFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
}

// Execute runs the root command. Structured errors print with their
// suggestion; anything else prints as-is.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var vErr *errors.Error
		if errors.As(err, &vErr) {
			fmt.Fprintln(os.Stderr, vErr.Error())
		} else {
			fmt.Fprintf(os.Stderr, "✗ %v\n", err)
		}
		os.Exit(1)
	}
}
