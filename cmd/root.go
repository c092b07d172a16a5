// Package cmd wires the portalctl command tree. Every subcommand talks to
// the portal backend through the shared app wiring built in PersistentPreRun.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/plantdesk/portalctl/internal/infrastructure/config"
	"github.com/plantdesk/portalctl/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "portalctl",
	Short: "Admin client for the PlantDesk document-submission portal",
	Long: `portalctl is the terminal client for the PlantDesk portal: sign in,
browse submissions and plants, manage admin users, export spreadsheets,
and render the weekly dashboard charts.

Configuration comes from environment variables (PORTAL_API_URL and
friends); a .env file in the working directory is loaded when present.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Missing .env is fine; explicit env vars win either way.
		_ = godotenv.Load()

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

		application, err = newApp(cfg, log)
		return err
	},
}

// application is the shared wiring for the lifetime of one invocation.
var application *app

// Execute runs the command tree and exits non-zero on failure. Errors that
// the request pipeline already reported surface here as nil, so the user
// never sees the same failure twice.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
