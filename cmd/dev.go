package cmd

import (
	"github.com/spf13/cobra"

	"github.com/plantdesk/portalctl/internal/devserver"
)

var devCmd = &cobra.Command{
	Use:   "dev",
	Short: "Run the bundled in-memory portal backend",
	Long: `Start a local stand-in for the portal API with seeded plants, admin
accounts and submissions. Data lives in memory only; restarting the
server resets everything. Sign in with admin@plantdesk.dev / admin123!`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := devserver.NewStore()
		if err := store.Seed(); err != nil {
			return err
		}

		e := devserver.NewRouter(store, devserver.Options{
			JWTSecret: application.cfg.Dev.JWTSecret,
			TokenTTL:  application.cfg.Dev.TokenTTL,
		}, application.log)

		application.log.Info().Str("port", application.cfg.Dev.Port).Msg("dev server listening")
		return e.Start(":" + application.cfg.Dev.Port)
	},
}

func init() {
	rootCmd.AddCommand(devCmd)
}
