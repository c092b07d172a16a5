package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plantdesk/portalctl/internal/nav"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List the active sessions for this account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := application.requireView(cmd.Context(), nav.PathSettings); err != nil {
			return done(err)
		}

		sessions, err := application.auth.Sessions(cmd.Context())
		if err != nil {
			return done(err)
		}
		if len(sessions) == 0 {
			fmt.Println("No active sessions.")
			return nil
		}
		for _, s := range sessions {
			marker := " "
			if s.Current {
				marker = "*"
			}
			fmt.Printf("%s %s  created %s  expires %s  %s\n",
				marker, s.ID, s.CreatedAt.Format("2006-01-02 15:04"), s.ExpiresAt.Format("2006-01-02 15:04"), s.Device)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}
