package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutAll bool

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session (or every session with --all)",
	RunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if logoutAll {
			err = application.auth.LogoutAllDevices(cmd.Context())
		} else {
			err = application.auth.Logout(cmd.Context())
		}
		if err != nil {
			return done(err)
		}
		fmt.Println("Signed out.")
		return nil
	},
}

func init() {
	logoutCmd.Flags().BoolVar(&logoutAll, "all", false, "revoke every session on every device")
	rootCmd.AddCommand(logoutCmd)
}
