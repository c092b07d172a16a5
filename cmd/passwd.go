package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plantdesk/portalctl/internal/core/ports"
	"github.com/plantdesk/portalctl/internal/forms"
	"github.com/plantdesk/portalctl/internal/nav"
)

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change the current account's password",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := application.requireView(cmd.Context(), nav.PathSettings); err != nil {
			return done(err)
		}

		current := prompt("Current password: ")
		next := prompt("New password: ")
		confirm := prompt("Confirm new password: ")

		form := forms.ChangePasswordForm{
			CurrentPassword: current,
			NewPassword:     next,
			ConfirmPassword: confirm,
		}
		if err := forms.Validate(form); err != nil {
			return err
		}

		err := application.auth.ChangePassword(cmd.Context(), ports.ChangePasswordInput{
			CurrentPassword: current,
			NewPassword:     next,
			ConfirmPassword: confirm,
		})
		if err != nil {
			return done(err)
		}
		fmt.Println("Password changed.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(passwdCmd)
}
