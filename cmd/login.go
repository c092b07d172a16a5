package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plantdesk/portalctl/internal/core/ports"
	"github.com/plantdesk/portalctl/internal/forms"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the portal and persist the session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		email := loginEmail
		if email == "" {
			email = prompt("Email: ")
		}
		password := loginPassword
		if password == "" {
			password = prompt("Password: ")
		}

		if err := forms.Validate(forms.LoginForm{Email: email, Password: password}); err != nil {
			return err
		}

		result, err := application.auth.Login(cmd.Context(), ports.Credentials{
			Email:    email,
			Password: password,
		})
		if err != nil {
			return done(err)
		}

		user := application.session.Current()
		if user != nil {
			fmt.Printf("Signed in as %s (%s)\n", user.FullName, user.Email)
		}
		if result.RequirePasswordChange {
			fmt.Println("Your password must be changed. Run: portalctl passwd")
		}
		return nil
	},
}

func prompt(label string) string {
	fmt.Fprint(os.Stderr, label)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.TrimSpace(line)
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (prompted when omitted)")
	rootCmd.AddCommand(loginCmd)
}
