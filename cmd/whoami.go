package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session's user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !application.auth.IsAuthenticated() {
			fmt.Println("Not signed in.")
			return nil
		}
		user, err := application.auth.LoadProfile(cmd.Context())
		if err != nil {
			return done(err)
		}
		if user == nil {
			fmt.Println("Session is no longer valid.")
			return nil
		}
		fmt.Printf("%s <%s>\n", user.FullName, user.Email)
		if user.PlantName != "" {
			fmt.Printf("Plant: %s\n", user.PlantName)
		}
		fmt.Printf("Roles: %v\n", user.Roles)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
