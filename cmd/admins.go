package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plantdesk/portalctl/internal/core/domain"
	"github.com/plantdesk/portalctl/internal/core/ports"
	"github.com/plantdesk/portalctl/internal/forms"
	"github.com/plantdesk/portalctl/internal/nav"
)

var adminsCmd = &cobra.Command{
	Use:   "admins",
	Short: "Manage admin accounts (super admin only)",
}

var adminsPlantID string

var adminsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List admin accounts, optionally scoped to a plant",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := application.requireView(cmd.Context(), nav.PathAdmins); err != nil {
			return done(err)
		}

		var (
			admins []domain.User
			err    error
		)
		if adminsPlantID != "" {
			admins, err = application.auth.GetAdminsByPlant(cmd.Context(), adminsPlantID)
		} else {
			admins, err = application.auth.GetAllAdmins(cmd.Context())
		}
		if err != nil {
			return done(err)
		}
		for _, a := range admins {
			role := domain.RoleRegularAdmin
			if a.IsSuperAdmin {
				role = domain.RoleSuperAdmin
			}
			fmt.Printf("%s  %-28s %-12s %s\n", a.ID, a.Email, role, a.PlantName)
		}
		return nil
	},
}

var registerInput ports.RegisterAdminInput

var adminsRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := application.requireView(cmd.Context(), nav.PathAdmins); err != nil {
			return done(err)
		}

		form := forms.RegisterAdminForm{
			FullName:     registerInput.FullName,
			TEID:         registerInput.TEID,
			Email:        registerInput.Email,
			Password:     registerInput.Password,
			PlantID:      registerInput.PlantID,
			IsSuperAdmin: registerInput.IsSuperAdmin,
		}
		if err := forms.Validate(form); err != nil {
			return err
		}

		user, err := application.auth.RegisterAdmin(cmd.Context(), registerInput)
		if err != nil {
			return done(err)
		}
		fmt.Printf("Created admin %s <%s>\n", user.FullName, user.Email)
		if registerInput.Password == "" {
			fmt.Println("A generated password was issued; the user must change it at first sign-in.")
		}
		return nil
	},
}

var adminsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an admin account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := application.requireView(cmd.Context(), nav.PathAdmins); err != nil {
			return done(err)
		}
		if err := application.auth.DeleteAdmin(cmd.Context(), args[0]); err != nil {
			return done(err)
		}
		fmt.Println("Admin deleted.")
		return nil
	},
}

var adminsResetCmd = &cobra.Command{
	Use:   "reset-password <id>",
	Short: "Reset an admin's password to a generated one",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := application.requireView(cmd.Context(), nav.PathAdmins); err != nil {
			return done(err)
		}
		result, err := application.auth.ResetPassword(cmd.Context(), args[0])
		if err != nil {
			return done(err)
		}
		fmt.Printf("New password: %s\n", result.NewPassword)
		fmt.Println("All of the user's sessions have been revoked.")
		return nil
	},
}

func init() {
	adminsListCmd.Flags().StringVar(&adminsPlantID, "plant", "", "restrict the list to one plant")

	adminsRegisterCmd.Flags().StringVar(&registerInput.FullName, "name", "", "full name")
	adminsRegisterCmd.Flags().StringVar(&registerInput.TEID, "teid", "", "employee id")
	adminsRegisterCmd.Flags().StringVar(&registerInput.Email, "email", "", "account email")
	adminsRegisterCmd.Flags().StringVar(&registerInput.Password, "password", "", "initial password (generated when omitted)")
	adminsRegisterCmd.Flags().StringVar(&registerInput.PlantID, "plant", "", "plant the admin belongs to")
	adminsRegisterCmd.Flags().BoolVar(&registerInput.IsSuperAdmin, "super", false, "grant the super-admin role")

	adminsCmd.AddCommand(adminsListCmd, adminsRegisterCmd, adminsDeleteCmd, adminsResetCmd)
	rootCmd.AddCommand(adminsCmd)
}
