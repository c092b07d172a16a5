package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plantdesk/portalctl/internal/nav"
)

var plantsCmd = &cobra.Command{
	Use:   "plants",
	Short: "List plants or show one plant",
}

var plantsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all plants",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := application.requireView(cmd.Context(), nav.PathPlants); err != nil {
			return done(err)
		}
		plants, err := application.api.Plants(cmd.Context())
		if err != nil {
			return done(err)
		}
		for _, p := range plants {
			fmt.Printf("%s  %-12s %s (%s)\n", p.ID, p.Code, p.Name, p.Location)
		}
		return nil
	},
}

var plantsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one plant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := application.requireView(cmd.Context(), nav.PathPlants); err != nil {
			return done(err)
		}
		plant, err := application.api.Plant(cmd.Context(), args[0])
		if err != nil {
			return done(err)
		}
		fmt.Printf("ID:       %s\nName:     %s\nCode:     %s\nLocation: %s\n",
			plant.ID, plant.Name, plant.Code, plant.Location)
		return nil
	},
}

func init() {
	plantsCmd.AddCommand(plantsListCmd, plantsGetCmd)
	rootCmd.AddCommand(plantsCmd)
}
