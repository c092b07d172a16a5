package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// themeCmd reads or sets the persisted UI theme preference. Like the token,
// the preference is local client state; no session is needed.
var themeCmd = &cobra.Command{
	Use:       "theme [light|dark]",
	Short:     "Show or set the persisted theme preference",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"light", "dark"},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			theme := application.tokens.Theme()
			if theme == "" {
				theme = "light"
			}
			fmt.Println(theme)
			return nil
		}
		if err := application.tokens.SetTheme(args[0]); err != nil {
			return err
		}
		fmt.Printf("Theme set to %s.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
