package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/plantdesk/portalctl/internal/core/domain"
	"github.com/plantdesk/portalctl/internal/core/ports"
	"github.com/plantdesk/portalctl/internal/nav"
)

var (
	exportFormat  string
	exportPlantID string
	exportOut     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download submissions as a spreadsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := application.requireView(cmd.Context(), nav.PathSubmissions); err != nil {
			return done(err)
		}

		var format domain.ExportFormat
		switch exportFormat {
		case "xlsx":
			format = domain.ExportXLSX
		case "csv":
			format = domain.ExportCSV
		default:
			return fmt.Errorf("unknown format %q (want csv or xlsx)", exportFormat)
		}

		result, err := application.api.Export(cmd.Context(), ports.ExportInput{
			Format:  format,
			PlantID: exportPlantID,
		})
		if err != nil {
			return done(err)
		}

		out := exportOut
		if out == "" {
			out = result.Filename
		}
		if dir := filepath.Dir(out); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		if err := os.WriteFile(out, result.Data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Printf("Wrote %s (%d bytes)\n", out, len(result.Data))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "spreadsheet format: csv or xlsx")
	exportCmd.Flags().StringVar(&exportPlantID, "plant", "", "restrict the export to one plant")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (defaults to the server-suggested name)")
	rootCmd.AddCommand(exportCmd)
}
