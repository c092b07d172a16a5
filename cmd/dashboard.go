package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/plantdesk/portalctl/internal/analytics"
	"github.com/plantdesk/portalctl/internal/chart"
	"github.com/plantdesk/portalctl/internal/nav"
)

var dashboardOutDir string

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the weekly submission summary and render its charts",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := application.requireView(cmd.Context(), nav.PathDashboard); err != nil {
			return done(err)
		}

		subs, err := application.api.Submissions(cmd.Context())
		if err != nil {
			return done(err)
		}

		created := make([]time.Time, 0, len(subs))
		for _, s := range subs {
			created = append(created, s.CreatedAt)
		}
		report := analytics.WeeklySnapshot(created, time.Now().UTC())

		fmt.Printf("Submissions this week: %d\n", report.TotalThisWeek)
		fmt.Printf("Submissions last week: %d\n", report.LastWeekTotal)
		fmt.Printf("Week-over-week change: %+d%%\n", report.ChangePercent)
		fmt.Println()
		for day, count := range report.Histogram {
			fmt.Printf("  %-3s %s %d\n", time.Weekday(day).String()[:3], sparkline(count, report.MaxCount), count)
		}

		if dashboardOutDir != "" {
			if err := os.MkdirAll(dashboardOutDir, 0o755); err != nil {
				return err
			}
			barPath := filepath.Join(dashboardOutDir, "weekly-bar.svg")
			linePath := filepath.Join(dashboardOutDir, "weekly-line.svg")
			if err := os.WriteFile(barPath, []byte(chart.RenderBarSVG(report)), 0o644); err != nil {
				return err
			}
			if err := os.WriteFile(linePath, []byte(chart.RenderLineSVG(report)), 0o644); err != nil {
				return err
			}
			fmt.Printf("\nCharts written to %s and %s\n", barPath, linePath)
		}
		return nil
	},
}

// sparkline draws a count as a proportional run of block characters, with
// the same scaling the bar chart uses.
func sparkline(count, maxCount int) string {
	const width = 20
	if count <= 0 {
		return ""
	}
	n := count * width / maxCount
	if n < 1 {
		n = 1
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = '█'
	}
	return string(out)
}

func init() {
	dashboardCmd.Flags().StringVar(&dashboardOutDir, "out-dir", "", "directory to write the SVG charts into")
	rootCmd.AddCommand(dashboardCmd)
}
