package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newAlertsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "alerts",
		Short: "Show current service alerts (scientists and owners)",
		RunE: func(cmd *cobra.Command, args []string) error {
			alerts, err := app.Analytics.Alerts(cmd.Context())
			if err != nil {
				return err
			}
			if len(alerts) == 0 {
				fmt.Println("No active alerts.")
				return nil
			}
			for _, a := range alerts {
				fmt.Printf("[%s] %s line: %s (%s)\n", a.Severity, a.Line, a.Message, humanize.Time(a.CreatedAt))
			}
			return nil
		},
	}
}

func newRidershipCmd(app *App) *cobra.Command {
	var line string

	cmd := &cobra.Command{
		Use:   "ridership",
		Short: "Show daily rider counts (scientists and owners)",
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := app.Analytics.Ridership(cmd.Context(), line)
			if err != nil {
				return err
			}
			if len(points) == 0 {
				fmt.Println("No ridership data.")
				return nil
			}
			for _, p := range points {
				fmt.Printf("%s  %-6s %8d riders\n", p.Date, p.Line, p.Riders)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&line, "line", "", "Filter to one transit line")
	return cmd
}
