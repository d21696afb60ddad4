package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/getwaylabs/getway/internal/journeys"
	"github.com/getwaylabs/getway/pkg/model"
)

func newJourneysCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journeys",
		Short: "Log and review transit journeys",
	}
	cmd.AddCommand(
		newJourneysListCmd(app),
		newJourneysLogCmd(app),
		newJourneysStatsCmd(app),
	)
	return cmd
}

func newJourneysListCmd(app *App) *cobra.Command {
	opts := model.DefaultListOptions()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show your logged journeys",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := app.Journeys.List(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				fmt.Println("No journeys logged yet.")
				return nil
			}
			for _, j := range items {
				fmt.Printf("%s  %s → %s by %s, %d min, %.1f kg CO2 saved (%s)\n",
					j.ID, j.Origin, j.Destination, j.Mode, j.DurationMin, j.CO2SavedKg, humanize.Time(j.LoggedAt))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", opts.Limit, "Journeys per page")
	cmd.Flags().IntVar(&opts.Offset, "offset", opts.Offset, "Page offset")
	return cmd
}

func newJourneysLogCmd(app *App) *cobra.Command {
	var in journeys.Input
	var mode string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a journey",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Mode = model.TransitMode(mode)
			j, err := app.Journeys.Log(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Printf("Logged %s: %.1f kg CO2 saved.\n", j.ID, j.CO2SavedKg)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Origin, "from", "", "Origin stop or station")
	cmd.Flags().StringVar(&in.Destination, "to", "", "Destination stop or station")
	cmd.Flags().StringVar(&mode, "mode", "bus", "Transit mode (bus, train, metro, bicycle, walk)")
	cmd.Flags().IntVar(&in.DurationMin, "minutes", 0, "Journey duration in minutes")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")
	cmd.MarkFlagRequired("minutes")
	return cmd
}

func newJourneysStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show your journey totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Journeys.Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("Journeys:  %d\n", st.TotalJourneys)
			fmt.Printf("Minutes:   %d\n", st.TotalMinutes)
			fmt.Printf("CO2 saved: %.1f kg\n", st.CO2SavedKg)
			return nil
		},
	}
}
