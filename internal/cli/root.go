package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/getwaylabs/getway/internal/config"
	"github.com/getwaylabs/getway/internal/logging"
)

// NewRootCmd creates the root cobra command for the getway CLI.
func NewRootCmd() *cobra.Command {
	app := &App{}

	var (
		flagServer    string
		flagTimeout   time.Duration
		flagDB        string
		flagDebug     bool
		flagLogLevel  string
		flagLogFormat string
	)

	root := &cobra.Command{
		Use:   "getway",
		Short: "GetWay transit logging and analytics client",
		Long:  "GetWay logs transit journeys, shares them on the community feed, and serves the Scientist analytics views.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("server") {
				cfg.BaseURL = flagServer
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Timeout = flagTimeout
			}
			if cmd.Flags().Changed("db") {
				cfg.DBPath = flagDB
			}
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger := logging.New(logging.Options{Level: flagLogLevel, Format: flagLogFormat})
			return app.init(cfg, logger)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.Close()
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagServer, "server", "", "GetWay server URL (or GETWAY_API_URL env)")
	root.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "Per-request timeout (or GETWAY_TIMEOUT env)")
	root.PersistentFlags().StringVar(&flagDB, "db", "", "Session database path (or GETWAY_DB env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newProfileCmd(app),
		newPostsCmd(app),
		newJourneysCmd(app),
		newApproveCmd(app),
		newAlertsCmd(app),
		newRidershipCmd(app),
	)

	return root
}
