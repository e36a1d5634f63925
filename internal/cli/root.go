// Package cli implements the t2c command line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"t2c/internal/config"
	"t2c/internal/logging"
)

// defaultConfigFile is used when --config is not given and the file exists
const defaultConfigFile = "config.yaml"

// RootCommand represents the base command when called without any
// subcommands
type RootCommand struct {
	cmd *cobra.Command
	cfg *config.Config
	log zerolog.Logger

	// newApp builds the wired application; tests replace it to inject
	// fakes
	newApp func(cfg *config.Config, log zerolog.Logger) *App
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand() *RootCommand {
	root := &RootCommand{
		newApp: NewApp,
	}

	root.cmd = &cobra.Command{
		Use:   "t2c",
		Short: "One-way Timing to Clockify time entry sync",
		Long: `t2c mirrors time-tracking records from Timing into Clockify.

Each source record is replayed as an equivalent hierarchy at the destination
(workspace, client, project, task, time entry); missing entities are created
on demand and records that already exist are skipped.

COMMANDS:
  t2c run              # backfill the configured window, then poll forever
  t2c backfill         # historical catch-up only
  t2c once             # a single poll cycle, for cron or debugging

CONFIGURATION:
  Values come from config.yaml, overridden by T2C_* environment variables,
  overridden by flags.

    T2C_TIMING_URL            Source API base URL
    T2C_TIMING_TOKEN          Source API bearer token
    T2C_CLOCKIFY_URL          Destination API base URL
    T2C_CLOCKIFY_TOKEN        Destination API key
    T2C_CLOCKIFY_WORKSPACE    Destination workspace name
    T2C_TELEGRAM_TOKEN        Notification bot token (optional)
    T2C_TELEGRAM_CHAT_ID      Notification chat (required with a token)
    T2C_REFRESH_INTERVAL      Pause between poll cycles (default: 300s)
    T2C_BACKFILL_DAYS         Historical window length (default: 30)
    T2C_POLL_WINDOW_DAYS      Trailing poll window (default: 7)
    T2C_REQUEST_DELAY         Pause between requests (default: 1s)
    T2C_HTTP_TIMEOUT          Outbound request timeout (default: 30s)
    T2C_LOG_LEVEL             trace|debug|info|warn|error (default: info)
    T2C_LOG_FORMAT            console|json (default: console)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd)
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// ExecuteContext runs the root command with the given context
func (r *RootCommand) ExecuteContext(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// setup loads configuration, applies flag overrides, and builds the logger
func (r *RootCommand) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()

	path, err := flags.GetString("config")
	if err != nil {
		return err
	}
	// The default config file is optional; an explicitly requested one
	// is not
	if !flags.Changed("config") {
		if _, statErr := os.Stat(path); statErr != nil {
			path = ""
		}
	}

	cfg, err := config.NewLoader().Load(path)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Log.Format, _ = flags.GetString("log-format")
	}
	if flags.Changed("backfill-days") {
		cfg.Sync.BackfillDays, _ = flags.GetInt("backfill-days")
	}
	if flags.Changed("refresh-interval") {
		cfg.Sync.RefreshInterval, _ = flags.GetDuration("refresh-interval")
	}
	if flags.Changed("request-delay") {
		cfg.Sync.RequestDelay, _ = flags.GetDuration("request-delay")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	r.cfg = cfg
	r.log = logging.NewLogger(&logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	return nil
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", defaultConfigFile, "Path to the YAML configuration file")
	flags.String("log-level", "", "Log level (overrides T2C_LOG_LEVEL)")
	flags.String("log-format", "", "Log format, console or json (overrides T2C_LOG_FORMAT)")
	flags.Int("backfill-days", 0, "Historical window length in days (overrides T2C_BACKFILL_DAYS)")
	flags.Duration("refresh-interval", 0, "Pause between poll cycles (overrides T2C_REFRESH_INTERVAL)")
	flags.Duration("request-delay", 0, "Pause between requests (overrides T2C_REQUEST_DELAY)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Run command: the production mode, backfill then poll forever
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Backfill the configured window, then poll forever",
		Long:  "Catch up the configured historical window once, then continuously mirror newly completed records until the process is terminated.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := r.newApp(r.cfg, r.log)
			handler := NewRunCommand(app, r.cfg, r.log)
			return handler.Execute(cmd.Context())
		},
	}

	// Backfill command: historical catch-up only
	backfillCmd := &cobra.Command{
		Use:   "backfill",
		Short: "Import the historical window and exit",
		Long:  "Walk the historical date range day by day, importing every record, then exit. A failure stops the walk.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := cmd.Flags().GetString("from")
			if err != nil {
				return err
			}
			app := r.newApp(r.cfg, r.log)
			handler := NewBackfillCommand(app, r.cfg, r.log)
			return handler.Execute(cmd.Context(), from)
		},
	}
	backfillCmd.Flags().String("from", "", "First day to import (YYYY-MM-DD, default: today minus backfill-days)")

	// Once command: one poll cycle
	onceCmd := &cobra.Command{
		Use:   "once",
		Short: "Run a single poll cycle and exit",
		Long:  "Fetch the trailing poll window once, import every completed record, and exit. Useful under cron or for debugging.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := r.newApp(r.cfg, r.log)
			return app.Poller.RunOnce(cmd.Context())
		},
	}

	r.cmd.AddCommand(runCmd, backfillCmd, onceCmd)
}

// backfillStart computes the first backfill day from configuration
func backfillStart(cfg *config.Config, now time.Time) time.Time {
	return now.AddDate(0, 0, -cfg.Sync.BackfillDays)
}
