package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"t2c/internal/config"
)

// RunCommand handles the run command
type RunCommand struct {
	app *App
	cfg *config.Config
	log zerolog.Logger
}

// NewRunCommand creates a new run command handler
func NewRunCommand(app *App, cfg *config.Config, log zerolog.Logger) *RunCommand {
	return &RunCommand{app: app, cfg: cfg, log: log}
}

// Execute backfills the configured historical window, then polls until the
// context is canceled
func (c *RunCommand) Execute(ctx context.Context) error {
	start := backfillStart(c.cfg, timeNow())
	c.log.Info().
		Int("backfill_days", c.cfg.Sync.BackfillDays).
		Str("workspace", c.cfg.Clockify.WorkspaceName).
		Msg("starting sync")

	if err := c.app.Backfiller.Run(ctx, start); err != nil {
		return fmt.Errorf("backfill failed: %w", err)
	}

	return c.app.Poller.Run(ctx)
}
