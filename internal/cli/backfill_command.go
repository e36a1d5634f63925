package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"t2c/internal/config"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// BackfillCommand handles the backfill command
type BackfillCommand struct {
	app *App
	cfg *config.Config
	log zerolog.Logger
}

// NewBackfillCommand creates a new backfill command handler
func NewBackfillCommand(app *App, cfg *config.Config, log zerolog.Logger) *BackfillCommand {
	return &BackfillCommand{app: app, cfg: cfg, log: log}
}

// Execute imports the historical window and returns. from optionally names
// the first day as YYYY-MM-DD; when empty, the configured window length
// counted back from today is used.
func (c *BackfillCommand) Execute(ctx context.Context, from string) error {
	start := backfillStart(c.cfg, timeNow())
	if from != "" {
		parsed, err := time.ParseInLocation("2006-01-02", from, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --from date %q: expected YYYY-MM-DD", from)
		}
		start = parsed
	}

	return c.app.Backfiller.Run(ctx, start)
}
