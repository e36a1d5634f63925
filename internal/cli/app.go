package cli

import (
	"time"

	"github.com/rs/zerolog"

	"t2c/internal/clockify"
	"t2c/internal/config"
	"t2c/internal/engine"
	"t2c/internal/notify"
	"t2c/internal/timing"
)

// App wires the sync engine together from configuration: the two API
// clients, the notification sink, the identifier cache, and the drivers.
type App struct {
	Timing     timing.Service
	Clockify   clockify.API
	Notifier   notify.Notifier
	Cache      *engine.Cache
	Importer   *engine.Importer
	Backfiller *engine.Backfiller
	Poller     *engine.Poller
}

// NewApp creates a fully wired application from configuration
func NewApp(cfg *config.Config, log zerolog.Logger) *App {
	timingService := timing.NewClient(cfg.Timing.URL, cfg.Timing.Token, cfg.HTTP.Timeout)
	clockifyAPI := clockify.New(cfg.Clockify.URL, cfg.Clockify.Token, cfg.HTTP.Timeout)
	notifier := notify.New(cfg.Telegram, cfg.HTTP.Timeout)

	cache := engine.NewCache()
	resolver := engine.NewResolver(clockifyAPI, cache)
	upserter := engine.NewUpserter(clockifyAPI)
	importer := engine.NewImporter(resolver, upserter, notifier, cfg.Clockify.WorkspaceName, log)

	backfiller := engine.NewBackfiller(timingService, importer, cfg.Sync.RequestDelay, log)
	poller := engine.NewPoller(
		timingService,
		importer,
		notifier,
		cfg.Sync.RefreshInterval,
		pollWindow(cfg),
		cfg.Sync.RequestDelay,
		log,
	)

	return &App{
		Timing:     timingService,
		Clockify:   clockifyAPI,
		Notifier:   notifier,
		Cache:      cache,
		Importer:   importer,
		Backfiller: backfiller,
		Poller:     poller,
	}
}

// pollWindow converts the configured trailing window length to a duration
func pollWindow(cfg *config.Config) time.Duration {
	return time.Duration(cfg.Sync.PollWindowDays) * 24 * time.Hour
}
