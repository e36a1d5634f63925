package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"t2c/internal/notify"
	"t2c/internal/timing"
)

// maxBackoffFactor caps the cycle backoff at this multiple of the refresh
// interval
const maxBackoffFactor = 8

// Poller is the continuous live-sync loop. Each cycle fetches the completed
// source records of a sliding trailing window and imports every one that is
// not currently running.
//
// A cycle's failure is caught at the cycle boundary, reported via the
// notification sink, and logged; the loop then continues. A single failing
// record or a down destination must not terminate the process, so ongoing
// availability is prioritized over any single failed cycle.
type Poller struct {
	timing   timing.Service
	importer *Importer
	notifier notify.Notifier
	refresh  time.Duration
	window   time.Duration
	delay    time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

// NewPoller creates a new poll driver. window is the trailing fetch window,
// refresh the pause between cycles, and delay the pause between records
// within a cycle.
func NewPoller(src timing.Service, importer *Importer, notifier notify.Notifier, refresh, window, delay time.Duration, log zerolog.Logger) *Poller {
	return &Poller{
		timing:   src,
		importer: importer,
		notifier: notifier,
		refresh:  refresh,
		window:   window,
		delay:    delay,
		now:      timeNow,
		log:      log,
	}
}

// Run polls until the context is done. Consecutive cycle failures widen the
// inter-cycle pause with bounded exponential backoff; one success resets it.
func (p *Poller) Run(ctx context.Context) error {
	failures := 0
	for {
		if err := p.RunOnce(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			failures++
			p.reportFailure(ctx, err, failures)
		} else {
			failures = 0
		}

		if err := sleepCtx(ctx, p.backoff(failures)); err != nil {
			return err
		}
	}
}

// RunOnce executes a single poll cycle
func (p *Poller) RunOnce(ctx context.Context) error {
	since := p.now().Add(-p.window)
	p.log.Debug().Time("since", since).Msg("polling for completed records")

	records, err := p.timing.CompletedSince(ctx, since)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		p.log.Debug().Msg("no new records")
		return nil
	}

	for _, record := range records {
		// A record still running has no final end instant yet; it will
		// be picked up by a later cycle once completed
		if record.IsRunning {
			continue
		}
		if _, err := p.importer.Import(ctx, record); err != nil {
			return err
		}
		if err := sleepCtx(ctx, p.delay); err != nil {
			return err
		}
	}
	return nil
}

// reportFailure notifies the sink and logs one failed cycle
func (p *Poller) reportFailure(ctx context.Context, err error, failures int) {
	p.log.Error().Err(err).Int("consecutive_failures", failures).Msg("poll cycle failed")
	if notifyErr := p.notifier.Notify(ctx, fmt.Sprintf("T2c error: %v", err)); notifyErr != nil {
		p.log.Warn().Err(notifyErr).Msg("failed to deliver failure notification")
	}
}

// backoff returns the inter-cycle pause after the given number of
// consecutive failures
func (p *Poller) backoff(failures int) time.Duration {
	if failures <= 1 {
		return p.refresh
	}
	// Once the cap is reached the shift is never evaluated; an unbounded
	// shift would overflow on a long outage and zero out the pause
	if failures >= 5 {
		return p.refresh * maxBackoffFactor
	}
	return p.refresh * time.Duration(1<<(failures-1))
}
