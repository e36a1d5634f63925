package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"t2c/internal/timing"
)

// Backfiller walks a historical date range day by day, fetching the source
// records of each day and importing every one. It runs once at startup to
// catch up a fixed historical window.
//
// Unlike the poll driver, per-record errors are not isolated: a failure
// during backfill aborts the run, since startup-time data integrity is
// prioritized over availability.
type Backfiller struct {
	timing   timing.Service
	importer *Importer
	delay    time.Duration
	now      func() time.Time
	log      zerolog.Logger
}

// NewBackfiller creates a new backfill driver. delay is the pause between
// day fetches that bounds the request rate.
func NewBackfiller(src timing.Service, importer *Importer, delay time.Duration, log zerolog.Logger) *Backfiller {
	return &Backfiller{
		timing:   src,
		importer: importer,
		delay:    delay,
		now:      timeNow,
		log:      log,
	}
}

// Run walks every calendar day from start up to and including today, in
// increasing order, importing each day's records. Each day is visited
// exactly once.
func (b *Backfiller) Run(ctx context.Context, start time.Time) error {
	cursor := dayStart(start)
	today := dayStart(b.now())

	for {
		if err := b.runDay(ctx, cursor); err != nil {
			return err
		}

		if !cursor.Before(today) {
			break
		}
		cursor = cursor.AddDate(0, 0, 1)

		if err := sleepCtx(ctx, b.delay); err != nil {
			return err
		}
	}

	b.log.Info().Time("from", dayStart(start)).Time("to", today).Msg("backfill complete")
	return nil
}

// runDay fetches and imports one calendar day's records
func (b *Backfiller) runDay(ctx context.Context, day time.Time) error {
	b.log.Info().Str("day", day.Format("2006-01-02")).Msg("backfilling day")

	records, err := b.timing.CompletedBetween(ctx, day, dayEnd(day))
	if err != nil {
		return err
	}
	for _, record := range records {
		if _, err := b.importer.Import(ctx, record); err != nil {
			return err
		}
	}
	return nil
}
