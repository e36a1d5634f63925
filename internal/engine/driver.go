package engine

import (
	"context"
	"time"
)

// timeNow can be replaced in tests
var timeNow = time.Now

// sleepCtx waits for the given duration or until the context is done,
// whichever comes first
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// dayStart returns midnight of the calendar day containing t, in t's
// location
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayEnd returns the last second of the calendar day containing t
func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
