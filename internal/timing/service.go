// Package timing implements the client for the source time-tracking service.
package timing

import (
	"context"
	"time"

	"t2c/internal/domain"
)

// Service defines the operations the sync engine needs from the source
// time-tracking API.
type Service interface {
	// CompletedBetween fetches the completed records whose start instant
	// falls within [min, max].
	CompletedBetween(ctx context.Context, min, max time.Time) ([]domain.SourceRecord, error)

	// CompletedSince fetches the completed records whose start instant is
	// at or after min.
	CompletedSince(ctx context.Context, min time.Time) ([]domain.SourceRecord, error)
}
