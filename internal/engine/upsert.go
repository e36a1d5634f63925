package engine

import (
	"context"
	"time"

	"t2c/internal/clockify"
	"t2c/internal/domain"
)

// entryTimeLayout is UTC second precision, the destination's wire format
const entryTimeLayout = "2006-01-02T15:04:05Z"

// Upserter writes a source record's time entry to the destination unless an
// exactly matching entry already exists.
type Upserter struct {
	api clockify.API
}

// NewUpserter creates a new time entry upserter
func NewUpserter(api clockify.API) *Upserter {
	return &Upserter{api: api}
}

// Upsert checks the destination for a time entry matching the record's start
// and end instants exactly (second precision, UTC) and creates one when
// absent. It returns whether an entry was created and its identifier.
//
// Matching never consults description text, and partial matches are left
// alone: a record whose end time was edited at the source after the first
// import is re-created as a second entry, not updated. That is a documented
// limitation of the exact-match contract, not a bug to silently fix.
func (u *Upserter) Upsert(ctx context.Context, chain domain.EntityChain, record domain.SourceRecord) (bool, string, error) {
	start := record.Start.UTC().Truncate(time.Second).Format(entryTimeLayout)
	end := record.End.UTC().Truncate(time.Second).Format(entryTimeLayout)

	// The listing filters server-side on start >= the record's start;
	// the exact match on both instants happens here.
	entries, err := u.api.ListTimeEntries(ctx, chain.WorkspaceID, chain.UserID, clockify.TimeEntryQuery{
		ProjectID: chain.ProjectID,
		TaskID:    chain.TaskID,
		Start:     start,
	})
	if err != nil {
		return false, "", err
	}
	for _, entry := range entries {
		if entry.TimeInterval.Start == start && entry.TimeInterval.End == end {
			return false, entry.ID, nil
		}
	}

	created, err := u.api.CreateTimeEntry(ctx, chain.WorkspaceID, clockify.CreateTimeEntryRequest{
		Start:       start,
		End:         end,
		Description: record.Description(),
		Billable:    "true",
		ProjectID:   chain.ProjectID,
		TaskID:      chain.TaskID,
	})
	if err != nil {
		return false, "", err
	}
	return true, created.ID, nil
}
