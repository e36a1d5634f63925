package domain

import (
	"time"
)

// DefaultTaskName is used when a source record carries no title.
const DefaultTaskName = "no title"

// SourceRecord represents one time-tracking record fetched from the source
// service. This is a pure domain model without API-specific concerns; records
// are immutable once fetched and carry no stable identity: matching against
// the destination is by title and time window only.
type SourceRecord struct {
	Title     string
	Notes     string
	Start     time.Time
	End       time.Time
	IsRunning bool
	Project   SourceProject
}

// SourceProject represents the project data attached to a source record.
// TitleChain is the ordered sequence of ancestor project names; its first
// element is treated as the client name at the destination.
type SourceProject struct {
	Title      string
	Color      string
	TitleChain []string
}

// ClientName returns the client name for the record, which is the first
// element of the project's title chain.
func (r SourceRecord) ClientName() (string, bool) {
	if len(r.Project.TitleChain) == 0 {
		return "", false
	}
	return r.Project.TitleChain[0], true
}

// TaskName returns the record title, defaulting when the source record has
// no title of its own.
func (r SourceRecord) TaskName() string {
	if r.Title == "" {
		return DefaultTaskName
	}
	return r.Title
}

// Description returns the text to write on the destination time entry:
// the notes when present, otherwise the title.
func (r SourceRecord) Description() string {
	if r.Notes != "" {
		return r.Notes
	}
	return r.Title
}
