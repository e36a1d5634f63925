package domain

// EntityChain is the resolved destination hierarchy for one source record.
// It is built incrementally, each level depending on the previous, and every
// identifier is a destination-assigned opaque string.
type EntityChain struct {
	UserID      string
	WorkspaceID string
	ClientID    string
	ProjectID   string
	TaskID      string
}

// IsComplete checks if every level of the chain has been resolved.
func (c EntityChain) IsComplete() bool {
	return c.UserID != "" &&
		c.WorkspaceID != "" &&
		c.ClientID != "" &&
		c.ProjectID != "" &&
		c.TaskID != ""
}

// ImportOutcome reports the result of importing one source record.
type ImportOutcome struct {
	// Created is true when a new destination time entry was written,
	// false when a matching entry already existed.
	Created bool

	// TimeEntryID is the destination identifier of the created or
	// matched time entry.
	TimeEntryID string

	// Chain is the fully resolved entity chain the entry belongs to.
	Chain EntityChain
}
