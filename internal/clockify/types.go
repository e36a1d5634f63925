package clockify

// User represents the acting destination user
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Workspace represents a destination workspace
type Workspace struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Client represents a destination client under a workspace
type Client struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Project represents a destination project under a workspace
type Project struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ClientID string `json:"clientId"`
	Color    string `json:"color"`
}

// Task represents a destination task under a project
type Task struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TimeInterval is the start/end pair on a destination time entry, both in
// UTC second precision ("2006-01-02T15:04:05Z").
type TimeInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TimeEntry represents a destination time entry
type TimeEntry struct {
	ID           string       `json:"id"`
	Description  string       `json:"description"`
	TimeInterval TimeInterval `json:"timeInterval"`
}

// HourlyRate is the rate attached to a created project
type HourlyRate struct {
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}

// CreateWorkspaceRequest is the payload for creating a workspace
type CreateWorkspaceRequest struct {
	Name string `json:"name"`
}

// CreateClientRequest is the payload for creating a client
type CreateClientRequest struct {
	Name string `json:"name"`
}

// CreateProjectRequest is the payload for creating a project. Field names
// and the string-typed booleans are fixed by the destination API version in
// production use; do not "fix" them to real booleans.
type CreateProjectRequest struct {
	Name       string     `json:"name"`
	IsPublic   string     `json:"isPublic"`
	ClientID   string     `json:"clientId"`
	Color      string     `json:"color"`
	HourlyRate HourlyRate `json:"hourlyRate"`
	Billable   string     `json:"billable"`
}

// CreateTaskRequest is the payload for creating a task
type CreateTaskRequest struct {
	Name        string   `json:"name"`
	AssigneeIDs []string `json:"assigneeIds"`
}

// CreateTimeEntryRequest is the payload for creating a time entry
type CreateTimeEntryRequest struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	Description string `json:"description"`
	Billable    string `json:"billable"`
	ProjectID   string `json:"projectId"`
	TaskID      string `json:"taskId"`
}

// TimeEntryQuery filters a time entry listing for the acting user
type TimeEntryQuery struct {
	ProjectID string
	TaskID    string
	Start     string
}
