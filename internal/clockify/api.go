// Package clockify implements the client for the destination
// project-management service.
package clockify

import (
	"context"
)

// API defines the destination service operations the sync engine consumes.
// Every listing and creation call is scoped under a workspace path segment
// except the workspace and user endpoints themselves.
type API interface {
	// CurrentUser looks up the acting user
	CurrentUser(ctx context.Context) (*User, error)

	// Workspace operations
	ListWorkspaces(ctx context.Context) ([]*Workspace, error)
	CreateWorkspace(ctx context.Context, req CreateWorkspaceRequest) (*Workspace, error)

	// Client operations
	ListClients(ctx context.Context, workspaceID string) ([]*Client, error)
	CreateClient(ctx context.Context, workspaceID string, req CreateClientRequest) (*Client, error)

	// Project operations
	ListProjects(ctx context.Context, workspaceID string) ([]*Project, error)
	CreateProject(ctx context.Context, workspaceID string, req CreateProjectRequest) (*Project, error)

	// Task operations
	ListTasks(ctx context.Context, workspaceID, projectID string) ([]*Task, error)
	CreateTask(ctx context.Context, workspaceID, projectID string, req CreateTaskRequest) (*Task, error)

	// Time entry operations
	ListTimeEntries(ctx context.Context, workspaceID, userID string, query TimeEntryQuery) ([]*TimeEntry, error)
	CreateTimeEntry(ctx context.Context, workspaceID string, req CreateTimeEntryRequest) (*TimeEntry, error)
}
