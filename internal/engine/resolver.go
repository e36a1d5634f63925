package engine

import (
	"context"

	"t2c/internal/clockify"
)

// Project creation defaults fixed by the destination setup
const (
	defaultHourlyRateAmount   = 6000
	defaultHourlyRateCurrency = "EURO"

	// colorTokenLength truncates the source's 9-character #rrggbbaa color
	// to the #rrggbb token the destination accepts
	colorTokenLength = 7
)

// Resolver performs get-or-create against the destination for each
// hierarchy level, consulting and populating the identifier cache. The
// uniform algorithm per level: cache hit wins; otherwise list the scope and
// take the first exact name match; otherwise create.
type Resolver struct {
	api   clockify.API
	cache *Cache
}

// NewResolver creates a new entity resolver backed by the given cache
func NewResolver(api clockify.API, cache *Cache) *Resolver {
	return &Resolver{
		api:   api,
		cache: cache,
	}
}

// User resolves the acting destination user. There is exactly one acting
// user, so the lookup is memoized process-wide.
func (r *Resolver) User(ctx context.Context) (string, error) {
	return r.cache.Resolve(userKey(), func() (string, error) {
		user, err := r.api.CurrentUser(ctx)
		if err != nil {
			return "", err
		}
		return user.ID, nil
	})
}

// Workspace resolves the workspace with the given name, creating it when
// absent
func (r *Resolver) Workspace(ctx context.Context, name string) (string, error) {
	return r.cache.Resolve(workspaceKey(name), func() (string, error) {
		workspaces, err := r.api.ListWorkspaces(ctx)
		if err != nil {
			return "", err
		}
		// First exact name match wins; no disambiguation by other attributes
		for _, workspace := range workspaces {
			if workspace.Name == name {
				return workspace.ID, nil
			}
		}

		created, err := r.api.CreateWorkspace(ctx, clockify.CreateWorkspaceRequest{Name: name})
		if err != nil {
			return "", err
		}
		return created.ID, nil
	})
}

// Client resolves the client with the given name under a workspace, creating
// it when absent
func (r *Resolver) Client(ctx context.Context, workspaceID, name string) (string, error) {
	return r.cache.Resolve(clientKey(name), func() (string, error) {
		clients, err := r.api.ListClients(ctx, workspaceID)
		if err != nil {
			return "", err
		}
		for _, client := range clients {
			if client.Name == name {
				return client.ID, nil
			}
		}

		created, err := r.api.CreateClient(ctx, workspaceID, clockify.CreateClientRequest{Name: name})
		if err != nil {
			return "", err
		}
		return created.ID, nil
	})
}

// Project resolves the project with the given name under a workspace,
// creating it when absent with the client link, the truncated color token,
// and the fixed rate and billable defaults.
func (r *Resolver) Project(ctx context.Context, workspaceID, clientID, name, color string) (string, error) {
	return r.cache.Resolve(projectKey(workspaceID, name), func() (string, error) {
		projects, err := r.api.ListProjects(ctx, workspaceID)
		if err != nil {
			return "", err
		}
		for _, project := range projects {
			if project.Name == name {
				return project.ID, nil
			}
		}

		created, err := r.api.CreateProject(ctx, workspaceID, clockify.CreateProjectRequest{
			Name:     name,
			IsPublic: "false",
			ClientID: clientID,
			Color:    truncateColor(color),
			HourlyRate: clockify.HourlyRate{
				Amount:   defaultHourlyRateAmount,
				Currency: defaultHourlyRateCurrency,
			},
			Billable: "true",
		})
		if err != nil {
			return "", err
		}
		return created.ID, nil
	})
}

// Task resolves the task with the given name under a project, creating it
// when absent with the acting user as assignee
func (r *Resolver) Task(ctx context.Context, userID, workspaceID, projectID, name string) (string, error) {
	return r.cache.Resolve(taskKey(projectID, name), func() (string, error) {
		tasks, err := r.api.ListTasks(ctx, workspaceID, projectID)
		if err != nil {
			return "", err
		}
		for _, task := range tasks {
			if task.Name == name {
				return task.ID, nil
			}
		}

		created, err := r.api.CreateTask(ctx, workspaceID, projectID, clockify.CreateTaskRequest{
			Name:        name,
			AssigneeIDs: []string{userID},
		})
		if err != nil {
			return "", err
		}
		return created.ID, nil
	})
}

// truncateColor trims a color value to the 7-character hex token the
// destination accepts ("#ff00ffcc" becomes "#ff00ff")
func truncateColor(color string) string {
	if len(color) > colorTokenLength {
		return color[:colorTokenLength]
	}
	return color
}
