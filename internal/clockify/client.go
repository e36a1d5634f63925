package clockify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"t2c/internal/errors"
)

// apiImpl is a key-authenticated destination API client implementing API
type apiImpl struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New creates a new destination API client with a bounded request timeout
func New(baseURL, apiKey string, timeout time.Duration) API {
	return &apiImpl{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// CurrentUser looks up the acting user
func (a *apiImpl) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := a.get(ctx, "user", &user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, errors.NewMissingFieldError("user.id")
	}
	return &user, nil
}

// ListWorkspaces lists every workspace visible to the acting user
func (a *apiImpl) ListWorkspaces(ctx context.Context) ([]*Workspace, error) {
	var workspaces []*Workspace
	if err := a.get(ctx, "workspaces", &workspaces); err != nil {
		return nil, err
	}
	return workspaces, nil
}

// CreateWorkspace creates a new workspace
func (a *apiImpl) CreateWorkspace(ctx context.Context, req CreateWorkspaceRequest) (*Workspace, error) {
	var workspace Workspace
	if err := a.post(ctx, "workspaces", req, &workspace); err != nil {
		return nil, err
	}
	if workspace.ID == "" {
		return nil, errors.NewMissingFieldError("workspace.id")
	}
	return &workspace, nil
}

// ListClients lists the clients under a workspace
func (a *apiImpl) ListClients(ctx context.Context, workspaceID string) ([]*Client, error) {
	var clients []*Client
	if err := a.get(ctx, fmt.Sprintf("workspaces/%s/clients", workspaceID), &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

// CreateClient creates a new client under a workspace
func (a *apiImpl) CreateClient(ctx context.Context, workspaceID string, req CreateClientRequest) (*Client, error) {
	var client Client
	if err := a.post(ctx, fmt.Sprintf("workspaces/%s/clients", workspaceID), req, &client); err != nil {
		return nil, err
	}
	if client.ID == "" {
		return nil, errors.NewMissingFieldError("client.id")
	}
	return &client, nil
}

// ListProjects lists the projects under a workspace
func (a *apiImpl) ListProjects(ctx context.Context, workspaceID string) ([]*Project, error) {
	var projects []*Project
	if err := a.get(ctx, fmt.Sprintf("workspaces/%s/projects", workspaceID), &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject creates a new project under a workspace
func (a *apiImpl) CreateProject(ctx context.Context, workspaceID string, req CreateProjectRequest) (*Project, error) {
	var project Project
	if err := a.post(ctx, fmt.Sprintf("workspaces/%s/projects", workspaceID), req, &project); err != nil {
		return nil, err
	}
	if project.ID == "" {
		return nil, errors.NewMissingFieldError("project.id")
	}
	return &project, nil
}

// ListTasks lists the tasks under a project
func (a *apiImpl) ListTasks(ctx context.Context, workspaceID, projectID string) ([]*Task, error) {
	var tasks []*Task
	if err := a.get(ctx, fmt.Sprintf("workspaces/%s/projects/%s/tasks", workspaceID, projectID), &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask creates a new task under a project
func (a *apiImpl) CreateTask(ctx context.Context, workspaceID, projectID string, req CreateTaskRequest) (*Task, error) {
	var task Task
	if err := a.post(ctx, fmt.Sprintf("workspaces/%s/projects/%s/tasks", workspaceID, projectID), req, &task); err != nil {
		return nil, err
	}
	if task.ID == "" {
		return nil, errors.NewMissingFieldError("task.id")
	}
	return &task, nil
}

// ListTimeEntries lists the acting user's time entries matching the query
func (a *apiImpl) ListTimeEntries(ctx context.Context, workspaceID, userID string, query TimeEntryQuery) ([]*TimeEntry, error) {
	params := url.Values{}
	if query.ProjectID != "" {
		params.Set("project", query.ProjectID)
	}
	if query.TaskID != "" {
		params.Set("task", query.TaskID)
	}
	if query.Start != "" {
		params.Set("start", query.Start)
	}

	path := fmt.Sprintf("workspaces/%s/user/%s/time-entries", workspaceID, userID)
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var entries []*TimeEntry
	if err := a.get(ctx, path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CreateTimeEntry creates a new time entry under a workspace
func (a *apiImpl) CreateTimeEntry(ctx context.Context, workspaceID string, req CreateTimeEntryRequest) (*TimeEntry, error) {
	var entry TimeEntry
	if err := a.post(ctx, fmt.Sprintf("workspaces/%s/time-entries", workspaceID), req, &entry); err != nil {
		return nil, err
	}
	if entry.ID == "" {
		return nil, errors.NewMissingFieldError("timeEntry.id")
	}
	return &entry, nil
}

// get performs an authenticated GET and decodes the response into out
func (a *apiImpl) get(ctx context.Context, path string, out interface{}) error {
	return a.do(ctx, http.MethodGet, path, nil, out)
}

// post performs an authenticated POST with a JSON body and decodes the
// response into out
func (a *apiImpl) post(ctx context.Context, path string, payload, out interface{}) error {
	return a.do(ctx, http.MethodPost, path, payload, out)
}

// do performs one request against the destination API. Any non-2xx response
// is an error carrying the status and body text.
func (a *apiImpl) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return errors.NewRequestError("clockify", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+"/"+path, reqBody)
	if err != nil {
		return errors.NewRequestError("clockify", err)
	}
	req.Header.Set("X-Api-Key", a.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return errors.NewRequestError("clockify", err)
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return errors.NewRequestError("clockify", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return errors.NewAuthError("clockify", resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return errors.NewTransportError("clockify", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.NewDecodeError("clockify "+path+" response", err)
	}
	return nil
}
