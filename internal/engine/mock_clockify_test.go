package engine

import (
	"context"
	"fmt"
	"sync"

	"t2c/internal/clockify"
)

// mockClockifyAPI implements clockify.API as an in-memory fake destination.
// It records list and create call counts per entity kind so tests can assert
// how many API calls the engine issued.
type mockClockifyAPI struct {
	mu sync.Mutex

	user       clockify.User
	workspaces []*clockify.Workspace
	clients    map[string][]*clockify.Client
	projects   map[string][]*clockify.Project
	tasks      map[string][]*clockify.Task
	entries    map[string][]*clockify.TimeEntry

	nextID      int
	userCalls   int
	listCalls   map[string]int
	createCalls map[string]int

	lastProjectReq clockify.CreateProjectRequest
	lastTaskReq    clockify.CreateTaskRequest
	lastEntryReq   clockify.CreateTimeEntryRequest

	// failWith, when set, makes every call fail
	failWith error
}

// newMockClockifyAPI creates a new empty fake destination
func newMockClockifyAPI() *mockClockifyAPI {
	return &mockClockifyAPI{
		user:        clockify.User{ID: "user-1", Name: "Test User"},
		clients:     make(map[string][]*clockify.Client),
		projects:    make(map[string][]*clockify.Project),
		tasks:       make(map[string][]*clockify.Task),
		entries:     make(map[string][]*clockify.TimeEntry),
		listCalls:   make(map[string]int),
		createCalls: make(map[string]int),
	}
}

func (m *mockClockifyAPI) genID(kind string) string {
	m.nextID++
	return fmt.Sprintf("%s-%d", kind, m.nextID)
}

func (m *mockClockifyAPI) CurrentUser(ctx context.Context) (*clockify.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.userCalls++
	user := m.user
	return &user, nil
}

func (m *mockClockifyAPI) ListWorkspaces(ctx context.Context) ([]*clockify.Workspace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.listCalls["workspace"]++
	return append([]*clockify.Workspace(nil), m.workspaces...), nil
}

func (m *mockClockifyAPI) CreateWorkspace(ctx context.Context, req clockify.CreateWorkspaceRequest) (*clockify.Workspace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.createCalls["workspace"]++
	workspace := &clockify.Workspace{ID: m.genID("ws"), Name: req.Name}
	m.workspaces = append(m.workspaces, workspace)
	return workspace, nil
}

func (m *mockClockifyAPI) ListClients(ctx context.Context, workspaceID string) ([]*clockify.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.listCalls["client"]++
	return append([]*clockify.Client(nil), m.clients[workspaceID]...), nil
}

func (m *mockClockifyAPI) CreateClient(ctx context.Context, workspaceID string, req clockify.CreateClientRequest) (*clockify.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.createCalls["client"]++
	client := &clockify.Client{ID: m.genID("client"), Name: req.Name}
	m.clients[workspaceID] = append(m.clients[workspaceID], client)
	return client, nil
}

func (m *mockClockifyAPI) ListProjects(ctx context.Context, workspaceID string) ([]*clockify.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.listCalls["project"]++
	return append([]*clockify.Project(nil), m.projects[workspaceID]...), nil
}

func (m *mockClockifyAPI) CreateProject(ctx context.Context, workspaceID string, req clockify.CreateProjectRequest) (*clockify.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.createCalls["project"]++
	m.lastProjectReq = req
	project := &clockify.Project{ID: m.genID("prj"), Name: req.Name, ClientID: req.ClientID, Color: req.Color}
	m.projects[workspaceID] = append(m.projects[workspaceID], project)
	return project, nil
}

func (m *mockClockifyAPI) ListTasks(ctx context.Context, workspaceID, projectID string) ([]*clockify.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.listCalls["task"]++
	return append([]*clockify.Task(nil), m.tasks[projectID]...), nil
}

func (m *mockClockifyAPI) CreateTask(ctx context.Context, workspaceID, projectID string, req clockify.CreateTaskRequest) (*clockify.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.createCalls["task"]++
	m.lastTaskReq = req
	task := &clockify.Task{ID: m.genID("task"), Name: req.Name}
	m.tasks[projectID] = append(m.tasks[projectID], task)
	return task, nil
}

func (m *mockClockifyAPI) ListTimeEntries(ctx context.Context, workspaceID, userID string, query clockify.TimeEntryQuery) ([]*clockify.TimeEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.listCalls["timeEntry"]++

	// Mirror the server-side filter: start >= the queried instant. The
	// fixed layout makes lexicographic comparison correct.
	var matched []*clockify.TimeEntry
	for _, entry := range m.entries[workspaceID] {
		if query.Start != "" && entry.TimeInterval.Start < query.Start {
			continue
		}
		matched = append(matched, entry)
	}
	return matched, nil
}

func (m *mockClockifyAPI) CreateTimeEntry(ctx context.Context, workspaceID string, req clockify.CreateTimeEntryRequest) (*clockify.TimeEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.createCalls["timeEntry"]++
	m.lastEntryReq = req
	entry := &clockify.TimeEntry{
		ID:          m.genID("entry"),
		Description: req.Description,
		TimeInterval: clockify.TimeInterval{
			Start: req.Start,
			End:   req.End,
		},
	}
	m.entries[workspaceID] = append(m.entries[workspaceID], entry)
	return entry, nil
}
