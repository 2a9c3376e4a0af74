// Package core implements the core area of the Azure DevOps REST API, which
// manages projects, teams and processes.
package core

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/iver-wharf/azuredevops-go/pkg/connection"
	"github.com/iver-wharf/azuredevops-go/pkg/requests"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

const (
	apiVersion              = "7.1"
	continuationTokenHeader = "X-MS-ContinuationToken"
)

// Client is used to talk with the core area of the Azure DevOps API.
type Client interface {
	// GetProjects gets a page of the projects in the organization that the
	// user has access to. Use AllProjects to follow the continuation tokens.
	GetProjects(ctx context.Context, opts *GetProjectsOptions) (ProjectPage, error)
	// GetProject gets a project by name or ID, including its capabilities.
	GetProject(ctx context.Context, projectNameOrID string) (Project, error)
	// CreateProject queues the creation of a project. The returned operation
	// can be polled to know when the project is ready.
	CreateProject(ctx context.Context, project NewProject) (webapi.OperationReference, error)
	// UpdateProject queues an update of a project's name, description or
	// visibility.
	UpdateProject(ctx context.Context, projectID string, update ProjectUpdate) (webapi.OperationReference, error)
	// DeleteProject queues the deletion of a project.
	DeleteProject(ctx context.Context, projectID string) (webapi.OperationReference, error)
	GetProjectProperties(ctx context.Context, projectID string, keys []string) ([]ProjectProperty, error)
	GetTeams(ctx context.Context, projectNameOrID string, opts *GetTeamsOptions) ([]Team, error)
	GetTeam(ctx context.Context, projectNameOrID, teamNameOrID string) (Team, error)
	CreateTeam(ctx context.Context, projectNameOrID string, team NewTeam) (Team, error)
	DeleteTeam(ctx context.Context, projectNameOrID, teamNameOrID string) error
	GetProcesses(ctx context.Context) ([]Process, error)
}

type client struct {
	conn *connection.Connection
}

// NewClient creates a new core Client.
func NewClient(conn *connection.Connection) Client {
	return &client{conn: conn}
}

func (c *client) GetProjects(ctx context.Context, opts *GetProjectsOptions) (ProjectPage, error) {
	u, err := c.conn.OrganizationURL(connection.ServiceDefault, apiVersion, opts, "projects")
	if err != nil {
		return ProjectPage{}, err
	}
	resp, err := c.conn.Do(ctx, requests.Request{Method: http.MethodGet, URL: u})
	if err != nil {
		return ProjectPage{}, fmt.Errorf("get projects: %w", err)
	}
	var projects webapi.List[webapi.TeamProjectReference]
	if err := resp.DecodeJSON(&projects); err != nil {
		return ProjectPage{}, fmt.Errorf("get projects: %w", err)
	}
	return ProjectPage{
		Projects:          projects.Value,
		ContinuationToken: resp.Header.Get(continuationTokenHeader),
	}, nil
}

// AllProjects gets every project by following continuation tokens. The
// options are copied and may be nil.
func AllProjects(ctx context.Context, c Client, opts *GetProjectsOptions) ([]webapi.TeamProjectReference, error) {
	var pageOpts GetProjectsOptions
	if opts != nil {
		pageOpts = *opts
	}
	var projects []webapi.TeamProjectReference
	for {
		page, err := c.GetProjects(ctx, &pageOpts)
		if err != nil {
			return nil, err
		}
		projects = append(projects, page.Projects...)
		if page.ContinuationToken == "" {
			return projects, nil
		}
		pageOpts.ContinuationToken = page.ContinuationToken
	}
}

func (c *client) GetProject(ctx context.Context, projectNameOrID string) (Project, error) {
	q := url.Values{"includeCapabilities": {"true"}}
	u, err := c.conn.OrganizationURL(connection.ServiceDefault, apiVersion, q, "projects/%s", projectNameOrID)
	if err != nil {
		return Project{}, err
	}
	var project Project
	if err := c.conn.GetUnmarshalJSON(ctx, &project, u); err != nil {
		return Project{}, fmt.Errorf("get project %q: %w", projectNameOrID, err)
	}
	return project, nil
}

func (c *client) CreateProject(ctx context.Context, project NewProject) (webapi.OperationReference, error) {
	u, err := c.conn.OrganizationURL(connection.ServiceDefault, apiVersion, nil, "projects")
	if err != nil {
		return webapi.OperationReference{}, err
	}
	var op webapi.OperationReference
	if err := c.conn.PostJSON(ctx, &op, u, project); err != nil {
		return webapi.OperationReference{}, fmt.Errorf("create project %q: %w", project.Name, err)
	}
	return op, nil
}

func (c *client) UpdateProject(ctx context.Context, projectID string, update ProjectUpdate) (webapi.OperationReference, error) {
	u, err := c.conn.OrganizationURL(connection.ServiceDefault, apiVersion, nil, "projects/%s", projectID)
	if err != nil {
		return webapi.OperationReference{}, err
	}
	var op webapi.OperationReference
	if err := c.conn.PatchJSON(ctx, &op, u, update); err != nil {
		return webapi.OperationReference{}, fmt.Errorf("update project %q: %w", projectID, err)
	}
	return op, nil
}

func (c *client) DeleteProject(ctx context.Context, projectID string) (webapi.OperationReference, error) {
	u, err := c.conn.OrganizationURL(connection.ServiceDefault, apiVersion, nil, "projects/%s", projectID)
	if err != nil {
		return webapi.OperationReference{}, err
	}
	var op webapi.OperationReference
	if err := c.conn.Delete(ctx, &op, u); err != nil {
		return webapi.OperationReference{}, fmt.Errorf("delete project %q: %w", projectID, err)
	}
	return op, nil
}

func (c *client) GetProjectProperties(ctx context.Context, projectID string, keys []string) ([]ProjectProperty, error) {
	q := url.Values{}
	for _, key := range keys {
		q.Add("keys", key)
	}
	u, err := c.conn.OrganizationURL(connection.ServiceDefault, "7.1-preview.1", q, "projects/%s/properties", projectID)
	if err != nil {
		return nil, err
	}
	var props webapi.List[ProjectProperty]
	if err := c.conn.GetUnmarshalJSON(ctx, &props, u); err != nil {
		return nil, fmt.Errorf("get properties of project %q: %w", projectID, err)
	}
	return props.Value, nil
}

func (c *client) GetTeams(ctx context.Context, projectNameOrID string, opts *GetTeamsOptions) ([]Team, error) {
	u, err := c.conn.OrganizationURL(connection.ServiceDefault, apiVersion, opts, "projects/%s/teams", projectNameOrID)
	if err != nil {
		return nil, err
	}
	var teams webapi.List[Team]
	if err := c.conn.GetUnmarshalJSON(ctx, &teams, u); err != nil {
		return nil, fmt.Errorf("get teams of project %q: %w", projectNameOrID, err)
	}
	return teams.Value, nil
}

func (c *client) GetTeam(ctx context.Context, projectNameOrID, teamNameOrID string) (Team, error) {
	u, err := c.conn.OrganizationURL(connection.ServiceDefault, apiVersion, nil, "projects/%s/teams/%s", projectNameOrID, teamNameOrID)
	if err != nil {
		return Team{}, err
	}
	var team Team
	if err := c.conn.GetUnmarshalJSON(ctx, &team, u); err != nil {
		return Team{}, fmt.Errorf("get team %q of project %q: %w", teamNameOrID, projectNameOrID, err)
	}
	return team, nil
}

func (c *client) CreateTeam(ctx context.Context, projectNameOrID string, team NewTeam) (Team, error) {
	u, err := c.conn.OrganizationURL(connection.ServiceDefault, apiVersion, nil, "projects/%s/teams", projectNameOrID)
	if err != nil {
		return Team{}, err
	}
	var created Team
	if err := c.conn.PostJSON(ctx, &created, u, team); err != nil {
		return Team{}, fmt.Errorf("create team %q in project %q: %w", team.Name, projectNameOrID, err)
	}
	return created, nil
}

func (c *client) DeleteTeam(ctx context.Context, projectNameOrID, teamNameOrID string) error {
	u, err := c.conn.OrganizationURL(connection.ServiceDefault, apiVersion, nil, "projects/%s/teams/%s", projectNameOrID, teamNameOrID)
	if err != nil {
		return err
	}
	if err := c.conn.Delete(ctx, nil, u); err != nil {
		return fmt.Errorf("delete team %q of project %q: %w", teamNameOrID, projectNameOrID, err)
	}
	return nil
}

func (c *client) GetProcesses(ctx context.Context) ([]Process, error) {
	u, err := c.conn.OrganizationURL(connection.ServiceDefault, apiVersion, nil, "process/processes")
	if err != nil {
		return nil, err
	}
	var processes webapi.List[Process]
	if err := c.conn.GetUnmarshalJSON(ctx, &processes, u); err != nil {
		return nil, fmt.Errorf("get processes: %w", err)
	}
	return processes.Value, nil
}
