// Package inventory walks an Azure DevOps organization and collects its
// projects, repositories and branches, along with the pipeline definition
// file of each repository.
package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/iver-wharf/wharf-core/pkg/logger"
	"golang.org/x/sync/errgroup"

	"github.com/iver-wharf/azuredevops-go/internal/parseutil"
	"github.com/iver-wharf/azuredevops-go/pkg/connection"
	"github.com/iver-wharf/azuredevops-go/pkg/core"
	"github.com/iver-wharf/azuredevops-go/pkg/git"
	"github.com/iver-wharf/azuredevops-go/pkg/requests"
)

const (
	// DefaultDefinitionFile is the pipeline definition file probed for in
	// the root of each repository.
	DefaultDefinitionFile = "azure-pipelines.yml"
	defaultConcurrency    = 4
)

var log = logger.NewScoped("INVENTORY")

// Organization is the result of CollectOrganization.
type Organization struct {
	Name     string    `json:"name" example:"myorg"`
	Projects []Project `json:"projects"`
}

// Project is a collected Azure DevOps project.
type Project struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name" example:"My Project"`
	Description  string       `json:"description,omitempty"`
	Repositories []Repository `json:"repositories"`
}

// Repository is a collected git repository.
type Repository struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name" example:"my-repo"`
	Project       string    `json:"project" example:"My Project"`
	DefaultBranch string    `json:"defaultBranch,omitempty" example:"main"`
	GitURL        string    `json:"gitUrl,omitempty" example:"git@ssh.dev.azure.com:v3/myorg/My%20Project/my-repo"`
	WebURL        string    `json:"webUrl,omitempty"`
	IsDisabled    bool      `json:"isDisabled,omitempty"`
	Branches      []Branch  `json:"branches"`
	// PipelineDefinition is the content of the pipeline definition file, or
	// empty if the repository has none.
	PipelineDefinition string `json:"pipelineDefinition,omitempty"`
}

// Branch is a collected branch of a repository.
type Branch struct {
	Name    string `json:"name" example:"main"`
	Default bool   `json:"default"`
}

// Collector collects the inventory of the organization of its connection.
type Collector struct {
	conn *connection.Connection
	core core.Client
	// DefinitionFile is the path of the pipeline definition file, relative
	// to the repository root.
	DefinitionFile string
	// Concurrency is the maximum number of repositories collected at once.
	Concurrency int
}

// NewCollector creates a Collector with default settings.
func NewCollector(conn *connection.Connection) *Collector {
	return &Collector{
		conn:           conn,
		core:           core.NewClient(conn),
		DefinitionFile: DefaultDefinitionFile,
		Concurrency:    defaultConcurrency,
	}
}

// CollectOrganization collects all well-formed projects of the organization.
func (c *Collector) CollectOrganization(ctx context.Context) (Organization, error) {
	refs, err := core.AllProjects(ctx, c.core, &core.GetProjectsOptions{StateFilter: core.ProjectStateWellFormed})
	if err != nil {
		return Organization{}, err
	}
	org := Organization{
		Name:     c.conn.Organization,
		Projects: make([]Project, 0, len(refs)),
	}
	for _, ref := range refs {
		project := Project{ID: ref.ID, Name: ref.Name, Description: ref.Description}
		project.Repositories, err = c.collectRepositories(ctx, ref.Name)
		if err != nil {
			return Organization{}, err
		}
		org.Projects = append(org.Projects, project)
	}
	log.Info().
		WithString("org", org.Name).
		WithInt("projects", len(org.Projects)).
		Message("Collected organization.")
	return org, nil
}

// CollectProject collects all repositories of a project.
func (c *Collector) CollectProject(ctx context.Context, projectNameOrID string) (Project, error) {
	ref, err := c.core.GetProject(ctx, projectNameOrID)
	if err != nil {
		return Project{}, err
	}
	repos, err := c.collectRepositories(ctx, ref.Name)
	if err != nil {
		return Project{}, err
	}
	return Project{
		ID:           ref.ID,
		Name:         ref.Name,
		Description:  ref.Description,
		Repositories: repos,
	}, nil
}

// CollectRepository collects a single repository of a project.
func (c *Collector) CollectRepository(ctx context.Context, projectNameOrID, repoNameOrID string) (Repository, error) {
	gitClient := git.NewClient(c.conn.WithProject(projectNameOrID))
	repo, err := gitClient.GetRepository(ctx, repoNameOrID)
	if err != nil {
		return Repository{}, err
	}
	return c.collectRepository(ctx, gitClient, repo)
}

func (c *Collector) collectRepositories(ctx context.Context, projectName string) ([]Repository, error) {
	gitClient := git.NewClient(c.conn.WithProject(projectName))
	repos, err := gitClient.GetRepositories(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]Repository, len(repos))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency())
	for i, repo := range repos {
		i, repo := i, repo
		g.Go(func() error {
			var err error
			result[i], err = c.collectRepository(gctx, gitClient, repo)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Debug().
		WithString("project", projectName).
		WithInt("repositories", len(result)).
		Message("Collected project.")
	return result, nil
}

func (c *Collector) collectRepository(ctx context.Context, gitClient git.Client, repo git.Repository) (Repository, error) {
	result := Repository{
		ID:            repo.ID,
		Name:          repo.Name,
		Project:       repo.Project.Name,
		DefaultBranch: parseutil.TrimRefPrefix(repo.DefaultBranchRef),
		GitURL:        repo.SSHURL,
		WebURL:        repo.WebURL,
		IsDisabled:    repo.IsDisabled,
		Branches:      []Branch{},
	}
	// Disabled repositories reject all git requests, and empty ones have
	// neither branches nor files.
	if repo.IsDisabled || repo.DefaultBranchRef == "" {
		return result, nil
	}

	refs, err := gitClient.GetRefs(ctx, repo.ID.String(), "heads/")
	if err != nil {
		return Repository{}, err
	}
	for _, ref := range refs {
		result.Branches = append(result.Branches, Branch{
			Name:    parseutil.TrimRefPrefix(ref.Name),
			Default: ref.Name == repo.DefaultBranchRef,
		})
	}

	definition, err := gitClient.GetItemContent(ctx, repo.ID.String(), "/"+c.definitionFile(), "")
	switch {
	case requests.IsNotFound(err):
		log.Debug().
			WithString("project", repo.Project.Name).
			WithString("repo", repo.Name).
			WithString("file", c.definitionFile()).
			Message("No pipeline definition file found.")
	case err != nil:
		return Repository{}, fmt.Errorf("fetch pipeline definition: %w", err)
	default:
		result.PipelineDefinition = definition
	}
	return result, nil
}

func (c *Collector) definitionFile() string {
	if c.DefinitionFile == "" {
		return DefaultDefinitionFile
	}
	return c.DefinitionFile
}

func (c *Collector) concurrency() int {
	if c.Concurrency <= 0 {
		return defaultConcurrency
	}
	return c.Concurrency
}
