package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/iver-wharf/wharf-core/pkg/ginutil"
	"golang.org/x/time/rate"

	"github.com/iver-wharf/azuredevops-go/internal/inventory"
	"github.com/iver-wharf/azuredevops-go/internal/parseutil"
	"github.com/iver-wharf/azuredevops-go/pkg/azuredevops"
	"github.com/iver-wharf/azuredevops-go/pkg/connection"
	"github.com/iver-wharf/azuredevops-go/pkg/requests"
)

// azureDevOpsModule holds the routes that are served by talking with Azure
// DevOps.
type azureDevOpsModule struct {
	config    *Config
	azd       azuredevops.Client
	inventory *inventory.Collector
}

func newAzureDevOpsModule(config *Config, conn *connection.Connection) azureDevOpsModule {
	collector := inventory.NewCollector(conn)
	collector.DefinitionFile = config.Inventory.DefinitionFile
	collector.Concurrency = config.Inventory.Concurrency
	return azureDevOpsModule{
		config:    config,
		azd:       azuredevops.NewClient(conn),
		inventory: collector,
	}
}

func (m azureDevOpsModule) register(r gin.IRouter) {
	r.GET("/inventory", m.getInventoryHandler)
	r.GET("/inventory/repository", m.getRepositoryInventoryHandler)

	var hookHandlers []gin.HandlerFunc
	if m.config.Hooks.Username != "" {
		hookHandlers = append(hookHandlers, gin.BasicAuth(gin.Accounts{
			m.config.Hooks.Username: m.config.Hooks.Password,
		}))
	}
	hookHandlers = append(hookHandlers, m.postServiceHookHandler)
	r.POST("/servicehooks", hookHandlers...)
}

func newConnection(config Config) (*connection.Connection, error) {
	opts := []connection.Option{
		connection.WithUserAgent("azuredevops-go/" + AppVersion.Version),
	}
	if config.AzureDevOps.BaseURL != "" {
		opts = append(opts, connection.WithBaseURL(config.AzureDevOps.BaseURL))
	}
	if config.CA.CertsFile != "" {
		opts = append(opts, connection.WithCACertsFile(config.CA.CertsFile))
	}
	if config.AzureDevOps.RateLimit > 0 {
		burst := config.AzureDevOps.RateBurst
		if burst < 1 {
			burst = 1
		}
		opts = append(opts, connection.WithRateLimit(
			rate.NewLimiter(rate.Limit(config.AzureDevOps.RateLimit), burst)))
	}
	return connection.New(
		config.AzureDevOps.Organization,
		config.AzureDevOps.Project,
		config.AzureDevOps.PersonalAccessToken,
		opts...)
}

// getInventoryHandler godoc
// @id getInventory
// @summary Collects projects, repositories and branches from Azure DevOps
// @description Walks all projects of the configured organization, or only
// @description the given project, and returns their repositories, branches
// @description and pipeline definition files.
// @tags inventory
// @produce json
// @param project query string false "Name or ID of a single project to collect"
// @success 200 {object} inventory.Organization
// @failure 400 {object} problem.Response "Project not found"
// @failure 502 {object} problem.Response "Failed talking with Azure DevOps"
// @router /inventory [get]
func (m azureDevOpsModule) getInventoryHandler(c *gin.Context) {
	ctx := c.Request.Context()
	project, ok := c.GetQuery("project")
	if !ok || project == "" {
		org, err := m.inventory.CollectOrganization(ctx)
		if err != nil {
			log.Error().WithError(err).Message("Failed to collect organization.")
			ginutil.WriteProviderResponseError(c, err,
				fmt.Sprintf("Unable to collect organization %q.", m.config.AzureDevOps.Organization))
			return
		}
		c.JSON(http.StatusOK, org)
		return
	}

	collected, err := m.inventory.CollectProject(ctx, project)
	if requests.IsNotFound(err) {
		ginutil.WriteInvalidParamError(c, err, "project",
			fmt.Sprintf("Project %q was not found in organization %q.", project, m.config.AzureDevOps.Organization))
		return
	} else if err != nil {
		log.Error().
			WithError(err).
			WithString("project", project).
			Message("Failed to collect project.")
		ginutil.WriteProviderResponseError(c, err,
			fmt.Sprintf("Unable to collect project %q.", project))
		return
	}
	c.JSON(http.StatusOK, inventory.Organization{
		Name:     m.config.AzureDevOps.Organization,
		Projects: []inventory.Project{collected},
	})
}

// getRepositoryInventoryHandler godoc
// @id getRepositoryInventory
// @summary Collects a single repository from Azure DevOps
// @tags inventory
// @produce json
// @param ref query string true "Repository reference on the form {organization}/{project}/{repository}"
// @success 200 {object} inventory.Repository
// @failure 400 {object} problem.Response "Invalid reference or repository not found"
// @failure 502 {object} problem.Response "Failed talking with Azure DevOps"
// @router /inventory/repository [get]
func (m azureDevOpsModule) getRepositoryInventoryHandler(c *gin.Context) {
	ref := c.Query("ref")
	orgName, projectName, repoName := parseutil.ParseRepoRef(ref)
	if projectName == "" || repoName == "" {
		ginutil.WriteInvalidParamError(c, errors.New("incomplete repository reference"), "ref",
			fmt.Sprintf("Invalid repository reference %q, expected {organization}/{project}/{repository}.", ref))
		return
	}
	if !strings.EqualFold(orgName, m.config.AzureDevOps.Organization) {
		ginutil.WriteInvalidParamError(c, errors.New("unknown organization"), "ref",
			fmt.Sprintf("Organization %q is not the configured organization %q.", orgName, m.config.AzureDevOps.Organization))
		return
	}

	repo, err := m.inventory.CollectRepository(c.Request.Context(), projectName, repoName)
	if requests.IsNotFound(err) {
		ginutil.WriteInvalidParamError(c, err, "ref",
			fmt.Sprintf("Repository %q was not found in project %q.", repoName, projectName))
		return
	} else if err != nil {
		log.Error().
			WithError(err).
			WithString("project", projectName).
			WithString("repo", repoName).
			Message("Failed to collect repository.")
		ginutil.WriteProviderResponseError(c, err,
			fmt.Sprintf("Unable to collect repository %q from project %q.", repoName, projectName))
		return
	}
	c.JSON(http.StatusOK, repo)
}
