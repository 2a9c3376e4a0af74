package core

import (
	"github.com/google/uuid"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

// Project states.
const (
	ProjectStateWellFormed    = "wellFormed"
	ProjectStateCreatePending = "createPending"
	ProjectStateDeleting      = "deleting"
	ProjectStateNew           = "new"
	ProjectStateAll           = "all"
)

// Project visibilities.
const (
	VisibilityPrivate = "private"
	VisibilityPublic  = "public"
)

// Project represents project data retrieved from Azure DevOps.
type Project struct {
	ID             uuid.UUID                    `json:"id"`
	Name           string                       `json:"name"`
	Description    string                       `json:"description,omitempty"`
	URL            string                       `json:"url,omitempty"`
	State          string                       `json:"state,omitempty"`
	Revision       int64                        `json:"revision,omitempty"`
	Visibility     string                       `json:"visibility,omitempty"`
	LastUpdateTime webapi.Time                  `json:"lastUpdateTime"`
	DefaultTeam    *webapi.TeamReference        `json:"defaultTeam,omitempty"`
	Capabilities   map[string]map[string]string `json:"capabilities,omitempty"`
	Links          webapi.ReferenceLinks        `json:"_links,omitempty"`
}

// ProjectProperty is a single named property of a project.
type ProjectProperty struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

// NewProject holds the data needed to create a project.
type NewProject struct {
	Name         string                       `json:"name"`
	Description  string                       `json:"description,omitempty"`
	Visibility   string                       `json:"visibility,omitempty"`
	Capabilities map[string]map[string]string `json:"capabilities"`
}

// NewProjectCapabilities returns the capabilities needed to create a project
// using the given source control type ("Git" or "Tfvc") and process template.
func NewProjectCapabilities(sourceControlType string, processTemplateID uuid.UUID) map[string]map[string]string {
	return map[string]map[string]string{
		"versioncontrol": {
			"sourceControlType": sourceControlType,
		},
		"processTemplate": {
			"templateTypeId": processTemplateID.String(),
		},
	}
}

// ProjectUpdate holds the fields of a project that can be updated.
type ProjectUpdate struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Visibility  string `json:"visibility,omitempty"`
}

// Team represents a team in a project.
type Team struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url,omitempty"`
	Description string    `json:"description,omitempty"`
	IdentityURL string    `json:"identityUrl,omitempty"`
	ProjectName string    `json:"projectName,omitempty"`
	ProjectID   uuid.UUID `json:"projectId"`
}

// NewTeam holds the data needed to create a team.
type NewTeam struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Process is a process template, such as Agile or Scrum.
type Process struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsDefault   bool      `json:"isDefault"`
	Type        string    `json:"type,omitempty"`
	URL         string    `json:"url,omitempty"`
}

// ProjectPage is a single page of projects. ContinuationToken is empty on the
// last page.
type ProjectPage struct {
	Projects          []webapi.TeamProjectReference
	ContinuationToken string
}

// GetProjectsOptions filters the result of GetProjects.
type GetProjectsOptions struct {
	StateFilter            string `url:"stateFilter,omitempty"`
	Top                    int    `url:"$top,omitempty"`
	Skip                   int    `url:"$skip,omitempty"`
	ContinuationToken      string `url:"continuationToken,omitempty"`
	GetDefaultTeamImageURL bool   `url:"getDefaultTeamImageUrl,omitempty"`
}

// GetTeamsOptions filters the result of GetTeams.
type GetTeamsOptions struct {
	Mine           bool `url:"$mine,omitempty"`
	Top            int  `url:"$top,omitempty"`
	Skip           int  `url:"$skip,omitempty"`
	ExpandIdentity bool `url:"$expandIdentity,omitempty"`
}
