package build

import (
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

// Build statuses.
const (
	StatusAll        = "all"
	StatusCancelling = "cancelling"
	StatusCompleted  = "completed"
	StatusInProgress = "inProgress"
	StatusNone       = "none"
	StatusNotStarted = "notStarted"
	StatusPostponed  = "postponed"
)

// Build results.
const (
	ResultCanceled           = "canceled"
	ResultFailed             = "failed"
	ResultNone               = "none"
	ResultPartiallySucceeded = "partiallySucceeded"
	ResultSucceeded          = "succeeded"
)

// Build represents a single run of a build definition.
type Build struct {
	ID            int                          `json:"id"`
	BuildNumber   string                       `json:"buildNumber,omitempty"`
	Status        string                       `json:"status,omitempty"`
	Result        string                       `json:"result,omitempty"`
	QueueTime     webapi.Time                  `json:"queueTime"`
	StartTime     webapi.Time                  `json:"startTime"`
	FinishTime    webapi.Time                  `json:"finishTime"`
	URL           string                       `json:"url,omitempty"`
	Definition    *DefinitionReference         `json:"definition,omitempty"`
	Project       *webapi.TeamProjectReference `json:"project,omitempty"`
	URI           string                       `json:"uri,omitempty"`
	SourceBranch  string                       `json:"sourceBranch,omitempty"`
	SourceVersion string                       `json:"sourceVersion,omitempty"`
	Queue         *AgentPoolQueue              `json:"queue,omitempty"`
	Priority      string                       `json:"priority,omitempty"`
	Reason        string                       `json:"reason,omitempty"`
	RequestedFor  *webapi.IdentityRef          `json:"requestedFor,omitempty"`
	RequestedBy   *webapi.IdentityRef          `json:"requestedBy,omitempty"`
	Parameters    string                       `json:"parameters,omitempty"`
	Tags          []string                     `json:"tags,omitempty"`
	Repository    *Repository                  `json:"repository,omitempty"`
	KeepForever   bool                         `json:"keepForever,omitempty"`
	Links         webapi.ReferenceLinks        `json:"_links,omitempty"`
}

// DefinitionReference is a shallow reference to a build definition.
type DefinitionReference struct {
	ID          int    `json:"id"`
	Name        string `json:"name,omitempty"`
	URL         string `json:"url,omitempty"`
	Path        string `json:"path,omitempty"`
	Revision    int    `json:"revision,omitempty"`
	Type        string `json:"type,omitempty"`
	QueueStatus string `json:"queueStatus,omitempty"`
}

// AgentPoolQueue is the queue a build is run on.
type AgentPoolQueue struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Repository is the repository a build is run for.
type Repository struct {
	ID                 string `json:"id"`
	Type               string `json:"type"`
	Name               string `json:"name,omitempty"`
	URL                string `json:"url,omitempty"`
	DefaultBranch      string `json:"defaultBranch,omitempty"`
	Clean              string `json:"clean,omitempty"`
	CheckoutSubmodules bool   `json:"checkoutSubmodules,omitempty"`
}

// Definition is a build definition, a.k.a pipeline in the classic editor.
type Definition struct {
	DefinitionReference
	Description       string                       `json:"description,omitempty"`
	BuildNumberFormat string                       `json:"buildNumberFormat,omitempty"`
	CreatedDate       webapi.Time                  `json:"createdDate"`
	AuthoredBy        *webapi.IdentityRef          `json:"authoredBy,omitempty"`
	Project           *webapi.TeamProjectReference `json:"project,omitempty"`
	Queue             *AgentPoolQueue              `json:"queue,omitempty"`
	Repository        *Repository                  `json:"repository,omitempty"`
	Process           *DefinitionProcess           `json:"process,omitempty"`
	Variables         map[string]Variable          `json:"variables,omitempty"`
	Tags              []string                     `json:"tags,omitempty"`
	Links             webapi.ReferenceLinks        `json:"_links,omitempty"`
}

// DefinitionProcess describes how a definition is run. Type 2 means the
// definition is defined by a YAML file.
type DefinitionProcess struct {
	Type         int    `json:"type"`
	YAMLFilename string `json:"yamlFilename,omitempty"`
}

// Variable is a build variable.
type Variable struct {
	Value         string `json:"value"`
	IsSecret      bool   `json:"isSecret,omitempty"`
	AllowOverride bool   `json:"allowOverride,omitempty"`
}

// QueueBuildRequest holds the data needed to queue a build.
type QueueBuildRequest struct {
	Definition    DefinitionReference `json:"definition"`
	SourceBranch  string              `json:"sourceBranch,omitempty"`
	SourceVersion string              `json:"sourceVersion,omitempty"`
	// Parameters is a JSON encoded dictionary of variable values.
	Parameters string   `json:"parameters,omitempty"`
	Reason     string   `json:"reason,omitempty"`
	Tags       []string `json:"tags,omitempty"`
}

// UpdateBuildRequest holds the fields of a build that can be updated.
type UpdateBuildRequest struct {
	Status            string `json:"status,omitempty"`
	KeepForever       *bool  `json:"keepForever,omitempty"`
	RetainedByRelease *bool  `json:"retainedByRelease,omitempty"`
}

// Log is a reference to a build log.
type Log struct {
	ID            int         `json:"id"`
	Type          string      `json:"type,omitempty"`
	URL           string      `json:"url,omitempty"`
	LineCount     int64       `json:"lineCount,omitempty"`
	CreatedOn     webapi.Time `json:"createdOn"`
	LastChangedOn webapi.Time `json:"lastChangedOn"`
}

// Change is a source change associated with a build.
type Change struct {
	ID         string              `json:"id"`
	Message    string              `json:"message,omitempty"`
	Type       string              `json:"type,omitempty"`
	Author     *webapi.IdentityRef `json:"author,omitempty"`
	Timestamp  webapi.Time         `json:"timestamp"`
	Location   string              `json:"location,omitempty"`
	DisplayURI string              `json:"displayUri,omitempty"`
}

// Timeline is the tree of stages, jobs and tasks of a build.
type Timeline struct {
	ID            string           `json:"id"`
	ChangeID      int              `json:"changeId"`
	LastChangedBy string           `json:"lastChangedBy,omitempty"`
	LastChangedOn webapi.Time      `json:"lastChangedOn"`
	Records       []TimelineRecord `json:"records"`
	URL           string           `json:"url,omitempty"`
}

// TimelineRecord is a single stage, job or task of a timeline.
type TimelineRecord struct {
	ID           string      `json:"id"`
	ParentID     string      `json:"parentId,omitempty"`
	Type         string      `json:"type"`
	Name         string      `json:"name"`
	State        string      `json:"state,omitempty"`
	Result       string      `json:"result,omitempty"`
	StartTime    webapi.Time `json:"startTime"`
	FinishTime   webapi.Time `json:"finishTime"`
	Order        int         `json:"order,omitempty"`
	ErrorCount   int         `json:"errorCount,omitempty"`
	WarningCount int         `json:"warningCount,omitempty"`
	Log          *Log        `json:"log,omitempty"`
}

// Artifact is an artifact produced by a build.
type Artifact struct {
	ID       int              `json:"id"`
	Name     string           `json:"name"`
	Source   string           `json:"source,omitempty"`
	Resource ArtifactResource `json:"resource"`
}

// ArtifactResource describes where an artifact is stored.
type ArtifactResource struct {
	Type        string            `json:"type,omitempty"`
	Data        string            `json:"data,omitempty"`
	URL         string            `json:"url,omitempty"`
	DownloadURL string            `json:"downloadUrl,omitempty"`
	Properties  map[string]string `json:"properties,omitempty"`
}

// GetBuildsOptions filters the result of GetBuilds.
type GetBuildsOptions struct {
	Definitions            []int    `url:"definitions,comma,omitempty"`
	BranchName             string   `url:"branchName,omitempty"`
	StatusFilter           string   `url:"statusFilter,omitempty"`
	ResultFilter           string   `url:"resultFilter,omitempty"`
	TagFilters             []string `url:"tagFilters,comma,omitempty"`
	RequestedFor           string   `url:"requestedFor,omitempty"`
	ReasonFilter           string   `url:"reasonFilter,omitempty"`
	Top                    int      `url:"$top,omitempty"`
	MaxBuildsPerDefinition int      `url:"maxBuildsPerDefinition,omitempty"`
	QueryOrder             string   `url:"queryOrder,omitempty"`
	ContinuationToken      string   `url:"continuationToken,omitempty"`
}

// GetDefinitionsOptions filters the result of GetBuildDefinitions.
type GetDefinitionsOptions struct {
	Name                string `url:"name,omitempty"`
	Path                string `url:"path,omitempty"`
	RepositoryID        string `url:"repositoryId,omitempty"`
	RepositoryType      string `url:"repositoryType,omitempty"`
	Top                 int    `url:"$top,omitempty"`
	IncludeLatestBuilds bool   `url:"includeLatestBuilds,omitempty"`
	ContinuationToken   string `url:"continuationToken,omitempty"`
}
