package pipelines

import "github.com/iver-wharf/azuredevops-go/pkg/webapi"

// Run states.
const (
	RunStateUnknown    = "unknown"
	RunStateInProgress = "inProgress"
	RunStateCanceling  = "canceling"
	RunStateCompleted  = "completed"
)

// Run results.
const (
	RunResultUnknown   = "unknown"
	RunResultSucceeded = "succeeded"
	RunResultFailed    = "failed"
	RunResultCanceled  = "canceled"
)

// ConfigurationTypeYAML is the only supported pipeline configuration type
// when creating pipelines.
const ConfigurationTypeYAML = "yaml"

// RepositoryTypeAzureReposGit is the repository type of Azure Repos.
const RepositoryTypeAzureReposGit = "azureReposGit"

// Pipeline is a YAML pipeline.
type Pipeline struct {
	ID            int                    `json:"id"`
	Revision      int                    `json:"revision"`
	Name          string                 `json:"name"`
	Folder        string                 `json:"folder"`
	URL           string                 `json:"url,omitempty"`
	Configuration *PipelineConfiguration `json:"configuration,omitempty"`
	Links         webapi.ReferenceLinks  `json:"_links,omitempty"`
}

// PipelineConfiguration is where the pipeline definition is read from.
type PipelineConfiguration struct {
	Type       string               `json:"type"`
	Path       string               `json:"path,omitempty"`
	Repository *RepositoryReference `json:"repository,omitempty"`
}

// RepositoryReference references the repository of a pipeline
// configuration.
type RepositoryReference struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Type string `json:"type"`
}

// NewPipeline holds the data needed to create a pipeline.
type NewPipeline struct {
	Folder        string                `json:"folder,omitempty"`
	Name          string                `json:"name"`
	Configuration PipelineConfiguration `json:"configuration"`
}

// Run is a single run of a pipeline.
type Run struct {
	ID           int                   `json:"id"`
	Name         string                `json:"name"`
	State        string                `json:"state"`
	Result       string                `json:"result,omitempty"`
	CreatedDate  webapi.Time           `json:"createdDate"`
	FinishedDate webapi.Time           `json:"finishedDate"`
	URL          string                `json:"url,omitempty"`
	Pipeline     *PipelineReference    `json:"pipeline,omitempty"`
	Variables    map[string]Variable   `json:"variables,omitempty"`
	Links        webapi.ReferenceLinks `json:"_links,omitempty"`
}

// PipelineReference is a shallow reference to a pipeline.
type PipelineReference struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Folder string `json:"folder,omitempty"`
}

// Variable is a pipeline variable.
type Variable struct {
	Value    string `json:"value"`
	IsSecret bool   `json:"isSecret,omitempty"`
}

// RunParameters are the settings of a new pipeline run.
type RunParameters struct {
	Resources          *RunResources       `json:"resources,omitempty"`
	TemplateParameters map[string]string   `json:"templateParameters,omitempty"`
	Variables          map[string]Variable `json:"variables,omitempty"`
	StagesToSkip       []string            `json:"stagesToSkip,omitempty"`
	PreviewRun         bool                `json:"previewRun,omitempty"`
	YAMLOverride       string              `json:"yamlOverride,omitempty"`
}

// RunResources are the resources a run uses.
type RunResources struct {
	Repositories map[string]RepositoryResource `json:"repositories,omitempty"`
}

// RepositoryResource selects the version of a repository resource. The
// repository holding the pipeline definition is named "self".
type RepositoryResource struct {
	RefName string `json:"refName,omitempty"`
	Version string `json:"version,omitempty"`
}

// SignedURL is a pre-authorized URL for downloading content.
type SignedURL struct {
	// SignatureExpires is when access expires.
	SignatureExpires webapi.Time `json:"signatureExpires"`
	// URL is the URL to allow access to.
	URL string `json:"url"`
}

// Log is a single log of a run.
type Log struct {
	ID            int         `json:"id"`
	CreatedOn     webapi.Time `json:"createdOn"`
	LastChangedOn webapi.Time `json:"lastChangedOn"`
	LineCount     int64       `json:"lineCount"`
	SignedContent *SignedURL  `json:"signedContent,omitempty"`
	URL           string      `json:"url,omitempty"`
}

// LogCollection is the logs of a run.
type LogCollection struct {
	Logs          []Log      `json:"logs"`
	SignedContent *SignedURL `json:"signedContent,omitempty"`
	URL           string     `json:"url,omitempty"`
}

// Artifact is an artifact produced by a run.
type Artifact struct {
	Name          string     `json:"name"`
	SignedContent *SignedURL `json:"signedContent,omitempty"`
	URL           string     `json:"url,omitempty"`
}
