package release

import "github.com/iver-wharf/azuredevops-go/pkg/webapi"

// Approval statuses.
const (
	ApprovalStatusPending  = "pending"
	ApprovalStatusApproved = "approved"
	ApprovalStatusRejected = "rejected"
	ApprovalStatusSkipped  = "skipped"
	ApprovalStatusCanceled = "canceled"
)

// Release statuses.
const (
	StatusDraft     = "draft"
	StatusActive    = "active"
	StatusAbandoned = "abandoned"
)

// Definition is a release definition.
type Definition struct {
	ID                int                     `json:"id,omitempty"`
	Name              string                  `json:"name"`
	Path              string                  `json:"path,omitempty"`
	Revision          int                     `json:"revision,omitempty"`
	Description       string                  `json:"description,omitempty"`
	ReleaseNameFormat string                  `json:"releaseNameFormat,omitempty"`
	Environments      []DefinitionEnvironment `json:"environments,omitempty"`
	Artifacts         []Artifact              `json:"artifacts,omitempty"`
	Variables         map[string]Variable     `json:"variables,omitempty"`
	CreatedBy         *webapi.IdentityRef     `json:"createdBy,omitempty"`
	CreatedOn         *webapi.Time            `json:"createdOn,omitempty"`
	URL               string                  `json:"url,omitempty"`
	Links             webapi.ReferenceLinks   `json:"_links,omitempty"`
}

// DefinitionEnvironment is a stage of a release definition.
type DefinitionEnvironment struct {
	ID                  int                      `json:"id,omitempty"`
	Name                string                   `json:"name"`
	Rank                int                      `json:"rank"`
	Owner               *webapi.IdentityRef      `json:"owner,omitempty"`
	PreDeployApprovals  *DefinitionApprovals     `json:"preDeployApprovals,omitempty"`
	PostDeployApprovals *DefinitionApprovals     `json:"postDeployApprovals,omitempty"`
	DeployPhases        []map[string]interface{} `json:"deployPhases,omitempty"`
	Conditions          []map[string]interface{} `json:"conditions,omitempty"`
	Variables           map[string]Variable      `json:"variables,omitempty"`
	RetentionPolicy     map[string]interface{}   `json:"retentionPolicy,omitempty"`
}

// DefinitionApprovals are the approvals required before or after deploying
// to a stage.
type DefinitionApprovals struct {
	ApprovalOptions *ApprovalOptions         `json:"approvalOptions,omitempty"`
	Approvals       []DefinitionApprovalStep `json:"approvals"`
}

// ApprovalOptions configures how approvals of a stage are handled.
type ApprovalOptions struct {
	AutoTriggeredAndPreviousEnvironmentApprovedCanBeSkipped bool   `json:"autoTriggeredAndPreviousEnvironmentApprovedCanBeSkipped"`
	EnforceIdentityRevalidation                             bool   `json:"enforceIdentityRevalidation"`
	ExecutionOrder                                          string `json:"executionOrder,omitempty"`
	ReleaseCreatorCanBeApprover                             bool   `json:"releaseCreatorCanBeApprover"`
	RequiredApproverCount                                   int    `json:"requiredApproverCount"`
	TimeoutInMinutes                                        int    `json:"timeoutInMinutes"`
}

// DefinitionApprovalStep is a single approver of a stage. An automated step
// has no approver.
type DefinitionApprovalStep struct {
	ID               int                 `json:"id,omitempty"`
	Approver         *webapi.IdentityRef `json:"approver,omitempty"`
	IsAutomated      bool                `json:"isAutomated"`
	IsNotificationOn bool                `json:"isNotificationOn"`
	Rank             int                 `json:"rank"`
}

// Artifact is an artifact source of a release definition.
type Artifact struct {
	Alias               string                             `json:"alias"`
	Type                string                             `json:"type"`
	IsPrimary           bool                               `json:"isPrimary,omitempty"`
	DefinitionReference map[string]ArtifactSourceReference `json:"definitionReference,omitempty"`
}

// ArtifactSourceReference is a single value of an artifact definition
// reference, e.g the build definition or project.
type ArtifactSourceReference struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Variable is a release variable.
type Variable struct {
	Value         string `json:"value"`
	IsSecret      bool   `json:"isSecret,omitempty"`
	AllowOverride bool   `json:"allowOverride,omitempty"`
}

// Release is a single release created from a definition.
type Release struct {
	ID                int                         `json:"id"`
	Name              string                      `json:"name"`
	Status            string                      `json:"status"`
	Description       string                      `json:"description,omitempty"`
	CreatedOn         webapi.Time                 `json:"createdOn"`
	CreatedBy         *webapi.IdentityRef         `json:"createdBy,omitempty"`
	ReleaseDefinition *DefinitionShallowReference `json:"releaseDefinition,omitempty"`
	Environments      []Environment               `json:"environments,omitempty"`
	Variables         map[string]Variable         `json:"variables,omitempty"`
	URL               string                      `json:"url,omitempty"`
	Links             webapi.ReferenceLinks       `json:"_links,omitempty"`
}

// DefinitionShallowReference is a shallow reference to a release
// definition.
type DefinitionShallowReference struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Path string `json:"path,omitempty"`
	URL  string `json:"url,omitempty"`
}

// Environment is a stage of a release.
type Environment struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Rank   int    `json:"rank"`
}

// StartMetadata holds the data needed to create a release.
type StartMetadata struct {
	DefinitionID int                 `json:"definitionId"`
	Description  string              `json:"description,omitempty"`
	IsDraft      bool                `json:"isDraft,omitempty"`
	Artifacts    []ArtifactMetadata  `json:"artifacts,omitempty"`
	Variables    map[string]Variable `json:"variables,omitempty"`
}

// ArtifactMetadata selects the version of an artifact of a new release.
type ArtifactMetadata struct {
	Alias             string       `json:"alias"`
	InstanceReference BuildVersion `json:"instanceReference"`
}

// BuildVersion identifies an artifact version.
type BuildVersion struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// Approval is an approval of a release stage.
type Approval struct {
	ID                int                         `json:"id"`
	Revision          int                         `json:"revision"`
	ApprovalType      string                      `json:"approvalType"`
	Status            string                      `json:"status"`
	Comments          string                      `json:"comments,omitempty"`
	IsAutomated       bool                        `json:"isAutomated"`
	Approver          *webapi.IdentityRef         `json:"approver,omitempty"`
	ApprovedBy        *webapi.IdentityRef         `json:"approvedBy,omitempty"`
	Release           *ShallowReference           `json:"release,omitempty"`
	ReleaseDefinition *DefinitionShallowReference `json:"releaseDefinition,omitempty"`
	CreatedOn         webapi.Time                 `json:"createdOn"`
	URL               string                      `json:"url,omitempty"`
}

// ShallowReference is a shallow reference to a release.
type ShallowReference struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// ApprovalUpdate holds the fields of an approval that can be updated.
type ApprovalUpdate struct {
	Status   string `json:"status"`
	Comments string `json:"comments,omitempty"`
}

// GetDefinitionsOptions filters the result of GetReleaseDefinitions.
type GetDefinitionsOptions struct {
	SearchText string `url:"searchText,omitempty"`
	Path       string `url:"path,omitempty"`
	Expand     string `url:"$expand,omitempty"`
	Top        int    `url:"$top,omitempty"`
}

// GetReleasesOptions filters the result of GetReleases.
type GetReleasesOptions struct {
	DefinitionID int    `url:"definitionId,omitempty"`
	StatusFilter string `url:"statusFilter,omitempty"`
	SearchText   string `url:"searchText,omitempty"`
	Top          int    `url:"$top,omitempty"`
}

// GetApprovalsOptions filters the result of GetApprovals.
type GetApprovalsOptions struct {
	AssignedToFilter string `url:"assignedToFilter,omitempty"`
	StatusFilter     string `url:"statusFilter,omitempty"`
	ReleaseIDs       []int  `url:"releaseIdsFilter,comma,omitempty"`
	Top              int    `url:"top,omitempty"`
}
