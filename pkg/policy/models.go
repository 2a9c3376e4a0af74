package policy

import (
	"github.com/google/uuid"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

// Well known policy type IDs.
var (
	TypeMinimumReviewers    = uuid.MustParse("fa4e907d-c16b-4a4c-9dfa-4906e5d171dd")
	TypeBuild               = uuid.MustParse("0609b952-1397-4640-95ec-e00a01b2c241")
	TypeCommentRequirements = uuid.MustParse("c6a1889d-b943-4856-b76f-9e46bb6b0df2")
	TypeRequiredReviewers   = uuid.MustParse("fd2167ab-b0be-447a-8ec8-39368250530e")
)

// Type is a kind of policy.
type Type struct {
	ID          uuid.UUID             `json:"id"`
	DisplayName string                `json:"displayName"`
	Description string                `json:"description,omitempty"`
	URL         string                `json:"url,omitempty"`
	Links       webapi.ReferenceLinks `json:"_links,omitempty"`
}

// TypeReference references a policy type by ID.
type TypeReference struct {
	ID          uuid.UUID `json:"id"`
	DisplayName string    `json:"displayName,omitempty"`
	URL         string    `json:"url,omitempty"`
}

// Configuration is a policy applied to a scope, such as a branch.
type Configuration struct {
	ID          int                    `json:"id,omitempty"`
	Revision    int                    `json:"revision,omitempty"`
	IsEnabled   bool                   `json:"isEnabled"`
	IsBlocking  bool                   `json:"isBlocking"`
	IsDeleted   bool                   `json:"isDeleted,omitempty"`
	Type        TypeReference          `json:"type"`
	Settings    map[string]interface{} `json:"settings"`
	CreatedBy   *webapi.IdentityRef    `json:"createdBy,omitempty"`
	CreatedDate *webapi.Time           `json:"createdDate,omitempty"`
	URL         string                 `json:"url,omitempty"`
}

// Scope is a single entry of the "scope" setting of most policies.
type Scope struct {
	RepositoryID string `json:"repositoryId,omitempty"`
	RefName      string `json:"refName,omitempty"`
	MatchKind    string `json:"matchKind,omitempty"`
}

// GetConfigurationsOptions filters the result of GetConfigurations.
type GetConfigurationsOptions struct {
	Scope      string `url:"scope,omitempty"`
	PolicyType string `url:"policyType,omitempty"`
	Top        int    `url:"$top,omitempty"`
}
