package serviceendpoint

import (
	"github.com/google/uuid"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

// Authorization schemes.
const (
	SchemeUsernamePassword = "UsernamePassword"
	SchemeToken            = "Token"
	SchemeServicePrincipal = "ServicePrincipal"
	SchemeNone             = "None"
)

// ServiceEndpoint is a connection to an external service, e.g a container
// registry or cloud subscription.
type ServiceEndpoint struct {
	ID                               string                 `json:"id,omitempty"`
	Name                             string                 `json:"name"`
	Type                             string                 `json:"type"`
	URL                              string                 `json:"url"`
	Description                      string                 `json:"description,omitempty"`
	Owner                            string                 `json:"owner,omitempty"`
	IsReady                          bool                   `json:"isReady,omitempty"`
	IsShared                         bool                   `json:"isShared,omitempty"`
	Authorization                    *EndpointAuthorization `json:"authorization,omitempty"`
	Data                             map[string]string      `json:"data,omitempty"`
	CreatedBy                        *webapi.IdentityRef    `json:"createdBy,omitempty"`
	ServiceEndpointProjectReferences []ProjectReference     `json:"serviceEndpointProjectReferences,omitempty"`
}

// EndpointAuthorization holds the credentials of a service endpoint.
// Secret parameters are never returned by the API.
type EndpointAuthorization struct {
	Scheme     string            `json:"scheme"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

// ProjectReference is a project a service endpoint is shared with.
type ProjectReference struct {
	ProjectReference ProjectRef `json:"projectReference"`
	Name             string     `json:"name"`
	Description      string     `json:"description,omitempty"`
}

// ProjectRef references a project by ID.
type ProjectRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name,omitempty"`
}

// GetServiceEndpointsOptions filters the result of GetServiceEndpoints.
type GetServiceEndpointsOptions struct {
	Type          string   `url:"type,omitempty"`
	AuthSchemes   []string `url:"authSchemes,comma,omitempty"`
	EndpointIDs   []string `url:"endpointIds,comma,omitempty"`
	IncludeFailed bool     `url:"includeFailed,omitempty"`
}
