package feedmanagement

import (
	"github.com/google/uuid"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

// Feed roles, used by FeedPermission.Role.
const (
	RoleReader        = "reader"
	RoleCollaborator  = "collaborator"
	RoleContributor   = "contributor"
	RoleAdministrator = "administrator"
)

// Feed view types.
const (
	ViewTypeRelease  = "release"
	ViewTypeImplicit = "implicit"
)

// Feed is a container for packages.
type Feed struct {
	ID                         uuid.UUID             `json:"id"`
	Name                       string                `json:"name"`
	FullyQualifiedName         string                `json:"fullyQualifiedName,omitempty"`
	Description                string                `json:"description,omitempty"`
	URL                        string                `json:"url,omitempty"`
	UpstreamEnabled            bool                  `json:"upstreamEnabled"`
	HideDeletedPackageVersions bool                  `json:"hideDeletedPackageVersions"`
	BadgesEnabled              bool                  `json:"badgesEnabled"`
	IsReadOnly                 bool                  `json:"isReadOnly,omitempty"`
	UpstreamSources            []UpstreamSource      `json:"upstreamSources,omitempty"`
	Project                    *ProjectReference     `json:"project,omitempty"`
	Permissions                []FeedPermission      `json:"permissions,omitempty"`
	View                       *FeedView             `json:"view,omitempty"`
	DefaultViewID              *uuid.UUID            `json:"defaultViewId,omitempty"`
	Links                      webapi.ReferenceLinks `json:"_links,omitempty"`
}

// NewFeed holds the data needed to create a feed.
type NewFeed struct {
	Name                       string           `json:"name"`
	Description                string           `json:"description,omitempty"`
	UpstreamEnabled            bool             `json:"upstreamEnabled,omitempty"`
	HideDeletedPackageVersions bool             `json:"hideDeletedPackageVersions,omitempty"`
	UpstreamSources            []UpstreamSource `json:"upstreamSources,omitempty"`
}

// FeedUpdate holds the fields of a feed to change. Nil fields are left as
// they are.
type FeedUpdate struct {
	Name                       *string          `json:"name,omitempty"`
	Description                *string          `json:"description,omitempty"`
	UpstreamEnabled            *bool            `json:"upstreamEnabled,omitempty"`
	HideDeletedPackageVersions *bool            `json:"hideDeletedPackageVersions,omitempty"`
	BadgesEnabled              *bool            `json:"badgesEnabled,omitempty"`
	UpstreamSources            []UpstreamSource `json:"upstreamSources,omitempty"`
}

// UpstreamSource is a public or internal source packages are pulled from.
type UpstreamSource struct {
	ID                 string `json:"id,omitempty"`
	Name               string `json:"name"`
	Protocol           string `json:"protocol"`
	Location           string `json:"location"`
	UpstreamSourceType string `json:"upstreamSourceType"`
}

// ProjectReference references the project a feed is scoped to.
type ProjectReference struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Visibility string    `json:"visibility,omitempty"`
}

// FeedPermission is the role an identity has in a feed.
type FeedPermission struct {
	IdentityDescriptor string `json:"identityDescriptor"`
	IdentityID         string `json:"identityId,omitempty"`
	DisplayName        string `json:"displayName,omitempty"`
	Role               string `json:"role"`
	IsInheritedRole    bool   `json:"isInheritedRole,omitempty"`
}

// FeedView is a named subset of the packages of a feed, such as
// "@Release".
type FeedView struct {
	ID         string `json:"id,omitempty"`
	Name       string `json:"name"`
	Type       string `json:"type,omitempty"`
	Visibility string `json:"visibility,omitempty"`
	URL        string `json:"url,omitempty"`
}

// GetFeedsOptions filters the result of GetFeeds.
type GetFeedsOptions struct {
	FeedRole                string `url:"feedRole,omitempty"`
	IncludeDeletedUpstreams bool   `url:"includeDeletedUpstreams,omitempty"`
	IncludeURLs             bool   `url:"includeUrls,omitempty"`
}
