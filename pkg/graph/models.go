package graph

import "github.com/iver-wharf/azuredevops-go/pkg/webapi"

// Subject kinds, as found in Subject.SubjectKind.
const (
	SubjectKindUser  = "user"
	SubjectKindGroup = "group"
)

// Subject holds the fields shared by users and groups.
type Subject struct {
	Descriptor    string                `json:"descriptor"`
	DisplayName   string                `json:"displayName"`
	URL           string                `json:"url,omitempty"`
	Origin        string                `json:"origin,omitempty"`
	OriginID      string                `json:"originId,omitempty"`
	SubjectKind   string                `json:"subjectKind,omitempty"`
	Domain        string                `json:"domain,omitempty"`
	MailAddress   string                `json:"mailAddress,omitempty"`
	PrincipalName string                `json:"principalName,omitempty"`
	Links         webapi.ReferenceLinks `json:"_links,omitempty"`
}

// User is a graph user.
type User struct {
	Subject
	DirectoryAlias string `json:"directoryAlias,omitempty"`
	MetaType       string `json:"metaType,omitempty"`
}

// Group is a graph group.
type Group struct {
	Subject
	Description string `json:"description,omitempty"`
}

// NewGroup holds the data needed to create a VSTS group.
type NewGroup struct {
	DisplayName string `json:"displayName"`
	Description string `json:"description,omitempty"`
}

// Page is a single page of a paged graph listing. ContinuationToken is empty
// on the last page.
type Page[T any] struct {
	Items             []T
	ContinuationToken string
}

// Descriptor is the result of resolving a storage key.
type Descriptor struct {
	Value string                `json:"value"`
	Links webapi.ReferenceLinks `json:"_links,omitempty"`
}

// ListOptions filters and pages GetUsers and GetGroups.
type ListOptions struct {
	// SubjectTypes limits the result to the given subject types, e.g "aad"
	// and "msa" for users or "vssgp" and "aadgp" for groups.
	SubjectTypes      []string `url:"subjectTypes,comma,omitempty"`
	ScopeDescriptor   string   `url:"scopeDescriptor,omitempty"`
	ContinuationToken string   `url:"continuationToken,omitempty"`
}
