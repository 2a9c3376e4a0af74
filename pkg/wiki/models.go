package wiki

import "github.com/google/uuid"

// Wiki types.
const (
	TypeProjectWiki = "projectWiki"
	TypeCodeWiki    = "codeWiki"
)

// Wiki is a project wiki or a wiki published from a Git repository.
type Wiki struct {
	ID           uuid.UUID           `json:"id"`
	Name         string              `json:"name"`
	Type         string              `json:"type"`
	ProjectID    uuid.UUID           `json:"projectId"`
	RepositoryID uuid.UUID           `json:"repositoryId"`
	MappedPath   string              `json:"mappedPath,omitempty"`
	RemoteURL    string              `json:"remoteUrl,omitempty"`
	URL          string              `json:"url,omitempty"`
	Versions     []VersionDescriptor `json:"versions,omitempty"`
}

// VersionDescriptor is a branch of a code wiki.
type VersionDescriptor struct {
	Version string `json:"version"`
}

// NewWiki holds the data needed to create a wiki. Code wikis also need
// RepositoryID, MappedPath and Version.
type NewWiki struct {
	Name         string             `json:"name"`
	ProjectID    string             `json:"projectId"`
	Type         string             `json:"type"`
	RepositoryID string             `json:"repositoryId,omitempty"`
	MappedPath   string             `json:"mappedPath,omitempty"`
	Version      *VersionDescriptor `json:"version,omitempty"`
}

// Page is a page of a wiki.
type Page struct {
	ID           int    `json:"id"`
	Path         string `json:"path"`
	Order        int    `json:"order"`
	GitItemPath  string `json:"gitItemPath,omitempty"`
	Content      string `json:"content,omitempty"`
	IsParentPage bool   `json:"isParentPage,omitempty"`
	RemoteURL    string `json:"remoteUrl,omitempty"`
	URL          string `json:"url,omitempty"`
	SubPages     []Page `json:"subPages,omitempty"`
}

// PageResponse is a page together with its version. The ETag must be given
// when updating the page.
type PageResponse struct {
	Page Page
	ETag string
}
