// Package webapi contains types shared by several of the Azure DevOps REST
// API areas.
package webapi

import "github.com/google/uuid"

// List is the envelope Azure DevOps wraps collections in.
type List[T any] struct {
	Count int `json:"count"`
	Value []T `json:"value"`
}

// Link is a single hyperlink of a ReferenceLinks collection.
type Link struct {
	Href string `json:"href"`
}

// ReferenceLinks is a collection of REST reference links, found in the
// "_links" field of most resources.
type ReferenceLinks map[string]Link

// IdentityRef references a user or group.
type IdentityRef struct {
	ID             string         `json:"id,omitempty"`
	DisplayName    string         `json:"displayName,omitempty"`
	UniqueName     string         `json:"uniqueName,omitempty"`
	URL            string         `json:"url,omitempty"`
	ImageURL       string         `json:"imageUrl,omitempty"`
	Descriptor     string         `json:"descriptor,omitempty"`
	IsContainer    bool           `json:"isContainer,omitempty"`
	Inactive       bool           `json:"inactive,omitempty"`
	DirectoryAlias string         `json:"directoryAlias,omitempty"`
	ProfileURL     string         `json:"profileUrl,omitempty"`
	Links          ReferenceLinks `json:"_links,omitempty"`
}

// TeamProjectReference is a shallow reference to a project.
type TeamProjectReference struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	URL            string    `json:"url,omitempty"`
	State          string    `json:"state,omitempty"`
	Revision       int64     `json:"revision,omitempty"`
	Visibility     string    `json:"visibility,omitempty"`
	LastUpdateTime Time      `json:"lastUpdateTime,omitempty"`
}

// TeamReference is a shallow reference to a team.
type TeamReference struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	URL  string    `json:"url,omitempty"`
}

// OperationReference references a long running operation, such as the
// creation of a project.
type OperationReference struct {
	ID       uuid.UUID `json:"id"`
	Status   string    `json:"status"`
	URL      string    `json:"url"`
	PluginID uuid.UUID `json:"pluginId,omitempty"`
}

// JSONPatchOperation is a single operation of a JSON Patch document.
type JSONPatchOperation struct {
	Op    string      `json:"op"`
	Path  string      `json:"path"`
	From  string      `json:"from,omitempty"`
	Value interface{} `json:"value,omitempty"`
}

// JSON Patch operations.
const (
	OpAdd     = "add"
	OpRemove  = "remove"
	OpReplace = "replace"
	OpMove    = "move"
	OpCopy    = "copy"
	OpTest    = "test"
)

// WrappedError is the error body Azure DevOps responds with on failure.
type WrappedError struct {
	ID             string        `json:"$id,omitempty"`
	InnerException *WrappedError `json:"innerException,omitempty"`
	Message        string        `json:"message"`
	TypeName       string        `json:"typeName,omitempty"`
	TypeKey        string        `json:"typeKey,omitempty"`
	ErrorCode      int           `json:"errorCode,omitempty"`
	EventID        int           `json:"eventId,omitempty"`
}
