package workitemtracking

import "github.com/iver-wharf/azuredevops-go/pkg/webapi"

// Common field reference names.
const (
	FieldTitle         = "System.Title"
	FieldDescription   = "System.Description"
	FieldState         = "System.State"
	FieldAssignedTo    = "System.AssignedTo"
	FieldWorkItemType  = "System.WorkItemType"
	FieldAreaPath      = "System.AreaPath"
	FieldIterationPath = "System.IterationPath"
	FieldTags          = "System.Tags"
	FieldHistory       = "System.History"
)

// Expand options of work item requests.
const (
	ExpandNone      = "none"
	ExpandRelations = "relations"
	ExpandFields    = "fields"
	ExpandLinks     = "links"
	ExpandAll       = "all"
)

// WorkItem is a work item with its fields by reference name.
type WorkItem struct {
	ID        int                    `json:"id"`
	Rev       int                    `json:"rev"`
	Fields    map[string]interface{} `json:"fields"`
	Relations []WorkItemRelation     `json:"relations,omitempty"`
	URL       string                 `json:"url,omitempty"`
	Links     webapi.ReferenceLinks  `json:"_links,omitempty"`
}

// StringField returns a string field, or an empty string if the field is
// missing or not a string.
func (w WorkItem) StringField(referenceName string) string {
	s, _ := w.Fields[referenceName].(string)
	return s
}

// Title returns the System.Title field.
func (w WorkItem) Title() string {
	return w.StringField(FieldTitle)
}

// State returns the System.State field.
func (w WorkItem) State() string {
	return w.StringField(FieldState)
}

// WorkItemRelation links a work item to another work item or artifact.
type WorkItemRelation struct {
	Rel        string                 `json:"rel"`
	URL        string                 `json:"url"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// WorkItemDelete is a deleted work item in the recycle bin.
type WorkItemDelete struct {
	ID          int         `json:"id"`
	Code        int         `json:"code"`
	DeletedBy   string      `json:"deletedBy,omitempty"`
	DeletedDate webapi.Time `json:"deletedDate"`
	Name        string      `json:"name,omitempty"`
	Project     string      `json:"project,omitempty"`
	Type        string      `json:"type,omitempty"`
	URL         string      `json:"url,omitempty"`
}

// Wiql is a work item query.
type Wiql struct {
	Query string `json:"query"`
}

// WorkItemQueryResult is the result of a flat work item query.
type WorkItemQueryResult struct {
	QueryType       string              `json:"queryType"`
	QueryResultType string              `json:"queryResultType"`
	AsOf            webapi.Time         `json:"asOf"`
	Columns         []FieldReference    `json:"columns,omitempty"`
	WorkItems       []WorkItemReference `json:"workItems"`
}

// WorkItemReference references a work item by ID.
type WorkItemReference struct {
	ID  int    `json:"id"`
	URL string `json:"url,omitempty"`
}

// FieldReference references a field.
type FieldReference struct {
	ReferenceName string `json:"referenceName"`
	Name          string `json:"name"`
	URL           string `json:"url,omitempty"`
}

// WorkItemType is a type of work item, such as "Bug".
type WorkItemType struct {
	Name          string `json:"name"`
	ReferenceName string `json:"referenceName"`
	Description   string `json:"description,omitempty"`
	Color         string `json:"color,omitempty"`
	IsDisabled    bool   `json:"isDisabled,omitempty"`
	URL           string `json:"url,omitempty"`
}

// Field is a work item field definition.
type Field struct {
	Name          string `json:"name"`
	ReferenceName string `json:"referenceName"`
	Description   string `json:"description,omitempty"`
	Type          string `json:"type"`
	Usage         string `json:"usage,omitempty"`
	ReadOnly      bool   `json:"readOnly"`
	IsIdentity    bool   `json:"isIdentity,omitempty"`
	IsPicklist    bool   `json:"isPicklist,omitempty"`
	URL           string `json:"url,omitempty"`
}

// Comment is a comment on a work item.
type Comment struct {
	ID           int                 `json:"id"`
	WorkItemID   int                 `json:"workItemId"`
	Version      int                 `json:"version"`
	Text         string              `json:"text"`
	CreatedBy    *webapi.IdentityRef `json:"createdBy,omitempty"`
	CreatedDate  webapi.Time         `json:"createdDate"`
	ModifiedDate webapi.Time         `json:"modifiedDate"`
	URL          string              `json:"url,omitempty"`
}

// CommentList is a page of work item comments.
type CommentList struct {
	Comments          []Comment `json:"comments"`
	Count             int       `json:"count"`
	TotalCount        int       `json:"totalCount"`
	ContinuationToken string    `json:"continuationToken,omitempty"`
	NextPage          string    `json:"nextPage,omitempty"`
}

// GetWorkItemsOptions selects the fields of GetWorkItem and GetWorkItems.
type GetWorkItemsOptions struct {
	Fields []string `url:"fields,comma,omitempty"`
	AsOf   string   `url:"asOf,omitempty"`
	Expand string   `url:"$expand,omitempty"`
}

// GetCommentsOptions pages GetComments.
type GetCommentsOptions struct {
	Top               int    `url:"$top,omitempty"`
	ContinuationToken string `url:"continuationToken,omitempty"`
	Order             string `url:"order,omitempty"`
}
