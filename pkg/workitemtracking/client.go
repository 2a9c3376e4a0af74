// Package workitemtracking implements the work item tracking area of the
// Azure DevOps REST API.
package workitemtracking

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"github.com/iver-wharf/azuredevops-go/pkg/connection"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

const (
	apiVersion         = "7.1"
	commentsAPIVersion = "7.1-preview.4"

	// MaxWorkItemsPerRequest is the most work items GetWorkItems can get at
	// once.
	MaxWorkItemsPerRequest = 200
)

// Client is used to talk with the work item tracking area of the Azure
// DevOps API.
type Client interface {
	GetWorkItem(ctx context.Context, id int, opts *GetWorkItemsOptions) (WorkItem, error)
	// GetWorkItems gets up to MaxWorkItemsPerRequest work items by ID.
	GetWorkItems(ctx context.Context, ids []int, opts *GetWorkItemsOptions) ([]WorkItem, error)
	// CreateWorkItem creates a work item of the given type, e.g "Bug", with
	// the fields set by the patch document.
	CreateWorkItem(ctx context.Context, workItemType string, patch []webapi.JSONPatchOperation) (WorkItem, error)
	UpdateWorkItem(ctx context.Context, id int, patch []webapi.JSONPatchOperation) (WorkItem, error)
	// DeleteWorkItem moves a work item to the recycle bin, or deletes it
	// permanently if destroy is true.
	DeleteWorkItem(ctx context.Context, id int, destroy bool) (WorkItemDelete, error)
	// QueryByWiql runs a Work Item Query Language query, returning references
	// to the matching work items.
	QueryByWiql(ctx context.Context, query string, top int) (WorkItemQueryResult, error)
	GetWorkItemTypes(ctx context.Context) ([]WorkItemType, error)
	GetFields(ctx context.Context) ([]Field, error)
	GetComments(ctx context.Context, workItemID int, opts *GetCommentsOptions) (CommentList, error)
	AddComment(ctx context.Context, workItemID int, text string) (Comment, error)
}

type client struct {
	conn *connection.Connection
}

// NewClient creates a new work item tracking Client.
func NewClient(conn *connection.Connection) Client {
	return &client{conn: conn}
}

type workItemsQuery struct {
	IDs []int `url:"ids,comma"`
	GetWorkItemsOptions
}

func (c *client) url(queries interface{}, format string, values ...interface{}) (*url.URL, error) {
	return c.conn.ProjectURL(connection.ServiceDefault, apiVersion, queries, format, values...)
}

func (c *client) GetWorkItem(ctx context.Context, id int, opts *GetWorkItemsOptions) (WorkItem, error) {
	u, err := c.url(opts, "wit/workitems/%d", id)
	if err != nil {
		return WorkItem{}, err
	}
	var workItem WorkItem
	if err := c.conn.GetUnmarshalJSON(ctx, &workItem, u); err != nil {
		return WorkItem{}, fmt.Errorf("get work item %d: %w", id, err)
	}
	return workItem, nil
}

func (c *client) GetWorkItems(ctx context.Context, ids []int, opts *GetWorkItemsOptions) ([]WorkItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > MaxWorkItemsPerRequest {
		return nil, fmt.Errorf("at most %d work items can be requested at once, got %d", MaxWorkItemsPerRequest, len(ids))
	}
	q := workItemsQuery{IDs: ids}
	if opts != nil {
		q.GetWorkItemsOptions = *opts
	}
	u, err := c.url(q, "wit/workitems")
	if err != nil {
		return nil, err
	}
	var workItems webapi.List[WorkItem]
	if err := c.conn.GetUnmarshalJSON(ctx, &workItems, u); err != nil {
		return nil, fmt.Errorf("get work items: %w", err)
	}
	return workItems.Value, nil
}

func (c *client) CreateWorkItem(ctx context.Context, workItemType string, patch []webapi.JSONPatchOperation) (WorkItem, error) {
	if workItemType == "" {
		return WorkItem{}, errors.New("work item type must not be empty")
	}
	u, err := c.url(nil, "wit/workitems/$%s", workItemType)
	if err != nil {
		return WorkItem{}, err
	}
	var workItem WorkItem
	if err := c.conn.PostJSONPatch(ctx, &workItem, u, patch); err != nil {
		return WorkItem{}, fmt.Errorf("create work item of type %q: %w", workItemType, err)
	}
	return workItem, nil
}

func (c *client) UpdateWorkItem(ctx context.Context, id int, patch []webapi.JSONPatchOperation) (WorkItem, error) {
	u, err := c.url(nil, "wit/workitems/%d", id)
	if err != nil {
		return WorkItem{}, err
	}
	var workItem WorkItem
	if err := c.conn.PatchJSONPatch(ctx, &workItem, u, patch); err != nil {
		return WorkItem{}, fmt.Errorf("update work item %d: %w", id, err)
	}
	return workItem, nil
}

func (c *client) DeleteWorkItem(ctx context.Context, id int, destroy bool) (WorkItemDelete, error) {
	q := url.Values{}
	if destroy {
		q.Set("destroy", "true")
	}
	u, err := c.url(q, "wit/workitems/%d", id)
	if err != nil {
		return WorkItemDelete{}, err
	}
	var deleted WorkItemDelete
	if err := c.conn.Delete(ctx, &deleted, u); err != nil {
		return WorkItemDelete{}, fmt.Errorf("delete work item %d: %w", id, err)
	}
	return deleted, nil
}

func (c *client) QueryByWiql(ctx context.Context, query string, top int) (WorkItemQueryResult, error) {
	q := url.Values{}
	if top > 0 {
		q.Set("$top", strconv.Itoa(top))
	}
	u, err := c.url(q, "wit/wiql")
	if err != nil {
		return WorkItemQueryResult{}, err
	}
	var result WorkItemQueryResult
	if err := c.conn.PostJSON(ctx, &result, u, Wiql{Query: query}); err != nil {
		return WorkItemQueryResult{}, fmt.Errorf("query work items: %w", err)
	}
	return result, nil
}

func (c *client) GetWorkItemTypes(ctx context.Context) ([]WorkItemType, error) {
	u, err := c.url(nil, "wit/workitemtypes")
	if err != nil {
		return nil, err
	}
	var types webapi.List[WorkItemType]
	if err := c.conn.GetUnmarshalJSON(ctx, &types, u); err != nil {
		return nil, fmt.Errorf("get work item types: %w", err)
	}
	return types.Value, nil
}

func (c *client) GetFields(ctx context.Context) ([]Field, error) {
	u, err := c.url(nil, "wit/fields")
	if err != nil {
		return nil, err
	}
	var fields webapi.List[Field]
	if err := c.conn.GetUnmarshalJSON(ctx, &fields, u); err != nil {
		return nil, fmt.Errorf("get fields: %w", err)
	}
	return fields.Value, nil
}

func (c *client) GetComments(ctx context.Context, workItemID int, opts *GetCommentsOptions) (CommentList, error) {
	u, err := c.conn.ProjectURL(connection.ServiceDefault, commentsAPIVersion, opts, "wit/workItems/%d/comments", workItemID)
	if err != nil {
		return CommentList{}, err
	}
	var comments CommentList
	if err := c.conn.GetUnmarshalJSON(ctx, &comments, u); err != nil {
		return CommentList{}, fmt.Errorf("get comments of work item %d: %w", workItemID, err)
	}
	return comments, nil
}

func (c *client) AddComment(ctx context.Context, workItemID int, text string) (Comment, error) {
	u, err := c.conn.ProjectURL(connection.ServiceDefault, commentsAPIVersion, nil, "wit/workItems/%d/comments", workItemID)
	if err != nil {
		return Comment{}, err
	}
	var comment Comment
	if err := c.conn.PostJSON(ctx, &comment, u, map[string]string{"text": text}); err != nil {
		return Comment{}, fmt.Errorf("add comment to work item %d: %w", workItemID, err)
	}
	return comment, nil
}

// SetFields builds a patch document adding the given fields, sorted by
// name, for use with CreateWorkItem and UpdateWorkItem.
func SetFields(fields map[string]interface{}) []webapi.JSONPatchOperation {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	patch := make([]webapi.JSONPatchOperation, 0, len(fields))
	for _, name := range names {
		patch = append(patch, webapi.JSONPatchOperation{
			Op:    webapi.OpAdd,
			Path:  "/fields/" + name,
			Value: fields[name],
		})
	}
	return patch
}
