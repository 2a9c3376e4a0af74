// Package graph implements the graph area of the Azure DevOps REST API, which
// manages the users and groups of an organization.
package graph

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/iver-wharf/azuredevops-go/pkg/connection"
	"github.com/iver-wharf/azuredevops-go/pkg/requests"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

const (
	apiVersion = "7.1-preview.1"

	continuationTokenHeader = "X-MS-ContinuationToken"
)

// Client is used to talk with the graph area of the Azure DevOps API.
type Client interface {
	// GetUsers gets a single page of users. Pass the continuation token of the
	// previous page in opts to get the next one.
	GetUsers(ctx context.Context, opts *ListOptions) (Page[User], error)
	GetUser(ctx context.Context, descriptor string) (User, error)
	// GetGroups gets a single page of groups. Pass the continuation token of
	// the previous page in opts to get the next one.
	GetGroups(ctx context.Context, opts *ListOptions) (Page[Group], error)
	GetGroup(ctx context.Context, descriptor string) (Group, error)
	// CreateGroup creates a group in the organization, or in the project
	// identified by scopeDescriptor if not empty.
	CreateGroup(ctx context.Context, scopeDescriptor string, group NewGroup) (Group, error)
	DeleteGroup(ctx context.Context, descriptor string) error
	// GetDescriptor resolves the descriptor of a storage key, such as the ID
	// of a user or project.
	GetDescriptor(ctx context.Context, storageKey string) (Descriptor, error)
}

type client struct {
	conn *connection.Connection
}

// NewClient creates a new graph Client.
func NewClient(conn *connection.Connection) Client {
	return &client{conn: conn}
}

func (c *client) url(queries interface{}, format string, values ...interface{}) (*url.URL, error) {
	return c.conn.OrganizationURL(connection.ServiceVSSPS, apiVersion, queries, format, values...)
}

func (c *client) GetUsers(ctx context.Context, opts *ListOptions) (Page[User], error) {
	u, err := c.url(opts, "graph/users")
	if err != nil {
		return Page[User]{}, err
	}
	page, err := getPage[User](ctx, c.conn, u)
	if err != nil {
		return Page[User]{}, fmt.Errorf("get users: %w", err)
	}
	return page, nil
}

func (c *client) GetUser(ctx context.Context, descriptor string) (User, error) {
	u, err := c.url(nil, "graph/users/%s", descriptor)
	if err != nil {
		return User{}, err
	}
	var user User
	if err := c.conn.GetUnmarshalJSON(ctx, &user, u); err != nil {
		return User{}, fmt.Errorf("get user %q: %w", descriptor, err)
	}
	return user, nil
}

func (c *client) GetGroups(ctx context.Context, opts *ListOptions) (Page[Group], error) {
	u, err := c.url(opts, "graph/groups")
	if err != nil {
		return Page[Group]{}, err
	}
	page, err := getPage[Group](ctx, c.conn, u)
	if err != nil {
		return Page[Group]{}, fmt.Errorf("get groups: %w", err)
	}
	return page, nil
}

func (c *client) GetGroup(ctx context.Context, descriptor string) (Group, error) {
	u, err := c.url(nil, "graph/groups/%s", descriptor)
	if err != nil {
		return Group{}, err
	}
	var group Group
	if err := c.conn.GetUnmarshalJSON(ctx, &group, u); err != nil {
		return Group{}, fmt.Errorf("get group %q: %w", descriptor, err)
	}
	return group, nil
}

func (c *client) CreateGroup(ctx context.Context, scopeDescriptor string, group NewGroup) (Group, error) {
	q := url.Values{}
	if scopeDescriptor != "" {
		q.Set("scopeDescriptor", scopeDescriptor)
	}
	u, err := c.url(q, "graph/groups")
	if err != nil {
		return Group{}, err
	}
	var created Group
	if err := c.conn.PostJSON(ctx, &created, u, group); err != nil {
		return Group{}, fmt.Errorf("create group %q: %w", group.DisplayName, err)
	}
	return created, nil
}

func (c *client) DeleteGroup(ctx context.Context, descriptor string) error {
	u, err := c.url(nil, "graph/groups/%s", descriptor)
	if err != nil {
		return err
	}
	if err := c.conn.Delete(ctx, nil, u); err != nil {
		return fmt.Errorf("delete group %q: %w", descriptor, err)
	}
	return nil
}

func (c *client) GetDescriptor(ctx context.Context, storageKey string) (Descriptor, error) {
	u, err := c.url(nil, "graph/descriptors/%s", storageKey)
	if err != nil {
		return Descriptor{}, err
	}
	var descriptor Descriptor
	if err := c.conn.GetUnmarshalJSON(ctx, &descriptor, u); err != nil {
		return Descriptor{}, fmt.Errorf("get descriptor of %q: %w", storageKey, err)
	}
	return descriptor, nil
}

func getPage[T any](ctx context.Context, conn *connection.Connection, u *url.URL) (Page[T], error) {
	resp, err := conn.Do(ctx, requests.Request{Method: http.MethodGet, URL: u})
	if err != nil {
		return Page[T]{}, err
	}
	var list webapi.List[T]
	if err := resp.DecodeJSON(&list); err != nil {
		return Page[T]{}, err
	}
	return Page[T]{
		Items:             list.Value,
		ContinuationToken: resp.Header.Get(continuationTokenHeader),
	}, nil
}

// AllUsers gets every user by following continuation tokens.
func AllUsers(ctx context.Context, c Client, subjectTypes ...string) ([]User, error) {
	opts := ListOptions{SubjectTypes: subjectTypes}
	var users []User
	for {
		page, err := c.GetUsers(ctx, &opts)
		if err != nil {
			return nil, err
		}
		users = append(users, page.Items...)
		if page.ContinuationToken == "" {
			return users, nil
		}
		opts.ContinuationToken = page.ContinuationToken
	}
}

// AllGroups gets every group by following continuation tokens.
func AllGroups(ctx context.Context, c Client, subjectTypes ...string) ([]Group, error) {
	opts := ListOptions{SubjectTypes: subjectTypes}
	var groups []Group
	for {
		page, err := c.GetGroups(ctx, &opts)
		if err != nil {
			return nil, err
		}
		groups = append(groups, page.Items...)
		if page.ContinuationToken == "" {
			return groups, nil
		}
		opts.ContinuationToken = page.ContinuationToken
	}
}
