// Package wiki implements the wiki area of the Azure DevOps REST API.
package wiki

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/iver-wharf/azuredevops-go/pkg/connection"
	"github.com/iver-wharf/azuredevops-go/pkg/requests"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

const apiVersion = "7.1"

// Client is used to talk with the wiki area of the Azure DevOps API.
type Client interface {
	GetWikis(ctx context.Context) ([]Wiki, error)
	GetWiki(ctx context.Context, wikiNameOrID string) (Wiki, error)
	CreateWiki(ctx context.Context, wiki NewWiki) (Wiki, error)
	DeleteWiki(ctx context.Context, wikiNameOrID string) (Wiki, error)
	// GetPage gets a page by path, e.g "/Home", including its content.
	GetPage(ctx context.Context, wikiNameOrID, path string) (PageResponse, error)
	// CreateOrUpdatePage creates a page, or updates it if eTag is the
	// current version of the page.
	CreateOrUpdatePage(ctx context.Context, wikiNameOrID, path, content, eTag string) (PageResponse, error)
	DeletePage(ctx context.Context, wikiNameOrID, path string) (PageResponse, error)
}

type client struct {
	conn *connection.Connection
}

// NewClient creates a new wiki Client.
func NewClient(conn *connection.Connection) Client {
	return &client{conn: conn}
}

func (c *client) url(queries interface{}, format string, values ...interface{}) (*url.URL, error) {
	return c.conn.ProjectURL(connection.ServiceDefault, apiVersion, queries, format, values...)
}

func (c *client) GetWikis(ctx context.Context) ([]Wiki, error) {
	u, err := c.url(nil, "wiki/wikis")
	if err != nil {
		return nil, err
	}
	var wikis webapi.List[Wiki]
	if err := c.conn.GetUnmarshalJSON(ctx, &wikis, u); err != nil {
		return nil, fmt.Errorf("get wikis: %w", err)
	}
	return wikis.Value, nil
}

func (c *client) GetWiki(ctx context.Context, wikiNameOrID string) (Wiki, error) {
	u, err := c.url(nil, "wiki/wikis/%s", wikiNameOrID)
	if err != nil {
		return Wiki{}, err
	}
	var wiki Wiki
	if err := c.conn.GetUnmarshalJSON(ctx, &wiki, u); err != nil {
		return Wiki{}, fmt.Errorf("get wiki %q: %w", wikiNameOrID, err)
	}
	return wiki, nil
}

func (c *client) CreateWiki(ctx context.Context, wiki NewWiki) (Wiki, error) {
	if wiki.Type == "" {
		wiki.Type = TypeProjectWiki
	}
	u, err := c.url(nil, "wiki/wikis")
	if err != nil {
		return Wiki{}, err
	}
	var created Wiki
	if err := c.conn.PostJSON(ctx, &created, u, wiki); err != nil {
		return Wiki{}, fmt.Errorf("create wiki %q: %w", wiki.Name, err)
	}
	return created, nil
}

func (c *client) DeleteWiki(ctx context.Context, wikiNameOrID string) (Wiki, error) {
	u, err := c.url(nil, "wiki/wikis/%s", wikiNameOrID)
	if err != nil {
		return Wiki{}, err
	}
	var deleted Wiki
	if err := c.conn.Delete(ctx, &deleted, u); err != nil {
		return Wiki{}, fmt.Errorf("delete wiki %q: %w", wikiNameOrID, err)
	}
	return deleted, nil
}

func (c *client) GetPage(ctx context.Context, wikiNameOrID, path string) (PageResponse, error) {
	q := url.Values{"path": {path}, "includeContent": {"true"}}
	u, err := c.url(q, "wiki/wikis/%s/pages", wikiNameOrID)
	if err != nil {
		return PageResponse{}, err
	}
	page, err := c.sendPage(ctx, requests.Request{Method: http.MethodGet, URL: u})
	if err != nil {
		return PageResponse{}, fmt.Errorf("get page %q of wiki %q: %w", path, wikiNameOrID, err)
	}
	return page, nil
}

func (c *client) CreateOrUpdatePage(ctx context.Context, wikiNameOrID, path, content, eTag string) (PageResponse, error) {
	q := url.Values{"path": {path}}
	u, err := c.url(q, "wiki/wikis/%s/pages", wikiNameOrID)
	if err != nil {
		return PageResponse{}, err
	}
	req, err := requests.NewJSONRequest(http.MethodPut, u, map[string]string{"content": content})
	if err != nil {
		return PageResponse{}, err
	}
	if eTag != "" {
		req.Header.Set("If-Match", eTag)
	}
	page, err := c.sendPage(ctx, req)
	if err != nil {
		return PageResponse{}, fmt.Errorf("save page %q of wiki %q: %w", path, wikiNameOrID, err)
	}
	return page, nil
}

func (c *client) DeletePage(ctx context.Context, wikiNameOrID, path string) (PageResponse, error) {
	q := url.Values{"path": {path}}
	u, err := c.url(q, "wiki/wikis/%s/pages", wikiNameOrID)
	if err != nil {
		return PageResponse{}, err
	}
	page, err := c.sendPage(ctx, requests.Request{Method: http.MethodDelete, URL: u})
	if err != nil {
		return PageResponse{}, fmt.Errorf("delete page %q of wiki %q: %w", path, wikiNameOrID, err)
	}
	return page, nil
}

func (c *client) sendPage(ctx context.Context, req requests.Request) (PageResponse, error) {
	resp, err := c.conn.Do(ctx, req)
	if err != nil {
		return PageResponse{}, err
	}
	var page Page
	if err := resp.DecodeJSON(&page); err != nil {
		return PageResponse{}, err
	}
	return PageResponse{Page: page, ETag: resp.Header.Get("ETag")}, nil
}
