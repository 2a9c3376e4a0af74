// Package feedmanagement implements the feed management area of the Azure
// DevOps REST API, which manages Azure Artifacts feeds.
package feedmanagement

import (
	"context"
	"fmt"
	"net/url"

	"github.com/iver-wharf/azuredevops-go/pkg/connection"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

const apiVersion = "7.1-preview.1"

// Client is used to talk with the feed management area of the Azure DevOps
// API.
//
// Feeds are project scoped when the connection has a project, and
// organization scoped otherwise.
type Client interface {
	GetFeeds(ctx context.Context, opts *GetFeedsOptions) ([]Feed, error)
	// GetFeed gets a feed by its name or ID.
	GetFeed(ctx context.Context, feedID string) (Feed, error)
	CreateFeed(ctx context.Context, feed NewFeed) (Feed, error)
	UpdateFeed(ctx context.Context, feedID string, update FeedUpdate) (Feed, error)
	DeleteFeed(ctx context.Context, feedID string) error
	GetFeedPermissions(ctx context.Context, feedID string) ([]FeedPermission, error)
	GetFeedViews(ctx context.Context, feedID string) ([]FeedView, error)
	CreateFeedView(ctx context.Context, feedID string, view FeedView) (FeedView, error)
	DeleteFeedView(ctx context.Context, feedID, viewID string) error
}

type client struct {
	conn *connection.Connection
}

// NewClient creates a new feed management Client.
func NewClient(conn *connection.Connection) Client {
	return &client{conn: conn}
}

func (c *client) url(queries interface{}, format string, values ...interface{}) (*url.URL, error) {
	if c.conn.Project == "" {
		return c.conn.OrganizationURL(connection.ServiceFeeds, apiVersion, queries, format, values...)
	}
	return c.conn.ProjectURL(connection.ServiceFeeds, apiVersion, queries, format, values...)
}

func (c *client) GetFeeds(ctx context.Context, opts *GetFeedsOptions) ([]Feed, error) {
	u, err := c.url(opts, "packaging/feeds")
	if err != nil {
		return nil, err
	}
	var feeds webapi.List[Feed]
	if err := c.conn.GetUnmarshalJSON(ctx, &feeds, u); err != nil {
		return nil, fmt.Errorf("get feeds: %w", err)
	}
	return feeds.Value, nil
}

func (c *client) GetFeed(ctx context.Context, feedID string) (Feed, error) {
	u, err := c.url(nil, "packaging/feeds/%s", feedID)
	if err != nil {
		return Feed{}, err
	}
	var feed Feed
	if err := c.conn.GetUnmarshalJSON(ctx, &feed, u); err != nil {
		return Feed{}, fmt.Errorf("get feed %q: %w", feedID, err)
	}
	return feed, nil
}

func (c *client) CreateFeed(ctx context.Context, feed NewFeed) (Feed, error) {
	u, err := c.url(nil, "packaging/feeds")
	if err != nil {
		return Feed{}, err
	}
	var created Feed
	if err := c.conn.PostJSON(ctx, &created, u, feed); err != nil {
		return Feed{}, fmt.Errorf("create feed %q: %w", feed.Name, err)
	}
	return created, nil
}

func (c *client) UpdateFeed(ctx context.Context, feedID string, update FeedUpdate) (Feed, error) {
	u, err := c.url(nil, "packaging/feeds/%s", feedID)
	if err != nil {
		return Feed{}, err
	}
	var updated Feed
	if err := c.conn.PatchJSON(ctx, &updated, u, update); err != nil {
		return Feed{}, fmt.Errorf("update feed %q: %w", feedID, err)
	}
	return updated, nil
}

func (c *client) DeleteFeed(ctx context.Context, feedID string) error {
	u, err := c.url(nil, "packaging/feeds/%s", feedID)
	if err != nil {
		return err
	}
	if err := c.conn.Delete(ctx, nil, u); err != nil {
		return fmt.Errorf("delete feed %q: %w", feedID, err)
	}
	return nil
}

func (c *client) GetFeedPermissions(ctx context.Context, feedID string) ([]FeedPermission, error) {
	u, err := c.url(nil, "packaging/feeds/%s/permissions", feedID)
	if err != nil {
		return nil, err
	}
	var permissions webapi.List[FeedPermission]
	if err := c.conn.GetUnmarshalJSON(ctx, &permissions, u); err != nil {
		return nil, fmt.Errorf("get permissions of feed %q: %w", feedID, err)
	}
	return permissions.Value, nil
}

func (c *client) GetFeedViews(ctx context.Context, feedID string) ([]FeedView, error) {
	u, err := c.url(nil, "packaging/feeds/%s/views", feedID)
	if err != nil {
		return nil, err
	}
	var views webapi.List[FeedView]
	if err := c.conn.GetUnmarshalJSON(ctx, &views, u); err != nil {
		return nil, fmt.Errorf("get views of feed %q: %w", feedID, err)
	}
	return views.Value, nil
}

func (c *client) CreateFeedView(ctx context.Context, feedID string, view FeedView) (FeedView, error) {
	if view.Type == "" {
		view.Type = ViewTypeRelease
	}
	u, err := c.url(nil, "packaging/feeds/%s/views", feedID)
	if err != nil {
		return FeedView{}, err
	}
	var created FeedView
	if err := c.conn.PostJSON(ctx, &created, u, view); err != nil {
		return FeedView{}, fmt.Errorf("create view %q in feed %q: %w", view.Name, feedID, err)
	}
	return created, nil
}

func (c *client) DeleteFeedView(ctx context.Context, feedID, viewID string) error {
	u, err := c.url(nil, "packaging/feeds/%s/views/%s", feedID, viewID)
	if err != nil {
		return err
	}
	if err := c.conn.Delete(ctx, nil, u); err != nil {
		return fmt.Errorf("delete view %q of feed %q: %w", viewID, feedID, err)
	}
	return nil
}
