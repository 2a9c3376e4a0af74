// Package release implements the release area of the Azure DevOps REST API,
// which manages classic release definitions, releases and their approvals.
package release

import (
	"context"
	"fmt"
	"net/url"

	"github.com/iver-wharf/azuredevops-go/pkg/connection"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

const apiVersion = "7.1"

// Client is used to talk with the release area of the Azure DevOps API.
type Client interface {
	GetReleaseDefinitions(ctx context.Context, opts *GetDefinitionsOptions) ([]Definition, error)
	// GetReleaseDefinition gets a release definition, including the pre- and
	// post-deployment approvals of its stages.
	GetReleaseDefinition(ctx context.Context, definitionID int) (Definition, error)
	CreateReleaseDefinition(ctx context.Context, definition Definition) (Definition, error)
	DeleteReleaseDefinition(ctx context.Context, definitionID int) error
	GetReleases(ctx context.Context, opts *GetReleasesOptions) ([]Release, error)
	GetRelease(ctx context.Context, releaseID int) (Release, error)
	CreateRelease(ctx context.Context, metadata StartMetadata) (Release, error)
	// GetApprovals gets approvals, by default the pending approvals of the
	// authenticated user.
	GetApprovals(ctx context.Context, opts *GetApprovalsOptions) ([]Approval, error)
	// UpdateApproval approves or rejects an approval.
	UpdateApproval(ctx context.Context, approvalID int, update ApprovalUpdate) (Approval, error)
}

type client struct {
	conn *connection.Connection
}

// NewClient creates a new release Client.
func NewClient(conn *connection.Connection) Client {
	return &client{conn: conn}
}

func (c *client) url(queries interface{}, format string, values ...interface{}) (*url.URL, error) {
	return c.conn.ProjectURL(connection.ServiceVSRM, apiVersion, queries, format, values...)
}

func (c *client) GetReleaseDefinitions(ctx context.Context, opts *GetDefinitionsOptions) ([]Definition, error) {
	u, err := c.url(opts, "release/definitions")
	if err != nil {
		return nil, err
	}
	var definitions webapi.List[Definition]
	if err := c.conn.GetUnmarshalJSON(ctx, &definitions, u); err != nil {
		return nil, fmt.Errorf("get release definitions: %w", err)
	}
	return definitions.Value, nil
}

func (c *client) GetReleaseDefinition(ctx context.Context, definitionID int) (Definition, error) {
	u, err := c.url(nil, "release/definitions/%d", definitionID)
	if err != nil {
		return Definition{}, err
	}
	var definition Definition
	if err := c.conn.GetUnmarshalJSON(ctx, &definition, u); err != nil {
		return Definition{}, fmt.Errorf("get release definition %d: %w", definitionID, err)
	}
	return definition, nil
}

func (c *client) CreateReleaseDefinition(ctx context.Context, definition Definition) (Definition, error) {
	u, err := c.url(nil, "release/definitions")
	if err != nil {
		return Definition{}, err
	}
	var created Definition
	if err := c.conn.PostJSON(ctx, &created, u, definition); err != nil {
		return Definition{}, fmt.Errorf("create release definition %q: %w", definition.Name, err)
	}
	return created, nil
}

func (c *client) DeleteReleaseDefinition(ctx context.Context, definitionID int) error {
	u, err := c.url(nil, "release/definitions/%d", definitionID)
	if err != nil {
		return err
	}
	if err := c.conn.Delete(ctx, nil, u); err != nil {
		return fmt.Errorf("delete release definition %d: %w", definitionID, err)
	}
	return nil
}

func (c *client) GetReleases(ctx context.Context, opts *GetReleasesOptions) ([]Release, error) {
	u, err := c.url(opts, "release/releases")
	if err != nil {
		return nil, err
	}
	var releases webapi.List[Release]
	if err := c.conn.GetUnmarshalJSON(ctx, &releases, u); err != nil {
		return nil, fmt.Errorf("get releases: %w", err)
	}
	return releases.Value, nil
}

func (c *client) GetRelease(ctx context.Context, releaseID int) (Release, error) {
	u, err := c.url(nil, "release/releases/%d", releaseID)
	if err != nil {
		return Release{}, err
	}
	var release Release
	if err := c.conn.GetUnmarshalJSON(ctx, &release, u); err != nil {
		return Release{}, fmt.Errorf("get release %d: %w", releaseID, err)
	}
	return release, nil
}

func (c *client) CreateRelease(ctx context.Context, metadata StartMetadata) (Release, error) {
	u, err := c.url(nil, "release/releases")
	if err != nil {
		return Release{}, err
	}
	var release Release
	if err := c.conn.PostJSON(ctx, &release, u, metadata); err != nil {
		return Release{}, fmt.Errorf("create release of definition %d: %w", metadata.DefinitionID, err)
	}
	return release, nil
}

func (c *client) GetApprovals(ctx context.Context, opts *GetApprovalsOptions) ([]Approval, error) {
	u, err := c.url(opts, "release/approvals")
	if err != nil {
		return nil, err
	}
	var approvals webapi.List[Approval]
	if err := c.conn.GetUnmarshalJSON(ctx, &approvals, u); err != nil {
		return nil, fmt.Errorf("get approvals: %w", err)
	}
	return approvals.Value, nil
}

func (c *client) UpdateApproval(ctx context.Context, approvalID int, update ApprovalUpdate) (Approval, error) {
	u, err := c.url(nil, "release/approvals/%d", approvalID)
	if err != nil {
		return Approval{}, err
	}
	var approval Approval
	if err := c.conn.PatchJSON(ctx, &approval, u, update); err != nil {
		return Approval{}, fmt.Errorf("update approval %d: %w", approvalID, err)
	}
	return approval, nil
}
