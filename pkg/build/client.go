// Package build implements the build area of the Azure DevOps REST API.
package build

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iver-wharf/azuredevops-go/pkg/connection"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

const apiVersion = "7.1"

// Client is used to talk with the build area of the Azure DevOps API. All
// requests are scoped to the connection's project.
type Client interface {
	GetBuilds(ctx context.Context, opts *GetBuildsOptions) ([]Build, error)
	GetBuild(ctx context.Context, buildID int) (Build, error)
	// QueueBuild queues a new build of a definition.
	QueueBuild(ctx context.Context, req QueueBuildRequest) (Build, error)
	// UpdateBuild updates a build. Setting the status to StatusCancelling
	// cancels a running build.
	UpdateBuild(ctx context.Context, buildID int, req UpdateBuildRequest) (Build, error)
	DeleteBuild(ctx context.Context, buildID int) error
	GetBuildLogs(ctx context.Context, buildID int) ([]Log, error)
	// GetBuildLog gets the content of a single log as text.
	GetBuildLog(ctx context.Context, buildID, logID int) (string, error)
	GetBuildChanges(ctx context.Context, buildID int) ([]Change, error)
	GetBuildTags(ctx context.Context, buildID int) ([]string, error)
	// AddBuildTag adds a tag and returns all tags of the build.
	AddBuildTag(ctx context.Context, buildID int, tag string) ([]string, error)
	// DeleteBuildTag removes a tag and returns the remaining tags of the build.
	DeleteBuildTag(ctx context.Context, buildID int, tag string) ([]string, error)
	GetBuildDefinitions(ctx context.Context, opts *GetDefinitionsOptions) ([]DefinitionReference, error)
	GetBuildDefinition(ctx context.Context, definitionID int) (Definition, error)
	DeleteBuildDefinition(ctx context.Context, definitionID int) error
	GetTimeline(ctx context.Context, buildID int) (Timeline, error)
	GetArtifacts(ctx context.Context, buildID int) ([]Artifact, error)
}

type client struct {
	conn *connection.Connection
}

// NewClient creates a new build Client.
func NewClient(conn *connection.Connection) Client {
	return &client{conn: conn}
}

func (c *client) GetBuilds(ctx context.Context, opts *GetBuildsOptions) ([]Build, error) {
	u, err := c.conn.ProjectURL(connection.ServiceDefault, apiVersion, opts, "build/builds")
	if err != nil {
		return nil, err
	}
	var builds webapi.List[Build]
	if err := c.conn.GetUnmarshalJSON(ctx, &builds, u); err != nil {
		return nil, fmt.Errorf("get builds: %w", err)
	}
	return builds.Value, nil
}

func (c *client) GetBuild(ctx context.Context, buildID int) (Build, error) {
	u, err := c.conn.ProjectURL(connection.ServiceDefault, apiVersion, nil, "build/builds/%d", buildID)
	if err != nil {
		return Build{}, err
	}
	var build Build
	if err := c.conn.GetUnmarshalJSON(ctx, &build, u); err != nil {
		return Build{}, fmt.Errorf("get build %d: %w", buildID, err)
	}
	return build, nil
}

func (c *client) QueueBuild(ctx context.Context, req QueueBuildRequest) (Build, error) {
	u, err := c.conn.ProjectURL(connection.ServiceDefault, apiVersion, nil, "build/builds")
	if err != nil {
		return Build{}, err
	}
	var build Build
	if err := c.conn.PostJSON(ctx, &build, u, req); err != nil {
		return Build{}, fmt.Errorf("queue build of definition %d: %w", req.Definition.ID, err)
	}
	return build, nil
}

func (c *client) UpdateBuild(ctx context.Context, buildID int, req UpdateBuildRequest) (Build, error) {
	u, err := c.conn.ProjectURL(connection.ServiceDefault, apiVersion, nil, "build/builds/%d", buildID)
	if err != nil {
		return Build{}, err
	}
	var build Build
	if err := c.conn.PatchJSON(ctx, &build, u, req); err != nil {
		return Build{}, fmt.Errorf("update build %d: %w", buildID, err)
	}
	return build, nil
}

func (c *client) DeleteBuild(ctx context.Context, buildID int) error {
	u, err := c.conn.ProjectURL(connection.ServiceDefault, apiVersion, nil, "build/builds/%d", buildID)
	if err != nil {
		return err
	}
	if err := c.conn.Delete(ctx, nil, u); err != nil {
		return fmt.Errorf("delete build %d: %w", buildID, err)
	}
	return nil
}

func (c *client) GetBuildLogs(ctx context.Context, buildID int) ([]Log, error) {
	u, err := c.conn.ProjectURL(connection.ServiceDefault, apiVersion, nil, "build/builds/%d/logs", buildID)
	if err != nil {
		return nil, err
	}
	var logs webapi.List[Log]
	if err := c.conn.GetUnmarshalJSON(ctx, &logs, u); err != nil {
		return nil, fmt.Errorf("get logs of build %d: %w", buildID, err)
	}
	return logs.Value, nil
}

func (c *client) GetBuildLog(ctx context.Context, buildID, logID int) (string, error) {
	u, err := c.conn.ProjectURL(connection.ServiceDefault, apiVersion, nil, "build/builds/%d/logs/%d", buildID, logID)
	if err != nil {
		return "", err
	}
	content, err := c.conn.GetAsString(ctx, u)
	if err != nil {
		return "", fmt.Errorf("get log %d of build %d: %w", logID, buildID, err)
	}
	return content, nil
}

func (c *client) GetBuildChanges(ctx context.Context, buildID int) ([]Change, error) {
	u, err := c.conn.ProjectURL(connection.ServiceDefault, apiVersion, nil, "build/builds/%d/changes", buildID)
	if err != nil {
		return nil, err
	}
	var changes webapi.List[Change]
	if err := c.conn.GetUnmarshalJSON(ctx, &changes, u); err != nil {
		return nil, fmt.Errorf("get changes of build %d: %w", buildID, err)
	}
	return changes.Value, nil
}

func (c *client) GetBuildTags(ctx context.Context, buildID int) ([]string, error) {
	u, err := c.conn.ProjectURL(connection.ServiceDefault, apiVersion, nil, "build/builds/%d/tags", buildID)
	if err != nil {
		return nil, err
	}
	var tags webapi.List[string]
	if err := c.conn.GetUnmarshalJSON(ctx, &tags, u); err != nil {
		return nil, fmt.Errorf("get tags of build %d: %w", buildID, err)
	}
	return tags.Value, nil
}

func (c *client) AddBuildTag(ctx context.Context, buildID int, tag string) ([]string, error) {
	u, err := c.conn.ProjectURL(connection.ServiceDefault, apiVersion, nil, "build/builds/%d/tags/%s", buildID, tag)
	if err != nil {
		return nil, err
	}
	var tags webapi.List[string]
	if err := c.conn.PutJSON(ctx, &tags, u, nil); err != nil {
		return nil, fmt.Errorf("add tag %q to build %d: %w", tag, buildID, err)
	}
	return tags.Value, nil
}

func (c *client) DeleteBuildTag(ctx context.Context, buildID int, tag string) ([]string, error) {
	u, err := c.conn.ProjectURL(connection.ServiceDefault, apiVersion, nil, "build/builds/%d/tags/%s", buildID, tag)
	if err != nil {
		return nil, err
	}
	var tags webapi.List[string]
	if err := c.conn.Delete(ctx, &tags, u); err != nil {
		return nil, fmt.Errorf("delete tag %q from build %d: %w", tag, buildID, err)
	}
	return tags.Value, nil
}

func (c *client) GetBuildDefinitions(ctx context.Context, opts *GetDefinitionsOptions) ([]DefinitionReference, error) {
	u, err := c.conn.ProjectURL(connection.ServiceDefault, apiVersion, opts, "build/definitions")
	if err != nil {
		return nil, err
	}
	var definitions webapi.List[DefinitionReference]
	if err := c.conn.GetUnmarshalJSON(ctx, &definitions, u); err != nil {
		return nil, fmt.Errorf("get build definitions: %w", err)
	}
	return definitions.Value, nil
}

func (c *client) GetBuildDefinition(ctx context.Context, definitionID int) (Definition, error) {
	u, err := c.conn.ProjectURL(connection.ServiceDefault, apiVersion, nil, "build/definitions/%d", definitionID)
	if err != nil {
		return Definition{}, err
	}
	var definition Definition
	if err := c.conn.GetUnmarshalJSON(ctx, &definition, u); err != nil {
		return Definition{}, fmt.Errorf("get build definition %d: %w", definitionID, err)
	}
	return definition, nil
}

func (c *client) DeleteBuildDefinition(ctx context.Context, definitionID int) error {
	u, err := c.conn.ProjectURL(connection.ServiceDefault, apiVersion, nil, "build/definitions/%d", definitionID)
	if err != nil {
		return err
	}
	if err := c.conn.Delete(ctx, nil, u); err != nil {
		return fmt.Errorf("delete build definition %d: %w", definitionID, err)
	}
	return nil
}

func (c *client) GetTimeline(ctx context.Context, buildID int) (Timeline, error) {
	u, err := c.conn.ProjectURL(connection.ServiceDefault, apiVersion, nil, "build/builds/%d/timeline", buildID)
	if err != nil {
		return Timeline{}, err
	}
	var timeline Timeline
	if err := c.conn.GetUnmarshalJSON(ctx, &timeline, u); err != nil {
		return Timeline{}, fmt.Errorf("get timeline of build %d: %w", buildID, err)
	}
	return timeline, nil
}

func (c *client) GetArtifacts(ctx context.Context, buildID int) ([]Artifact, error) {
	u, err := c.conn.ProjectURL(connection.ServiceDefault, apiVersion, nil, "build/builds/%d/artifacts", buildID)
	if err != nil {
		return nil, err
	}
	var artifacts webapi.List[Artifact]
	if err := c.conn.GetUnmarshalJSON(ctx, &artifacts, u); err != nil {
		return nil, fmt.Errorf("get artifacts of build %d: %w", buildID, err)
	}
	return artifacts.Value, nil
}

// CancelBuild requests cancellation of a running build.
func CancelBuild(ctx context.Context, c Client, buildID int) (Build, error) {
	return c.UpdateBuild(ctx, buildID, UpdateBuildRequest{Status: StatusCancelling})
}

// QueueBuildWithParameters queues a build with variable values. The
// parameters are sent as the JSON encoded string the API expects.
func QueueBuildWithParameters(ctx context.Context, c Client, definitionID int, sourceBranch string, params map[string]string) (Build, error) {
	req := QueueBuildRequest{
		Definition:   DefinitionReference{ID: definitionID},
		SourceBranch: sourceBranch,
	}
	if len(params) > 0 {
		encoded, err := encodeParameters(params)
		if err != nil {
			return Build{}, err
		}
		req.Parameters = encoded
	}
	return c.QueueBuild(ctx, req)
}

func encodeParameters(params map[string]string) (string, error) {
	b, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("encode build parameters: %w", err)
	}
	return string(b), nil
}
