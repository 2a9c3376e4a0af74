// Package pipelines implements the pipelines area of the Azure DevOps REST
// API, which manages YAML pipelines and their runs.
package pipelines

import (
	"context"
	"fmt"
	"net/url"

	"github.com/iver-wharf/azuredevops-go/internal/parseutil"
	"github.com/iver-wharf/azuredevops-go/pkg/connection"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

const apiVersion = "7.1"

var expandSignedContent = url.Values{"$expand": {"signedContent"}}

// Client is used to talk with the pipelines area of the Azure DevOps API.
type Client interface {
	GetPipelines(ctx context.Context) ([]Pipeline, error)
	GetPipeline(ctx context.Context, pipelineID int) (Pipeline, error)
	// CreatePipeline creates a pipeline from a YAML file in a repository.
	CreatePipeline(ctx context.Context, pipeline NewPipeline) (Pipeline, error)
	// GetRuns gets the top 10000 runs of a pipeline.
	GetRuns(ctx context.Context, pipelineID int) ([]Run, error)
	GetRun(ctx context.Context, pipelineID, runID int) (Run, error)
	RunPipeline(ctx context.Context, pipelineID int, params RunParameters) (Run, error)
	// GetLogs gets the logs of a run, including signed URLs for downloading
	// their content.
	GetLogs(ctx context.Context, pipelineID, runID int) (LogCollection, error)
	GetLog(ctx context.Context, pipelineID, runID, logID int) (Log, error)
	// GetArtifact gets an artifact of a run, including a signed URL for
	// downloading it.
	GetArtifact(ctx context.Context, pipelineID, runID int, artifactName string) (Artifact, error)
}

type client struct {
	conn *connection.Connection
}

// NewClient creates a new pipelines Client.
func NewClient(conn *connection.Connection) Client {
	return &client{conn: conn}
}

func (c *client) url(queries interface{}, format string, values ...interface{}) (*url.URL, error) {
	return c.conn.ProjectURL(connection.ServiceDefault, apiVersion, queries, format, values...)
}

func (c *client) GetPipelines(ctx context.Context) ([]Pipeline, error) {
	u, err := c.url(nil, "pipelines")
	if err != nil {
		return nil, err
	}
	var pipelines webapi.List[Pipeline]
	if err := c.conn.GetUnmarshalJSON(ctx, &pipelines, u); err != nil {
		return nil, fmt.Errorf("get pipelines: %w", err)
	}
	return pipelines.Value, nil
}

func (c *client) GetPipeline(ctx context.Context, pipelineID int) (Pipeline, error) {
	u, err := c.url(nil, "pipelines/%d", pipelineID)
	if err != nil {
		return Pipeline{}, err
	}
	var pipeline Pipeline
	if err := c.conn.GetUnmarshalJSON(ctx, &pipeline, u); err != nil {
		return Pipeline{}, fmt.Errorf("get pipeline %d: %w", pipelineID, err)
	}
	return pipeline, nil
}

func (c *client) CreatePipeline(ctx context.Context, pipeline NewPipeline) (Pipeline, error) {
	if pipeline.Configuration.Type == "" {
		pipeline.Configuration.Type = ConfigurationTypeYAML
	}
	u, err := c.url(nil, "pipelines")
	if err != nil {
		return Pipeline{}, err
	}
	var created Pipeline
	if err := c.conn.PostJSON(ctx, &created, u, pipeline); err != nil {
		return Pipeline{}, fmt.Errorf("create pipeline %q: %w", pipeline.Name, err)
	}
	return created, nil
}

func (c *client) GetRuns(ctx context.Context, pipelineID int) ([]Run, error) {
	u, err := c.url(nil, "pipelines/%d/runs", pipelineID)
	if err != nil {
		return nil, err
	}
	var runs webapi.List[Run]
	if err := c.conn.GetUnmarshalJSON(ctx, &runs, u); err != nil {
		return nil, fmt.Errorf("get runs of pipeline %d: %w", pipelineID, err)
	}
	return runs.Value, nil
}

func (c *client) GetRun(ctx context.Context, pipelineID, runID int) (Run, error) {
	u, err := c.url(nil, "pipelines/%d/runs/%d", pipelineID, runID)
	if err != nil {
		return Run{}, err
	}
	var run Run
	if err := c.conn.GetUnmarshalJSON(ctx, &run, u); err != nil {
		return Run{}, fmt.Errorf("get run %d of pipeline %d: %w", runID, pipelineID, err)
	}
	return run, nil
}

func (c *client) RunPipeline(ctx context.Context, pipelineID int, params RunParameters) (Run, error) {
	u, err := c.url(nil, "pipelines/%d/runs", pipelineID)
	if err != nil {
		return Run{}, err
	}
	var run Run
	if err := c.conn.PostJSON(ctx, &run, u, params); err != nil {
		return Run{}, fmt.Errorf("run pipeline %d: %w", pipelineID, err)
	}
	return run, nil
}

func (c *client) GetLogs(ctx context.Context, pipelineID, runID int) (LogCollection, error) {
	u, err := c.url(expandSignedContent, "pipelines/%d/runs/%d/logs", pipelineID, runID)
	if err != nil {
		return LogCollection{}, err
	}
	var logs LogCollection
	if err := c.conn.GetUnmarshalJSON(ctx, &logs, u); err != nil {
		return LogCollection{}, fmt.Errorf("get logs of run %d: %w", runID, err)
	}
	return logs, nil
}

func (c *client) GetLog(ctx context.Context, pipelineID, runID, logID int) (Log, error) {
	u, err := c.url(expandSignedContent, "pipelines/%d/runs/%d/logs/%d", pipelineID, runID, logID)
	if err != nil {
		return Log{}, err
	}
	var log Log
	if err := c.conn.GetUnmarshalJSON(ctx, &log, u); err != nil {
		return Log{}, fmt.Errorf("get log %d of run %d: %w", logID, runID, err)
	}
	return log, nil
}

func (c *client) GetArtifact(ctx context.Context, pipelineID, runID int, artifactName string) (Artifact, error) {
	q := url.Values{
		"artifactName": {artifactName},
		"$expand":      {"signedContent"},
	}
	u, err := c.url(q, "pipelines/%d/runs/%d/artifacts", pipelineID, runID)
	if err != nil {
		return Artifact{}, err
	}
	var artifact Artifact
	if err := c.conn.GetUnmarshalJSON(ctx, &artifact, u); err != nil {
		return Artifact{}, fmt.Errorf("get artifact %q of run %d: %w", artifactName, runID, err)
	}
	return artifact, nil
}

// RunOnBranch returns the parameters for running a pipeline on a branch of
// the repository holding its definition. The branch may be given by its short
// name or full ref.
func RunOnBranch(branch string) RunParameters {
	return RunParameters{
		Resources: &RunResources{
			Repositories: map[string]RepositoryResource{
				"self": {RefName: parseutil.BranchRef(branch)},
			},
		},
	}
}
