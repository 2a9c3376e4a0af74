package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/iver-wharf/wharf-core/pkg/ginutil"

	"github.com/iver-wharf/azuredevops-go/pkg/git"
	"github.com/iver-wharf/azuredevops-go/pkg/pipelines"
	"github.com/iver-wharf/azuredevops-go/pkg/servicehooks"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

// ignoredEvent is the response for events that did not trigger anything.
type ignoredEvent struct {
	Ignored string `json:"ignored" example:"git.push"`
}

// postServiceHookHandler godoc
// @id postServiceHook
// @summary Receives Azure DevOps service hook events
// @description Runs the configured pipeline on the source branch of created
// @description or updated pull requests. Other events are acknowledged and
// @description ignored.
// @tags servicehooks
// @accept json
// @produce json
// @param event body servicehooks.Event true "Service hook event"
// @success 200 {object} pipelines.Run "Pipeline run was queued"
// @success 202 {object} ignoredEvent "Event was ignored"
// @failure 400 {object} problem.Response "Bad request"
// @failure 401 "Unauthorized, basic authentication failed"
// @failure 502 {object} problem.Response "Failed talking with Azure DevOps"
// @router /servicehooks [post]
func (m azureDevOpsModule) postServiceHookHandler(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		ginutil.WriteInvalidBindError(c, err, "Unable to read the service hook request body.")
		return
	}
	event, err := servicehooks.ParseEvent(body)
	if err != nil {
		ginutil.WriteInvalidBindError(c, err, "The request body is not a valid service hook event.")
		return
	}
	log.Debug().
		WithString("eventType", event.EventType).
		WithString("subscriptionId", event.SubscriptionID).
		Message("Received service hook event.")

	switch event.EventType {
	case servicehooks.EventTypeGitPullRequestCreated,
		servicehooks.EventTypeGitPullRequestUpdated:
		m.triggerPipelineOnPullRequest(c, event)
	default:
		c.JSON(http.StatusAccepted, ignoredEvent{Ignored: event.EventType})
	}
}

func (m azureDevOpsModule) triggerPipelineOnPullRequest(c *gin.Context, event servicehooks.Event) {
	pipelineID := m.config.Hooks.TriggerPipelineID
	if pipelineID == 0 {
		c.JSON(http.StatusAccepted, ignoredEvent{Ignored: event.EventType})
		return
	}
	pr, err := event.PullRequest()
	if err != nil {
		ginutil.WriteInvalidBindError(c, err, "Unable to read the pull request of the service hook event.")
		return
	}
	if pr.Status != "" && pr.Status != git.PullRequestStatusActive {
		c.JSON(http.StatusAccepted, ignoredEvent{Ignored: event.EventType})
		return
	}
	if pr.Repository != nil && !m.isConfiguredProject(pr.Repository.Project) {
		log.Debug().
			WithString("project", pr.Repository.Project.Name).
			WithInt("pullRequestId", pr.PullRequestID).
			Message("Ignoring pull request from other project.")
		c.JSON(http.StatusAccepted, ignoredEvent{Ignored: event.EventType})
		return
	}

	run, err := m.azd.PipelinesAPI().RunPipeline(c.Request.Context(), pipelineID, pipelines.RunOnBranch(pr.SourceRefName))
	if err != nil {
		log.Error().
			WithError(err).
			WithInt("pipelineId", pipelineID).
			WithString("branch", pr.SourceRefName).
			Message("Failed to run pipeline.")
		ginutil.WriteProviderResponseError(c, err,
			fmt.Sprintf("Unable to run pipeline %d on branch %q.", pipelineID, pr.SourceRefName))
		return
	}
	log.Info().
		WithInt("pipelineId", pipelineID).
		WithInt("runId", run.ID).
		WithInt("pullRequestId", pr.PullRequestID).
		WithString("branch", pr.SourceRefName).
		Message("Ran pipeline for pull request.")
	c.JSON(http.StatusOK, run)
}

// isConfiguredProject reports whether the project is the one configured by
// name or ID. Project names are case-insensitive in Azure DevOps. Events
// without any project information are accepted.
func (m azureDevOpsModule) isConfiguredProject(project webapi.TeamProjectReference) bool {
	if project.Name == "" && project.ID == uuid.Nil {
		return true
	}
	configured := m.config.AzureDevOps.Project
	if project.ID != uuid.Nil && strings.EqualFold(project.ID.String(), configured) {
		return true
	}
	return strings.EqualFold(project.Name, configured)
}
