package servicehooks

import "github.com/iver-wharf/azuredevops-go/pkg/webapi"

// Event types published by Azure DevOps.
const (
	EventTypeGitPush                    = "git.push"
	EventTypeGitPullRequestCreated      = "git.pullrequest.created"
	EventTypeGitPullRequestUpdated      = "git.pullrequest.updated"
	EventTypeGitPullRequestMerged       = "git.pullrequest.merged"
	EventTypeBuildComplete              = "build.complete"
	EventTypeRunStateChanged            = "ms.vss-pipelines.run-state-changed-event"
	EventTypeWorkItemCreated            = "workitem.created"
	EventTypeWorkItemUpdated            = "workitem.updated"
	EventTypeReleaseDeploymentCompleted = "ms.vss-release.deployment-completed-event"
)

// Publisher IDs.
const (
	PublisherTFS       = "tfs"
	PublisherPipelines = "pipelines"
	PublisherRM        = "rm"
)

// ConsumerWebHooks is the ID of the web hooks consumer.
const ConsumerWebHooks = "webHooks"

// Publisher publishes events.
type Publisher struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	Description     string                `json:"description,omitempty"`
	SupportedEvents []EventTypeDescriptor `json:"supportedEvents,omitempty"`
	URL             string                `json:"url,omitempty"`
}

// EventTypeDescriptor describes an event type of a publisher.
type EventTypeDescriptor struct {
	ID                        string   `json:"id"`
	Name                      string   `json:"name"`
	Description               string   `json:"description,omitempty"`
	PublisherID               string   `json:"publisherId"`
	SupportedResourceVersions []string `json:"supportedResourceVersions,omitempty"`
}

// Consumer consumes events, e.g by sending web hooks.
type Consumer struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Actions     []ConsumerAction `json:"actions,omitempty"`
	URL         string           `json:"url,omitempty"`
}

// ConsumerAction is an action a consumer can take.
type ConsumerAction struct {
	ID          string `json:"id"`
	ConsumerID  string `json:"consumerId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Subscription routes events of a publisher to a consumer.
type Subscription struct {
	ID               string              `json:"id,omitempty"`
	Status           string              `json:"status,omitempty"`
	PublisherID      string              `json:"publisherId"`
	EventType        string              `json:"eventType"`
	ResourceVersion  string              `json:"resourceVersion,omitempty"`
	ConsumerID       string              `json:"consumerId"`
	ConsumerActionID string              `json:"consumerActionId"`
	PublisherInputs  map[string]string   `json:"publisherInputs,omitempty"`
	ConsumerInputs   map[string]string   `json:"consumerInputs,omitempty"`
	CreatedBy        *webapi.IdentityRef `json:"createdBy,omitempty"`
	CreatedDate      *webapi.Time        `json:"createdDate,omitempty"`
	URL              string              `json:"url,omitempty"`
}

// GetSubscriptionsOptions filters the result of GetSubscriptions.
type GetSubscriptionsOptions struct {
	PublisherID      string `url:"publisherId,omitempty"`
	EventType        string `url:"eventType,omitempty"`
	ConsumerID       string `url:"consumerId,omitempty"`
	ConsumerActionID string `url:"consumerActionId,omitempty"`
}
