package servicehooks

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iver-wharf/azuredevops-go/pkg/git"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

// ErrNoEventType is returned by ParseEvent when the payload has no event
// type, which means it is not a service hook event.
var ErrNoEventType = errors.New("event has no event type")

// Event is the payload sent by a web hooks subscription.
type Event struct {
	ID                 string                       `json:"id"`
	SubscriptionID     string                       `json:"subscriptionId"`
	NotificationID     int                          `json:"notificationId"`
	EventType          string                       `json:"eventType"`
	PublisherID        string                       `json:"publisherId"`
	Message            *EventMessage                `json:"message,omitempty"`
	DetailedMessage    *EventMessage                `json:"detailedMessage,omitempty"`
	Resource           json.RawMessage              `json:"resource"`
	ResourceVersion    string                       `json:"resourceVersion"`
	ResourceContainers map[string]ResourceContainer `json:"resourceContainers,omitempty"`
	CreatedDate        webapi.Time                  `json:"createdDate"`
}

// EventMessage is a human readable description of an event.
type EventMessage struct {
	Text     string `json:"text"`
	HTML     string `json:"html,omitempty"`
	Markdown string `json:"markdown,omitempty"`
}

// ResourceContainer identifies the collection, account or project an event
// was raised in.
type ResourceContainer struct {
	ID      string `json:"id"`
	BaseURL string `json:"baseUrl,omitempty"`
}

// ParseEvent parses a service hook event payload.
func ParseEvent(data []byte) (Event, error) {
	var event Event
	if err := json.Unmarshal(data, &event); err != nil {
		return Event{}, fmt.Errorf("parse event: %w", err)
	}
	if event.EventType == "" {
		return Event{}, ErrNoEventType
	}
	return event, nil
}

// DecodeResource unmarshals the resource of the event into v.
func (e Event) DecodeResource(v interface{}) error {
	if len(e.Resource) == 0 {
		return fmt.Errorf("event %q has no resource", e.EventType)
	}
	if err := json.Unmarshal(e.Resource, v); err != nil {
		return fmt.Errorf("decode resource of event %q: %w", e.EventType, err)
	}
	return nil
}

// IsPullRequestEvent returns true if the event is about a pull request.
func (e Event) IsPullRequestEvent() bool {
	switch e.EventType {
	case EventTypeGitPullRequestCreated, EventTypeGitPullRequestUpdated, EventTypeGitPullRequestMerged:
		return true
	default:
		return false
	}
}

// PullRequest decodes the resource of a pull request event.
func (e Event) PullRequest() (git.PullRequest, error) {
	if !e.IsPullRequestEvent() {
		return git.PullRequest{}, fmt.Errorf("event %q is not a pull request event", e.EventType)
	}
	var pr git.PullRequest
	if err := e.DecodeResource(&pr); err != nil {
		return git.PullRequest{}, err
	}
	return pr, nil
}

// Push decodes the resource of a git.push event.
func (e Event) Push() (git.Push, error) {
	if e.EventType != EventTypeGitPush {
		return git.Push{}, fmt.Errorf("event %q is not a push event", e.EventType)
	}
	var push git.Push
	if err := e.DecodeResource(&push); err != nil {
		return git.Push{}, err
	}
	return push, nil
}
