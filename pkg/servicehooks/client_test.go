package servicehooks

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iver-wharf/azuredevops-go/internal/azdtest"
)

func TestGetPublishers(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodGet,
		Path:   "/org/_apis/hooks/publishers",
		Body: `{"count": 1, "value": [{
			"id": "tfs",
			"name": "Team Foundation Server",
			"supportedEvents": [{"id": "git.push", "name": "Code pushed", "publisherId": "tfs", "supportedResourceVersions": ["1.0"]}]
		}]}`,
	})

	publishers, err := NewClient(conn).GetPublishers(context.Background())
	require.NoError(t, err)
	require.Len(t, publishers, 1)
	require.Len(t, publishers[0].SupportedEvents, 1)
	assert.Equal(t, EventTypeGitPush, publishers[0].SupportedEvents[0].ID)
}

func TestCreateWebHookSubscription(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodPost,
		Path:   "/org/_apis/hooks/subscriptions",
		Body:   `{"id": "fd672255-8b6b-4769-9260-beea83d752ce", "status": "enabled", "publisherId": "tfs", "eventType": "git.pullrequest.created", "consumerId": "webHooks", "consumerActionId": "httpRequest"}`,
		Check: func(t *testing.T, r *http.Request) {
			body := azdtest.DecodeObject(t, r)
			assert.NotContains(t, body, "id")
			assert.Equal(t, "git.pullrequest.created", body["eventType"])
			assert.Equal(t, map[string]interface{}{"projectId": "6ce954b1"}, body["publisherInputs"])
			assert.Equal(t, map[string]interface{}{
				"url":               "https://wharf.example.com/api/servicehooks",
				"basicAuthUsername": "azd",
				"basicAuthPassword": "secret",
			}, body["consumerInputs"])
		},
	})

	sub := WebHookSubscription(EventTypeGitPullRequestCreated, "6ce954b1",
		"https://wharf.example.com/api/servicehooks", "azd", "secret")
	created, err := NewClient(conn).CreateSubscription(context.Background(), sub)
	require.NoError(t, err)
	assert.Equal(t, "fd672255-8b6b-4769-9260-beea83d752ce", created.ID)
	assert.Equal(t, "enabled", created.Status)
}

func TestGetSubscriptions(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodGet,
		Path:   "/org/_apis/hooks/subscriptions",
		Body:   `{"count": 1, "value": [{"id": "fd672255-8b6b-4769-9260-beea83d752ce", "publisherId": "tfs", "eventType": "git.push", "consumerId": "webHooks", "consumerActionId": "httpRequest"}]}`,
		Check: func(t *testing.T, r *http.Request) {
			assert.Equal(t, "webHooks", r.URL.Query().Get("consumerId"))
		},
	})

	subs, err := NewClient(conn).GetSubscriptions(context.Background(), &GetSubscriptionsOptions{ConsumerID: ConsumerWebHooks})
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, EventTypeGitPush, subs[0].EventType)
}

func TestDeleteSubscription(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodDelete,
		Path:   "/org/_apis/hooks/subscriptions/fd672255-8b6b-4769-9260-beea83d752ce",
		Status: http.StatusNoContent,
	})

	assert.NoError(t, NewClient(conn).DeleteSubscription(context.Background(), "fd672255-8b6b-4769-9260-beea83d752ce"))
}

func TestGetConsumers(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodGet,
		Path:   "/org/_apis/hooks/consumers",
		Body: `{"count": 1, "value": [{
			"id": "webHooks",
			"name": "Web Hooks",
			"actions": [{"id": "httpRequest", "consumerId": "webHooks", "name": "Post via HTTP"}]
		}]}`,
	})

	consumers, err := NewClient(conn).GetConsumers(context.Background())
	require.NoError(t, err)
	require.Len(t, consumers, 1)
	assert.Equal(t, ConsumerWebHooks, consumers[0].ID)
	require.Len(t, consumers[0].Actions, 1)
	assert.Equal(t, "httpRequest", consumers[0].Actions[0].ID)
}

func TestGetSubscription(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodGet,
		Path:   "/org/_apis/hooks/subscriptions/fd672255-8b6b-4769-9260-beea83d752ce",
		Body: `{
			"id": "fd672255-8b6b-4769-9260-beea83d752ce",
			"status": "enabled",
			"publisherId": "tfs",
			"eventType": "git.pullrequest.created",
			"consumerId": "webHooks",
			"consumerActionId": "httpRequest",
			"consumerInputs": {"url": "https://wharf.example.com/api/servicehooks"}
		}`,
	})

	sub, err := NewClient(conn).GetSubscription(context.Background(), "fd672255-8b6b-4769-9260-beea83d752ce")
	require.NoError(t, err)
	assert.Equal(t, EventTypeGitPullRequestCreated, sub.EventType)
	assert.Equal(t, "https://wharf.example.com/api/servicehooks", sub.ConsumerInputs["url"])
}
