// Package servicehooks implements the service hooks area of the Azure DevOps
// REST API, which manages subscriptions that notify external services of
// events. It also contains the payload type of web hook events.
package servicehooks

import (
	"context"
	"fmt"
	"net/url"

	"github.com/iver-wharf/azuredevops-go/pkg/connection"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

const apiVersion = "7.1"

// Client is used to talk with the service hooks area of the Azure DevOps
// API.
type Client interface {
	GetPublishers(ctx context.Context) ([]Publisher, error)
	GetConsumers(ctx context.Context) ([]Consumer, error)
	GetSubscriptions(ctx context.Context, opts *GetSubscriptionsOptions) ([]Subscription, error)
	GetSubscription(ctx context.Context, subscriptionID string) (Subscription, error)
	CreateSubscription(ctx context.Context, subscription Subscription) (Subscription, error)
	DeleteSubscription(ctx context.Context, subscriptionID string) error
}

type client struct {
	conn *connection.Connection
}

// NewClient creates a new service hooks Client.
func NewClient(conn *connection.Connection) Client {
	return &client{conn: conn}
}

func (c *client) url(queries interface{}, format string, values ...interface{}) (*url.URL, error) {
	return c.conn.OrganizationURL(connection.ServiceDefault, apiVersion, queries, format, values...)
}

func (c *client) GetPublishers(ctx context.Context) ([]Publisher, error) {
	u, err := c.url(nil, "hooks/publishers")
	if err != nil {
		return nil, err
	}
	var publishers webapi.List[Publisher]
	if err := c.conn.GetUnmarshalJSON(ctx, &publishers, u); err != nil {
		return nil, fmt.Errorf("get publishers: %w", err)
	}
	return publishers.Value, nil
}

func (c *client) GetConsumers(ctx context.Context) ([]Consumer, error) {
	u, err := c.url(nil, "hooks/consumers")
	if err != nil {
		return nil, err
	}
	var consumers webapi.List[Consumer]
	if err := c.conn.GetUnmarshalJSON(ctx, &consumers, u); err != nil {
		return nil, fmt.Errorf("get consumers: %w", err)
	}
	return consumers.Value, nil
}

func (c *client) GetSubscriptions(ctx context.Context, opts *GetSubscriptionsOptions) ([]Subscription, error) {
	u, err := c.url(opts, "hooks/subscriptions")
	if err != nil {
		return nil, err
	}
	var subscriptions webapi.List[Subscription]
	if err := c.conn.GetUnmarshalJSON(ctx, &subscriptions, u); err != nil {
		return nil, fmt.Errorf("get subscriptions: %w", err)
	}
	return subscriptions.Value, nil
}

func (c *client) GetSubscription(ctx context.Context, subscriptionID string) (Subscription, error) {
	u, err := c.url(nil, "hooks/subscriptions/%s", subscriptionID)
	if err != nil {
		return Subscription{}, err
	}
	var subscription Subscription
	if err := c.conn.GetUnmarshalJSON(ctx, &subscription, u); err != nil {
		return Subscription{}, fmt.Errorf("get subscription %q: %w", subscriptionID, err)
	}
	return subscription, nil
}

func (c *client) CreateSubscription(ctx context.Context, subscription Subscription) (Subscription, error) {
	u, err := c.url(nil, "hooks/subscriptions")
	if err != nil {
		return Subscription{}, err
	}
	var created Subscription
	if err := c.conn.PostJSON(ctx, &created, u, subscription); err != nil {
		return Subscription{}, fmt.Errorf("create subscription for %q: %w", subscription.EventType, err)
	}
	return created, nil
}

func (c *client) DeleteSubscription(ctx context.Context, subscriptionID string) error {
	u, err := c.url(nil, "hooks/subscriptions/%s", subscriptionID)
	if err != nil {
		return err
	}
	if err := c.conn.Delete(ctx, nil, u); err != nil {
		return fmt.Errorf("delete subscription %q: %w", subscriptionID, err)
	}
	return nil
}

// WebHookSubscription returns a subscription that posts events of the given
// type in a project to a URL, optionally using basic authentication.
func WebHookSubscription(eventType, projectID, hookURL, username, password string) Subscription {
	consumerInputs := map[string]string{"url": hookURL}
	if username != "" {
		consumerInputs["basicAuthUsername"] = username
		consumerInputs["basicAuthPassword"] = password
	}
	return Subscription{
		PublisherID:      PublisherTFS,
		EventType:        eventType,
		ResourceVersion:  "1.0",
		ConsumerID:       ConsumerWebHooks,
		ConsumerActionID: "httpRequest",
		PublisherInputs:  map[string]string{"projectId": projectID},
		ConsumerInputs:   consumerInputs,
	}
}
