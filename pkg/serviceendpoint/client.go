// Package serviceendpoint implements the service endpoint area of the Azure
// DevOps REST API, which manages connections to external services.
package serviceendpoint

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/iver-wharf/azuredevops-go/pkg/connection"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

const apiVersion = "7.1-preview.4"

// Client is used to talk with the service endpoint area of the Azure DevOps
// API.
type Client interface {
	// GetServiceEndpoints gets the service endpoints of the connection's
	// project.
	GetServiceEndpoints(ctx context.Context, opts *GetServiceEndpointsOptions) ([]ServiceEndpoint, error)
	GetServiceEndpoint(ctx context.Context, endpointID string) (ServiceEndpoint, error)
	// CreateServiceEndpoint creates a service endpoint shared with the
	// projects in ServiceEndpointProjectReferences.
	CreateServiceEndpoint(ctx context.Context, endpoint ServiceEndpoint) (ServiceEndpoint, error)
	UpdateServiceEndpoint(ctx context.Context, endpointID string, endpoint ServiceEndpoint) (ServiceEndpoint, error)
	// DeleteServiceEndpoint removes a service endpoint from the given
	// projects. It is deleted once no project references it.
	DeleteServiceEndpoint(ctx context.Context, endpointID string, projectIDs []string) error
}

type client struct {
	conn *connection.Connection
}

// NewClient creates a new service endpoint Client.
func NewClient(conn *connection.Connection) Client {
	return &client{conn: conn}
}

func (c *client) GetServiceEndpoints(ctx context.Context, opts *GetServiceEndpointsOptions) ([]ServiceEndpoint, error) {
	u, err := c.conn.ProjectURL(connection.ServiceDefault, apiVersion, opts, "serviceendpoint/endpoints")
	if err != nil {
		return nil, err
	}
	var endpoints webapi.List[ServiceEndpoint]
	if err := c.conn.GetUnmarshalJSON(ctx, &endpoints, u); err != nil {
		return nil, fmt.Errorf("get service endpoints: %w", err)
	}
	return endpoints.Value, nil
}

func (c *client) GetServiceEndpoint(ctx context.Context, endpointID string) (ServiceEndpoint, error) {
	u, err := c.conn.ProjectURL(connection.ServiceDefault, apiVersion, nil, "serviceendpoint/endpoints/%s", endpointID)
	if err != nil {
		return ServiceEndpoint{}, err
	}
	var endpoint ServiceEndpoint
	if err := c.conn.GetUnmarshalJSON(ctx, &endpoint, u); err != nil {
		return ServiceEndpoint{}, fmt.Errorf("get service endpoint %q: %w", endpointID, err)
	}
	return endpoint, nil
}

func (c *client) CreateServiceEndpoint(ctx context.Context, endpoint ServiceEndpoint) (ServiceEndpoint, error) {
	if len(endpoint.ServiceEndpointProjectReferences) == 0 {
		return ServiceEndpoint{}, errors.New("service endpoint must reference at least one project")
	}
	u, err := c.conn.OrganizationURL(connection.ServiceDefault, apiVersion, nil, "serviceendpoint/endpoints")
	if err != nil {
		return ServiceEndpoint{}, err
	}
	var created ServiceEndpoint
	if err := c.conn.PostJSON(ctx, &created, u, endpoint); err != nil {
		return ServiceEndpoint{}, fmt.Errorf("create service endpoint %q: %w", endpoint.Name, err)
	}
	return created, nil
}

func (c *client) UpdateServiceEndpoint(ctx context.Context, endpointID string, endpoint ServiceEndpoint) (ServiceEndpoint, error) {
	u, err := c.conn.OrganizationURL(connection.ServiceDefault, apiVersion, nil, "serviceendpoint/endpoints/%s", endpointID)
	if err != nil {
		return ServiceEndpoint{}, err
	}
	var updated ServiceEndpoint
	if err := c.conn.PutJSON(ctx, &updated, u, endpoint); err != nil {
		return ServiceEndpoint{}, fmt.Errorf("update service endpoint %q: %w", endpointID, err)
	}
	return updated, nil
}

func (c *client) DeleteServiceEndpoint(ctx context.Context, endpointID string, projectIDs []string) error {
	if len(projectIDs) == 0 {
		return errors.New("at least one project ID is required")
	}
	q := url.Values{"projectIds": {strings.Join(projectIDs, ",")}}
	u, err := c.conn.OrganizationURL(connection.ServiceDefault, apiVersion, q, "serviceendpoint/endpoints/%s", endpointID)
	if err != nil {
		return err
	}
	if err := c.conn.Delete(ctx, nil, u); err != nil {
		return fmt.Errorf("delete service endpoint %q: %w", endpointID, err)
	}
	return nil
}
