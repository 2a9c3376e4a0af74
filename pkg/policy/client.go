// Package policy implements the policy area of the Azure DevOps REST API,
// which manages branch policies.
package policy

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/iver-wharf/azuredevops-go/pkg/connection"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

const apiVersion = "7.1"

// Client is used to talk with the policy area of the Azure DevOps API.
type Client interface {
	GetPolicyTypes(ctx context.Context) ([]Type, error)
	GetPolicyType(ctx context.Context, typeID uuid.UUID) (Type, error)
	GetPolicyConfigurations(ctx context.Context, opts *GetConfigurationsOptions) ([]Configuration, error)
	GetPolicyConfiguration(ctx context.Context, configurationID int) (Configuration, error)
	CreatePolicyConfiguration(ctx context.Context, config Configuration) (Configuration, error)
	// UpdatePolicyConfiguration replaces a policy configuration.
	UpdatePolicyConfiguration(ctx context.Context, configurationID int, config Configuration) (Configuration, error)
	DeletePolicyConfiguration(ctx context.Context, configurationID int) error
}

type client struct {
	conn *connection.Connection
}

// NewClient creates a new policy Client.
func NewClient(conn *connection.Connection) Client {
	return &client{conn: conn}
}

func (c *client) url(queries interface{}, format string, values ...interface{}) (*url.URL, error) {
	return c.conn.ProjectURL(connection.ServiceDefault, apiVersion, queries, format, values...)
}

func (c *client) GetPolicyTypes(ctx context.Context) ([]Type, error) {
	u, err := c.url(nil, "policy/types")
	if err != nil {
		return nil, err
	}
	var types webapi.List[Type]
	if err := c.conn.GetUnmarshalJSON(ctx, &types, u); err != nil {
		return nil, fmt.Errorf("get policy types: %w", err)
	}
	return types.Value, nil
}

func (c *client) GetPolicyType(ctx context.Context, typeID uuid.UUID) (Type, error) {
	u, err := c.url(nil, "policy/types/%s", typeID)
	if err != nil {
		return Type{}, err
	}
	var policyType Type
	if err := c.conn.GetUnmarshalJSON(ctx, &policyType, u); err != nil {
		return Type{}, fmt.Errorf("get policy type %s: %w", typeID, err)
	}
	return policyType, nil
}

func (c *client) GetPolicyConfigurations(ctx context.Context, opts *GetConfigurationsOptions) ([]Configuration, error) {
	u, err := c.url(opts, "policy/configurations")
	if err != nil {
		return nil, err
	}
	var configs webapi.List[Configuration]
	if err := c.conn.GetUnmarshalJSON(ctx, &configs, u); err != nil {
		return nil, fmt.Errorf("get policy configurations: %w", err)
	}
	return configs.Value, nil
}

func (c *client) GetPolicyConfiguration(ctx context.Context, configurationID int) (Configuration, error) {
	u, err := c.url(nil, "policy/configurations/%d", configurationID)
	if err != nil {
		return Configuration{}, err
	}
	var config Configuration
	if err := c.conn.GetUnmarshalJSON(ctx, &config, u); err != nil {
		return Configuration{}, fmt.Errorf("get policy configuration %d: %w", configurationID, err)
	}
	return config, nil
}

func (c *client) CreatePolicyConfiguration(ctx context.Context, config Configuration) (Configuration, error) {
	u, err := c.url(nil, "policy/configurations")
	if err != nil {
		return Configuration{}, err
	}
	var created Configuration
	if err := c.conn.PostJSON(ctx, &created, u, config); err != nil {
		return Configuration{}, fmt.Errorf("create policy configuration of type %s: %w", config.Type.ID, err)
	}
	return created, nil
}

func (c *client) UpdatePolicyConfiguration(ctx context.Context, configurationID int, config Configuration) (Configuration, error) {
	u, err := c.url(nil, "policy/configurations/%d", configurationID)
	if err != nil {
		return Configuration{}, err
	}
	var updated Configuration
	if err := c.conn.PutJSON(ctx, &updated, u, config); err != nil {
		return Configuration{}, fmt.Errorf("update policy configuration %d: %w", configurationID, err)
	}
	return updated, nil
}

func (c *client) DeletePolicyConfiguration(ctx context.Context, configurationID int) error {
	u, err := c.url(nil, "policy/configurations/%d", configurationID)
	if err != nil {
		return err
	}
	if err := c.conn.Delete(ctx, nil, u); err != nil {
		return fmt.Errorf("delete policy configuration %d: %w", configurationID, err)
	}
	return nil
}

// MinimumReviewers builds the configuration of a policy requiring a minimum
// number of approving reviewers on a branch.
func MinimumReviewers(repositoryID, refName string, count int) Configuration {
	return Configuration{
		IsEnabled:  true,
		IsBlocking: true,
		Type:       TypeReference{ID: TypeMinimumReviewers},
		Settings: map[string]interface{}{
			"minimumApproverCount": count,
			"creatorVoteCounts":    false,
			"scope": []Scope{
				{RepositoryID: repositoryID, RefName: refName, MatchKind: "exact"},
			},
		},
	}
}
