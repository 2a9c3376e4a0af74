// Package distributedtask implements the distributed task area of the Azure
// DevOps REST API: agent pools, deployment groups, variable groups and
// environments.
package distributedtask

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/iver-wharf/azuredevops-go/pkg/connection"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

const apiVersion = "7.1"

// Client is used to talk with the distributed task area of the Azure DevOps
// API.
type Client interface {
	// GetAgentPools lists the agent pools of the organization.
	GetAgentPools(ctx context.Context) ([]AgentPool, error)
	GetAgents(ctx context.Context, poolID int, opts *GetAgentsOptions) ([]Agent, error)
	GetAgent(ctx context.Context, poolID, agentID int) (Agent, error)
	DeleteAgent(ctx context.Context, poolID, agentID int) error

	GetDeploymentGroups(ctx context.Context) ([]DeploymentGroup, error)
	AddDeploymentGroup(ctx context.Context, group NewDeploymentGroup) (DeploymentGroup, error)
	DeleteDeploymentGroup(ctx context.Context, deploymentGroupID int) error

	GetVariableGroups(ctx context.Context, groupName string) ([]VariableGroup, error)
	// AddVariableGroup creates a variable group shared with the projects in
	// its VariableGroupProjectReferences, of which there must be at least
	// one.
	AddVariableGroup(ctx context.Context, group VariableGroup) (VariableGroup, error)
	DeleteVariableGroup(ctx context.Context, groupID int, projectIDs []string) error

	GetEnvironments(ctx context.Context) ([]Environment, error)
	AddEnvironment(ctx context.Context, env NewEnvironment) (Environment, error)
	DeleteEnvironment(ctx context.Context, environmentID int) error
}

type client struct {
	conn *connection.Connection
}

// NewClient creates a new distributed task Client.
func NewClient(conn *connection.Connection) Client {
	return &client{conn: conn}
}

func (c *client) url(queries interface{}, format string, values ...interface{}) (*url.URL, error) {
	return c.conn.ProjectURL(connection.ServiceDefault, apiVersion, queries, format, values...)
}

func (c *client) orgURL(queries interface{}, format string, values ...interface{}) (*url.URL, error) {
	return c.conn.OrganizationURL(connection.ServiceDefault, apiVersion, queries, format, values...)
}

func (c *client) GetAgentPools(ctx context.Context) ([]AgentPool, error) {
	u, err := c.orgURL(nil, "distributedtask/pools")
	if err != nil {
		return nil, err
	}
	var pools webapi.List[AgentPool]
	if err := c.conn.GetUnmarshalJSON(ctx, &pools, u); err != nil {
		return nil, fmt.Errorf("get agent pools: %w", err)
	}
	return pools.Value, nil
}

func (c *client) GetAgents(ctx context.Context, poolID int, opts *GetAgentsOptions) ([]Agent, error) {
	u, err := c.orgURL(opts, "distributedtask/pools/%d/agents", poolID)
	if err != nil {
		return nil, err
	}
	var agents webapi.List[Agent]
	if err := c.conn.GetUnmarshalJSON(ctx, &agents, u); err != nil {
		return nil, fmt.Errorf("get agents of pool %d: %w", poolID, err)
	}
	return agents.Value, nil
}

func (c *client) GetAgent(ctx context.Context, poolID, agentID int) (Agent, error) {
	u, err := c.orgURL(nil, "distributedtask/pools/%d/agents/%d", poolID, agentID)
	if err != nil {
		return Agent{}, err
	}
	var agent Agent
	if err := c.conn.GetUnmarshalJSON(ctx, &agent, u); err != nil {
		return Agent{}, fmt.Errorf("get agent %d of pool %d: %w", agentID, poolID, err)
	}
	return agent, nil
}

func (c *client) DeleteAgent(ctx context.Context, poolID, agentID int) error {
	u, err := c.orgURL(nil, "distributedtask/pools/%d/agents/%d", poolID, agentID)
	if err != nil {
		return err
	}
	if err := c.conn.Delete(ctx, nil, u); err != nil {
		return fmt.Errorf("delete agent %d of pool %d: %w", agentID, poolID, err)
	}
	return nil
}

func (c *client) GetDeploymentGroups(ctx context.Context) ([]DeploymentGroup, error) {
	u, err := c.url(nil, "distributedtask/deploymentgroups")
	if err != nil {
		return nil, err
	}
	var groups webapi.List[DeploymentGroup]
	if err := c.conn.GetUnmarshalJSON(ctx, &groups, u); err != nil {
		return nil, fmt.Errorf("get deployment groups: %w", err)
	}
	return groups.Value, nil
}

func (c *client) AddDeploymentGroup(ctx context.Context, group NewDeploymentGroup) (DeploymentGroup, error) {
	u, err := c.url(nil, "distributedtask/deploymentgroups")
	if err != nil {
		return DeploymentGroup{}, err
	}
	var created DeploymentGroup
	if err := c.conn.PostJSON(ctx, &created, u, group); err != nil {
		return DeploymentGroup{}, fmt.Errorf("add deployment group %q: %w", group.Name, err)
	}
	return created, nil
}

func (c *client) DeleteDeploymentGroup(ctx context.Context, deploymentGroupID int) error {
	u, err := c.url(nil, "distributedtask/deploymentgroups/%d", deploymentGroupID)
	if err != nil {
		return err
	}
	if err := c.conn.Delete(ctx, nil, u); err != nil {
		return fmt.Errorf("delete deployment group %d: %w", deploymentGroupID, err)
	}
	return nil
}

func (c *client) GetVariableGroups(ctx context.Context, groupName string) ([]VariableGroup, error) {
	q := url.Values{}
	if groupName != "" {
		q.Set("groupName", groupName)
	}
	u, err := c.url(q, "distributedtask/variablegroups")
	if err != nil {
		return nil, err
	}
	var groups webapi.List[VariableGroup]
	if err := c.conn.GetUnmarshalJSON(ctx, &groups, u); err != nil {
		return nil, fmt.Errorf("get variable groups: %w", err)
	}
	return groups.Value, nil
}

func (c *client) AddVariableGroup(ctx context.Context, group VariableGroup) (VariableGroup, error) {
	if len(group.VariableGroupProjectReferences) == 0 {
		return VariableGroup{}, errors.New("variable group must reference at least one project")
	}
	if group.Type == "" {
		group.Type = VariableGroupTypeVsts
	}
	u, err := c.orgURL(nil, "distributedtask/variablegroups")
	if err != nil {
		return VariableGroup{}, err
	}
	var created VariableGroup
	if err := c.conn.PostJSON(ctx, &created, u, group); err != nil {
		return VariableGroup{}, fmt.Errorf("add variable group %q: %w", group.Name, err)
	}
	return created, nil
}

func (c *client) DeleteVariableGroup(ctx context.Context, groupID int, projectIDs []string) error {
	if len(projectIDs) == 0 {
		return errors.New("at least one project ID is required")
	}
	q := url.Values{"projectIds": {strings.Join(projectIDs, ",")}}
	u, err := c.orgURL(q, "distributedtask/variablegroups/%d", groupID)
	if err != nil {
		return err
	}
	if err := c.conn.Delete(ctx, nil, u); err != nil {
		return fmt.Errorf("delete variable group %d: %w", groupID, err)
	}
	return nil
}

func (c *client) GetEnvironments(ctx context.Context) ([]Environment, error) {
	u, err := c.url(nil, "distributedtask/environments")
	if err != nil {
		return nil, err
	}
	var envs webapi.List[Environment]
	if err := c.conn.GetUnmarshalJSON(ctx, &envs, u); err != nil {
		return nil, fmt.Errorf("get environments: %w", err)
	}
	return envs.Value, nil
}

func (c *client) AddEnvironment(ctx context.Context, env NewEnvironment) (Environment, error) {
	u, err := c.url(nil, "distributedtask/environments")
	if err != nil {
		return Environment{}, err
	}
	var created Environment
	if err := c.conn.PostJSON(ctx, &created, u, env); err != nil {
		return Environment{}, fmt.Errorf("add environment %q: %w", env.Name, err)
	}
	return created, nil
}

func (c *client) DeleteEnvironment(ctx context.Context, environmentID int) error {
	u, err := c.url(nil, "distributedtask/environments/%d", environmentID)
	if err != nil {
		return err
	}
	if err := c.conn.Delete(ctx, nil, u); err != nil {
		return fmt.Errorf("delete environment %d: %w", environmentID, err)
	}
	return nil
}
