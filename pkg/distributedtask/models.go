package distributedtask

import (
	"github.com/google/uuid"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

// Agent statuses.
const (
	AgentStatusOnline  = "online"
	AgentStatusOffline = "offline"
)

// VariableGroupTypeVsts is the type of variable groups whose values are
// stored in Azure DevOps, as opposed to being linked from a key vault.
const VariableGroupTypeVsts = "Vsts"

// AgentPool is a pool of build and release agents.
type AgentPool struct {
	ID            int                 `json:"id"`
	Name          string              `json:"name"`
	IsHosted      bool                `json:"isHosted"`
	PoolType      string              `json:"poolType,omitempty"`
	Size          int                 `json:"size"`
	AutoProvision bool                `json:"autoProvision,omitempty"`
	CreatedBy     *webapi.IdentityRef `json:"createdBy,omitempty"`
	CreatedOn     webapi.Time         `json:"createdOn"`
}

// Agent is a build and release agent.
type Agent struct {
	ID                 int               `json:"id"`
	Name               string            `json:"name"`
	Version            string            `json:"version"`
	OSDescription      string            `json:"osDescription,omitempty"`
	Enabled            bool              `json:"enabled"`
	Status             string            `json:"status"`
	ProvisioningState  string            `json:"provisioningState,omitempty"`
	CreatedOn          webapi.Time       `json:"createdOn"`
	SystemCapabilities map[string]string `json:"systemCapabilities,omitempty"`
	UserCapabilities   map[string]string `json:"userCapabilities,omitempty"`
}

// DeploymentGroup is a set of deployment targets.
type DeploymentGroup struct {
	ID           int                          `json:"id"`
	Name         string                       `json:"name"`
	Description  string                       `json:"description,omitempty"`
	MachineCount int                          `json:"machineCount"`
	Pool         *TaskAgentPoolReference      `json:"pool,omitempty"`
	Project      *webapi.TeamProjectReference `json:"project,omitempty"`
}

// TaskAgentPoolReference is a shallow reference to an agent pool.
type TaskAgentPoolReference struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsHosted bool   `json:"isHosted,omitempty"`
}

// NewDeploymentGroup holds the data needed to create a deployment group.
type NewDeploymentGroup struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PoolID      int    `json:"poolId,omitempty"`
}

// VariableGroup is a named set of variables shared between pipelines.
type VariableGroup struct {
	ID                             int                             `json:"id,omitempty"`
	Name                           string                          `json:"name"`
	Description                    string                          `json:"description,omitempty"`
	Type                           string                          `json:"type"`
	Variables                      map[string]VariableValue        `json:"variables"`
	IsShared                       bool                            `json:"isShared,omitempty"`
	CreatedBy                      *webapi.IdentityRef             `json:"createdBy,omitempty"`
	CreatedOn                      *webapi.Time                    `json:"createdOn,omitempty"`
	VariableGroupProjectReferences []VariableGroupProjectReference `json:"variableGroupProjectReferences,omitempty"`
}

// VariableValue is the value of a variable of a variable group. The value of
// secret variables is never returned by the API.
type VariableValue struct {
	Value    string `json:"value"`
	IsSecret bool   `json:"isSecret,omitempty"`
}

// VariableGroupProjectReference is a project a variable group is shared
// with.
type VariableGroupProjectReference struct {
	Name             string           `json:"name"`
	Description      string           `json:"description,omitempty"`
	ProjectReference ProjectReference `json:"projectReference"`
}

// ProjectReference references a project by ID.
type ProjectReference struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name,omitempty"`
}

// Environment is a pipeline environment, targeted by deployment jobs.
type Environment struct {
	ID             int                 `json:"id"`
	Name           string              `json:"name"`
	Description    string              `json:"description,omitempty"`
	CreatedBy      *webapi.IdentityRef `json:"createdBy,omitempty"`
	CreatedOn      webapi.Time         `json:"createdOn"`
	LastModifiedOn webapi.Time         `json:"lastModifiedOn"`
}

// NewEnvironment holds the data needed to create an environment.
type NewEnvironment struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// GetAgentsOptions filters the result of GetAgents.
type GetAgentsOptions struct {
	AgentName           string   `url:"agentName,omitempty"`
	IncludeCapabilities bool     `url:"includeCapabilities,omitempty"`
	Demands             []string `url:"demands,comma,omitempty"`
}
