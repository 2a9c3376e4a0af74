package distributedtask

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iver-wharf/azuredevops-go/internal/azdtest"
)

func TestGetAgentPoolsIsOrganizationScoped(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodGet,
		Path:   "/org/_apis/distributedtask/pools",
		Body:   `{"count": 1, "value": [{"id": 1, "name": "Default", "isHosted": false, "size": 2}]}`,
	})

	pools, err := NewClient(conn).GetAgentPools(context.Background())
	require.NoError(t, err)
	require.Len(t, pools, 1)
	assert.Equal(t, "Default", pools[0].Name)
	assert.Equal(t, 2, pools[0].Size)
}

func TestGetAgents(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodGet,
		Path:   "/org/_apis/distributedtask/pools/1/agents",
		Query:  map[string]string{"includeCapabilities": "true", "demands": "docker,node"},
		Body: `{"count": 1, "value": [
			{"id": 5, "name": "agent-1", "version": "3.220.0", "enabled": true, "status": "online",
			 "systemCapabilities": {"docker": "/usr/bin/docker"}}
		]}`,
	})

	agents, err := NewClient(conn).GetAgents(context.Background(), 1, &GetAgentsOptions{
		IncludeCapabilities: true,
		Demands:             []string{"docker", "node"},
	})
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, AgentStatusOnline, agents[0].Status)
	assert.Equal(t, "/usr/bin/docker", agents[0].SystemCapabilities["docker"])
}

func TestGetAndDeleteAgent(t *testing.T) {
	conn := azdtest.NewConnection(t,
		azdtest.Route{
			Method: http.MethodGet,
			Path:   "/org/_apis/distributedtask/pools/1/agents/5",
			Body:   `{"id": 5, "name": "agent-1", "status": "offline"}`,
		},
		azdtest.Route{
			Method: http.MethodDelete,
			Path:   "/org/_apis/distributedtask/pools/1/agents/5",
			Status: http.StatusNoContent,
		})
	client := NewClient(conn)

	agent, err := client.GetAgent(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, AgentStatusOffline, agent.Status)
	require.NoError(t, client.DeleteAgent(context.Background(), 1, 5))
}

func TestDeploymentGroups(t *testing.T) {
	conn := azdtest.NewConnection(t,
		azdtest.Route{
			Method: http.MethodGet,
			Path:   "/org/proj/_apis/distributedtask/deploymentgroups",
			Body:   `{"count": 1, "value": [{"id": 2, "name": "web", "machineCount": 3, "pool": {"id": 9, "name": "web"}}]}`,
		},
		azdtest.Route{
			Method: http.MethodPost,
			Path:   "/org/proj/_apis/distributedtask/deploymentgroups",
			Body:   `{"id": 3, "name": "db"}`,
			Check: func(t *testing.T, r *http.Request) {
				assert.Equal(t, map[string]interface{}{"name": "db"}, azdtest.DecodeBody(t, r))
			},
		},
		azdtest.Route{
			Method: http.MethodDelete,
			Path:   "/org/proj/_apis/distributedtask/deploymentgroups/3",
			Status: http.StatusNoContent,
		})
	client := NewClient(conn)

	groups, err := client.GetDeploymentGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, 3, groups[0].MachineCount)
	require.NotNil(t, groups[0].Pool)
	assert.Equal(t, 9, groups[0].Pool.ID)

	created, err := client.AddDeploymentGroup(context.Background(), NewDeploymentGroup{Name: "db"})
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)

	require.NoError(t, client.DeleteDeploymentGroup(context.Background(), 3))
}

func TestGetVariableGroupsByName(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodGet,
		Path:   "/org/proj/_apis/distributedtask/variablegroups",
		Query:  map[string]string{"groupName": "shared"},
		Body: `{"count": 1, "value": [{"id": 4, "name": "shared", "type": "Vsts", "variables": {
			"region": {"value": "westeurope"},
			"password": {"value": null, "isSecret": true}
		}}]}`,
	})

	groups, err := NewClient(conn).GetVariableGroups(context.Background(), "shared")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, VariableValue{Value: "westeurope"}, groups[0].Variables["region"])
	assert.Equal(t, VariableValue{IsSecret: true}, groups[0].Variables["password"])
}

func TestAddVariableGroup(t *testing.T) {
	projectID := uuid.MustParse("eb6e4656-77fc-42a1-9181-4c6d8e9da5d1")
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodPost,
		Path:   "/org/_apis/distributedtask/variablegroups",
		Body:   `{"id": 4, "name": "shared", "type": "Vsts"}`,
		Check: func(t *testing.T, r *http.Request) {
			body := azdtest.DecodeObject(t, r)
			assert.Equal(t, "Vsts", body["type"])
			assert.NotContains(t, body, "id")
			refs, _ := body["variableGroupProjectReferences"].([]interface{})
			if assert.Len(t, refs, 1) {
				ref := refs[0].(map[string]interface{})
				assert.Equal(t, projectID.String(), ref["projectReference"].(map[string]interface{})["id"])
			}
		},
	})

	created, err := NewClient(conn).AddVariableGroup(context.Background(), VariableGroup{
		Name:      "shared",
		Variables: map[string]VariableValue{"region": {Value: "westeurope"}},
		VariableGroupProjectReferences: []VariableGroupProjectReference{
			{Name: "shared", ProjectReference: ProjectReference{ID: projectID}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
}

func TestAddVariableGroupRequiresProject(t *testing.T) {
	conn := azdtest.NewConnection(t)
	_, err := NewClient(conn).AddVariableGroup(context.Background(), VariableGroup{Name: "shared"})
	assert.Error(t, err)
}

func TestDeleteVariableGroup(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodDelete,
		Path:   "/org/_apis/distributedtask/variablegroups/4",
		Query:  map[string]string{"projectIds": "a,b"},
		Status: http.StatusNoContent,
	})
	client := NewClient(conn)

	require.NoError(t, client.DeleteVariableGroup(context.Background(), 4, []string{"a", "b"}))
	assert.Error(t, client.DeleteVariableGroup(context.Background(), 4, nil))
}

func TestEnvironments(t *testing.T) {
	conn := azdtest.NewConnection(t,
		azdtest.Route{
			Method: http.MethodGet,
			Path:   "/org/proj/_apis/distributedtask/environments",
			Body:   `{"count": 1, "value": [{"id": 1, "name": "production", "createdOn": "2023-04-01T10:00:00Z"}]}`,
		},
		azdtest.Route{
			Method: http.MethodPost,
			Path:   "/org/proj/_apis/distributedtask/environments",
			Body:   `{"id": 2, "name": "staging", "description": "pre-prod"}`,
			Check: func(t *testing.T, r *http.Request) {
				assert.Equal(t, map[string]interface{}{"name": "staging", "description": "pre-prod"}, azdtest.DecodeBody(t, r))
			},
		},
		azdtest.Route{
			Method: http.MethodDelete,
			Path:   "/org/proj/_apis/distributedtask/environments/2",
			Status: http.StatusNoContent,
		})
	client := NewClient(conn)

	envs, err := client.GetEnvironments(context.Background())
	require.NoError(t, err)
	require.Len(t, envs, 1)
	assert.Equal(t, 2023, envs[0].CreatedOn.Year())

	created, err := client.AddEnvironment(context.Background(), NewEnvironment{Name: "staging", Description: "pre-prod"})
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)

	require.NoError(t, client.DeleteEnvironment(context.Background(), 2))
}
