package release

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iver-wharf/azuredevops-go/internal/azdtest"
)

func TestGetReleaseDefinitionWithApprovals(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodGet,
		Path:   "/org/proj/_apis/release/definitions/1",
		Body: `{
			"id": 1,
			"name": "Fabrikam-web",
			"environments": [{
				"id": 2,
				"name": "Production",
				"rank": 1,
				"preDeployApprovals": {
					"approvals": [{"rank": 1, "isAutomated": false, "approver": {"displayName": "Chuck Reinhart", "id": "3b5f0c34-4aec-4bf4-8708-1d36f0dbc468"}}],
					"approvalOptions": {"requiredApproverCount": 1, "releaseCreatorCanBeApprover": false, "timeoutInMinutes": 43200, "executionOrder": "beforeGates"}
				},
				"postDeployApprovals": {
					"approvals": [{"rank": 1, "isAutomated": true, "isNotificationOn": false}]
				}
			}]
		}`,
	})

	definition, err := NewClient(conn).GetReleaseDefinition(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, definition.Environments, 1)
	env := definition.Environments[0]
	require.NotNil(t, env.PreDeployApprovals)
	require.Len(t, env.PreDeployApprovals.Approvals, 1)
	require.NotNil(t, env.PreDeployApprovals.Approvals[0].Approver)
	assert.Equal(t, "Chuck Reinhart", env.PreDeployApprovals.Approvals[0].Approver.DisplayName)
	require.NotNil(t, env.PreDeployApprovals.ApprovalOptions)
	assert.Equal(t, 43200, env.PreDeployApprovals.ApprovalOptions.TimeoutInMinutes)
	require.NotNil(t, env.PostDeployApprovals)
	assert.True(t, env.PostDeployApprovals.Approvals[0].IsAutomated)
	assert.Nil(t, env.PostDeployApprovals.ApprovalOptions)
}

func TestGetReleases(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodGet,
		Path:   "/org/proj/_apis/release/releases",
		Body:   `{"count": 1, "value": [{"id": 18, "name": "Release-18", "status": "active", "createdOn": "2017-06-16T01:36:20.397Z", "releaseDefinition": {"id": 1, "name": "Fabrikam-web"}}]}`,
		Check: func(t *testing.T, r *http.Request) {
			assert.Equal(t, "1", r.URL.Query().Get("definitionId"))
			assert.Equal(t, "5", r.URL.Query().Get("$top"))
		},
	})

	releases, err := NewClient(conn).GetReleases(context.Background(), &GetReleasesOptions{DefinitionID: 1, Top: 5})
	require.NoError(t, err)
	require.Len(t, releases, 1)
	assert.Equal(t, StatusActive, releases[0].Status)
	require.NotNil(t, releases[0].ReleaseDefinition)
	assert.Equal(t, "Fabrikam-web", releases[0].ReleaseDefinition.Name)
}

func TestCreateRelease(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodPost,
		Path:   "/org/proj/_apis/release/releases",
		Body:   `{"id": 19, "name": "Release-19", "status": "active"}`,
		Check: func(t *testing.T, r *http.Request) {
			assert.Equal(t, map[string]interface{}{
				"definitionId": float64(1),
				"description":  "Creating Sample release",
				"artifacts": []interface{}{
					map[string]interface{}{
						"alias":             "Fabrikam.CI",
						"instanceReference": map[string]interface{}{"id": "2", "name": "20220304.1"},
					},
				},
			}, azdtest.DecodeBody(t, r))
		},
	})

	release, err := NewClient(conn).CreateRelease(context.Background(), StartMetadata{
		DefinitionID: 1,
		Description:  "Creating Sample release",
		Artifacts: []ArtifactMetadata{
			{Alias: "Fabrikam.CI", InstanceReference: BuildVersion{ID: "2", Name: "20220304.1"}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 19, release.ID)
}

func TestGetApprovals(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodGet,
		Path:   "/org/proj/_apis/release/approvals",
		Body:   `{"count": 1, "value": [{"id": 31, "revision": 1, "approvalType": "preDeploy", "status": "pending", "isAutomated": false, "release": {"id": 18, "name": "Release-18"}}]}`,
		Check: func(t *testing.T, r *http.Request) {
			assert.Equal(t, "18,19", r.URL.Query().Get("releaseIdsFilter"))
		},
	})

	approvals, err := NewClient(conn).GetApprovals(context.Background(), &GetApprovalsOptions{ReleaseIDs: []int{18, 19}})
	require.NoError(t, err)
	require.Len(t, approvals, 1)
	assert.Equal(t, ApprovalStatusPending, approvals[0].Status)
	require.NotNil(t, approvals[0].Release)
	assert.Equal(t, 18, approvals[0].Release.ID)
}

func TestUpdateApproval(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodPatch,
		Path:   "/org/proj/_apis/release/approvals/31",
		Body:   `{"id": 31, "status": "approved", "comments": "Good to go!"}`,
		Check: func(t *testing.T, r *http.Request) {
			assert.Equal(t, map[string]interface{}{"status": "approved", "comments": "Good to go!"}, azdtest.DecodeBody(t, r))
		},
	})

	approval, err := NewClient(conn).UpdateApproval(context.Background(), 31, ApprovalUpdate{
		Status:   ApprovalStatusApproved,
		Comments: "Good to go!",
	})
	require.NoError(t, err)
	assert.Equal(t, ApprovalStatusApproved, approval.Status)
}

func TestDeleteReleaseDefinition(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodDelete,
		Path:   "/org/proj/_apis/release/definitions/1",
		Status: http.StatusNoContent,
	})

	assert.NoError(t, NewClient(conn).DeleteReleaseDefinition(context.Background(), 1))
}

func TestGetReleaseDefinitions(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodGet,
		Path:   "/org/proj/_apis/release/definitions",
		Query: map[string]string{
			"searchText": "Fabrikam",
			"$expand":    "environments",
		},
		Body: `{"count": 2, "value": [
			{"id": 1, "name": "Fabrikam-web", "path": "\\"},
			{"id": 2, "name": "Fabrikam-api", "path": "\\api"}
		]}`,
	})

	definitions, err := NewClient(conn).GetReleaseDefinitions(context.Background(), &GetDefinitionsOptions{
		SearchText: "Fabrikam",
		Expand:     "environments",
	})
	require.NoError(t, err)
	require.Len(t, definitions, 2)
	assert.Equal(t, `\api`, definitions[1].Path)
}

func TestCreateReleaseDefinition(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodPost,
		Path:   "/org/proj/_apis/release/definitions",
		Body:   `{"id": 3, "name": "Fabrikam-docs", "revision": 1, "environments": [{"id": 4, "name": "Production", "rank": 1}]}`,
		Check: func(t *testing.T, r *http.Request) {
			body := azdtest.DecodeObject(t, r)
			assert.Equal(t, "Fabrikam-docs", body["name"])
			assert.NotContains(t, body, "id")
			assert.Equal(t, []interface{}{
				map[string]interface{}{"name": "Production", "rank": float64(1)},
			}, body["environments"])
		},
	})

	created, err := NewClient(conn).CreateReleaseDefinition(context.Background(), Definition{
		Name:         "Fabrikam-docs",
		Environments: []DefinitionEnvironment{{Name: "Production", Rank: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, created.ID)
	require.Len(t, created.Environments, 1)
	assert.Equal(t, 4, created.Environments[0].ID)
}

func TestGetRelease(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodGet,
		Path:   "/org/proj/_apis/release/releases/18",
		Body: `{
			"id": 18,
			"name": "Release-18",
			"status": "active",
			"environments": [{"id": 5, "name": "Production", "status": "succeeded", "rank": 1}],
			"variables": {"env": {"value": "prod"}}
		}`,
	})

	release, err := NewClient(conn).GetRelease(context.Background(), 18)
	require.NoError(t, err)
	assert.Equal(t, "Release-18", release.Name)
	require.Len(t, release.Environments, 1)
	assert.Equal(t, "succeeded", release.Environments[0].Status)
	assert.Equal(t, "prod", release.Variables["env"].Value)
}
