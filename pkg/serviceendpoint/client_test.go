package serviceendpoint

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iver-wharf/azuredevops-go/internal/azdtest"
)

var projectID = uuid.MustParse("6ce954b1-ce1f-45d1-b94d-e6bf2464ba2c")

func TestGetServiceEndpoints(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodGet,
		Path:   "/org/proj/_apis/serviceendpoint/endpoints",
		Body: `{"count": 1, "value": [{
			"id": "5e47a0d8-c745-44f8-8f93-784f18ff31c4",
			"name": "MyNewServiceEndpoint",
			"type": "Generic",
			"url": "https://myserver",
			"authorization": {"scheme": "UsernamePassword", "parameters": {"username": "myusername"}},
			"isReady": true
		}]}`,
		Check: func(t *testing.T, r *http.Request) {
			assert.Equal(t, "7.1-preview.4", r.URL.Query().Get("api-version"))
			assert.Equal(t, "Generic", r.URL.Query().Get("type"))
		},
	})

	endpoints, err := NewClient(conn).GetServiceEndpoints(context.Background(), &GetServiceEndpointsOptions{Type: "Generic"})
	require.NoError(t, err)
	require.Len(t, endpoints, 1)
	require.NotNil(t, endpoints[0].Authorization)
	assert.Equal(t, SchemeUsernamePassword, endpoints[0].Authorization.Scheme)
	assert.Equal(t, "myusername", endpoints[0].Authorization.Parameters["username"])
}

func TestCreateServiceEndpointIsOrganizationScoped(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodPost,
		Path:   "/org/_apis/serviceendpoint/endpoints",
		Body:   `{"id": "5e47a0d8-c745-44f8-8f93-784f18ff31c4", "name": "MyNewServiceEndpoint", "type": "Generic", "url": "https://myserver"}`,
		Check: func(t *testing.T, r *http.Request) {
			body := azdtest.DecodeObject(t, r)
			assert.Equal(t, []interface{}{
				map[string]interface{}{
					"name":             "MyNewServiceEndpoint",
					"projectReference": map[string]interface{}{"id": projectID.String()},
				},
			}, body["serviceEndpointProjectReferences"])
		},
	})

	endpoint, err := NewClient(conn).CreateServiceEndpoint(context.Background(), ServiceEndpoint{
		Name: "MyNewServiceEndpoint",
		Type: "Generic",
		URL:  "https://myserver",
		Authorization: &EndpointAuthorization{
			Scheme:     SchemeUsernamePassword,
			Parameters: map[string]string{"username": "myusername", "password": "mypassword"},
		},
		ServiceEndpointProjectReferences: []ProjectReference{
			{ProjectReference: ProjectRef{ID: projectID}, Name: "MyNewServiceEndpoint"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "5e47a0d8-c745-44f8-8f93-784f18ff31c4", endpoint.ID)
}

func TestCreateServiceEndpointRequiresProject(t *testing.T) {
	conn := azdtest.NewConnection(t)
	_, err := NewClient(conn).CreateServiceEndpoint(context.Background(), ServiceEndpoint{Name: "x"})
	assert.Error(t, err)
}

func TestDeleteServiceEndpoint(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodDelete,
		Path:   "/org/_apis/serviceendpoint/endpoints/5e47a0d8-c745-44f8-8f93-784f18ff31c4",
		Status: http.StatusNoContent,
		Check: func(t *testing.T, r *http.Request) {
			assert.Equal(t, "a,b", r.URL.Query().Get("projectIds"))
		},
	})

	err := NewClient(conn).DeleteServiceEndpoint(context.Background(), "5e47a0d8-c745-44f8-8f93-784f18ff31c4", []string{"a", "b"})
	assert.NoError(t, err)
}

func TestGetServiceEndpoint(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodGet,
		Path:   "/org/proj/_apis/serviceendpoint/endpoints/5e47a0d8-c745-44f8-8f93-784f18ff31c4",
		Body: `{
			"id": "5e47a0d8-c745-44f8-8f93-784f18ff31c4",
			"name": "MyNewServiceEndpoint",
			"type": "Generic",
			"url": "https://myserver",
			"isShared": true,
			"data": {"environment": "AzureCloud"}
		}`,
	})

	endpoint, err := NewClient(conn).GetServiceEndpoint(context.Background(), "5e47a0d8-c745-44f8-8f93-784f18ff31c4")
	require.NoError(t, err)
	assert.Equal(t, "https://myserver", endpoint.URL)
	assert.True(t, endpoint.IsShared)
	assert.Equal(t, "AzureCloud", endpoint.Data["environment"])
}

func TestUpdateServiceEndpoint(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodPut,
		Path:   "/org/_apis/serviceendpoint/endpoints/5e47a0d8-c745-44f8-8f93-784f18ff31c4",
		Body:   `{"id": "5e47a0d8-c745-44f8-8f93-784f18ff31c4", "name": "Renamed", "type": "Generic", "url": "https://otherserver"}`,
		Check: func(t *testing.T, r *http.Request) {
			assert.Equal(t, "7.1-preview.4", r.URL.Query().Get("api-version"))
			body := azdtest.DecodeObject(t, r)
			assert.Equal(t, "Renamed", body["name"])
			assert.Equal(t, "https://otherserver", body["url"])
		},
	})

	endpoint, err := NewClient(conn).UpdateServiceEndpoint(context.Background(), "5e47a0d8-c745-44f8-8f93-784f18ff31c4", ServiceEndpoint{
		ID:   "5e47a0d8-c745-44f8-8f93-784f18ff31c4",
		Name: "Renamed",
		Type: "Generic",
		URL:  "https://otherserver",
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", endpoint.Name)
}
