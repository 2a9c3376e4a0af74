package wiki

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iver-wharf/azuredevops-go/internal/azdtest"
	"github.com/iver-wharf/azuredevops-go/pkg/requests"
)

func TestGetWikis(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodGet,
		Path:   "/org/proj/_apis/wiki/wikis",
		Body: `{"count": 1, "value": [{
			"id": "288d122c-dbd4-451d-aa5f-7dbbba070728",
			"name": "sampleProjectWiki",
			"type": "projectWiki",
			"projectId": "6ce954b1-ce1f-45d1-b94d-e6bf2464ba2c",
			"repositoryId": "288d122c-dbd4-451d-aa5f-7dbbba070728",
			"mappedPath": "/"
		}]}`,
	})

	wikis, err := NewClient(conn).GetWikis(context.Background())
	require.NoError(t, err)
	require.Len(t, wikis, 1)
	assert.Equal(t, TypeProjectWiki, wikis[0].Type)
	assert.Equal(t, "/", wikis[0].MappedPath)
}

func TestCreateWikiDefaultsToProjectWiki(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodPost,
		Path:   "/org/proj/_apis/wiki/wikis",
		Status: http.StatusCreated,
		Body:   `{"id": "288d122c-dbd4-451d-aa5f-7dbbba070728", "name": "sampleProjectWiki", "type": "projectWiki"}`,
		Check: func(t *testing.T, r *http.Request) {
			assert.Equal(t, map[string]interface{}{
				"name":      "sampleProjectWiki",
				"projectId": "6ce954b1-ce1f-45d1-b94d-e6bf2464ba2c",
				"type":      "projectWiki",
			}, azdtest.DecodeBody(t, r))
		},
	})

	wiki, err := NewClient(conn).CreateWiki(context.Background(), NewWiki{
		Name:      "sampleProjectWiki",
		ProjectID: "6ce954b1-ce1f-45d1-b94d-e6bf2464ba2c",
	})
	require.NoError(t, err)
	assert.Equal(t, "sampleProjectWiki", wiki.Name)
}

func TestGetPageReturnsETag(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodGet,
		Path:   "/org/proj/_apis/wiki/wikis/sampleProjectWiki/pages",
		Header: http.Header{"ETag": {`"7c7d9e0c4b27cd1d4a6b3a2a0f3c1d5e6f7a8b9c"`}},
		Body:   `{"id": 1, "path": "/SamplePage973", "order": 0, "gitItemPath": "/SamplePage973.md", "content": "Hello Wiki"}`,
		Check: func(t *testing.T, r *http.Request) {
			assert.Equal(t, "/SamplePage973", r.URL.Query().Get("path"))
			assert.Equal(t, "true", r.URL.Query().Get("includeContent"))
		},
	})

	resp, err := NewClient(conn).GetPage(context.Background(), "sampleProjectWiki", "/SamplePage973")
	require.NoError(t, err)
	assert.Equal(t, "Hello Wiki", resp.Page.Content)
	assert.Equal(t, `"7c7d9e0c4b27cd1d4a6b3a2a0f3c1d5e6f7a8b9c"`, resp.ETag)
}

func TestCreateOrUpdatePage(t *testing.T) {
	var testCases = []struct {
		name        string
		eTag        string
		wantIfMatch string
	}{
		{
			name:        "create",
			eTag:        "",
			wantIfMatch: "",
		},
		{
			name:        "update",
			eTag:        `"abc"`,
			wantIfMatch: `"abc"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conn := azdtest.NewConnection(t, azdtest.Route{
				Method: http.MethodPut,
				Path:   "/org/proj/_apis/wiki/wikis/sampleProjectWiki/pages",
				Header: http.Header{"ETag": {`"def"`}},
				Body:   `{"id": 1, "path": "/SamplePage973", "content": "Hello again"}`,
				Check: func(t *testing.T, r *http.Request) {
					assert.Equal(t, tc.wantIfMatch, r.Header.Get("If-Match"))
					assert.Equal(t, map[string]interface{}{"content": "Hello again"}, azdtest.DecodeBody(t, r))
				},
			})

			resp, err := NewClient(conn).CreateOrUpdatePage(context.Background(), "sampleProjectWiki", "/SamplePage973", "Hello again", tc.eTag)
			require.NoError(t, err)
			assert.Equal(t, `"def"`, resp.ETag)
		})
	}
}

func TestCreateOrUpdatePageConflict(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodPut,
		Path:   "/org/proj/_apis/wiki/wikis/sampleProjectWiki/pages",
		Status: http.StatusPreconditionFailed,
		Body:   `{"message": "The page '/SamplePage973' specified in the add operation already exists in the wiki.", "typeKey": "WikiPageAlreadyExistsException"}`,
	})

	_, err := NewClient(conn).CreateOrUpdatePage(context.Background(), "sampleProjectWiki", "/SamplePage973", "Hello", "")
	var statusErr requests.Non2xxStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, "WikiPageAlreadyExistsException", statusErr.TypeKey)
}

func TestDeletePage(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodDelete,
		Path:   "/org/proj/_apis/wiki/wikis/sampleProjectWiki/pages",
		Body:   `{"id": 1, "path": "/SamplePage973"}`,
	})

	resp, err := NewClient(conn).DeletePage(context.Background(), "sampleProjectWiki", "/SamplePage973")
	require.NoError(t, err)
	assert.Equal(t, "/SamplePage973", resp.Page.Path)
}

func TestGetWiki(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodGet,
		Path:   "/org/proj/_apis/wiki/wikis/docs",
		Body: `{
			"id": "3cf9ba06-b8bf-4cc0-9a4f-2a0b1ae2a4ab",
			"name": "docs",
			"type": "codeWiki",
			"mappedPath": "/docs",
			"versions": [{"version": "main"}]
		}`,
	})

	wiki, err := NewClient(conn).GetWiki(context.Background(), "docs")
	require.NoError(t, err)
	assert.Equal(t, "/docs", wiki.MappedPath)
	assert.Equal(t, []VersionDescriptor{{Version: "main"}}, wiki.Versions)
}

func TestDeleteWiki(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodDelete,
		Path:   "/org/proj/_apis/wiki/wikis/docs",
		Body:   `{"id": "3cf9ba06-b8bf-4cc0-9a4f-2a0b1ae2a4ab", "name": "docs", "type": "codeWiki"}`,
		Check: func(t *testing.T, r *http.Request) {
			assert.NotEmpty(t, r.URL.Query().Get("api-version"))
		},
	})

	deleted, err := NewClient(conn).DeleteWiki(context.Background(), "docs")
	require.NoError(t, err)
	assert.Equal(t, "docs", deleted.Name)
}
