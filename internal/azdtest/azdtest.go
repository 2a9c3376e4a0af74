// Package azdtest contains helpers for testing API area clients against a
// fake Azure DevOps server.
package azdtest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iver-wharf/azuredevops-go/pkg/connection"
)

// Organization and Project are the names used by connections created by
// NewConnection.
const (
	Organization = "org"
	Project      = "proj"
)

// Route is a single faked endpoint.
type Route struct {
	Method string
	// Path is matched against the unescaped request path, e.g
	// "/org/proj/_apis/build/builds".
	Path string
	// Query, if set, must match the request's query parameters. An empty
	// value matches an absent parameter.
	Query  map[string]string
	Status int
	Body   string
	Header http.Header
	// Check is called with the request before the response is written.
	Check func(t *testing.T, r *http.Request)
}

// NewConnection starts a fake Azure DevOps server serving the given routes
// and returns a connection where every service points to it. Requests that
// match no route fail the test.
func NewConnection(t *testing.T, routes ...Route) *connection.Connection {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, route := range routes {
			if route.Method != r.Method || route.Path != r.URL.Path || !matchQuery(route.Query, r) {
				continue
			}
			if route.Check != nil {
				route.Check(t, r)
			}
			for key, values := range route.Header {
				for _, v := range values {
					w.Header().Add(key, v)
				}
			}
			if route.Body != "" {
				w.Header().Set("Content-Type", "application/json")
			}
			status := route.Status
			if status == 0 {
				status = http.StatusOK
			}
			w.WriteHeader(status)
			io.WriteString(w, route.Body)
			return
		}
		t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	conn, err := connection.New(Organization, Project, "pat", connection.WithBaseURL(server.URL))
	require.NoError(t, err)
	return conn
}

func matchQuery(want map[string]string, r *http.Request) bool {
	q := r.URL.Query()
	for key, value := range want {
		if q.Get(key) != value {
			return false
		}
	}
	return true
}

// DecodeBody decodes the JSON request body into a generic value, for use with
// assertions in Route.Check. Check runs on the server's goroutine, so
// failures are reported with t.Errorf instead of stopping the test.
func DecodeBody(t *testing.T, r *http.Request) interface{} {
	t.Helper()
	var body interface{}
	assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

// DecodeObject decodes a JSON object request body. The result is empty, never
// nil, if the body is not an object.
func DecodeObject(t *testing.T, r *http.Request) map[string]interface{} {
	t.Helper()
	obj, ok := DecodeBody(t, r).(map[string]interface{})
	if !ok {
		t.Errorf("request body of %s %s is not a JSON object", r.Method, r.URL.Path)
		return map[string]interface{}{}
	}
	return obj
}

// ReadBody reads the raw request body.
func ReadBody(t *testing.T, r *http.Request) string {
	t.Helper()
	b, err := io.ReadAll(r.Body)
	assert.NoError(t, err)
	return string(b)
}
