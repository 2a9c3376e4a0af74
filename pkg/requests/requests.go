package requests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/iver-wharf/wharf-core/pkg/logger"
)

var log = logger.NewScoped("REQUESTS")

const (
	contentTypeJSON      = "application/json"
	contentTypeJSONPatch = "application/json-patch+json"
	contentTypeForm      = "application/x-www-form-urlencoded"
)

// Client sends requests to the Azure DevOps REST API.
type Client struct {
	// HTTPClient is used for all requests. http.DefaultClient is used if nil.
	HTTPClient *http.Client
	// Authorizer is applied to every request. No credentials are added if nil.
	Authorizer Authorizer
	UserAgent  string
}

// Request is a single HTTP request to send with Client.Do.
type Request struct {
	Method      string
	URL         *url.URL
	Body        io.Reader
	ContentType string
	Header      http.Header
}

// Response is the fully read response of a successful request.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// ConstructURL creates a URL from a base URL, a map of query parameters, and
// a formatted path.
func ConstructURL(
	rawURL string, queries map[string][]string, format string, values ...interface{}) (*url.URL, error) {

	urlPath, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	urlPath.Path = strings.TrimSuffix(urlPath.Path, "/") + fmt.Sprintf(format, values...)
	var q url.Values = queries
	urlPath.RawQuery = q.Encode()

	return urlPath, nil
}

// Do sends the request and reads the whole response body. Non-2xx responses
// are returned as Non2xxStatusError.
func (c *Client) Do(ctx context.Context, r Request) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL.String(), r.Body)
	if err != nil {
		return nil, err
	}
	for key, values := range r.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if r.ContentType != "" {
		req.Header.Set("Content-Type", r.ContentType)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", contentTypeJSON)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if c.Authorizer != nil {
		if err := c.Authorizer.Authorize(req); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	resp, err := c.httpClient().Do(req)
	if err != nil {
		log.Debug().
			WithError(err).
			WithString("method", r.Method).
			WithString("url", redactTokenInURL(r.URL.String())).
			Message("Failed to send request.")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	log.Debug().
		WithString("method", r.Method).
		WithString("url", redactTokenInURL(r.URL.String())).
		WithInt("status", resp.StatusCode).
		WithDuration("took", time.Since(start)).
		Message("Sent request.")

	if resp.StatusCode == http.StatusNonAuthoritativeInfo {
		return nil, ErrSignInRedirect
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newNon2xxStatusError(resp, body)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// GetUnmarshalJSON invokes a GET request. On success the response body will
// be unmarshalled as JSON into result.
func (c *Client) GetUnmarshalJSON(ctx context.Context, result interface{}, urlPath *url.URL) error {
	return c.sendJSON(ctx, http.MethodGet, result, urlPath, nil, "")
}

// GetAsString invokes a GET request and returns the response as a string.
func (c *Client) GetAsString(ctx context.Context, urlPath *url.URL) (string, error) {
	resp, err := c.Do(ctx, Request{
		Method: http.MethodGet,
		URL:    urlPath,
		Header: http.Header{"Accept": []string{"text/plain"}},
	})
	if err != nil {
		return "", err
	}
	return string(resp.Body), nil
}

// PostJSON invokes a POST request with body marshalled as JSON.
func (c *Client) PostJSON(ctx context.Context, result interface{}, urlPath *url.URL, body interface{}) error {
	return c.sendJSON(ctx, http.MethodPost, result, urlPath, body, contentTypeJSON)
}

// PatchJSON invokes a PATCH request with body marshalled as JSON. The body may
// be an object or a list.
func (c *Client) PatchJSON(ctx context.Context, result interface{}, urlPath *url.URL, body interface{}) error {
	return c.sendJSON(ctx, http.MethodPatch, result, urlPath, body, contentTypeJSON)
}

// PatchJSONPatch invokes a PATCH request with a JSON Patch document as body.
func (c *Client) PatchJSONPatch(ctx context.Context, result interface{}, urlPath *url.URL, body interface{}) error {
	return c.sendJSON(ctx, http.MethodPatch, result, urlPath, body, contentTypeJSONPatch)
}

// PostJSONPatch invokes a POST request with a JSON Patch document as body,
// which is how work items are created.
func (c *Client) PostJSONPatch(ctx context.Context, result interface{}, urlPath *url.URL, body interface{}) error {
	return c.sendJSON(ctx, http.MethodPost, result, urlPath, body, contentTypeJSONPatch)
}

// PutJSON invokes a PUT request with body marshalled as JSON.
func (c *Client) PutJSON(ctx context.Context, result interface{}, urlPath *url.URL, body interface{}) error {
	return c.sendJSON(ctx, http.MethodPut, result, urlPath, body, contentTypeJSON)
}

// Delete invokes a DELETE request. The response body is unmarshalled into
// result unless result is nil.
func (c *Client) Delete(ctx context.Context, result interface{}, urlPath *url.URL) error {
	return c.sendJSON(ctx, http.MethodDelete, result, urlPath, nil, "")
}

// PostForm invokes a POST request with form encoded values.
func (c *Client) PostForm(ctx context.Context, result interface{}, urlPath *url.URL, values url.Values) error {
	resp, err := c.Do(ctx, Request{
		Method:      http.MethodPost,
		URL:         urlPath,
		Body:        strings.NewReader(values.Encode()),
		ContentType: contentTypeForm,
	})
	if err != nil {
		return err
	}
	return unmarshalBody(resp.Body, result)
}

func (c *Client) sendJSON(ctx context.Context, method string, result interface{}, urlPath *url.URL, body interface{}, contentType string) error {
	req, err := NewJSONRequest(method, urlPath, body)
	if err != nil {
		return err
	}
	if body != nil {
		req.ContentType = contentType
	}
	resp, err := c.Do(ctx, req)
	if err != nil {
		return err
	}
	return resp.DecodeJSON(result)
}

// NewJSONRequest creates a request with the body marshalled as JSON. A nil
// body sends no body and no Content-Type header.
func NewJSONRequest(method string, urlPath *url.URL, body interface{}) (Request, error) {
	req := Request{
		Method: method,
		URL:    urlPath,
		Header: http.Header{},
	}
	if body == nil {
		return req, nil
	}
	b, err := json.Marshal(body)
	if err != nil {
		return Request{}, fmt.Errorf("marshal request body: %w", err)
	}
	req.Body = bytes.NewReader(b)
	req.ContentType = contentTypeJSON
	return req, nil
}

// DecodeJSON unmarshals the response body as JSON into result. An empty body
// or a nil result is a no-op.
func (r *Response) DecodeJSON(result interface{}) error {
	return unmarshalBody(r.Body, result)
}

func unmarshalBody(body []byte, result interface{}) error {
	if result == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("unmarshal response body: %w", err)
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
