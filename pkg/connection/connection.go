// Package connection binds an Azure DevOps organization, and optionally a
// project, to the credentials and HTTP client used to reach it.
//
// All API area clients are created from a *Connection, which also decides
// which host each area is served from.
package connection

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
	"github.com/iver-wharf/azuredevops-go/pkg/requests"
	"github.com/iver-wharf/wharf-core/pkg/cacertutil"
	"github.com/iver-wharf/wharf-core/pkg/logger"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

var log = logger.NewScoped("CONNECTION")

// ErrNoProject is returned when building a project scoped URL on a connection
// that has no project set.
var ErrNoProject = errors.New("connection has no project")

// Service identifies which Azure DevOps host an API area is served from.
type Service int

const (
	// ServiceDefault is dev.azure.com, serving most areas.
	ServiceDefault Service = iota
	// ServiceVSSPS serves graph and identity areas.
	ServiceVSSPS
	// ServiceVSRM serves release management.
	ServiceVSRM
	// ServiceFeeds serves artifact feeds.
	ServiceFeeds
	// ServiceVSAEX serves member entitlement management.
	ServiceVSAEX
	// ServiceExtMgmt serves extension management.
	ServiceExtMgmt
	// ServiceApp serves accounts, profiles and OAuth, and is not scoped by
	// organization.
	ServiceApp
)

var defaultServiceURLs = map[Service]string{
	ServiceDefault: "https://dev.azure.com",
	ServiceVSSPS:   "https://vssps.dev.azure.com",
	ServiceVSRM:    "https://vsrm.dev.azure.com",
	ServiceFeeds:   "https://feeds.dev.azure.com",
	ServiceVSAEX:   "https://vsaex.dev.azure.com",
	ServiceExtMgmt: "https://extmgmt.dev.azure.com",
	ServiceApp:     "https://app.vssps.visualstudio.com",
}

func (s Service) String() string {
	switch s {
	case ServiceDefault:
		return "default"
	case ServiceVSSPS:
		return "vssps"
	case ServiceVSRM:
		return "vsrm"
	case ServiceFeeds:
		return "feeds"
	case ServiceVSAEX:
		return "vsaex"
	case ServiceExtMgmt:
		return "extmgmt"
	case ServiceApp:
		return "app"
	default:
		return fmt.Sprintf("Service(%d)", int(s))
	}
}

// Connection is used to talk with the Azure DevOps API for a single
// organization.
type Connection struct {
	*requests.Client
	Organization string
	// Project is used by project scoped requests. May be empty if only
	// organization level APIs are used.
	Project string

	serviceURLs map[Service]*url.URL
	limiter     *rate.Limiter
}

// Option configures a Connection.
type Option func(*Connection) error

// New creates a connection to an Azure DevOps organization, authenticating
// with a personal access token. With an empty token and no WithTokenSource
// option, requests are sent without credentials, which is enough to read
// public projects.
func New(organization, project, personalAccessToken string, opts ...Option) (*Connection, error) {
	if organization == "" {
		return nil, errors.New("organization must not be empty")
	}
	c := &Connection{
		Client: &requests.Client{
			HTTPClient: &http.Client{},
		},
		Organization: organization,
		Project:      project,
		serviceURLs:  make(map[Service]*url.URL, len(defaultServiceURLs)),
	}
	for svc, raw := range defaultServiceURLs {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, err
		}
		c.serviceURLs[svc] = u
	}
	if personalAccessToken != "" {
		c.Authorizer = requests.PersonalAccessToken(personalAccessToken)
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.limiter != nil {
		transport := c.HTTPClient.Transport
		c.HTTPClient = &http.Client{
			Transport:     requests.LimitRate(transport, c.limiter),
			CheckRedirect: c.HTTPClient.CheckRedirect,
			Jar:           c.HTTPClient.Jar,
			Timeout:       c.HTTPClient.Timeout,
		}
	}
	log.Debug().
		WithString("organization", organization).
		WithString("project", project).
		WithStringer("baseUrl", c.serviceURLs[ServiceDefault]).
		Message("Created connection.")
	return c, nil
}

// WithBaseURL makes every service be reached through the same base URL. This
// is the layout of Azure DevOps Server, where the base URL includes the
// collection path, e.g "https://tfs.example.com/tfs".
func WithBaseURL(rawURL string) Option {
	return func(c *Connection) error {
		u, err := parseBaseURL(rawURL)
		if err != nil {
			return err
		}
		for svc := range c.serviceURLs {
			c.serviceURLs[svc] = u
		}
		return nil
	}
}

// WithServiceURL overrides the base URL of a single service.
func WithServiceURL(svc Service, rawURL string) Option {
	return func(c *Connection) error {
		u, err := parseBaseURL(rawURL)
		if err != nil {
			return err
		}
		c.serviceURLs[svc] = u
		return nil
	}
}

// WithHTTPClient sets the HTTP client used for all requests.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Connection) error {
		if client == nil {
			return errors.New("http client must not be nil")
		}
		c.HTTPClient = client
		return nil
	}
}

// WithCACertsFile uses an HTTP client that trusts the certificates in the
// given file in addition to the system certificates.
func WithCACertsFile(certsFile string) Option {
	return func(c *Connection) error {
		client, err := cacertutil.NewHTTPClientWithCerts(certsFile)
		if err != nil {
			return fmt.Errorf("load CA certs from %q: %w", certsFile, err)
		}
		c.HTTPClient = client
		return nil
	}
}

// WithTokenSource authenticates using OAuth2 bearer tokens instead of a
// personal access token.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(c *Connection) error {
		if ts == nil {
			return errors.New("token source must not be nil")
		}
		c.Authorizer = requests.TokenSourceAuthorizer{TokenSource: ts}
		return nil
	}
}

// WithRateLimit limits how fast requests are sent.
func WithRateLimit(limiter *rate.Limiter) Option {
	return func(c *Connection) error {
		c.limiter = limiter
		return nil
	}
}

// WithUserAgent sets the User-Agent header of all requests.
func WithUserAgent(userAgent string) Option {
	return func(c *Connection) error {
		c.UserAgent = userAgent
		return nil
	}
}

// WithProject returns a shallow copy of the connection that is scoped to
// another project. The copy shares the HTTP client and credentials.
func (c *Connection) WithProject(project string) *Connection {
	copied := *c
	copied.Project = project
	return &copied
}

// ServiceURL returns a copy of the base URL of a service.
func (c *Connection) ServiceURL(svc Service) *url.URL {
	u, ok := c.serviceURLs[svc]
	if !ok {
		u = c.serviceURLs[ServiceDefault]
	}
	copied := *u
	return &copied
}

// HostURL builds a URL that is not scoped by organization, e.g
// "https://app.vssps.visualstudio.com/_apis/accounts".
func (c *Connection) HostURL(svc Service, apiVersion string, queries interface{}, format string, values ...interface{}) (*url.URL, error) {
	return c.buildURL(svc, nil, apiVersion, queries, format, values...)
}

// OrganizationURL builds an organization scoped URL, e.g
// "https://dev.azure.com/{org}/_apis/projects".
func (c *Connection) OrganizationURL(svc Service, apiVersion string, queries interface{}, format string, values ...interface{}) (*url.URL, error) {
	return c.buildURL(svc, []string{c.Organization}, apiVersion, queries, format, values...)
}

// ProjectURL builds a project scoped URL, e.g
// "https://dev.azure.com/{org}/{project}/_apis/build/builds".
func (c *Connection) ProjectURL(svc Service, apiVersion string, queries interface{}, format string, values ...interface{}) (*url.URL, error) {
	if c.Project == "" {
		return nil, ErrNoProject
	}
	return c.buildURL(svc, []string{c.Organization, c.Project}, apiVersion, queries, format, values...)
}

// TeamURL builds a team scoped URL, e.g
// "https://dev.azure.com/{org}/{project}/{team}/_apis/work/teamsettings".
func (c *Connection) TeamURL(svc Service, team, apiVersion string, queries interface{}, format string, values ...interface{}) (*url.URL, error) {
	if c.Project == "" {
		return nil, ErrNoProject
	}
	if team == "" {
		return nil, errors.New("team must not be empty")
	}
	return c.buildURL(svc, []string{c.Organization, c.Project, team}, apiVersion, queries, format, values...)
}

func (c *Connection) buildURL(svc Service, scope []string, apiVersion string, queries interface{}, format string, values ...interface{}) (*url.URL, error) {
	q, err := encodeQueries(queries)
	if err != nil {
		return nil, err
	}
	if apiVersion != "" {
		q.Set("api-version", apiVersion)
	}

	u := c.ServiceURL(svc)
	var sb strings.Builder
	sb.WriteString(strings.TrimSuffix(u.Path, "/"))
	for _, segment := range scope {
		sb.WriteByte('/')
		sb.WriteString(segment)
	}
	sb.WriteString("/_apis/")
	sb.WriteString(strings.TrimPrefix(fmt.Sprintf(format, values...), "/"))
	u.Path = strings.TrimSuffix(sb.String(), "/")
	u.RawPath = ""
	u.RawQuery = q.Encode()
	return u, nil
}

// encodeQueries accepts nil, url.Values, map[string][]string or a struct with
// "url" tags, as understood by github.com/google/go-querystring.
func encodeQueries(queries interface{}) (url.Values, error) {
	switch v := queries.(type) {
	case nil:
		return url.Values{}, nil
	case url.Values:
		return cloneValues(v), nil
	case map[string][]string:
		return cloneValues(v), nil
	default:
		q, err := query.Values(v)
		if err != nil {
			return nil, fmt.Errorf("encode query parameters: %w", err)
		}
		return q, nil
	}
}

func cloneValues(v url.Values) url.Values {
	q := make(url.Values, len(v))
	for key, values := range v {
		q[key] = append([]string(nil), values...)
	}
	return q
}

func parseBaseURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL %q: %w", rawURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", rawURL)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
