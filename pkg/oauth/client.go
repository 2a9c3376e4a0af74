// Package oauth implements the OAuth 2.0 flow of Azure DevOps applications.
//
// Azure DevOps deviates from standard OAuth 2.0 by sending the client secret
// and authorization code as JWT bearer assertions, so the token exchange is
// done here while golang.org/x/oauth2 is used for the authorization URL and
// for the resulting tokens.
package oauth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/iver-wharf/azuredevops-go/pkg/connection"
	"github.com/iver-wharf/azuredevops-go/pkg/requests"
	"github.com/iver-wharf/wharf-core/pkg/logger"
	"golang.org/x/oauth2"
)

var log = logger.NewScoped("OAUTH")

const (
	clientAssertionType = "urn:ietf:params:oauth:client-assertion-type:jwt-bearer"
	grantTypeJWTBearer  = "urn:ietf:params:oauth:grant-type:jwt-bearer"
	grantTypeRefresh    = "refresh_token"
)

// Client is used to authorize Azure DevOps OAuth applications.
type Client interface {
	// AuthorizationURL returns the URL the user is sent to for authorizing
	// the application. The state is echoed back to the redirect URL.
	AuthorizationURL(cfg Config, state string) string
	// GetAccessToken exchanges the authorization code received on the
	// redirect URL for an access token.
	GetAccessToken(ctx context.Context, cfg Config, code string) (*oauth2.Token, error)
	// RefreshAccessToken gets a new access token using a refresh token.
	RefreshAccessToken(ctx context.Context, cfg Config, refreshToken string) (*oauth2.Token, error)
	// TokenSource returns a token source that reuses the token until it
	// expires and then refreshes it. The result can be given to
	// connection.WithTokenSource. With a nil token there is nothing to
	// refresh, so the first call to Token fails.
	TokenSource(ctx context.Context, cfg Config, token *oauth2.Token) oauth2.TokenSource
}

type client struct {
	conn *connection.Connection
	now  func() time.Time
}

// NewClient creates a new OAuth Client. Only the HTTP client and the app
// service URL of the connection are used.
func NewClient(conn *connection.Connection) Client {
	return &client{conn: conn, now: time.Now}
}

func (c *client) endpoint() oauth2.Endpoint {
	base := strings.TrimSuffix(c.conn.ServiceURL(connection.ServiceApp).String(), "/")
	return oauth2.Endpoint{
		AuthURL:   base + "/oauth2/authorize",
		TokenURL:  base + "/oauth2/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
}

func (c *client) AuthorizationURL(cfg Config, state string) string {
	oauthCfg := oauth2.Config{
		ClientID:    cfg.AppID,
		Endpoint:    c.endpoint(),
		RedirectURL: cfg.RedirectURL,
		Scopes:      cfg.Scopes,
	}
	return oauthCfg.AuthCodeURL(state, oauth2.SetAuthURLParam("response_type", "Assertion"))
}

func (c *client) GetAccessToken(ctx context.Context, cfg Config, code string) (*oauth2.Token, error) {
	if code == "" {
		return nil, errors.New("authorization code must not be empty")
	}
	token, err := c.requestToken(ctx, cfg, grantTypeJWTBearer, code)
	if err != nil {
		return nil, fmt.Errorf("get access token: %w", err)
	}
	return token, nil
}

func (c *client) RefreshAccessToken(ctx context.Context, cfg Config, refreshToken string) (*oauth2.Token, error) {
	if refreshToken == "" {
		return nil, errors.New("refresh token must not be empty")
	}
	token, err := c.requestToken(ctx, cfg, grantTypeRefresh, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("refresh access token: %w", err)
	}
	return token, nil
}

func (c *client) TokenSource(ctx context.Context, cfg Config, token *oauth2.Token) oauth2.TokenSource {
	src := &refreshingSource{ctx: ctx, client: c, cfg: cfg}
	if token != nil {
		src.refreshToken = token.RefreshToken
	}
	return oauth2.ReuseTokenSource(token, src)
}

func (c *client) requestToken(ctx context.Context, cfg Config, grantType, assertion string) (*oauth2.Token, error) {
	u, err := url.Parse(c.endpoint().TokenURL)
	if err != nil {
		return nil, err
	}
	form := url.Values{
		"client_assertion_type": {clientAssertionType},
		"client_assertion":      {cfg.ClientSecret},
		"grant_type":            {grantType},
		"assertion":             {assertion},
		"redirect_uri":          {cfg.RedirectURL},
	}
	// The token endpoint must not receive the credentials of the connection.
	anonymous := requests.Client{HTTPClient: c.conn.HTTPClient, UserAgent: c.conn.UserAgent}
	var resp tokenResponse
	if err := anonymous.PostForm(ctx, &resp, u, form); err != nil {
		return nil, err
	}
	if resp.AccessToken == "" {
		return nil, errors.New("token response has no access token")
	}
	log.Debug().
		WithString("grantType", grantType).
		WithString("scope", resp.Scope).
		Message("Received access token.")
	return resp.token(c.now()), nil
}

type refreshingSource struct {
	ctx          context.Context
	client       *client
	cfg          Config
	refreshToken string
}

func (s *refreshingSource) Token() (*oauth2.Token, error) {
	token, err := s.client.RefreshAccessToken(s.ctx, s.cfg, s.refreshToken)
	if err != nil {
		return nil, err
	}
	if token.RefreshToken != "" {
		s.refreshToken = token.RefreshToken
	}
	return token, nil
}
