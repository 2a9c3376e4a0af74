package requests

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
)

// Authorizer adds credentials to an outgoing request.
type Authorizer interface {
	Authorize(req *http.Request) error
}

// PersonalAccessToken authorizes requests using basic authentication with an
// empty user name and the token as password, which is what Azure DevOps
// expects for personal access tokens.
type PersonalAccessToken string

// Authorize sets the Authorization header.
func (pat PersonalAccessToken) Authorize(req *http.Request) error {
	if pat == "" {
		return errors.New("personal access token is empty")
	}
	req.Header.Set("Authorization", EncodePersonalAccessToken(string(pat)))
	return nil
}

// EncodePersonalAccessToken encodes the token into a basic authentication
// header value.
func EncodePersonalAccessToken(token string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(":"+token))
}

// TokenSourceAuthorizer authorizes requests using bearer tokens obtained from
// an OAuth2 token source.
type TokenSourceAuthorizer struct {
	TokenSource oauth2.TokenSource
}

// Authorize sets the Authorization header.
func (a TokenSourceAuthorizer) Authorize(req *http.Request) error {
	token, err := a.TokenSource.Token()
	if err != nil {
		return fmt.Errorf("get oauth2 token: %w", err)
	}
	token.SetAuthHeader(req)
	return nil
}
