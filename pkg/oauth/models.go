package oauth

import (
	"encoding/json"
	"time"

	"golang.org/x/oauth2"
)

// Config is the registration of an Azure DevOps OAuth application.
type Config struct {
	// AppID is the ID of the registered application.
	AppID string
	// ClientSecret is the client secret of the registered application, sent
	// as a JWT bearer client assertion.
	ClientSecret string
	RedirectURL  string
	// Scopes are the authorized scopes of the application, e.g
	// "vso.code vso.build_execute".
	Scopes []string
}

type tokenResponse struct {
	AccessToken  string      `json:"access_token"`
	TokenType    string      `json:"token_type"`
	ExpiresIn    json.Number `json:"expires_in"`
	RefreshToken string      `json:"refresh_token"`
	Scope        string      `json:"scope"`
}

func (r tokenResponse) token(now time.Time) *oauth2.Token {
	token := &oauth2.Token{
		AccessToken:  r.AccessToken,
		TokenType:    r.TokenType,
		RefreshToken: r.RefreshToken,
	}
	if seconds, err := r.ExpiresIn.Int64(); err == nil && seconds > 0 {
		token.Expiry = now.Add(time.Duration(seconds) * time.Second)
	}
	return token.WithExtra(map[string]interface{}{"scope": r.Scope})
}
