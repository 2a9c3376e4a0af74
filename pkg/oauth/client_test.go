package oauth

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/iver-wharf/azuredevops-go/internal/azdtest"
	"github.com/iver-wharf/azuredevops-go/pkg/connection"
)

var testConfig = Config{
	AppID:        "88e2d9b4-b6a1-4e0c-9c5a-b9f6c0c4c3b1",
	ClientSecret: "app-secret",
	RedirectURL:  "https://wharf.example.com/callback",
	Scopes:       []string{"vso.code", "vso.build_execute"},
}

func TestAuthorizationURL(t *testing.T) {
	conn, err := connection.New("org", "", "pat")
	require.NoError(t, err)

	raw := NewClient(conn).AuthorizationURL(testConfig, "xyz")
	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "app.vssps.visualstudio.com", u.Host)
	assert.Equal(t, "/oauth2/authorize", u.Path)
	q := u.Query()
	assert.Equal(t, "Assertion", q.Get("response_type"))
	assert.Equal(t, testConfig.AppID, q.Get("client_id"))
	assert.Equal(t, "xyz", q.Get("state"))
	assert.Equal(t, "vso.code vso.build_execute", q.Get("scope"))
	assert.Equal(t, testConfig.RedirectURL, q.Get("redirect_uri"))
}

func TestGetAccessToken(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodPost,
		Path:   "/oauth2/token",
		Body:   `{"access_token": "access", "token_type": "jwt-bearer", "expires_in": "3599", "refresh_token": "refresh", "scope": "vso.code"}`,
		Check: func(t *testing.T, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "urn:ietf:params:oauth:client-assertion-type:jwt-bearer", r.PostForm.Get("client_assertion_type"))
			assert.Equal(t, "app-secret", r.PostForm.Get("client_assertion"))
			assert.Equal(t, "urn:ietf:params:oauth:grant-type:jwt-bearer", r.PostForm.Get("grant_type"))
			assert.Equal(t, "code", r.PostForm.Get("assertion"))
			assert.Equal(t, testConfig.RedirectURL, r.PostForm.Get("redirect_uri"))
		},
	})
	now := time.Date(2022, 3, 4, 5, 6, 7, 0, time.UTC)
	c := &client{conn: conn, now: func() time.Time { return now }}

	token, err := c.GetAccessToken(context.Background(), testConfig, "code")
	require.NoError(t, err)
	assert.Equal(t, "access", token.AccessToken)
	assert.Equal(t, "refresh", token.RefreshToken)
	assert.Equal(t, now.Add(3599*time.Second), token.Expiry)
	assert.Equal(t, "vso.code", token.Extra("scope"))
}

func TestGetAccessTokenWithoutCode(t *testing.T) {
	conn := azdtest.NewConnection(t)
	_, err := NewClient(conn).GetAccessToken(context.Background(), testConfig, "")
	assert.Error(t, err)
}

func TestTokenSourceRefreshesExpiredToken(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodPost,
		Path:   "/oauth2/token",
		Body:   `{"access_token": "new-access", "token_type": "jwt-bearer", "expires_in": 3599, "refresh_token": "new-refresh"}`,
		Check: func(t *testing.T, r *http.Request) {
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
			assert.Equal(t, "old-refresh", r.PostForm.Get("assertion"))
		},
	})

	expired := &oauth2.Token{
		AccessToken:  "old-access",
		RefreshToken: "old-refresh",
		Expiry:       time.Now().Add(-time.Hour),
	}
	ts := NewClient(conn).TokenSource(context.Background(), testConfig, expired)

	token, err := ts.Token()
	require.NoError(t, err)
	assert.Equal(t, "new-access", token.AccessToken)
	assert.True(t, token.Valid())
}

func TestRefreshAccessToken(t *testing.T) {
	conn := azdtest.NewConnection(t, azdtest.Route{
		Method: http.MethodPost,
		Path:   "/oauth2/token",
		Body:   `{"access_token": "new-access", "token_type": "jwt-bearer", "expires_in": 3599, "refresh_token": "new-refresh"}`,
		Check: func(t *testing.T, r *http.Request) {
			assert.Empty(t, r.Header.Get("Authorization"))
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
			assert.Equal(t, "old-refresh", r.PostForm.Get("assertion"))
			assert.Equal(t, "app-secret", r.PostForm.Get("client_assertion"))
			assert.Equal(t, testConfig.RedirectURL, r.PostForm.Get("redirect_uri"))
		},
	})

	token, err := NewClient(conn).RefreshAccessToken(context.Background(), testConfig, "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", token.AccessToken)
	assert.Equal(t, "new-refresh", token.RefreshToken)
}

func TestRefreshAccessTokenWithoutRefreshToken(t *testing.T) {
	conn := azdtest.NewConnection(t)
	_, err := NewClient(conn).RefreshAccessToken(context.Background(), testConfig, "")
	assert.Error(t, err)
}

func TestTokenSourceWithoutToken(t *testing.T) {
	conn := azdtest.NewConnection(t)
	ts := NewClient(conn).TokenSource(context.Background(), testConfig, nil)

	_, err := ts.Token()
	assert.Error(t, err)
}
