// Package accounts implements the accounts and profile areas of the Azure
// DevOps REST API. These are not scoped by organization.
package accounts

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/iver-wharf/azuredevops-go/pkg/connection"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

const apiVersion = "7.1"

// ProfileMe is the profile ID that refers to the authenticated user.
const ProfileMe = "me"

// Client is used to talk with the accounts area of the Azure DevOps API.
type Client interface {
	// GetAccounts gets the organizations the member belongs to. The member ID
	// is the ID of a profile, see GetProfile.
	GetAccounts(ctx context.Context, memberID string) ([]Account, error)
	// GetProfile gets a user profile. Use ProfileMe for the authenticated
	// user.
	GetProfile(ctx context.Context, id string) (Profile, error)
}

type client struct {
	conn *connection.Connection
}

// NewClient creates a new accounts Client.
func NewClient(conn *connection.Connection) Client {
	return &client{conn: conn}
}

func (c *client) GetAccounts(ctx context.Context, memberID string) ([]Account, error) {
	if memberID == "" {
		return nil, errors.New("member ID must not be empty")
	}
	q := url.Values{"memberId": {memberID}}
	u, err := c.conn.HostURL(connection.ServiceApp, apiVersion, q, "accounts")
	if err != nil {
		return nil, err
	}
	var accounts webapi.List[Account]
	if err := c.conn.GetUnmarshalJSON(ctx, &accounts, u); err != nil {
		return nil, fmt.Errorf("get accounts of member %q: %w", memberID, err)
	}
	return accounts.Value, nil
}

func (c *client) GetProfile(ctx context.Context, id string) (Profile, error) {
	if id == "" {
		id = ProfileMe
	}
	u, err := c.conn.HostURL(connection.ServiceApp, apiVersion, nil, "profile/profiles/%s", id)
	if err != nil {
		return Profile{}, err
	}
	var profile Profile
	if err := c.conn.GetUnmarshalJSON(ctx, &profile, u); err != nil {
		return Profile{}, fmt.Errorf("get profile %q: %w", id, err)
	}
	return profile, nil
}
