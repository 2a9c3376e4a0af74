// Package memberentitlementmanagement implements the member entitlement
// management area of the Azure DevOps REST API, which manages user and group
// licenses.
package memberentitlementmanagement

import (
	"context"
	"fmt"
	"net/url"

	"github.com/iver-wharf/azuredevops-go/pkg/connection"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

const (
	userAPIVersion  = "7.1-preview.3"
	groupAPIVersion = "7.1-preview.1"
)

// Client is used to talk with the member entitlement management area of the
// Azure DevOps API.
type Client interface {
	GetUserEntitlements(ctx context.Context, opts *GetUserEntitlementsOptions) (UserEntitlementList, error)
	GetUserEntitlement(ctx context.Context, userID string) (UserEntitlement, error)
	// UpdateUserEntitlement applies a JSON Patch document to a user
	// entitlement, e.g replacing "/accessLevel".
	UpdateUserEntitlement(ctx context.Context, userID string, patch []webapi.JSONPatchOperation) (UserEntitlementsPatchResponse, error)
	// DeleteUserEntitlement removes the user from the organization.
	DeleteUserEntitlement(ctx context.Context, userID string) error
	GetGroupEntitlements(ctx context.Context) ([]GroupEntitlement, error)
	AddGroupEntitlement(ctx context.Context, group GroupEntitlement) (GroupEntitlementOperationReference, error)
	DeleteGroupEntitlement(ctx context.Context, groupID string) (GroupEntitlementOperationReference, error)
}

type client struct {
	conn *connection.Connection
}

// NewClient creates a new member entitlement management Client.
func NewClient(conn *connection.Connection) Client {
	return &client{conn: conn}
}

func (c *client) url(apiVersion string, queries interface{}, format string, values ...interface{}) (*url.URL, error) {
	return c.conn.OrganizationURL(connection.ServiceVSAEX, apiVersion, queries, format, values...)
}

func (c *client) GetUserEntitlements(ctx context.Context, opts *GetUserEntitlementsOptions) (UserEntitlementList, error) {
	u, err := c.url(userAPIVersion, opts, "userentitlements")
	if err != nil {
		return UserEntitlementList{}, err
	}
	var list UserEntitlementList
	if err := c.conn.GetUnmarshalJSON(ctx, &list, u); err != nil {
		return UserEntitlementList{}, fmt.Errorf("get user entitlements: %w", err)
	}
	return list, nil
}

func (c *client) GetUserEntitlement(ctx context.Context, userID string) (UserEntitlement, error) {
	u, err := c.url(userAPIVersion, nil, "userentitlements/%s", userID)
	if err != nil {
		return UserEntitlement{}, err
	}
	var entitlement UserEntitlement
	if err := c.conn.GetUnmarshalJSON(ctx, &entitlement, u); err != nil {
		return UserEntitlement{}, fmt.Errorf("get user entitlement %q: %w", userID, err)
	}
	return entitlement, nil
}

func (c *client) UpdateUserEntitlement(ctx context.Context, userID string, patch []webapi.JSONPatchOperation) (UserEntitlementsPatchResponse, error) {
	u, err := c.url(userAPIVersion, nil, "userentitlements/%s", userID)
	if err != nil {
		return UserEntitlementsPatchResponse{}, err
	}
	var resp UserEntitlementsPatchResponse
	if err := c.conn.PatchJSONPatch(ctx, &resp, u, patch); err != nil {
		return UserEntitlementsPatchResponse{}, fmt.Errorf("update user entitlement %q: %w", userID, err)
	}
	return resp, nil
}

func (c *client) DeleteUserEntitlement(ctx context.Context, userID string) error {
	u, err := c.url(userAPIVersion, nil, "userentitlements/%s", userID)
	if err != nil {
		return err
	}
	if err := c.conn.Delete(ctx, nil, u); err != nil {
		return fmt.Errorf("delete user entitlement %q: %w", userID, err)
	}
	return nil
}

func (c *client) GetGroupEntitlements(ctx context.Context) ([]GroupEntitlement, error) {
	u, err := c.url(groupAPIVersion, nil, "groupentitlements")
	if err != nil {
		return nil, err
	}
	var groups webapi.List[GroupEntitlement]
	if err := c.conn.GetUnmarshalJSON(ctx, &groups, u); err != nil {
		return nil, fmt.Errorf("get group entitlements: %w", err)
	}
	return groups.Value, nil
}

func (c *client) AddGroupEntitlement(ctx context.Context, group GroupEntitlement) (GroupEntitlementOperationReference, error) {
	u, err := c.url(groupAPIVersion, nil, "groupentitlements")
	if err != nil {
		return GroupEntitlementOperationReference{}, err
	}
	var op GroupEntitlementOperationReference
	if err := c.conn.PostJSON(ctx, &op, u, group); err != nil {
		return GroupEntitlementOperationReference{}, fmt.Errorf("add group entitlement %q: %w", group.Group.DisplayName, err)
	}
	return op, nil
}

func (c *client) DeleteGroupEntitlement(ctx context.Context, groupID string) (GroupEntitlementOperationReference, error) {
	u, err := c.url(groupAPIVersion, nil, "groupentitlements/%s", groupID)
	if err != nil {
		return GroupEntitlementOperationReference{}, err
	}
	var op GroupEntitlementOperationReference
	if err := c.conn.Delete(ctx, &op, u); err != nil {
		return GroupEntitlementOperationReference{}, fmt.Errorf("delete group entitlement %q: %w", groupID, err)
	}
	return op, nil
}

// ChangeAccessLevel builds the patch document that changes the license of a
// user, for use with UpdateUserEntitlement.
func ChangeAccessLevel(accountLicenseType string) []webapi.JSONPatchOperation {
	return []webapi.JSONPatchOperation{
		{
			Op:   webapi.OpReplace,
			Path: "/accessLevel",
			Value: AccessLevel{
				AccountLicenseType: accountLicenseType,
				LicensingSource:    "account",
			},
		},
	}
}
