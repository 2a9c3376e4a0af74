// Package extensionmanagement implements the extension management area of
// the Azure DevOps REST API.
package extensionmanagement

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/iver-wharf/azuredevops-go/pkg/connection"
	"github.com/iver-wharf/azuredevops-go/pkg/webapi"
)

const apiVersion = "7.1-preview.1"

// Client is used to talk with the extension management area of the Azure
// DevOps API.
type Client interface {
	GetInstalledExtensions(ctx context.Context, opts *GetInstalledExtensionsOptions) ([]InstalledExtension, error)
	GetInstalledExtension(ctx context.Context, publisherName, extensionName string) (InstalledExtension, error)
	// InstallExtension installs an extension from the marketplace. The
	// latest version is installed if version is empty.
	InstallExtension(ctx context.Context, publisherName, extensionName, version string) (InstalledExtension, error)
	UninstallExtension(ctx context.Context, publisherName, extensionName string) error
	// UpdateInstalledExtension updates the state of an installed extension,
	// such as enabling or disabling it. See SetDisabled.
	UpdateInstalledExtension(ctx context.Context, extension InstalledExtension) (InstalledExtension, error)
}

type client struct {
	conn *connection.Connection
}

// NewClient creates a new extension management Client.
func NewClient(conn *connection.Connection) Client {
	return &client{conn: conn}
}

func (c *client) url(queries interface{}, format string, values ...interface{}) (*url.URL, error) {
	return c.conn.OrganizationURL(connection.ServiceExtMgmt, apiVersion, queries, format, values...)
}

func (c *client) GetInstalledExtensions(ctx context.Context, opts *GetInstalledExtensionsOptions) ([]InstalledExtension, error) {
	u, err := c.url(opts, "extensionmanagement/installedextensions")
	if err != nil {
		return nil, err
	}
	var extensions webapi.List[InstalledExtension]
	if err := c.conn.GetUnmarshalJSON(ctx, &extensions, u); err != nil {
		return nil, fmt.Errorf("get installed extensions: %w", err)
	}
	return extensions.Value, nil
}

func (c *client) GetInstalledExtension(ctx context.Context, publisherName, extensionName string) (InstalledExtension, error) {
	u, err := c.url(nil, "extensionmanagement/installedextensionsbyname/%s/%s", publisherName, extensionName)
	if err != nil {
		return InstalledExtension{}, err
	}
	var extension InstalledExtension
	if err := c.conn.GetUnmarshalJSON(ctx, &extension, u); err != nil {
		return InstalledExtension{}, fmt.Errorf("get installed extension %s.%s: %w", publisherName, extensionName, err)
	}
	return extension, nil
}

func (c *client) InstallExtension(ctx context.Context, publisherName, extensionName, version string) (InstalledExtension, error) {
	path := fmt.Sprintf("extensionmanagement/installedextensionsbyname/%s/%s", publisherName, extensionName)
	if version != "" {
		path += "/" + version
	}
	u, err := c.url(nil, "%s", path)
	if err != nil {
		return InstalledExtension{}, err
	}
	var installed InstalledExtension
	if err := c.conn.PostJSON(ctx, &installed, u, nil); err != nil {
		return InstalledExtension{}, fmt.Errorf("install extension %s.%s: %w", publisherName, extensionName, err)
	}
	return installed, nil
}

func (c *client) UninstallExtension(ctx context.Context, publisherName, extensionName string) error {
	u, err := c.url(nil, "extensionmanagement/installedextensionsbyname/%s/%s", publisherName, extensionName)
	if err != nil {
		return err
	}
	if err := c.conn.Delete(ctx, nil, u); err != nil {
		return fmt.Errorf("uninstall extension %s.%s: %w", publisherName, extensionName, err)
	}
	return nil
}

func (c *client) UpdateInstalledExtension(ctx context.Context, extension InstalledExtension) (InstalledExtension, error) {
	u, err := c.url(nil, "extensionmanagement/installedextensions")
	if err != nil {
		return InstalledExtension{}, err
	}
	var updated InstalledExtension
	if err := c.conn.PatchJSON(ctx, &updated, u, extension); err != nil {
		return InstalledExtension{}, fmt.Errorf("update installed extension %s.%s: %w", extension.PublisherID, extension.ExtensionID, err)
	}
	return updated, nil
}

// IsDisabled reports whether the extension is installed but disabled.
func (e InstalledExtension) IsDisabled() bool {
	return hasFlag(e.InstallState.Flags, StateDisabled)
}

// SetDisabled adds or removes the disabled flag of the install state. Pass
// the result to UpdateInstalledExtension to enable or disable the
// extension.
func (e InstalledExtension) SetDisabled(disabled bool) InstalledExtension {
	var flags []string
	for _, f := range splitFlags(e.InstallState.Flags) {
		if f != StateDisabled && f != StateNone {
			flags = append(flags, f)
		}
	}
	if disabled {
		flags = append(flags, StateDisabled)
	}
	if len(flags) == 0 {
		flags = []string{StateNone}
	}
	e.InstallState.Flags = strings.Join(flags, ", ")
	return e
}

func hasFlag(flags, flag string) bool {
	for _, f := range splitFlags(flags) {
		if f == flag {
			return true
		}
	}
	return false
}

func splitFlags(flags string) []string {
	var result []string
	for _, f := range strings.Split(flags, ",") {
		if f = strings.TrimSpace(f); f != "" {
			result = append(result, f)
		}
	}
	return result
}
