package extensionmanagement

import "github.com/iver-wharf/azuredevops-go/pkg/webapi"

// Extension state flags, as found in InstallState.Flags. Several flags are
// joined by ", ".
const (
	StateNone     = "none"
	StateDisabled = "disabled"
	StateBuiltIn  = "builtIn"
	StateTrusted  = "trusted"
)

// InstalledExtension is an extension installed in the organization.
type InstalledExtension struct {
	ExtensionID   string          `json:"extensionId"`
	ExtensionName string          `json:"extensionName,omitempty"`
	PublisherID   string          `json:"publisherId"`
	PublisherName string          `json:"publisherName,omitempty"`
	Version       string          `json:"version,omitempty"`
	Flags         string          `json:"flags,omitempty"`
	LastPublished *webapi.Time    `json:"lastPublished,omitempty"`
	InstallState  InstallState    `json:"installState"`
	Files         []ExtensionFile `json:"files,omitempty"`
}

// InstallState is the state of an installed extension.
type InstallState struct {
	Flags       string       `json:"flags"`
	LastUpdated *webapi.Time `json:"lastUpdated,omitempty"`
}

// ExtensionFile is an asset of an extension.
type ExtensionFile struct {
	AssetType string `json:"assetType"`
	Source    string `json:"source,omitempty"`
}

// GetInstalledExtensionsOptions filters the result of GetInstalledExtensions.
type GetInstalledExtensionsOptions struct {
	IncludeDisabledExtensions bool     `url:"includeDisabledExtensions,omitempty"`
	IncludeErrors             bool     `url:"includeErrors,omitempty"`
	AssetTypes                []string `url:"assetTypes,omitempty" del:":"`
}
