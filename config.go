package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/iver-wharf/wharf-core/pkg/config"
)

// Config holds all configurable settings for the azuredevops-go service.
//
// The config is read from the following locations, where latter sources
// override the former:
//
//	/etc/iver-wharf/azuredevops-go/config.yml
//	~/.config/iver-wharf/azuredevops-go/config.yml
//	azuredevops-go-config.yml (in current working directory)
//	(environment variables)
//
// Environment variables use the "AZD_" prefix, e.g AZD_HTTP_BINDADDRESS. An
// additional config file can be given with AZD_CONFIG.
type Config struct {
	HTTP        HTTPConfig
	CA          CertConfig
	AzureDevOps AzureDevOpsConfig
	Inventory   InventoryConfig
	Hooks       HooksConfig
}

// HTTPConfig holds settings for the HTTP server.
type HTTPConfig struct {
	CORS CORSConfig

	// BindAddress is the IP-address and port, separated by a colon, to bind
	// the HTTP server to. An IP-address of 0.0.0.0 will bind to all
	// IP-addresses.
	//
	// Environment variable: AZD_HTTP_BINDADDRESS
	BindAddress string
}

// CORSConfig holds settings for the HTTP server's CORS settings.
type CORSConfig struct {
	// AllowAllOrigins enables CORS and allows all hostnames and URLs in the
	// HTTP request origins when set to true.
	//
	// Environment variable: AZD_HTTP_CORS_ALLOWALLORIGINS
	AllowAllOrigins bool
}

// CertConfig holds settings for certificates verification used when talking
// to Azure DevOps.
type CertConfig struct {
	// CertsFile is the path to a file containing additional CA certificates
	// to trust, such as the certificate of an on-premises Azure DevOps
	// Server.
	//
	// Environment variable: AZD_CA_CERTSFILE
	CertsFile string
}

// AzureDevOpsConfig holds settings for the connection to Azure DevOps.
type AzureDevOpsConfig struct {
	// BaseURL, if set, makes all API areas be reached through this URL
	// instead of the Azure DevOps Services hosts. Used with Azure DevOps
	// Server, e.g "https://tfs.example.com/tfs".
	//
	// Environment variable: AZD_AZUREDEVOPS_BASEURL
	BaseURL string

	// Organization is the organization, or collection on Azure DevOps
	// Server, to talk to. Required.
	//
	// Environment variable: AZD_AZUREDEVOPS_ORGANIZATION
	Organization string

	// Project is the default project of project scoped requests.
	//
	// Environment variable: AZD_AZUREDEVOPS_PROJECT
	Project string

	// PersonalAccessToken is used to authenticate. Required.
	//
	// Environment variable: AZD_AZUREDEVOPS_PERSONALACCESSTOKEN
	PersonalAccessToken string

	// RateLimit is the maximum number of requests per second sent to Azure
	// DevOps. Zero means no limit.
	//
	// Environment variable: AZD_AZUREDEVOPS_RATELIMIT
	RateLimit float64

	// RateBurst is the number of requests that may be sent at once when
	// RateLimit is set.
	//
	// Environment variable: AZD_AZUREDEVOPS_RATEBURST
	RateBurst int
}

// InventoryConfig holds settings for the inventory endpoint.
type InventoryConfig struct {
	// DefinitionFile is the pipeline definition file looked for in the root
	// of each repository.
	//
	// Environment variable: AZD_INVENTORY_DEFINITIONFILE
	DefinitionFile string

	// Concurrency is the maximum number of repositories inspected at once.
	//
	// Environment variable: AZD_INVENTORY_CONCURRENCY
	Concurrency int
}

// HooksConfig holds settings for the service hooks receiver.
type HooksConfig struct {
	// Username and Password enables basic authentication of incoming service
	// hook requests when both are set. They must match the basic
	// authentication settings of the web hooks subscription.
	//
	// Environment variables: AZD_HOOKS_USERNAME, AZD_HOOKS_PASSWORD
	Username string
	Password string

	// TriggerPipelineID is the ID of the pipeline run on the source branch of
	// created or updated pull requests. Zero disables pipeline triggering.
	// The pipeline must be in the configured project.
	//
	// Environment variable: AZD_HOOKS_TRIGGERPIPELINEID
	TriggerPipelineID int
}

// DefaultConfig is the hard-coded default values for the azuredevops-go
// service's configs.
var DefaultConfig = Config{
	HTTP: HTTPConfig{
		BindAddress: "0.0.0.0:8080",
	},
	AzureDevOps: AzureDevOpsConfig{
		RateBurst: 1,
	},
	Inventory: InventoryConfig{
		DefinitionFile: "azure-pipelines.yml",
		Concurrency:    4,
	},
}

func loadConfig() (Config, error) {
	cfgBuilder := config.NewBuilder(DefaultConfig)

	cfgBuilder.AddConfigYAMLFile("/etc/iver-wharf/azuredevops-go/config.yml")
	if confDir, err := os.UserConfigDir(); err == nil {
		cfgBuilder.AddConfigYAMLFile(filepath.Join(confDir, "iver-wharf/azuredevops-go/config.yml"))
	}
	cfgBuilder.AddConfigYAMLFile("azuredevops-go-config.yml")
	if cfgFile, ok := os.LookupEnv("AZD_CONFIG"); ok {
		cfgBuilder.AddConfigYAMLFile(cfgFile)
	}
	cfgBuilder.AddEnvironmentVariables("AZD")

	var cfg Config
	if err := cfgBuilder.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.validate()
}

func (cfg Config) validate() error {
	if cfg.AzureDevOps.Organization == "" {
		return errors.New("azureDevOps.organization is required")
	}
	if cfg.AzureDevOps.PersonalAccessToken == "" {
		return errors.New("azureDevOps.personalAccessToken is required")
	}
	if cfg.Hooks.TriggerPipelineID != 0 && cfg.AzureDevOps.Project == "" {
		return errors.New("azureDevOps.project is required when hooks.triggerPipelineId is set")
	}
	if (cfg.Hooks.Username == "") != (cfg.Hooks.Password == "") {
		return errors.New("hooks.username and hooks.password must be set together")
	}
	return nil
}
