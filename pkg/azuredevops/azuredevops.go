// Package azuredevops gives access to every Azure DevOps REST API area
// through a single client.
//
//	conn, err := connection.New("myorg", "myproject", pat)
//	if err != nil {
//		return err
//	}
//	azd := azuredevops.NewClient(conn)
//	repos, err := azd.GitAPI().GetRepositories(ctx)
package azuredevops

import (
	"github.com/iver-wharf/azuredevops-go/pkg/accounts"
	"github.com/iver-wharf/azuredevops-go/pkg/build"
	"github.com/iver-wharf/azuredevops-go/pkg/connection"
	"github.com/iver-wharf/azuredevops-go/pkg/core"
	"github.com/iver-wharf/azuredevops-go/pkg/distributedtask"
	"github.com/iver-wharf/azuredevops-go/pkg/extensionmanagement"
	"github.com/iver-wharf/azuredevops-go/pkg/feedmanagement"
	"github.com/iver-wharf/azuredevops-go/pkg/git"
	"github.com/iver-wharf/azuredevops-go/pkg/graph"
	"github.com/iver-wharf/azuredevops-go/pkg/memberentitlementmanagement"
	"github.com/iver-wharf/azuredevops-go/pkg/oauth"
	"github.com/iver-wharf/azuredevops-go/pkg/pipelines"
	"github.com/iver-wharf/azuredevops-go/pkg/policy"
	"github.com/iver-wharf/azuredevops-go/pkg/release"
	"github.com/iver-wharf/azuredevops-go/pkg/serviceendpoint"
	"github.com/iver-wharf/azuredevops-go/pkg/servicehooks"
	"github.com/iver-wharf/azuredevops-go/pkg/wiki"
	"github.com/iver-wharf/azuredevops-go/pkg/work"
	"github.com/iver-wharf/azuredevops-go/pkg/workitemtracking"
)

// Client gives access to the clients of each API area. All area clients
// share the same connection.
type Client interface {
	Connection() *connection.Connection

	AccountsAPI() accounts.Client
	BuildAPI() build.Client
	CoreAPI() core.Client
	DistributedTaskAPI() distributedtask.Client
	FeedManagementAPI() feedmanagement.Client
	GitAPI() git.Client
	GraphAPI() graph.Client
	MemberEntitlementManagementAPI() memberentitlementmanagement.Client
	ReleaseAPI() release.Client
	ServiceHooksAPI() servicehooks.Client
	WikiAPI() wiki.Client
	WorkAPI() work.Client
	WorkItemTrackingAPI() workitemtracking.Client
	OAuthAPI() oauth.Client
	ServiceEndpointAPI() serviceendpoint.Client
	ExtensionManagementAPI() extensionmanagement.Client
	PolicyAPI() policy.Client
	PipelinesAPI() pipelines.Client
}

type client struct {
	conn *connection.Connection

	accounts                    accounts.Client
	build                       build.Client
	core                        core.Client
	distributedTask             distributedtask.Client
	feedManagement              feedmanagement.Client
	git                         git.Client
	graph                       graph.Client
	memberEntitlementManagement memberentitlementmanagement.Client
	release                     release.Client
	serviceHooks                servicehooks.Client
	wiki                        wiki.Client
	work                        work.Client
	workItemTracking            workitemtracking.Client
	oauth                       oauth.Client
	serviceEndpoint             serviceendpoint.Client
	extensionManagement         extensionmanagement.Client
	policy                      policy.Client
	pipelines                   pipelines.Client
}

// NewClient creates a Client with one client per API area, all using the
// given connection.
func NewClient(conn *connection.Connection) Client {
	return &client{
		conn:                        conn,
		accounts:                    accounts.NewClient(conn),
		build:                       build.NewClient(conn),
		core:                        core.NewClient(conn),
		distributedTask:             distributedtask.NewClient(conn),
		feedManagement:              feedmanagement.NewClient(conn),
		git:                         git.NewClient(conn),
		graph:                       graph.NewClient(conn),
		memberEntitlementManagement: memberentitlementmanagement.NewClient(conn),
		release:                     release.NewClient(conn),
		serviceHooks:                servicehooks.NewClient(conn),
		wiki:                        wiki.NewClient(conn),
		work:                        work.NewClient(conn),
		workItemTracking:            workitemtracking.NewClient(conn),
		oauth:                       oauth.NewClient(conn),
		serviceEndpoint:             serviceendpoint.NewClient(conn),
		extensionManagement:         extensionmanagement.NewClient(conn),
		policy:                      policy.NewClient(conn),
		pipelines:                   pipelines.NewClient(conn),
	}
}

func (c *client) Connection() *connection.Connection { return c.conn }

func (c *client) AccountsAPI() accounts.Client               { return c.accounts }
func (c *client) BuildAPI() build.Client                     { return c.build }
func (c *client) CoreAPI() core.Client                       { return c.core }
func (c *client) DistributedTaskAPI() distributedtask.Client { return c.distributedTask }
func (c *client) FeedManagementAPI() feedmanagement.Client   { return c.feedManagement }
func (c *client) GitAPI() git.Client                         { return c.git }
func (c *client) GraphAPI() graph.Client                     { return c.graph }
func (c *client) MemberEntitlementManagementAPI() memberentitlementmanagement.Client {
	return c.memberEntitlementManagement
}
func (c *client) ReleaseAPI() release.Client                         { return c.release }
func (c *client) ServiceHooksAPI() servicehooks.Client               { return c.serviceHooks }
func (c *client) WikiAPI() wiki.Client                               { return c.wiki }
func (c *client) WorkAPI() work.Client                               { return c.work }
func (c *client) WorkItemTrackingAPI() workitemtracking.Client       { return c.workItemTracking }
func (c *client) OAuthAPI() oauth.Client                             { return c.oauth }
func (c *client) ServiceEndpointAPI() serviceendpoint.Client         { return c.serviceEndpoint }
func (c *client) ExtensionManagementAPI() extensionmanagement.Client { return c.extensionManagement }
func (c *client) PolicyAPI() policy.Client                           { return c.policy }
func (c *client) PipelinesAPI() pipelines.Client                     { return c.pipelines }
