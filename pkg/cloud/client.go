// Package cloud adapts the OpenStack APIs to the migrate.Cloud interface
// using gophercloud. Authentication resolves from ambient configuration:
// OS_* environment variables or a clouds.yaml entry.
package cloud

import (
	"context"
	"fmt"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack"
	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/tokens"
	"github.com/gophercloud/utils/v2/openstack/clientconfig"

	"github.com/nectarcloud/netswitch/pkg/migrate"
	"github.com/nectarcloud/netswitch/pkg/util"
)

// Options select the cloud entry and region used for authentication.
type Options struct {
	// Cloud names a clouds.yaml entry. Empty falls back to OS_*
	// environment variables.
	Cloud string

	// Region selects the service catalog region.
	Region string
}

// Client implements migrate.Cloud against one authenticated OpenStack
// session. Construct it once at process start and pass it to every
// consumer; there is no hidden global connection.
type Client struct {
	identity *gophercloud.ServiceClient
	network  *gophercloud.ServiceClient
	compute  *gophercloud.ServiceClient

	userID    string
	projectID string
}

var _ migrate.Cloud = (*Client)(nil)

// New authenticates and builds the identity, networking, and compute
// service clients. Connection or catalog failures are returned as-is.
func New(ctx context.Context, opts Options) (*Client, error) {
	provider, err := clientconfig.AuthenticatedClient(ctx, &clientconfig.ClientOpts{
		Cloud: opts.Cloud,
	})
	if err != nil {
		return nil, fmt.Errorf("authenticating: %w", err)
	}

	eo := gophercloud.EndpointOpts{Region: opts.Region}

	identity, err := openstack.NewIdentityV3(provider, eo)
	if err != nil {
		return nil, fmt.Errorf("identity endpoint: %w", err)
	}
	network, err := openstack.NewNetworkV2(provider, eo)
	if err != nil {
		return nil, fmt.Errorf("network endpoint: %w", err)
	}
	compute, err := openstack.NewComputeV2(provider, eo)
	if err != nil {
		return nil, fmt.Errorf("compute endpoint: %w", err)
	}

	userID, projectID, err := tokenScope(provider)
	if err != nil {
		return nil, err
	}

	util.WithField("project", projectID).Debug("authenticated")

	return &Client{
		identity:  identity,
		network:   network,
		compute:   compute,
		userID:    userID,
		projectID: projectID,
	}, nil
}

// CurrentUserID returns the authenticated user's ID.
func (c *Client) CurrentUserID() string {
	return c.userID
}

// CurrentProjectID returns the token's project scope.
func (c *Client) CurrentProjectID() string {
	return c.projectID
}

// tokenScope pulls the user and project IDs out of the issued token.
// Auth options do not reliably carry the project name, so everything
// downstream works from the token's scope.
func tokenScope(provider *gophercloud.ProviderClient) (string, string, error) {
	result, ok := provider.GetAuthResult().(tokens.CreateResult)
	if !ok {
		return "", "", fmt.Errorf("unexpected auth result type %T", provider.GetAuthResult())
	}

	user, err := result.ExtractUser()
	if err != nil {
		return "", "", fmt.Errorf("extracting token user: %w", err)
	}
	project, err := result.ExtractProject()
	if err != nil {
		return "", "", fmt.Errorf("extracting token project: %w", err)
	}
	if project == nil {
		return "", "", fmt.Errorf("token is not project-scoped")
	}

	return user.ID, project.ID, nil
}
