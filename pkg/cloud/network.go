package cloud

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/external"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/layer3/floatingips"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/layer3/routers"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/provider"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/networks"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/ports"

	"github.com/nectarcloud/netswitch/pkg/migrate"
)

const routerInterfaceOwner = "network:router_interface"

// networkWithExt folds the provider and external extension attributes
// into the base network resource.
type networkWithExt struct {
	networks.Network
	external.NetworkExternalExt
	provider.NetworkProviderExt
}

func toNetwork(n networkWithExt) migrate.Network {
	return migrate.Network{
		ID:                  n.ID,
		Name:                n.Name,
		ProviderNetworkType: n.NetworkType,
		External:            n.External,
		Tags:                n.Tags,
	}
}

// Network fetches one network by ID with its provider attributes.
func (c *Client) Network(ctx context.Context, id string) (*migrate.Network, error) {
	var n networkWithExt
	if err := networks.Get(ctx, c.network, id).ExtractInto(&n); err != nil {
		return nil, err
	}
	out := toNetwork(n)
	return &out, nil
}

// Networks lists networks matching the filter, with provider attributes.
func (c *Client) Networks(ctx context.Context, filter migrate.NetworkFilter) ([]migrate.Network, error) {
	var opts networks.ListOptsBuilder = networks.ListOpts{
		ProjectID: filter.ProjectID,
		Tags:      filter.Tag,
	}
	if filter.External != nil {
		opts = external.ListOptsExt{ListOptsBuilder: opts, External: filter.External}
	}

	pages, err := networks.List(c.network, opts).AllPages(ctx)
	if err != nil {
		return nil, err
	}

	var ns []networkWithExt
	if err := networks.ExtractNetworksInto(pages, &ns); err != nil {
		return nil, err
	}

	out := make([]migrate.Network, 0, len(ns))
	for _, n := range ns {
		out = append(out, toNetwork(n))
	}
	return out, nil
}

// Routers lists the routers visible to the token.
func (c *Client) Routers(ctx context.Context) ([]migrate.Router, error) {
	pages, err := routers.List(c.network, routers.ListOpts{}).AllPages(ctx)
	if err != nil {
		return nil, err
	}

	rs, err := routers.ExtractRouters(pages)
	if err != nil {
		return nil, err
	}

	out := make([]migrate.Router, 0, len(rs))
	for _, r := range rs {
		out = append(out, migrate.Router{
			ID:                       r.ID,
			Name:                     r.Name,
			ExternalGatewayNetworkID: r.GatewayInfo.NetworkID,
		})
	}
	return out, nil
}

// RouterInterfaces lists a router's interface ports.
func (c *Client) RouterInterfaces(ctx context.Context, routerID string) ([]migrate.Port, error) {
	pages, err := ports.List(c.network, ports.ListOpts{
		DeviceID:    routerID,
		DeviceOwner: routerInterfaceOwner,
	}).AllPages(ctx)
	if err != nil {
		return nil, err
	}

	ps, err := ports.ExtractPorts(pages)
	if err != nil {
		return nil, err
	}

	out := make([]migrate.Port, 0, len(ps))
	for _, p := range ps {
		out = append(out, migrate.Port{ID: p.ID})
	}
	return out, nil
}

// FloatingIPs lists the floating IPs visible to the token.
func (c *Client) FloatingIPs(ctx context.Context) ([]migrate.FloatingIP, error) {
	pages, err := floatingips.List(c.network, floatingips.ListOpts{}).AllPages(ctx)
	if err != nil {
		return nil, err
	}

	fips, err := floatingips.ExtractFloatingIPs(pages)
	if err != nil {
		return nil, err
	}

	out := make([]migrate.FloatingIP, 0, len(fips))
	for _, f := range fips {
		out = append(out, migrate.FloatingIP{
			ID:                f.ID,
			Address:           f.FloatingIP,
			FloatingNetworkID: f.FloatingNetworkID,
			PortID:            f.PortID,
		})
	}
	return out, nil
}
