package cloud

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/attachinterfaces"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servers"

	"github.com/nectarcloud/netswitch/pkg/migrate"
)

// Servers lists the compute instances visible to the token.
func (c *Client) Servers(ctx context.Context) ([]migrate.Server, error) {
	pages, err := servers.List(c.compute, servers.ListOpts{}).AllPages(ctx)
	if err != nil {
		return nil, err
	}

	ss, err := servers.ExtractServers(pages)
	if err != nil {
		return nil, err
	}

	out := make([]migrate.Server, 0, len(ss))
	for _, s := range ss {
		out = append(out, migrate.Server{ID: s.ID, Name: s.Name})
	}
	return out, nil
}

// ServerInterfaces lists a server's network attachments.
func (c *Client) ServerInterfaces(ctx context.Context, serverID string) ([]migrate.ServerInterface, error) {
	pages, err := attachinterfaces.List(c.compute, serverID).AllPages(ctx)
	if err != nil {
		return nil, err
	}

	ifaces, err := attachinterfaces.ExtractInterfaces(pages)
	if err != nil {
		return nil, err
	}

	out := make([]migrate.ServerInterface, 0, len(ifaces))
	for _, i := range ifaces {
		out = append(out, migrate.ServerInterface{PortID: i.PortID, NetworkID: i.NetID})
	}
	return out, nil
}
