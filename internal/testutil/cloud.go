// Package testutil provides shared test fixtures for netswitch packages.
package testutil

import (
	"context"
	"fmt"

	"github.com/nectarcloud/netswitch/pkg/migrate"
	"github.com/nectarcloud/netswitch/pkg/util"
)

// Fixed IDs used by the canned fixtures.
const (
	UserID    = "user-1"
	ProjectID = "project-1"
	RoleID    = "role-tm"

	ModernExtNetID = "net-ext-modern"
	LegacyExtNetID = "net-ext-legacy"
)

// FakeCloud is an in-memory migrate.Cloud. Fields are seeded by tests;
// ResourceQueries counts calls to the four collection listings so tests
// can assert that a failed gate stops all further queries.
type FakeCloud struct {
	UserID    string
	ProjectID string

	Proj         migrate.Project
	Nets         []migrate.Network
	RouterList   []migrate.Router
	RouterPorts  map[string][]migrate.Port
	FIPs         []migrate.FloatingIP
	ServerList   []migrate.Server
	ServerIfaces map[string][]migrate.ServerInterface

	Roles       []migrate.Role
	Assignments []migrate.RoleAssignment

	// RoleLookupForbidden makes RoleByName fail the way policy denial does.
	RoleLookupForbidden bool

	ResourceQueries int
}

var _ migrate.Cloud = (*FakeCloud)(nil)

// NewFakeCloud returns a fake seeded with a TenantManager grant and a
// modern external floating network, so the sanity gate passes and the
// project reads as modern.
func NewFakeCloud() *FakeCloud {
	return &FakeCloud{
		UserID:    UserID,
		ProjectID: ProjectID,
		Proj:      migrate.Project{ID: ProjectID, Name: "demo-project"},
		Nets: []migrate.Network{
			{
				ID:                  ModernExtNetID,
				Name:                "public",
				ProviderNetworkType: "flat",
				External:            true,
				Tags:                []string{"nectar:floating"},
			},
		},
		RouterPorts:  map[string][]migrate.Port{},
		ServerIfaces: map[string][]migrate.ServerInterface{},
		Roles:        []migrate.Role{{ID: RoleID, Name: "TenantManager"}},
		Assignments: []migrate.RoleAssignment{
			{UserID: UserID, ProjectID: ProjectID, RoleID: RoleID},
		},
	}
}

// SetLegacy flips the fake between backends: the project tag and the
// external network's provider type move together so the fixture stays
// in the sane state.
func (f *FakeCloud) SetLegacy(legacy bool) {
	f.Proj.Tags = nil
	for i := range f.Nets {
		if !f.Nets[i].External {
			continue
		}
		if legacy {
			f.Nets[i].ProviderNetworkType = "midonet"
		} else {
			f.Nets[i].ProviderNetworkType = "flat"
		}
	}
	if legacy {
		f.Proj.Tags = []string{migrate.TagLegacy}
	}
}

func (f *FakeCloud) CurrentUserID() string    { return f.UserID }
func (f *FakeCloud) CurrentProjectID() string { return f.ProjectID }

func (f *FakeCloud) Project(_ context.Context) (*migrate.Project, error) {
	p := f.Proj
	p.Tags = append([]string(nil), f.Proj.Tags...)
	return &p, nil
}

func (f *FakeCloud) Network(_ context.Context, id string) (*migrate.Network, error) {
	for i := range f.Nets {
		if f.Nets[i].ID == id {
			n := f.Nets[i]
			return &n, nil
		}
	}
	return nil, util.NewNotFoundError("network", id)
}

func (f *FakeCloud) Networks(_ context.Context, filter migrate.NetworkFilter) ([]migrate.Network, error) {
	f.ResourceQueries++
	var out []migrate.Network
	for _, n := range f.Nets {
		if filter.External != nil && n.External != *filter.External {
			continue
		}
		if filter.Tag != "" && !hasTag(n.Tags, filter.Tag) {
			continue
		}
		// ProjectID scoping is a no-op: the fake holds one project.
		out = append(out, n)
	}
	return out, nil
}

func (f *FakeCloud) Routers(_ context.Context) ([]migrate.Router, error) {
	f.ResourceQueries++
	return append([]migrate.Router(nil), f.RouterList...), nil
}

func (f *FakeCloud) RouterInterfaces(_ context.Context, routerID string) ([]migrate.Port, error) {
	return append([]migrate.Port(nil), f.RouterPorts[routerID]...), nil
}

func (f *FakeCloud) FloatingIPs(_ context.Context) ([]migrate.FloatingIP, error) {
	f.ResourceQueries++
	return append([]migrate.FloatingIP(nil), f.FIPs...), nil
}

func (f *FakeCloud) Servers(_ context.Context) ([]migrate.Server, error) {
	f.ResourceQueries++
	return append([]migrate.Server(nil), f.ServerList...), nil
}

func (f *FakeCloud) ServerInterfaces(_ context.Context, serverID string) ([]migrate.ServerInterface, error) {
	return append([]migrate.ServerInterface(nil), f.ServerIfaces[serverID]...), nil
}

func (f *FakeCloud) RoleByName(_ context.Context, name string) (*migrate.Role, error) {
	if f.RoleLookupForbidden {
		return nil, fmt.Errorf("listing roles: %w", util.ErrPermissionDenied)
	}
	for _, r := range f.Roles {
		if r.Name == name {
			role := r
			return &role, nil
		}
	}
	return nil, util.NewNotFoundError("role", name)
}

func (f *FakeCloud) RoleAssignments(_ context.Context, userID, projectID, roleID string) ([]migrate.RoleAssignment, error) {
	var out []migrate.RoleAssignment
	for _, a := range f.Assignments {
		if a.UserID == userID && a.ProjectID == projectID && a.RoleID == roleID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *FakeCloud) AddProjectTag(_ context.Context, tag string) error {
	if !hasTag(f.Proj.Tags, tag) {
		f.Proj.Tags = append(f.Proj.Tags, tag)
	}
	return nil
}

func (f *FakeCloud) RemoveProjectTag(_ context.Context, tag string) error {
	tags := f.Proj.Tags[:0]
	for _, t := range f.Proj.Tags {
		if t != tag {
			tags = append(tags, t)
		}
	}
	f.Proj.Tags = tags
	return nil
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
