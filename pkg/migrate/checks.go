package migrate

import (
	"context"
	"errors"
	"fmt"

	"github.com/nectarcloud/netswitch/pkg/util"
)

const (
	msgNoCheckPrivilege = "You do not have sufficient privileges to migrate the project. " +
		"You need the 'TenantManager' role on this project"
	msgNoSwitchPrivilege = "You do not have sufficient privileges to switch this project. " +
		"You need the 'TenantManager' role on this project"
)

// IsTenantManager reports whether the current user holds the
// TenantManager role on the current project.
//
// Role assignments are queried directly; a grant check cannot be used
// because policy forbids it for non-admins. A forbidden role lookup is
// treated as "no privilege", not as an error.
func (m *Migrator) IsTenantManager(ctx context.Context) (bool, error) {
	role, err := m.cloud.RoleByName(ctx, RoleTenantManager)
	if err != nil {
		if errors.Is(err, util.ErrPermissionDenied) || errors.Is(err, util.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	assignments, err := m.cloud.RoleAssignments(ctx,
		m.cloud.CurrentUserID(), m.cloud.CurrentProjectID(), role.ID)
	if err != nil {
		return false, err
	}

	return len(assignments) > 0, nil
}

// IsLegacyProject reports whether the current project carries the legacy tag.
func (m *Migrator) IsLegacyProject(ctx context.Context) (bool, error) {
	project, err := m.cloud.Project(ctx)
	if err != nil {
		return false, err
	}
	return project.IsLegacy(), nil
}

// isLegacyNetworkID resolves a network by ID and reports whether it is
// implemented by the legacy backend.
func (m *Migrator) isLegacyNetworkID(ctx context.Context, id string) (bool, error) {
	network, err := m.cloud.Network(ctx, id)
	if err != nil {
		return false, err
	}
	return network.IsLegacy(), nil
}

// CheckSanity gates every top-level command. It fails soft (false, nil)
// with printed guidance when the caller lacks the TenantManager role or
// when the project tag disagrees with the observed backend of the
// project's designated external network. The latter means a switch is
// still propagating and both reads and writes must wait it out.
func (m *Migrator) CheckSanity(ctx context.Context) (bool, error) {
	manager, err := m.IsTenantManager(ctx)
	if err != nil {
		return false, err
	}
	if !manager {
		fmt.Fprintln(m.out, msgNoCheckPrivilege)
		return false, nil
	}

	external := true
	networks, err := m.cloud.Networks(ctx, NetworkFilter{External: &external, Tag: floatingTag})
	if err != nil {
		return false, err
	}
	if len(networks) == 0 {
		return false, util.NewNotFoundError("external network", floatingTag)
	}

	legacyProject, err := m.IsLegacyProject(ctx)
	if err != nil {
		return false, err
	}

	if networks[0].IsLegacy() != legacyProject {
		fmt.Fprintf(m.out, "Project networking may have been recently switched. "+
			"Please wait for %s and try again.\n", cacheTimeout)
		return false, nil
	}

	return true, nil
}

// CheckSync is a lighter agreement probe: it compares the first external
// network, without the floating tag filter, against the project tag.
func (m *Migrator) CheckSync(ctx context.Context) (bool, error) {
	external := true
	networks, err := m.cloud.Networks(ctx, NetworkFilter{External: &external})
	if err != nil {
		return false, err
	}
	if len(networks) == 0 {
		return false, util.NewNotFoundError("external network", "any")
	}

	legacyProject, err := m.IsLegacyProject(ctx)
	if err != nil {
		return false, err
	}

	return networks[0].IsLegacy() == legacyProject, nil
}
