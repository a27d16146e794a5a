package migrate

import (
	"context"
	"fmt"
)

// Switch sets the project's networking mode by adding or removing the
// legacy tag. Already being in the target mode is a printed no-op. The
// tag write is a single mutation with no rollback; any failure from the
// identity service propagates unmodified.
func (m *Migrator) Switch(ctx context.Context, target Mode) error {
	fmt.Fprintln(m.out, "Switching project networking")

	manager, err := m.IsTenantManager(ctx)
	if err != nil {
		return err
	}
	if !manager {
		fmt.Fprintln(m.out, msgNoSwitchPrivilege)
		return nil
	}

	legacy, err := m.IsLegacyProject(ctx)
	if err != nil {
		return err
	}

	switch target {
	case ModeLegacy:
		if legacy {
			fmt.Fprintf(m.out, "Project is already set to %s networking\n", ModeLegacy)
			return nil
		}
		if err := m.cloud.AddProjectTag(ctx, TagLegacy); err != nil {
			return err
		}
		fmt.Fprintf(m.out, "Project set to %s networking.\n", ModeLegacy)

	case ModeModern:
		if !legacy {
			fmt.Fprintf(m.out, "Project is already set to %s networking\n", ModeModern)
			return nil
		}
		if err := m.cloud.RemoveProjectTag(ctx, TagLegacy); err != nil {
			return err
		}
		fmt.Fprintf(m.out, "Project set to %s networking.\n", ModeModern)

	default:
		_, err := ParseMode(string(target))
		return err
	}

	fmt.Fprintf(m.out, "Please wait %s for changes to propagate to all services.\n", cacheTimeout)
	return nil
}
