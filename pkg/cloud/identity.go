package cloud

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/projects"
	"github.com/gophercloud/gophercloud/v2/openstack/identity/v3/roles"

	"github.com/nectarcloud/netswitch/pkg/migrate"
	"github.com/nectarcloud/netswitch/pkg/util"
)

// Project fetches the current project, including its tag set.
func (c *Client) Project(ctx context.Context) (*migrate.Project, error) {
	p, err := projects.Get(ctx, c.identity, c.projectID).Extract()
	if err != nil {
		return nil, err
	}
	return &migrate.Project{ID: p.ID, Name: p.Name, Tags: p.Tags}, nil
}

// RoleByName resolves a role by name. Policy denial surfaces as
// util.ErrPermissionDenied so callers can treat it as "no privilege".
func (c *Client) RoleByName(ctx context.Context, name string) (*migrate.Role, error) {
	pages, err := roles.List(c.identity, roles.ListOpts{Name: name}).AllPages(ctx)
	if err != nil {
		if gophercloud.ResponseCodeIs(err, http.StatusForbidden) {
			return nil, fmt.Errorf("listing roles: %w", util.ErrPermissionDenied)
		}
		return nil, err
	}

	rs, err := roles.ExtractRoles(pages)
	if err != nil {
		return nil, err
	}
	if len(rs) == 0 {
		return nil, util.NewNotFoundError("role", name)
	}

	return &migrate.Role{ID: rs[0].ID, Name: rs[0].Name}, nil
}

// RoleAssignments lists grants matching the (user, project, role) triple.
func (c *Client) RoleAssignments(ctx context.Context, userID, projectID, roleID string) ([]migrate.RoleAssignment, error) {
	pages, err := roles.ListAssignments(c.identity, roles.ListAssignmentsOpts{
		UserID:         userID,
		ScopeProjectID: projectID,
		RoleID:         roleID,
	}).AllPages(ctx)
	if err != nil {
		return nil, err
	}

	as, err := roles.ExtractRoleAssignments(pages)
	if err != nil {
		return nil, err
	}

	out := make([]migrate.RoleAssignment, 0, len(as))
	for _, a := range as {
		out = append(out, migrate.RoleAssignment{
			UserID:    a.User.ID,
			ProjectID: a.Scope.Project.ID,
			RoleID:    a.Role.ID,
		})
	}
	return out, nil
}

// AddProjectTag adds a tag to the current project's tag set.
// The identity API exposes tags through project update, so both tag
// operations are read-modify-write on the full tag list.
func (c *Client) AddProjectTag(ctx context.Context, tag string) error {
	p, err := projects.Get(ctx, c.identity, c.projectID).Extract()
	if err != nil {
		return err
	}

	for _, t := range p.Tags {
		if t == tag {
			return nil
		}
	}

	tags := append(append([]string{}, p.Tags...), tag)
	return c.updateTags(ctx, tags)
}

// RemoveProjectTag removes a tag from the current project's tag set.
func (c *Client) RemoveProjectTag(ctx context.Context, tag string) error {
	p, err := projects.Get(ctx, c.identity, c.projectID).Extract()
	if err != nil {
		return err
	}

	tags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		if t != tag {
			tags = append(tags, t)
		}
	}
	if len(tags) == len(p.Tags) {
		return nil
	}

	return c.updateTags(ctx, tags)
}

func (c *Client) updateTags(ctx context.Context, tags []string) error {
	_, err := projects.Update(ctx, c.identity, c.projectID, projects.UpdateOpts{
		Tags: &tags,
	}).Extract()
	return err
}
