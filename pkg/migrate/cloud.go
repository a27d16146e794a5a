package migrate

import "context"

// NetworkFilter narrows a network listing. Zero value lists everything
// visible to the caller's token.
type NetworkFilter struct {
	// External filters on router:external when non-nil.
	External *bool

	// ProjectID scopes the listing to one project's networks.
	ProjectID string

	// Tag keeps only networks carrying the given tag.
	Tag string
}

// Cloud is the control-plane surface the migrator needs. The gophercloud
// adapter in pkg/cloud implements it; tests substitute an in-memory fake.
//
// All methods are blocking API calls. Errors come back unmodified except
// where noted: forbidden role lookups surface util.ErrPermissionDenied so
// callers can treat policy denial as "no privilege" rather than a failure.
type Cloud interface {
	// CurrentUserID and CurrentProjectID identify the token's scope.
	CurrentUserID() string
	CurrentProjectID() string

	// Project fetches the current project, including its tag set.
	Project(ctx context.Context) (*Project, error)

	// Network fetches one network by ID.
	Network(ctx context.Context, id string) (*Network, error)

	// Networks lists networks matching the filter.
	Networks(ctx context.Context, filter NetworkFilter) ([]Network, error)

	// Routers lists the routers visible to the token.
	Routers(ctx context.Context) ([]Router, error)

	// RouterInterfaces lists a router's interface ports.
	RouterInterfaces(ctx context.Context, routerID string) ([]Port, error)

	// FloatingIPs lists the floating IPs visible to the token.
	FloatingIPs(ctx context.Context) ([]FloatingIP, error)

	// Servers lists the compute instances visible to the token.
	Servers(ctx context.Context) ([]Server, error)

	// ServerInterfaces lists a server's network attachments.
	ServerInterfaces(ctx context.Context, serverID string) ([]ServerInterface, error)

	// RoleByName resolves a role. Returns util.ErrPermissionDenied
	// (wrapped) when policy forbids the lookup and util.ErrNotFound
	// (wrapped) when no such role exists.
	RoleByName(ctx context.Context, name string) (*Role, error)

	// RoleAssignments lists grants matching the (user, project, role)
	// triple.
	RoleAssignments(ctx context.Context, userID, projectID, roleID string) ([]RoleAssignment, error)

	// AddProjectTag and RemoveProjectTag mutate the current project's
	// tag set. Both are idempotent on the server side.
	AddProjectTag(ctx context.Context, tag string) error
	RemoveProjectTag(ctx context.Context, tag string) error
}
