// Package migrate implements the legacy/modern networking checks and the
// project-tag switch for OpenStack tenants.
//
// A project's networking backend is recorded in exactly one place: the
// presence of the legacy tag on the project. Everything else this package
// does is read-only classification of the project's network resources
// against the backend that implements them.
package migrate

// Mode is a project networking mode as surfaced to users.
type Mode string

const (
	// ModeLegacy is the SDN backend being migrated away from.
	ModeLegacy Mode = "legacy"

	// ModeModern is the SDN backend projects are migrated to.
	ModeModern Mode = "modern"
)

const (
	// TagLegacy on the project is the authoritative record of which
	// backend the project is assigned to.
	TagLegacy = "legacy-networking"

	// RoleTenantManager is required to read or mutate a project's
	// migration status. Policy restricts even read paths to this role.
	RoleTenantManager = "TenantManager"

	// legacyProviderType is the provider:network_type value of networks
	// implemented by the legacy backend.
	legacyProviderType = "midonet"

	// floatingTag marks a project's designated external network.
	floatingTag = "nectar:floating"

	// cacheTimeout is how long the networking service may serve stale
	// backend state after a switch.
	cacheTimeout = "2 minutes"
)

// Project is an identity-service project with its tag set.
type Project struct {
	ID   string
	Name string
	Tags []string
}

// HasTag reports whether tag is present in the project's tag set.
func (p *Project) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// IsLegacy reports whether the project is assigned to the legacy backend.
func (p *Project) IsLegacy() bool {
	return p.HasTag(TagLegacy)
}

// Mode returns the project's declared networking mode.
func (p *Project) Mode() Mode {
	if p.IsLegacy() {
		return ModeLegacy
	}
	return ModeModern
}

// Network is a networking-service network.
type Network struct {
	ID                  string
	Name                string
	ProviderNetworkType string
	External            bool
	Tags                []string
}

// IsLegacy reports whether the network is implemented by the legacy backend.
func (n *Network) IsLegacy() bool {
	return n.ProviderNetworkType == legacyProviderType
}

// Router is a networking-service router. ExternalGatewayNetworkID is
// empty when the router has no external gateway.
type Router struct {
	ID                       string
	Name                     string
	ExternalGatewayNetworkID string
}

// FloatingIP references a floating network and, when bound, a port.
type FloatingIP struct {
	ID                string
	Address           string
	FloatingNetworkID string
	PortID            string
}

// Server is a compute instance.
type Server struct {
	ID   string
	Name string
}

// Port is a networking-service port. Only identity matters here: router
// classification counts interface ports, it does not inspect them.
type Port struct {
	ID string
}

// ServerInterface is one network attachment of a server.
type ServerInterface struct {
	PortID    string
	NetworkID string
}

// Role is an identity-service role.
type Role struct {
	ID   string
	Name string
}

// RoleAssignment is a (user, project, role) grant.
type RoleAssignment struct {
	UserID    string
	ProjectID string
	RoleID    string
}
