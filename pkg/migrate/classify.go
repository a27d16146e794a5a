package migrate

import (
	"context"

	"github.com/nectarcloud/netswitch/pkg/util"
)

// Kind enumerates the resource kinds the classifier recognizes.
type Kind string

const (
	KindNetwork    Kind = "network"
	KindRouter     Kind = "router"
	KindFloatingIP Kind = "floatingip"
	KindServer     Kind = "server"
)

// Recommendation strings surfaced in the report.
const (
	RecommendReplace      = "Replace"
	RecommendDeleteUnused = "Unused, Delete"
	RecommendDeleteEmpty  = "No networks attached, Delete"
	RecommendSwitch       = "Switch to modern network"
)

// Resource is a tagged union over the four recognized resource kinds.
// Exactly the field matching Kind is set.
type Resource struct {
	Kind       Kind
	Network    *Network
	Router     *Router
	FloatingIP *FloatingIP
	Server     *Server
}

// Row is one line of the migration report. Recommendation is empty for
// resources that need no action.
type Row struct {
	Type           string `json:"type"`
	ID             string `json:"id"`
	Name           string `json:"name"`
	Recommendation string `json:"recommendation,omitempty"`
}

// TableHeader matches Row's field order.
var TableHeader = []string{"Type", "ID", "Name", "Recommendation"}

type classifier func(ctx context.Context, m *Migrator, r Resource) (Row, error)

// classifiers is the closed kind-to-rule mapping. Unknown kinds are
// rejected at the Classify boundary.
var classifiers = map[Kind]classifier{
	KindNetwork:    classifyNetwork,
	KindRouter:     classifyRouter,
	KindFloatingIP: classifyFloatingIP,
	KindServer:     classifyServer,
}

// Classify computes the report row for one resource. Feeding it a kind
// outside the recognized set is a programming error and returns a typed
// UnknownResourceError that callers are expected not to handle.
func (m *Migrator) Classify(ctx context.Context, r Resource) (Row, error) {
	fn, ok := classifiers[r.Kind]
	if !ok {
		return Row{}, util.NewUnknownResourceError(string(r.Kind))
	}
	return fn(ctx, m, r)
}

// classifyNetwork recommends replacing networks the legacy backend implements.
func classifyNetwork(_ context.Context, _ *Migrator, r Resource) (Row, error) {
	row := Row{Type: "Network", ID: r.Network.ID, Name: r.Network.Name}
	if r.Network.IsLegacy() {
		row.Recommendation = RecommendReplace
	}
	return row, nil
}

// classifyFloatingIP: a floating IP on a legacy floating network is dead
// weight when unbound and needs replacing when a port holds it.
func classifyFloatingIP(ctx context.Context, m *Migrator, r Resource) (Row, error) {
	row := Row{Type: "Floating IP", ID: r.FloatingIP.ID, Name: r.FloatingIP.Address}

	legacy, err := m.isLegacyNetworkID(ctx, r.FloatingIP.FloatingNetworkID)
	if err != nil {
		return Row{}, err
	}
	if !legacy {
		return row, nil
	}

	if r.FloatingIP.PortID == "" {
		row.Recommendation = RecommendDeleteUnused
	} else {
		row.Recommendation = RecommendReplace
	}
	return row, nil
}

// classifyRouter counts interface ports and inspects the external
// gateway. A router with interfaces but no gateway cannot be attributed
// to either backend and is left unclassified; this is a known gap, kept
// as documented behavior.
func classifyRouter(ctx context.Context, m *Migrator, r Resource) (Row, error) {
	row := Row{Type: "Router", ID: r.Router.ID, Name: r.Router.Name}

	interfaces, err := m.cloud.RouterInterfaces(ctx, r.Router.ID)
	if err != nil {
		return Row{}, err
	}
	if len(interfaces) == 0 {
		row.Recommendation = RecommendDeleteEmpty
		return row, nil
	}

	if r.Router.ExternalGatewayNetworkID == "" {
		return row, nil
	}

	legacy, err := m.isLegacyNetworkID(ctx, r.Router.ExternalGatewayNetworkID)
	if err != nil {
		return Row{}, err
	}
	if legacy {
		row.Recommendation = RecommendReplace
	}
	return row, nil
}

// classifyServer resolves each attached interface's network. The legacy
// network names are collected for diagnostics, but only their presence
// drives the recommendation.
func classifyServer(ctx context.Context, m *Migrator, r Resource) (Row, error) {
	row := Row{Type: "Server", ID: r.Server.ID, Name: r.Server.Name}

	interfaces, err := m.cloud.ServerInterfaces(ctx, r.Server.ID)
	if err != nil {
		return Row{}, err
	}

	var legacyNetworks []string
	for _, iface := range interfaces {
		network, err := m.cloud.Network(ctx, iface.NetworkID)
		if err != nil {
			return Row{}, err
		}
		if network.IsLegacy() {
			legacyNetworks = append(legacyNetworks, network.Name)
		}
	}

	if len(legacyNetworks) > 0 {
		util.WithResource(string(KindServer), r.Server.ID).
			Debugf("attached to legacy networks: %v", legacyNetworks)
		row.Recommendation = RecommendSwitch
	}
	return row, nil
}
