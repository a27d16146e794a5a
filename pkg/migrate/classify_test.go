package migrate_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/nectarcloud/netswitch/internal/testutil"
	"github.com/nectarcloud/netswitch/pkg/migrate"
	"github.com/nectarcloud/netswitch/pkg/util"
)

func newMigrator(fake *testutil.FakeCloud) (*migrate.Migrator, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return migrate.New(fake, out), out
}

func TestClassifyNetwork(t *testing.T) {
	fake := testutil.NewFakeCloud()
	m, _ := newMigrator(fake)

	tests := []struct {
		name     string
		provider string
		want     string
	}{
		{"legacy network", "midonet", migrate.RecommendReplace},
		{"modern network", "geneve", ""},
		{"flat network", "flat", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := m.Classify(context.Background(), migrate.Resource{
				Kind: migrate.KindNetwork,
				Network: &migrate.Network{
					ID:                  "net-1",
					Name:                "private",
					ProviderNetworkType: tt.provider,
				},
			})
			if err != nil {
				t.Fatalf("Classify() error: %v", err)
			}
			if row.Recommendation != tt.want {
				t.Errorf("Recommendation = %q, want %q", row.Recommendation, tt.want)
			}
			if row.Type != "Network" || row.ID != "net-1" || row.Name != "private" {
				t.Errorf("row identity = %+v", row)
			}
		})
	}
}

func TestClassifyFloatingIP(t *testing.T) {
	fake := testutil.NewFakeCloud()
	fake.Nets = append(fake.Nets,
		migrate.Network{ID: "fn-legacy", Name: "legacy-float", ProviderNetworkType: "midonet", External: true},
		migrate.Network{ID: "fn-modern", Name: "modern-float", ProviderNetworkType: "flat", External: true},
	)
	m, _ := newMigrator(fake)

	tests := []struct {
		name      string
		networkID string
		portID    string
		want      string
	}{
		{"legacy unbound", "fn-legacy", "", migrate.RecommendDeleteUnused},
		{"legacy bound", "fn-legacy", "port-1", migrate.RecommendReplace},
		{"modern unbound", "fn-modern", "", ""},
		{"modern bound", "fn-modern", "port-1", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := m.Classify(context.Background(), migrate.Resource{
				Kind: migrate.KindFloatingIP,
				FloatingIP: &migrate.FloatingIP{
					ID:                "fip-1",
					Address:           "203.0.113.10",
					FloatingNetworkID: tt.networkID,
					PortID:            tt.portID,
				},
			})
			if err != nil {
				t.Fatalf("Classify() error: %v", err)
			}
			if row.Recommendation != tt.want {
				t.Errorf("Recommendation = %q, want %q", row.Recommendation, tt.want)
			}
		})
	}
}

func TestClassifyRouter(t *testing.T) {
	fake := testutil.NewFakeCloud()
	fake.Nets = append(fake.Nets,
		migrate.Network{ID: "gw-legacy", ProviderNetworkType: "midonet", External: true},
		migrate.Network{ID: "gw-modern", ProviderNetworkType: "flat", External: true},
	)
	fake.RouterPorts["rtr-attached"] = []migrate.Port{{ID: "p1"}, {ID: "p2"}}
	m, _ := newMigrator(fake)

	tests := []struct {
		name      string
		routerID  string
		gatewayID string
		want      string
	}{
		// No interface ports wins over any gateway state
		{"detached, legacy gateway", "rtr-empty", "gw-legacy", migrate.RecommendDeleteEmpty},
		{"detached, no gateway", "rtr-empty", "", migrate.RecommendDeleteEmpty},
		{"attached, legacy gateway", "rtr-attached", "gw-legacy", migrate.RecommendReplace},
		{"attached, modern gateway", "rtr-attached", "gw-modern", ""},
		// Known gap: no gateway means the backend cannot be determined
		{"attached, no gateway", "rtr-attached", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := m.Classify(context.Background(), migrate.Resource{
				Kind: migrate.KindRouter,
				Router: &migrate.Router{
					ID:                       tt.routerID,
					Name:                     "router",
					ExternalGatewayNetworkID: tt.gatewayID,
				},
			})
			if err != nil {
				t.Fatalf("Classify() error: %v", err)
			}
			if row.Recommendation != tt.want {
				t.Errorf("Recommendation = %q, want %q", row.Recommendation, tt.want)
			}
		})
	}
}

func TestClassifyServer(t *testing.T) {
	fake := testutil.NewFakeCloud()
	fake.Nets = append(fake.Nets,
		migrate.Network{ID: "n-legacy", Name: "old-net", ProviderNetworkType: "midonet"},
		migrate.Network{ID: "n-modern", Name: "new-net", ProviderNetworkType: "geneve"},
	)
	fake.ServerIfaces["srv-legacy"] = []migrate.ServerInterface{
		{PortID: "p1", NetworkID: "n-modern"},
		{PortID: "p2", NetworkID: "n-legacy"},
	}
	fake.ServerIfaces["srv-modern"] = []migrate.ServerInterface{
		{PortID: "p3", NetworkID: "n-modern"},
	}
	m, _ := newMigrator(fake)

	tests := []struct {
		name     string
		serverID string
		want     string
	}{
		{"any legacy interface", "srv-legacy", migrate.RecommendSwitch},
		{"all modern interfaces", "srv-modern", ""},
		{"no interfaces", "srv-none", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, err := m.Classify(context.Background(), migrate.Resource{
				Kind:   migrate.KindServer,
				Server: &migrate.Server{ID: tt.serverID, Name: "vm"},
			})
			if err != nil {
				t.Fatalf("Classify() error: %v", err)
			}
			if row.Recommendation != tt.want {
				t.Errorf("Recommendation = %q, want %q", row.Recommendation, tt.want)
			}
		})
	}
}

func TestClassifyUnknownKind(t *testing.T) {
	fake := testutil.NewFakeCloud()
	m, _ := newMigrator(fake)

	_, err := m.Classify(context.Background(), migrate.Resource{Kind: migrate.Kind("volume")})
	if err == nil {
		t.Fatal("Classify() should reject unknown kinds")
	}
	if !errors.Is(err, util.ErrUnknownResource) {
		t.Errorf("error should unwrap to ErrUnknownResource, got %v", err)
	}

	var unknownErr *util.UnknownResourceError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("error should be UnknownResourceError, got %T", err)
	}
	if unknownErr.Kind != "volume" {
		t.Errorf("Kind = %q, want %q", unknownErr.Kind, "volume")
	}
}
