package migrate_test

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/nectarcloud/netswitch/internal/testutil"
	"github.com/nectarcloud/netswitch/pkg/migrate"
)

func TestSwitchToLegacy(t *testing.T) {
	fake := testutil.NewFakeCloud()
	m, out := newMigrator(fake)

	if err := m.Switch(context.Background(), migrate.ModeLegacy); err != nil {
		t.Fatalf("Switch() error: %v", err)
	}

	if !fake.Proj.HasTag(migrate.TagLegacy) {
		t.Error("legacy tag should be present after switch")
	}
	if !strings.Contains(out.String(), "Project set to legacy networking.") {
		t.Errorf("confirmation missing, got: %s", out.String())
	}
	if !strings.Contains(out.String(), "2 minutes") {
		t.Errorf("propagation warning missing, got: %s", out.String())
	}
}

func TestSwitchToModern(t *testing.T) {
	fake := testutil.NewFakeCloud()
	fake.SetLegacy(true)
	m, out := newMigrator(fake)

	if err := m.Switch(context.Background(), migrate.ModeModern); err != nil {
		t.Fatalf("Switch() error: %v", err)
	}

	if fake.Proj.HasTag(migrate.TagLegacy) {
		t.Error("legacy tag should be removed after switch")
	}
	if !strings.Contains(out.String(), "Project set to modern networking.") {
		t.Errorf("confirmation missing, got: %s", out.String())
	}
}

func TestSwitchIdempotent(t *testing.T) {
	t.Run("already modern", func(t *testing.T) {
		fake := testutil.NewFakeCloud()
		before := append([]string(nil), fake.Proj.Tags...)
		m, out := newMigrator(fake)

		if err := m.Switch(context.Background(), migrate.ModeModern); err != nil {
			t.Fatalf("Switch() error: %v", err)
		}

		if !reflect.DeepEqual(fake.Proj.Tags, before) {
			t.Errorf("tag set mutated: %v -> %v", before, fake.Proj.Tags)
		}
		if !strings.Contains(out.String(), "already set to modern networking") {
			t.Errorf("no-op message missing, got: %s", out.String())
		}
	})

	t.Run("already legacy", func(t *testing.T) {
		fake := testutil.NewFakeCloud()
		fake.SetLegacy(true)
		before := append([]string(nil), fake.Proj.Tags...)
		m, out := newMigrator(fake)

		if err := m.Switch(context.Background(), migrate.ModeLegacy); err != nil {
			t.Fatalf("Switch() error: %v", err)
		}

		if !reflect.DeepEqual(fake.Proj.Tags, before) {
			t.Errorf("tag set mutated: %v -> %v", before, fake.Proj.Tags)
		}
		if !strings.Contains(out.String(), "already set to legacy networking") {
			t.Errorf("no-op message missing, got: %s", out.String())
		}
	})
}

func TestSwitchRoundTrip(t *testing.T) {
	fake := testutil.NewFakeCloud()
	fake.Proj.Tags = []string{"other-tag"}
	m, _ := newMigrator(fake)
	ctx := context.Background()

	if err := m.Switch(ctx, migrate.ModeLegacy); err != nil {
		t.Fatalf("Switch(legacy) error: %v", err)
	}
	if err := m.Switch(ctx, migrate.ModeModern); err != nil {
		t.Fatalf("Switch(modern) error: %v", err)
	}

	if !reflect.DeepEqual(fake.Proj.Tags, []string{"other-tag"}) {
		t.Errorf("round trip should restore the tag set, got %v", fake.Proj.Tags)
	}
}

func TestSwitchWithoutPrivilege(t *testing.T) {
	fake := testutil.NewFakeCloud()
	fake.Assignments = nil
	m, out := newMigrator(fake)

	if err := m.Switch(context.Background(), migrate.ModeLegacy); err != nil {
		t.Fatalf("Switch() error: %v", err)
	}

	if fake.Proj.HasTag(migrate.TagLegacy) {
		t.Error("tag must not be written without privilege")
	}
	if !strings.Contains(out.String(), "TenantManager") {
		t.Errorf("guidance should name the required role, got: %s", out.String())
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    migrate.Mode
		wantErr bool
	}{
		{"legacy", migrate.ModeLegacy, false},
		{"modern", migrate.ModeModern, false},
		{"midonet", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := migrate.ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
