package version

import (
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	if Version != "dev" {
		t.Errorf("default Version = %q, want %q", Version, "dev")
	}
	if GitCommit != "unknown" {
		t.Errorf("default GitCommit = %q, want %q", GitCommit, "unknown")
	}
}

func TestInfo(t *testing.T) {
	info := Info()
	for _, want := range []string{Version, GitCommit, BuildDate} {
		if !strings.Contains(info, want) {
			t.Errorf("Info() = %q, should contain %q", info, want)
		}
	}
}
