package migrate

import (
	"fmt"
	"io"
)

// Migrator runs the checks and the mode switch against one cloud
// connection. It holds no state of its own: the only persisted state is
// the legacy tag on the project, server-side.
type Migrator struct {
	cloud Cloud
	out   io.Writer
}

// New creates a Migrator writing user-facing output to out.
func New(cloud Cloud, out io.Writer) *Migrator {
	return &Migrator{cloud: cloud, out: out}
}

// ParseMode validates a user-supplied networking mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLegacy, ModeModern:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid networking mode %q (must be %q or %q)", s, ModeLegacy, ModeModern)
}
