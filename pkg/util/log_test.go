package util

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func saveLoggerState() (io.Writer, logrus.Level) {
	return Logger.Out, Logger.Level
}

func restoreLoggerState(out io.Writer, level logrus.Level) {
	Logger.SetOutput(out)
	Logger.SetLevel(level)
}

func TestSetLogLevel(t *testing.T) {
	out, level := saveLoggerState()
	defer restoreLoggerState(out, level)

	tests := []struct {
		level   string
		wantErr bool
	}{
		{"debug", false},
		{"info", false},
		{"warn", false},
		{"error", false},
		{"invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			err := SetLogLevel(tt.level)
			if (err != nil) != tt.wantErr {
				t.Errorf("SetLogLevel(%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
			}
		})
	}
}

func TestDebugSuppressedAtWarnLevel(t *testing.T) {
	out, level := saveLoggerState()
	defer restoreLoggerState(out, level)

	var buf bytes.Buffer
	Logger.SetOutput(&buf)

	if err := SetLogLevel("warn"); err != nil {
		t.Fatal(err)
	}
	WithField("key", "value").Debug("hidden message")
	if buf.Len() != 0 {
		t.Errorf("debug output should be suppressed at warn level: %q", buf.String())
	}

	Warnf("visible %s", "message")
	if !strings.Contains(buf.String(), "visible message") {
		t.Errorf("warn output missing: %q", buf.String())
	}
}

func TestWithResource(t *testing.T) {
	out, level := saveLoggerState()
	defer restoreLoggerState(out, level)

	var buf bytes.Buffer
	Logger.SetOutput(&buf)
	if err := SetLogLevel("debug"); err != nil {
		t.Fatal(err)
	}

	WithResource("server", "srv-1").Debug("classified")

	got := buf.String()
	if !strings.Contains(got, "server") || !strings.Contains(got, "srv-1") {
		t.Errorf("resource fields missing from log entry: %q", got)
	}
}
