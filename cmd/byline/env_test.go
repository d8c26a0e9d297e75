package main

// Notes:
// - Environment.Logger: we test level selection through what reaches Stderr.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestEnvironmentLogger - Level selection
// ---------------------------------------------------------------------------

func TestEnvironmentLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		quiet     bool
		verbose   bool
		wantDebug bool
		wantWarn  bool
	}{
		{"default", false, false, false, true},
		{"verbose", false, true, true, true},
		{"quiet", true, false, false, false},
		{"verbose wins", true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, stderr := testEnv()
			logger := env.Logger(tt.quiet, tt.verbose)
			logger.Debug("debug-line")
			logger.Warn("warn-line")

			if got := strings.Contains(stderr.String(), "debug-line"); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v", got, tt.wantDebug)
			}
			if got := strings.Contains(stderr.String(), "warn-line"); got != tt.wantWarn {
				t.Errorf("warn logged = %v, want %v", got, tt.wantWarn)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDefaultEnv - Production wiring
// ---------------------------------------------------------------------------

func TestDefaultEnv(t *testing.T) {
	t.Parallel()

	env := DefaultEnv()
	if env.Stdout == nil || env.Stderr == nil {
		t.Errorf("DefaultEnv() has nil fields: %+v", env)
	}
}
