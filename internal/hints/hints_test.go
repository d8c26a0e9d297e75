package hints

// Notes:
// - Each hint is a fixed string; we test the shared prefix and the
//   actionable part users need to see.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestHints - Hint content
// ---------------------------------------------------------------------------

func TestHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want []string
	}{
		{"config not found", ForConfigNotFound(), []string{"byline init", "--config"}},
		{"empty author", ForEmptyAuthor(), []string{"--author"}},
		{"origin", ForOrigin(), []string{"--origin", "image.origin", "byline serve", "; "}},
		{"output directory", ForOutputDirectory(), []string{"writable"}},
		{"no input", ForNoInput(), []string{".html"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.got, "\n  hint: ") {
				t.Errorf("hint %q should start with the hint prefix", tt.got)
			}
			for _, s := range tt.want {
				if !strings.Contains(tt.got, s) {
					t.Errorf("hint %q should contain %q", tt.got, s)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFormat - Formatting helpers
// ---------------------------------------------------------------------------

func TestFormat(t *testing.T) {
	t.Parallel()

	if got := format(""); got != "" {
		t.Errorf("format(\"\") = %q, want empty", got)
	}
	if got := formatHints(nil); got != "" {
		t.Errorf("formatHints(nil) = %q, want empty", got)
	}
	if got := formatHints([]string{"a", "b"}); got != "\n  hint: a; b" {
		t.Errorf("formatHints() = %q", got)
	}
}
