package main

// Notes:
// - runInitCmd: we test file creation, overwrite protection and that the
//   starter file loads back through config.LoadConfig.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-byline/internal/config"
)

// ---------------------------------------------------------------------------
// TestRunInitCmd - Starter config
// ---------------------------------------------------------------------------

func TestRunInitCmd(t *testing.T) {
	t.Parallel()

	t.Run("creates loadable config", func(t *testing.T) {
		t.Parallel()

		p := filepath.Join(t.TempDir(), "site.yaml")
		env, stdout, _ := testEnv()

		if err := runInitCmd([]string{"--author", "Ada Lovelace", p}, env); err != nil {
			t.Fatalf("runInitCmd() error = %v", err)
		}
		if !strings.Contains(stdout.String(), "Created "+p) {
			t.Errorf("stdout = %q", stdout.String())
		}

		cfg, err := config.LoadConfig(p)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Author != "Ada Lovelace" {
			t.Errorf("Author = %q, want Ada Lovelace", cfg.Author)
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		p := writeFile(t, dir, "byline.yaml", "author: Keep Me\n")
		env, _, _ := testEnv()

		err := runInitCmd([]string{p}, env)
		if !errors.Is(err, ErrUsage) {
			t.Errorf("runInitCmd() error = %v, want ErrUsage", err)
		}
		if readFile(t, p) != "author: Keep Me\n" {
			t.Error("existing file was modified")
		}

		if err := runInitCmd([]string{"--force", p}, env); err != nil {
			t.Fatalf("runInitCmd(--force) error = %v", err)
		}
		if readFile(t, p) == "author: Keep Me\n" {
			t.Error("--force should overwrite")
		}
	})
}
