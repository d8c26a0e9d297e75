package main

// Notes:
// - This file contains test helpers shared across command tests.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	byline "github.com/alnah/go-byline"
)

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

const (
	pageWithHeading = "<!DOCTYPE html><html><head><title>t</title></head><body><article><h1>Title</h1><p>Body</p></article></body></html>"
	pageNoHeading   = "<!DOCTYPE html><html><head><title>t</title></head><body><article><p>Body</p></article></body></html>"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// testEnv returns an environment writing to buffers.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Stdout: &stdout,
		Stderr: &stderr,
	}
	return env, &stdout, &stderr
}

// newTestInjector returns an injector in relative mode.
func newTestInjector(t *testing.T, opts ...byline.Option) *byline.Injector {
	t.Helper()
	opts = append([]byline.Option{byline.WithAuthor("Ada Lovelace")}, opts...)
	inj, err := byline.New(opts...)
	if err != nil {
		t.Fatalf("byline.New() error = %v", err)
	}
	return inj
}

// writeFile writes content under dir, creating parents.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

// readFile returns the file content as a string.
func readFile(t *testing.T, p string) string {
	t.Helper()
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

// stubDecorator returns a fixed result or error.
type stubDecorator struct {
	result *byline.Result
	err    error
}

func (s *stubDecorator) Decorate(_ context.Context, htmlContent, _ string) (*byline.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.result != nil {
		return s.result, nil
	}
	return &byline.Result{HTML: htmlContent, Outcome: byline.OutcomeNoHeading}, nil
}
