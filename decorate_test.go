package byline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestDecorate
// ---------------------------------------------------------------------------

func TestDecorate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		origin       string
		opts         []Option
		wantOutcome  Outcome
		wantErr      error // contained error in Result
		wantSame     bool  // output must equal input byte for byte
		wantContains []string
	}{
		{
			name:         "fragment decorated",
			input:        `<article><h1>Title</h1><p>Body</p></article>`,
			wantOutcome:  OutcomeInserted,
			wantContains: []string{`<h1>Title</h1><div class="byline"`, `By Ada</span></div><p>Body</p>`},
		},
		{
			name:        "no heading returns input unchanged",
			input:       "<article><p>No heading here</p></article>\n",
			wantOutcome: OutcomeNoHeading,
			wantSame:    true,
		},
		{
			name:   "full document keeps doctype",
			input:  "<!DOCTYPE html>\n<html><head><title>x</title></head><body><main><h1>Doc</h1></main></body></html>",
			origin: "https://example.org",
			opts:   []Option{WithOriginMode("/notes/")},
			wantContains: []string{
				"<!DOCTYPE html>",
				`src="https://example.org/notes/images/avatar.jpg"`,
			},
			wantOutcome: OutcomeInserted,
		},
		{
			name:        "comment prolog keeps document structure",
			input:       "<!-- generated -->\n<!DOCTYPE html><html lang=\"fr\"><head><title>T</title></head><body><article><h1>Title</h1><p>Body</p></article></body></html>",
			wantOutcome: OutcomeInserted,
			wantContains: []string{
				`<!-- generated --><!DOCTYPE html><html lang="fr"><head><title>T</title></head><body><article><h1>Title</h1><div class="byline"`,
				"</article></body></html>",
			},
		},
		{
			name:        "BOM prolog keeps BOM and document structure",
			input:       "\ufeff<!DOCTYPE html><html lang=\"fr\"><head><title>T</title></head><body><article><h1>Title</h1></article></body></html>",
			wantOutcome: OutcomeInserted,
			wantContains: []string{
				"\ufeff<!DOCTYPE html><html lang=\"fr\"><head><title>T</title></head><body><article><h1>Title</h1><div class=\"byline\"",
				"</article></body></html>",
			},
		},
		{
			name:        "missing origin contained and unchanged",
			input:       `<h1>Title</h1>`,
			opts:        []Option{WithOriginMode("/notes/")},
			wantOutcome: OutcomeFailed,
			wantErr:     ErrMissingOrigin,
			wantSame:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := append([]Option{WithAuthor("Ada")}, tt.opts...)
			inj, err := New(opts...)
			if err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}

			result, err := inj.Decorate(context.Background(), tt.input, tt.origin)
			if err != nil {
				t.Fatalf("Decorate() unexpected error: %v", err)
			}
			if result.Outcome != tt.wantOutcome {
				t.Errorf("Outcome = %v, want %v", result.Outcome, tt.wantOutcome)
			}
			if result.Inserted() != (tt.wantOutcome == OutcomeInserted) {
				t.Errorf("Inserted() = %v", result.Inserted())
			}
			if tt.wantErr != nil && !errors.Is(result.Err, tt.wantErr) {
				t.Errorf("Result.Err = %v, want %v", result.Err, tt.wantErr)
			}
			if tt.wantSame && result.HTML != tt.input {
				t.Errorf("HTML changed\ngot:  %q\nwant: %q", result.HTML, tt.input)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(result.HTML, want) {
					t.Errorf("HTML missing %q\ngot: %s", want, result.HTML)
				}
			}
		})
	}
}

func TestDecorate_Canceled(t *testing.T) {
	t.Parallel()

	inj, err := New(WithAuthor("Ada"))
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := inj.Decorate(ctx, `<h1>T</h1>`, ""); !errors.Is(err, context.Canceled) {
		t.Errorf("Decorate() error = %v, want %v", err, context.Canceled)
	}
}

func TestDecorate_ConcurrentUse(t *testing.T) {
	t.Parallel()

	inj, err := New(WithAuthor("Ada"), WithOriginMode("/"))
	if err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}

	origins := []string{"https://a.example", "https://b.example", "http://localhost:1313"}
	errs := make(chan error, len(origins)*10)

	for i := 0; i < len(origins)*10; i++ {
		origin := origins[i%len(origins)]
		go func() {
			result, err := inj.Decorate(context.Background(), `<article><h1>T</h1></article>`, origin)
			if err != nil {
				errs <- err
				return
			}
			if !strings.Contains(result.HTML, `src="`+origin+`/images/avatar.jpg"`) {
				errs <- errors.New("wrong src for " + origin + ": " + result.HTML)
				return
			}
			errs <- nil
		}()
	}

	for i := 0; i < len(origins)*10; i++ {
		if err := <-errs; err != nil {
			t.Error(err)
		}
	}
}
