package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	byline "github.com/alnah/go-byline"
	"github.com/alnah/go-byline/internal/fileutil"
	"github.com/alnah/go-byline/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput     = errors.New("no input specified")
	ErrReadHTML    = errors.New("failed to read HTML file")
	ErrWriteHTML   = errors.New("failed to write HTML file")
	ErrBatchFailed = errors.New("some files failed")
)

// Decorator is the part of byline.Injector the batch needs.
type Decorator interface {
	Decorate(ctx context.Context, htmlContent, origin string) (*byline.Result, error)
}

// Compile-time interface implementation check.
var _ Decorator = (*byline.Injector)(nil)

// batchParams holds per-run settings shared by all files.
type batchParams struct {
	origin  string
	workers int
	dryRun  bool
}

// DecorationResult holds the outcome of a single file.
type DecorationResult struct {
	InputPath  string
	OutputPath string
	Outcome    byline.Outcome
	Err        error
	Duration   time.Duration
}

// decorateBatch processes files concurrently with a shared decorator.
func decorateBatch(ctx context.Context, d Decorator, files []FileToDecorate, params *batchParams) []DecorationResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := max(min(params.workers, len(files)), 1)

	results := make([]DecorationResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = DecorationResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = decorateFile(ctx, d, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// decorateFile processes a single file and returns the result.
// Files without an inserted byline are copied unchanged when the output
// differs from the input, and left alone when rewriting in place.
func decorateFile(ctx context.Context, d Decorator, f FileToDecorate, params *batchParams) DecorationResult {
	start := time.Now()
	result := DecorationResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadHTML, err)
		result.Duration = time.Since(start)
		return result
	}

	res, err := d.Decorate(ctx, string(content), params.origin)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	result.Outcome = res.Outcome

	inPlace := sameFile(f.InputPath, f.OutputPath)
	if params.dryRun || (inPlace && !res.Inserted()) {
		result.Duration = time.Since(start)
		return result
	}

	out := content
	if res.Inserted() {
		out = []byte(res.HTML)
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory())
		result.Duration = time.Since(start)
		return result
	}

	if err := fileutil.WriteFileAtomic(f.OutputPath, out, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteHTML, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// sameFile reports whether two paths name the same location.
func sameFile(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}

// ResultSummary holds the count of decorated, skipped and failed files.
type ResultSummary struct {
	Decorated int
	Skipped   int
	Failed    int
}

// countResults tallies results by outcome.
func countResults(results []DecorationResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Outcome == byline.OutcomeInserted:
			summary.Decorated++
		default:
			summary.Skipped++
		}
	}
	return summary
}

// printResultsWithWriter outputs batch results using the provided writers
// and returns the number of failures.
func printResultsWithWriter(results []DecorationResult, quiet, verbose, dryRun bool, env *Environment) int {
	summary := countResults(results)

	verb := "Decorated"
	if dryRun {
		verb = "Would decorate"
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		switch {
		case verbose:
			fmt.Fprintf(env.Stdout, "%s -> %s [%s] (%v)\n", r.InputPath, r.OutputPath, r.Outcome, r.Duration.Round(time.Millisecond))
		case r.Outcome == byline.OutcomeInserted:
			fmt.Fprintf(env.Stdout, "%s %s\n", verb, r.OutputPath)
		default:
			fmt.Fprintf(env.Stdout, "Skipped %s (%s)\n", r.InputPath, r.Outcome)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d decorated, %d skipped, %d failed\n", summary.Decorated, summary.Skipped, summary.Failed)
	}

	return summary.Failed
}
