package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alnah/go-byline/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .html or .htm extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// Worker sizing constants.
const (
	// MaxWorkers caps concurrent files; decoration is CPU bound and short.
	MaxWorkers = 8
)

// FileToDecorate represents a single file to process.
type FileToDecorate struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all HTML files to decorate.
// An empty outputDir rewrites each file in place.
func discoverFiles(inputPath, outputDir string) ([]FileToDecorate, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateHTMLExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []FileToDecorate{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToDecorate
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}
		if !fileutil.IsHTML(path) {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		files = append(files, FileToDecorate{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines where the decorated file is written.
// Directory inputs are mirrored under outputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	if outputDir == "" {
		return inputPath
	}

	if fileutil.IsHTML(outputDir) && baseInputDir == "" {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, relPath)
		}
	}

	return filepath.Join(outputDir, filepath.Base(inputPath))
}

// validateHTMLExtension checks that the file has an .html or .htm extension.
func validateHTMLExtension(path string) error {
	if !fileutil.IsHTML(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}

// resolveWorkers returns the worker count to use for n files.
// Priority: explicit flag > GOMAXPROCS, capped at MaxWorkers and n.
func resolveWorkers(flagWorkers, gomaxprocs, n int) int {
	w := flagWorkers
	if w <= 0 {
		w = gomaxprocs
	}
	w = min(w, MaxWorkers, n)
	return max(w, 1)
}
