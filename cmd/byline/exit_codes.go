package main

import (
	"errors"
	"os"

	byline "github.com/alnah/go-byline"
	"github.com/alnah/go-byline/internal/config"
)

// Exit codes for the byline CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All files handled
	ExitGeneral = 1 // General/unexpected error, including failed batch files
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// ErrUsage marks command-line misuse.
var ErrUsage = errors.New("invalid usage")

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadHTML) ||
		errors.Is(err, ErrWriteHTML) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, byline.ErrEmptyAuthor) ||
		errors.Is(err, byline.ErrEmptyImagePath) ||
		errors.Is(err, byline.ErrInvalidMode) ||
		errors.Is(err, byline.ErrInvalidIconSize) ||
		errors.Is(err, byline.ErrInvalidGap) ||
		errors.Is(err, byline.ErrInvalidFontSize) ||
		errors.Is(err, byline.ErrInvalidOpacity) ||
		errors.Is(err, byline.ErrMissingOrigin) ||
		errors.Is(err, byline.ErrInvalidOrigin) {
		return ExitUsage
	}

	return ExitGeneral
}
