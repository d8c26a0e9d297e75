// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns a hint for config file not found errors.
func ForConfigNotFound() string {
	return format("run 'byline init' to create byline.yaml, or use --config /path/to/file.yaml")
}

// ForEmptyAuthor returns a hint for a missing author name.
func ForEmptyAuthor() string {
	return format("pass --author \"Your Name\" or set author in the config file")
}

// ForOrigin returns hints for origin mode without a usable origin.
// Batch runs need the origin up front; serve derives it per request.
func ForOrigin() string {
	return formatHints([]string{
		"pass --origin https://example.org or set image.origin",
		"or use 'byline serve' to take the origin from each request",
	})
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForNoInput returns a hint when no HTML files were given or found.
func ForNoInput() string {
	return format("pass an .html file or a directory containing .html files")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
