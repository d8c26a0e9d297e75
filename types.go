package byline

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/alnah/go-byline/internal/dom"
)

// Mode selects how the avatar image path is resolved.
type Mode int

const (
	// ModeRelative uses the image path as-is; the browser resolves it
	// against the page's own URL.
	ModeRelative Mode = iota
	// ModeOrigin builds an absolute URL from the page origin, the site
	// base path and the image path, independent of page nesting depth.
	ModeOrigin
)

// Mode names accepted by ParseMode.
const (
	ModeNameRelative = "relative"
	ModeNameOrigin   = "origin"
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeRelative:
		return ModeNameRelative
	case ModeOrigin:
		return ModeNameOrigin
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a configuration name to a Mode (case-insensitive).
// An empty string selects ModeRelative.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", ModeNameRelative:
		return ModeRelative, nil
	case ModeNameOrigin, "origin-qualified", "absolute":
		return ModeOrigin, nil
	}
	return 0, fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidMode, s, ModeNameRelative, ModeNameOrigin)
}

// Visual defaults for the byline block.
const (
	DefaultImagePath = "images/avatar.jpg"
	DefaultBasePath  = "/"
	DefaultIconSize  = 32   // pixels, width and height
	DefaultGap       = 8    // pixels between avatar and label
	DefaultFontSize  = 0.9  // em
	DefaultOpacity   = 0.75 // label opacity
)

// Bounds for visual settings.
const (
	MinIconSize = 8
	MaxIconSize = 512
	MaxGap      = 128
	MinFontSize = 0.25
	MaxFontSize = 4.0
)

// Settings configures the byline and how its image path is resolved.
type Settings struct {
	Author    string  // Display name, rendered as "By <Author>"
	ImagePath string  // Avatar path, e.g. "images/avatar.jpg"
	Mode      Mode    // Path resolution strategy
	BasePath  string  // Site base path, used only in ModeOrigin
	IconSize  int     // Avatar width and height in pixels
	Gap       int     // Spacing between avatar and label in pixels
	FontSize  float64 // Label font size in em
	Opacity   float64 // Label opacity, 0 to 1

	// ContentRoots lists the elements scoping the heading search, in
	// priority order. Empty means dom.DefaultContentRoots.
	ContentRoots []string
}

// DefaultSettings returns settings with default visuals and relative mode.
// Author is left empty and must be set before use.
func DefaultSettings() Settings {
	return Settings{
		ImagePath: DefaultImagePath,
		Mode:      ModeRelative,
		BasePath:  DefaultBasePath,
		IconSize:  DefaultIconSize,
		Gap:       DefaultGap,
		FontSize:  DefaultFontSize,
		Opacity:   DefaultOpacity,
	}
}

// Validate checks that settings are usable.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.Author) == "" {
		return ErrEmptyAuthor
	}
	if strings.TrimSpace(s.ImagePath) == "" {
		return ErrEmptyImagePath
	}
	if s.Mode != ModeRelative && s.Mode != ModeOrigin {
		return fmt.Errorf("%w: %d", ErrInvalidMode, int(s.Mode))
	}
	if s.IconSize < MinIconSize || s.IconSize > MaxIconSize {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidIconSize, s.IconSize, MinIconSize, MaxIconSize)
	}
	if s.Gap < 0 || s.Gap > MaxGap {
		return fmt.Errorf("%w: %d (must be between 0 and %d)", ErrInvalidGap, s.Gap, MaxGap)
	}
	if math.IsNaN(s.FontSize) || s.FontSize < MinFontSize || s.FontSize > MaxFontSize {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidFontSize, s.FontSize, MinFontSize, MaxFontSize)
	}
	if math.IsNaN(s.Opacity) || s.Opacity < 0 || s.Opacity > 1 {
		return fmt.Errorf("%w: %.2f (must be between 0 and 1)", ErrInvalidOpacity, s.Opacity)
	}
	return nil
}

// contentRoots returns the configured roots or the defaults.
func (s Settings) contentRoots() []string {
	if len(s.ContentRoots) == 0 {
		return dom.DefaultContentRoots
	}
	return s.ContentRoots
}

// Option configures an Injector.
type Option func(*Injector)

// WithSettings replaces all settings at once.
func WithSettings(s Settings) Option {
	return func(i *Injector) {
		i.settings = s
	}
}

// WithAuthor sets the author display name.
func WithAuthor(name string) Option {
	return func(i *Injector) {
		i.settings.Author = name
	}
}

// WithImagePath sets the avatar image path.
func WithImagePath(path string) Option {
	return func(i *Injector) {
		i.settings.ImagePath = path
	}
}

// WithRelativeMode resolves the image path against each page's own URL.
func WithRelativeMode() Option {
	return func(i *Injector) {
		i.settings.Mode = ModeRelative
	}
}

// WithOriginMode resolves the image path as origin + basePath + image path.
func WithOriginMode(basePath string) Option {
	return func(i *Injector) {
		i.settings.Mode = ModeOrigin
		i.settings.BasePath = basePath
	}
}

// WithIconSize sets the avatar size in pixels.
func WithIconSize(px int) Option {
	return func(i *Injector) {
		i.settings.IconSize = px
	}
}

// WithContentRoots sets the elements scoping the heading search.
func WithContentRoots(names ...string) Option {
	return func(i *Injector) {
		i.settings.ContentRoots = names
	}
}

// WithLogger sets the logger used for contained injection failures.
func WithLogger(l *slog.Logger) Option {
	return func(i *Injector) {
		i.logger = l
	}
}
