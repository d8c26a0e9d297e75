package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-byline/internal/fileutil"
	"github.com/alnah/go-byline/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxAuthorLength   = 100  // Display name
	MaxPathLength     = 2048 // Image path, base path, origin
	MaxAddrLength     = 256  // host:port
	MaxRootNameLength = 32   // Element name
	MaxContentRoots   = 8
)

// appDirName is the directory under os.UserConfigDir searched for named configs.
const appDirName = "go-byline"

// Config holds all configuration for byline decoration.
type Config struct {
	Author  string        `yaml:"author"`
	Image   ImageConfig   `yaml:"image"`
	Style   StyleConfig   `yaml:"style"`
	Content ContentConfig `yaml:"content"`
	Output  OutputConfig  `yaml:"output"`
	Serve   ServeConfig   `yaml:"serve"`
}

// ImageConfig defines avatar path resolution.
type ImageConfig struct {
	Path     string `yaml:"path"`     // e.g. "images/avatar.jpg"
	Mode     string `yaml:"mode"`     // "relative" (default) or "origin"
	BasePath string `yaml:"basePath"` // Site base path, origin mode only
	Origin   string `yaml:"origin"`   // Document origin for batch runs, origin mode only
}

// StyleConfig defines byline visuals. Zero values mean library defaults.
type StyleConfig struct {
	IconSize int     `yaml:"iconSize"` // pixels
	Gap      int     `yaml:"gap"`      // pixels
	FontSize float64 `yaml:"fontSize"` // em
	Opacity  float64 `yaml:"opacity"`  // 0-1
}

// ContentConfig scopes the heading search.
type ContentConfig struct {
	Roots []string `yaml:"roots"` // Element names, priority order (empty = article, main)
}

// OutputConfig defines where decorated files go.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Empty = rewrite in place
}

// ServeConfig defines the HTTP serve mode.
type ServeConfig struct {
	Addr string `yaml:"addr"` // Listen address (default ":8080")
	Root string `yaml:"root"` // Directory of rendered pages
}

// Validate checks field lengths and enumerations.
// Range checks on visuals are left to the library settings.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"author", c.Author, MaxAuthorLength},
		{"image.path", c.Image.Path, MaxPathLength},
		{"image.basePath", c.Image.BasePath, MaxPathLength},
		{"image.origin", c.Image.Origin, MaxPathLength},
		{"output.defaultDir", c.Output.DefaultDir, MaxPathLength},
		{"serve.addr", c.Serve.Addr, MaxAddrLength},
		{"serve.root", c.Serve.Root, MaxPathLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	switch strings.ToLower(strings.TrimSpace(c.Image.Mode)) {
	case "", "relative", "origin":
		// valid
	default:
		return fmt.Errorf("%w: image.mode %q (must be relative or origin)", ErrInvalidValue, c.Image.Mode)
	}

	if len(c.Content.Roots) > MaxContentRoots {
		return fmt.Errorf("%w: content.roots has %d entries (max %d)", ErrInvalidValue, len(c.Content.Roots), MaxContentRoots)
	}
	for i, r := range c.Content.Roots {
		if err := validateFieldLength(fmt.Sprintf("content.roots[%d]", i), r, MaxRootNameLength); err != nil {
			return err
		}
		if strings.ContainsAny(r, " <>/\"'") {
			return fmt.Errorf("%w: content.roots[%d] %q is not an element name", ErrInvalidValue, i, r)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a configuration with relative paths and no author.
func DefaultConfig() *Config {
	return &Config{
		Image: ImageConfig{Path: "images/avatar.jpg", Mode: "relative", BasePath: "/"},
		Serve: ServeConfig{Addr: ":8080"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise it is searched as name.yaml / name.yml in the current
// directory, then in the user config directory under go-byline/.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Starter renders a YAML config with defaults filled in,
// suitable as a starting point for `byline init`.
func Starter(author string) ([]byte, error) {
	cfg := DefaultConfig()
	cfg.Author = author
	cfg.Content.Roots = []string{"article", "main"}
	return yamlutil.Encode(cfg)
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		p := name + ext
		if fileutil.FileExists(p) {
			return p, nil
		}
		tried = append(tried, p)
	}

	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			p := filepath.Join(dir, appDirName, name+ext)
			if fileutil.FileExists(p) {
				return p, nil
			}
			tried = append(tried, p)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
