package main

import (
	"fmt"
	"log/slog"

	byline "github.com/alnah/go-byline"
	"github.com/alnah/go-byline/internal/config"
)

// buildSettings converts a merged config into library settings.
// Zero style values in cfg keep the library defaults; overrides run last
// and may set any value, zero included.
func buildSettings(cfg *config.Config, overrides ...func(*byline.Settings)) (byline.Settings, error) {
	s := byline.DefaultSettings()
	s.Author = cfg.Author

	if cfg.Image.Path != "" {
		s.ImagePath = cfg.Image.Path
	}
	mode, err := byline.ParseMode(cfg.Image.Mode)
	if err != nil {
		return byline.Settings{}, err
	}
	s.Mode = mode
	if cfg.Image.BasePath != "" {
		s.BasePath = cfg.Image.BasePath
	}

	if cfg.Style.IconSize != 0 {
		s.IconSize = cfg.Style.IconSize
	}
	if cfg.Style.Gap != 0 {
		s.Gap = cfg.Style.Gap
	}
	if cfg.Style.FontSize != 0 {
		s.FontSize = cfg.Style.FontSize
	}
	if cfg.Style.Opacity != 0 {
		s.Opacity = cfg.Style.Opacity
	}
	if len(cfg.Content.Roots) > 0 {
		s.ContentRoots = append([]string(nil), cfg.Content.Roots...)
	}
	for _, o := range overrides {
		o(&s)
	}

	if err := s.Validate(); err != nil {
		return byline.Settings{}, err
	}
	return s, nil
}

// loadConfig returns the named config, or defaults when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newInjector builds an injector from a merged config.
func newInjector(cfg *config.Config, logger *slog.Logger, overrides ...func(*byline.Settings)) (*byline.Injector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s, err := buildSettings(cfg, overrides...)
	if err != nil {
		return nil, err
	}
	return byline.New(byline.WithSettings(s), byline.WithLogger(logger))
}
