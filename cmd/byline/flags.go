package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	byline "github.com/alnah/go-byline"
	"github.com/alnah/go-byline/internal/config"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// bylineFlags holds flags that shape the byline itself.
type bylineFlags struct {
	author       string
	image        string
	mode         string
	basePath     string
	iconSize     int
	gap          int
	fontSize     float64
	opacity      float64
	contentRoots []string
}

// decorateFlags holds all flags for the decorate command.
type decorateFlags struct {
	common  commonFlags
	byline  bylineFlags
	output  string
	origin  string
	workers int
	dryRun  bool
	set     *flag.FlagSet
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	common     commonFlags
	byline     bylineFlags
	addr       string
	root       string
	trustProxy bool
	set        *flag.FlagSet
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed output")
}

// addBylineFlags adds byline appearance and path flags to a FlagSet.
func addBylineFlags(fs *flag.FlagSet, f *bylineFlags) {
	fs.StringVarP(&f.author, "author", "a", "", "author display name")
	fs.StringVar(&f.image, "image", "", "avatar image path (default images/avatar.jpg)")
	fs.StringVar(&f.mode, "mode", "", "image path mode: relative, origin")
	fs.StringVar(&f.basePath, "base-path", "", "site base path for origin mode (e.g. /docs/)")
	fs.IntVar(&f.iconSize, "icon-size", 0, "avatar size in pixels (default 32)")
	fs.IntVar(&f.gap, "gap", 0, "space between avatar and label in pixels (default 8)")
	fs.Float64Var(&f.fontSize, "font-size", 0, "label font size in em (default 0.9)")
	fs.Float64Var(&f.opacity, "opacity", 0, "label opacity 0-1 (default 0.75)")
	fs.StringSliceVar(&f.contentRoots, "content-root", nil, "content root element, repeatable (default article, main)")
}

// parseDecorateFlags parses decorate arguments and returns positional args.
func parseDecorateFlags(args []string, stderr io.Writer) (*decorateFlags, []string, error) {
	f := &decorateFlags{}
	fs := flag.NewFlagSet("decorate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printDecorateUsage(stderr) }

	addCommonFlags(fs, &f.common)
	addBylineFlags(fs, &f.byline)
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: rewrite in place)")
	fs.StringVar(&f.origin, "origin", "", "site origin for origin mode (e.g. https://example.org)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "report what would change without writing")

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	f.set = fs
	return f, fs.Args(), nil
}

// parseServeFlags parses serve arguments and returns positional args.
func parseServeFlags(args []string, stderr io.Writer) (*serveFlags, []string, error) {
	f := &serveFlags{}
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printServeUsage(stderr) }

	addCommonFlags(fs, &f.common)
	addBylineFlags(fs, &f.byline)
	fs.StringVar(&f.addr, "addr", "", "listen address (default :8080)")
	fs.StringVar(&f.root, "root", "", "directory of rendered pages")
	fs.BoolVar(&f.trustProxy, "trust-proxy", false, "derive origin from X-Forwarded-Proto/Host")

	if err := fs.Parse(args); err != nil {
		return nil, nil, usageError(err)
	}
	f.set = fs
	return f, fs.Args(), nil
}

// usageError wraps a flag parse error so it maps to ExitUsage,
// leaving --help untouched.
func usageError(err error) error {
	if err == flag.ErrHelp {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// mergeBylineFlags applies explicitly set byline flags on top of cfg.
// CLI wins over config. Style flags are applied later by styleOverride,
// since a zero in the config means "default" but --gap 0 means zero.
func mergeBylineFlags(fs *flag.FlagSet, f *bylineFlags, cfg *config.Config) {
	if f.author != "" {
		cfg.Author = f.author
	}
	if f.image != "" {
		cfg.Image.Path = f.image
	}
	if f.mode != "" {
		cfg.Image.Mode = f.mode
	}
	if fs.Changed("base-path") {
		cfg.Image.BasePath = f.basePath
	}
	if len(f.contentRoots) > 0 {
		cfg.Content.Roots = f.contentRoots
	}
}

// styleOverride returns a settings override for the style flags set on the
// command line, explicit zeros included.
func styleOverride(fs *flag.FlagSet, f *bylineFlags) func(*byline.Settings) {
	return func(s *byline.Settings) {
		if fs.Changed("icon-size") {
			s.IconSize = f.iconSize
		}
		if fs.Changed("gap") {
			s.Gap = f.gap
		}
		if fs.Changed("font-size") {
			s.FontSize = f.fontSize
		}
		if fs.Changed("opacity") {
			s.Opacity = f.opacity
		}
	}
}
