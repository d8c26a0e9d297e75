package main

import (
	"context"
	"fmt"
	"runtime"

	byline "github.com/alnah/go-byline"
)

// runDecorateCmd decorates one HTML file or every HTML file under a directory.
func runDecorateCmd(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseDecorateFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: expected one input, got %d", ErrUsage, len(positional))
	}

	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}
	mergeBylineFlags(flags.set, &flags.byline, cfg)
	if flags.origin != "" {
		cfg.Image.Origin = flags.origin
	}
	if flags.output != "" {
		cfg.Output.DefaultDir = flags.output
	}

	if len(positional) == 0 {
		return ErrNoInput
	}
	inputPath := positional[0]

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	logger := env.Logger(flags.common.quiet, flags.common.verbose)
	injector, err := newInjector(cfg, logger, styleOverride(flags.set, &flags.byline))
	if err != nil {
		return err
	}

	// Batch runs have no request to take the origin from, so origin mode
	// needs it up front and a bad value fails the run instead of every file.
	origin := ""
	if injector.Settings().Mode == byline.ModeOrigin {
		origin, err = byline.NormalizeOrigin(cfg.Image.Origin)
		if err != nil {
			return fmt.Errorf("--origin: %w", err)
		}
	}

	files, err := discoverFiles(inputPath, cfg.Output.DefaultDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no .html files in %s", ErrNoInput, inputPath)
	}

	params := &batchParams{
		origin:  origin,
		workers: resolveWorkers(flags.workers, runtime.GOMAXPROCS(0), len(files)),
		dryRun:  flags.dryRun,
	}
	logger.Debug("decorating", "files", len(files), "workers", params.workers, "mode", injector.Settings().Mode.String())

	results := decorateBatch(ctx, injector, files, params)
	failed := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, flags.dryRun, env)

	if err := ctx.Err(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrBatchFailed, failed, len(results))
	}
	return nil
}
