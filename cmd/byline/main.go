package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	byline "github.com/alnah/go-byline"
	"github.com/alnah/go-byline/internal/config"
	"github.com/alnah/go-byline/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply.
	undo, _ := maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	code := runMain(os.Args, DefaultEnv())
	undo()
	os.Exit(code)
}

// runMain dispatches the subcommand and maps its error to an exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := args[1], args[2:]

	var err error
	switch cmd {
	case "decorate":
		err = runDecorateCmd(ctx, rest, env)
	case "serve":
		err = runServeCmd(ctx, rest, env)
	case "init":
		err = runInitCmd(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "byline %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command %q\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
	}
	return exitCodeFor(err)
}

// hintFor returns an actionable hint for well-known errors, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound()
	case errors.Is(err, byline.ErrEmptyAuthor):
		return hints.ForEmptyAuthor()
	case errors.Is(err, byline.ErrMissingOrigin), errors.Is(err, byline.ErrInvalidOrigin):
		return hints.ForOrigin()
	case errors.Is(err, ErrNoInput):
		return hints.ForNoInput()
	}
	return ""
}
