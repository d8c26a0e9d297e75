package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-byline/internal/config"
)

// defaultConfigFile is written by `byline init` when no path is given.
const defaultConfigFile = "byline.yaml"

// runInitCmd writes a starter config file.
func runInitCmd(args []string, env *Environment) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.Usage = func() { printInitUsage(env.Stderr) }

	var author string
	var force bool
	fs.StringVarP(&author, "author", "a", "", "author display name")
	fs.BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	if err := fs.Parse(args); err != nil {
		return usageError(err)
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("%w: expected at most one path, got %d", ErrUsage, fs.NArg())
	}

	path := defaultConfigFile
	if fs.NArg() == 1 {
		path = fs.Arg(0)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s already exists (use --force to overwrite)", ErrUsage, path)
	}

	data, err := config.Starter(author)
	if err != nil {
		return err
	}
	// #nosec G306 -- config files are meant to be readable
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return err
	}

	fmt.Fprintf(env.Stdout, "Created %s\n", path)
	return nil
}
