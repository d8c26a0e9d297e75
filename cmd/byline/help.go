package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: byline <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  decorate   Insert an author byline into HTML files")
	fmt.Fprintln(w, "  serve      Serve a directory with bylines injected per request")
	fmt.Fprintln(w, "  init       Write a starter config file")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'byline help <command>' for details on a specific command.")
}

// printBylineFlags prints the flag groups shared by decorate and serve.
func printBylineFlags(w io.Writer) {
	fmt.Fprintln(w, "Byline:")
	fmt.Fprintln(w, "  -a, --author <s>          Author display name (required)")
	fmt.Fprintln(w, "      --content-root <s>    Content root element, repeatable (default article, main)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Image:")
	fmt.Fprintln(w, "      --image <path>        Avatar path (default images/avatar.jpg)")
	fmt.Fprintln(w, "      --mode <s>            Path mode: relative, origin")
	fmt.Fprintln(w, "      --base-path <path>    Site base path for origin mode (e.g. /docs/)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --icon-size <n>       Avatar size in pixels (8-512, default 32)")
	fmt.Fprintln(w, "      --gap <n>             Avatar/label spacing in pixels (0-128, default 8)")
	fmt.Fprintln(w, "      --font-size <f>       Label size in em (0.25-4.0, default 0.9)")
	fmt.Fprintln(w, "      --opacity <f>         Label opacity (0-1, default 0.75)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed output")
}

// printDecorateUsage prints usage for the decorate command.
func printDecorateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: byline decorate <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Insert an author byline after the first heading of each HTML page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    HTML file or directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory (default: rewrite in place)")
	fmt.Fprintln(w, "      --origin <url>        Site origin for origin mode (e.g. https://example.org)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto, max 8)")
	fmt.Fprintln(w, "  -n, --dry-run             Report what would change without writing")
	fmt.Fprintln(w)
	printBylineFlags(w)
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: byline serve [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve rendered pages with a byline injected into each HTML response.")
	fmt.Fprintln(w, "In origin mode the origin is taken from each request.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Server:")
	fmt.Fprintln(w, "      --addr <addr>         Listen address (default :8080)")
	fmt.Fprintln(w, "      --root <dir>          Directory of rendered pages")
	fmt.Fprintln(w, "      --trust-proxy         Use X-Forwarded-Proto/Host for the origin")
	fmt.Fprintln(w)
	printBylineFlags(w)
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: byline init [path] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write a starter config file (default byline.yaml).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -a, --author <s>          Author display name")
	fmt.Fprintln(w, "  -f, --force               Overwrite an existing file")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "decorate":
		printDecorateUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: byline version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: byline help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
