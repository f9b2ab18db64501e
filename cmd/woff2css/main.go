package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-woff2css/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// commands lists the first arguments dispatched as subcommands.
var commands = []string{"embed", "batch", "specimen", "config", "version", "help"}

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches args and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	setMaxProcs(env, slices.Contains(args, "-v") || slices.Contains(args, "--verbose"))

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := args[1], args[2:]
	var err error
	switch {
	case cmd == "embed":
		err = runEmbed(ctx, rest, env)
	case cmd == "batch":
		err = runBatch(ctx, rest, env)
	case cmd == "specimen":
		err = runSpecimen(ctx, rest, env)
	case cmd == "config":
		err = runConfig(rest, env)
	case cmd == "version":
		fmt.Fprintf(env.Stdout, "woff2css %s\n", Version)
	case cmd == "help" || cmd == "-h" || cmd == "--help":
		return runHelp(rest, env)
	case looksLikeFont(cmd):
		// Legacy form: woff2css font.woff [flags]
		err = runEmbed(ctx, args[1:], env)
	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// setMaxProcs aligns GOMAXPROCS with the container CPU quota.
// Error ignored: maxprocs.Set only fails on an invalid GOMAXPROCS value,
// in which case the runtime default stays in effect.
func setMaxProcs(env *Environment, verbose bool) {
	logf := func(string, ...any) {}
	if verbose {
		logf = func(format string, args ...any) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}
	}
	_, _ = maxprocs.Set(maxprocs.Logger(logf))
}

func isCommand(s string) bool {
	return slices.Contains(commands, s)
}

// looksLikeFont reports whether arg names a WOFF file rather than a command.
func looksLikeFont(arg string) bool {
	return fileutil.HasExtension(arg, ".woff")
}
