package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches to a command and returns the process exit code.
// Arguments that do not name a command are handed to format.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitFailure
	}

	cmd, rest := args[1], args[2:]
	if !isCommand(cmd) {
		cmd, rest = cmdFormat, args[1:]
	}

	var err error
	switch cmd {
	case cmdFormat:
		err = runFormat(ctx, rest, env)
	case cmdRules:
		err = runRules(ctx, rest, env)
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "caddy65 %s\n", Version)
	case cmdHelp:
		err = runHelp(rest, env)
	case cmdCompletion:
		err = runCompletion(rest, env)
	}

	if err != nil && !isSilent(err) {
		newReporter(env, colorAuto, false).failure(err)
	}
	return exitCodeFor(err)
}

// Command names.
const (
	cmdFormat     = "format"
	cmdRules      = "rules"
	cmdVersion    = "version"
	cmdHelp       = "help"
	cmdCompletion = "completion"
)

// isCommand reports whether arg names a command.
func isCommand(arg string) bool {
	switch arg {
	case cmdFormat, cmdRules, cmdVersion, cmdHelp, cmdCompletion:
		return true
	}
	return false
}
