package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: caddy65 [command] [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  format     Format ca65 sources in place (default)")
	fmt.Fprintln(w, "  rules      List the formatting rules")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'caddy65 help <command>' for details on a specific command.")
}

// printFormatUsage prints usage for the format command.
func printFormatUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: caddy65 format <source-path>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Format ca65 sources in place. Directories are searched for")
	fmt.Fprintln(w, ".s, .asm, .inc, .a65 and .ca65 files. Nothing is written unless")
	fmt.Fprintln(w, "every file formats without error.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Settings:")
	fmt.Fprintln(w, "  -c, --config <path>       Rule file or YAML settings (env: CADDY65_CONFIG)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers, 0 = auto (env: CADDY65_WORKERS)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "      --check               Report files that need formatting, write nothing")
	fmt.Fprintln(w, "      --stdout              Print the result instead of rewriting files")
	fmt.Fprintln(w, "      --color <when>        auto, always, never")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Diagnostics:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Print every formatted line")
	fmt.Fprintln(w, "      --pedantic            Print every rule outcome")
}

// printRulesUsage prints usage for the rules command.
func printRulesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: caddy65 rules [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the formatting rules in execution order, with an example of each.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --format <name>       text, markdown, html, yaml (default text)")
	fmt.Fprintln(w, "  -c, --config <path>       Format the examples with these settings")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case cmdFormat:
		printFormatUsage(env.Stdout)
	case cmdRules:
		printRulesUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: caddy65 version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: caddy65 help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	case cmdCompletion:
		printCompletionUsage(env.Stdout)
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
