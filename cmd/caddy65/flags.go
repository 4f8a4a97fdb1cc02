package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config string
}

// formatFlags holds all flags for the format command.
type formatFlags struct {
	common   commonFlags
	color    string
	check    bool
	stdout   bool
	workers  int
	quiet    bool
	verbose  bool
	pedantic bool
}

// rulesFlags holds flags for the rules command.
type rulesFlags struct {
	common commonFlags
	format string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "rule file or YAML settings path")
}

// newFormatFlagSet registers the format command flags on a new FlagSet.
// Completion scripts are generated from the same set.
func newFormatFlagSet(f *formatFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(cmdFormat, flag.ContinueOnError)

	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.color, "color", string(colorAuto), "color output: auto, always, never")
	fs.BoolVar(&f.check, "check", false, "report files that need formatting, write nothing")
	fs.BoolVar(&f.stdout, "stdout", false, "print formatted source instead of rewriting files")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print every formatted line")
	fs.BoolVar(&f.pedantic, "pedantic", false, "print every rule outcome")
	return fs
}

// parseFormatFlags parses format command flags and returns positional args.
func parseFormatFlags(args []string, stderr io.Writer) (*formatFlags, []string, error) {
	f := &formatFlags{}
	fs := newFormatFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printFormatUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// newRulesFlagSet registers the rules command flags on a new FlagSet.
func newRulesFlagSet(f *rulesFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(cmdRules, flag.ContinueOnError)

	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.format, "format", "f", "text", "output format: text, markdown, html, yaml")
	return fs
}

// parseRulesFlags parses rules command flags.
func parseRulesFlags(args []string, stderr io.Writer) (*rulesFlags, error) {
	f := &rulesFlags{}
	fs := newRulesFlagSet(f)
	fs.SetOutput(stderr)
	fs.Usage = func() { printRulesUsage(stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}
