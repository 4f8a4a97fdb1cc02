// Package caddy65 reformats 6502 assembly source written for the ca65
// assembler into a canonical layout.
//
// # Quick Start
//
// Create a formatter and format a source buffer:
//
//	f, err := caddy65.NewFormatter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := f.Format(ctx, src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(res.Output)
//
// FormatFile formats a file in place. The new content is staged next to the
// original and renamed over it, so the file is either fully replaced or left
// untouched.
//
// # Rules
//
// Formatting is an ordered list of rules, each a pattern plus a rewrite.
// Every line runs through the enabled rules in order; rules share per-line
// flags that decide indentation, the unnamed label marker and whether a
// blank line is kept. List the catalog with Rules and choose the active set
// with a RuleSet:
//
//	set := caddy65.AllRules()
//	if err := set.Disable("comma-spacing"); err != nil {
//	    log.Fatal(err)
//	}
//	f, err := caddy65.NewFormatter(caddy65.WithRules(set))
//
// # Preformatted Text
//
// A line containing "#pre-formatted" is copied unchanged. Lines between
// "#pre-formatted-start" and "#pre-formatted-end" are copied unchanged too;
// blocks nest.
//
// # Errors
//
// An unterminated string on a line whose operators need spacing, or a line
// longer than MaxLineLength, stops formatting: Format returns an error and no
// output. Softer problems, such as an end marker without a start, are
// returned as Warnings alongside the output.
package caddy65
