package main

import (
	"errors"

	flag "github.com/spf13/pflag"

	caddy65 "github.com/alnah/go-caddy65"
	"github.com/alnah/go-caddy65/internal/config"
	"github.com/alnah/go-caddy65/internal/hints"
)

// Exit codes for the caddy65 CLI. Any failure, including files that need
// formatting under --check, exits with 1.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// exitCodeFor returns the exit code for an error.
// -h/--help is a success.
func exitCodeFor(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	return ExitFailure
}

// isSilent reports errors that were already reported to the user.
func isSilent(err error) bool {
	return errors.Is(err, flag.ErrHelp) || errors.Is(err, ErrNeedsFormatting)
}

// hintFor returns an actionable hint for err, or "".
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func hintFor(err error) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(config.SearchPaths())
	case errors.Is(err, caddy65.ErrUnterminatedQuote):
		return hints.ForUnterminatedQuote()
	case errors.Is(err, caddy65.ErrLineTooLong):
		return hints.ForLineTooLong(caddy65.MaxLineLength)
	}
	return ""
}
