package main

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	flag "github.com/spf13/pflag"

	caddy65 "github.com/alnah/go-caddy65"
	"github.com/alnah/go-caddy65/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"help requested", flag.ErrHelp, ExitSuccess},
		{"needs formatting", ErrNeedsFormatting, ExitFailure},
		{"wrapped rule failure", fmt.Errorf("main.s: %w", caddy65.ErrRuleFailed), ExitFailure},
		{"config", config.ErrConfigParse, ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestHintFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"config not found", fmt.Errorf("loading config: %w", config.ErrConfigNotFound), "--config"},
		{"unterminated quote", fmt.Errorf("%w: %w", caddy65.ErrRuleFailed, caddy65.ErrUnterminatedQuote), "string literal"},
		{"line too long", caddy65.ErrLineTooLong, "4095"},
		{"no hint", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hintFor(tt.err)
			if tt.want == "" {
				if got != "" {
					t.Errorf("hintFor() = %q, want empty", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("hintFor() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

func TestIsSilent(t *testing.T) {
	t.Parallel()

	if !isSilent(ErrNeedsFormatting) || !isSilent(flag.ErrHelp) {
		t.Error("isSilent() = false for already reported errors")
	}
	if isSilent(caddy65.ErrRuleFailed) {
		t.Error("isSilent(ErrRuleFailed) = true, want false")
	}
}
