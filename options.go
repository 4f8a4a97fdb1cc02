package caddy65

import (
	"fmt"
	"strings"

	"github.com/alnah/go-caddy65/internal/pipeline"
)

// Indent width limits, in columns.
const (
	DefaultIndentWidth = 2
	MinIndentWidth     = 2
	MaxIndentWidth     = 8
)

// Markers are the substrings that exempt lines from formatting. Empty
// fields fall back to the defaults.
type Markers struct {
	// Line exempts the line that contains it. Default "#pre-formatted".
	Line string
	// Start opens an exempt block. Default "#pre-formatted-start".
	Start string
	// End closes the innermost open block. Default "#pre-formatted-end".
	End string
}

// DefaultMarkers returns the standard markers.
func DefaultMarkers() Markers {
	m := pipeline.DefaultMarkers()
	return Markers{Line: m.Line, Start: m.Start, End: m.End}
}

func (m Markers) validate() error {
	for _, s := range []string{m.Line, m.Start, m.End} {
		if strings.ContainsAny(s, "\r\n") {
			return fmt.Errorf("%w: %q spans lines", ErrInvalidMarker, s)
		}
	}
	if m.Start != "" && m.Start == m.End {
		return fmt.Errorf("%w: start and end are both %q", ErrInvalidMarker, m.Start)
	}
	return nil
}

// Option configures a Formatter.
type Option func(*Formatter)

// formatterConfig holds the settings options write.
type formatterConfig struct {
	rules             RuleSet
	indentWidth       int
	markers           Markers
	preserveAlignment bool
	lowercaseLabels   bool
	observer          Observer
}

func defaultConfig() formatterConfig {
	return formatterConfig{
		rules:           AllRules(),
		indentWidth:     DefaultIndentWidth,
		markers:         DefaultMarkers(),
		lowercaseLabels: true,
	}
}

// WithRules selects the rules that run.
func WithRules(set RuleSet) Option {
	return func(f *Formatter) {
		f.cfg.rules = set
	}
}

// WithIndent sets the indentation unit, in spaces. NewFormatter rejects
// widths outside MinIndentWidth..MaxIndentWidth.
func WithIndent(width int) Option {
	return func(f *Formatter) {
		f.cfg.indentWidth = width
	}
}

// WithMarkers replaces the preformatted markers.
func WithMarkers(m Markers) Option {
	return func(f *Formatter) {
		f.cfg.markers = m
	}
}

// WithCommentAlignment keeps existing blank runs around ';' instead of
// collapsing them to one space. Comments are still separated from code.
func WithCommentAlignment(preserve bool) Option {
	return func(f *Formatter) {
		f.cfg.preserveAlignment = preserve
	}
}

// WithLowercaseLabels controls whether label definitions are folded to lower
// case. On by default.
func WithLowercaseLabels(lower bool) Option {
	return func(f *Formatter) {
		f.cfg.lowercaseLabels = lower
	}
}

// WithObserver installs a trace observer.
func WithObserver(obs Observer) Option {
	return func(f *Formatter) {
		f.cfg.observer = obs
	}
}
