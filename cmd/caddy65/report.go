package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"

	caddy65 "github.com/alnah/go-caddy65"
	"github.com/alnah/go-caddy65/internal/hints"
)

// ErrInvalidColor indicates an unknown --color value.
var ErrInvalidColor = errors.New("invalid color mode")

// colorMode is the --color setting.
type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

// parseColorMode validates a --color value.
func parseColorMode(s string) (colorMode, error) {
	switch m := colorMode(strings.ToLower(s)); m {
	case colorAuto, colorAlways, colorNever:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q (want auto, always or never)", ErrInvalidColor, s)
}

// useColor decides whether output to w is colored.
// Auto colors terminals unless NO_COLOR is set.
func useColor(env *Environment, mode colorMode, w io.Writer) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	if env.Getenv != nil && env.Getenv("NO_COLOR") != "" {
		return false
	}
	return env.IsTerminal != nil && env.IsTerminal(w)
}

// paint returns a color whose output is forced on or off.
func paint(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// reporter prints results and diagnostics.
type reporter struct {
	stdout io.Writer
	stderr io.Writer
	quiet  bool

	// Markers name the block markers in hints.
	markers caddy65.Markers

	warnLabel *color.Color
	errLabel  *color.Color
	okLabel   *color.Color
	dim       *color.Color
}

// newReporter creates a reporter writing to env's streams.
func newReporter(env *Environment, mode colorMode, quiet bool) *reporter {
	errColor := useColor(env, mode, env.Stderr)
	outColor := useColor(env, mode, env.Stdout)
	return &reporter{
		stdout:    env.Stdout,
		stderr:    env.Stderr,
		quiet:     quiet,
		markers:   caddy65.DefaultMarkers(),
		warnLabel: paint(errColor, color.FgYellow, color.Bold),
		errLabel:  paint(errColor, color.FgRed, color.Bold),
		okLabel:   paint(outColor, color.FgGreen),
		dim:       paint(outColor, color.Faint),
	}
}

// warn prints a non-fatal finding. Warnings survive --quiet.
func (r *reporter) warn(path string, w caddy65.Warning) {
	loc := path
	if w.Line > 0 {
		loc = fmt.Sprintf("%s:%d", path, w.Line)
	}
	if loc != "" {
		loc += ": "
	}
	fmt.Fprintf(r.stderr, "%s %s%s%s\n", r.warnLabel.Sprint("warning:"), loc, w.Message, r.hintForWarning(w))
}

// hintForWarning returns a hint for preformatted marker warnings.
func (r *reporter) hintForWarning(w caddy65.Warning) string {
	if strings.Contains(w.Message, r.markers.Start) || strings.Contains(w.Message, r.markers.End) {
		return hints.ForUnbalancedMarker(r.markers.Start, r.markers.End)
	}
	return ""
}

// unknownRule warns about a settings entry naming no rule.
func (r *reporter) unknownRule(source, name string) {
	names := make([]string, 0, len(caddy65.Rules()))
	for _, info := range caddy65.Rules() {
		names = append(names, info.Name)
	}
	r.warn(source, caddy65.Warning{
		Message: fmt.Sprintf("unknown rule %q ignored%s", name, hints.ForUnknownRule(name, names)),
	})
}

// failure prints a fatal error with its hint.
func (r *reporter) failure(err error) {
	fmt.Fprintf(r.stderr, "%s %v%s\n", r.errLabel.Sprint("error:"), err, hintFor(err))
}

// formatted reports one file after commit or check.
func (r *reporter) formatted(path string, changed, check bool) {
	if r.quiet {
		return
	}
	switch {
	case check && changed:
		fmt.Fprintf(r.stdout, "would reformat %s\n", path)
	case changed:
		fmt.Fprintf(r.stdout, "%s %s\n", r.okLabel.Sprint("formatted"), path)
	}
}

// summary prints totals after a batch.
func (r *reporter) summary(total, changed int, check bool) {
	if r.quiet {
		return
	}
	verb := "reformatted"
	if check {
		verb = "would be reformatted"
	}
	fmt.Fprintf(r.stdout, "%s\n", r.dim.Sprintf("%d file(s) checked, %d %s", total, changed, verb))
}

// tracer prints per-line and per-rule traces for --verbose and --pedantic.
// Formatting runs on one worker while tracing, so events arrive in order.
type tracer struct {
	mu       sync.Mutex
	w        io.Writer
	path     string
	lines    bool
	rules    bool
	ruleName *color.Color
}

var _ caddy65.Observer = (*tracer)(nil)

func newTracer(w io.Writer, lines, rules, colored bool) *tracer {
	return &tracer{
		w:        w,
		lines:    lines,
		rules:    rules,
		ruleName: paint(colored, color.FgCyan),
	}
}

// begin starts tracing a new file.
func (t *tracer) begin(path string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.path = path
}

func (t *tracer) OnLine(e caddy65.LineEvent) {
	if !t.lines {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	var tag string
	switch {
	case e.Passthrough:
		tag = "keep"
	case e.Suppressed:
		tag = "drop"
	case e.LabelMarker:
		tag = "label"
	case e.Indented:
		tag = "indent"
	default:
		tag = "-"
	}
	fmt.Fprintf(t.w, "%s:%d: %-6s %s\n", t.path, e.Line, tag, e.Text)
}

func (t *tracer) OnRule(e caddy65.RuleEvent) {
	if !t.rules {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.w, "%s:%d: %s %s [%s]\n", t.path, e.Line, t.ruleName.Sprintf("%-26s", e.Rule), e.Outcome, e.Flags)
}
