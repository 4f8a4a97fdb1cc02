package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-caddy65/internal/rules"
)

// MaxLineLength is the longest line, terminator excluded, the pipeline
// accepts.
const MaxLineLength = 4095

// ErrLineTooLong is returned for a line longer than MaxLineLength.
var ErrLineTooLong = errors.New("line too long")

// LineError reports the line and rule at which formatting stopped.
type LineError struct {
	Line int
	Rule rules.ID
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Rule, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Warning is a non-fatal finding tied to a line.
type Warning struct {
	Line    int
	Message string
}

// Observer receives a trace of the run. Calls happen on the goroutine that
// called Run.
type Observer interface {
	// RuleApplied is called after each rule that ran on a line.
	RuleApplied(line int, id rules.ID, res rules.Result, flags rules.Flags)
	// LineDone is called once per input line with its final flags.
	LineDone(line int, text []byte, flags rules.Flags, passthrough bool)
}

// Options configures a Pipeline.
type Options struct {
	Rules    rules.Set
	Indent   string
	Markers  Markers
	Observer Observer
}

// Stats counts what a run did.
type Stats struct {
	Lines       int
	Passthrough int
	Suppressed  int
	Rewritten   int
}

// Output is the result of one run.
type Output struct {
	Text     []byte
	Warnings []Warning
	Stats    Stats
}

// Pipeline drives the enabled rules over every line of a source. It keeps no
// state between runs and may be shared by concurrent callers as long as its
// Observer tolerates that.
type Pipeline struct {
	exec     *rules.Executor
	enabled  []rules.ID
	indent   string
	markers  Markers
	observer Observer
}

// New returns a pipeline over exec.
func New(exec *rules.Executor, opts Options) *Pipeline {
	indent := opts.Indent
	if indent == "" {
		indent = rules.DefaultIndent
	}
	return &Pipeline{
		exec:     exec,
		enabled:  opts.Rules.IDs(),
		indent:   indent,
		markers:  opts.Markers.withDefaults(),
		observer: opts.Observer,
	}
}

// cancelCheckInterval is how many lines pass between context checks.
const cancelCheckInterval = 256

// Run formats src. On error the returned output is nil; nothing partial is
// ever handed back.
func (p *Pipeline) Run(ctx context.Context, src []byte) (*Output, error) {
	var (
		out     bytes.Buffer
		tracker = NewTracker(p.markers)
		result  = &Output{}
	)
	out.Grow(len(src))

	for num, raw := range splitLines(src) {
		if num%cancelCheckInterval == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		num++
		result.Stats.Lines++

		body := bytes.TrimSuffix(raw, []byte{'\n'})
		if len(body) > MaxLineLength {
			return nil, &LineError{Line: num, Err: fmt.Errorf("%w: %d bytes, limit %d", ErrLineTooLong, len(body), MaxLineLength)}
		}

		pass, warning := tracker.Passthrough(raw)
		if warning != "" {
			result.Warnings = append(result.Warnings, Warning{Line: num, Message: warning})
		}
		if pass {
			out.Write(raw)
			result.Stats.Passthrough++
			if p.observer != nil {
				p.observer.LineDone(num, raw, 0, true)
			}
			continue
		}

		flags := rules.PrependIndent
		if len(body) < len(raw) {
			flags |= rules.AppendTerminator
		}
		line := rules.NewLine(body)

		for _, id := range p.enabled {
			res, err := p.exec.Apply(id, line, flags)
			if err != nil {
				return nil, &LineError{Line: num, Rule: id, Err: err}
			}
			flags = advance(id, res, line, flags, tracker)
			if p.observer != nil {
				p.observer.RuleApplied(num, id, res, flags)
			}
			if flags&(rules.StopLine|rules.SuppressLine) != 0 {
				break
			}
		}

		if flags.Has(rules.SuppressLine) {
			result.Stats.Suppressed++
		}
		before := out.Len()
		emit(&out, line.Bytes(), flags, p.indent)
		if !bytes.Equal(out.Bytes()[before:], raw) {
			result.Stats.Rewritten++
		}
		if p.observer != nil {
			p.observer.LineDone(num, line.Bytes(), flags, false)
		}
	}

	if d := tracker.Depth(); d > 0 {
		result.Warnings = append(result.Warnings, Warning{
			Line:    result.Stats.Lines,
			Message: fmt.Sprintf("%d %q block(s) still open at end of file", d, p.markers.Start),
		})
	}

	result.Text = out.Bytes()
	return result, nil
}

// splitLines cuts src after every '\n'. A final line without a terminator is
// kept; a trailing terminator does not start an extra empty line.
func splitLines(src []byte) [][]byte {
	var lines [][]byte
	for len(src) > 0 {
		i := bytes.IndexByte(src, '\n')
		if i < 0 {
			lines = append(lines, src)
			break
		}
		lines = append(lines, src[:i+1])
		src = src[i+1:]
	}
	return lines
}
