package caddy65

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alnah/go-caddy65/internal/fileutil"
	"github.com/alnah/go-caddy65/internal/pipeline"
	"github.com/alnah/go-caddy65/internal/rules"
)

// compileCatalog builds the pattern catalog once per process.
var compileCatalog = sync.OnceValues(rules.Compile)

// Formatter formats ca65 source. Create with NewFormatter. A Formatter holds
// no per-run state and is safe for concurrent use, provided its Observer is.
type Formatter struct {
	cfg      formatterConfig
	pipeline *pipeline.Pipeline
}

// Stats counts what one Format call did.
type Stats struct {
	Lines       int
	Passthrough int
	Suppressed  int
	Rewritten   int
}

// Result is the outcome of formatting one source.
type Result struct {
	Output   []byte
	Changed  bool
	Warnings []Warning
	Stats    Stats
}

// FileResult is the outcome of FormatFile.
type FileResult struct {
	Result
	Path string
	// Written reports whether the file on disk was replaced.
	Written bool
}

// NewFormatter creates a Formatter with every rule enabled and a two-space
// indent. Returns an error if an option is out of range or the rule catalog
// fails to compile.
func NewFormatter(opts ...Option) (*Formatter, error) {
	f := &Formatter{cfg: defaultConfig()}
	for _, opt := range opts {
		opt(f)
	}

	if w := f.cfg.indentWidth; w < MinIndentWidth || w > MaxIndentWidth {
		return nil, fmt.Errorf("%w: %d (must be %d-%d)", ErrInvalidIndent, w, MinIndentWidth, MaxIndentWidth)
	}
	if err := f.cfg.markers.validate(); err != nil {
		return nil, err
	}

	cat, err := compileCatalog()
	if err != nil {
		return nil, err
	}

	indent := strings.Repeat(" ", f.cfg.indentWidth)
	exec := rules.NewExecutor(cat, rules.Options{
		Indent:            indent,
		PreserveAlignment: f.cfg.preserveAlignment,
		LowercaseLabels:   f.cfg.lowercaseLabels,
	})

	var obs pipeline.Observer
	if f.cfg.observer != nil {
		obs = observerAdapter{obs: f.cfg.observer}
	}
	m := f.cfg.markers
	f.pipeline = pipeline.New(exec, pipeline.Options{
		Rules:    f.cfg.rules.set,
		Indent:   indent,
		Markers:  pipeline.Markers{Line: m.Line, Start: m.Start, End: m.End},
		Observer: obs,
	})
	return f, nil
}

// Rules returns the enabled rule set.
func (f *Formatter) Rules() RuleSet {
	return f.cfg.rules
}

// Format formats src. Processing is strictly line by line; a fatal problem
// on any line returns an error and no output.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (f *Formatter) Format(ctx context.Context, src []byte) (res *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, fmt.Errorf("internal error: %v", r)
		}
	}()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	out, err := f.pipeline.Run(ctx, src)
	if err != nil {
		return nil, wrapRunError(err)
	}

	res = &Result{
		Output:  out.Text,
		Changed: !bytes.Equal(out.Text, src),
		Stats: Stats{
			Lines:       out.Stats.Lines,
			Passthrough: out.Stats.Passthrough,
			Suppressed:  out.Stats.Suppressed,
			Rewritten:   out.Stats.Rewritten,
		},
	}
	for _, w := range out.Warnings {
		res.Warnings = append(res.Warnings, Warning{Line: w.Line, Message: w.Message})
	}
	return res, nil
}

// wrapRunError classifies a pipeline failure. Rule failures are marked with
// ErrRuleFailed; the original cause stays reachable through errors.Is.
func wrapRunError(err error) error {
	var lineErr *pipeline.LineError
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, ErrLineTooLong):
		return err
	case errors.As(err, &lineErr):
		return fmt.Errorf("%w: %w", ErrRuleFailed, err)
	default:
		return err
	}
}

// FormatFile formats the file at path in place. The file is rewritten only
// when formatting changed it; the new content is staged beside the original
// and renamed over it, keeping the file mode. On any error the file is left
// untouched.
func (f *Formatter) FormatFile(ctx context.Context, path string) (*FileResult, error) {
	src, err := os.ReadFile(path) // #nosec G304 -- path is the caller's source file
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadSource, err)
	}

	res, err := f.Format(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	fr := &FileResult{Result: *res, Path: path}
	if !res.Changed {
		return fr, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := fileutil.ReplaceFile(path, res.Output); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteSource, err)
	}
	fr.Written = true
	return fr, nil
}
