package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	caddy65 "github.com/alnah/go-caddy65"
	"github.com/alnah/go-caddy65/internal/fileutil"
)

// sourceFormatter is the part of *caddy65.Formatter the batch needs.
type sourceFormatter interface {
	Format(ctx context.Context, src []byte) (*caddy65.Result, error)
}

// Compile-time interface implementation check.
var _ sourceFormatter = (*caddy65.Formatter)(nil)

// fileOutcome holds the formatted content of one file, not yet committed.
type fileOutcome struct {
	Path    string
	Result  *caddy65.Result
	Written bool
}

// formatBatch formats every file in memory with at most workers files in
// flight. The first failure cancels the rest and is returned; outcomes are
// returned only when every file succeeded, in input order.
func formatBatch(ctx context.Context, f sourceFormatter, paths []string, workers int, trace *tracer) ([]*fileOutcome, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	outcomes := make([]*fileOutcome, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			src, err := os.ReadFile(path) // #nosec G304 -- discovered path
			if err != nil {
				return fmt.Errorf("%w: %w", caddy65.ErrReadSource, err)
			}
			if trace != nil {
				trace.begin(path)
			}
			res, err := f.Format(gctx, src)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			outcomes[i] = &fileOutcome{Path: path, Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// commitBatch replaces every changed file. Each replacement is atomic;
// unchanged files are not touched. Stops at the first failure, or when ctx
// is canceled between files.
func commitBatch(ctx context.Context, outcomes []*fileOutcome) error {
	for _, o := range outcomes {
		if !o.Result.Changed {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fileutil.ReplaceFile(o.Path, o.Result.Output); err != nil {
			return fmt.Errorf("%w: %w", caddy65.ErrWriteSource, err)
		}
		o.Written = true
	}
	return nil
}

// countChanged returns how many outcomes differ from their source.
func countChanged(outcomes []*fileOutcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Result.Changed {
			n++
		}
	}
	return n
}
