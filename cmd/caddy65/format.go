package main

import (
	"context"
	"errors"
	"fmt"
	"sort"

	caddy65 "github.com/alnah/go-caddy65"
	"github.com/alnah/go-caddy65/internal/config"
)

// Sentinel errors for the format command.
var (
	ErrFlagConflict    = errors.New("conflicting flags")
	ErrNeedsFormatting = errors.New("files need formatting")
	ErrUnknownCommand  = errors.New("unknown command")
)

// runFormat formats the sources named in args.
func runFormat(ctx context.Context, args []string, env *Environment) error {
	flags, paths, err := parseFormatFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if flags.check && flags.stdout {
		return fmt.Errorf("%w: --check and --stdout", ErrFlagConflict)
	}
	mode, err := parseColorMode(flags.color)
	if err != nil {
		return err
	}

	rep := newReporter(env, mode, flags.quiet)
	warnUnknownEnvVars(env.Stderr, env.Environ())
	envCfg := loadEnvConfig(env.Getenv)

	cfg, err := loadSettings(flags.common.config, envCfg)
	if err != nil {
		return err
	}
	opts := formatterOptions(cfg, rep)
	rep.markers = effectiveMarkers(cfg)

	files, err := discoverFiles(paths)
	if err != nil {
		return err
	}

	workers := resolveWorkers(flags.workers, envCfg.Workers, len(files))
	var trace *tracer
	if flags.verbose || flags.pedantic {
		trace = newTracer(env.Stderr, flags.verbose, flags.pedantic, useColor(env, mode, env.Stderr))
		opts = append(opts, caddy65.WithObserver(trace))
		workers = 1
	}

	f, err := caddy65.NewFormatter(opts...)
	if err != nil {
		return err
	}

	outcomes, err := formatBatch(ctx, f, files, workers, trace)
	if err != nil {
		return err
	}
	for _, o := range outcomes {
		for _, w := range o.Result.Warnings {
			rep.warn(o.Path, w)
		}
	}

	switch {
	case flags.stdout:
		return writeStdout(env, mode, outcomes)
	case flags.check:
		changed := countChanged(outcomes)
		for _, o := range outcomes {
			rep.formatted(o.Path, o.Result.Changed, true)
		}
		rep.summary(len(outcomes), changed, true)
		if changed > 0 {
			return ErrNeedsFormatting
		}
		return nil
	}

	if err := commitBatch(ctx, outcomes); err != nil {
		return err
	}
	for _, o := range outcomes {
		rep.formatted(o.Path, o.Written, false)
	}
	if len(outcomes) > 1 {
		rep.summary(len(outcomes), countChanged(outcomes), false)
	}
	return nil
}

// loadSettings resolves and loads the settings file.
// Priority: --config > CADDY65_CONFIG > search paths > defaults.
func loadSettings(flagPath string, envCfg envConfig) (*config.Config, error) {
	explicit := flagPath
	if explicit == "" {
		explicit = envCfg.ConfigPath
	}

	path, err := config.Resolve(explicit)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if path == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// formatterOptions converts settings into formatter options. Unknown rule
// names are reported as warnings and otherwise ignored.
func formatterOptions(cfg *config.Config, rep *reporter) []caddy65.Option {
	set := caddy65.AllRules()

	names := make([]string, 0, len(cfg.Rules))
	for name := range cfg.Rules {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := set.Set(name, cfg.Rules[name]); err != nil && rep != nil {
			rep.unknownRule(cfg.Source, name)
		}
	}

	return []caddy65.Option{
		caddy65.WithRules(set),
		caddy65.WithIndent(cfg.Indent),
		caddy65.WithMarkers(effectiveMarkers(cfg)),
		caddy65.WithCommentAlignment(cfg.Comments.PreserveAlignment),
		caddy65.WithLowercaseLabels(cfg.Labels.Lowercase),
	}
}

// effectiveMarkers fills markers the settings leave empty with the defaults.
func effectiveMarkers(cfg *config.Config) caddy65.Markers {
	m := caddy65.DefaultMarkers()
	if cfg.Markers.Preformatted != "" {
		m.Line = cfg.Markers.Preformatted
	}
	if cfg.Markers.Start != "" {
		m.Start = cfg.Markers.Start
	}
	if cfg.Markers.End != "" {
		m.End = cfg.Markers.End
	}
	return m
}

// writeStdout prints every formatted file, highlighted on a terminal.
// Several files are separated by a header comment.
func writeStdout(env *Environment, mode colorMode, outcomes []*fileOutcome) error {
	colored := useColor(env, mode, env.Stdout)
	for _, o := range outcomes {
		if len(outcomes) > 1 {
			fmt.Fprintf(env.Stdout, "; ==> %s <==\n", o.Path)
		}
		if colored {
			if err := highlight(env.Stdout, o.Result.Output); err != nil {
				return err
			}
			continue
		}
		if _, err := env.Stdout.Write(o.Result.Output); err != nil {
			return err
		}
	}
	return nil
}
