package main

import (
	"context"
	"fmt"
	"slices"
	"strings"

	caddy65 "github.com/alnah/go-caddy65"
	"github.com/alnah/go-caddy65/internal/ruledoc"
)

// runRules prints the rule catalog.
func runRules(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseRulesFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	format, err := ruledoc.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	cfg, err := loadSettings(flags.common.config, loadEnvConfig(env.Getenv))
	if err != nil {
		return err
	}
	entries, err := ruleEntries(ctx, formatterOptions(cfg, nil))
	if err != nil {
		return err
	}
	return ruledoc.Render(ctx, env.Stdout, format, entries)
}

// ruleEntries documents every rule, formatting its example with opts and
// only that rule enabled.
func ruleEntries(ctx context.Context, opts []caddy65.Option) ([]ruledoc.Entry, error) {
	infos := caddy65.Rules()
	entries := make([]ruledoc.Entry, 0, len(infos))

	for _, info := range infos {
		only := caddy65.NoRules()
		if err := only.Enable(info.Name); err != nil {
			return nil, err
		}
		f, err := caddy65.NewFormatter(slices.Concat(opts, []caddy65.Option{caddy65.WithRules(only)})...)
		if err != nil {
			return nil, err
		}
		res, err := f.Format(ctx, []byte(info.Example))
		if err != nil {
			return nil, fmt.Errorf("example for %s: %w", info.Name, err)
		}

		entries = append(entries, ruledoc.Entry{
			Index:     info.Index,
			Name:      info.Name,
			Alias:     info.Alias,
			Group:     info.Group,
			Summary:   info.Summary,
			Example:   info.Example,
			Formatted: strings.TrimSuffix(string(res.Output), "\n"),
		})
	}
	return entries, nil
}
