// Package ruledoc renders the rule catalog as reference documentation.
package ruledoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"text/template"

	"github.com/alnah/go-caddy65/internal/yamlutil"
)

// Sentinel errors for rendering.
var (
	ErrUnknownFormat  = errors.New("unknown output format")
	ErrHTMLConversion = errors.New("HTML conversion failed")
)

// Format selects the rendering.
type Format string

// Supported formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatYAML     Format = "yaml"
)

// Formats lists the accepted format names.
func Formats() []string {
	return []string{string(FormatText), string(FormatMarkdown), string(FormatHTML), string(FormatYAML)}
}

// ParseFormat accepts a format name, or "md" for Markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, s, strings.Join(Formats(), ", "))
}

// Entry documents one rule.
type Entry struct {
	Index   int    `yaml:"index"`
	Name    string `yaml:"name"`
	Alias   string `yaml:"alias"`
	Group   string `yaml:"group"`
	Summary string `yaml:"summary"`
	Example string `yaml:"example"`
	// Formatted is Example after running only this rule.
	Formatted string `yaml:"formatted"`
}

// Render writes entries to w in the given format.
func Render(ctx context.Context, w io.Writer, f Format, entries []Entry) error {
	switch f {
	case FormatText:
		return Text(w, entries)
	case FormatMarkdown:
		return Markdown(w, entries)
	case FormatHTML:
		out, err := NewHTMLRenderer().Render(ctx, entries)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	case FormatYAML:
		out, err := yamlutil.Marshal(entries)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Text writes an aligned table, one rule per row.
func Text(w io.Writer, entries []Entry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tRULE\tGROUP\tSUMMARY")
	for _, e := range entries {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.Index, e.Name, e.Group, e.Summary)
	}
	return tw.Flush()
}

const markdownSource = `# caddy65 rules

Rules run in the order listed, on every line outside preformatted blocks.

| # | Rule | Alias | Group | Summary |
|---|------|-------|-------|---------|
{{- range .}}
| {{.Index}} | ` + "`{{.Name}}`" + ` | ` + "`{{.Alias}}`" + ` | {{.Group}} | {{cell .Summary}} |
{{- end}}
{{range .}}
## {{.Name}}

{{.Summary}}

{{fence}}ca65
{{.Example}}
{{fence}}

{{if eq .Example .Formatted}}Already compliant.{{else}}Becomes:

{{fence}}ca65
{{.Formatted}}
{{fence}}{{end}}
{{end}}`

var markdownTemplate = template.Must(template.New("rules").Funcs(template.FuncMap{
	"fence": func() string { return "```" },
	"cell":  func(s string) string { return strings.ReplaceAll(s, "|", `\|`) },
}).Parse(markdownSource))

// Markdown writes the catalog as a GFM document: an index table followed by
// one section per rule with its example before and after.
func Markdown(w io.Writer, entries []Entry) error {
	if err := markdownTemplate.Execute(w, entries); err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	return nil
}
