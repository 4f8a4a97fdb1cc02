package config

// Notes:
// - Resolve's working-directory search uses t.Chdir, so those tests do not
//   call t.Parallel().
// - Tests that steer os.UserConfigDir through XDG_CONFIG_HOME run on Linux
//   only; other platforms ignore the variable.
// - The os.ReadFile error branch other than "not exist" (permission denied)
//   is not tested: it depends on the user running the tests.

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestDefaultConfig - Canonical settings
// ---------------------------------------------------------------------------

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Indent != DefaultIndent {
		t.Errorf("Indent = %d, want %d", cfg.Indent, DefaultIndent)
	}
	if !cfg.Labels.Lowercase {
		t.Error("Labels.Lowercase = false, want true")
	}
	if cfg.Comments.PreserveAlignment {
		t.Error("Comments.PreserveAlignment = true, want false")
	}
	if cfg.Rules == nil || len(cfg.Rules) != 0 {
		t.Errorf("Rules = %v, want empty map", cfg.Rules)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestValidate - Value ranges and field lengths
// ---------------------------------------------------------------------------

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr error
	}{
		{"indent at minimum", func(c *Config) { c.Indent = MinIndent }, nil},
		{"indent at maximum", func(c *Config) { c.Indent = MaxIndent }, nil},
		{"indent too small", func(c *Config) { c.Indent = 1 }, ErrInvalidValue},
		{"indent too large", func(c *Config) { c.Indent = 9 }, ErrInvalidValue},
		{"custom markers", func(c *Config) { c.Markers = MarkersConfig{Preformatted: "; keep", Start: "; {", End: "; }"} }, nil},
		{"marker too long", func(c *Config) { c.Markers.Start = strings.Repeat("x", MaxMarkerLength+1) }, ErrFieldTooLong},
		{"marker with newline", func(c *Config) { c.Markers.End = "a\nb" }, ErrInvalidValue},
		{"start equals end", func(c *Config) { c.Markers.Start, c.Markers.End = ";x", ";x" }, ErrInvalidValue},
		{"rule name too long", func(c *Config) { c.Rules[strings.Repeat("r", MaxRuleNameLen+1)] = true }, ErrFieldTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestLoad - YAML settings and rule files
// ---------------------------------------------------------------------------

func TestLoad_YAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "caddy65.yaml", `indent: 4
rules:
  comma-spacing: false
markers:
  start: "; begin"
  end: "; end"
comments:
  preserveAlignment: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Indent != 4 {
		t.Errorf("Indent = %d, want 4", cfg.Indent)
	}
	if v, ok := cfg.Rules["comma-spacing"]; !ok || v {
		t.Errorf("Rules = %v, want comma-spacing disabled", cfg.Rules)
	}
	if cfg.Markers.Start != "; begin" || cfg.Markers.End != "; end" {
		t.Errorf("Markers = %+v", cfg.Markers)
	}
	if !cfg.Comments.PreserveAlignment {
		t.Error("Comments.PreserveAlignment = false, want true")
	}
	if !cfg.Labels.Lowercase {
		t.Error("Labels.Lowercase lost its default")
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, want %q", cfg.Source, path)
	}
}

func TestLoad_EmptyYAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "caddy65.yml", "\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Indent != DefaultIndent {
		t.Errorf("Indent = %d, want default", cfg.Indent)
	}
}

func TestLoad_RuleFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, t.TempDir(), "caddy65.cfg", `# toggles
only-comment: enabled
comma-spacing: disabled

comma-spacing: enabled
hex-literal-formatting: off
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := map[string]bool{"only-comment": true, "comma-spacing": true, "hex-literal-formatting": false}
	if len(cfg.Rules) != len(want) {
		t.Fatalf("Rules = %v, want %v", cfg.Rules, want)
	}
	for k, v := range want {
		if cfg.Rules[k] != v {
			t.Errorf("Rules[%q] = %v, want %v", k, cfg.Rules[k], v)
		}
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"missing file", filepath.Join(dir, "missing.cfg"), ErrConfigNotFound},
		{"unknown yaml key", writeFile(t, dir, "unknown.yaml", "colour: red\n"), ErrConfigParse},
		{"bad yaml syntax", writeFile(t, dir, "syntax.yaml", "rules: [unclosed\n"), ErrConfigParse},
		{"rule line without colon", writeFile(t, dir, "bad.cfg", "only-comment enabled\n"), ErrConfigParse},
		{"indent out of range", writeFile(t, dir, "indent.yaml", "indent: 12\n"), ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParseRuleFile - Two-column format
// ---------------------------------------------------------------------------

func TestParseRuleFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []Toggle
		wantErr string
	}{
		{
			name:  "empty",
			input: "",
		},
		{
			name:  "comments and blanks",
			input: "# header\n\n   \n  # indented comment\n",
		},
		{
			name:  "states",
			input: "trim-leading: enabled\ntrim-trailing:disabled\n  comma-spacing :  enabled for now\n",
			want: []Toggle{
				{Line: 1, Name: "trim-leading", Enabled: true},
				{Line: 2, Name: "trim-trailing", Enabled: false},
				{Line: 3, Name: "comma-spacing", Enabled: true},
			},
		},
		{
			name:  "empty state is off",
			input: "hex-literal-formatting:\n",
			want:  []Toggle{{Line: 1, Name: "hex-literal-formatting", Enabled: false}},
		},
		{
			name:  "state is case sensitive",
			input: "hex-literal-formatting: Enabled\n",
			want:  []Toggle{{Line: 1, Name: "hex-literal-formatting", Enabled: false}},
		},
		{
			name:    "missing colon",
			input:   "trim-leading: enabled\nbogus\n",
			wantErr: "line 2",
		},
		{
			name:    "missing name",
			input:   ": enabled\n",
			wantErr: "line 1: missing rule name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseRuleFile(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				if !errors.Is(err, ErrConfigParse) {
					t.Fatalf("ParseRuleFile() error = %v, want ErrConfigParse", err)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("error %q should contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRuleFile() unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d toggles, want %d: %+v", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("toggle %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestResolve - Settings file lookup
// ---------------------------------------------------------------------------

func TestResolve_Explicit(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeFile(t, dir, "mine.cfg", "")

	got, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != path {
		t.Errorf("Resolve() = %q, want %q", got, path)
	}

	_, err = Resolve(filepath.Join(dir, "other.cfg"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Resolve(missing) error = %v, want ErrConfigNotFound", err)
	}
}

func TestResolve_WorkingDirectory(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is honored on Linux only")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Chdir(dir)

	got, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "" {
		t.Errorf("Resolve() = %q, want no file", got)
	}

	writeFile(t, dir, "caddy65.yml", "indent: 2\n")
	writeFile(t, dir, "caddy65.cfg", "")
	got, err = Resolve("")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "caddy65.cfg" {
		t.Errorf("Resolve() = %q, want caddy65.cfg first", got)
	}
}

func TestResolve_UserConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is honored on Linux only")
	}
	dir := t.TempDir()
	xdg := filepath.Join(dir, "xdg")
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Chdir(t.TempDir())

	if err := os.MkdirAll(filepath.Join(xdg, DefaultName), 0o755); err != nil {
		t.Fatal(err)
	}
	want := writeFile(t, filepath.Join(xdg, DefaultName), "caddy65.yaml", "indent: 2\n")

	got, err := Resolve("")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
}

func TestSearchPaths(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME is honored on Linux only")
	}
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	paths := SearchPaths()
	if len(paths) != 6 {
		t.Fatalf("SearchPaths() returned %d paths, want 6", len(paths))
	}
	if paths[0] != "caddy65.cfg" {
		t.Errorf("first path = %q, want caddy65.cfg", paths[0])
	}
	if want := filepath.Join("/xdg", "caddy65", "caddy65.cfg"); paths[3] != want {
		t.Errorf("paths[3] = %q, want %q", paths[3], want)
	}
}
