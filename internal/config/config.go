package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-caddy65/internal/fileutil"
	"github.com/alnah/go-caddy65/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidValue   = errors.New("invalid config value")
	ErrFieldTooLong   = errors.New("field exceeds maximum length")
)

// DefaultName is the base name searched for when no config path is given.
const DefaultName = "caddy65"

// Limits on settings values.
const (
	MinIndent       = 2
	MaxIndent       = 8
	DefaultIndent   = 2
	MaxMarkerLength = 64
	MaxRuleNameLen  = 64
)

// Config holds the formatter settings.
type Config struct {
	Indent   int             `yaml:"indent"`
	Rules    map[string]bool `yaml:"rules"`
	Markers  MarkersConfig   `yaml:"markers"`
	Comments CommentsConfig  `yaml:"comments"`
	Labels   LabelsConfig    `yaml:"labels"`

	// Source is the file the settings came from; empty for defaults.
	Source string `yaml:"-"`
}

// MarkersConfig overrides the preformatted markers. Empty = default.
type MarkersConfig struct {
	Preformatted string `yaml:"preformatted"`
	Start        string `yaml:"start"`
	End          string `yaml:"end"`
}

// CommentsConfig defines comment spacing options.
type CommentsConfig struct {
	PreserveAlignment bool `yaml:"preserveAlignment"`
}

// LabelsConfig defines label options.
type LabelsConfig struct {
	Lowercase bool `yaml:"lowercase"`
}

// Validate checks value ranges and field lengths.
// Called automatically by Load, but available for callers who build a
// Config by hand.
func (c *Config) Validate() error {
	if c.Indent < MinIndent || c.Indent > MaxIndent {
		return fmt.Errorf("%w: indent: must be between %d and %d, got %d", ErrInvalidValue, MinIndent, MaxIndent, c.Indent)
	}

	markers := []struct{ name, value string }{
		{"markers.preformatted", c.Markers.Preformatted},
		{"markers.start", c.Markers.Start},
		{"markers.end", c.Markers.End},
	}
	for _, m := range markers {
		if err := validateFieldLength(m.name, m.value, MaxMarkerLength); err != nil {
			return err
		}
		if strings.ContainsAny(m.value, "\r\n") {
			return fmt.Errorf("%w: %s: must fit on one line", ErrInvalidValue, m.name)
		}
	}
	if c.Markers.Start != "" && c.Markers.Start == c.Markers.End {
		return fmt.Errorf("%w: markers.start and markers.end must differ", ErrInvalidValue)
	}

	for name := range c.Rules {
		if err := validateFieldLength("rules."+name, name, MaxRuleNameLen); err != nil {
			return err
		}
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the canonical settings: every rule on, two-space
// indent, lowercase labels.
func DefaultConfig() *Config {
	return &Config{
		Indent: DefaultIndent,
		Rules:  map[string]bool{},
		Labels: LabelsConfig{Lowercase: true},
	}
}

// Load reads settings from path. Files ending in .yaml or .yml are YAML
// settings; anything else is a two-column rule file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	cfg.Source = path

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if len(bytes.TrimSpace(data)) == 0 {
			break
		}
		if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
		}
		if cfg.Rules == nil {
			cfg.Rules = map[string]bool{}
		}
	default:
		toggles, err := ParseRuleFile(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		for _, t := range toggles {
			cfg.Rules[t.Name] = t.Enabled
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Resolve picks the settings file. An explicit path must exist. Otherwise
// the working directory and then the user config directory are searched;
// finding nothing returns "" and no error.
func Resolve(explicit string) (string, error) {
	if explicit != "" {
		if !fileutil.FileExists(explicit) {
			return "", fmt.Errorf("%w: %s", ErrConfigNotFound, explicit)
		}
		return explicit, nil
	}
	for _, p := range SearchPaths() {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", nil
}

// SearchPaths lists the candidate settings files in lookup order.
// Tries extensions in order: .cfg, .yaml, .yml
// Tries locations in order: current directory, <user config dir>/caddy65/
func SearchPaths() []string {
	extensions := []string{".cfg", ".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, DefaultName+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, DefaultName, DefaultName+ext))
		}
	}
	return paths
}
