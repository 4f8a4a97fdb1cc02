package config

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Toggle is one line of a rule file.
type Toggle struct {
	Line    int
	Name    string
	Enabled bool
}

// ParseRuleFile reads the two-column rule file format:
//
//	# comment
//	only-comment: enabled
//	comma-spacing: disabled
//
// The rule name is everything before the first ':'. A state containing the
// word "enabled" turns the rule on; any other state turns it off. Blank
// lines and lines starting with '#' are skipped. Rule names are not checked
// here.
func ParseRuleFile(r io.Reader) ([]Toggle, error) {
	var toggles []Toggle
	sc := bufio.NewScanner(r)
	num := 0
	for sc.Scan() {
		num++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, state, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: expected \"<rule>: <state>\", got %q", ErrConfigParse, num, line)
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: line %d: missing rule name", ErrConfigParse, num)
		}

		toggles = append(toggles, Toggle{
			Line:    num,
			Name:    name,
			Enabled: strings.Contains(state, "enabled"),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return toggles, nil
}
