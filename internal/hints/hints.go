// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strconv"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests the user config location when it is among the searched paths.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/caddy65.cfg"

	for _, p := range searchedPaths {
		if strings.Contains(p, "caddy65/caddy65.") {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForUnterminatedQuote returns a hint for lines with an odd number of '"'.
func ForUnterminatedQuote() string {
	return format("close the string literal, or wrap the line in a preformatted block")
}

// ForLineTooLong returns a hint for lines over the length limit.
func ForLineTooLong(limit int) string {
	return format("split lines longer than " + strconv.Itoa(limit) + " characters")
}

// ForUnknownRule returns hints for rule names that match no rule.
// Suggests names sharing a prefix with the unknown one, or lists them all.
func ForUnknownRule(name string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	var near []string
	if i := strings.IndexByte(name, '-'); i > 0 {
		prefix := strings.ToLower(name[:i+1])
		for _, a := range available {
			if strings.HasPrefix(a, prefix) {
				near = append(near, a)
			}
		}
	}
	if len(near) > 0 {
		return format("did you mean: " + strings.Join(near, ", "))
	}
	return formatHints([]string{"run 'caddy65 rules' to list rule names"})
}

// ForUnbalancedMarker returns a hint for preformatted block markers that do
// not pair up.
func ForUnbalancedMarker(start, end string) string {
	return format("every " + quote(start) + " needs a matching " + quote(end))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}

func quote(s string) string {
	return "'" + s + "'"
}
