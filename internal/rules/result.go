package rules

// Result is the outcome of applying one rule to one line. Values are ordered
// by severity so the outcome of several matches is their maximum.
type Result uint8

const (
	// NotApplied means the pattern did not match, or every match was declined.
	NotApplied Result = iota
	// Compliant means the pattern matched and the text was already canonical.
	Compliant
	// Applied means the line was rewritten.
	Applied
	// Error means the line cannot be formatted.
	Error
)

// Worse returns the more severe of two results.
func Worse(a, b Result) Result {
	if a > b {
		return a
	}
	return b
}

// Matched reports whether the rule's pattern matched and was accepted.
// Transitions keyed on a rule firing use this.
func (r Result) Matched() bool {
	return r == Compliant || r == Applied
}

func (r Result) String() string {
	switch r {
	case NotApplied:
		return "not-applied"
	case Compliant:
		return "compliant"
	case Applied:
		return "applied"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}
