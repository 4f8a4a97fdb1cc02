package rules

import "strings"

// controlCommand lowercases a directive name and leaves exactly one space
// between it and its argument. Group 1 is the name, 2 the blank run after it
// and 3 the first character that follows.
func controlCommand(_ *Executor, l *Line, m match, _ Flags) (step, error) {
	dot := m.start(0)
	if l.inComment(dot) || l.inQuote(dot) {
		return stop(NotApplied), nil
	}

	res := Compliant
	if l.lower(m.start(1), m.end(1)) {
		res = Applied
	}

	hasArg := m.size(3) > 0 && l.at(m.start(3)) != ';'
	switch {
	case hasArg && m.size(2) > 1:
		l.splice(m.start(2), m.end(2), " ")
		res = Applied
	case hasArg && m.size(2) == 0 && dot == 0 && opensArgument(l.at(m.start(3))):
		l.insert(m.start(3), " ")
		res = Applied
	}
	return stop(res), nil
}

// opensArgument reports whether c, written right after a directive name at
// the start of a statement, begins its argument.
func opensArgument(c byte) bool {
	return !strings.ContainsRune("_;,:.)=", rune(c))
}

// macroDefinition normalizes ".macro name param" to single spaces. Later
// parameters are left to comma-spacing.
func macroDefinition(_ *Executor, l *Line, m match, _ Flags) (step, error) {
	if m.size(1) == 1 && (m.size(3) == 0 || m.size(4) == 1) {
		return stop(Compliant), nil
	}
	repl := " " + l.text(m.start(2), m.end(2))
	if m.size(3) > 0 {
		repl += " "
	}
	l.splice(m.start(1), m.start(5), repl)
	return stop(Applied), nil
}

// macroInstance collapses the blank run after a leading symbol to one space.
// Group 6 is that run and group 7 the first argument character.
func macroInstance(_ *Executor, l *Line, m match, _ Flags) (step, error) {
	if m.size(4) == 0 || m.size(6) == 1 {
		return stop(Compliant), nil
	}
	l.splice(m.end(1), m.start(7), " ")
	return stop(Applied), nil
}
