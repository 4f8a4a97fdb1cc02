package rules

// namedLabel writes "name:" with no space before the colon and one space
// before any statement that follows on the same line.
func namedLabel(x *Executor, l *Line, m match, _ Flags) (step, error) {
	res := Compliant
	if x.opts.LowercaseLabels && l.lower(m.start(1), m.end(1)) {
		res = Applied
	}

	rest := m.size(4) > 0
	if m.size(2) > 0 || (m.size(3) != 1 && rest) {
		repl := ":"
		if rest {
			repl = ": "
		}
		l.splice(m.end(1), m.start(4), repl)
		res = Applied
	}
	return stop(res), nil
}

// unnamedLabel strips the leading ':' and its blank run; the emitter writes
// the marker back in column zero.
func unnamedLabel(_ *Executor, l *Line, m match, _ Flags) (step, error) {
	l.splice(0, m.end(1), "")
	return stop(Applied), nil
}
