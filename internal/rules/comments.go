package rules

import "strings"

func onlyComment(_ *Executor, _ *Line, _ match, _ Flags) (step, error) {
	return stop(Compliant), nil
}

// commentSpacing normalizes the blanks around the first run of ';' outside a
// string. Group 1 is the run before the delimiter, 2 the delimiter, 3 the run
// after it and 4 the first character of the comment text.
func commentSpacing(x *Executor, l *Line, m match, _ Flags) (step, error) {
	if st, skip := skipString(l, m.start(2)); skip {
		return st, nil
	}

	var sb strings.Builder
	switch {
	case m.start(1) == 0:
	case x.opts.PreserveAlignment && m.size(1) > 0:
		sb.WriteString(l.text(m.start(1), m.end(1)))
	default:
		sb.WriteByte(' ')
	}
	sb.WriteString(l.text(m.start(2), m.end(2)))
	if m.size(4) > 0 {
		if x.opts.PreserveAlignment && m.size(3) > 0 {
			sb.WriteString(l.text(m.start(3), m.end(3)))
		} else {
			sb.WriteByte(' ')
		}
	}

	repl := sb.String()
	if l.text(m.start(1), m.start(4)) == repl {
		return stop(Compliant), nil
	}
	l.splice(m.start(1), m.start(4), repl)
	return stop(Applied), nil
}
