package rules

func trimLeading(_ *Executor, l *Line, m match, _ Flags) (step, error) {
	if m.size(1) == 0 {
		return stop(Compliant), nil
	}
	l.splice(0, m.end(1), "")
	return stop(Applied), nil
}

// trimTrailing only trims. Blank-line bookkeeping belongs to the driver.
func trimTrailing(_ *Executor, l *Line, m match, _ Flags) (step, error) {
	if m.size(1) == 0 {
		return stop(Compliant), nil
	}
	l.Truncate(m.start(1))
	return stop(Applied), nil
}

func tabExpansion(x *Executor, l *Line, m match, _ Flags) (step, error) {
	at := m.start(1)
	l.splice(at, m.end(1), x.opts.Indent)
	return step{result: Applied, next: at + len(x.opts.Indent)}, nil
}
