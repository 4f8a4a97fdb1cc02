package rules

import "strings"

// skipString handles a match whose anchor character sits inside a string
// literal. It reports whether the match must be skipped and where scanning
// resumes: just past the closing quote, or done when the string never closes.
func skipString(l *Line, anchor int) (step, bool) {
	q, ok := l.quoteSpan(anchor)
	if !ok {
		return step{}, false
	}
	if q < 0 {
		return stop(NotApplied), true
	}
	return step{result: NotApplied, next: q + 1}, true
}

func parenSpacing(l *Line, m match, paren string) (step, error) {
	if l.inComment(m.start(0)) {
		return stop(NotApplied), nil
	}
	if st, skip := skipString(l, m.end(1)); skip {
		return st, nil
	}
	res := Compliant
	if m.size(1) > 0 || m.size(2) > 0 {
		l.splice(m.start(1), m.end(2), paren)
		res = Applied
	}
	return step{result: res, next: m.start(1) + 1}, nil
}

func openParenSpacing(_ *Executor, l *Line, m match, _ Flags) (step, error) {
	return parenSpacing(l, m, "(")
}

func closeParenSpacing(_ *Executor, l *Line, m match, _ Flags) (step, error) {
	return parenSpacing(l, m, ")")
}

// operatorSpacing puts one space on each side of a binary operator. Group 1 is
// the blank run before the operator, 2 the operator, 3 the run after it and 4
// the first character of the right operand, if any.
func operatorSpacing(_ *Executor, l *Line, m match, _ Flags) (step, error) {
	if l.inComment(m.start(0)) {
		return stop(NotApplied), nil
	}
	if q, ok := l.quoteSpan(m.start(1)); ok {
		if q < 0 {
			return stop(Error), ErrUnterminatedQuote
		}
		return step{result: NotApplied, next: q}, nil
	}

	opLen := m.size(2)
	// The unary operator is the left context of whatever follows it.
	if unary(l, m.start(2)) {
		return step{result: NotApplied, next: m.start(2)}, nil
	}

	res := Compliant
	if opLen > 2 && l.lower(m.start(2), m.end(2)) {
		res = Applied
	}

	before, after, operand := m.size(1), m.size(3), m.size(4)
	if before != 1 || (after != 1 && operand > 0) || (after > 0 && operand == 0) {
		var sb strings.Builder
		sb.WriteByte(' ')
		sb.WriteString(l.text(m.start(2), m.end(2)))
		if operand > 0 {
			sb.WriteByte(' ')
		}
		l.splice(m.start(1), m.end(3), sb.String())
		res = Applied
	}
	return step{result: res, next: m.start(1) + opLen + 2}, nil
}

// byteOperatorSpacing writes #< and #> with exactly one space before and none
// after. It does not look at comments or strings.
func byteOperatorSpacing(_ *Executor, l *Line, m match, _ Flags) (step, error) {
	res := Compliant
	if m.size(1) != 1 || m.size(3) > 0 {
		l.splice(m.start(1), m.end(3), " "+l.text(m.start(2), m.end(2)))
		res = Applied
	}
	return step{result: res, next: m.start(1) + 3}, nil
}

func commaSpacing(_ *Executor, l *Line, m match, _ Flags) (step, error) {
	if l.inComment(m.start(0)) {
		return stop(NotApplied), nil
	}
	if st, skip := skipString(l, m.end(1)); skip {
		return st, nil
	}
	res := Compliant
	if m.size(1) > 0 || m.size(2) != 1 {
		l.splice(m.start(1), m.end(2), ", ")
		res = Applied
	}
	return step{result: res, next: m.start(1) + 2}, nil
}

// unary reports whether the operator at op has no left operand: nothing but
// blanks, a comma, '(', '#' or '=' precede it, or the preceding word is a
// directive or a mnemonic.
func unary(l *Line, op int) bool {
	i := op - 1
	for i >= 0 && (l.b[i] == ' ' || l.b[i] == '\t') {
		i--
	}
	if i < 0 {
		return true
	}
	switch l.b[i] {
	case ',', '(', '#', '=':
		return true
	}

	j := i
	for j >= 0 && isWordByte(l.b[j]) {
		j--
	}
	word := l.b[j+1 : i+1]
	if len(word) == 0 {
		return false
	}
	if word[0] == '.' {
		return true
	}
	return mnemonicSet[strings.ToLower(string(word))]
}

func isWordByte(c byte) bool {
	return c == '_' || c == '.' || c == '@' ||
		c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

var mnemonicSet = func() map[string]bool {
	list := strings.TrimSuffix(strings.TrimPrefix(mnemonics, "("), `)\b`)
	set := make(map[string]bool)
	for _, mn := range strings.Split(list, "|") {
		set[mn] = true
	}
	return set
}()
