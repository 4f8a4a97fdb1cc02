package rules

import "strings"

// bitwiseInstruction only recognizes and/eor/ora. The driver raises the
// bitwise context from its result so hex masks keep their width.
func bitwiseInstruction(_ *Executor, _ *Line, _ match, _ Flags) (step, error) {
	return stop(Compliant), nil
}

// addressFormatting lowercases $hex addresses and pads odd-length ones with a
// leading zero so they read as whole bytes.
func addressFormatting(_ *Executor, l *Line, m match, _ Flags) (step, error) {
	start, end := m.start(1), m.end(1)
	res := Compliant
	if l.lower(start, end) {
		res = Applied
	}
	if (end-start)%2 == 1 {
		l.insert(start, "0")
		res = Applied
	}
	return step{result: res, next: start}, nil
}

// hexLiteralFormatting lowercases #$hex literals. Masks keep a whole number of
// bytes; other values lose redundant leading zeros.
func hexLiteralFormatting(_ *Executor, l *Line, m match, flags Flags) (step, error) {
	start, end := m.start(1), m.end(1)
	res := Compliant
	if l.lower(start, end) {
		res = Applied
	}

	if flags.Has(BitwiseContext) {
		if (end-start)%2 == 1 {
			l.insert(start, "0")
			res = Applied
		}
		return step{result: res, next: start}, nil
	}

	off := start
	for l.at(off) == '0' && isHexDigit(l.at(off+1)) {
		off++
	}
	if off > start {
		l.splice(start, off, "")
		res = Applied
	}
	return step{result: res, next: start}, nil
}

func binaryLiteralFormatting(_ *Executor, l *Line, m match, _ Flags) (step, error) {
	n := m.size(1)
	if n == 8 {
		return step{result: Compliant, next: m.start(1)}, nil
	}
	l.insert(m.start(1), strings.Repeat("0", 8-n))
	return step{result: Applied, next: m.start(1)}, nil
}
