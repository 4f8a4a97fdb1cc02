package rules

import "strings"

// Instruction patterns share a layout: group 1 is the mnemonic and group 2
// the blank run after it. An optional label before the mnemonic is not
// captured.

func mnemonic(l *Line, m match) string {
	return strings.ToLower(l.text(m.start(1), m.end(1)))
}

// lowerOnly is the outcome when the spacing is canonical: the mnemonic, and
// any index register in group reg, are folded to lower case.
func lowerOnly(l *Line, m match, reg int) step {
	changed := l.lower(m.start(1), m.end(1))
	if reg > 0 && l.lower(m.start(reg), m.end(reg)) {
		changed = true
	}
	if changed {
		return stop(Applied)
	}
	return stop(Compliant)
}

func impliedInstruction(_ *Executor, l *Line, m match, _ Flags) (step, error) {
	return lowerOnly(l, m, 0), nil
}

// spaceOperand gives immediate and absolute operands one space after the
// mnemonic. Group 3 is the first operand character.
func spaceOperand(l *Line, m match) step {
	if m.size(2) == 1 {
		return lowerOnly(l, m, 0)
	}
	l.splice(m.start(1), m.start(3), mnemonic(l, m)+" ")
	return stop(Applied)
}

func immediateInstruction(_ *Executor, l *Line, m match, _ Flags) (step, error) {
	return spaceOperand(l, m), nil
}

func addressInstruction(_ *Executor, l *Line, m match, _ Flags) (step, error) {
	return spaceOperand(l, m), nil
}

// indexedInstruction: 3 operand, 4 blanks before the comma, 5 after it,
// 6 register.
func indexedInstruction(_ *Executor, l *Line, m match, _ Flags) (step, error) {
	if m.size(2) == 1 && m.size(4) == 0 && m.size(5) == 1 {
		return lowerOnly(l, m, 6), nil
	}
	repl := mnemonic(l, m) + " " + l.text(m.start(3), m.end(3)) + ", " +
		strings.ToLower(l.text(m.start(6), m.end(6)))
	l.splice(m.start(1), m.end(6), repl)
	return stop(Applied), nil
}

// indirectInstruction: 3 blanks after '(', 4 operand, 5 blanks before ')'.
func indirectInstruction(_ *Executor, l *Line, m match, _ Flags) (step, error) {
	if m.size(2) == 1 && m.size(3) == 0 && m.size(5) == 0 {
		return lowerOnly(l, m, 0), nil
	}
	repl := mnemonic(l, m) + " (" + l.text(m.start(4), m.end(4)) + ")"
	l.splice(m.start(1), m.end(5)+1, repl)
	return stop(Applied), nil
}

// indirectXInstruction: 3 blanks after '(', 4 operand, 5 and 6 blanks around
// the comma, 7 register, 8 blanks before ')'.
func indirectXInstruction(_ *Executor, l *Line, m match, _ Flags) (step, error) {
	if m.size(2) == 1 && m.size(3) == 0 && m.size(5) == 0 && m.size(6) == 1 && m.size(8) == 0 {
		return lowerOnly(l, m, 7), nil
	}
	repl := mnemonic(l, m) + " (" + l.text(m.start(4), m.end(4)) + ", x)"
	l.splice(m.start(1), m.end(8)+1, repl)
	return stop(Applied), nil
}

// indirectYInstruction: 3 blanks after '(', 4 operand, 5 blanks before ')',
// 6 and 7 blanks around the comma, 8 register.
func indirectYInstruction(_ *Executor, l *Line, m match, _ Flags) (step, error) {
	if m.size(2) == 1 && m.size(3) == 0 && m.size(5) == 0 && m.size(6) == 0 && m.size(7) == 1 {
		return lowerOnly(l, m, 8), nil
	}
	repl := mnemonic(l, m) + " (" + l.text(m.start(4), m.end(4)) + "), y"
	l.splice(m.start(1), m.end(8), repl)
	return stop(Applied), nil
}

// relativeInstruction: group 3 is the run of '+' or '-' after the ':'.
func relativeInstruction(_ *Executor, l *Line, m match, _ Flags) (step, error) {
	if m.size(2) == 1 {
		return lowerOnly(l, m, 0), nil
	}
	l.splice(m.start(1), m.start(3), mnemonic(l, m)+" :")
	return stop(Applied), nil
}
