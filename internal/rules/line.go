package rules

import "bytes"

// Line is the mutable text of one source line, without its terminator.
type Line struct {
	b []byte
}

// NewLine returns a Line holding a copy of text.
func NewLine(text []byte) *Line {
	return &Line{b: append([]byte(nil), text...)}
}

// Bytes returns the current text. The slice is invalidated by the next rewrite.
func (l *Line) Bytes() []byte { return l.b }

func (l *Line) String() string { return string(l.b) }

// Len returns the length of the text in bytes.
func (l *Line) Len() int { return len(l.b) }

// Truncate drops everything from n on.
func (l *Line) Truncate(n int) {
	if n >= 0 && n < len(l.b) {
		l.b = l.b[:n]
	}
}

// at returns the byte at i, or 0 outside the text.
func (l *Line) at(i int) byte {
	if i < 0 || i >= len(l.b) {
		return 0
	}
	return l.b[i]
}

func (l *Line) text(start, end int) string {
	return string(l.b[start:end])
}

// splice replaces l[start:end] with repl.
func (l *Line) splice(start, end int, repl string) {
	out := make([]byte, 0, len(l.b)-(end-start)+len(repl))
	out = append(out, l.b[:start]...)
	out = append(out, repl...)
	out = append(out, l.b[end:]...)
	l.b = out
}

func (l *Line) insert(at int, s string) {
	l.splice(at, at, s)
}

// lower folds ASCII letters in l[start:end] and reports whether any changed.
func (l *Line) lower(start, end int) bool {
	changed := false
	for i := start; i < end; i++ {
		if c := l.b[i]; c >= 'A' && c <= 'Z' {
			l.b[i] = c + 'a' - 'A'
			changed = true
		}
	}
	return changed
}

// charLiteral reports whether a character literal such as 'x' opens at i.
func (l *Line) charLiteral(i int) bool {
	return l.at(i) == '\'' && i+2 < len(l.b) && l.b[i+2] == '\''
}

// commentStart returns the offset of the first ';' outside a string or
// character literal, or -1 when the line has no comment.
func (l *Line) commentStart() int {
	quoted := false
	for i := 0; i < len(l.b); i++ {
		switch c := l.b[i]; {
		case c == '"':
			quoted = !quoted
		case quoted:
		case l.charLiteral(i):
			i += 2
		case c == ';':
			return i
		}
	}
	return -1
}

// inComment reports whether pos is at or after the comment delimiter.
func (l *Line) inComment(pos int) bool {
	cs := l.commentStart()
	return cs >= 0 && pos >= cs
}

// quoteSpan finds the string or character literal holding pos: a position
// after its opening quote and up to its closing one. end is the offset of
// the closing quote, or -1 when a string never closes.
func (l *Line) quoteSpan(pos int) (end int, ok bool) {
	if pos > len(l.b) {
		pos = len(l.b)
	}
	for i := 0; i < pos; i++ {
		switch {
		case l.b[i] == '"':
			j := bytes.IndexByte(l.b[i+1:], '"')
			if j < 0 {
				return -1, true
			}
			j += i + 1
			if pos <= j {
				return j, true
			}
			i = j
		case l.charLiteral(i):
			if pos <= i+2 {
				return i + 2, true
			}
			i += 2
		}
	}
	return 0, false
}

// inQuote reports whether pos lies inside a string or character literal.
func (l *Line) inQuote(pos int) bool {
	_, ok := l.quoteSpan(pos)
	return ok
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
