package rules

import "strings"

// Flags carries per-line state between rules and into the emitter.
type Flags uint8

const (
	// AppendTerminator restores the newline stripped before rules ran.
	AppendTerminator Flags = 1 << iota
	// PrependIndent emits one indentation unit before a non-empty line.
	PrependIndent
	// PrependLabelMarker emits ':' and the indentation unit minus one column.
	PrependLabelMarker
	// BitwiseContext is set on and/eor/ora lines; hex literals keep full width.
	BitwiseContext
	// StopLine ends rule processing; the line is still emitted.
	StopLine
	// SuppressLine ends rule processing; the line is dropped.
	SuppressLine
	// LeadingLabel marks a line that starts with a named label, which keeps
	// instruction rules from indenting it.
	LeadingLabel
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{AppendTerminator, "terminator"},
	{PrependIndent, "indent"},
	{PrependLabelMarker, "label-marker"},
	{BitwiseContext, "bitwise"},
	{StopLine, "stop"},
	{SuppressLine, "suppress"},
	{LeadingLabel, "leading-label"},
}

// Has reports whether every bit of want is set.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}

func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var parts []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}
