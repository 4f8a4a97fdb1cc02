package pipeline

import "github.com/alnah/go-caddy65/internal/rules"

// advance applies the flag changes that follow rule id on the current line.
// Most transitions fire only when the rule matched; trim-trailing always
// classifies the line as blank or not.
func advance(id rules.ID, res rules.Result, line *rules.Line, flags rules.Flags, t *Tracker) rules.Flags {
	text := line.Bytes()

	if id == rules.TrimTrailing {
		if len(text) > 0 {
			t.SetBlank(false)
			return flags
		}
		if t.PreviousBlank() {
			return flags | rules.SuppressLine
		}
		t.SetBlank(true)
		return flags&^rules.PrependIndent | rules.StopLine
	}

	if !res.Matched() {
		return flags
	}

	switch id {
	case rules.OnlyComment:
		if len(text) > 0 && text[0] == ';' {
			return flags &^ rules.PrependIndent
		}
		return flags | rules.PrependIndent

	case rules.BitwiseInstruction:
		return flags | rules.BitwiseContext

	case rules.ControlCommand:
		if len(text) > 0 && text[0] == ';' {
			return flags
		}
		if rules.IsDataDirective(text) {
			return flags | rules.PrependIndent
		}
		return flags &^ rules.PrependIndent

	case rules.NamedLabel:
		return flags&^rules.PrependIndent | rules.LeadingLabel

	case rules.UnnamedLabel:
		return flags | rules.PrependLabelMarker

	case rules.MacroInstance,
		rules.ImpliedInstruction,
		rules.ImmediateInstruction,
		rules.AddressInstruction,
		rules.IndexedInstruction,
		rules.IndirectInstruction,
		rules.IndirectXInstruction,
		rules.IndirectYInstruction,
		rules.RelativeInstruction:
		if flags.Has(rules.LeadingLabel) {
			return flags
		}
		return flags | rules.PrependIndent
	}
	return flags
}
