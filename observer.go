package caddy65

import (
	"github.com/alnah/go-caddy65/internal/pipeline"
	"github.com/alnah/go-caddy65/internal/rules"
)

// Warning is a non-fatal finding. Line is 1-based.
type Warning struct {
	Line    int
	Message string
}

// LineEvent describes one input line after formatting.
type LineEvent struct {
	Line int
	// Text is the formatted line before indentation and terminator.
	Text        string
	Passthrough bool
	Suppressed  bool
	Indented    bool
	LabelMarker bool
}

// RuleEvent describes one rule run on one line.
type RuleEvent struct {
	Line    int
	Rule    string
	Outcome string
	// Flags is the line's flag state after the rule, e.g. "indent|terminator".
	Flags string
}

// Observer receives a trace of formatting. Methods are called synchronously
// from Format, so an Observer shared by concurrent Format calls must
// synchronize itself.
type Observer interface {
	OnLine(LineEvent)
	OnRule(RuleEvent)
}

// observerAdapter forwards pipeline callbacks to a public Observer.
type observerAdapter struct {
	obs Observer
}

func (a observerAdapter) RuleApplied(line int, id rules.ID, res rules.Result, flags rules.Flags) {
	a.obs.OnRule(RuleEvent{
		Line:    line,
		Rule:    id.String(),
		Outcome: res.String(),
		Flags:   flags.String(),
	})
}

func (a observerAdapter) LineDone(line int, text []byte, flags rules.Flags, passthrough bool) {
	a.obs.OnLine(LineEvent{
		Line:        line,
		Text:        string(text),
		Passthrough: passthrough,
		Suppressed:  flags.Has(rules.SuppressLine),
		Indented:    !passthrough && flags.Has(rules.PrependIndent),
		LabelMarker: flags.Has(rules.PrependLabelMarker),
	})
}

var _ pipeline.Observer = observerAdapter{}
