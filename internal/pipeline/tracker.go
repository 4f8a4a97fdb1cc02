package pipeline

import (
	"bytes"
	"fmt"
)

// Default marker substrings. A line containing one of them is copied through
// unformatted.
const (
	DefaultLineMarker  = "#pre-formatted"
	DefaultStartMarker = "#pre-formatted-start"
	DefaultEndMarker   = "#pre-formatted-end"
)

// Markers are the substrings that keep lines out of the rule pipeline.
type Markers struct {
	Line  string
	Start string
	End   string
}

// DefaultMarkers returns the standard marker set.
func DefaultMarkers() Markers {
	return Markers{Line: DefaultLineMarker, Start: DefaultStartMarker, End: DefaultEndMarker}
}

// withDefaults fills unset markers.
func (m Markers) withDefaults() Markers {
	d := DefaultMarkers()
	if m.Line == "" {
		m.Line = d.Line
	}
	if m.Start == "" {
		m.Start = d.Start
	}
	if m.End == "" {
		m.End = d.End
	}
	return m
}

// Tracker holds the state carried from one line to the next: preformatted
// block depth and whether the previous emitted line was blank. A Tracker
// serves a single run.
type Tracker struct {
	markers   Markers
	depth     int
	prevBlank bool
}

// NewTracker returns a tracker at depth zero.
func NewTracker(m Markers) *Tracker {
	return &Tracker{markers: m.withDefaults()}
}

// Passthrough updates the block depth for line and reports whether the line
// bypasses the rules. Marker lines themselves pass through. A non-empty
// warning describes an end marker with no open block.
func (t *Tracker) Passthrough(line []byte) (pass bool, warning string) {
	switch {
	case bytes.Contains(line, []byte(t.markers.Start)):
		t.depth++
		pass = true
	case bytes.Contains(line, []byte(t.markers.End)):
		if t.depth == 0 {
			warning = fmt.Sprintf("%q without a matching %q", t.markers.End, t.markers.Start)
		} else {
			t.depth--
		}
		pass = true
	case t.depth > 0, bytes.Contains(line, []byte(t.markers.Line)):
		pass = true
	}
	if pass {
		t.prevBlank = false
	}
	return pass, warning
}

// Depth is the number of open preformatted blocks.
func (t *Tracker) Depth() int { return t.depth }

// PreviousBlank reports whether the last line that went through the rules
// came out blank.
func (t *Tracker) PreviousBlank() bool { return t.prevBlank }

// SetBlank records whether the current line is blank.
func (t *Tracker) SetBlank(blank bool) { t.prevBlank = blank }
