package pipeline

import (
	"bytes"

	"github.com/alnah/go-caddy65/internal/rules"
)

// emit writes one formatted line. A label marker takes the place of the
// first indentation column; blank lines never carry indentation.
func emit(w *bytes.Buffer, line []byte, flags rules.Flags, indent string) {
	if flags.Has(rules.SuppressLine) {
		return
	}
	switch {
	case flags.Has(rules.PrependLabelMarker):
		w.WriteByte(':')
		if len(line) > 0 && len(indent) > 1 {
			w.WriteString(indent[1:])
		}
	case flags.Has(rules.PrependIndent) && len(line) > 0:
		w.WriteString(indent)
	}
	w.Write(line)
	if flags.Has(rules.AppendTerminator) {
		w.WriteByte('\n')
	}
}
