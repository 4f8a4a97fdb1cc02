package caddy65

import (
	"errors"

	"github.com/alnah/go-caddy65/internal/pipeline"
	"github.com/alnah/go-caddy65/internal/rules"
)

// Sentinel errors for library operations.
var (
	ErrReadSource  = errors.New("cannot read source")
	ErrWriteSource = errors.New("cannot write source")
	ErrRuleFailed  = errors.New("rule failed")

	// Settings validation errors.
	ErrUnknownRuleName = errors.New("unknown rule name")
	ErrInvalidIndent   = errors.New("invalid indent width")
	ErrInvalidMarker   = errors.New("invalid preformatted marker")
)

// Errors raised by the rule engine, re-exported for errors.Is.
var (
	ErrLineTooLong       = pipeline.ErrLineTooLong
	ErrUnterminatedQuote = rules.ErrUnterminatedQuote
	ErrCatalog           = rules.ErrCatalog
)

// MaxLineLength is the longest line, terminator excluded, that can be
// formatted.
const MaxLineLength = pipeline.MaxLineLength
