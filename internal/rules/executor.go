package rules

import (
	"errors"
	"fmt"
	"regexp"
)

// Executor errors.
var (
	ErrUnknownRule       = errors.New("unknown rule")
	ErrUnterminatedQuote = errors.New("unterminated string")
	ErrStalled           = errors.New("rule made no progress")
)

// Options adjusts the canonical forms some rules produce.
type Options struct {
	// Indent is the unit tab-expansion writes for each tab.
	Indent string
	// PreserveAlignment keeps existing blank runs around the comment
	// delimiter instead of collapsing them to one space.
	PreserveAlignment bool
	// LowercaseLabels folds named label definitions to lower case.
	LowercaseLabels bool
}

// DefaultIndent is the indentation unit used when none is configured.
const DefaultIndent = "  "

// DefaultOptions returns the canonical settings.
func DefaultOptions() Options {
	return Options{Indent: DefaultIndent, LowercaseLabels: true}
}

// Executor applies catalog rules to lines. It holds no per-line state and is
// safe for concurrent use.
type Executor struct {
	catalog *Catalog
	opts    Options
}

// NewExecutor returns an executor over a compiled catalog.
func NewExecutor(c *Catalog, opts Options) *Executor {
	if opts.Indent == "" {
		opts.Indent = DefaultIndent
	}
	return &Executor{catalog: c, opts: opts}
}

// Options returns the executor's settings.
func (x *Executor) Options() Options { return x.opts }

// done ends the scan of a line after the current match.
const done = -1

// step is what a rule body reports for one match: its outcome and the offset
// the next scan starts from.
type step struct {
	result Result
	next   int
}

func stop(r Result) step { return step{result: r, next: done} }

type body func(x *Executor, l *Line, m match, flags Flags) (step, error)

var bodies = [Count]body{
	OnlyComment:             onlyComment,
	TrimLeading:             trimLeading,
	TrimTrailing:            trimTrailing,
	TabExpansion:            tabExpansion,
	BitwiseInstruction:      bitwiseInstruction,
	AddressFormatting:       addressFormatting,
	HexLiteralFormatting:    hexLiteralFormatting,
	BinaryLiteralFormatting: binaryLiteralFormatting,
	OpenParenSpacing:        openParenSpacing,
	CloseParenSpacing:       closeParenSpacing,
	OperatorSpacing:         operatorSpacing,
	ByteOperatorSpacing:     byteOperatorSpacing,
	CommaSpacing:            commaSpacing,
	ControlCommand:          controlCommand,
	MacroDefinition:         macroDefinition,
	MacroInstance:           macroInstance,
	NamedLabel:              namedLabel,
	UnnamedLabel:            unnamedLabel,
	ImpliedInstruction:      impliedInstruction,
	ImmediateInstruction:    immediateInstruction,
	AddressInstruction:      addressInstruction,
	IndexedInstruction:      indexedInstruction,
	IndirectInstruction:     indirectInstruction,
	IndirectXInstruction:    indirectXInstruction,
	IndirectYInstruction:    indirectYInstruction,
	RelativeInstruction:     relativeInstruction,
	CommentSpacing:          commentSpacing,
}

// Apply runs rule id over the line, rewriting it in place. Rules that act on
// every occurrence rescan from a cursor the body chooses; the cursor only
// moves forward. The result is the most severe outcome of all matches.
func (x *Executor) Apply(id ID, l *Line, flags Flags) (Result, error) {
	if !id.Valid() {
		return Error, fmt.Errorf("%w: %d", ErrUnknownRule, id)
	}
	return x.scan(id, x.catalog.patterns[id], bodies[id], l, flags)
}

// scan drives fn over every match of re in l.
func (x *Executor) scan(id ID, re *regexp.Regexp, fn body, l *Line, flags Flags) (Result, error) {
	result := NotApplied
	cursor := 0
	for cursor <= l.Len() {
		loc := re.FindSubmatchIndex(l.b[cursor:])
		if loc == nil {
			break
		}
		st, err := fn(x, l, newMatch(loc, cursor), flags)
		result = Worse(result, st.result)
		if err != nil {
			return Error, err
		}
		if st.next == done {
			break
		}
		if st.next <= cursor {
			return Error, fmt.Errorf("%w: %s at offset %d", ErrStalled, id, cursor)
		}
		cursor = st.next
	}
	return result, nil
}

// match holds submatch offsets relative to the start of the line.
type match struct {
	loc []int
}

func newMatch(loc []int, base int) match {
	abs := make([]int, len(loc))
	for i, v := range loc {
		if v < 0 {
			abs[i] = v
			continue
		}
		abs[i] = v + base
	}
	return match{loc: abs}
}

// has reports whether group n took part in the match.
func (m match) has(n int) bool { return m.loc[2*n] >= 0 }

func (m match) start(n int) int { return m.loc[2*n] }

func (m match) end(n int) int { return m.loc[2*n+1] }

// size is the length of group n, zero when it did not take part.
func (m match) size(n int) int {
	if !m.has(n) {
		return 0
	}
	return m.loc[2*n+1] - m.loc[2*n]
}
