package rules

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrCatalog is returned when a catalog pattern fails to compile.
var ErrCatalog = errors.New("invalid rule pattern")

// Pattern fragments. Every pattern is compiled case-insensitively with
// leftmost-longest matching.
const (
	spacing     = `([[:space:]]*)`
	argStart    = `([$%"_[:alnum:]])`
	symbol      = `([_[:alpha:]]([_[:alnum:]]|(::))*)`
	labelName   = `([@_[:alpha:]][_[:alnum:]]*)`
	comment     = spacing + `(;+)` + spacing + `(.?)`
	indexReg    = `([XYxy])\b`
	operand     = `([^,)[:space:]]+)`
	wideOperand = `([^,;[:space:]](?:[^,;]*[^,;[:space:]])?)`

	// An instruction may follow a label on the same line. The prefix does not
	// capture so the mnemonic is always group 1.
	statement = `^(?:[@_[:alpha:]][_[:alnum:]]*[[:space:]]*:[[:space:]]*)?`

	mnemonics = `(adc|and|asl|bcc|bcs|beq|bit|bmi|bne|bpl|brk|bvc|bvs|clc|` +
		`cld|cli|clv|cmp|cpx|cpy|dec|dex|dey|eor|inc|inx|iny|jmp|jsr|lda|` +
		`ldx|ldy|lsr|nop|ora|pha|php|pla|plp|rol|ror|rti|rts|sbc|sec|sed|` +
		`sei|sta|stx|sty|tax|tay|tsx|txa|txs|tya)\b`

	// Two-character operators come first so they win ties against a single
	// character followed by an operand.
	operators = `(<<|>>|<>|<=|>=|&&|[|][|]|` +
		`[.](?:mod|bitand|bitor|bitxor|shl|shr|and|or|xor)\b|[-+*/&|^=<>\\])`
)

// Rule describes one catalog entry.
type Rule struct {
	ID      ID
	Name    string
	Alias   string
	Group   Group
	Summary string
	// Example is a sample line the rule acts on.
	Example string
	Pattern string
}

var entries = [Count]struct {
	group   Group
	summary string
	example string
	pattern string
}{
	OnlyComment: {GroupComments,
		"Recognize comment-only lines; column-zero comments are not indented.",
		"    ; indented note",
		`^` + comment},
	TrimLeading: {GroupWhitespace,
		"Remove leading whitespace.",
		"      lda #1",
		`^` + spacing},
	TrimTrailing: {GroupWhitespace,
		"Remove trailing whitespace and collapse runs of blank lines.",
		"lda #1      ",
		spacing + `$`},
	TabExpansion: {GroupWhitespace,
		"Replace each tab with one indentation unit.",
		"lda\t#1",
		`(\t)`},
	BitwiseInstruction: {GroupInstruction,
		"Mark and/eor/ora lines so hex literals keep their full width.",
		"and #$F",
		statement + `(and|eor|ora)\b`},
	AddressFormatting: {GroupLiterals,
		"Lowercase hex addresses and pad them to an even number of digits.",
		"lda $ABC",
		`[^#][$]([[:xdigit:]]+)`},
	HexLiteralFormatting: {GroupLiterals,
		"Lowercase hex literals; strip leading zeros, or pad in bitwise context.",
		"lda #$0F",
		`[#][$]([[:xdigit:]]+)`},
	BinaryLiteralFormatting: {GroupLiterals,
		"Pad binary literals to eight digits.",
		"lda #%101",
		`[#][%]([01]{1,8})`},
	OpenParenSpacing: {GroupPunctuation,
		"Remove whitespace around an opening parenthesis.",
		"lda #<( foo + 1)",
		spacing + `[(]` + spacing},
	CloseParenSpacing: {GroupPunctuation,
		"Remove whitespace around a closing parenthesis.",
		"lda #<(foo + 1 )",
		spacing + `[)]` + spacing},
	OperatorSpacing: {GroupPunctuation,
		"Surround binary operators with single spaces.",
		"foo=bar+1",
		`[^(#:+-]` + spacing + operators + spacing + `([^[:space:]]?)`},
	ByteOperatorSpacing: {GroupPunctuation,
		"Write #< and #> with one space before and none after.",
		"lda#< foo",
		spacing + `([#][<>])` + spacing},
	CommaSpacing: {GroupPunctuation,
		"Write commas with no space before and one after.",
		".byte 1 ,2,3",
		spacing + `,` + spacing},
	ControlCommand: {GroupDirectives,
		"Lowercase directives, normalize their argument spacing, and indent data directives.",
		".BYTE   $10",
		`[.]([[:alpha:]][[:alnum:]]*)` + spacing + `([^[:space:]])?`},
	MacroDefinition: {GroupDirectives,
		"Normalize spacing in a .macro header.",
		".macro   add16  a, b",
		`^[.]macro` + spacing + `([^[:space:]]+)(` + spacing + `([^,[:space:]]*))`},
	MacroInstance: {GroupDirectives,
		"Normalize spacing after a macro or mnemonic at line start.",
		"add16   foo, bar",
		`^` + symbol + `((` + `([[:space:]]+)` + argStart + `)|$)`},
	NamedLabel: {GroupLabels,
		"Write labels as name: at column zero.",
		"Loop :nop",
		`^` + labelName + spacing + `:` + spacing + `([^+:-]|$)`},
	UnnamedLabel: {GroupLabels,
		"Emit unnamed labels as ':' in column zero.",
		":  inx",
		`^:` + spacing + `([^:]|$)`},
	ImpliedInstruction: {GroupInstruction,
		"Lowercase implied-mode mnemonics.",
		"NOP",
		statement + mnemonics + spacing + `(;|$)`},
	ImmediateInstruction: {GroupInstruction,
		"Write immediate operands as 'mnemonic #value'.",
		"LDA   #1",
		statement + mnemonics + spacing + `(#)`},
	AddressInstruction: {GroupInstruction,
		"Write absolute and zero-page operands with one space after the mnemonic.",
		"STA   $0200",
		statement + mnemonics + spacing + `([^#(:;,[:space:]])`},
	IndexedInstruction: {GroupInstruction,
		"Write indexed operands as 'mnemonic operand, x'.",
		"LDA $10 ,X",
		statement + mnemonics + spacing + wideOperand + spacing + `,` + spacing + indexReg},
	IndirectInstruction: {GroupInstruction,
		"Write indirect operands as 'mnemonic (operand)'.",
		"JMP ( $1234 )",
		statement + mnemonics + spacing + `[(]` + spacing + operand + spacing + `[)]`},
	IndirectXInstruction: {GroupInstruction,
		"Write pre-indexed indirect operands as 'mnemonic (operand, x)'.",
		"LDA ( $10 , X )",
		statement + mnemonics + spacing + `[(]` + spacing + operand + spacing + `,` + spacing + `([Xx])` + spacing + `[)]`},
	IndirectYInstruction: {GroupInstruction,
		"Write post-indexed indirect operands as 'mnemonic (operand), y'.",
		"LDA ( $10 ) , Y",
		statement + mnemonics + spacing + `[(]` + spacing + operand + spacing + `[)]` + spacing + `,` + spacing + `([Yy])`},
	RelativeInstruction: {GroupInstruction,
		"Write branches to unnamed labels as 'mnemonic :+'.",
		"BNE   :+",
		statement + mnemonics + spacing + `:([+]+|[-]+)`},
	CommentSpacing: {GroupComments,
		"Separate the comment delimiter from code and comment text by one space.",
		"nop;comment",
		comment},
}

// Catalog holds the compiled pattern of every rule.
type Catalog struct {
	patterns [Count]*regexp.Regexp
}

// Compile builds the catalog. It fails with ErrCatalog when a pattern does
// not compile; nothing has been formatted at that point.
func Compile() (*Catalog, error) {
	c := &Catalog{}
	for id := ID(0); id < Count; id++ {
		re, err := regexp.Compile("(?i)" + entries[id].pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCatalog, id, err)
		}
		re.Longest()
		c.patterns[id] = re
	}
	return c, nil
}

// Pattern returns the compiled pattern of id, or nil for an unknown id.
func (c *Catalog) Pattern(id ID) *regexp.Regexp {
	if !id.Valid() {
		return nil
	}
	return c.patterns[id]
}

// Describe returns the documentation record of id.
func Describe(id ID) (Rule, bool) {
	if !id.Valid() {
		return Rule{}, false
	}
	e := entries[id]
	return Rule{
		ID:      id,
		Name:    names[id].name,
		Alias:   names[id].alias,
		Group:   e.group,
		Summary: e.summary,
		Example: e.example,
		Pattern: e.pattern,
	}, true
}

// Rules lists every catalog entry in execution order.
func Rules() []Rule {
	out := make([]Rule, 0, Count)
	for id := ID(0); id < Count; id++ {
		r, _ := Describe(id)
		out = append(out, r)
	}
	return out
}

// dataDirectives are the control commands whose lines are indented like
// instructions.
var dataDirectives = []string{
	"asciiz", "addr", "byt", "byte", "dbyt", "dword", "lobytes", "hibytes", "word",
}

// IsDataDirective reports whether line starts with a data directive such as
// .byte or .word.
func IsDataDirective(line []byte) bool {
	if len(line) < 2 || line[0] != '.' {
		return false
	}
	rest := strings.ToLower(string(line[1:]))
	for _, d := range dataDirectives {
		if strings.HasPrefix(rest, d) {
			return true
		}
	}
	return false
}
