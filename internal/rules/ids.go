package rules

import (
	"strconv"
	"strings"
)

// ID identifies a rule. Its numeric value is the rule's position in the
// catalog, which is also its execution order and its bit in a Set.
type ID uint8

// Catalog order. Rules run in this order on every line.
const (
	OnlyComment ID = iota
	TrimLeading
	TrimTrailing
	TabExpansion
	BitwiseInstruction
	AddressFormatting
	HexLiteralFormatting
	BinaryLiteralFormatting
	OpenParenSpacing
	CloseParenSpacing
	OperatorSpacing
	ByteOperatorSpacing
	CommaSpacing
	ControlCommand
	MacroDefinition
	MacroInstance
	NamedLabel
	UnnamedLabel
	ImpliedInstruction
	ImmediateInstruction
	AddressInstruction
	IndexedInstruction
	IndirectInstruction
	IndirectXInstruction
	IndirectYInstruction
	RelativeInstruction
	CommentSpacing

	// Count is the number of rules in the catalog.
	Count
)

// Group classifies rules for documentation.
type Group string

const (
	GroupWhitespace  Group = "whitespace"
	GroupLiterals    Group = "literals"
	GroupPunctuation Group = "punctuation"
	GroupDirectives  Group = "directives"
	GroupLabels      Group = "labels"
	GroupInstruction Group = "instructions"
	GroupComments    Group = "comments"
)

// names holds the canonical kebab-case name and the camelCase alias accepted
// in configuration files.
var names = [Count]struct{ name, alias string }{
	OnlyComment:             {"only-comment", "onlyComment"},
	TrimLeading:             {"trim-leading", "trimLeading"},
	TrimTrailing:            {"trim-trailing", "trimTrailing"},
	TabExpansion:            {"tab-expansion", "tabExpansion"},
	BitwiseInstruction:      {"bitwise-instruction", "bitwiseInstruction"},
	AddressFormatting:       {"address-formatting", "addressFormatting"},
	HexLiteralFormatting:    {"hex-literal-formatting", "hexLiteralFormatting"},
	BinaryLiteralFormatting: {"binary-literal-formatting", "binaryLiteralFormatting"},
	OpenParenSpacing:        {"open-paren-spacing", "openParenSpacing"},
	CloseParenSpacing:       {"close-paren-spacing", "closeParenSpacing"},
	OperatorSpacing:         {"operator-spacing", "operatorFormatting"},
	ByteOperatorSpacing:     {"byte-operator-spacing", "byteOperatorFormatting"},
	CommaSpacing:            {"comma-spacing", "commaSpacing"},
	ControlCommand:          {"control-command", "controlCommand"},
	MacroDefinition:         {"macro-definition", "macroDefinition"},
	MacroInstance:           {"macro-instance", "macroInstance"},
	NamedLabel:              {"named-label", "namedLabel"},
	UnnamedLabel:            {"unnamed-label", "unnamedLabel"},
	ImpliedInstruction:      {"implied-instruction", "impliedInstruction"},
	ImmediateInstruction:    {"immediate-instruction", "immediateInstruction"},
	AddressInstruction:      {"address-instruction", "addressInstruction"},
	IndexedInstruction:      {"indexed-instruction", "indexedInstruction"},
	IndirectInstruction:     {"indirect-instruction", "indirectInstruction"},
	IndirectXInstruction:    {"indirect-x-instruction", "indirectXInstruction"},
	IndirectYInstruction:    {"indirect-y-instruction", "indirectYInstruction"},
	RelativeInstruction:     {"relative-instruction", "relativeInstruction"},
	CommentSpacing:          {"comment-spacing", "commentSpacing"},
}

// Valid reports whether id names a catalog entry.
func (id ID) Valid() bool {
	return id < Count
}

// String returns the canonical rule name.
func (id ID) String() string {
	if !id.Valid() {
		return "rule(" + strconv.Itoa(int(id)) + ")"
	}
	return names[id].name
}

// Alias returns the camelCase spelling of the rule name.
func (id ID) Alias() string {
	if !id.Valid() {
		return ""
	}
	return names[id].alias
}

// Lookup resolves a rule name. Both the kebab-case name and the camelCase
// alias are accepted, case-insensitively.
func Lookup(name string) (ID, bool) {
	name = strings.TrimSpace(name)
	for id := ID(0); id < Count; id++ {
		if strings.EqualFold(name, names[id].name) || strings.EqualFold(name, names[id].alias) {
			return id, true
		}
	}
	return 0, false
}

// Set is a bitset of enabled rules.
type Set uint32

// All returns the set with every rule enabled.
func All() Set {
	return Set(1)<<Count - 1
}

// Has reports whether id is in the set.
func (s Set) Has(id ID) bool {
	return id.Valid() && s&(1<<id) != 0
}

// With returns s with id added.
func (s Set) With(id ID) Set {
	if !id.Valid() {
		return s
	}
	return s | 1<<id
}

// Without returns s with id removed.
func (s Set) Without(id ID) Set {
	if !id.Valid() {
		return s
	}
	return s &^ (1 << id)
}

// IDs lists the members of s in execution order.
func (s Set) IDs() []ID {
	ids := make([]ID, 0, Count)
	for id := ID(0); id < Count; id++ {
		if s.Has(id) {
			ids = append(ids, id)
		}
	}
	return ids
}
