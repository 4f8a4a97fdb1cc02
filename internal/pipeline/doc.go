// Package pipeline runs the formatting rules over a source file, line by
// line.
//
// For each line the driver decides whether it is preformatted and copied
// through, otherwise runs the enabled rules in catalog order while carrying
// the line's flags from rule to rule, and finally emits the line with the
// indentation or label marker the flags call for. State that crosses lines
// (block depth, previous blank line) lives in a Tracker owned by the run.
package pipeline
