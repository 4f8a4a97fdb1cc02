package main

import (
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightStyle is the chroma style for terminal output.
const highlightStyle = "monokai"

// sourceLexer returns the ca65 lexer, falling back to any lexer registered
// for .s files and then to plain text.
func sourceLexer() chroma.Lexer {
	lexer := lexers.Get("ca65")
	if lexer == nil {
		lexer = lexers.Match("source.s")
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

// highlight writes src to w with terminal syntax highlighting.
func highlight(w io.Writer, src []byte) error {
	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	it, err := sourceLexer().Tokenise(nil, string(src))
	if err != nil {
		return err
	}
	return formatter.Format(w, styles.Get(highlightStyle), it)
}
