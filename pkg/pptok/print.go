package pptok

import (
	"fmt"
	"io"
)

// Column widths for the pp-token table dump.
const (
	colLexeme = 32
	colName   = 13
	colForm   = 20
	colFile   = 13
	colLine   = 6
	colChar   = 6
	colLen    = 6
)

// PrintTable writes a fixed-width table of pp-tokens, one row per
// token, headed by a column row. Used by the CLI's preprocess-only
// output.
func PrintTable(w io.Writer, tokens []Token) {
	fmt.Fprintf(w, "%-*s%-*s%-*s%-*s%-*s%-*s%-*s\n",
		colLexeme, "Lexeme",
		colName, "Name",
		colForm, "Form",
		colFile, "File",
		colLine, "Line",
		colChar, "Char",
		colLen, "Len")
	for _, t := range tokens {
		fmt.Fprintf(w, "%-*s%-*s%-*s%-*s%-*d%-*d%-*d\n",
			colLexeme, t.Text(),
			colName, t.Name.String(),
			colForm, t.Form.String(),
			colFile, t.Loc.Filename,
			colLine, t.Loc.Line,
			colChar, t.Loc.Column,
			colLen, t.Loc.Length)
	}
}
