package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/ckeaney/kcc/pkg/source"
)

// ANSI colour sequences used when rendering the books.
const (
	colourError   = "\x1B[31m"
	colourWarning = "\x1B[32m"
	colourMessage = "\x1B[33m"
	colourReset   = "\033[0m"
)

// Printer renders a book against the unit's raw input, which is needed
// to reproduce the offending source line under each entry.
type Printer struct {
	Input  string
	Colour bool
}

// Print writes all three books to w: errors, then warnings, then
// messages, each in production order.
func (p Printer) Print(w io.Writer, b *Book) {
	for _, e := range b.Errors() {
		p.printEntry(w, e, colourError)
	}
	for _, e := range b.Warnings() {
		p.printEntry(w, e, colourWarning)
	}
	for _, e := range b.Messages() {
		p.printEntry(w, e, colourMessage)
	}
}

func (p Printer) printEntry(w io.Writer, e Entry, colour string) {
	start, reset := "", ""
	if p.Colour {
		start, reset = colour, colourReset
	}
	fmt.Fprintf(w, "%skcc:error:err%d:%s:%d:%d:%s%s\n",
		start,
		int(e.Code),
		e.Loc.Filename,
		e.Loc.Line,
		e.Loc.Column,
		e.Message,
		reset)
	p.printUnderline(w, e, start, reset)
}

// printUnderline shows the offending line with a caret at the entry's
// column and a tilde tail covering the rest of the lexeme.
func (p Printer) printUnderline(w io.Writer, e Entry, start, reset string) {
	line := source.Line(p.Input, e.Loc.Line)
	if line == "" {
		return
	}
	fmt.Fprintln(w, line)
	tail := 0
	if e.Loc.Length > 1 {
		tail = e.Loc.Length - 1
	}
	fmt.Fprintf(w, "%s%s^%s%s\n",
		start,
		strings.Repeat(" ", e.Loc.Column),
		strings.Repeat("~", tail),
		reset)
}
