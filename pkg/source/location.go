// Package source defines file coordinates for tokens and diagnostics.
package source

import "strings"

// Location records where a lexeme begins in a translation unit.
// Lines are 1-based, columns 0-based. Length is the lexeme length in
// bytes, used by the diagnostic renderer for the underline.
type Location struct {
	Filename string
	Line     int
	Column   int
	Length   int
}

// Line extracts the 1-based line n from input, without its trailing
// newline. Returns "" if the input has no such line.
func Line(input string, n int) string {
	if n < 1 {
		return ""
	}
	start := 0
	for n > 1 {
		i := strings.IndexByte(input[start:], '\n')
		if i < 0 {
			return ""
		}
		start += i + 1
		n--
	}
	if end := strings.IndexByte(input[start:], '\n'); end >= 0 {
		return input[start : start+end]
	}
	return input[start:]
}
