package lexer

import (
	"strconv"
	"strings"

	"github.com/ckeaney/kcc/pkg/diag"
	"github.com/ckeaney/kcc/pkg/pptok"
	"github.com/ckeaney/kcc/pkg/token"
)

// lexConstant classifies a pp-number or character-constant lexeme and
// computes its value. The recogniser must consume the entire lexeme;
// anything left over fails it.
func lexConstant(pp pptok.Token, book *diag.Book) token.Token {
	text := pp.Text()

	if strings.HasPrefix(text, "'") || strings.HasPrefix(text, "L'") {
		return lexCharacterConstant(pp, book)
	}

	if tok, ok := lexNumber(pp); ok {
		return tok
	}
	book.AddError(diag.ErrInvalidConstant,
		"This constant could not be recognised. Did you mispell it?", pp.Loc)
	return token.Token{Name: token.Error, Form: token.Simple, Lexeme: pp.Lexeme, Loc: pp.Loc}
}

// lexNumber runs the numeric constant automaton over the lexeme.
func lexNumber(pp pptok.Token) (token.Token, bool) {
	text := pp.Text()
	if text == "" {
		return token.Token{}, false
	}

	switch {
	case text[0] >= '1' && text[0] <= '9':
		return decimalOrFloat(pp, text, 1)

	case text[0] == '.':
		i := 1
		for i < len(text) && isDigit(text[i]) {
			i++
		}
		if i == 1 {
			return token.Token{}, false
		}
		return fractional(pp, text, i)

	case text[0] == '0':
		if len(text) > 1 && (text[1] == 'x' || text[1] == 'X') {
			return hexadecimal(pp, text, 2)
		}
		i := 1
		for i < len(text) && isOctDigit(text[i]) {
			i++
		}
		if i == len(text) || isIntegerSuffix(text[i]) {
			return integer(pp, text, i, 8)
		}
		// A 9 after a leading 0 can still open a floating constant:
		// try the floating path before rejecting the octal digit.
		j := i
		for j < len(text) && isDigit(text[j]) {
			j++
		}
		if j < len(text) {
			switch text[j] {
			case '.', 'e', 'E', 'p', 'P':
				return decimalOrFloat(pp, text, j)
			}
		}
		return token.Token{}, false
	}
	return token.Token{}, false
}

// decimalOrFloat continues a decimal digit sequence from position i,
// ending in either an integer (with suffix) or a floating constant.
func decimalOrFloat(pp pptok.Token, text string, i int) (token.Token, bool) {
	for i < len(text) && isDigit(text[i]) {
		i++
	}
	if i == len(text) || isIntegerSuffix(text[i]) {
		return integer(pp, text, i, 10)
	}
	switch text[i] {
	case '.':
		i++
		for i < len(text) && isDigit(text[i]) {
			i++
		}
		return fractional(pp, text, i)
	case 'e', 'E':
		i, ok := exponent(text, i)
		if !ok {
			return token.Token{}, false
		}
		return floating(pp, text, i, 10)
	}
	return token.Token{}, false
}

// fractional continues after the digits following a decimal point.
func fractional(pp pptok.Token, text string, i int) (token.Token, bool) {
	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		var ok bool
		i, ok = exponent(text, i)
		if !ok {
			return token.Token{}, false
		}
	}
	return floating(pp, text, i, 10)
}

// hexadecimal continues after the 0x prefix.
func hexadecimal(pp pptok.Token, text string, i int) (token.Token, bool) {
	start := i
	for i < len(text) && isHexDigit(text[i]) {
		i++
	}
	if i == start {
		return token.Token{}, false
	}
	if i == len(text) || isIntegerSuffix(text[i]) {
		return integer(pp, text, i, 16)
	}
	switch text[i] {
	case '.':
		i++
		for i < len(text) && isHexDigit(text[i]) {
			i++
		}
		if i < len(text) && (text[i] == 'p' || text[i] == 'P') {
			var ok bool
			i, ok = exponent(text, i)
			if !ok {
				return token.Token{}, false
			}
		}
		return floating(pp, text, i, 16)
	case 'p', 'P':
		i, ok := exponent(text, i)
		if !ok {
			return token.Token{}, false
		}
		return floating(pp, text, i, 16)
	}
	return token.Token{}, false
}

// exponent consumes e/E/p/P, an optional sign, and a required digit
// sequence.
func exponent(text string, i int) (int, bool) {
	i++ // e E p P
	if i < len(text) && (text[i] == '+' || text[i] == '-') {
		i++
	}
	start := i
	for i < len(text) && isDigit(text[i]) {
		i++
	}
	return i, i > start
}

// integer validates the suffix starting at i and produces the token
// with the exact value of the lexeme in its detected base.
func integer(pp pptok.Token, text string, i int, base int) (token.Token, bool) {
	digits := text[:i]
	var u bool
	var l int
	for ; i < len(text); i++ {
		switch text[i] {
		case 'u', 'U':
			if u {
				return token.Token{}, false
			}
			u = true
		case 'l', 'L':
			if l >= 2 {
				return token.Token{}, false
			}
			l++
		default:
			return token.Token{}, false
		}
	}
	if base == 16 {
		digits = digits[2:]
	}
	if digits == "" {
		return token.Token{}, false
	}
	val, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return token.Token{}, false
	}
	return token.Token{
		Name:   token.Constant,
		Form:   token.IntegerConstant,
		Val:    token.Value{Kind: token.IntValue, Int: int64(val)},
		Lexeme: pp.Lexeme,
		Loc:    pp.Loc,
	}, true
}

// floating validates the optional floating suffix at i and parses the
// value.
func floating(pp pptok.Token, text string, i int, base int) (token.Token, bool) {
	numeric := text[:i]
	if i < len(text) {
		switch text[i] {
		case 'f', 'F', 'l', 'L':
			i++
		}
		if i != len(text) {
			return token.Token{}, false
		}
	}
	if base == 16 && !strings.ContainsAny(numeric, "pP") {
		// Go's parser insists on the binary exponent hex floats may
		// omit here.
		numeric += "p0"
	}
	val, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		return token.Token{}, false
	}
	return token.Token{
		Name:   token.Constant,
		Form:   token.FloatingConstant,
		Val:    token.Value{Kind: token.FloatValue, Float: val},
		Lexeme: pp.Lexeme,
		Loc:    pp.Loc,
	}, true
}

func isIntegerSuffix(c byte) bool {
	return c == 'u' || c == 'U' || c == 'l' || c == 'L'
}

// lexCharacterConstant validates a (possibly L-prefixed) character
// constant and computes its value from the first c-char.
func lexCharacterConstant(pp pptok.Token, book *diag.Book) token.Token {
	text := pp.Text()
	body := strings.TrimPrefix(text, "L")

	fail := func() token.Token {
		book.AddError(diag.ErrInvalidConstant,
			"This constant could not be recognised. Did you mispell it?", pp.Loc)
		return token.Token{
			Name:   token.Error,
			Form:   token.CharacterConstant,
			Lexeme: pp.Lexeme,
			Loc:    pp.Loc,
		}
	}

	if len(body) < 3 || body[0] != '\'' || body[len(body)-1] != '\'' {
		return fail()
	}
	inner := body[1 : len(body)-1]
	val, rest, ok := decodeCChar(inner)
	if !ok {
		return fail()
	}
	for rest != "" {
		_, rest, ok = decodeCChar(rest)
		if !ok {
			return fail()
		}
	}
	return token.Token{
		Name:   token.Constant,
		Form:   token.CharacterConstant,
		Val:    token.Value{Kind: token.IntValue, Int: val},
		Lexeme: pp.Lexeme,
		Loc:    pp.Loc,
	}
}

// decodeCChar decodes one c-char or escape sequence from the front of
// s, returning its value and the remainder.
func decodeCChar(s string) (int64, string, bool) {
	if s == "" {
		return 0, "", false
	}
	if s[0] != '\\' {
		if s[0] == '\'' || s[0] == '\n' {
			return 0, "", false
		}
		return int64(s[0]), s[1:], true
	}
	if len(s) < 2 {
		return 0, "", false
	}
	switch s[1] {
	case '\'':
		return '\'', s[2:], true
	case '"':
		return '"', s[2:], true
	case '?':
		return '?', s[2:], true
	case '\\':
		return '\\', s[2:], true
	case 'a':
		return '\a', s[2:], true
	case 'b':
		return '\b', s[2:], true
	case 'f':
		return '\f', s[2:], true
	case 'n':
		return '\n', s[2:], true
	case 'r':
		return '\r', s[2:], true
	case 't':
		return '\t', s[2:], true
	case 'v':
		return '\v', s[2:], true
	case 'x':
		i := 2
		var val int64
		for i < len(s) && isHexDigit(s[i]) {
			val = val*16 + int64(hexVal(s[i]))
			i++
		}
		if i == 2 {
			return 0, "", false
		}
		return val, s[i:], true
	default:
		if !isOctDigit(s[1]) {
			return 0, "", false
		}
		i := 1
		var val int64
		for i < len(s) && i <= 3 && isOctDigit(s[i]) {
			val = val*8 + int64(s[i]-'0')
			i++
		}
		return val, s[i:], true
	}
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return int(c-'A') + 10
	}
}
