package lexer

import (
	"strings"

	"github.com/ckeaney/kcc/pkg/diag"
	"github.com/ckeaney/kcc/pkg/pptok"
	"github.com/ckeaney/kcc/pkg/token"
)

// lexStringLiteral validates a (possibly L-prefixed) string literal.
// The escape set matches character constants. The lexeme is preserved
// verbatim; no value is computed.
func lexStringLiteral(pp pptok.Token, book *diag.Book) token.Token {
	text := pp.Text()
	body := strings.TrimPrefix(text, "L")

	if ok := validStringBody(body); !ok {
		book.AddError(diag.ErrInvalidStringLiteral,
			"This string literal could not be recognised. Is it unterminated?", pp.Loc)
		return token.Token{
			Name:   token.Error,
			Form:   token.StringLiteralForm,
			Lexeme: pp.Lexeme,
			Loc:    pp.Loc,
		}
	}
	return token.Token{
		Name:   token.StringLiteral,
		Form:   token.StringLiteralForm,
		Lexeme: pp.Lexeme,
		Loc:    pp.Loc,
	}
}

func validStringBody(body string) bool {
	if len(body) < 2 || body[0] != '"' || body[len(body)-1] != '"' {
		return false
	}
	s := body[1 : len(body)-1]
	for s != "" {
		if s[0] == '"' || s[0] == '\n' {
			return false
		}
		if s[0] != '\\' {
			s = s[1:]
			continue
		}
		_, rest, ok := decodeCChar(s)
		if !ok {
			return false
		}
		s = rest
	}
	return true
}
