// Package lexer classifies preprocessing tokens into language tokens:
// keywords, identifiers, constants, string literals and punctuators,
// computing numeric values where the token has one.
package lexer

import (
	"github.com/ckeaney/kcc/pkg/diag"
	"github.com/ckeaney/kcc/pkg/pptok"
	"github.com/ckeaney/kcc/pkg/token"
)

// Lex classifies a pp-token stream. Classification stops at the EOF
// pp-token, which produces no output. Every failure still yields a
// token (of name ERROR, with the form hint preserved where possible)
// plus a diagnostic, so classification always runs to completion.
func Lex(pps []pptok.Token, book *diag.Book) []token.Token {
	var out []token.Token
	for _, pp := range pps {
		switch pp.Name {
		case pptok.EndOfFile:
			return out
		case pptok.NewLine:
			// Line structure is a preprocessor concern only.
		case pptok.Identifier:
			if tok, ok := lexKeyword(pp); ok {
				out = append(out, tok)
			} else {
				out = append(out, lexIdentifier(pp, book))
			}
		case pptok.PPNumber, pptok.CharacterConstant:
			out = append(out, lexConstant(pp, book))
		case pptok.StringLiteral:
			out = append(out, lexStringLiteral(pp, book))
		case pptok.Punctuator:
			out = append(out, lexPunctuator(pp, book))
		default:
			// The preprocessor already diagnosed this token; carry
			// the error through without a second entry.
			out = append(out, token.Token{
				Name:   token.Error,
				Form:   token.Simple,
				Lexeme: pp.Lexeme,
				Loc:    pp.Loc,
			})
		}
	}
	return out
}

// lexIdentifier validates the identifier shape: an identifier
// non-digit followed by identifier characters.
func lexIdentifier(pp pptok.Token, book *diag.Book) token.Token {
	text := pp.Text()
	ok := len(text) > 0 && isIdentStart(text[0])
	for i := 1; ok && i < len(text); i++ {
		ok = isIdentStart(text[i]) || isDigit(text[i])
	}
	if !ok {
		book.AddError(diag.ErrInvalidIdentifier,
			"Could not recognise this identifier (). Did you forget to declare it or mispell it?",
			pp.Loc)
		return token.Token{Name: token.Error, Form: token.Simple, Lexeme: pp.Lexeme, Loc: pp.Loc}
	}
	return token.Token{Name: token.Identifier, Form: token.Simple, Lexeme: pp.Lexeme, Loc: pp.Loc}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isOctDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
