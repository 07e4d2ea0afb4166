package lexer

import (
	"github.com/ckeaney/kcc/pkg/pptok"
	"github.com/ckeaney/kcc/pkg/token"
)

// keywords maps each of the 37 C99 keywords to its token form. The
// match must cover the whole lexeme: any trailing identifier
// character fails it, so `autoadditional` is an identifier, never a
// keyword.
var keywords = map[string]token.Form{
	"auto":       token.Auto,
	"break":      token.Break,
	"case":       token.Case,
	"char":       token.Char,
	"const":      token.Const,
	"continue":   token.Continue,
	"default":    token.Default,
	"do":         token.Do,
	"double":     token.Double,
	"else":       token.Else,
	"enum":       token.Enum,
	"extern":     token.Extern,
	"float":      token.Float,
	"for":        token.For,
	"goto":       token.Goto,
	"if":         token.If,
	"inline":     token.Inline,
	"int":        token.Int,
	"long":       token.Long,
	"register":   token.Register,
	"restrict":   token.Restrict,
	"return":     token.Return,
	"short":      token.Short,
	"signed":     token.Signed,
	"sizeof":     token.Sizeof,
	"static":     token.Static,
	"struct":     token.Struct,
	"switch":     token.Switch,
	"typedef":    token.Typedef,
	"union":      token.Union,
	"unsigned":   token.Unsigned,
	"void":       token.Void,
	"volatile":   token.Volatile,
	"while":      token.While,
	"_Bool":      token.Bool,
	"_Complex":   token.Complex,
	"_Imaginary": token.Imaginary,
}

// lexKeyword matches the lexeme against the keyword table.
func lexKeyword(pp pptok.Token) (token.Token, bool) {
	form, ok := keywords[pp.Text()]
	if !ok {
		return token.Token{}, false
	}
	return token.Token{
		Name:   token.Keyword,
		Form:   form,
		Lexeme: pp.Lexeme,
		Loc:    pp.Loc,
	}, true
}
