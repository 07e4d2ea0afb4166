package lexer

import (
	"github.com/ckeaney/kcc/pkg/diag"
	"github.com/ckeaney/kcc/pkg/pptok"
	"github.com/ckeaney/kcc/pkg/token"
)

// punctuators is the full punctuator table in match order: longer
// entries first so maximal munch resolves prefixes, declaration order
// breaking ties.
var punctuators = []struct {
	text string
	form token.Form
}{
	{"%:%:", token.BigraphDoubleHashtag},
	{"<<=", token.LeftShiftEquals},
	{">>=", token.RightShiftEquals},
	{"...", token.TripleDot},
	{"->", token.RightArrow},
	{"++", token.Increment},
	{"--", token.Decrement},
	{"<<", token.LeftShift},
	{">>", token.RightShift},
	{"<=", token.LessThanEqual},
	{">=", token.GreaterThanEqual},
	{"==", token.Equal},
	{"!=", token.NotEqual},
	{"&&", token.DoubleAmpersand},
	{"||", token.DoubleOr},
	{"*=", token.MultiplyEqual},
	{"/=", token.DivideEquals},
	{"%=", token.ModuloEquals},
	{"+=", token.PlusEquals},
	{"-=", token.MinusEquals},
	{"&=", token.AmpersandEqual},
	{"^=", token.XorEqual},
	{"|=", token.OrEqual},
	{"##", token.DoubleHashtag},
	{"<:", token.BigraphOpenBracket},
	{":>", token.BigraphCloseBracket},
	{"<%", token.BigraphOpenCurlyBracket},
	{"%>", token.BigraphCloseCurlyBracket},
	{"%:", token.BigraphHashtag},
	{"[", token.OpenBracket},
	{"]", token.CloseBracket},
	{"(", token.OpenParen},
	{")", token.CloseParen},
	{"{", token.OpenCurlyBracket},
	{"}", token.CloseCurlyBracket},
	{".", token.Dot},
	{"&", token.Ampersand},
	{"*", token.Asterix},
	{"+", token.Plus},
	{"-", token.Minus},
	{"~", token.Tilde},
	{"!", token.ExclamationMark},
	{"/", token.ForwardSlash},
	{"%", token.Modulo},
	{"<", token.LessThan},
	{">", token.GreaterThan},
	{"=", token.Assign},
	{"^", token.Xor},
	{"|", token.Or},
	{"?", token.QuestionMark},
	{":", token.Colon},
	{";", token.SemiColon},
	{",", token.Comma},
	{"#", token.Hashtag},
}

// lexPunctuator matches the whole lexeme against the punctuator
// table.
func lexPunctuator(pp pptok.Token, book *diag.Book) token.Token {
	text := pp.Text()
	for _, p := range punctuators {
		if p.text == text {
			return token.Token{
				Name:   token.Punctuator,
				Form:   p.form,
				Lexeme: pp.Lexeme,
				Loc:    pp.Loc,
			}
		}
	}
	book.AddError(diag.ErrInvalidPunctuator,
		"Could not recognise this token (). Did you mispell it?", pp.Loc)
	return token.Token{Name: token.Error, Form: token.Simple, Lexeme: pp.Lexeme, Loc: pp.Loc}
}
