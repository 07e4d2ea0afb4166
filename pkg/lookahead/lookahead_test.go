package lookahead

import (
	"testing"

	"github.com/ckeaney/kcc/pkg/token"
	"github.com/stretchr/testify/assert"
)

func TestSingleForm(t *testing.T) {
	tbl := SingleForm(token.Keyword, token.Int)
	assert.True(t, tbl.Lookup(token.Keyword, token.Int))
	assert.False(t, tbl.Lookup(token.Keyword, token.Long))
	assert.False(t, tbl.Lookup(token.Identifier, token.Int))
}

func TestSingleCoversEveryForm(t *testing.T) {
	tbl := Single(token.Identifier)
	for f := 0; f < token.NumForms; f++ {
		assert.True(t, tbl.Lookup(token.Identifier, token.Form(f)))
	}
	assert.False(t, tbl.Lookup(token.Keyword, token.Simple))
}

func TestUnionIsSetUnion(t *testing.T) {
	a := SingleForm(token.Punctuator, token.Plus)
	b := SingleForm(token.Punctuator, token.Minus)
	u := Union(a, b)
	assert.True(t, u.Lookup(token.Punctuator, token.Plus))
	assert.True(t, u.Lookup(token.Punctuator, token.Minus))
	assert.False(t, u.Lookup(token.Punctuator, token.Asterix))

	// Union is pure: the inputs are unchanged.
	assert.False(t, a.Lookup(token.Punctuator, token.Minus))
}

func TestFirstOfPrimaryExpression(t *testing.T) {
	assert.True(t, FirstOfPrimaryExpression.Lookup(token.Identifier, token.Simple))
	assert.True(t, FirstOfPrimaryExpression.Lookup(token.Constant, token.IntegerConstant))
	assert.True(t, FirstOfPrimaryExpression.Lookup(token.StringLiteral, token.StringLiteralForm))
	assert.True(t, FirstOfPrimaryExpression.Lookup(token.Punctuator, token.OpenParen))
	assert.False(t, FirstOfPrimaryExpression.Lookup(token.Punctuator, token.CloseParen))
	assert.False(t, FirstOfPrimaryExpression.Lookup(token.Keyword, token.If))
}

func TestFirstOfUnaryExpression(t *testing.T) {
	for _, form := range []token.Form{
		token.Increment, token.Decrement, token.Ampersand, token.Asterix,
		token.Plus, token.Minus, token.Tilde, token.ExclamationMark,
	} {
		assert.True(t, FirstOfUnaryExpression.Lookup(token.Punctuator, form), form.String())
	}
	assert.True(t, FirstOfUnaryExpression.Lookup(token.Keyword, token.Sizeof))
	assert.False(t, FirstOfUnaryExpression.Lookup(token.Keyword, token.Return))
}

func TestFirstOfTypeSpecifier(t *testing.T) {
	for _, form := range []token.Form{
		token.Void, token.Char, token.Short, token.Int, token.Long,
		token.Float, token.Double, token.Signed, token.Unsigned,
		token.Bool, token.Complex, token.Struct, token.Union, token.Enum,
	} {
		assert.True(t, FirstOfTypeSpecifier.Lookup(token.Keyword, form), form.String())
	}
	// typedef-name pulls identifiers in.
	assert.True(t, FirstOfTypeSpecifier.Lookup(token.Identifier, token.Simple))
	assert.False(t, FirstOfTypeSpecifier.Lookup(token.Keyword, token.Typedef))
}

func TestFirstOfStatement(t *testing.T) {
	cases := []struct {
		name token.Name
		form token.Form
	}{
		{token.Keyword, token.If},
		{token.Keyword, token.Switch},
		{token.Keyword, token.While},
		{token.Keyword, token.Do},
		{token.Keyword, token.For},
		{token.Keyword, token.Goto},
		{token.Keyword, token.Continue},
		{token.Keyword, token.Break},
		{token.Keyword, token.Return},
		{token.Keyword, token.Case},
		{token.Keyword, token.Default},
		{token.Punctuator, token.OpenCurlyBracket},
		{token.Punctuator, token.SemiColon},
		{token.Identifier, token.Simple},
	}
	for _, c := range cases {
		assert.True(t, FirstOfStatement.Lookup(c.name, c.form), "%s/%s", c.name, c.form)
	}
	assert.False(t, FirstOfStatement.Lookup(token.Punctuator, token.CloseCurlyBracket))
}

func TestFirstOfTranslationUnit(t *testing.T) {
	assert.True(t, FirstOfTranslationUnit.Lookup(token.Keyword, token.Int))
	assert.True(t, FirstOfTranslationUnit.Lookup(token.Keyword, token.Static))
	assert.True(t, FirstOfTranslationUnit.Lookup(token.Keyword, token.Inline))
	assert.True(t, FirstOfTranslationUnit.Lookup(token.Keyword, token.Const))
	assert.False(t, FirstOfTranslationUnit.Lookup(token.Keyword, token.Return))
	assert.False(t, FirstOfTranslationUnit.Lookup(token.Punctuator, token.SemiColon))
}

func TestExpressionLadderChainsUp(t *testing.T) {
	// Every level of the precedence ladder contains everything a
	// primary expression starts with.
	tables := []Table{
		FirstOfMultiplicativeExpression,
		FirstOfAdditiveExpression,
		FirstOfShiftExpression,
		FirstOfRelationalExpression,
		FirstOfEqualityExpression,
		FirstOfAndExpression,
		FirstOfExclusiveOrExpression,
		FirstOfInclusiveOrExpression,
		FirstOfLogicalAndExpression,
		FirstOfLogicalOrExpression,
		FirstOfConditionalExpression,
		FirstOfConstantExpression,
		FirstOfExpression,
	}
	for i, tbl := range tables {
		assert.True(t, tbl.Lookup(token.Identifier, token.Simple), "level %d", i)
		assert.True(t, tbl.Lookup(token.Constant, token.IntegerConstant), "level %d", i)
		assert.True(t, tbl.Lookup(token.Punctuator, token.OpenParen), "level %d", i)
	}
}
