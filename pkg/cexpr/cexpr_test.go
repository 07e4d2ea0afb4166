package cexpr

import (
	"testing"

	"github.com/ckeaney/kcc/pkg/diag"
	"github.com/ckeaney/kcc/pkg/lexema"
	"github.com/ckeaney/kcc/pkg/lexer"
	"github.com/ckeaney/kcc/pkg/pp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eval lexes a source expression and evaluates it.
func eval(t *testing.T, src string) (int64, error) {
	t.Helper()
	pool := lexema.NewPool()
	book := diag.NewBook()
	pps := pp.NewLexer(src, "expr.c", pool, book).All()
	toks := lexer.Lex(pps, book)
	require.Empty(t, book.Errors(), "lexing %q", src)
	return Evaluator{}.Eval(toks)
}

func TestEvalArithmetic(t *testing.T) {
	cases := map[string]int64{
		"1":               1,
		"1 + 2 * 3":       7,
		"(1 + 2) * 3":     9,
		"10 / 3":          3,
		"10 % 3":          1,
		"-5 + 2":          -3,
		"+7":              7,
		"~0":              -1,
		"1 << 4":          16,
		"256 >> 4":        16,
		"0x10 + 010":      24,
		"'A'":             65,
		"2 - 3 - 4":       -5,
		"100 / 5 / 2":     10,
	}
	for src, want := range cases {
		got, err := eval(t, src)
		require.NoError(t, err, src)
		assert.Equal(t, want, got, src)
	}
}

func TestEvalComparisonsAndLogic(t *testing.T) {
	cases := map[string]int64{
		"1 == 1":           1,
		"1 != 1":           0,
		"2 < 3":            1,
		"3 <= 3":           1,
		"4 > 5":            0,
		"5 >= 5":           1,
		"1 && 1":           1,
		"1 && 0":           0,
		"0 || 0":           0,
		"0 || 3":           1,
		"!0":               1,
		"!5":               0,
		"1 | 2":            3,
		"3 & 6":            2,
		"3 ^ 5":            6,
		"1 < 2 && 2 < 3":   1,
		"1 ? 10 : 20":      10,
		"0 ? 10 : 20":      20,
		"1 ? 2 ? 3 : 4 : 5": 3,
	}
	for src, want := range cases {
		got, err := eval(t, src)
		require.NoError(t, err, src)
		assert.Equal(t, want, got, src)
	}
}

func TestEvalIdentifiersFoldToZero(t *testing.T) {
	got, err := eval(t, "UNDEFINED_MACRO + 1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)

	// Leftover keywords behave the same way.
	got, err = eval(t, "int + 2")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got)
}

func TestEvalErrors(t *testing.T) {
	for _, src := range []string{
		"1 / 0",
		"1 % 0",
		"1 +",
		"(1",
		"1 ? 2",
		"1 2",
		"1.5", // floating constants have no place in #if
	} {
		_, err := eval(t, src)
		assert.Error(t, err, src)
	}
}

func TestParseShape(t *testing.T) {
	pool := lexema.NewPool()
	book := diag.NewBook()
	pps := pp.NewLexer("1 + 2 * 3", "expr.c", pool, book).All()
	toks := lexer.Lex(pps, book)

	expr, err := Parse(toks)
	require.NoError(t, err)

	add, ok := expr.(Binary)
	require.True(t, ok, "top node should be the +")
	_, ok = add.L.(IntLit)
	assert.True(t, ok)
	mul, ok := add.R.(Binary)
	require.True(t, ok, "right operand should be the *")
	assert.Equal(t, int64(2), mul.L.(IntLit).Val)
	assert.Equal(t, int64(3), mul.R.(IntLit).Val)
}
