package lexer

import (
	"math"
	"os"
	"testing"

	"github.com/ckeaney/kcc/pkg/cexpr"
	"github.com/ckeaney/kcc/pkg/diag"
	"github.com/ckeaney/kcc/pkg/lexema"
	"github.com/ckeaney/kcc/pkg/pp"
	"github.com/ckeaney/kcc/pkg/pptok"
	"github.com/ckeaney/kcc/pkg/token"
	"gopkg.in/yaml.v3"
)

// TokenSpec is one expected token from lex.yaml.
type TokenSpec struct {
	Name   string   `yaml:"name"`
	Form   string   `yaml:"form,omitempty"`
	Lexeme string   `yaml:"lexeme"`
	Value  *int64   `yaml:"value,omitempty"`
	Float  *float64 `yaml:"float,omitempty"`
}

// TestSpec is one test case from lex.yaml.
type TestSpec struct {
	Name   string      `yaml:"name"`
	Input  string      `yaml:"input"`
	Errors int         `yaml:"errors,omitempty"`
	Tokens []TokenSpec `yaml:"tokens"`
}

// TestFile is the lex.yaml file structure.
type TestFile struct {
	Tests []TestSpec `yaml:"tests"`
}

func TestLexYAML(t *testing.T) {
	data, err := os.ReadFile("../../testdata/lex.yaml")
	if err != nil {
		t.Fatalf("failed to read lex.yaml: %v", err)
	}
	var testFile TestFile
	if err := yaml.Unmarshal(data, &testFile); err != nil {
		t.Fatalf("failed to parse lex.yaml: %v", err)
	}

	for _, tc := range testFile.Tests {
		t.Run(tc.Name, func(t *testing.T) {
			pool := lexema.NewPool()
			book := diag.NewBook()
			result := pp.Preprocess(tc.Input, pp.Options{
				Filename: "test.c",
				Lex:      Lex,
				Eval:     cexpr.Evaluator{},
			}, pool, book)
			toks := Lex(result.Emitted, book)

			if len(toks) != len(tc.Tokens) {
				t.Fatalf("expected %d tokens, got %d: %v", len(tc.Tokens), len(toks), lexemes(toks))
			}
			for i, want := range tc.Tokens {
				verifyToken(t, i, toks[i], want)
			}
			if got := len(book.Errors()); got != tc.Errors {
				t.Errorf("expected %d errors, got %d: %v", tc.Errors, got, book.Errors())
			}
		})
	}
}

func verifyToken(t *testing.T, i int, got token.Token, want TokenSpec) {
	t.Helper()
	if got.Name.String() != want.Name {
		t.Errorf("token %d (%q): expected name %s, got %s", i, want.Lexeme, want.Name, got.Name)
	}
	if want.Form != "" && got.Form.String() != want.Form {
		t.Errorf("token %d (%q): expected form %s, got %s", i, want.Lexeme, want.Form, got.Form)
	}
	if got.Text() != want.Lexeme {
		t.Errorf("token %d: expected lexeme %q, got %q", i, want.Lexeme, got.Text())
	}
	if want.Value != nil {
		if got.Val.Kind != token.IntValue {
			t.Errorf("token %d (%q): expected an integer value", i, want.Lexeme)
		} else if got.Val.Int != *want.Value {
			t.Errorf("token %d (%q): expected value %d, got %d", i, want.Lexeme, *want.Value, got.Val.Int)
		}
	}
	if want.Float != nil {
		if got.Val.Kind != token.FloatValue {
			t.Errorf("token %d (%q): expected a floating value", i, want.Lexeme)
		} else if !approxEqual(got.Val.Float, *want.Float) {
			t.Errorf("token %d (%q): expected value %g, got %g", i, want.Lexeme, *want.Float, got.Val.Float)
		}
	}
}

func approxEqual(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= scale*1e-12
}

func lexemes(toks []token.Token) []string {
	var out []string
	for _, tok := range toks {
		out = append(out, tok.Text())
	}
	return out
}

func TestKeywordExclusivity(t *testing.T) {
	// Exactly the keyword is a keyword; any identifier-continue
	// character appended makes it an identifier.
	for kw := range keywords {
		for _, suffix := range []string{"x", "0", "_"} {
			pps := ppTokens(t, kw+suffix)
			book := diag.NewBook()
			toks := Lex(pps, book)
			if len(toks) != 1 {
				t.Fatalf("%q: expected one token", kw+suffix)
			}
			if toks[0].Name == token.Keyword {
				t.Errorf("%q must not classify as a keyword", kw+suffix)
			}
		}
	}
}

func TestIdentifierClassification(t *testing.T) {
	pps := ppTokens(t, "foo _bar x9 _")
	book := diag.NewBook()
	toks := Lex(pps, book)
	if len(toks) != 4 {
		t.Fatalf("expected 4 tokens, got %v", lexemes(toks))
	}
	for _, tok := range toks {
		if tok.Name != token.Identifier {
			t.Errorf("%q: expected IDENTIFIER, got %s", tok.Text(), tok.Name)
		}
	}
}

func TestStringClassification(t *testing.T) {
	pool := lexema.NewPool()
	pps := pp.NewLexer(`"ok" bad`, "test.c", pool, diag.NewBook()).All()
	book := diag.NewBook()
	toks := Lex(pps, book)
	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens, got %v", lexemes(toks))
	}
	if toks[0].Name != token.StringLiteral {
		t.Errorf("well-formed string misclassified: %s", toks[0].Name)
	}
}

// ppTokens lexes input into pp-tokens for direct classifier tests.
func ppTokens(t *testing.T, input string) []pptok.Token {
	t.Helper()
	pool := lexema.NewPool()
	book := diag.NewBook()
	return pp.NewLexer(input, "test.c", pool, book).All()
}
