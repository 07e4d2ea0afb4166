package pp

import (
	"strings"
	"testing"

	"github.com/ckeaney/kcc/pkg/cexpr"
	"github.com/ckeaney/kcc/pkg/diag"
	"github.com/ckeaney/kcc/pkg/lexema"
	"github.com/ckeaney/kcc/pkg/lexer"
	"github.com/ckeaney/kcc/pkg/pptok"
)

// runPP preprocesses input and returns the emitted lexemes (EOF
// excluded) and the book.
func runPP(t *testing.T, input string, opts Options) ([]string, *diag.Book) {
	t.Helper()
	pool := lexema.NewPool()
	book := diag.NewBook()
	opts.Filename = "test.c"
	opts.Lex = lexer.Lex
	opts.Eval = cexpr.Evaluator{}
	result := Preprocess(input, opts, pool, book)

	var out []string
	for _, tok := range result.Emitted {
		if tok.Name == pptok.EndOfFile {
			break
		}
		out = append(out, tok.Text())
	}
	return out, book
}

func expectTokens(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestExecutePlainText(t *testing.T) {
	got, book := runPP(t, "int x = 1;\n", Options{})
	expectTokens(t, got, "int", "x", "=", "1", ";")
	if !book.Empty() {
		t.Errorf("unexpected diagnostics: %v", book.Errors())
	}
}

func TestExecuteObjectMacro(t *testing.T) {
	got, _ := runPP(t, "#define N 42\nN+N\n", Options{})
	expectTokens(t, got, "42", "+", "42")
}

func TestExecuteIfZeroElse(t *testing.T) {
	got, _ := runPP(t, "#if 0\nA\n#else\nB\n#endif\n", Options{})
	expectTokens(t, got, "B")
}

func TestExecuteIfNonZero(t *testing.T) {
	got, _ := runPP(t, "#if 2 > 1\nyes\n#else\nno\n#endif\n", Options{})
	expectTokens(t, got, "yes")
}

func TestExecuteElifChain(t *testing.T) {
	src := "#if 0\na\n#elif 0\nb\n#elif 1\nc\n#elif 1\nd\n#else\ne\n#endif\n"
	got, _ := runPP(t, src, Options{})
	expectTokens(t, got, "c")
}

func TestExecuteIfdef(t *testing.T) {
	src := "#define FOO 1\n#ifdef FOO\nyes\n#endif\n#ifdef BAR\nno\n#endif\n"
	got, _ := runPP(t, src, Options{})
	expectTokens(t, got, "yes")
}

func TestExecuteIfndef(t *testing.T) {
	src := "#ifndef GUARD\nbody\n#endif\n"
	got, _ := runPP(t, src, Options{})
	expectTokens(t, got, "body")
}

func TestExecuteUndef(t *testing.T) {
	src := "#define N 1\n#undef N\n#ifdef N\na\n#else\nb\n#endif\nN\n"
	got, _ := runPP(t, src, Options{})
	// N is no longer a macro, so the trailing use stays literal.
	expectTokens(t, got, "b", "N")
}

func TestExecuteUndefOfUnknownIsNoop(t *testing.T) {
	got, book := runPP(t, "#undef NEVER_DEFINED\nx\n", Options{})
	expectTokens(t, got, "x")
	if !book.Empty() {
		t.Errorf("unexpected diagnostics: %v", book.Errors())
	}
}

func TestExecuteDefinedOperator(t *testing.T) {
	src := "#define FOO 1\n#if defined(FOO) && !defined BAR\nboth\n#endif\n"
	got, _ := runPP(t, src, Options{})
	expectTokens(t, got, "both")
}

func TestExecuteMacroInCondition(t *testing.T) {
	src := "#define LEVEL 3\n#if LEVEL >= 2\nhigh\n#else\nlow\n#endif\n"
	got, _ := runPP(t, src, Options{})
	expectTokens(t, got, "high")
}

func TestExecuteUndefinedIdentifierFoldsToZero(t *testing.T) {
	got, _ := runPP(t, "#if MISSING\na\n#else\nb\n#endif\n", Options{})
	expectTokens(t, got, "b")
}

func TestExecuteNestedConditionals(t *testing.T) {
	src := "#if 1\n#if 0\ninner0\n#else\ninner1\n#endif\nouter\n#endif\n"
	got, _ := runPP(t, src, Options{})
	expectTokens(t, got, "inner1", "outer")
}

func TestExecuteDeadBranchLeavesNoDirectives(t *testing.T) {
	src := "#if 0\n#define HIDDEN 1\n#endif\n#ifdef HIDDEN\nbad\n#else\ngood\n#endif\n"
	got, _ := runPP(t, src, Options{})
	// The #define inside the dead branch must not execute.
	expectTokens(t, got, "good")
}

func TestExecuteFunctionMacro(t *testing.T) {
	got, _ := runPP(t, "#define ADD(a, b) a + b\nADD(1, 2)\n", Options{})
	expectTokens(t, got, "1", "+", "2")
}

func TestExecuteFunctionMacroNestedParens(t *testing.T) {
	got, _ := runPP(t, "#define CALL(f, x) f(x)\nCALL(g, (1, 2))\n", Options{})
	expectTokens(t, got, "g", "(", "(", "1", ",", "2", ")", ")")
}

func TestExecuteFunctionMacroNameAlone(t *testing.T) {
	// Without an argument list the name is ordinary text.
	got, _ := runPP(t, "#define F(x) x\nF\n", Options{})
	expectTokens(t, got, "F")
}

func TestExecuteVariadicMacro(t *testing.T) {
	got, _ := runPP(t, "#define LOG(fmt, ...) log(fmt, __VA_ARGS__)\nLOG(s, 1, 2)\n", Options{})
	expectTokens(t, got, "log", "(", "s", ",", "1", ",", "2", ")")
}

func TestExecuteNoReexpansion(t *testing.T) {
	// One pass only: the inserted replacement is not rescanned.
	got, _ := runPP(t, "#define A B\n#define B A\nA\n", Options{})
	expectTokens(t, got, "B")
}

func TestExecuteRedefinitionWarns(t *testing.T) {
	got, book := runPP(t, "#define N 1\n#define N 2\nN\n", Options{})
	expectTokens(t, got, "2")
	if len(book.Warnings()) != 1 {
		t.Errorf("expected one redefinition warning, got %v", book.Warnings())
	}
}

func TestExecuteErrorDirective(t *testing.T) {
	_, book := runPP(t, "#error something is wrong\n", Options{})
	errs := book.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected one diagnostic, got %v", errs)
	}
	if !strings.Contains(errs[0].Message, "something is wrong") {
		t.Errorf("message should carry the directive tokens, got %q", errs[0].Message)
	}
}

func TestExecuteLineAndPragmaDropped(t *testing.T) {
	got, book := runPP(t, "#line 99 \"other.c\"\n#pragma pack(1)\nx\n", Options{})
	expectTokens(t, got, "x")
	if !book.Empty() {
		t.Errorf("unexpected diagnostics: %v", book.Errors())
	}
}

func TestExecuteIncludeDroppedWithoutOpener(t *testing.T) {
	got, book := runPP(t, "#include <stdio.h>\nx\n", Options{})
	expectTokens(t, got, "x")
	if !book.Empty() {
		t.Errorf("unexpected diagnostics: %v", book.Errors())
	}
}

func TestExecutePredefines(t *testing.T) {
	got, _ := runPP(t, "#ifdef FOO\nFOO\n#endif\n", Options{Defines: []string{"FOO=7"}})
	expectTokens(t, got, "7")

	got, _ = runPP(t, "#ifdef FOO\na\n#else\nb\n#endif\n",
		Options{Defines: []string{"FOO"}, Undefines: []string{"FOO"}})
	expectTokens(t, got, "b")
}

func TestExecuteOnlyTextSurvives(t *testing.T) {
	src := "#define X 1\n#if X\nkeep\n#endif\n#undef X\n"
	pool := lexema.NewPool()
	book := diag.NewBook()
	result := Preprocess(src, Options{
		Filename: "test.c",
		Lex:      lexer.Lex,
		Eval:     cexpr.Evaluator{},
	}, pool, book)

	var check func(n *Node)
	check = func(n *Node) {
		if n.Name == GroupPart && (n.Alt == GroupPart1 || n.Alt == GroupPart2) {
			t.Errorf("executed tree still contains %s", n.Alt)
		}
		for _, c := range n.Children {
			check(c)
		}
	}
	check(result.Executed)
}
