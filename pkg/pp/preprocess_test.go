package pp

import (
	"testing"

	"github.com/ckeaney/kcc/pkg/cexpr"
	"github.com/ckeaney/kcc/pkg/diag"
	"github.com/ckeaney/kcc/pkg/lexema"
	"github.com/ckeaney/kcc/pkg/lexer"
	"github.com/ckeaney/kcc/pkg/pptok"
)

func TestPreprocessResultCarriesAllStages(t *testing.T) {
	pool := lexema.NewPool()
	book := diag.NewBook()
	result := Preprocess("#define N 1\nN\n", Options{
		Filename: "test.c",
		Lex:      lexer.Lex,
		Eval:     cexpr.Evaluator{},
	}, pool, book)

	if result.Lexed[len(result.Lexed)-1].Name != pptok.EndOfFile {
		t.Errorf("lexed stream must end with EOF")
	}
	if result.Tree == nil || result.Tree.Name != PreprocessingFile {
		t.Errorf("missing parse tree")
	}
	if result.Executed == nil || result.Executed.Name != PreprocessingFile {
		t.Errorf("missing executed tree")
	}
	if len(result.Emitted) != 2 { // "1" + EOF
		t.Errorf("expected [1 EOF], got %d tokens", len(result.Emitted))
	}
}

func TestPreprocessDiagnosticOrder(t *testing.T) {
	// Lexical diagnostics come before execution diagnostics; the
	// order of the book is observable.
	pool := lexema.NewPool()
	book := diag.NewBook()
	Preprocess("@\n#error later\n", Options{
		Filename: "test.c",
		Lex:      lexer.Lex,
		Eval:     cexpr.Evaluator{},
	}, pool, book)

	errs := book.Errors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
	if errs[0].Code != diag.ErrPPInvalidPunctuator {
		t.Errorf("first error should be the lexical one, got %v", errs[0].Code)
	}
	if errs[0].Loc.Line != 1 || errs[1].Loc.Line != 2 {
		t.Errorf("diagnostic locations wrong: %v", errs)
	}
}

func TestPreprocessAlwaysCompletes(t *testing.T) {
	// Errors are non-fatal; the pipeline runs to the end and keeps
	// whatever it could salvage.
	got, book := runPP(t, "@ $ `\nstill here\n", Options{})
	if len(book.Errors()) != 3 {
		t.Errorf("expected 3 punctuator errors, got %v", book.Errors())
	}
	found := false
	for _, text := range got {
		if text == "still" {
			found = true
		}
	}
	if !found {
		t.Errorf("later lines should survive earlier errors: %v", got)
	}
}
