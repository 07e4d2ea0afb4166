package pp

import (
	"testing"

	"github.com/ckeaney/kcc/pkg/diag"
	"github.com/ckeaney/kcc/pkg/lexema"
	"github.com/ckeaney/kcc/pkg/pptok"
)

// TestFlattenRoundTrip checks that for directive-free input, the
// emitted stream equals the lexed stream with line structure removed.
func TestFlattenRoundTrip(t *testing.T) {
	inputs := []string{
		"int main(void) { return 0; }\n",
		"a b c\nd e f\n",
		"x\n\n\ny\n",
		"'c' \"str\" 1.5 ... <<=\n",
	}
	for _, input := range inputs {
		pool := lexema.NewPool()
		book := diag.NewBook()
		lexed := NewLexer(input, "test.c", pool, book).All()
		tree := Parse(lexed, book)
		exec := &Executor{Symbols: NewSymbolTable(), Book: book, Pool: pool}
		emitted := Flatten(exec.Execute(tree), lexed[len(lexed)-1])

		var want []string
		for _, tok := range lexed {
			if tok.Name == pptok.NewLine || tok.Name == pptok.EndOfFile {
				continue
			}
			want = append(want, tok.Text())
		}
		var got []string
		for _, tok := range emitted {
			if tok.Name == pptok.EndOfFile {
				continue
			}
			got = append(got, tok.Text())
		}
		if len(got) != len(want) {
			t.Errorf("%q: expected %v, got %v", input, want, got)
			continue
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%q: token %d: expected %q, got %q", input, i, want[i], got[i])
			}
		}
	}
}

func TestFlattenEndsWithEOF(t *testing.T) {
	pool := lexema.NewPool()
	book := diag.NewBook()
	lexed := NewLexer("x\n", "test.c", pool, book).All()
	tree := Parse(lexed, book)
	exec := &Executor{Symbols: NewSymbolTable(), Book: book, Pool: pool}
	emitted := Flatten(exec.Execute(tree), lexed[len(lexed)-1])

	if emitted[len(emitted)-1].Name != pptok.EndOfFile {
		t.Errorf("emitted stream must end with EOF")
	}
}

func TestTokensOfCollectsInOrder(t *testing.T) {
	pool := lexema.NewPool()
	book := diag.NewBook()
	lexed := NewLexer("a b c\n", "test.c", pool, book).All()
	tree := Parse(lexed, book)

	toks := TokensOf(tree)
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %v", texts(toks))
	}
	for i, want := range []string{"a", "b", "c"} {
		if toks[i].Text() != want {
			t.Errorf("token %d: expected %q, got %q", i, want, toks[i].Text())
		}
	}
}
