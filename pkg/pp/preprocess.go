package pp

import (
	"strings"

	"github.com/ckeaney/kcc/pkg/diag"
	"github.com/ckeaney/kcc/pkg/lexema"
	"github.com/ckeaney/kcc/pkg/pptok"
)

// Options configures one preprocessing run.
type Options struct {
	// Filename names the unit in locations and diagnostics.
	Filename string
	// Defines are command-line macro definitions, NAME or NAME=VALUE.
	Defines []string
	// Undefines are names removed after Defines are applied.
	Undefines []string
	// Open handles #include; nil drops the directives after parsing.
	Open Opener
	// Lex and Eval are the collaborator entry points used to evaluate
	// #if controlling expressions.
	Lex  LexFunc
	Eval Evaluator
}

// Result carries the artifacts of a run: the raw pp-token stream, the
// parsed tree, the executed tree, and the emitted stream.
type Result struct {
	Lexed    []pptok.Token
	Tree     *Node
	Executed *Node
	Emitted  []pptok.Token
}

// Preprocess runs the full preprocessor over one translation unit:
// lex, parse, execute, emit. Diagnostics accumulate in book; the run
// always completes.
func Preprocess(input string, opts Options, pool *lexema.Pool, book *diag.Book) Result {
	lexed := NewLexer(input, opts.Filename, pool, book).All()
	tree := Parse(lexed, book)

	exec := &Executor{
		Symbols: NewSymbolTable(),
		Book:    book,
		Pool:    pool,
		Lex:     opts.Lex,
		Eval:    opts.Eval,
		Open:    opts.Open,
	}
	applyPredefines(exec, opts, pool, book)
	executed := exec.Execute(tree)

	eof := lexed[len(lexed)-1]
	return Result{
		Lexed:    lexed,
		Tree:     tree,
		Executed: executed,
		Emitted:  Flatten(executed, eof),
	}
}

// applyPredefines seeds the symbol table from command-line style
// NAME and NAME=VALUE definitions, then removes the undefines.
func applyPredefines(exec *Executor, opts Options, pool *lexema.Pool, book *diag.Book) {
	for _, def := range opts.Defines {
		name, value := def, "1"
		if i := strings.IndexByte(def, '='); i >= 0 {
			name, value = def[:i], def[i+1:]
		}
		if name == "" {
			continue
		}
		repl := newNode(ReplacementList, ReplacementList1)
		toks := lexReplacement(value, opts.Filename, pool, book)
		if n := ppTokensNode(toks); n != nil {
			repl.Children = append(repl.Children, n)
		}
		exec.Symbols.Define(pool.Intern(name), &Symbol{
			Kind:        MacroObject,
			Replacement: repl,
		})
	}
	for _, name := range opts.Undefines {
		exec.Symbols.Undefine(pool.Intern(name))
	}
}

// lexReplacement tokenizes a -D value as a replacement list.
func lexReplacement(value, filename string, pool *lexema.Pool, book *diag.Book) []pptok.Token {
	var toks []pptok.Token
	for _, tok := range NewLexer(value, filename, pool, book).All() {
		if tok.Name == pptok.EndOfFile || tok.Name == pptok.NewLine {
			continue
		}
		toks = append(toks, tok)
	}
	return toks
}
