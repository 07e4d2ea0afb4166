package pp

import (
	"strings"

	"github.com/ckeaney/kcc/pkg/diag"
	"github.com/ckeaney/kcc/pkg/lexema"
	"github.com/ckeaney/kcc/pkg/pptok"
	"github.com/ckeaney/kcc/pkg/source"
	"github.com/ckeaney/kcc/pkg/token"
)

// MaxIncludeDepth bounds nested #include processing.
const MaxIncludeDepth = 200

// LexFunc classifies pp-tokens into language tokens. It is the same
// language lexer the pipeline's back half uses, reused here for #if
// operands.
type LexFunc func(toks []pptok.Token, book *diag.Book) []token.Token

// Evaluator parses and folds a classified #if controlling expression
// to an integer. Identifiers that survive macro expansion fold to
// zero.
type Evaluator interface {
	Eval(toks []token.Token) (int64, error)
}

// Opener resolves and reads an included file. Search-path policy
// belongs to the implementation; the executor only splices whatever
// comes back. A nil Opener drops #include directives after parsing.
type Opener interface {
	Open(name string, angled bool) (content string, path string, err error)
}

// Executor rewrites a directive tree into one containing only text
// lines and non-directives, maintaining the macro symbol table as it
// goes. Each pass is a pure Tree -> Tree transformation; input nodes
// are never mutated.
type Executor struct {
	Symbols *SymbolTable
	Book    *diag.Book
	Pool    *lexema.Pool
	Lex     LexFunc
	Eval    Evaluator
	Open    Opener

	includeStack []string
}

// Execute returns the executed preprocessing-file: the same root shape
// with only surviving group-parts beneath it.
func (e *Executor) Execute(file *Node) *Node {
	out := newNode(PreprocessingFile, PreprocessingFile1)
	var survivors []*Node
	for _, c := range file.Children {
		if c.Name == Group {
			survivors = append(survivors, e.executeGroup(c)...)
		}
	}
	if len(survivors) > 0 {
		alt := Group1
		if len(survivors) > 1 {
			alt = Group2
		}
		out.Children = append(out.Children, newNode(Group, alt, survivors...))
	}
	return out
}

// executeGroup returns the surviving group-parts of a group, in
// source order.
func (e *Executor) executeGroup(group *Node) []*Node {
	var survivors []*Node
	for _, part := range group.Children {
		survivors = append(survivors, e.executeGroupPart(part)...)
	}
	return survivors
}

func (e *Executor) executeGroupPart(part *Node) []*Node {
	switch part.Alt {
	case GroupPart1:
		return e.executeIfSection(part.Children[0])
	case GroupPart2:
		return e.executeControlLine(part.Children[0])
	case GroupPart3:
		return []*Node{newNode(GroupPart, GroupPart3, e.expandTextLine(part.Children[0]))}
	case GroupPart4:
		return []*Node{part}
	}
	return nil
}

// executeIfSection evaluates the branches in order and returns the
// survivors of the first branch taken, or nothing.
func (e *Executor) executeIfSection(sec *Node) []*Node {
	ifGroup := sec.Children[0]
	if taken, inner := e.evaluateIfGroup(ifGroup); taken {
		if inner != nil {
			return e.executeGroup(inner)
		}
		return nil
	}
	for _, c := range sec.Children[1:] {
		switch c.Name {
		case ElifGroups:
			for _, elif := range c.Children {
				ce := elif.Children[0]
				if e.evaluateCondition(ce) {
					if inner := findChild(elif, Group); inner != nil {
						return e.executeGroup(inner)
					}
					return nil
				}
			}
		case ElseGroup:
			if inner := findChild(c, Group); inner != nil {
				return e.executeGroup(inner)
			}
			return nil
		}
	}
	return nil
}

func (e *Executor) evaluateIfGroup(ifGroup *Node) (bool, *Node) {
	inner := findChild(ifGroup, Group)
	switch ifGroup.Alt {
	case IfGroup1:
		return e.evaluateCondition(ifGroup.Children[0]), inner
	case IfGroup2:
		return e.Symbols.IsDefined(ifGroup.Children[0].Terminal.Lexeme), inner
	case IfGroup3:
		return !e.Symbols.IsDefined(ifGroup.Children[0].Terminal.Lexeme), inner
	}
	return false, inner
}

// evaluateCondition folds an #if/#elif controlling expression: the
// pp-tokens are flattened, `defined` is rewritten against the symbol
// table, macros are expanded, the result is classified by the
// language lexer, and the expression parser folds it to an integer.
// The branch is taken iff that integer is non-zero.
func (e *Executor) evaluateCondition(ce *Node) bool {
	toks := TokensOf(ce)
	loc := source.Location{}
	if len(toks) > 0 {
		loc = toks[0].Loc
	}
	toks = e.rewriteDefined(toks)
	toks = e.expandTokens(toks)

	if e.Lex == nil || e.Eval == nil {
		return false
	}
	classified := e.Lex(toks, e.Book)
	val, err := e.Eval.Eval(classified)
	if err != nil {
		e.Book.AddError(diag.ErrParserInvalidTranslationUnit,
			"This controlling expression could not be evaluated.", loc)
		return false
	}
	return val != 0
}

// rewriteDefined replaces `defined X` and `defined ( X )` with 1 or 0
// before macro expansion, so expansion cannot disturb the operand.
func (e *Executor) rewriteDefined(toks []pptok.Token) []pptok.Token {
	var out []pptok.Token
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		if tok.Name != pptok.Identifier || tok.Text() != "defined" {
			out = append(out, tok)
			continue
		}
		name, width := definedOperand(toks[i+1:])
		if name == nil {
			out = append(out, tok)
			continue
		}
		text := "0"
		if e.Symbols.IsDefined(name) {
			text = "1"
		}
		loc := tok.Loc
		loc.Length = 1
		out = append(out, pptok.Token{
			Lexeme: e.Pool.Intern(text),
			Name:   pptok.PPNumber,
			Loc:    loc,
			Form:   pptok.PPNumber1,
		})
		i += width
	}
	return out
}

// definedOperand matches `X` or `( X )` at the head of rest, returning
// the operand lexeme and how many tokens the form used.
func definedOperand(rest []pptok.Token) (*lexema.Lexeme, int) {
	if len(rest) == 0 {
		return nil, 0
	}
	if rest[0].Name == pptok.Identifier {
		return rest[0].Lexeme, 1
	}
	if rest[0].Form == pptok.OpenParen && len(rest) >= 3 &&
		rest[1].Name == pptok.Identifier && rest[2].Form == pptok.CloseParen {
		return rest[1].Lexeme, 3
	}
	return nil, 0
}

// expandTextLine returns a new text-line whose pp-tokens have macro
// invocations replaced.
func (e *Executor) expandTextLine(line *Node) *Node {
	out := newNode(TextLine, TextLine1)
	for _, c := range line.Children {
		switch c.Name {
		case PPTokens:
			expanded := e.expandTokens(TokensOf(c))
			if n := ppTokensNode(expanded); n != nil {
				out.Children = append(out.Children, n)
			}
		default:
			out.Children = append(out.Children, c)
		}
	}
	return out
}

// expandTokens performs one expansion pass: each identifier bound as a
// macro is replaced by its replacement list, spliced in place. The
// inserted tokens are not rescanned.
func (e *Executor) expandTokens(toks []pptok.Token) []pptok.Token {
	var out []pptok.Token
	for i := 0; i < len(toks); i++ {
		tok := toks[i]
		if tok.Name != pptok.Identifier {
			out = append(out, tok)
			continue
		}
		sym := e.Symbols.Lookup(tok.Lexeme)
		if sym == nil {
			out = append(out, tok)
			continue
		}
		switch sym.Kind {
		case MacroObject:
			out = append(out, TokensOf(sym.Replacement)...)
		case MacroFunction:
			if i+1 >= len(toks) || toks[i+1].Form != pptok.OpenParen {
				// Function-like macro name without arguments is
				// ordinary text.
				out = append(out, tok)
				continue
			}
			args, consumed, ok := scanArguments(toks[i+1:])
			if !ok {
				e.Book.AddError(diag.Undefined,
					"Unterminated macro argument list.", tok.Loc)
				out = append(out, tok)
				continue
			}
			out = append(out, e.substitute(sym, args)...)
			i += consumed
		}
	}
	return out
}

// scanArguments consumes `( ... )` starting at an open paren,
// splitting on commas at depth one. Returns the argument token runs
// and how many tokens were consumed.
func scanArguments(toks []pptok.Token) ([][]pptok.Token, int, bool) {
	depth := 0
	var args [][]pptok.Token
	var cur []pptok.Token
	for i, tok := range toks {
		switch tok.Form {
		case pptok.OpenParen:
			depth++
			if depth > 1 {
				cur = append(cur, tok)
			}
		case pptok.CloseParen:
			depth--
			if depth == 0 {
				if len(cur) > 0 || len(args) > 0 {
					args = append(args, cur)
				}
				return args, i + 1, true
			}
			cur = append(cur, tok)
		case pptok.Comma:
			if depth == 1 {
				args = append(args, cur)
				cur = nil
			} else {
				cur = append(cur, tok)
			}
		default:
			cur = append(cur, tok)
		}
	}
	return nil, 0, false
}

// substitute rewrites a function-like macro's replacement list,
// replacing parameter names with the scanned arguments and
// __VA_ARGS__ with the trailing arguments of a variadic invocation.
func (e *Executor) substitute(sym *Symbol, args [][]pptok.Token) []pptok.Token {
	index := make(map[*lexema.Lexeme]int, len(sym.Parameters))
	for i, p := range sym.Parameters {
		index[p] = i
	}
	var out []pptok.Token
	for _, tok := range TokensOf(sym.Replacement) {
		if tok.Name == pptok.Identifier {
			if i, ok := index[tok.Lexeme]; ok {
				if i < len(args) {
					out = append(out, args[i]...)
				}
				continue
			}
			if sym.Variadic && tok.Text() == "__VA_ARGS__" {
				rest := args
				if len(sym.Parameters) < len(rest) {
					rest = rest[len(sym.Parameters):]
				} else {
					rest = nil
				}
				for j, arg := range rest {
					if j > 0 {
						comma := tok.Loc
						comma.Length = 1
						out = append(out, pptok.Token{
							Lexeme: e.Pool.Intern(","),
							Name:   pptok.Punctuator,
							Loc:    comma,
							Form:   pptok.Comma,
						})
					}
					out = append(out, arg...)
				}
				continue
			}
		}
		out = append(out, tok)
	}
	return out
}

func (e *Executor) executeControlLine(line *Node) []*Node {
	switch line.Alt {
	case ControlLine1:
		return e.executeInclude(line)
	case ControlLine2, ControlLine3, ControlLine4, ControlLine5:
		e.executeDefine(line)
	case ControlLine6:
		e.Symbols.Undefine(line.Children[0].Terminal.Lexeme)
	case ControlLine7, ControlLine9, ControlLine10:
		// #line and #pragma are parsed but have no effect here; the
		// directive simply leaves the stream.
	case ControlLine8:
		e.executeError(line)
	}
	return nil
}

// executeError reports a #error directive through the book with the
// directive's own pp-tokens as the message.
func (e *Executor) executeError(line *Node) {
	toks := TokensOf(line)
	loc := source.Location{}
	var parts []string
	for _, t := range toks {
		parts = append(parts, t.Text())
	}
	if len(toks) > 0 {
		loc = toks[0].Loc
	}
	e.Book.AddError(diag.Undefined, "#error "+strings.Join(parts, " "), loc)
}

func (e *Executor) executeDefine(line *Node) {
	nameLeaf := line.Children[0]
	name := nameLeaf.Terminal.Lexeme

	sym := &Symbol{Kind: MacroObject}
	if line.Alt != ControlLine2 {
		sym.Kind = MacroFunction
		sym.Variadic = line.Alt == ControlLine4 || line.Alt == ControlLine5
		if idList := findChild(line, IdentifierList); idList != nil {
			for _, id := range idList.Children {
				sym.Parameters = append(sym.Parameters, id.Terminal.Lexeme)
			}
		}
	}
	sym.Replacement = findChild(line, ReplacementList)

	if e.Symbols.IsDefined(name) {
		e.Book.AddWarning(diag.Undefined,
			"Macro redefined; the previous definition is discarded.",
			nameLeaf.Terminal.Loc)
	}
	e.Symbols.Define(name, sym)
}

// executeInclude opens the named unit through the Opener, runs the
// whole front half of the pipeline over it with the same symbol table
// and book, and splices the surviving group-parts in place of the
// directive. Without an Opener the directive is dropped.
func (e *Executor) executeInclude(line *Node) []*Node {
	if e.Open == nil {
		return nil
	}
	toks := TokensOf(line)
	if len(toks) == 0 {
		return nil
	}
	name, angled, ok := headerNameOf(toks[0])
	if !ok {
		e.Book.AddError(diag.ErrPPInvalidHeader,
			"This header name could not be recognised.", toks[0].Loc)
		return nil
	}

	if len(e.includeStack) >= MaxIncludeDepth {
		e.Book.AddError(diag.Undefined, "#include nested too deeply.", toks[0].Loc)
		return nil
	}
	content, path, err := e.Open.Open(name, angled)
	if err != nil {
		e.Book.AddError(diag.ErrPPInvalidHeader,
			"Could not open this header: "+err.Error(), toks[0].Loc)
		return nil
	}
	for _, active := range e.includeStack {
		if active == path {
			e.Book.AddError(diag.Undefined,
				"#include cycle detected for "+path+".", toks[0].Loc)
			return nil
		}
	}

	e.includeStack = append(e.includeStack, path)
	defer func() { e.includeStack = e.includeStack[:len(e.includeStack)-1] }()

	lexed := NewLexer(content, path, e.Pool, e.Book).All()
	tree := Parse(lexed, e.Book)
	var survivors []*Node
	for _, c := range tree.Children {
		if c.Name == Group {
			survivors = append(survivors, e.executeGroup(c)...)
		}
	}
	return survivors
}

// headerNameOf extracts the file name from a header-name pp-token,
// distinguishing the <...> and "..." forms.
func headerNameOf(tok pptok.Token) (name string, angled bool, ok bool) {
	text := tok.Text()
	if tok.Name == pptok.HeaderName && len(text) >= 2 {
		return text[1 : len(text)-1], text[0] == '<', true
	}
	// A quoted include may arrive as a plain string literal when the
	// lexer was not in header mode.
	if tok.Name == pptok.StringLiteral && len(text) >= 2 {
		return text[1 : len(text)-1], false, true
	}
	return "", false, false
}

func findChild(n *Node, name NodeName) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}
