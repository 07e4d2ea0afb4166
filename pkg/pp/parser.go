package pp

import (
	"github.com/ckeaney/kcc/pkg/diag"
	"github.com/ckeaney/kcc/pkg/pptok"
)

// maxChildren bounds the work list a single production may accumulate.
// The largest production (function-like #define) fills five slots;
// sixteen leaves headroom.
const maxChildren = 16

// parser walks a pre-lexed pp-token stream with backtracking. The
// token slice always ends with an EOF token.
type parser struct {
	toks []pptok.Token
	pos  int
	book *diag.Book
}

// Parse builds the directive tree for one translation unit. The input
// must be the full pp-token stream including NEW_LINE tokens and a
// final EOF. The returned tree is always non-nil; # lines that fit no
// directive shape degrade to # non-directives.
func Parse(toks []pptok.Token, book *diag.Book) *Node {
	p := &parser{toks: toks, book: book}
	file := p.parsePreprocessingFile()
	if !p.atEOF() {
		// Usually a stray #elif/#else/#endif with no open section.
		tok := p.peek()
		book.AddError(diag.Undefined,
			"Unexpected directive here. Is a matching #if missing?", tok.Loc)
	}
	return file
}

func (p *parser) peek() pptok.Token {
	if p.pos >= len(p.toks) {
		return pptok.Token{Name: pptok.EndOfFile}
	}
	return p.toks[p.pos]
}

func (p *parser) next() pptok.Token {
	tok := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return tok
}

func (p *parser) atEOF() bool {
	return p.peek().Name == pptok.EndOfFile
}

// isHash reports whether tok introduces a directive.
func isHash(tok pptok.Token) bool {
	return tok.Name == pptok.Punctuator &&
		(tok.Form == pptok.Hashtag || tok.Form == pptok.BigraphHashtag)
}

// directiveName returns the directive identifier at # <name>, without
// consuming anything. Empty if the line is not shaped like that.
func (p *parser) directiveName() string {
	if !isHash(p.peek()) {
		return ""
	}
	if p.pos+1 < len(p.toks) && p.toks[p.pos+1].Name == pptok.Identifier {
		return p.toks[p.pos+1].Text()
	}
	return ""
}

func (p *parser) parsePreprocessingFile() *Node {
	file := newNode(PreprocessingFile, PreprocessingFile1)
	if g := p.parseGroup(); g != nil {
		file.Children = append(file.Children, g)
	}
	return file
}

// parseGroup collects one or more group-parts. The grammar's left
// recursion flattens into a child list.
func (p *parser) parseGroup() *Node {
	var parts []*Node
	for !p.atEOF() {
		// A group inside an if-section must stop before the
		// section's own #elif/#else/#endif.
		switch p.directiveName() {
		case "elif", "else", "endif":
			goto done
		}
		part := p.parseGroupPart()
		if part == nil {
			break
		}
		parts = append(parts, part)
	}
done:
	if len(parts) == 0 {
		return nil
	}
	alt := Group1
	if len(parts) > 1 {
		alt = Group2
	}
	return newNode(Group, alt, parts...)
}

func (p *parser) parseGroupPart() *Node {
	if n := p.parseIfSection(); n != nil {
		return newNode(GroupPart, GroupPart1, n)
	}
	if n := p.parseControlLine(); n != nil {
		return newNode(GroupPart, GroupPart2, n)
	}
	if n := p.parseTextLine(); n != nil {
		return newNode(GroupPart, GroupPart3, n)
	}
	if n := p.parseHashNonDirective(); n != nil {
		return newNode(GroupPart, GroupPart4, n)
	}
	return nil
}

func (p *parser) parseIfSection() *Node {
	mark := p.pos
	children := make([]*Node, 0, maxChildren)

	ifGroup := p.parseIfGroup()
	if ifGroup == nil {
		p.pos = mark
		return nil
	}
	children = append(children, ifGroup)
	if n := p.parseElifGroups(); n != nil {
		children = append(children, n)
	}
	if n := p.parseElseGroup(); n != nil {
		children = append(children, n)
	}
	endif := p.parseEndifLine()
	if endif == nil {
		p.pos = mark
		return nil
	}
	children = append(children, endif)
	return newNode(IfSection, IfSection1, children...)
}

func (p *parser) parseIfGroup() *Node {
	mark := p.pos
	name := p.directiveName()

	var alt NodeAlt
	switch name {
	case "if":
		alt = IfGroup1
	case "ifdef":
		alt = IfGroup2
	case "ifndef":
		alt = IfGroup3
	default:
		return nil
	}
	p.next() // #
	p.next() // directive identifier

	children := make([]*Node, 0, maxChildren)
	switch alt {
	case IfGroup1:
		ce := p.parseConstantExpression()
		if ce == nil {
			p.pos = mark
			return nil
		}
		children = append(children, ce)
	default:
		if p.peek().Name != pptok.Identifier {
			p.pos = mark
			return nil
		}
		children = append(children, tokenLeaf(p.next()))
	}

	nl := p.parseNewLine()
	if nl == nil {
		p.pos = mark
		return nil
	}
	children = append(children, nl)
	if g := p.parseGroup(); g != nil {
		children = append(children, g)
	}
	return newNode(IfGroup, alt, children...)
}

// parseConstantExpression collects the controlling pp-tokens of an
// #if or #elif up to the line's end.
func (p *parser) parseConstantExpression() *Node {
	toks := p.parsePPTokenRun()
	if len(toks) == 0 {
		return nil
	}
	return newNode(ConstantExpression, ConstantExpression1, ppTokensNode(toks))
}

func (p *parser) parseElifGroups() *Node {
	var groups []*Node
	for {
		g := p.parseElifGroup()
		if g == nil {
			break
		}
		groups = append(groups, g)
	}
	if len(groups) == 0 {
		return nil
	}
	alt := ElifGroups1
	if len(groups) > 1 {
		alt = ElifGroups2
	}
	return newNode(ElifGroups, alt, groups...)
}

func (p *parser) parseElifGroup() *Node {
	mark := p.pos
	if p.directiveName() != "elif" {
		return nil
	}
	p.next() // #
	p.next() // elif

	children := make([]*Node, 0, maxChildren)
	ce := p.parseConstantExpression()
	if ce == nil {
		p.pos = mark
		return nil
	}
	children = append(children, ce)
	nl := p.parseNewLine()
	if nl == nil {
		p.pos = mark
		return nil
	}
	children = append(children, nl)
	if g := p.parseGroup(); g != nil {
		children = append(children, g)
	}
	return newNode(ElifGroup, ElifGroup1, children...)
}

func (p *parser) parseElseGroup() *Node {
	mark := p.pos
	if p.directiveName() != "else" {
		return nil
	}
	p.next() // #
	p.next() // else

	children := make([]*Node, 0, maxChildren)
	nl := p.parseNewLine()
	if nl == nil {
		p.pos = mark
		return nil
	}
	children = append(children, nl)
	if g := p.parseGroup(); g != nil {
		children = append(children, g)
	}
	return newNode(ElseGroup, ElseGroup1, children...)
}

func (p *parser) parseEndifLine() *Node {
	mark := p.pos
	if p.directiveName() != "endif" {
		return nil
	}
	p.next() // #
	p.next() // endif
	nl := p.parseNewLine()
	if nl == nil {
		p.pos = mark
		return nil
	}
	return newNode(EndifLine, EndifLine1, nl)
}

func (p *parser) parseControlLine() *Node {
	mark := p.pos
	if !isHash(p.peek()) {
		return nil
	}

	// # alone on a line.
	if p.pos+1 < len(p.toks) &&
		(p.toks[p.pos+1].Name == pptok.NewLine || p.toks[p.pos+1].Name == pptok.EndOfFile) {
		p.next()
		nl := p.parseNewLine()
		return newNode(ControlLine, ControlLine10, nl)
	}

	name := p.directiveName()
	switch name {
	case "include":
		return p.parseControlTail(mark, ControlLine1, true)
	case "define":
		return p.parseDefine(mark)
	case "undef":
		return p.parseUndef(mark)
	case "line":
		return p.parseControlTail(mark, ControlLine7, true)
	case "error":
		return p.parseControlTail(mark, ControlLine8, false)
	case "pragma":
		return p.parseControlTail(mark, ControlLine9, false)
	default:
		return nil
	}
}

// parseControlTail finishes # include/line/error/pragma: a pp-token
// run (required or optional) and a new-line.
func (p *parser) parseControlTail(mark int, alt NodeAlt, required bool) *Node {
	p.next() // #
	p.next() // directive identifier

	children := make([]*Node, 0, maxChildren)
	toks := p.parsePPTokenRun()
	if required && len(toks) == 0 {
		p.pos = mark
		return nil
	}
	if n := ppTokensNode(toks); n != nil {
		children = append(children, n)
	}
	nl := p.parseNewLine()
	if nl == nil {
		p.pos = mark
		return nil
	}
	children = append(children, nl)
	return newNode(ControlLine, alt, children...)
}

func (p *parser) parseDefine(mark int) *Node {
	p.next() // #
	p.next() // define

	if p.peek().Name != pptok.Identifier {
		p.pos = mark
		return nil
	}
	macroName := p.next()
	children := make([]*Node, 0, maxChildren)
	children = append(children, tokenLeaf(macroName))

	alt := ControlLine2
	if lp, ok := p.parseLparen(macroName); ok {
		children = append(children, lp)
		var idList *Node
		variadic := false

		if p.peek().Name == pptok.Identifier {
			idList = p.parseIdentifierList()
		}
		if p.peek().Form == pptok.TripleDot {
			p.next()
			variadic = true
		}
		if p.peek().Form != pptok.CloseParen {
			p.pos = mark
			return nil
		}
		p.next() // )

		switch {
		case variadic && idList != nil:
			alt = ControlLine5
		case variadic:
			alt = ControlLine4
		default:
			alt = ControlLine3
		}
		if idList != nil {
			children = append(children, idList)
		}
	}

	children = append(children, p.parseReplacementList())
	nl := p.parseNewLine()
	if nl == nil {
		p.pos = mark
		return nil
	}
	children = append(children, nl)
	return newNode(ControlLine, alt, children...)
}

// parseLparen matches the ( that opens a function-like macro's
// parameter list. It only counts if it sits immediately after the
// macro name, with no whitespace between.
func (p *parser) parseLparen(macroName pptok.Token) (*Node, bool) {
	tok := p.peek()
	if tok.Form != pptok.OpenParen {
		return nil, false
	}
	adjacent := tok.Loc.Line == macroName.Loc.Line &&
		tok.Loc.Column == macroName.Loc.Column+macroName.Loc.Length
	if !adjacent {
		return nil, false
	}
	return newLeaf(Lparen, Lparen1, p.next()), true
}

func (p *parser) parseIdentifierList() *Node {
	var ids []*Node
	for p.peek().Name == pptok.Identifier {
		ids = append(ids, tokenLeaf(p.next()))
		if p.peek().Form != pptok.Comma {
			break
		}
		// A trailing `, ...` belongs to the variadic marker, not
		// the list.
		if p.pos+1 < len(p.toks) && p.toks[p.pos+1].Form == pptok.TripleDot {
			p.next()
			break
		}
		p.next()
	}
	if len(ids) == 0 {
		return nil
	}
	alt := IdentifierList1
	if len(ids) > 1 {
		alt = IdentifierList2
	}
	return newNode(IdentifierList, alt, ids...)
}

// parseReplacementList wraps the (possibly empty) remainder of a
// #define line.
func (p *parser) parseReplacementList() *Node {
	toks := p.parsePPTokenRun()
	n := newNode(ReplacementList, ReplacementList1)
	if t := ppTokensNode(toks); t != nil {
		n.Children = append(n.Children, t)
	}
	return n
}

func (p *parser) parseUndef(mark int) *Node {
	p.next() // #
	p.next() // undef
	if p.peek().Name != pptok.Identifier {
		p.pos = mark
		return nil
	}
	id := tokenLeaf(p.next())
	nl := p.parseNewLine()
	if nl == nil {
		p.pos = mark
		return nil
	}
	return newNode(ControlLine, ControlLine6, id, nl)
}

// parseTextLine matches a line of ordinary pp-tokens. Lines opening
// with # are never text; they fall through to # non-directive.
func (p *parser) parseTextLine() *Node {
	if isHash(p.peek()) {
		return nil
	}
	mark := p.pos
	children := make([]*Node, 0, maxChildren)
	toks := p.parsePPTokenRun()
	if n := ppTokensNode(toks); n != nil {
		children = append(children, n)
	}
	nl := p.parseNewLine()
	if nl == nil {
		p.pos = mark
		return nil
	}
	children = append(children, nl)
	return newNode(TextLine, TextLine1, children...)
}

// parseHashNonDirective matches # followed by pp-tokens that name no
// directive.
func (p *parser) parseHashNonDirective() *Node {
	mark := p.pos
	if !isHash(p.peek()) {
		return nil
	}
	p.next() // #
	toks := p.parsePPTokenRun()
	if len(toks) == 0 {
		p.pos = mark
		return nil
	}
	nl := p.parseNewLine()
	if nl == nil {
		p.pos = mark
		return nil
	}
	return newNode(NonDirective, NonDirective1, ppTokensNode(toks), nl)
}

// parsePPTokenRun consumes pp-tokens up to the next new-line or EOF.
func (p *parser) parsePPTokenRun() []pptok.Token {
	var toks []pptok.Token
	for {
		tok := p.peek()
		if tok.Name == pptok.NewLine || tok.Name == pptok.EndOfFile {
			return toks
		}
		toks = append(toks, p.next())
	}
}

func (p *parser) parseNewLine() *Node {
	tok := p.peek()
	if tok.Name != pptok.NewLine {
		// A file may end without a final newline; treat EOF as the
		// line terminator so the last line still parses.
		if tok.Name == pptok.EndOfFile {
			return newLeaf(NewLine, NewLine1, tok)
		}
		return nil
	}
	return newLeaf(NewLine, NewLine1, p.next())
}
