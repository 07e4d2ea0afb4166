// Package cexpr parses and folds preprocessor constant expressions.
// It provides the two entry points the preprocessor calls out to when
// evaluating an #if: Parse builds a small expression tree from
// classified tokens, and Fold reduces that tree to an integer.
package cexpr

import (
	"fmt"

	"github.com/ckeaney/kcc/pkg/token"
)

// Expr is a node of a parsed constant expression.
type Expr interface{}

// IntLit is an integer or character constant operand.
type IntLit struct {
	Val int64
}

// Ident is an identifier that survived macro expansion; it folds to
// zero, the way undefined macros do in #if.
type Ident struct {
	Name string
}

// Unary applies !, -, + or ~ to an operand.
type Unary struct {
	Op token.Form
	X  Expr
}

// Binary applies an arithmetic, shift, relational, equality, bitwise
// or logical operator.
type Binary struct {
	Op   token.Form
	L, R Expr
}

// Cond is the ?: operator.
type Cond struct {
	C, T, F Expr
}

// Parse builds the expression tree for a full token sequence. Every
// token must be consumed; trailing tokens fail the parse.
func Parse(toks []token.Token) (Expr, error) {
	p := &parser{toks: toks}
	expr, err := p.conditional()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.toks) {
		return nil, fmt.Errorf("unexpected token after expression: %s", p.toks[p.pos].Text())
	}
	return expr, nil
}

// Fold reduces a parsed expression to its integer value. Division and
// modulo by zero are the only failures.
func Fold(e Expr) (int64, error) {
	switch n := e.(type) {
	case IntLit:
		return n.Val, nil
	case Ident:
		return 0, nil
	case Unary:
		v, err := Fold(n.X)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case token.ExclamationMark:
			return boolVal(v == 0), nil
		case token.Minus:
			return -v, nil
		case token.Plus:
			return v, nil
		case token.Tilde:
			return ^v, nil
		}
		return 0, fmt.Errorf("cannot fold unary operator %s", n.Op)
	case Binary:
		return foldBinary(n)
	case Cond:
		c, err := Fold(n.C)
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return Fold(n.T)
		}
		return Fold(n.F)
	}
	return 0, fmt.Errorf("cannot fold expression %T", e)
}

func foldBinary(n Binary) (int64, error) {
	l, err := Fold(n.L)
	if err != nil {
		return 0, err
	}
	// Logical operators still fold both sides; a constant expression
	// has no side effects to short-circuit away.
	r, err := Fold(n.R)
	if err != nil {
		return 0, err
	}
	switch n.Op {
	case token.DoubleOr:
		return boolVal(l != 0 || r != 0), nil
	case token.DoubleAmpersand:
		return boolVal(l != 0 && r != 0), nil
	case token.Or:
		return l | r, nil
	case token.Xor:
		return l ^ r, nil
	case token.Ampersand:
		return l & r, nil
	case token.Equal:
		return boolVal(l == r), nil
	case token.NotEqual:
		return boolVal(l != r), nil
	case token.LessThan:
		return boolVal(l < r), nil
	case token.GreaterThan:
		return boolVal(l > r), nil
	case token.LessThanEqual:
		return boolVal(l <= r), nil
	case token.GreaterThanEqual:
		return boolVal(l >= r), nil
	case token.LeftShift:
		return l << uint(r), nil
	case token.RightShift:
		return l >> uint(r), nil
	case token.Plus:
		return l + r, nil
	case token.Minus:
		return l - r, nil
	case token.Asterix:
		return l * r, nil
	case token.ForwardSlash:
		if r == 0 {
			return 0, fmt.Errorf("division by zero")
		}
		return l / r, nil
	case token.Modulo:
		if r == 0 {
			return 0, fmt.Errorf("modulo by zero")
		}
		return l % r, nil
	}
	return 0, fmt.Errorf("cannot fold binary operator %s", n.Op)
}

func boolVal(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

// Evaluator bundles Parse and Fold behind the preprocessor's
// callout interface.
type Evaluator struct{}

// Eval parses and folds in one step.
func (Evaluator) Eval(toks []token.Token) (int64, error) {
	expr, err := Parse(toks)
	if err != nil {
		return 0, err
	}
	return Fold(expr)
}

type parser struct {
	toks []token.Token
	pos  int
}

func (p *parser) peek() (token.Token, bool) {
	if p.pos >= len(p.toks) {
		return token.Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) match(form token.Form) bool {
	tok, ok := p.peek()
	if ok && tok.Name == token.Punctuator && tok.Form == form {
		p.pos++
		return true
	}
	return false
}

// Precedence ladder: conditional -> logical-or -> logical-and ->
// bitwise or/xor/and -> equality -> relational -> shift -> additive
// -> multiplicative -> unary -> primary.

func (p *parser) conditional() (Expr, error) {
	cond, err := p.binary(0)
	if err != nil {
		return nil, err
	}
	if !p.match(token.QuestionMark) {
		return cond, nil
	}
	thenExpr, err := p.conditional()
	if err != nil {
		return nil, err
	}
	if !p.match(token.Colon) {
		return nil, fmt.Errorf("expected ':' in conditional expression")
	}
	elseExpr, err := p.conditional()
	if err != nil {
		return nil, err
	}
	return Cond{C: cond, T: thenExpr, F: elseExpr}, nil
}

// binaryLevels orders the binary operators from loosest to tightest.
var binaryLevels = [][]token.Form{
	{token.DoubleOr},
	{token.DoubleAmpersand},
	{token.Or},
	{token.Xor},
	{token.Ampersand},
	{token.Equal, token.NotEqual},
	{token.LessThan, token.GreaterThan, token.LessThanEqual, token.GreaterThanEqual},
	{token.LeftShift, token.RightShift},
	{token.Plus, token.Minus},
	{token.Asterix, token.ForwardSlash, token.Modulo},
}

func (p *parser) binary(level int) (Expr, error) {
	if level >= len(binaryLevels) {
		return p.unary()
	}
	left, err := p.binary(level + 1)
	if err != nil {
		return nil, err
	}
	for {
		matched := false
		for _, op := range binaryLevels[level] {
			if p.match(op) {
				right, err := p.binary(level + 1)
				if err != nil {
					return nil, err
				}
				left = Binary{Op: op, L: left, R: right}
				matched = true
				break
			}
		}
		if !matched {
			return left, nil
		}
	}
}

func (p *parser) unary() (Expr, error) {
	for _, op := range []token.Form{token.ExclamationMark, token.Minus, token.Plus, token.Tilde} {
		if p.match(op) {
			x, err := p.unary()
			if err != nil {
				return nil, err
			}
			return Unary{Op: op, X: x}, nil
		}
	}
	return p.primary()
}

func (p *parser) primary() (Expr, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, fmt.Errorf("unexpected end of expression")
	}
	if p.match(token.OpenParen) {
		inner, err := p.conditional()
		if err != nil {
			return nil, err
		}
		if !p.match(token.CloseParen) {
			return nil, fmt.Errorf("expected ')'")
		}
		return inner, nil
	}
	switch tok.Name {
	case token.Constant:
		p.pos++
		switch tok.Val.Kind {
		case token.IntValue:
			return IntLit{Val: tok.Val.Int}, nil
		default:
			return nil, fmt.Errorf("floating constant in #if expression: %s", tok.Text())
		}
	case token.Identifier, token.Keyword:
		// Keywords can reach an #if operand (`#if linux` after
		// expansion, say); like any other leftover identifier they
		// fold to zero.
		p.pos++
		return Ident{Name: tok.Text()}, nil
	}
	return nil, fmt.Errorf("unexpected token in expression: %s", tok.Text())
}
