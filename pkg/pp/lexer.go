package pp

import (
	"strings"

	"github.com/ckeaney/kcc/pkg/diag"
	"github.com/ckeaney/kcc/pkg/lexema"
	"github.com/ckeaney/kcc/pkg/pptok"
	"github.com/ckeaney/kcc/pkg/source"
)

// Lexer turns raw source text into preprocessing tokens. Newlines are
// significant (they terminate directives and text lines) and come out
// as NEW_LINE tokens; all other whitespace, including comments, is
// consumed between tokens.
type Lexer struct {
	input    string
	pos      int
	filename string
	line     int // 1-based
	col      int // 0-based

	pool *lexema.Pool
	book *diag.Book

	atBOL      bool // start of a logical line (only whitespace seen)
	hashSeen   bool // a directive-introducing # was the previous token
	headerNext bool // next token follows `# include`
}

// NewLexer creates a lexer over one translation unit.
func NewLexer(input, filename string, pool *lexema.Pool, book *diag.Book) *Lexer {
	return &Lexer{
		input:    input,
		filename: filename,
		line:     1,
		pool:     pool,
		book:     book,
		atBOL:    true,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekAt(off int) byte {
	if l.pos+off >= len(l.input) {
		return 0
	}
	return l.input[l.pos+off]
}

// advance consumes one byte and moves the file coordinate. Columns
// advance by one per character; tabs round up to the next multiple of
// four; carriage return resets the column; newline starts a new line.
func (l *Lexer) advance() {
	if l.pos >= len(l.input) {
		return
	}
	switch l.input[l.pos] {
	case '\n':
		l.line++
		l.col = 0
	case '\t':
		l.col = l.col - l.col%4 + 4
	case '\r':
		l.col = 0
	default:
		l.col++
	}
	l.pos++
}

func (l *Lexer) loc() source.Location {
	return source.Location{Filename: l.filename, Line: l.line, Column: l.col}
}

// skipWhitespace consumes spaces, tabs, carriage returns and comments.
// Newlines are not whitespace. Block comments do not nest.
func (l *Lexer) skipWhitespace() {
	for {
		switch l.peek() {
		case ' ', '\t', '\r', '\f', '\v':
			l.advance()
		case '/':
			if l.peekAt(1) == '/' {
				for l.peek() != '\n' && l.peek() != 0 {
					l.advance()
				}
			} else if l.peekAt(1) == '*' {
				l.advance()
				l.advance()
				for l.peek() != 0 {
					if l.peek() == '*' && l.peekAt(1) == '/' {
						l.advance()
						l.advance()
						break
					}
					l.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

// Next returns the next preprocessing token.
func (l *Lexer) Next() pptok.Token {
	l.skipWhitespace()

	if l.pos >= len(l.input) {
		return l.token("", pptok.EndOfFile, pptok.Undefined, l.loc())
	}

	if l.peek() == '\n' {
		loc := l.loc()
		l.advance()
		l.atBOL = true
		l.hashSeen = false
		l.headerNext = false
		return l.token("\n", pptok.NewLine, pptok.Undefined, loc)
	}

	wasBOL := l.atBOL
	wasHash := l.hashSeen
	wantHeader := l.headerNext
	l.atBOL = false
	l.hashSeen = false
	l.headerNext = false

	c := l.peek()
	switch {
	case wantHeader && (c == '<' || c == '"'):
		return l.lexHeaderName()
	case c == '\'' || (c == 'L' && l.peekAt(1) == '\''):
		return l.lexCharacterConstant()
	case c == '"' || (c == 'L' && l.peekAt(1) == '"'):
		return l.lexStringLiteral()
	case c == '_' || isAlpha(c):
		tok := l.lexIdentifier()
		if wasHash && tok.Text() == "include" {
			l.headerNext = true
		}
		return tok
	case isDigit(c) || (c == '.' && isDigit(l.peekAt(1))):
		return l.lexPPNumber()
	default:
		tok := l.lexPunctuator()
		if wasBOL && (tok.Form == pptok.Hashtag || tok.Form == pptok.BigraphHashtag) {
			l.hashSeen = true
		}
		return tok
	}
}

// All lexes the whole input, ending with a single EOF token.
func (l *Lexer) All() []pptok.Token {
	var toks []pptok.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Name == pptok.EndOfFile {
			return toks
		}
	}
}

func (l *Lexer) token(text string, name pptok.Name, form pptok.Form, loc source.Location) pptok.Token {
	loc.Length = len(text)
	return pptok.Token{Lexeme: l.pool.Intern(text), Name: name, Loc: loc, Form: form}
}

// errorToken produces an ERROR pp-token covering input[start:l.pos],
// appends a diagnostic, and leaves the cursor past the offending run.
func (l *Lexer) errorToken(start int, form pptok.Form, code diag.Code, msg string, loc source.Location) pptok.Token {
	text := l.input[start:l.pos]
	loc.Length = len(text)
	l.book.AddError(code, msg, loc)
	return pptok.Token{Lexeme: l.pool.Intern(text), Name: pptok.Error, Loc: loc, Form: form}
}

// lexHeaderName scans <q-chars> or "q-chars". Only called for the
// token after `# include`.
func (l *Lexer) lexHeaderName() pptok.Token {
	loc := l.loc()
	start := l.pos
	open := l.peek()
	close := byte('>')
	form := pptok.HeaderName1
	if open == '"' {
		close = '"'
		form = pptok.HeaderName2
	}
	l.advance()
	seen := false
	for l.peek() != 0 && l.peek() != '\n' && l.peek() != close {
		seen = true
		l.advance()
	}
	if !seen || l.peek() != close {
		return l.errorToken(start, form, diag.ErrPPInvalidHeader,
			"This header name could not be recognised.", loc)
	}
	l.advance()
	return l.token(l.input[start:l.pos], pptok.HeaderName, form, loc)
}

func (l *Lexer) lexIdentifier() pptok.Token {
	loc := l.loc()
	start := l.pos
	for isIdentContinue(l.peek()) {
		l.advance()
	}
	return l.token(l.input[start:l.pos], pptok.Identifier, pptok.Identifier1, loc)
}

// lexPPNumber scans a preprocessing number, which is broader than a C
// numeric constant; rejection of invalid numbers is the language
// lexer's job.
func (l *Lexer) lexPPNumber() pptok.Token {
	loc := l.loc()
	start := l.pos
	form := pptok.PPNumber1
	if l.peek() == '.' {
		form = pptok.PPNumber2
		l.advance()
	}
	l.advance() // first digit
	for {
		c := l.peek()
		switch {
		case c == 'e' || c == 'E' || c == 'p' || c == 'P':
			l.advance()
			if l.peek() == '+' || l.peek() == '-' {
				l.advance()
			}
		case isDigit(c) || isIdentContinue(c) || c == '.':
			l.advance()
		default:
			return l.token(l.input[start:l.pos], pptok.PPNumber, form, loc)
		}
	}
}

func (l *Lexer) lexCharacterConstant() pptok.Token {
	loc := l.loc()
	start := l.pos
	form := pptok.CharacterConstant1
	if l.peek() == 'L' {
		form = pptok.CharacterConstant2
		l.advance()
	}
	if ok := l.scanQuoted('\''); !ok {
		return l.errorToken(start, form, diag.ErrPPInvalidConstant,
			"This character constant could not be recognised.", loc)
	}
	return l.token(l.input[start:l.pos], pptok.CharacterConstant, form, loc)
}

func (l *Lexer) lexStringLiteral() pptok.Token {
	loc := l.loc()
	start := l.pos
	form := pptok.StringLiteral1
	if l.peek() == 'L' {
		form = pptok.StringLiteral2
		l.advance()
	}
	if ok := l.scanQuoted('"'); !ok {
		return l.errorToken(start, form, diag.ErrPPInvalidStringLiteral,
			"This string literal could not be recognised.", loc)
	}
	return l.token(l.input[start:l.pos], pptok.StringLiteral, form, loc)
}

// scanQuoted consumes a quote-delimited sequence with escapes. The
// terminator must appear before the end of the line. On failure the
// cursor is left past the offending run.
func (l *Lexer) scanQuoted(quote byte) bool {
	l.advance() // opening quote
	for {
		c := l.peek()
		switch c {
		case 0, '\n':
			return false
		case quote:
			l.advance()
			return true
		case '\\':
			l.advance()
			if l.peek() != 0 && l.peek() != '\n' {
				l.advance()
			}
		default:
			l.advance()
		}
	}
}

// punctuators lists every punctuator lexeme, longest first so the
// maximal munch falls out of the scan order.
var punctuators = []struct {
	text string
	form pptok.Form
}{
	{"%:%:", pptok.BigraphDoubleHashtag},
	{"<<=", pptok.LeftShiftEquals},
	{">>=", pptok.RightShiftEquals},
	{"...", pptok.TripleDot},
	{"->", pptok.RightArrow},
	{"++", pptok.Increment},
	{"--", pptok.Decrement},
	{"<<", pptok.LeftShift},
	{">>", pptok.RightShift},
	{"<=", pptok.LessThanEqual},
	{">=", pptok.GreaterThanEqual},
	{"==", pptok.Equal},
	{"!=", pptok.NotEqual},
	{"&&", pptok.DoubleAmpersand},
	{"||", pptok.DoubleOr},
	{"*=", pptok.MultiplyEqual},
	{"/=", pptok.DivideEquals},
	{"%=", pptok.ModuloEquals},
	{"+=", pptok.PlusEquals},
	{"-=", pptok.MinusEquals},
	{"&=", pptok.AmpersandEqual},
	{"^=", pptok.XorEqual},
	{"|=", pptok.OrEqual},
	{"##", pptok.DoubleHashtag},
	{"<:", pptok.BigraphOpenBracket},
	{":>", pptok.BigraphCloseBracket},
	{"<%", pptok.BigraphOpenCurlyBracket},
	{"%>", pptok.BigraphCloseCurlyBracket},
	{"%:", pptok.BigraphHashtag},
	{"[", pptok.OpenBracket},
	{"]", pptok.CloseBracket},
	{"(", pptok.OpenParen},
	{")", pptok.CloseParen},
	{"{", pptok.OpenCurlyBracket},
	{"}", pptok.CloseCurlyBracket},
	{".", pptok.Dot},
	{"&", pptok.Ampersand},
	{"*", pptok.Asterix},
	{"+", pptok.Plus},
	{"-", pptok.Minus},
	{"~", pptok.Tilde},
	{"!", pptok.ExclamationMark},
	{"/", pptok.ForwardSlash},
	{"%", pptok.Modulo},
	{"<", pptok.LessThan},
	{">", pptok.GreaterThan},
	{"=", pptok.Assign},
	{"^", pptok.Xor},
	{"|", pptok.Or},
	{"?", pptok.QuestionMark},
	{":", pptok.Colon},
	{";", pptok.SemiColon},
	{",", pptok.Comma},
	{"#", pptok.Hashtag},
}

func (l *Lexer) lexPunctuator() pptok.Token {
	loc := l.loc()
	rest := l.input[l.pos:]
	for _, p := range punctuators {
		if strings.HasPrefix(rest, p.text) {
			for range p.text {
				l.advance()
			}
			return l.token(p.text, pptok.Punctuator, p.form, loc)
		}
	}
	start := l.pos
	l.advance()
	return l.errorToken(start, pptok.Undefined, diag.ErrPPInvalidPunctuator,
		"Could not recognise this token (). Did you mispell it?", loc)
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentContinue(c byte) bool {
	return c == '_' || isAlpha(c) || isDigit(c)
}
