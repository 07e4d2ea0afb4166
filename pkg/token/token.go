// Package token defines classified language tokens, the output of the
// language lexer and the input of the syntactic parser.
package token

import (
	"github.com/ckeaney/kcc/pkg/lexema"
	"github.com/ckeaney/kcc/pkg/source"
)

// Name classifies a language token.
type Name int

const (
	Keyword Name = iota
	Identifier
	Constant
	StringLiteral
	Punctuator
	Error
)

// NumNames is the number of token names, used to size lookahead tables.
const NumNames = 6

var nameStrings = [...]string{
	Keyword:       "KEYWORD",
	Identifier:    "IDENTIFIER",
	Constant:      "CONSTANT",
	StringLiteral: "STRING_LITERAL",
	Punctuator:    "PUNCTUATOR",
	Error:         "ERROR",
}

func (n Name) String() string {
	if int(n) < len(nameStrings) {
		return nameStrings[n]
	}
	return "UNKNOWN"
}

// Form discriminates sub-variants within a Name: which keyword, which
// constant grammar, which punctuator.
type Form int

const (
	// Simple marks a token with no specific form.
	Simple Form = iota
	// Keywords.
	Auto
	Break
	Case
	Char
	Const
	Continue
	Default
	Do
	Double
	Else
	Enum
	Extern
	Float
	For
	Goto
	If
	Inline
	Int
	Long
	Register
	Restrict
	Return
	Short
	Signed
	Sizeof
	Static
	Struct
	Switch
	Typedef
	Union
	Unsigned
	While
	Void
	Volatile
	Bool
	Complex
	Imaginary
	// Constants.
	IntegerConstant
	FloatingConstant
	EnumerationConstant
	CharacterConstant
	StringLiteralForm
	// Punctuators.
	OpenBracket
	CloseBracket
	OpenParen
	CloseParen
	OpenCurlyBracket
	CloseCurlyBracket
	Dot
	Ampersand
	Asterix
	Plus
	Minus
	Tilde
	ExclamationMark
	ForwardSlash
	Modulo
	Increment
	Decrement
	RightArrow
	LeftShift
	LessThan
	GreaterThan
	LessThanEqual
	GreaterThanEqual
	Equal
	NotEqual
	Xor
	Or
	DoubleAmpersand
	DoubleOr
	QuestionMark
	Colon
	SemiColon
	TripleDot
	Assign
	MultiplyEqual
	DivideEquals
	ModuloEquals
	PlusEquals
	MinusEquals
	LeftShiftEquals
	RightShift
	RightShiftEquals
	AmpersandEqual
	XorEqual
	OrEqual
	Comma
	Hashtag
	DoubleHashtag
	BigraphOpenBracket
	BigraphCloseBracket
	BigraphOpenCurlyBracket
	BigraphCloseCurlyBracket
	BigraphHashtag
	BigraphDoubleHashtag
)

// NumForms is the number of token forms, used to size lookahead tables.
const NumForms = int(BigraphDoubleHashtag) + 1

var formStrings = [...]string{
	Simple:                   "SIMPLE",
	Auto:                     "AUTO",
	Break:                    "BREAK",
	Case:                     "CASE",
	Char:                     "CHAR",
	Const:                    "CONST",
	Continue:                 "CONTINUE",
	Default:                  "DEFAULT",
	Do:                       "DO",
	Double:                   "DOUBLE",
	Else:                     "ELSE",
	Enum:                     "ENUM",
	Extern:                   "EXTERN",
	Float:                    "FLOAT",
	For:                      "FOR",
	Goto:                     "GOTO",
	If:                       "IF",
	Inline:                   "INLINE",
	Int:                      "INT",
	Long:                     "LONG",
	Register:                 "REGISTER",
	Restrict:                 "RESTRICT",
	Return:                   "RETURN",
	Short:                    "SHORT",
	Signed:                   "SIGNED",
	Sizeof:                   "SIZEOF",
	Static:                   "STATIC",
	Struct:                   "STRUCT",
	Switch:                   "SWITCH",
	Typedef:                  "TYPEDEF",
	Union:                    "UNION",
	Unsigned:                 "UNSIGNED",
	While:                    "WHILE",
	Void:                     "VOID",
	Volatile:                 "VOLATILE",
	Bool:                     "_BOOL",
	Complex:                  "_COMPLEX",
	Imaginary:                "_IMAGINARY",
	IntegerConstant:          "INTEGER_CONSTANT",
	FloatingConstant:         "FLOATING_CONSTANT",
	EnumerationConstant:      "ENUMERATION_CONSTANT",
	CharacterConstant:        "CHARACTER_CONSTANT",
	StringLiteralForm:        "STRING_LITERAL",
	OpenBracket:              "OPEN_SQUARE_BRACKET",
	CloseBracket:             "CLOSE_SQUARE_BRACKET",
	OpenParen:                "OPEN_PAREN",
	CloseParen:               "CLOSE_PAREN",
	OpenCurlyBracket:         "OPEN_CURLY_BRACKET",
	CloseCurlyBracket:        "CLOSE_CURLY_BRACKET",
	Dot:                      "DOT",
	Ampersand:                "AMPERSAND",
	Asterix:                  "ASTERIX",
	Plus:                     "PLUS",
	Minus:                    "MINUS",
	Tilde:                    "TILDE",
	ExclamationMark:          "EXCLAMATION_MARK",
	ForwardSlash:             "FORWARD_SLASH",
	Modulo:                   "MODULO",
	Increment:                "INCREMENT",
	Decrement:                "DECREMENT",
	RightArrow:               "RIGHT_ARROW",
	LeftShift:                "LEFT_SHIFT",
	LessThan:                 "LESS_THAN",
	GreaterThan:              "GREATER_THAN",
	LessThanEqual:            "LESS_THAN_EQUAL",
	GreaterThanEqual:         "GREATER_THAN_EQUAL",
	Equal:                    "EQUAL",
	NotEqual:                 "NOT_EQUAL",
	Xor:                      "XOR",
	Or:                       "OR",
	DoubleAmpersand:          "DOUBLE_AMPERSAND",
	DoubleOr:                 "DOUBLE_OR",
	QuestionMark:             "QUESTION_MARK",
	Colon:                    "COLON",
	SemiColon:                "SEMI_COLON",
	TripleDot:                "TRIPLE_DOT",
	Assign:                   "ASSIGN",
	MultiplyEqual:            "MULTIPLY_EQUAL",
	DivideEquals:             "DIVIDE_EQUALS",
	ModuloEquals:             "MODULO_EQUALS",
	PlusEquals:               "PLUS_EQUALS",
	MinusEquals:              "MINUS_EQUALS",
	LeftShiftEquals:          "LEFT_SHIFT_EQUALS",
	RightShift:               "RIGHT_SHIFT",
	RightShiftEquals:         "RIGHT_SHIFT_EQUALS",
	AmpersandEqual:           "AMPERSAND_EQUAL",
	XorEqual:                 "XOR_EQUAL",
	OrEqual:                  "OR_EQUAL",
	Comma:                    "COMMA",
	Hashtag:                  "HASHTAG",
	DoubleHashtag:            "DOUBLE_HASHTAG",
	BigraphOpenBracket:       "ANTIQUATED_OPEN_SQUARE_BRACKET",
	BigraphCloseBracket:      "ANTIQUATED_CLOSE_SQUARE_BRACKET",
	BigraphOpenCurlyBracket:  "ANTIQUATED_OPEN_CURLY_BRACKET",
	BigraphCloseCurlyBracket: "ANTIQUATED_CLOSE_CURLY_BRACKET",
	BigraphHashtag:           "ANTIQUATED_HASHTAG",
	BigraphDoubleHashtag:     "ANTIQUATED_DOUBLE_HASHTAG",
}

func (f Form) String() string {
	if int(f) < len(formStrings) {
		return formStrings[f]
	}
	return "UNKNOWN"
}

// ValueKind tags which arm of a Value is meaningful.
type ValueKind int

const (
	NoValue ValueKind = iota
	IntValue
	FloatValue
)

// Value carries the numeric value of a CONSTANT token.
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
}

// Token is one classified language token.
type Token struct {
	Name   Name
	Form   Form
	Val    Value
	Lexeme *lexema.Lexeme
	Loc    source.Location
}

// Text returns the token's lexeme contents.
func (t Token) Text() string {
	return t.Lexeme.String()
}
