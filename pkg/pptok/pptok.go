// Package pptok defines preprocessing tokens: the lexical atoms the
// preprocessor works with before keyword/identifier/constant
// classification.
package pptok

import (
	"github.com/ckeaney/kcc/pkg/lexema"
	"github.com/ckeaney/kcc/pkg/source"
)

// Name classifies a preprocessing token.
type Name int

const (
	Error Name = iota
	HeaderName
	Identifier
	PPNumber
	CharacterConstant
	StringLiteral
	Punctuator
	EndOfFile
	// NewLine terminates directives and text lines. It exists only
	// between the PP lexer and the PP parser; emitted streams never
	// contain it.
	NewLine
)

var nameStrings = [...]string{
	Error:             "ERROR",
	HeaderName:        "HEADER_NAME",
	Identifier:        "IDENTIFIER",
	PPNumber:          "PP_NUMBER",
	CharacterConstant: "CHARACTER_CONSTANT",
	StringLiteral:     "STRING_LITERAL",
	Punctuator:        "PUNCTUATOR",
	EndOfFile:         "EOF",
	NewLine:           "NEW_LINE",
}

func (n Name) String() string {
	if int(n) < len(nameStrings) {
		return nameStrings[n]
	}
	return "UNKNOWN"
}

// Form discriminates sub-variants within a Name. Each punctuator is
// its own form.
type Form int

const (
	Undefined Form = iota
	// HEADER_NAME
	HeaderName1 // <...>
	HeaderName2 // "..."
	// IDENTIFIER
	Identifier1
	Identifier2
	Identifier3
	// PP_NUMBER
	PPNumber1
	PPNumber2
	PPNumber3
	PPNumber4
	PPNumber5
	PPNumber6
	PPNumber7
	PPNumber8
	PPNumber9
	// CHARACTER_CONSTANT
	CharacterConstant1
	CharacterConstant2
	// STRING_LITERAL
	StringLiteral1
	StringLiteral2
	// PUNCTUATOR
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

var formStrings = [...]string{
	Undefined:                "UNDEFINED",
	HeaderName1:              "HEADER_NAME_1",
	HeaderName2:              "HEADER_NAME_2",
	Identifier1:              "IDENTIFIER_1",
	Identifier2:              "IDENTIFIER_2",
	Identifier3:              "IDENTIFIER_3",
	PPNumber1:                "PP_NUMBER_1",
	PPNumber2:                "PP_NUMBER_2",
	PPNumber3:                "PP_NUMBER_3",
	PPNumber4:                "PP_NUMBER_4",
	PPNumber5:                "PP_NUMBER_5",
	PPNumber6:                "PP_NUMBER_6",
	PPNumber7:                "PP_NUMBER_7",
	PPNumber8:                "PP_NUMBER_8",
	PPNumber9:                "PP_NUMBER_9",
	CharacterConstant1:       "CHARACTER_CONSTANT_1",
	CharacterConstant2:       "CHARACTER_CONSTANT_2",
	StringLiteral1:           "STRING_LITERAL_1",
	StringLiteral2:           "STRING_LITERAL_2",
	OpenBracket:              "OPEN_BRACKET",
	CloseBracket:             "CLOSE_BRACKET",
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
	BigraphOpenBracket:       "BIGRAPH_OPEN_BRACKET",
	BigraphCloseBracket:      "BIGRAPH_CLOSE_BRACKET",
	BigraphOpenCurlyBracket:  "BIGRAPH_OPEN_CURLY_BRACKET",
	BigraphCloseCurlyBracket: "BIGRAPH_CLOSE_CURLY_BRACKET",
	BigraphHashtag:           "BIGRAPH_HASHTAG",
	BigraphDoubleHashtag:     "BIGRAPH_DOUBLE_HASHTAG",
}

func (f Form) String() string {
	if int(f) < len(formStrings) {
		return formStrings[f]
	}
	return "UNKNOWN"
}

// Token is one preprocessing token. It does not own its lexeme; the
// pool does.
type Token struct {
	Lexeme *lexema.Lexeme
	Name   Name
	Loc    source.Location
	Form   Form
}

// Text returns the token's lexeme contents.
func (t Token) Text() string {
	return t.Lexeme.String()
}
