// Package diag implements the diagnostic bookkeeper: ordered,
// append-only books of errors, warnings and messages, each bound to a
// source location. Diagnostics are non-fatal; recognisers append an
// entry and keep going, so one pass reports everything it can.
package diag

import "github.com/ckeaney/kcc/pkg/source"

// Code identifies a diagnostic. The numeric values are user-visible
// (rendered as errN) and must stay stable.
type Code int

const (
	Undefined Code = iota
	ErrUnrecognisedIdentifier
	ErrMissingSemicolon
	// Preprocessor errors.
	ErrPPInvalidHeader
	ErrPPInvalidIdentifier
	ErrPPInvalidPPNumber
	ErrPPInvalidPunctuator
	ErrPPInvalidConstant
	ErrPPInvalidStringLiteral
	// Lexer errors.
	ErrInvalidConstant
	ErrInvalidIdentifier
	ErrInvalidStringLiteral
	ErrInvalidPunctuator
	// Parser errors.
	ErrParserInvalidTranslationUnit
)

// Kind distinguishes the three books.
type Kind int

const (
	KindError Kind = iota
	KindWarning
	KindMessage
)

// Entry is one recorded diagnostic.
type Entry struct {
	Code    Code
	Kind    Kind
	Message string
	Loc     source.Location
}

// Book holds the three per-unit diagnostic lists. Entries are kept in
// production order; that order is part of the observable contract.
type Book struct {
	errors   []Entry
	warnings []Entry
	messages []Entry
}

// NewBook creates an empty bookkeeper.
func NewBook() *Book {
	return &Book{}
}

// AddError appends an error entry.
func (b *Book) AddError(code Code, msg string, loc source.Location) {
	b.errors = append(b.errors, Entry{Code: code, Kind: KindError, Message: msg, Loc: loc})
}

// AddWarning appends a warning entry.
func (b *Book) AddWarning(code Code, msg string, loc source.Location) {
	b.warnings = append(b.warnings, Entry{Code: code, Kind: KindWarning, Message: msg, Loc: loc})
}

// AddMessage appends an informational entry.
func (b *Book) AddMessage(code Code, msg string, loc source.Location) {
	b.messages = append(b.messages, Entry{Code: code, Kind: KindMessage, Message: msg, Loc: loc})
}

// Errors returns the error book in production order.
func (b *Book) Errors() []Entry { return b.errors }

// Warnings returns the warning book in production order.
func (b *Book) Warnings() []Entry { return b.warnings }

// Messages returns the message book in production order.
func (b *Book) Messages() []Entry { return b.messages }

// Empty reports whether no diagnostics of any kind were recorded.
func (b *Book) Empty() bool {
	return len(b.errors) == 0 && len(b.warnings) == 0 && len(b.messages) == 0
}
