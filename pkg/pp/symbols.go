package pp

import "github.com/ckeaney/kcc/pkg/lexema"

// SymbolKind classifies a preprocessor symbol. An identifier holds at
// most one classification at a time.
type SymbolKind int

const (
	MacroObject SymbolKind = iota
	MacroFunction
)

// Symbol is one macro binding.
type Symbol struct {
	Kind SymbolKind
	// Replacement is the macro's replacement-list subtree as parsed.
	Replacement *Node
	// Parameters are the interned parameter names of a function-like
	// macro, in declaration order.
	Parameters []*lexema.Lexeme
	Variadic   bool
}

// SymbolTable maps interned identifiers to macro bindings. Keys are
// lexeme handles, so lookups ride on the pool's pointer-equality
// guarantee. Exclusive to the executor; freed with the unit.
type SymbolTable struct {
	entries map[*lexema.Lexeme]*Symbol
}

// NewSymbolTable creates an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{entries: make(map[*lexema.Lexeme]*Symbol)}
}

// Define binds name to sym. Redefinition is last-writer-wins; the
// caller decides whether to warn.
func (t *SymbolTable) Define(name *lexema.Lexeme, sym *Symbol) {
	t.entries[name] = sym
}

// Undefine removes the binding for name; a no-op if absent.
func (t *SymbolTable) Undefine(name *lexema.Lexeme) {
	delete(t.entries, name)
}

// Lookup returns the binding for name, or nil.
func (t *SymbolTable) Lookup(name *lexema.Lexeme) *Symbol {
	return t.entries[name]
}

// IsDefined reports whether name is bound as a macro.
func (t *SymbolTable) IsDefined(name *lexema.Lexeme) bool {
	_, ok := t.entries[name]
	return ok
}

// Len reports the number of live bindings.
func (t *SymbolTable) Len() int {
	return len(t.entries)
}
