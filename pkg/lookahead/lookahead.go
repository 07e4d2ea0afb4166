// Package lookahead provides FIRST-set tables over token name and
// form, used by the syntactic parser for O(1) lookahead decisions.
// Tables are built once from atomic singletons and set unions and are
// immutable afterwards.
package lookahead

import "github.com/ckeaney/kcc/pkg/token"

// Table is a dense boolean matrix over (TokenName x TokenForm).
type Table struct {
	bits [token.NumNames * token.NumForms]bool
}

func index(n token.Name, f token.Form) int {
	return int(n)*token.NumForms + int(f)
}

// Single builds a table accepting every form of name.
func Single(n token.Name) Table {
	var t Table
	for f := 0; f < token.NumForms; f++ {
		t.bits[index(n, token.Form(f))] = true
	}
	return t
}

// SingleForm builds a table accepting exactly one (name, form) pair.
func SingleForm(n token.Name, f token.Form) Table {
	var t Table
	t.bits[index(n, f)] = true
	return t
}

// Union builds the set union of the given tables.
func Union(tables ...Table) Table {
	var out Table
	for i := range out.bits {
		for _, t := range tables {
			if t.bits[i] {
				out.bits[i] = true
				break
			}
		}
	}
	return out
}

// Lookup reports whether (n, f) is in the table.
func (t Table) Lookup(n token.Name, f token.Form) bool {
	return t.bits[index(n, f)]
}
