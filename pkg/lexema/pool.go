// Package lexema implements the lexema pool, an interning table that
// guarantees one canonical handle per distinct lexeme for the lifetime
// of a compilation unit. Equality of interned lexemes is handle
// (pointer) equality.
package lexema

// PoolSize is the number of buckets. Collisions chain within a bucket.
const PoolSize = 1 << 16

// Lexeme is an interned byte sequence. Two Lexeme pointers obtained
// from the same Pool compare equal exactly when their contents do.
type Lexeme struct {
	text string
	next *Lexeme
}

// String returns the lexeme's contents.
func (l *Lexeme) String() string {
	if l == nil {
		return ""
	}
	return l.text
}

// Pool maps byte sequences to interned lexemes. One pool per
// compilation unit; it is not safe for concurrent use.
type Pool struct {
	buckets [PoolSize]*Lexeme
	count   int
}

// NewPool creates an empty pool.
func NewPool() *Pool {
	return &Pool{}
}

// hash accumulates bytes as h*128+c, then multiplies by 36 and reduces
// modulo the bucket count.
func hash(s string) uint {
	var h uint
	for i := 0; i < len(s); i++ {
		h = h*128 + uint(s[i])
	}
	return (h * 36) % PoolSize
}

// Lookup returns the interned handle for s, or nil if s has never been
// interned in this pool.
func (p *Pool) Lookup(s string) *Lexeme {
	for e := p.buckets[hash(s)]; e != nil; e = e.next {
		if e.text == s {
			return e
		}
	}
	return nil
}

// Intern returns the canonical handle for s, inserting it on first
// sight. Interning is idempotent: byte-equal inputs always yield the
// same handle.
func (p *Pool) Intern(s string) *Lexeme {
	h := hash(s)
	var last *Lexeme
	for e := p.buckets[h]; e != nil; e = e.next {
		if e.text == s {
			return e
		}
		last = e
	}
	entry := &Lexeme{text: s}
	if last == nil {
		p.buckets[h] = entry
	} else {
		last.next = entry
	}
	p.count++
	return entry
}

// Len reports how many distinct lexemes have been interned.
func (p *Pool) Len() int {
	return p.count
}
