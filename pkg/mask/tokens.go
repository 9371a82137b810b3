package mask

import "unicode"

// Predicate reports whether a rune may occupy a token position.
type Predicate func(r rune) bool

// Default token symbols.
const (
	Digit       = 'N'
	Letter      = 'S'
	Alnum       = 'A'
	NonSpace    = 'C'
	Any         = 'X'
	Placeholder = ' '
)

// Tokens is an immutable token table mapping a mask symbol to its predicate.
// The zero value has no tokens; every mask rune is then a literal.
type Tokens struct {
	m map[rune]Predicate
}

// NewTokens copies the given map into a new table. Nil predicates are dropped.
func NewTokens(m map[rune]Predicate) Tokens {
	t := Tokens{m: make(map[rune]Predicate, len(m))}
	for sym, p := range m {
		if p != nil {
			t.m[sym] = p
		}
	}
	return t
}

// DefaultTokens returns the built-in table: N digit, S letter, A alphanumeric,
// C any non-space rune, X anything.
func DefaultTokens() Tokens {
	return NewTokens(map[rune]Predicate{
		Digit:    IsDigit,
		Letter:   IsLetter,
		Alnum:    IsAlnum,
		NonSpace: IsNonSpace,
		Any:      IsAny,
	})
}

// With returns a copy of the table with sym bound to p.
// A nil predicate removes the symbol from the copy.
func (t Tokens) With(sym rune, p Predicate) Tokens {
	next := Tokens{m: make(map[rune]Predicate, len(t.m)+1)}
	for k, v := range t.m {
		next.m[k] = v
	}
	if p == nil {
		delete(next.m, sym)
	} else {
		next.m[sym] = p
	}
	return next
}

// Lookup returns the predicate bound to sym.
func (t Tokens) Lookup(sym rune) (Predicate, bool) {
	p, ok := t.m[sym]
	return p, ok
}

// IsToken reports whether sym is a token in this table.
func (t Tokens) IsToken(sym rune) bool {
	_, ok := t.m[sym]
	return ok
}

// Len returns the number of token symbols.
func (t Tokens) Len() int {
	return len(t.m)
}

// NumericOnly reports whether the predicate bound to sym accepts ASCII digits
// and nothing else from the printable ASCII range.
func (t Tokens) NumericOnly(sym rune) bool {
	p, ok := t.m[sym]
	if !ok {
		return false
	}
	digits := 0
	for r := rune(0x21); r <= 0x7e; r++ {
		if !p(r) {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
		digits++
	}
	return digits > 0
}

// IsDigit matches ASCII digits.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// IsLetter matches ASCII letters.
func IsLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// IsAlnum matches ASCII letters and digits.
func IsAlnum(r rune) bool {
	return IsDigit(r) || IsLetter(r)
}

// IsNonSpace matches any rune that is not white space.
func IsNonSpace(r rune) bool {
	return !unicode.IsSpace(r)
}

// IsAny matches every rune. The placeholder still never fills a slot.
func IsAny(rune) bool {
	return true
}
