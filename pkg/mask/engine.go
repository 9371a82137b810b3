package mask

import (
	"strconv"
	"strings"
	"unicode"
)

// Engine applies one mask pattern with one token table.
// It holds no session state and is safe for concurrent use.
type Engine struct {
	pattern []rune
	preds   []Predicate // nil at literal positions
	tokens  Tokens
	empty   string
}

// New compiles pattern against tokens. Runes not present in tokens are literals.
func New(pattern string, tokens Tokens) (*Engine, error) {
	if pattern == "" {
		return nil, ErrEmptyMask
	}

	e := &Engine{
		pattern: []rune(pattern),
		tokens:  tokens,
	}
	e.preds = make([]Predicate, len(e.pattern))
	for i, sym := range e.pattern {
		if p, ok := tokens.Lookup(sym); ok {
			e.preds[i] = p
		}
	}
	e.empty = e.Trim(pattern, 0)
	return e, nil
}

// MustNew is like New but panics on an invalid pattern.
func MustNew(pattern string, tokens Tokens) *Engine {
	e, err := New(pattern, tokens)
	if err != nil {
		panic(err)
	}
	return e
}

// Pattern returns the mask pattern.
func (e *Engine) Pattern() string {
	return string(e.pattern)
}

// Tokens returns the token table the engine was compiled with.
func (e *Engine) Tokens() Tokens {
	return e.tokens
}

// Len returns the mask length in runes, which is also the buffer length.
func (e *Engine) Len() int {
	return len(e.pattern)
}

// IsToken reports whether position i is a token position.
func (e *Engine) IsToken(i int) bool {
	return i >= 0 && i < len(e.preds) && e.preds[i] != nil
}

// Accepts reports whether r may fill the token at position i.
// The placeholder never counts as content.
func (e *Engine) Accepts(i int, r rune) bool {
	if r == Placeholder || !e.IsToken(i) {
		return false
	}
	return e.preds[i](r)
}

// Empty returns the canonical empty buffer: literals in place, placeholders
// at every token position.
func (e *Engine) Empty() string {
	return e.empty
}

// IsEmpty reports whether buffer has no filled token position.
func (e *Engine) IsEmpty(buffer string) bool {
	return e.shape(buffer) == e.empty
}

// Mask formats raw into the pattern. For every token position in order the
// first unconsumed rune of raw satisfying that token is consumed; runes that
// do not match are skipped. Positions with no matching rune left stay empty.
func (e *Engine) Mask(raw string) string {
	buf, _ := e.Fill(e.empty, raw)
	return buf
}

// Fill writes raw into the empty token positions of buffer, starting at the
// first fillable position and using the same scan as Mask. It returns the new
// buffer and the index right after the last written position, or -1 when
// nothing was written.
func (e *Engine) Fill(buffer, raw string) (string, int) {
	b := e.runes(buffer)
	start, ok := e.nextFillable(b)
	if !ok || raw == "" {
		return string(b), -1
	}

	src := []rune(raw)
	cursor, end := 0, -1
	for i := start; i < len(b); i++ {
		if !e.IsToken(i) || b[i] != Placeholder {
			continue
		}
		found := false
		for cursor < len(src) {
			r := src[cursor]
			cursor++
			if e.Accepts(i, r) {
				b[i] = r
				end = i + 1
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	return string(b), end
}

// Unmask extracts the filled token runes from text.
//
// With layout set, text is read positionally: only text[i] at token positions
// is considered, which assumes text is already shaped like the mask. Without
// layout, text is consumed left to right exactly like Mask consumes raw input.
func (e *Engine) Unmask(text string, layout bool) string {
	if !layout {
		return e.Unmask(e.Mask(text), true)
	}

	src := []rune(text)
	var sb strings.Builder
	sb.Grow(len(src))
	for i := range e.preds {
		if i >= len(src) {
			break
		}
		if e.Accepts(i, src[i]) {
			sb.WriteRune(src[i])
		}
	}
	return sb.String()
}

// UnmaskInt unmasks text and parses the result as an integer.
// The boolean is false when the unmasked value is not a number.
func (e *Engine) UnmaskInt(text string, layout bool) (int64, bool) {
	return ParseInt(e.Unmask(text, layout))
}

// Trim blanks every token position from start to the end of buffer and
// restores the literals. Positions before start are kept as they are.
func (e *Engine) Trim(buffer string, start int) string {
	src := []rune(buffer)
	b := make([]rune, len(e.pattern))
	for i := range b {
		switch {
		case e.preds[i] == nil:
			b[i] = e.pattern[i]
		case i < start && i < len(src) && e.Accepts(i, src[i]):
			b[i] = src[i]
		default:
			b[i] = Placeholder
		}
	}
	return string(b)
}

// NextFillableIndex returns the first empty token position of buffer, or the
// buffer length when every token position is filled.
func (e *Engine) NextFillableIndex(buffer string) int {
	if i, ok := e.NextFillable(buffer); ok {
		return i
	}
	return len(e.pattern)
}

// NextFillable returns the first empty token position of buffer.
func (e *Engine) NextFillable(buffer string) (int, bool) {
	return e.nextFillable(e.runes(buffer))
}

func (e *Engine) nextFillable(b []rune) (int, bool) {
	for i := range b {
		if e.IsToken(i) && b[i] == Placeholder {
			return i, true
		}
	}
	return 0, false
}

// LastFilled returns the last filled token position strictly before index.
func (e *Engine) LastFilled(buffer string, before int) (int, bool) {
	b := e.runes(buffer)
	if before > len(b) {
		before = len(b)
	}
	for i := before - 1; i >= 0; i-- {
		if e.Accepts(i, b[i]) {
			return i, true
		}
	}
	return 0, false
}

// ReplaceAt sets the token position index of buffer to r. Literal positions
// and out of range indexes leave the buffer unchanged.
func (e *Engine) ReplaceAt(buffer string, index int, r rune) string {
	b := e.runes(buffer)
	if !e.IsToken(index) {
		return string(b)
	}
	if r != Placeholder && !e.Accepts(index, r) {
		return string(b)
	}
	b[index] = r
	return string(b)
}

// Conforms reports whether text has the mask length and every literal
// position holds its literal.
func (e *Engine) Conforms(text string) bool {
	src := []rune(text)
	if len(src) != len(e.pattern) {
		return false
	}
	for i, p := range e.preds {
		if p == nil && src[i] != e.pattern[i] {
			return false
		}
	}
	return true
}

// Normalize returns text as a valid buffer. Text already shaped like the mask
// keeps its positions; anything else is masked from scratch.
func (e *Engine) Normalize(text string) string {
	if e.Conforms(text) {
		return e.shape(text)
	}
	return e.Mask(text)
}

// runes returns buffer shaped to the mask as a fresh slice.
func (e *Engine) runes(buffer string) []rune {
	src := []rune(buffer)
	b := make([]rune, len(e.pattern))
	for i := range b {
		switch {
		case e.preds[i] == nil:
			b[i] = e.pattern[i]
		case i < len(src) && e.Accepts(i, src[i]):
			b[i] = src[i]
		default:
			b[i] = Placeholder
		}
	}
	return b
}

func (e *Engine) shape(buffer string) string {
	return string(e.runes(buffer))
}

// ParseInt parses the leading integer of s: optional leading white space,
// an optional sign and a run of ASCII digits. Trailing content is ignored.
// The boolean is false when no digits are found or the value overflows int64.
func ParseInt(s string) (int64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
