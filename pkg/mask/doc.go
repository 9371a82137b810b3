// Package mask implements the mask transform engine: formatting raw input into
// a literal pattern of typed placeholder tokens and recovering the raw value
// from formatted text.
//
// A pattern is a sequence of runes. Runes found in the token table are token
// positions; every other rune is a literal rendered verbatim. The default table
// knows five tokens:
//
//	N  ASCII digit
//	S  ASCII letter
//	A  ASCII letter or digit
//	C  any non-space rune
//	X  any rune
//
// A masked buffer always has exactly as many runes as the pattern. Unfilled
// token positions hold a space placeholder and literal positions always hold
// their literal.
//
// # Usage
//
//	e := mask.MustNew("(NNN) NNN-NNNN", mask.DefaultTokens())
//
//	e.Mask("5551234567")             // "(555) 123-4567"
//	e.Mask("555")                    // "(555)    -    "
//	e.Unmask("(555) 123-4567", true) // "5551234567"
//	e.NextFillableIndex("(555)    -    ") // 6
//
// Masking skips input runes that do not fit the next token, so pre-formatted
// text can be fed back in:
//
//	e.Mask("+1 (555) 123-4567") // "(155) 512-3456"
//
// Custom tables are immutable values:
//
//	hex := mask.DefaultTokens().With('H', func(r rune) bool {
//	    return mask.IsDigit(r) || (r >= 'a' && r <= 'f')
//	})
//	mask.Format("deadbeef", "HH:HH:HH:HH", hex) // "de:ad:be:ef"
//
// # Error handling
//
// Only New fails, with ErrEmptyMask. All transforms are total: input that does
// not fit is dropped, never reported.
package mask
