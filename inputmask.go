package inputmask

import "github.com/dmitrymomot/inputmask/pkg/mask"

// Format masks value with pattern using the default tokens.
// An empty pattern yields an empty string.
func Format(value, pattern string) string {
	return mask.Format(value, pattern, mask.DefaultTokens())
}

// Unformat recovers the raw value of text masked with pattern.
func Unformat(text, pattern string) string {
	return mask.Unformat(text, pattern, mask.DefaultTokens())
}

// UnformatInt recovers the raw value of text and parses its leading integer.
// It reports false when the value does not start with a number.
func UnformatInt(text, pattern string) (int64, bool) {
	return mask.UnformatInt(text, pattern, mask.DefaultTokens())
}
