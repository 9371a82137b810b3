package mask

// Format masks value with pattern outside of any session.
// An empty pattern yields an empty string.
func Format(value, pattern string, tokens Tokens) string {
	e, err := New(pattern, tokens)
	if err != nil {
		return ""
	}
	return e.Mask(value)
}

// Unformat recovers the raw value from text. Text shaped like the mask is read
// positionally, anything else is scanned as free text.
func Unformat(text, pattern string, tokens Tokens) string {
	e, err := New(pattern, tokens)
	if err != nil {
		return ""
	}
	return e.Unmask(text, e.Conforms(text))
}

// UnformatInt is Unformat followed by integer parsing.
func UnformatInt(text, pattern string, tokens Tokens) (int64, bool) {
	return ParseInt(Unformat(text, pattern, tokens))
}
