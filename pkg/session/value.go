package session

import "strconv"

// Kind tells how a Value should be surfaced to the model.
type Kind uint8

const (
	// KindEmpty is the empty model value.
	KindEmpty Kind = iota
	// KindText is masked or unmasked text.
	KindText
	// KindInt is a parsed integer.
	KindInt
	// KindField asks the adapter to surface the native field itself; Text
	// holds the field content.
	KindField
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindField:
		return "field"
	default:
		return "empty"
	}
}

// Value is what a session reports to the bound model.
type Value struct {
	kind Kind
	text string
	n    int64
}

// Emitter receives every value a session reports.
type Emitter func(Value)

func EmptyValue() Value            { return Value{} }
func TextValue(s string) Value     { return Value{kind: KindText, text: s} }
func IntValue(n int64) Value       { return Value{kind: KindInt, n: n, text: strconv.FormatInt(n, 10)} }
func FieldValue(text string) Value { return Value{kind: KindField, text: text} }

func (v Value) Kind() Kind    { return v.kind }
func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

// Text returns the textual form of the value. Integers are formatted in base 10.
func (v Value) Text() string { return v.text }

// Int returns the integer for KindInt values.
func (v Value) Int() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.n, true
}

// Any returns the value as a string, an int64 or nil for the empty value.
func (v Value) Any() any {
	switch v.kind {
	case KindInt:
		return v.n
	case KindText, KindField:
		return v.text
	default:
		return nil
	}
}

func (v Value) String() string { return v.text }
