package mask_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputmask/pkg/mask"
)

func TestNew(t *testing.T) {
	t.Run("rejects empty pattern", func(t *testing.T) {
		_, err := mask.New("", mask.DefaultTokens())
		require.ErrorIs(t, err, mask.ErrEmptyMask)
	})

	t.Run("MustNew panics on empty pattern", func(t *testing.T) {
		assert.Panics(t, func() { mask.MustNew("", mask.DefaultTokens()) })
	})

	t.Run("unknown runes are literals", func(t *testing.T) {
		e := mask.MustNew("N?N", mask.DefaultTokens())
		assert.True(t, e.IsToken(0))
		assert.False(t, e.IsToken(1))
		assert.True(t, e.IsToken(2))
		assert.False(t, e.IsToken(3))
		assert.Equal(t, " ? ", e.Empty())
	})

	t.Run("zero token table makes everything literal", func(t *testing.T) {
		e := mask.MustNew("NNN", mask.Tokens{})
		assert.Equal(t, "NNN", e.Empty())
		assert.Equal(t, "NNN", e.Mask("123"))
		assert.Equal(t, "", e.Unmask("123", true))
	})
}

func TestEngine_Mask(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		input    string
		expected string
	}{
		{name: "partial fill leaves placeholders", pattern: "NNN-NNN", input: "12345", expected: "123-45 "},
		{name: "alnum paste drops overflow", pattern: "AAA", input: "abc123", expected: "abc"},
		{name: "phone number", pattern: "(NNN) NNN-NNNN", input: "5551234567", expected: "(555) 123-4567"},
		{name: "preformatted input is accepted", pattern: "NN/NN/NNNN", input: "12/31/2024", expected: "12/31/2024"},
		{name: "non matching runes are skipped", pattern: "SN", input: "1a2", expected: "a2"},
		{name: "unfillable position stops the scan", pattern: "SN", input: "12", expected: "  "},
		{name: "empty input", pattern: "NNN", input: "", expected: "   "},
		{name: "overflow is dropped", pattern: "NNNN", input: "12345678", expected: "1234"},
		{name: "space never fills a wildcard", pattern: "XX", input: "a b", expected: "ab"},
		{name: "non-space token skips tabs", pattern: "CC", input: "a\tb", expected: "ab"},
		{name: "letters only", pattern: "SS-SS", input: "ab12cd", expected: "ab-cd"},
		{name: "monotonic consumption keeps order", pattern: "SN", input: "9a", expected: "a "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mask.MustNew(tt.pattern, mask.DefaultTokens())
			assert.Equal(t, tt.expected, e.Mask(tt.input))
		})
	}
}

func TestEngine_Unmask(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		input    string
		layout   bool
		expected string
	}{
		{name: "date from layout", pattern: "NN/NN/NNNN", input: "12/31/2024", layout: true, expected: "12312024"},
		{name: "partial buffer", pattern: "NNN-NNN", input: "123-45 ", layout: true, expected: "12345"},
		{name: "short text", pattern: "NN/NN", input: "12", layout: true, expected: "12"},
		{name: "invalid rune at token position is ignored", pattern: "NN/NN", input: "1a/34", layout: true, expected: "134"},
		{name: "layout mode is positional", pattern: "NN-NN", input: "1234", layout: true, expected: "124"},
		{name: "free text mode", pattern: "NN/NN", input: "a1b2c3", layout: false, expected: "123"},
		{name: "free text mode ignores position", pattern: "NN-NN", input: "1234", layout: false, expected: "1234"},
		{name: "empty buffer", pattern: "(NNN)", input: "(   )", layout: true, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mask.MustNew(tt.pattern, mask.DefaultTokens())
			assert.Equal(t, tt.expected, e.Unmask(tt.input, tt.layout))
		})
	}
}

func TestEngine_UnmaskInt(t *testing.T) {
	e := mask.MustNew("NN/NN/NNNN", mask.DefaultTokens())

	n, ok := e.UnmaskInt("12/31/2024", true)
	require.True(t, ok)
	assert.Equal(t, int64(12312024), n)

	_, ok = e.UnmaskInt(e.Empty(), true)
	assert.False(t, ok)
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		ok       bool
	}{
		{input: "42", expected: 42, ok: true},
		{input: "  -7x", expected: -7, ok: true},
		{input: "+15", expected: 15, ok: true},
		{input: "12  ", expected: 12, ok: true},
		{input: "007", expected: 7, ok: true},
		{input: "", ok: false},
		{input: "abc", ok: false},
		{input: "+", ok: false},
		{input: "99999999999999999999", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			n, ok := mask.ParseInt(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, n)
		})
	}
}

func TestEngine_Trim(t *testing.T) {
	e := mask.MustNew("NNN-NNN", mask.DefaultTokens())

	assert.Equal(t, "123-   ", e.Trim("123-456", 4))
	assert.Equal(t, "12 -   ", e.Trim("123-456", 2))
	assert.Equal(t, e.Empty(), e.Trim(e.Pattern(), 0))
	assert.Equal(t, "   -   ", e.Empty())
	assert.True(t, e.IsEmpty(e.Trim("123-456", 0)))
	assert.False(t, e.IsEmpty("1  -   "))
}

func TestEngine_NextFillableIndex(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		buffer   string
		expected int
	}{
		{name: "after partial fill", pattern: "NNN-NNN", buffer: "123-45 ", expected: 6},
		{name: "skips literal", pattern: "NNN-NNN", buffer: "123-   ", expected: 4},
		{name: "full buffer goes to the end", pattern: "NNN-NNN", buffer: "123-456", expected: 7},
		{name: "empty buffer", pattern: "NNN-NNN", buffer: "   -   ", expected: 0},
		{name: "leading literal", pattern: "(NNN)", buffer: "(   )", expected: 1},
		{name: "full buffer with trailing literal", pattern: "(NNN)", buffer: "(123)", expected: 5},
		{name: "first hole wins", pattern: "NNNN", buffer: "1 34", expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := mask.MustNew(tt.pattern, mask.DefaultTokens())
			assert.Equal(t, tt.expected, e.NextFillableIndex(tt.buffer))
		})
	}

	t.Run("NextFillable reports a full buffer", func(t *testing.T) {
		e := mask.MustNew("NN", mask.DefaultTokens())
		_, ok := e.NextFillable("12")
		assert.False(t, ok)
	})
}

func TestEngine_LastFilled(t *testing.T) {
	e := mask.MustNew("(NNN) NNN-NNNN", mask.DefaultTokens())

	i, ok := e.LastFilled("(123) 456-7890", 6)
	require.True(t, ok)
	assert.Equal(t, 3, i)

	i, ok = e.LastFilled("(123) 456-7890", 100)
	require.True(t, ok)
	assert.Equal(t, 13, i)

	_, ok = e.LastFilled("(123) 456-7890", 0)
	assert.False(t, ok)

	_, ok = e.LastFilled(e.Empty(), e.Len())
	assert.False(t, ok)
}

func TestEngine_ReplaceAt(t *testing.T) {
	e := mask.MustNew("NNN-NNN", mask.DefaultTokens())

	assert.Equal(t, "1 3-456", e.ReplaceAt("123-456", 1, mask.Placeholder))
	assert.Equal(t, "193-456", e.ReplaceAt("123-456", 1, '9'))
	assert.Equal(t, "123-456", e.ReplaceAt("123-456", 3, '9'), "literal positions are never mutated")
	assert.Equal(t, "123-456", e.ReplaceAt("123-456", 1, 'x'), "rejected rune leaves buffer unchanged")
	assert.Equal(t, "123-456", e.ReplaceAt("123-456", 42, '1'))
}

func TestEngine_Fill(t *testing.T) {
	e := mask.MustNew("NNN-NNN", mask.DefaultTokens())

	buf, end := e.Fill("1  -   ", "2a3")
	assert.Equal(t, "123-   ", buf)
	assert.Equal(t, 3, end)

	buf, end = e.Fill("123-456", "7")
	assert.Equal(t, "123-456", buf)
	assert.Equal(t, -1, end)

	buf, end = e.Fill("12 -   ", "x")
	assert.Equal(t, "12 -   ", buf)
	assert.Equal(t, -1, end)

	buf, end = e.Fill("12 -   ", "3456")
	assert.Equal(t, "123-456", buf)
	assert.Equal(t, 7, end)
}

func TestEngine_ConformsAndNormalize(t *testing.T) {
	e := mask.MustNew("NNN-NNN", mask.DefaultTokens())

	assert.True(t, e.Conforms("123-456"))
	assert.True(t, e.Conforms("   -   "))
	assert.False(t, e.Conforms("123456"))
	assert.False(t, e.Conforms("123_456"))

	assert.Equal(t, "123-456", e.Normalize("123456"))
	assert.Equal(t, "1 3-456", e.Normalize("1x3-456"))
	assert.Equal(t, "12 -   ", e.Normalize("12"))
}

func TestEngine_Properties(t *testing.T) {
	patterns := []string{
		"NNN-NNN",
		"(NNN) NNN-NNNN",
		"AAA",
		"SS-NN",
		"XX/CC",
		"NN/NN/NNNN",
		"#N",
	}
	inputs := []string{
		"",
		"12345",
		"abc123",
		"(555) 123-4567",
		"a b c",
		"!!--!!",
		"Ünïcödé 42",
		"12/31/2024",
	}

	for _, pattern := range patterns {
		e := mask.MustNew(pattern, mask.DefaultTokens())
		for _, in := range inputs {
			masked := e.Mask(in)

			assert.Equal(t, utf8.RuneCountInString(pattern), utf8.RuneCountInString(masked),
				"length invariant for %q into %q", in, pattern)
			assert.Equal(t, masked, e.Mask(e.Unmask(masked, true)),
				"idempotence for %q into %q", in, pattern)
			assert.Equal(t, e.Unmask(in, false), e.Unmask(masked, true),
				"free text unmask mirrors masking for %q into %q", in, pattern)
		}
	}
}

func TestEngine_RoundTripOnFullInput(t *testing.T) {
	e := mask.MustNew("(NNN) NNN-NNNN", mask.DefaultTokens())

	for _, in := range []string{"(123) 456-7890", "1234567890", "123.456.7890"} {
		assert.Equal(t, mask.Unformat(in, e.Pattern(), e.Tokens()), e.Unmask(e.Mask(in), true))
		assert.Equal(t, "1234567890", e.Unmask(e.Mask(in), true))
	}
}

func FuzzEngine_Mask(f *testing.F) {
	f.Add("NNN-NNN", "12345")
	f.Add("(NNN) NNN-NNNN", "(555) 123-4567")
	f.Add("AAA", "abc123")
	f.Add("XX", "a b")
	f.Add("N", string([]byte{0xff}))

	f.Fuzz(func(t *testing.T, pattern, input string) {
		e, err := mask.New(pattern, mask.DefaultTokens())
		if err != nil {
			return
		}

		masked := e.Mask(input)
		if got, want := utf8.RuneCountInString(masked), e.Len(); got != want {
			t.Fatalf("Mask(%q) into %q has %d runes, want %d", input, pattern, got, want)
		}
		if again := e.Mask(e.Unmask(masked, true)); again != masked {
			t.Fatalf("Mask is not idempotent for %q into %q: %q != %q", input, pattern, again, masked)
		}
		if i := e.NextFillableIndex(masked); i < 0 || i > e.Len() {
			t.Fatalf("NextFillableIndex out of range: %d", i)
		}
	})
}
