package mask_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/inputmask/pkg/mask"
)

func TestDefaultTokens(t *testing.T) {
	tokens := mask.DefaultTokens()
	assert.Equal(t, 5, tokens.Len())

	tests := []struct {
		sym    rune
		accept []rune
		reject []rune
	}{
		{sym: mask.Digit, accept: []rune("09"), reject: []rune("a Z-")},
		{sym: mask.Letter, accept: []rune("azAZ"), reject: []rune("09 _é")},
		{sym: mask.Alnum, accept: []rune("a9Z"), reject: []rune(" -_")},
		{sym: mask.NonSpace, accept: []rune("a9-_é"), reject: []rune(" \t\n")},
		{sym: mask.Any, accept: []rune("a9- \t"), reject: nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.sym), func(t *testing.T) {
			p, ok := tokens.Lookup(tt.sym)
			assert.True(t, ok)
			for _, r := range tt.accept {
				assert.True(t, p(r), "%q should accept %q", tt.sym, r)
			}
			for _, r := range tt.reject {
				assert.False(t, p(r), "%q should reject %q", tt.sym, r)
			}
		})
	}
}

func TestTokens_With(t *testing.T) {
	base := mask.DefaultTokens()
	hex := base.With('H', mask.IsAlnum)

	assert.True(t, hex.IsToken('H'))
	assert.False(t, base.IsToken('H'), "base table must not change")

	noDigits := base.With(mask.Digit, nil)
	assert.False(t, noDigits.IsToken(mask.Digit))
	assert.True(t, base.IsToken(mask.Digit))
}

func TestNewTokens_DropsNilPredicates(t *testing.T) {
	tokens := mask.NewTokens(map[rune]mask.Predicate{
		'D': mask.IsDigit,
		'Q': nil,
	})
	assert.True(t, tokens.IsToken('D'))
	assert.False(t, tokens.IsToken('Q'))
}

func TestTokens_NumericOnly(t *testing.T) {
	tokens := mask.DefaultTokens().With('D', func(r rune) bool { return r >= '0' && r <= '7' })

	assert.True(t, tokens.NumericOnly(mask.Digit))
	assert.True(t, tokens.NumericOnly('D'))
	assert.False(t, tokens.NumericOnly(mask.Alnum))
	assert.False(t, tokens.NumericOnly(mask.Letter))
	assert.False(t, tokens.NumericOnly(mask.Any))
	assert.False(t, tokens.NumericOnly('?'))
}
