package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputmask/pkg/config"
	"github.com/dmitrymomot/inputmask/pkg/mask"
	"github.com/dmitrymomot/inputmask/pkg/session"
)

func TestLoadFieldsFile(t *testing.T) {
	t.Parallel()

	fs, err := config.LoadFieldsFile("testdata/fields.yaml")
	require.NoError(t, err)
	require.Len(t, fs.Fields, 3)

	phone, ok := fs.Lookup("phone")
	require.True(t, ok)
	assert.Equal(t, "Phone", phone.Label)
	assert.Equal(t, session.Config{Mask: "(NNN) NNN-NNNN", Unmask: true}, phone.Config)

	year, ok := fs.Lookup("year")
	require.True(t, ok)
	assert.True(t, year.ParseInt)
	assert.True(t, year.HideOnEmpty)

	serial, ok := fs.Lookup("serial")
	require.True(t, ok)
	assert.Equal(t, "abc123", serial.Initial)

	_, ok = fs.Lookup("missing")
	assert.False(t, ok)

	tokens, err := fs.TokenTable()
	require.NoError(t, err)
	assert.True(t, tokens.IsToken('H'))

	engine, err := mask.New(serial.Mask, tokens)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", engine.Mask(serial.Initial))
}

func TestParseFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{
			name: "empty document",
			doc:  "",
		},
		{
			name:    "missing name",
			doc:     "fields:\n  - mask: NNN\n",
			wantErr: config.ErrFieldName,
		},
		{
			name:    "duplicate name",
			doc:     "fields:\n  - name: a\n    mask: NNN\n  - name: a\n    mask: SSS\n",
			wantErr: config.ErrDuplicateField,
		},
		{
			name:    "missing mask",
			doc:     "fields:\n  - name: a\n",
			wantErr: session.ErrMaskRequired,
		},
		{
			name:    "integer over letters",
			doc:     "fields:\n  - name: a\n    mask: SSS\n    parse_int: true\n",
			wantErr: session.ErrParseIntMask,
		},
		{
			name:    "unknown key",
			doc:     "fields:\n  - name: a\n    mask: NNN\n    colour: red\n",
			wantErr: config.ErrInvalidFields,
		},
		{
			name:    "unknown token class",
			doc:     "tokens:\n  H: hex\nfields: []\n",
			wantErr: config.ErrTokenClass,
		},
		{
			name:    "multi-rune token symbol",
			doc:     "tokens:\n  HH: digit\nfields: []\n",
			wantErr: config.ErrTokenClass,
		},
		{
			name: "custom numeric token allows integers",
			doc:  "tokens:\n  D: digit\nfields:\n  - name: a\n    mask: DDD\n    parse_int: true\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := config.ParseFields(strings.NewReader(tt.doc))
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoadFieldsFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := config.LoadFieldsFile("testdata/none.yaml")
	require.ErrorIs(t, err, config.ErrInvalidFields)
}
