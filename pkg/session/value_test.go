package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/inputmask/pkg/session"
)

func TestValue(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		v := session.EmptyValue()
		assert.True(t, v.IsEmpty())
		assert.Equal(t, session.KindEmpty, v.Kind())
		assert.Nil(t, v.Any())
		assert.Equal(t, "", v.String())
		_, ok := v.Int()
		assert.False(t, ok)
	})

	t.Run("text", func(t *testing.T) {
		v := session.TextValue("12/31")
		assert.False(t, v.IsEmpty())
		assert.Equal(t, "12/31", v.Any())
		assert.Equal(t, "text", v.Kind().String())
	})

	t.Run("int", func(t *testing.T) {
		v := session.IntValue(-42)
		n, ok := v.Int()
		assert.True(t, ok)
		assert.Equal(t, int64(-42), n)
		assert.Equal(t, "-42", v.Text())
		assert.Equal(t, int64(-42), v.Any())
	})

	t.Run("field", func(t *testing.T) {
		v := session.FieldValue("12/  ")
		assert.Equal(t, session.KindField, v.Kind())
		assert.Equal(t, "12/  ", v.Any())
		assert.Equal(t, "field", v.Kind().String())
	})
}

func TestTarget_String(t *testing.T) {
	assert.Equal(t, "component", session.TargetComponent.String())
	assert.Equal(t, "native", session.TargetNative.String())
}
