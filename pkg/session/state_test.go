package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditMachine(t *testing.T) {
	m := editMachine()
	assert.Equal(t, StateIdle, m.current)

	for _, in := range []Intent{IntentInsert, IntentBackspace, IntentPaste, IntentFocus, IntentBlur} {
		require.NoError(t, m.fire(in))
		assert.Equal(t, StateIdle, m.current, in)
	}

	assert.False(t, m.can(IntentCompositionEnd))
	err := m.fire(IntentCompositionEnd)
	require.Error(t, err)
	assert.True(t, IsNoTransitionError(err))

	require.NoError(t, m.fire(IntentCompositionStart))
	assert.Equal(t, StateComposing, m.current)

	require.NoError(t, m.fire(IntentInsert))
	require.NoError(t, m.fire(IntentDeleteBackward))
	assert.Equal(t, StateComposing, m.current)

	require.NoError(t, m.fire(IntentCompositionEnd))
	assert.Equal(t, StateIdle, m.current)

	require.NoError(t, m.fire(IntentCompositionStart))
	require.NoError(t, m.fire(IntentBlur))
	assert.Equal(t, StateIdle, m.current)
}
