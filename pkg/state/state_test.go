package state_test

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loginwith/loginwith/pkg/state"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("default length and hex alphabet", func(t *testing.T) {
		t.Parallel()
		token, err := state.Generate()
		require.NoError(t, err)
		require.Len(t, token, 2*state.DefaultByteLength)

		_, err = hex.DecodeString(token)
		require.NoError(t, err)
	})

	t.Run("custom byte length", func(t *testing.T) {
		t.Parallel()
		token, err := state.GenerateN(16)
		require.NoError(t, err)
		require.Len(t, token, 32)
	})

	t.Run("non-positive length falls back to default", func(t *testing.T) {
		t.Parallel()
		token, err := state.GenerateN(0)
		require.NoError(t, err)
		require.Len(t, token, 2*state.DefaultByteLength)
	})

	t.Run("two tokens never collide", func(t *testing.T) {
		t.Parallel()
		a, err := state.Generate()
		require.NoError(t, err)
		b, err := state.Generate()
		require.NoError(t, err)
		require.NotEqual(t, a, b)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("equal tokens pass", func(t *testing.T) {
		t.Parallel()
		require.NoError(t, state.Validate("deadbeef", "deadbeef"))
	})

	t.Run("equal length mismatch", func(t *testing.T) {
		t.Parallel()
		require.ErrorIs(t, state.Validate("deadbeef", "deadbee0"), state.ErrMismatch)
	})

	t.Run("different length mismatch", func(t *testing.T) {
		t.Parallel()
		require.ErrorIs(t, state.Validate("deadbeef", "dead"), state.ErrMismatch)
	})

	t.Run("missing expected", func(t *testing.T) {
		t.Parallel()
		require.ErrorIs(t, state.Validate("", "deadbeef"), state.ErrMissing)
	})

	t.Run("missing received", func(t *testing.T) {
		t.Parallel()
		require.ErrorIs(t, state.Validate("deadbeef", ""), state.ErrMissing)
	})
}
