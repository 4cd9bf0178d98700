package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeRandHexString(t *testing.T) {
	s1, err := MakeRandHexString(16)
	require.NoError(t, err)
	require.Len(t, s1, 32)

	s2, err := MakeRandHexString(16)
	require.NoError(t, err)
	require.NotEqual(t, s1, s2)
}

func TestWipeByteArray(t *testing.T) {
	b := []byte("secret1")
	WipeByteArray(b)
	for i := range b {
		require.Zero(t, b[i])
	}

	// nil must not panic
	WipeByteArray(nil)
}
