package minpk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Iscaraca/minpk/internal/blstest"
)

// committee returns n signers and their signatures over msg.
func committee(t *testing.T, n int, msg []byte) ([]*blstest.Signer, [][]byte) {
	t.Helper()
	signers, err := blstest.Committee(n)
	require.NoError(t, err)

	sigs := make([][]byte, n)
	for i, s := range signers {
		sigs[i], err = s.Sign(msg)
		require.NoError(t, err)
	}
	return signers, sigs
}

func signer(t *testing.T, seed byte) *blstest.Signer {
	t.Helper()
	s, err := blstest.NewSigner(seed)
	require.NoError(t, err)
	return s
}

func sign(t *testing.T, s *blstest.Signer, msg []byte) []byte {
	t.Helper()
	sig, err := s.Sign(msg)
	require.NoError(t, err)
	return sig
}

func flip(b []byte, i int) []byte {
	out := append([]byte{}, b...)
	out[i] ^= 0x01
	return out
}
