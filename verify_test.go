package minpk_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/Iscaraca/minpk"
	"github.com/Iscaraca/minpk/internal/blstest"
)

func TestVerifyValid(t *testing.T) {
	s := signer(t, 1)
	msg := []byte("hello walrus")
	sig := sign(t, s, msg)

	assert.True(t, minpk.Verify(sig, s.PK, msg))
}

func TestVerifyEmptyAndLongMessages(t *testing.T) {
	s := signer(t, 2)

	for _, msg := range [][]byte{{}, bytes.Repeat([]byte{0xab}, 1<<16)} {
		sig := sign(t, s, msg)
		assert.True(t, minpk.Verify(sig, s.PK, msg), "len(msg)=%d", len(msg))
	}
}

func TestVerifyWrongMessage(t *testing.T) {
	s := signer(t, 1)
	sig := sign(t, s, []byte("signed message"))

	assert.False(t, minpk.Verify(sig, s.PK, []byte("tampered message")))
}

func TestVerifyWrongKey(t *testing.T) {
	s1 := signer(t, 1)
	s2 := signer(t, 2)
	msg := []byte("test message")
	sig := sign(t, s1, msg)

	assert.False(t, minpk.Verify(sig, s2.PK, msg))
}

func TestVerifyEmptyInputs(t *testing.T) {
	assert.False(t, minpk.Verify(nil, nil, nil))
	assert.False(t, minpk.Verify([]byte{}, []byte{}, []byte{}))
}

func TestVerifyWrongSizes(t *testing.T) {
	s := signer(t, 1)
	msg := []byte("sizes")
	sig := sign(t, s, msg)

	for n := 0; n <= 128; n++ {
		if n != minpk.SignatureLength {
			assert.False(t, minpk.Verify(make([]byte, n), s.PK, msg), "signature length %d", n)
			assert.False(t, minpk.Verify(bytes.Repeat([]byte{0xff}, n), s.PK, msg), "signature length %d", n)
		}
		if n != minpk.PublicKeyLength {
			assert.False(t, minpk.Verify(sig, make([]byte, n), msg), "public key length %d", n)
			assert.False(t, minpk.Verify(sig, bytes.Repeat([]byte{0xff}, n), msg), "public key length %d", n)
		}
	}

	// Truncated and extended copies of otherwise valid input.
	assert.False(t, minpk.Verify(sig[:95], s.PK, msg))
	assert.False(t, minpk.Verify(append(append([]byte{}, sig...), 0), s.PK, msg))
	assert.False(t, minpk.Verify(sig, s.PK[:47], msg))
	assert.False(t, minpk.Verify(sig, append(append([]byte{}, s.PK...), 0), msg))
}

func TestVerifyZeroBytes(t *testing.T) {
	assert.False(t, minpk.Verify(make([]byte, 96), make([]byte, 48), []byte{1, 2, 3, 4}))
}

func TestVerifySwappedArguments(t *testing.T) {
	s := signer(t, 1)
	msg := []byte("swap")
	sig := sign(t, s, msg)

	assert.False(t, minpk.Verify(s.PK, sig, msg))
}

func TestCheckSignature(t *testing.T) {
	s := signer(t, 1)
	msg := []byte("diagnostics")
	sig := sign(t, s, msg)
	v := minpk.NewVerifier()

	tests := []struct {
		name string
		sig  []byte
		pk   []byte
		msg  []byte
		want error
	}{
		{name: "valid", sig: sig, pk: s.PK, msg: msg},
		{name: "short signature", sig: sig[:10], pk: s.PK, msg: msg, want: minpk.ErrSignatureLength},
		{name: "short public key", sig: sig, pk: s.PK[:10], msg: msg, want: minpk.ErrPublicKeyLength},
		{name: "signature encoding", sig: make([]byte, 96), pk: s.PK, msg: msg, want: minpk.ErrInvalidEncoding},
		{name: "public key encoding", sig: sig, pk: make([]byte, 48), msg: msg, want: minpk.ErrInvalidEncoding},
		{name: "signature subgroup", sig: blstest.NonSubgroupG2(), pk: s.PK, msg: msg, want: minpk.ErrNotInSubgroup},
		{name: "public key subgroup", sig: sig, pk: blstest.NonSubgroupG1(), msg: msg, want: minpk.ErrNotInSubgroup},
		{name: "identity signature", sig: blstest.IdentityG2(), pk: s.PK, msg: msg, want: minpk.ErrIdentitySignature},
		{name: "identity public key", sig: sig, pk: blstest.IdentityG1(), msg: msg, want: minpk.ErrIdentityPublicKey},
		{name: "mismatch", sig: sig, pk: s.PK, msg: []byte("other"), want: minpk.ErrVerificationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.CheckSignature(tt.sig, tt.pk, tt.msg)
			if tt.want == nil {
				require.NoError(t, err)
				require.True(t, v.Verify(tt.sig, tt.pk, tt.msg))
				return
			}
			require.ErrorIs(t, err, tt.want)
			require.False(t, v.Verify(tt.sig, tt.pk, tt.msg))
		})
	}
}

// The identity key and identity signature satisfy the pairing equation for
// every message, so both must be rejected before it is evaluated.
func TestVerifyIdentityPair(t *testing.T) {
	for _, msg := range [][]byte{nil, []byte("any"), []byte("message")} {
		assert.False(t, minpk.Verify(blstest.IdentityG2(), blstest.IdentityG1(), msg))
	}
}

func TestVerifyBitFlips(t *testing.T) {
	s := signer(t, 3)
	msg := []byte("bit flips")
	sig := sign(t, s, msg)

	for _, i := range []int{0, 1, 47, 95} {
		assert.False(t, minpk.Verify(flip(sig, i), s.PK, msg), "signature byte %d", i)
	}
	for _, i := range []int{0, 1, 47} {
		assert.False(t, minpk.Verify(sig, flip(s.PK, i), msg), "public key byte %d", i)
	}
}

func TestVerifyConcurrent(t *testing.T) {
	signers, sigs := committee(t, 4, []byte("concurrent"))
	v := minpk.NewVerifier()

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		s, sig := signers[i%len(signers)], sigs[i%len(sigs)]
		g.Go(func() error {
			if !v.Verify(sig, s.PK, []byte("concurrent")) {
				return minpk.ErrVerificationFailed
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func FuzzVerify(f *testing.F) {
	s, err := blstest.NewSigner(1)
	require.NoError(f, err)
	sig, err := s.Sign([]byte("fuzz"))
	require.NoError(f, err)

	f.Add(sig, s.PK, []byte("fuzz"))
	f.Add(make([]byte, 96), make([]byte, 48), []byte{1, 2, 3, 4})
	f.Add(blstest.IdentityG2(), blstest.IdentityG1(), []byte{})
	f.Fuzz(func(t *testing.T, sig, pk, msg []byte) {
		// Must not panic on any input.
		minpk.Verify(sig, pk, msg)
	})
}
