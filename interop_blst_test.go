//go:build blst

package minpk_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	blst "github.com/supranational/blst/bindings/go"

	"github.com/Iscaraca/minpk"
	"github.com/Iscaraca/minpk/internal/curve"
)

func TestBlstSignatures(t *testing.T) {
	msg := []byte("interop with blst")
	var pks, sigs [][]byte
	for i := byte(1); i <= 4; i++ {
		sk := blst.KeyGen(bytes.Repeat([]byte{i}, 32))
		pks = append(pks, new(blst.P1Affine).From(sk).Compress())
		sigs = append(sigs, new(blst.P2Affine).Sign(sk, msg, []byte(minpk.DST)).Compress())
	}

	for _, name := range curve.Engines() {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			e, err := curve.ByName(name)
			require.NoError(err)
			v := minpk.NewVerifier(minpk.WithEngine(e))

			for i := range sigs {
				require.True(v.Verify(sigs[i], pks[i], msg))
				require.False(v.Verify(sigs[i], pks[(i+1)%len(pks)], msg))
			}

			agg := v.Aggregate(sigs)
			require.True(v.VerifyAggregate(pks, msg, agg))
			require.False(v.VerifyAggregate(pks[:3], msg, agg))
		})
	}
}

func TestBlstMatchesGnark(t *testing.T) {
	require := require.New(t)

	msg := []byte("engines agree")
	_, sigs := committee(t, 5, msg)

	gnark := minpk.NewVerifier(minpk.WithEngine(curve.NewGnark()))
	native := minpk.NewVerifier(minpk.WithEngine(curve.NewBlst()))
	require.Equal(gnark.Aggregate(sigs), native.Aggregate(sigs))

	for _, sig := range sigs {
		a, err := gnark.SignatureFromBytes(sig)
		require.NoError(err)
		b, err := native.SignatureFromBytes(sig)
		require.NoError(err)
		require.Equal(a.Bytes(), b.Bytes())
	}
}
