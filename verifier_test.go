package minpk_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Iscaraca/minpk"
	"github.com/Iscaraca/minpk/internal/curve"
)

func TestVerifierDefaults(t *testing.T) {
	v := minpk.NewVerifier()
	require.Equal(t, curve.Default().Name(), v.Engine())
}

func TestVerifierLogsRejections(t *testing.T) {
	require := require.New(t)

	core, logs := observer.New(zap.DebugLevel)
	v := minpk.NewVerifier(minpk.WithLogger(zap.New(core)))

	msg := []byte("logging")
	s := signer(t, 1)
	sig := sign(t, s, msg)

	require.True(v.Verify(sig, s.PK, msg))
	require.Zero(logs.Len(), "accepted signatures are not logged")

	require.False(v.Verify(sig, s.PK[:12], msg))
	require.False(v.VerifyAggregate(nil, msg, sig))

	entries := logs.FilterMessage("rejected").AllUntimed()
	require.Len(entries, 2)

	first := entries[0].ContextMap()
	require.Equal("verify", first["op"])
	require.Equal("size", first["reason"])
	require.Contains(first["error"], "invalid public key length")

	second := entries[1].ContextMap()
	require.Equal("verify_aggregate", second["op"])
	require.Equal("empty", second["reason"])
}

func TestVerifierEngines(t *testing.T) {
	msg := []byte("every engine")
	signers, sigs := committee(t, 3, msg)

	for _, name := range curve.Engines() {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)

			e, err := curve.ByName(name)
			require.NoError(err)
			v := minpk.NewVerifier(minpk.WithEngine(e))
			require.Equal(name, v.Engine())

			for i, s := range signers {
				require.True(v.Verify(sigs[i], s.PK, msg))
			}
			agg := v.Aggregate(sigs)
			require.Equal(minpk.Aggregate(sigs), agg)
			require.True(v.VerifyAggregate([][]byte{signers[0].PK, signers[1].PK, signers[2].PK}, msg, agg))
		})
	}
}
