package minpk_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/Iscaraca/minpk"
)

func TestMetrics(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	m, err := minpk.NewMetrics("minpk", reg)
	require.NoError(err)
	v := minpk.NewVerifier(minpk.WithMetrics(m))

	msg := []byte("metrics")
	signers, sigs := committee(t, 2, msg)
	pks := [][]byte{signers[0].PK, signers[1].PK}

	require.True(v.Verify(sigs[0], pks[0], msg))
	require.False(v.Verify(sigs[0], pks[1], msg))
	require.False(v.Verify(sigs[0][:10], pks[0], msg))

	agg := v.Aggregate(sigs)
	require.Len(agg, minpk.SignatureLength)
	require.Empty(v.Aggregate(nil))

	require.True(v.VerifyAggregate(pks, msg, agg))
	require.False(v.VerifyAggregate(nil, msg, agg))

	expected := `
# HELP minpk_aggregations_total number of signature aggregations by result
# TYPE minpk_aggregations_total counter
minpk_aggregations_total{result="empty"} 1
minpk_aggregations_total{result="valid"} 1
# HELP minpk_verifications_total number of signature verifications by operation and result
# TYPE minpk_verifications_total counter
minpk_verifications_total{op="verify",result="mismatch"} 1
minpk_verifications_total{op="verify",result="size"} 1
minpk_verifications_total{op="verify",result="valid"} 1
minpk_verifications_total{op="verify_aggregate",result="empty"} 1
minpk_verifications_total{op="verify_aggregate",result="valid"} 1
`
	require.NoError(testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"minpk_aggregations_total", "minpk_verifications_total"))

	count, err := testutil.GatherAndCount(reg, "minpk_verify_duration_seconds")
	require.NoError(err)
	require.Equal(2, count)
}

func TestMetricsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := minpk.NewMetrics("minpk", reg)
	require.NoError(t, err)
	_, err = minpk.NewMetrics("minpk", reg)
	require.Error(t, err)
}
