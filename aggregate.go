package minpk

import (
	"fmt"
	"time"
)

// AggregateSignatures sums the given signatures in G2 and returns the
// compressed result. Each input is decoded and subgroup checked; identity
// signatures are accepted and contribute nothing to the sum.
func (v *Verifier) AggregateSignatures(sigs [][]byte) ([]byte, error) {
	start := time.Now()
	out, err := v.aggregateSignatures(sigs)
	v.observe(opAggregate, start, err)
	return out, err
}

func (v *Verifier) aggregateSignatures(sigs [][]byte) ([]byte, error) {
	if len(sigs) == 0 {
		return nil, ErrNoSignatures
	}

	agg := v.engine.IdentityG2()
	for i, b := range sigs {
		S, err := decodeSignature(v.engine, b)
		if err != nil {
			return nil, fmt.Errorf("signature %d: %w", i, err)
		}
		agg = v.engine.AddG2(agg, S)
	}
	return encodeSignature(v.engine, agg), nil
}

// Aggregate combines signatures into a single 96-byte aggregate. It returns
// an empty slice if sigs is empty or any element is malformed.
func (v *Verifier) Aggregate(sigs [][]byte) []byte {
	out, err := v.AggregateSignatures(sigs)
	if err != nil {
		return []byte{}
	}
	return out
}
