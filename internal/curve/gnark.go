package curve

import (
	"bytes"
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Fetch the built-in generators
var (
	_, _, g1Aff, _ = bls12381.Generators()
	negG1Aff       bls12381.G1Affine
)

func init() {
	negG1Aff.Neg(&g1Aff)
}

type gnarkG1 struct {
	p bls12381.G1Affine
}

func (g *gnarkG1) IsInfinity() bool { return g.p.IsInfinity() }

type gnarkG2 struct {
	p bls12381.G2Affine
}

func (g *gnarkG2) IsInfinity() bool { return g.p.IsInfinity() }

// Gnark is the pure Go engine backed by github.com/consensys/gnark-crypto.
type Gnark struct{}

// NewGnark returns the gnark-crypto engine.
func NewGnark() Engine {
	return Gnark{}
}

func (Gnark) Name() string { return "gnark" }

func (Gnark) DecompressG1(b []byte) (G1, error) {
	if err := checkCompressed(b, G1CompressedSize); err != nil {
		return nil, err
	}
	// Subgroup membership is checked below so that it can be reported
	// separately from a malformed encoding.
	var out gnarkG1
	dec := bls12381.NewDecoder(bytes.NewReader(b), bls12381.NoSubgroupChecks())
	if err := dec.Decode(&out.p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	canonical := out.p.Bytes()
	if !bytes.Equal(canonical[:], b) {
		return nil, ErrInvalidEncoding
	}
	if out.p.IsInfinity() {
		return &out, nil
	}
	if !out.p.IsInSubGroup() {
		return nil, ErrNotInSubgroup
	}
	return &out, nil
}

func (Gnark) DecompressG2(b []byte) (G2, error) {
	if err := checkCompressed(b, G2CompressedSize); err != nil {
		return nil, err
	}
	var out gnarkG2
	dec := bls12381.NewDecoder(bytes.NewReader(b), bls12381.NoSubgroupChecks())
	if err := dec.Decode(&out.p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	canonical := out.p.Bytes()
	if !bytes.Equal(canonical[:], b) {
		return nil, ErrInvalidEncoding
	}
	if out.p.IsInfinity() {
		return &out, nil
	}
	if !out.p.IsInSubGroup() {
		return nil, ErrNotInSubgroup
	}
	return &out, nil
}

func (Gnark) CompressG1(p G1) []byte {
	b := gnarkPointG1(p).p.Bytes()
	return b[:]
}

func (Gnark) CompressG2(p G2) []byte {
	b := gnarkPointG2(p).p.Bytes()
	return b[:]
}

// The zero affine point is gnark's encoding of the point at infinity.
func (Gnark) IdentityG1() G1 { return &gnarkG1{} }

func (Gnark) IdentityG2() G2 { return &gnarkG2{} }

func (Gnark) AddG1(a, b G1) G1 {
	var acc bls12381.G1Jac
	acc.FromAffine(&gnarkPointG1(a).p)
	acc.AddMixed(&gnarkPointG1(b).p)

	var out gnarkG1
	out.p.FromJacobian(&acc)
	return &out
}

func (Gnark) AddG2(a, b G2) G2 {
	var acc bls12381.G2Jac
	acc.FromAffine(&gnarkPointG2(a).p)
	acc.AddMixed(&gnarkPointG2(b).p)

	var out gnarkG2
	out.p.FromJacobian(&acc)
	return &out
}

func (Gnark) HashToG2(msg, dst []byte) (G2, error) {
	p, err := bls12381.HashToG2(msg, dst)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHashToCurve, err)
	}
	return &gnarkG2{p: p}, nil
}

// PairingCheck evaluates e(pk, h) * e(-g1, sig) == 1 as a single multi-pairing.
func (Gnark) PairingCheck(pk G1, h G2, sig G2) (bool, error) {
	return bls12381.PairingCheck(
		[]bls12381.G1Affine{gnarkPointG1(pk).p, negG1Aff},
		[]bls12381.G2Affine{gnarkPointG2(h).p, gnarkPointG2(sig).p},
	)
}

func gnarkPointG1(p G1) *gnarkG1 {
	g, ok := p.(*gnarkG1)
	if !ok {
		panic(fmt.Sprintf("curve: %T is not a gnark G1 point", p))
	}
	return g
}

func gnarkPointG2(p G2) *gnarkG2 {
	g, ok := p.(*gnarkG2)
	if !ok {
		panic(fmt.Sprintf("curve: %T is not a gnark G2 point", p))
	}
	return g
}
