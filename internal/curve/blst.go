//go:build blst

package curve

import (
	"bytes"
	"fmt"

	blst "github.com/supranational/blst/bindings/go"
)

var (
	blstG1    = blst.P1Generator().ToAffine()
	blstInfG1 = new(blst.P1Affine)
	blstInfG2 = new(blst.P2Affine)
)

type blstPointG1 struct {
	p *blst.P1Affine
}

func (g *blstPointG1) IsInfinity() bool { return g.p.Equals(blstInfG1) }

type blstPointG2 struct {
	p *blst.P2Affine
}

func (g *blstPointG2) IsInfinity() bool { return g.p.Equals(blstInfG2) }

// Blst is the engine backed by the supranational/blst C library. It is only
// compiled with the blst build tag.
type Blst struct{}

// NewBlst returns the blst engine.
func NewBlst() Engine {
	return Blst{}
}

func (Blst) Name() string { return "blst" }

func (Blst) DecompressG1(b []byte) (G1, error) {
	if err := checkCompressed(b, G1CompressedSize); err != nil {
		return nil, err
	}
	p := new(blst.P1Affine).Uncompress(b)
	if p == nil || !bytes.Equal(p.Compress(), b) {
		return nil, ErrInvalidEncoding
	}
	// InG1 accepts the identity; the protocol layer decides where it is
	// allowed.
	if !p.InG1() {
		return nil, ErrNotInSubgroup
	}
	return &blstPointG1{p: p}, nil
}

func (Blst) DecompressG2(b []byte) (G2, error) {
	if err := checkCompressed(b, G2CompressedSize); err != nil {
		return nil, err
	}
	p := new(blst.P2Affine).Uncompress(b)
	if p == nil || !bytes.Equal(p.Compress(), b) {
		return nil, ErrInvalidEncoding
	}
	if !p.InG2() {
		return nil, ErrNotInSubgroup
	}
	return &blstPointG2{p: p}, nil
}

func (Blst) CompressG1(p G1) []byte { return blstG1Point(p).p.Compress() }

func (Blst) CompressG2(p G2) []byte { return blstG2Point(p).p.Compress() }

func (Blst) IdentityG1() G1 { return &blstPointG1{p: new(blst.P1Affine)} }

func (Blst) IdentityG2() G2 { return &blstPointG2{p: new(blst.P2Affine)} }

func (Blst) AddG1(a, b G1) G1 {
	var agg blst.P1Aggregate
	agg.Add(blstG1Point(a).p, false)
	agg.Add(blstG1Point(b).p, false)
	return &blstPointG1{p: agg.ToAffine()}
}

func (Blst) AddG2(a, b G2) G2 {
	var agg blst.P2Aggregate
	agg.Add(blstG2Point(a).p, false)
	agg.Add(blstG2Point(b).p, false)
	return &blstPointG2{p: agg.ToAffine()}
}

func (Blst) HashToG2(msg, dst []byte) (G2, error) {
	p := blst.HashToG2(msg, dst)
	if p == nil {
		return nil, ErrHashToCurve
	}
	return &blstPointG2{p: p.ToAffine()}, nil
}

// PairingCheck compares the two Miller loops after a shared final
// exponentiation.
func (Blst) PairingCheck(pk G1, h G2, sig G2) (bool, error) {
	lhs := blst.Fp12MillerLoop(blstG2Point(h).p, blstG1Point(pk).p)
	rhs := blst.Fp12MillerLoop(blstG2Point(sig).p, blstG1)
	return blst.Fp12FinalVerify(lhs, rhs), nil
}

func blstG1Point(p G1) *blstPointG1 {
	g, ok := p.(*blstPointG1)
	if !ok {
		panic(fmt.Sprintf("curve: %T is not a blst G1 point", p))
	}
	return g
}

func blstG2Point(p G2) *blstPointG2 {
	g, ok := p.(*blstPointG2)
	if !ok {
		panic(fmt.Sprintf("curve: %T is not a blst G2 point", p))
	}
	return g
}
