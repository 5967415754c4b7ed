package blstest

import (
	"bytes"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"

	"github.com/Iscaraca/minpk"
)

// IdentityG1 is the compressed point at infinity in G1.
func IdentityG1() []byte {
	b := make([]byte, minpk.PublicKeyLength)
	b[0] = 0xc0
	return b
}

// IdentityG2 is the compressed point at infinity in G2.
func IdentityG2() []byte {
	b := make([]byte, minpk.SignatureLength)
	b[0] = 0xc0
	return b
}

// NonSubgroupG1 returns a well-formed compressed point that lies on the curve
// but outside the prime-order subgroup.
func NonSubgroupG1() []byte {
	for x := 1; x < 256; x++ {
		b := make([]byte, minpk.PublicKeyLength)
		b[0] = 0x80
		b[len(b)-1] = byte(x)
		var p bls12381.G1Affine
		dec := bls12381.NewDecoder(bytes.NewReader(b), bls12381.NoSubgroupChecks())
		if err := dec.Decode(&p); err != nil {
			continue
		}
		if !p.IsInSubGroup() {
			return b
		}
	}
	panic("blstest: no G1 point outside the subgroup found")
}

// NonSubgroupG2 is NonSubgroupG1 for the signature group.
func NonSubgroupG2() []byte {
	for x := 1; x < 256; x++ {
		b := make([]byte, minpk.SignatureLength)
		b[0] = 0x80
		b[len(b)-1] = byte(x)
		var p bls12381.G2Affine
		dec := bls12381.NewDecoder(bytes.NewReader(b), bls12381.NoSubgroupChecks())
		if err := dec.Decode(&p); err != nil {
			continue
		}
		if !p.IsInSubGroup() {
			return b
		}
	}
	panic("blstest: no G2 point outside the subgroup found")
}
