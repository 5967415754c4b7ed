package blstest

import (
	"bytes"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/Iscaraca/minpk"
)

// Sign returns SK * hash_to_point(msg) in compressed form.
func Sign(sk fr.Element, msg []byte) ([]byte, error) {
	Q, err := bls12381.HashToG2(msg, []byte(minpk.DST))
	if err != nil {
		return nil, err
	}
	var R bls12381.G2Affine
	R.ScalarMultiplication(&Q, sk.BigInt(new(big.Int)))
	b := R.Bytes()
	return b[:], nil
}

// Signer is a key pair derived from a seed.
type Signer struct {
	SK fr.Element
	PK []byte
}

// NewSigner derives a key pair from a 32-byte seed filled with seed.
func NewSigner(seed byte) (*Signer, error) {
	sk, err := KeyGen(bytes.Repeat([]byte{seed}, 32), nil)
	if err != nil {
		return nil, err
	}
	return &Signer{SK: sk, PK: SkToPk(sk)}, nil
}

func (s *Signer) Sign(msg []byte) ([]byte, error) {
	return Sign(s.SK, msg)
}

// Committee derives n signers with seeds 1..n.
func Committee(n int) ([]*Signer, error) {
	signers := make([]*Signer, n)
	for i := range signers {
		s, err := NewSigner(byte(i + 1))
		if err != nil {
			return nil, err
		}
		signers[i] = s
	}
	return signers, nil
}

// PublicKeys returns the public keys of signers in order.
func PublicKeys(signers []*Signer) [][]byte {
	pks := make([][]byte, len(signers))
	for i, s := range signers {
		pks[i] = s.PK
	}
	return pks
}
