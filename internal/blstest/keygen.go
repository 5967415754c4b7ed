// Package blstest derives min_pk keys and signatures for tests.
package blstest

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"golang.org/x/crypto/hkdf"
)

const (
	// KeygenSalt is the initial salt of KeyGen, draft-irtf-cfrg-bls-signature
	// section 2.3.
	KeygenSalt = "BLS-SIG-KEYGEN-SALT-"
	// keygenL is ceil((3 * ceil(log2(r))) / 16).
	keygenL = 48
)

var _, _, g1Aff, _ = bls12381.Generators()

// KeyGen derives a secret key from ikm and an optional keyInfo.
//
// Procedure:
// 1. while SK == 0:
// 2.     salt = H(salt)
// 3.     PRK = HKDF-Extract(salt, IKM || I2OSP(0, 1))
// 4.     OKM = HKDF-Expand(PRK, key_info || I2OSP(L, 2), L)
// 5.     SK = OS2IP(OKM) mod r
// 6. return SK
func KeyGen(ikm []byte, keyInfo []byte) (fr.Element, error) {
	var sk fr.Element

	if len(ikm) < 32 {
		return sk, errors.New("INVALID: ikm must be at least 32 bytes")
	}
	if len(keyInfo) > 65535 {
		return sk, errors.New("INVALID: key_info must be at most 65535 bytes")
	}

	ikmZero := append(append([]byte{}, ikm...), 0)
	info := make([]byte, len(keyInfo)+2)
	copy(info, keyInfo)
	binary.BigEndian.PutUint16(info[len(keyInfo):], keygenL)

	salt := []byte(KeygenSalt)
	okm := make([]byte, keygenL)
	for sk.IsZero() {
		digest := sha256.Sum256(salt)
		salt = digest[:]

		r := hkdf.New(sha256.New, ikmZero, salt, info)
		if _, err := io.ReadFull(r, okm); err != nil {
			return sk, fmt.Errorf("hkdf expand: %w", err)
		}
		sk.SetBytes(okm)
	}
	return sk, nil
}

// SkToPk returns the 48-byte compressed public key SK * P1.
func SkToPk(sk fr.Element) []byte {
	var pk bls12381.G1Affine
	pk.ScalarMultiplication(&g1Aff, sk.BigInt(new(big.Int)))
	b := pk.Bytes()
	return b[:]
}
