package minpk

import "github.com/Iscaraca/minpk/internal/curve"

const (
	// DST is the domain separation tag of the basic (NUL) min_pk ciphersuite,
	// RFC 9380 hash-to-curve BLS12381G2_XMD:SHA-256_SSWU_RO_. It matches the
	// tag used by Sui's bls12381_min_pk_verify and fastcrypto.
	DST = "BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_NUL_"

	// PublicKeyLength is the size of a compressed G1 public key.
	PublicKeyLength = curve.G1CompressedSize
	// SignatureLength is the size of a compressed G2 signature.
	SignatureLength = curve.G2CompressedSize
)
