// Package curve is the boundary between the min_pk protocol layer and the
// BLS12-381 arithmetic it consumes. An Engine exposes only the capabilities the
// protocol needs: point decompression with subgroup checks, compression, point
// addition, hash-to-G2 and a pairing equality test.
package curve

//go:generate go run go.uber.org/mock/mockgen -source=engine.go -destination=curvemock/engine.go -package=curvemock

import "errors"

const (
	// G1CompressedSize is the length of a compressed G1 point.
	G1CompressedSize = 48
	// G2CompressedSize is the length of a compressed G2 point.
	G2CompressedSize = 96

	// maskCompressed is the high bit of the first byte of a compressed point.
	maskCompressed = 0x80
)

var (
	ErrInvalidEncoding = errors.New("invalid point encoding")
	ErrNotInSubgroup   = errors.New("point not in prime-order subgroup")
	ErrHashToCurve     = errors.New("hash to curve failed")
)

// G1 is a decoded point of the public key group. Values are only meaningful
// to the Engine that produced them.
type G1 interface {
	IsInfinity() bool
}

// G2 is a decoded point of the signature group. Values are only meaningful
// to the Engine that produced them.
type G2 interface {
	IsInfinity() bool
}

// Engine is the set of curve primitives the protocol layer depends on.
// Implementations must be safe for concurrent use.
type Engine interface {
	// Name identifies the backing library.
	Name() string

	// DecompressG1 decodes a 48-byte compressed point. The result is on the
	// curve and in the prime-order subgroup, or the identity.
	DecompressG1(b []byte) (G1, error)
	// DecompressG2 decodes a 96-byte compressed point. The result is on the
	// curve and in the prime-order subgroup, or the identity.
	DecompressG2(b []byte) (G2, error)

	CompressG1(p G1) []byte
	CompressG2(p G2) []byte

	IdentityG1() G1
	IdentityG2() G2
	AddG1(a, b G1) G1
	AddG2(a, b G2) G2

	// HashToG2 maps msg into G2 with expand_message_xmd (SHA-256) and the
	// SSWU random-oracle map, domain separated by dst.
	HashToG2(msg, dst []byte) (G2, error)

	// PairingCheck reports whether e(pk, h) == e(g1, sig), g1 being the
	// standard generator of G1.
	PairingCheck(pk G1, h G2, sig G2) (bool, error)
}

// checkCompressed rejects inputs of the wrong size or without the compression
// flag before they reach the backing library.
func checkCompressed(b []byte, size int) error {
	if len(b) != size {
		return ErrInvalidEncoding
	}
	if b[0]&maskCompressed == 0 {
		return ErrInvalidEncoding
	}
	return nil
}
