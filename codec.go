package minpk

import (
	"fmt"

	"github.com/Iscaraca/minpk/internal/curve"
)

// PublicKey is a decoded G1 point. It may be the identity; verification
// rejects identity keys but decoding does not.
type PublicKey struct {
	engine curve.Engine
	point  curve.G1
}

// Bytes returns the 48-byte compressed encoding.
func (pk *PublicKey) Bytes() []byte {
	return pk.engine.CompressG1(pk.point)
}

// IsIdentity reports whether pk is the point at infinity.
func (pk *PublicKey) IsIdentity() bool {
	return pk.point.IsInfinity()
}

// Signature is a decoded G2 point. Aggregate signatures share this type.
type Signature struct {
	engine curve.Engine
	point  curve.G2
}

// Bytes returns the 96-byte compressed encoding.
func (sig *Signature) Bytes() []byte {
	return sig.engine.CompressG2(sig.point)
}

// IsIdentity reports whether sig is the point at infinity.
func (sig *Signature) IsIdentity() bool {
	return sig.point.IsInfinity()
}

// decodePublicKey checks the length, then delegates decompression, curve and
// subgroup checks to the engine.
func decodePublicKey(e curve.Engine, b []byte) (curve.G1, error) {
	if len(b) != PublicKeyLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrPublicKeyLength, PublicKeyLength, len(b))
	}
	p, err := e.DecompressG1(b)
	if err != nil {
		return nil, fmt.Errorf("public key: %w", err)
	}
	return p, nil
}

func decodeSignature(e curve.Engine, b []byte) (curve.G2, error) {
	if len(b) != SignatureLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrSignatureLength, SignatureLength, len(b))
	}
	p, err := e.DecompressG2(b)
	if err != nil {
		return nil, fmt.Errorf("signature: %w", err)
	}
	return p, nil
}

func encodeSignature(e curve.Engine, p curve.G2) []byte {
	return e.CompressG2(p)
}

// PublicKeyFromBytes parses the compressed form of a public key.
func (v *Verifier) PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	p, err := decodePublicKey(v.engine, b)
	if err != nil {
		return nil, err
	}
	return &PublicKey{engine: v.engine, point: p}, nil
}

// SignatureFromBytes parses the compressed form of a signature.
func (v *Verifier) SignatureFromBytes(b []byte) (*Signature, error) {
	p, err := decodeSignature(v.engine, b)
	if err != nil {
		return nil, err
	}
	return &Signature{engine: v.engine, point: p}, nil
}
