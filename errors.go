package minpk

import (
	"errors"

	"github.com/Iscaraca/minpk/internal/curve"
)

var (
	ErrPublicKeyLength = errors.New("invalid public key length")
	ErrSignatureLength = errors.New("invalid signature length")
	ErrInvalidEncoding = curve.ErrInvalidEncoding
	ErrNotInSubgroup   = curve.ErrNotInSubgroup
	ErrHashToCurve     = curve.ErrHashToCurve

	ErrIdentityPublicKey = errors.New("public key is the identity element")
	ErrIdentitySignature = errors.New("signature is the identity element")

	ErrNoPublicKeys       = errors.New("no public keys")
	ErrNoSignatures       = errors.New("no signatures")
	ErrVerificationFailed = errors.New("signature verification failed")
)

// reason maps an error onto the coarse failure category used in metrics and
// logs.
func reason(err error) string {
	switch {
	case err == nil:
		return "valid"
	case errors.Is(err, ErrPublicKeyLength), errors.Is(err, ErrSignatureLength):
		return "size"
	case errors.Is(err, ErrInvalidEncoding):
		return "encoding"
	case errors.Is(err, ErrNotInSubgroup):
		return "subgroup"
	case errors.Is(err, ErrIdentityPublicKey), errors.Is(err, ErrIdentitySignature):
		return "identity"
	case errors.Is(err, ErrNoPublicKeys), errors.Is(err, ErrNoSignatures):
		return "empty"
	case errors.Is(err, ErrHashToCurve):
		return "hash"
	case errors.Is(err, ErrVerificationFailed):
		return "mismatch"
	default:
		return "error"
	}
}
