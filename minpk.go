// Package minpk verifies and aggregates BLS12-381 signatures in the min_pk
// variant: public keys are 48-byte compressed G1 points and signatures are
// 96-byte compressed G2 points, hashed with the basic (NUL) ciphersuite DST.
//
// The package level functions never return errors: any invalid input
// collapses to false or an empty slice. Use a Verifier and its Check methods
// to learn why an input was rejected.
package minpk

var defaultVerifier = NewVerifier()

// Verify reports whether sig is a valid signature by pk over msg.
func Verify(sig, pk, msg []byte) bool {
	return defaultVerifier.Verify(sig, pk, msg)
}

// Aggregate combines signatures into one. It returns an empty slice on any
// failure.
func Aggregate(sigs [][]byte) []byte {
	return defaultVerifier.Aggregate(sigs)
}

// VerifyAggregate reports whether aggSig is a valid aggregate of signatures
// by every key in pks over the same msg.
func VerifyAggregate(pks [][]byte, msg []byte, aggSig []byte) bool {
	return defaultVerifier.VerifyAggregate(pks, msg, aggSig)
}

// PublicKeyFromBytes decodes and validates a compressed public key.
func PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	return defaultVerifier.PublicKeyFromBytes(b)
}

// SignatureFromBytes decodes and validates a compressed signature.
func SignatureFromBytes(b []byte) (*Signature, error) {
	return defaultVerifier.SignatureFromBytes(b)
}
