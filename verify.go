package minpk

import (
	"fmt"
	"time"
)

// CheckSignature validates a single min_pk signature and reports why it was
// rejected. It follows CoreVerify of draft-irtf-cfrg-bls-signature section 2.7
// with KeyValidate applied to the public key.
func (v *Verifier) CheckSignature(sig, pk, msg []byte) error {
	start := time.Now()
	err := v.checkSignature(sig, pk, msg)
	v.observe(opVerify, start, err)
	return err
}

func (v *Verifier) checkSignature(sig, pk, msg []byte) error {
	// Steps 1-2: R = signature_to_point(signature), subgroup_check(R)
	S, err := decodeSignature(v.engine, sig)
	if err != nil {
		return err
	}
	if S.IsInfinity() {
		return ErrIdentitySignature
	}

	// Step 3: KeyValidate(PK)
	W, err := decodePublicKey(v.engine, pk)
	if err != nil {
		return err
	}
	if W.IsInfinity() {
		return ErrIdentityPublicKey
	}

	// Step 4: Q = hash_to_point(message)
	Q, err := hashToSignatureGroup(v.engine, msg)
	if err != nil {
		return err
	}

	// Steps 5-7: e(PK, Q) == e(P1, R)
	ok, err := v.engine.PairingCheck(W, Q, S)
	if err != nil {
		return err
	}
	if !ok {
		return ErrVerificationFailed
	}
	return nil
}

// Verify reports whether sig is a valid signature by pk over msg. Every
// failure, including malformed input, yields false.
func (v *Verifier) Verify(sig, pk, msg []byte) bool {
	return v.CheckSignature(sig, pk, msg) == nil
}

// CheckAggregate validates an aggregate signature in which every signer signed
// the same msg. The public keys are summed so a single pairing check covers
// the whole set.
func (v *Verifier) CheckAggregate(pks [][]byte, msg []byte, aggSig []byte) error {
	start := time.Now()
	err := v.checkAggregate(pks, msg, aggSig)
	v.observe(opVerifyAggregate, start, err)
	return err
}

func (v *Verifier) checkAggregate(pks [][]byte, msg []byte, aggSig []byte) error {
	if len(pks) == 0 {
		return ErrNoPublicKeys
	}

	aggPk := v.engine.IdentityG1()
	for i, b := range pks {
		W, err := decodePublicKey(v.engine, b)
		if err != nil {
			return fmt.Errorf("key %d: %w", i, err)
		}
		if W.IsInfinity() {
			return fmt.Errorf("key %d: %w", i, ErrIdentityPublicKey)
		}
		aggPk = v.engine.AddG1(aggPk, W)
	}

	S, err := decodeSignature(v.engine, aggSig)
	if err != nil {
		return err
	}
	if S.IsInfinity() {
		return ErrIdentitySignature
	}

	Q, err := hashToSignatureGroup(v.engine, msg)
	if err != nil {
		return err
	}

	ok, err := v.engine.PairingCheck(aggPk, Q, S)
	if err != nil {
		return err
	}
	if !ok {
		return ErrVerificationFailed
	}
	return nil
}

// VerifyAggregate reports whether aggSig is a valid aggregate signature by
// all of pks over the same msg. An empty key list yields false.
func (v *Verifier) VerifyAggregate(pks [][]byte, msg []byte, aggSig []byte) bool {
	return v.CheckAggregate(pks, msg, aggSig) == nil
}
