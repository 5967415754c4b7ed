package minpk

import "github.com/Iscaraca/minpk/internal/curve"

// hashToSignatureGroup maps msg into G2 under the fixed DST. The error path
// is only reachable through an engine fault.
func hashToSignatureGroup(e curve.Engine, msg []byte) (curve.G2, error) {
	return e.HashToG2(msg, []byte(DST))
}
