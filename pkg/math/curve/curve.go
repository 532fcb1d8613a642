// Package curve is a thin adapter over the secp256k1 arithmetic backend.
//
// The backend's API surface is somewhat unstable, so all the related
// logic is isolated here: the rest of the module only ever sees Scalar
// and Point.
package curve

import (
	"encoding/hex"

	"github.com/cronokirby/saferith"
)

// order is the order of the secp256k1 group, as a modulus suitable for
// rejection sampling.
var order *saferith.Modulus

// Order returns q, the order of the secp256k1 group.
func Order() *saferith.Modulus {
	return order
}

func mustDecodeHex(s string) []byte {
	data, err := hex.DecodeString(s)
	if err != nil {
		panic("curve: " + err.Error())
	}
	return data
}

func init() {
	qBytes := mustDecodeHex("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	order = saferith.ModulusFromNat(new(saferith.Nat).SetBytes(qBytes))
}
