package umbral

import (
	"sync"

	"github.com/rodrigodg1/umbral-go/pkg/hash"
	"github.com/rodrigodg1/umbral-go/pkg/math/curve"
	"github.com/rodrigodg1/umbral-go/pkg/math/sample"
)

// Domain separation tags for every hash use site in the scheme.
const (
	tagCapsulePoints     = "CAPSULE_POINTS"
	tagSharedSecret      = "SHARED_SECRET"
	tagCFragVerification = "CFRAG_VERIFICATION"
	tagKFragSignature    = "KFRAG_SIGNATURE"
	tagPointGenerator    = "POINT_GENERATOR"
)

var (
	uOnce sync.Once
	u     *curve.Point
)

// commitmentGenerator returns U, a second generator with no known discrete
// log relation to G. Key fragment commitments rk⋅U live in a different
// "namespace" than public keys rk⋅G, so share material can never be
// mistaken for, or reused as, key material.
func commitmentGenerator() *curve.Point {
	uOnce.Do(func() {
		h := hash.New(tagPointGenerator)
		if err := h.WriteAny(curve.NewBasePoint()); err != nil {
			panic("umbral: deriving commitment generator: " + err.Error())
		}
		u = sample.Point(h.Digest())
	})
	return u
}

// challengeScalar hashes the given transcript items under tag and maps the
// digest to a uniform scalar.
func challengeScalar(tag string, items ...interface{}) (*curve.Scalar, error) {
	h := hash.New(tag)
	if err := h.WriteAny(items...); err != nil {
		return nil, err
	}
	return sample.Scalar(h.Digest()), nil
}

// nonZeroChallengeScalar is challengeScalar restricted to ℤq*, for values
// that get inverted.
func nonZeroChallengeScalar(tag string, items ...interface{}) (*curve.Scalar, error) {
	h := hash.New(tag)
	if err := h.WriteAny(items...); err != nil {
		return nil, err
	}
	return sample.ScalarNonZero(h.Digest()), nil
}
