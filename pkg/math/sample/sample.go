// Package sample draws uniform curve elements from an arbitrary io.Reader.
//
// The reader may be a CSPRNG, or the extendable digest stream of a
// transcript hash when deriving Fiat-Shamir challenges.
package sample

import (
	"fmt"
	"io"

	"github.com/cronokirby/saferith"
	"github.com/rodrigodg1/umbral-go/internal/params"
	"github.com/rodrigodg1/umbral-go/pkg/math/curve"
)

const maxIterations = 255

// ErrMaxIterations is returned in a panic when the randomness source keeps
// failing or producing out-of-range values.
var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

// modN samples an element of ℤₙ by rejection.
//
// The bound is a private copy of the modulus value: saferith's Cmp resizes
// the limbs of both operands in place, so comparing against a shared Modulus
// directly would be a data race between concurrent samplers.
func modN(rand io.Reader, n *saferith.Modulus) *saferith.Nat {
	out := new(saferith.Nat)
	bound := n.Nat()
	buf := make([]byte, (n.BitLen()+7)/8)
	for {
		mustReadBits(rand, buf)
		out.SetBytes(buf)
		_, _, lt := out.Cmp(bound)
		if lt == 1 {
			return out
		}
	}
}

// Scalar returns a scalar sampled uniformly from ℤq.
func Scalar(rand io.Reader) *curve.Scalar {
	return curve.NewScalar().SetNat(modN(rand, curve.Order()))
}

// ScalarNonZero returns a scalar sampled uniformly from ℤq*.
func ScalarNonZero(rand io.Reader) *curve.Scalar {
	for i := 0; i < maxIterations; i++ {
		s := Scalar(rand)
		if !s.IsZero() {
			return s
		}
	}
	panic(ErrMaxIterations)
}

// ScalarPointPair returns a non-zero scalar x together with X = x⋅G.
func ScalarPointPair(rand io.Reader) (*curve.Scalar, *curve.Point) {
	x := ScalarNonZero(rand)
	return x, x.ActOnBase()
}

// Point returns a group element with unknown discrete logarithm, derived
// from the stream by trying successive candidates as compressed x
// coordinates until one lies on the curve.
//
// About half of all candidates succeed, so this terminates quickly.
func Point(rand io.Reader) *curve.Point {
	buf := make([]byte, params.BytesPoint)
	buf[0] = 2
	p := curve.NewIdentityPoint()
	for i := 0; i < maxIterations; i++ {
		mustReadBits(rand, buf[1:])
		if err := p.UnmarshalBinary(buf); err == nil {
			return p
		}
	}
	panic(ErrMaxIterations)
}
