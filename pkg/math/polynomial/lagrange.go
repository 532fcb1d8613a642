package polynomial

import (
	"errors"

	"github.com/rodrigodg1/umbral-go/pkg/math/curve"
)

// ErrRepeatedPoint is returned when two interpolation points coincide,
// which makes the linear system singular.
var ErrRepeatedPoint = errors.New("polynomial: repeated interpolation point")

// Lagrange returns the Lagrange coefficients at 0 for the given
// interpolation points, in matching order.
//
// The following formulas are taken from
// https://en.wikipedia.org/wiki/Lagrange_polynomial
//
//	         x₀ ⋅⋅⋅ xₖ
//	lⱼ(0) = --------------------------------------------------
//	         xⱼ⋅(x₀ - xⱼ)⋅⋅⋅(xⱼ₋₁ - xⱼ)⋅(xⱼ₊₁ - xⱼ)⋅⋅⋅(xₖ - xⱼ)
//
// All points must be distinct and non-zero.
func Lagrange(xs []*curve.Scalar) ([]*curve.Scalar, error) {
	// numerator = x₀ ⋅ … ⋅ xₖ
	numerator := curve.NewScalar().SetUInt32(1)
	for _, x := range xs {
		if x.IsZero() {
			return nil, errors.New("polynomial: interpolation point at 0")
		}
		numerator.Multiply(numerator, x)
	}

	coefficients := make([]*curve.Scalar, len(xs))
	tmp := curve.NewScalar()
	for j, xJ := range xs {
		// denominator = xⱼ⋅(x₀ - xⱼ)⋅⋅⋅(xⱼ₋₁ - xⱼ)⋅(xⱼ₊₁ - xⱼ)⋅⋅⋅(xₖ - xⱼ)
		denominator := curve.NewScalar().Set(xJ)
		for i, xI := range xs {
			if i == j {
				continue
			}
			tmp.Subtract(xI, xJ)
			if tmp.IsZero() {
				return nil, ErrRepeatedPoint
			}
			denominator.Multiply(denominator, tmp)
		}
		// lⱼ = numerator / denominator
		lJ := curve.NewScalar().Invert(denominator)
		lJ.Multiply(lJ, numerator)
		coefficients[j] = lJ
	}
	return coefficients, nil
}
