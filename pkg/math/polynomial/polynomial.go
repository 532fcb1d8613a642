package polynomial

import (
	"io"

	"github.com/rodrigodg1/umbral-go/pkg/math/curve"
	"github.com/rodrigodg1/umbral-go/pkg/math/sample"
)

// Polynomial represents f(X) = a₀ + a₁⋅X + … + aₜ⋅Xᵗ over ℤq.
type Polynomial struct {
	coefficients []*curve.Scalar
}

// NewPolynomial generates a Polynomial f(X) = constant + a₁⋅X + … + aₜ⋅Xᵗ,
// with coefficients in ℤq, and degree t.
//
// If constant is nil, it is interpreted as 0.
func NewPolynomial(rand io.Reader, degree int, constant *curve.Scalar) *Polynomial {
	polynomial := &Polynomial{
		coefficients: make([]*curve.Scalar, degree+1),
	}

	if constant == nil {
		constant = curve.NewScalar()
	}
	polynomial.coefficients[0] = curve.NewScalar().Set(constant)

	for i := 1; i <= degree; i++ {
		polynomial.coefficients[i] = sample.Scalar(rand)
	}

	return polynomial
}

// Evaluate evaluates the polynomial at index using Horner's method.
//
// Evaluating at 0 would return the shared secret itself, so it panics.
func (p *Polynomial) Evaluate(index *curve.Scalar) *curve.Scalar {
	if index.IsZero() {
		panic("polynomial: attempt to leak secret")
	}

	result := curve.NewScalar()
	// bₙ₋₁ = bₙ⋅x + aₙ₋₁
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		result.MultiplyAdd(result, index, p.coefficients[i])
	}
	return result
}

// Constant returns a reference to the constant coefficient of the polynomial.
func (p *Polynomial) Constant() *curve.Scalar {
	return p.coefficients[0]
}

// Degree is the highest power of the Polynomial.
func (p *Polynomial) Degree() int {
	return len(p.coefficients) - 1
}

// Zero overwrites all coefficients. The polynomial is unusable afterwards.
func (p *Polynomial) Zero() {
	for _, c := range p.coefficients {
		c.Zero()
	}
}
