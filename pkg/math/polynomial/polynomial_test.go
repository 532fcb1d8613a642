package polynomial

import (
	"crypto/rand"
	"testing"

	"github.com/rodrigodg1/umbral-go/pkg/math/curve"
	"github.com/rodrigodg1/umbral-go/pkg/math/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolynomialConstant(t *testing.T) {
	secret := sample.Scalar(rand.Reader)
	p := NewPolynomial(rand.Reader, 3, secret)
	assert.True(t, p.Constant().Equal(secret))
	assert.Equal(t, 3, p.Degree())
}

func TestPolynomialEvaluate(t *testing.T) {
	// f(X) = 5 + 2X + X², checked at X = 3: 5 + 6 + 9 = 20.
	p := &Polynomial{coefficients: []*curve.Scalar{
		curve.NewScalar().SetUInt32(5),
		curve.NewScalar().SetUInt32(2),
		curve.NewScalar().SetUInt32(1),
	}}
	got := p.Evaluate(curve.NewScalar().SetUInt32(3))
	assert.True(t, got.Equal(curve.NewScalar().SetUInt32(20)))
}

func TestPolynomialEvaluateAtZeroPanics(t *testing.T) {
	p := NewPolynomial(rand.Reader, 2, sample.Scalar(rand.Reader))
	require.Panics(t, func() {
		p.Evaluate(curve.NewScalar())
	})
}

func TestPolynomialZero(t *testing.T) {
	secret := sample.ScalarNonZero(rand.Reader)
	p := NewPolynomial(rand.Reader, 2, secret)
	p.Zero()
	assert.True(t, p.Constant().IsZero())
}
