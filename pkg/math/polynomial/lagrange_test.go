package polynomial

import (
	"crypto/rand"
	"testing"

	"github.com/rodrigodg1/umbral-go/pkg/math/curve"
	"github.com/rodrigodg1/umbral-go/pkg/math/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// interpolateAtZero evaluates f at each x, then recombines the shares
// with the Lagrange coefficients; the result must be f(0).
func interpolateAtZero(t *testing.T, f *Polynomial, xs []*curve.Scalar) *curve.Scalar {
	t.Helper()
	lambdas, err := Lagrange(xs)
	require.NoError(t, err)
	require.Len(t, lambdas, len(xs))

	result := curve.NewScalar()
	for i, x := range xs {
		share := f.Evaluate(x)
		result.MultiplyAdd(lambdas[i], share, result)
	}
	return result
}

func TestLagrangeRecoversConstant(t *testing.T) {
	for _, degree := range []int{0, 1, 2, 4} {
		secret := sample.Scalar(rand.Reader)
		f := NewPolynomial(rand.Reader, degree, secret)

		xs := make([]*curve.Scalar, degree+1)
		for i := range xs {
			xs[i] = sample.ScalarNonZero(rand.Reader)
		}

		got := interpolateAtZero(t, f, xs)
		assert.True(t, got.Equal(secret), "degree %d interpolation failed", degree)
	}
}

func TestLagrangeMorePointsThanDegree(t *testing.T) {
	secret := sample.Scalar(rand.Reader)
	f := NewPolynomial(rand.Reader, 1, secret)

	xs := make([]*curve.Scalar, 4)
	for i := range xs {
		xs[i] = sample.ScalarNonZero(rand.Reader)
	}
	got := interpolateAtZero(t, f, xs)
	assert.True(t, got.Equal(secret), "extra points should not change the interpolation")
}

func TestLagrangeRejectsRepeatedPoints(t *testing.T) {
	x := sample.ScalarNonZero(rand.Reader)
	dup := curve.NewScalar().Set(x)
	_, err := Lagrange([]*curve.Scalar{x, dup})
	assert.ErrorIs(t, err, ErrRepeatedPoint)
}

func TestLagrangeRejectsZeroPoint(t *testing.T) {
	_, err := Lagrange([]*curve.Scalar{curve.NewScalar()})
	assert.Error(t, err)
}
