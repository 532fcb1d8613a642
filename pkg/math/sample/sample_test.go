package sample

import (
	"crypto/rand"
	"testing"

	"github.com/rodrigodg1/umbral-go/pkg/hash"
	"github.com/stretchr/testify/assert"
)

func TestScalarNonZero(t *testing.T) {
	for i := 0; i < 32; i++ {
		assert.False(t, ScalarNonZero(rand.Reader).IsZero())
	}
}

func TestScalarPointPair(t *testing.T) {
	x, X := ScalarPointPair(rand.Reader)
	assert.True(t, X.Equal(x.ActOnBase()))
}

func TestPointFromDigestIsDeterministic(t *testing.T) {
	p1 := Point(hash.New("TEST_GENERATOR").Digest())
	p2 := Point(hash.New("TEST_GENERATOR").Digest())
	assert.True(t, p1.Equal(p2), "the same stream should give the same point")

	p3 := Point(hash.New("OTHER_GENERATOR").Digest())
	assert.False(t, p1.Equal(p3), "different streams should give different points")

	assert.False(t, p1.IsIdentity())
}

func TestScalarFromDigestIsDeterministic(t *testing.T) {
	s1 := Scalar(hash.New("A").Digest())
	s2 := Scalar(hash.New("A").Digest())
	s3 := Scalar(hash.New("B").Digest())
	assert.True(t, s1.Equal(s2))
	assert.False(t, s1.Equal(s3))
}
