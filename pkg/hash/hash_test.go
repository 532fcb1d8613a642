package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashDomainsSeparate(t *testing.T) {
	h1 := New("DOMAIN_A")
	h2 := New("DOMAIN_B")
	require.NoError(t, h1.WriteAny([]byte("same input")))
	require.NoError(t, h2.WriteAny([]byte("same input")))
	assert.NotEqual(t, h1.Sum(), h2.Sum())
}

func TestHashBoundaryAmbiguity(t *testing.T) {
	// "ab" ‖ "c" must hash differently from "a" ‖ "bc".
	h1 := New("T")
	h2 := New("T")
	require.NoError(t, h1.WriteAny([]byte("ab"), []byte("c")))
	require.NoError(t, h2.WriteAny([]byte("a"), []byte("bc")))
	assert.NotEqual(t, h1.Sum(), h2.Sum())
}

func TestHashTypedDomains(t *testing.T) {
	h1 := New("T")
	h2 := New("T")
	require.NoError(t, h1.WriteAny(BytesWithDomain{TheDomain: "x", Bytes: []byte("v")}))
	require.NoError(t, h2.WriteAny(BytesWithDomain{TheDomain: "y", Bytes: []byte("v")}))
	assert.NotEqual(t, h1.Sum(), h2.Sum())
}

func TestHashClone(t *testing.T) {
	h := New("T")
	require.NoError(t, h.WriteAny([]byte("prefix")))

	c := h.Clone()
	require.NoError(t, c.WriteAny([]byte("suffix")))
	assert.NotEqual(t, h.Sum(), c.Sum(), "writing to a clone must not affect the original")

	c2 := h.Clone()
	require.NoError(t, c2.WriteAny([]byte("suffix")))
	assert.Equal(t, c.Sum(), c2.Sum(), "clones with the same input must agree")
}

func TestHashSumLength(t *testing.T) {
	assert.Len(t, New("T").Sum(), DigestLengthBytes)
}
