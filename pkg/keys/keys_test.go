package keys

import (
	"crypto/rand"
	"testing"

	"github.com/rodrigodg1/umbral-go/pkg/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPairDerivation(t *testing.T) {
	sk := NewSecretKey(rand.Reader)
	pk := sk.PublicKey()
	assert.True(t, pk.Point().Equal(sk.Scalar().ActOnBase()))
	assert.False(t, sk.Scalar().IsZero())
}

func TestPublicKeyMarshalRoundTrip(t *testing.T) {
	pk := NewSecretKey(rand.Reader).PublicKey()
	data, err := pk.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 33)

	var pk2 PublicKey
	require.NoError(t, pk2.UnmarshalBinary(data))
	assert.True(t, pk.Equal(&pk2))
}

func TestSecretKeyFromScalar(t *testing.T) {
	sk := NewSecretKey(rand.Reader)

	restored := NewSecretKeyFromScalar(sk.Scalar())
	assert.True(t, restored.PublicKey().Equal(sk.PublicKey()),
		"rebuilding from the scalar must derive the same public key")

	// The scalar is copied, so wiping the original leaves the copy intact.
	sk.Zero()
	assert.False(t, restored.Scalar().IsZero())
}

func TestPublicKeyFromPoint(t *testing.T) {
	pk := NewSecretKey(rand.Reader).PublicKey()
	wrapped := NewPublicKeyFromPoint(pk.Point())
	assert.True(t, wrapped.Equal(pk))
}

func TestSecretKeyZero(t *testing.T) {
	sk := NewSecretKey(rand.Reader)
	sk.Zero()
	assert.True(t, sk.Scalar().IsZero())
}

func message(parts ...[]byte) *hash.Hash {
	h := hash.New("KEYS_TEST")
	for _, p := range parts {
		_ = h.WriteAny(p)
	}
	return h
}

func TestSignVerify(t *testing.T) {
	signer := NewSigner(NewSecretKey(rand.Reader))

	sig, err := signer.Sign(rand.Reader, message([]byte("hello")))
	require.NoError(t, err)
	assert.True(t, sig.Verify(message([]byte("hello")), signer.VerifyingKey()))
}

func TestSignVerifyWrongMessage(t *testing.T) {
	signer := NewSigner(NewSecretKey(rand.Reader))
	sig, err := signer.Sign(rand.Reader, message([]byte("hello")))
	require.NoError(t, err)
	assert.False(t, sig.Verify(message([]byte("goodbye")), signer.VerifyingKey()))
}

func TestSignVerifyWrongKey(t *testing.T) {
	signer := NewSigner(NewSecretKey(rand.Reader))
	other := NewSecretKey(rand.Reader).PublicKey()
	sig, err := signer.Sign(rand.Reader, message([]byte("hello")))
	require.NoError(t, err)
	assert.False(t, sig.Verify(message([]byte("hello")), other))
}

func TestSignatureMarshalRoundTrip(t *testing.T) {
	signer := NewSigner(NewSecretKey(rand.Reader))
	sig, err := signer.Sign(rand.Reader, message([]byte("hello")))
	require.NoError(t, err)

	data, err := sig.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 65)

	var sig2 Signature
	require.NoError(t, sig2.UnmarshalBinary(data))
	assert.True(t, sig2.Verify(message([]byte("hello")), signer.VerifyingKey()))
}

func TestSignatureTamperedFails(t *testing.T) {
	signer := NewSigner(NewSecretKey(rand.Reader))
	sig, err := signer.Sign(rand.Reader, message([]byte("hello")))
	require.NoError(t, err)

	data, err := sig.MarshalBinary()
	require.NoError(t, err)
	data[len(data)-1] ^= 1

	var sig2 Signature
	if err := sig2.UnmarshalBinary(data); err == nil {
		assert.False(t, sig2.Verify(message([]byte("hello")), signer.VerifyingKey()))
	}
}
