// Package keys holds the long-lived key material of the scheme:
// encryption key pairs and the signing keys used to authenticate
// key fragments.
package keys

import (
	"io"

	"github.com/rodrigodg1/umbral-go/pkg/math/curve"
	"github.com/rodrigodg1/umbral-go/pkg/math/sample"
)

// SecretKey is a uniformly random non-zero scalar.
//
// It is deliberately not a BinaryMarshaler: key storage is the caller's
// problem, and accidental serialization of secrets should not compile.
type SecretKey struct {
	sk curve.Scalar
	pk *PublicKey
}

// NewSecretKey samples a fresh secret key from rand.
func NewSecretKey(rand io.Reader) *SecretKey {
	var key SecretKey
	x, X := sample.ScalarPointPair(rand)
	key.sk.Set(x)
	key.pk = &PublicKey{}
	key.pk.p.Set(X)
	x.Zero()
	return &key
}

// NewSecretKeyFromScalar builds a key pair from an existing non-zero scalar.
// The scalar is copied; the caller keeps ownership of the original.
func NewSecretKeyFromScalar(x *curve.Scalar) *SecretKey {
	var key SecretKey
	key.sk.Set(x)
	key.pk = &PublicKey{}
	key.pk.p.Set(key.sk.ActOnBase())
	return &key
}

// PublicKey returns the public counterpart, skᐧG.
func (key *SecretKey) PublicKey() *PublicKey {
	return key.pk
}

// Scalar exposes the underlying secret scalar for protocol use.
//
// The returned reference aliases the key's own memory: do not copy it
// around, and never write it to a transcript.
func (key *SecretKey) Scalar() *curve.Scalar {
	return &key.sk
}

// Zero wipes the secret scalar. The key is unusable afterwards.
func (key *SecretKey) Zero() {
	key.sk.Zero()
}

// PublicKey is a group point skᐧG. It is immutable once created.
type PublicKey struct {
	p curve.Point
}

// NewPublicKeyFromPoint wraps a non-identity group point as a public key.
func NewPublicKeyFromPoint(p *curve.Point) *PublicKey {
	var pk PublicKey
	pk.p.Set(p)
	return &pk
}

// Point returns the group element backing the key.
func (pk *PublicKey) Point() *curve.Point {
	return &pk.p
}

// Equal returns true if both keys are the same group element.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.p.Equal(&other.p)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	return pk.p.MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	return pk.p.UnmarshalBinary(data)
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
func (pk *PublicKey) WriteTo(w io.Writer) (int64, error) {
	return pk.p.WriteTo(w)
}

// Domain implements hash.WriterToWithDomain.
func (pk *PublicKey) Domain() string {
	return "PublicKey"
}
