package umbral

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/rodrigodg1/umbral-go/pkg/keys"
	"github.com/rodrigodg1/umbral-go/pkg/math/curve"
	"github.com/rodrigodg1/umbral-go/pkg/math/sample"
)

// SharedSecret is the KEM output: a group point whose encoding feeds the
// DEM key derivation. It is secret; Zero it once the DEM key is derived.
type SharedSecret struct {
	p curve.Point
}

// Bytes returns the canonical encoding of the shared secret, to be used
// as DEM key material.
func (ss *SharedSecret) Bytes() []byte {
	data, err := ss.p.Bytes()
	if err != nil {
		// The KEM never produces the identity.
		panic("umbral: SharedSecret: " + err.Error())
	}
	return data
}

// Zero wipes the shared secret.
func (ss *SharedSecret) Zero() {
	ss.p.Zero()
}

// Capsule is the KEM half of a hybrid ciphertext: points E = r⋅G, V = u⋅G
// and the scalar s = u + r⋅H(E, V). It is immutable, and one capsule may be
// re-encrypted by many proxies independently.
type Capsule struct {
	pointE curve.Point
	pointV curve.Point
	s      curve.Scalar
}

// capsuleChallenge computes h = H(E, V).
func capsuleChallenge(E, V *curve.Point) (*curve.Scalar, error) {
	return challengeScalar(tagCapsulePoints, E, V)
}

// Encapsulate generates a fresh capsule under the delegating public key,
// together with the shared secret (r+u)⋅pk that the DEM key is derived from.
//
// The caller owns the shared secret and must Zero it after use.
func Encapsulate(rand io.Reader, delegating *keys.PublicKey) (*Capsule, *SharedSecret, error) {
	r := sample.ScalarNonZero(rand)
	defer r.Zero()
	u := sample.ScalarNonZero(rand)
	defer u.Zero()

	var c Capsule
	c.pointE.Set(r.ActOnBase())
	c.pointV.Set(u.ActOnBase())

	h, err := capsuleChallenge(&c.pointE, &c.pointV)
	if err != nil {
		return nil, nil, fmt.Errorf("umbral.Encapsulate: %w", err)
	}
	// s = u + r⋅h
	c.s.MultiplyAdd(r, h, u)

	sum := curve.NewScalar().Add(r, u)
	defer sum.Zero()

	var ss SharedSecret
	ss.p.Set(sum.Act(delegating.Point()))
	return &c, &ss, nil
}

// Validate checks the capsule's self-consistency: s⋅G == V + H(E, V)⋅E.
//
// Any consumer of a capsule from an untrusted source must call this
// before use. It returns ErrCapsuleMalformed on failure.
func (c *Capsule) Validate() error {
	if c.pointE.IsIdentity() || c.pointV.IsIdentity() {
		return ErrCapsuleMalformed
	}
	h, err := capsuleChallenge(&c.pointE, &c.pointV)
	if err != nil {
		return ErrCapsuleMalformed
	}
	lhs := c.s.ActOnBase()
	rhs := curve.NewIdentityPoint().Add(&c.pointV, h.Act(&c.pointE))
	if !lhs.Equal(rhs) {
		return ErrCapsuleMalformed
	}
	return nil
}

// OpenOriginal recovers the shared secret with the delegating secret key
// itself, without any re-encryption: sk⋅(E + V) = (r+u)⋅pk.
func (c *Capsule) OpenOriginal(delegating *keys.SecretKey) (*SharedSecret, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	sum := curve.NewIdentityPoint().Add(&c.pointE, &c.pointV)
	var ss SharedSecret
	ss.p.Set(delegating.Scalar().Act(sum))
	return &ss, nil
}

type capsuleRaw struct {
	E []byte
	V []byte
	S []byte
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c *Capsule) MarshalBinary() ([]byte, error) {
	eBytes, err := c.pointE.Bytes()
	if err != nil {
		return nil, fmt.Errorf("umbral.Capsule: %w", err)
	}
	vBytes, err := c.pointV.Bytes()
	if err != nil {
		return nil, fmt.Errorf("umbral.Capsule: %w", err)
	}
	return cbor.Marshal(&capsuleRaw{E: eBytes, V: vBytes, S: c.s.Bytes()})
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// Decoding is purely syntactic; callers receiving a capsule from an
// untrusted source must still call Validate.
func (c *Capsule) UnmarshalBinary(data []byte) error {
	var raw capsuleRaw
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("umbral.Capsule: %w", err)
	}
	if err := c.pointE.UnmarshalBinary(raw.E); err != nil {
		return fmt.Errorf("umbral.Capsule.E: %w", err)
	}
	if err := c.pointV.UnmarshalBinary(raw.V); err != nil {
		return fmt.Errorf("umbral.Capsule.V: %w", err)
	}
	if err := c.s.UnmarshalBinary(raw.S); err != nil {
		return fmt.Errorf("umbral.Capsule.S: %w", err)
	}
	return nil
}
