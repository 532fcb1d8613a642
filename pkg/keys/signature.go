package keys

import (
	"fmt"
	"io"

	"github.com/rodrigodg1/umbral-go/internal/params"
	"github.com/rodrigodg1/umbral-go/pkg/hash"
	"github.com/rodrigodg1/umbral-go/pkg/math/curve"
	"github.com/rodrigodg1/umbral-go/pkg/math/sample"
)

// Signature is a Schnorr signature over a message transcript.
type Signature struct {
	// R = kᐧG for the signing nonce k.
	R curve.Point
	// S = k + cᐧsk.
	S curve.Scalar
}

// Signer produces signatures binding messages to a signing key.
type Signer struct {
	key *SecretKey
}

// NewSigner wraps a secret key for signing. The signer borrows the key;
// zeroing the key invalidates the signer.
func NewSigner(key *SecretKey) *Signer {
	return &Signer{key: key}
}

// VerifyingKey returns the public key signatures verify under.
func (s *Signer) VerifyingKey() *PublicKey {
	return s.key.PublicKey()
}

// challenge derives the Fiat-Shamir challenge binding the nonce commitment,
// the verifying key and the message transcript.
func challenge(transcript *hash.Hash, R *curve.Point, pk *PublicKey) (*curve.Scalar, error) {
	if err := transcript.WriteAny(R, pk); err != nil {
		return nil, err
	}
	return sample.Scalar(transcript.Digest()), nil
}

// Sign signs the message accumulated in transcript.
//
// The transcript is consumed; pass a Clone if the caller still needs it.
func (s *Signer) Sign(rand io.Reader, transcript *hash.Hash) (*Signature, error) {
	var sig Signature
	k := sample.ScalarNonZero(rand)
	defer k.Zero()

	sig.R.Set(k.ActOnBase())
	c, err := challenge(transcript, &sig.R, s.VerifyingKey())
	if err != nil {
		return nil, fmt.Errorf("keys.Sign: %w", err)
	}
	sig.S.MultiplyAdd(c, s.key.Scalar(), k)
	return &sig, nil
}

// Verify checks the signature over the message accumulated in transcript.
//
// The transcript is consumed; pass a Clone if the caller still needs it.
func (sig *Signature) Verify(transcript *hash.Hash, pk *PublicKey) bool {
	if sig.R.IsIdentity() {
		return false
	}
	c, err := challenge(transcript, &sig.R, pk)
	if err != nil {
		return false
	}

	lhs := sig.S.ActOnBase()
	rhs := curve.NewIdentityPoint().Add(&sig.R, c.Act(pk.Point()))
	return lhs.Equal(rhs)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (sig *Signature) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, params.BytesSignature)
	rBytes, err := sig.R.Bytes()
	if err != nil {
		return nil, fmt.Errorf("keys.Signature: %w", err)
	}
	out = append(out, rBytes...)
	out = append(out, sig.S.Bytes()...)
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (sig *Signature) UnmarshalBinary(data []byte) error {
	if len(data) != params.BytesSignature {
		return fmt.Errorf("keys.Signature: invalid length %d", len(data))
	}
	if err := sig.R.UnmarshalBinary(data[:params.BytesPoint]); err != nil {
		return fmt.Errorf("keys.Signature.R: %w", err)
	}
	if err := sig.S.UnmarshalBinary(data[params.BytesPoint:]); err != nil {
		return fmt.Errorf("keys.Signature.S: %w", err)
	}
	return nil
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
func (sig *Signature) WriteTo(w io.Writer) (int64, error) {
	data, err := sig.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain.
func (sig *Signature) Domain() string {
	return "Signature"
}
