package umbral

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/rodrigodg1/umbral-go/pkg/hash"
	"github.com/rodrigodg1/umbral-go/pkg/keys"
	"github.com/rodrigodg1/umbral-go/pkg/math/curve"
	"github.com/rodrigodg1/umbral-go/pkg/math/polynomial"
	"github.com/rodrigodg1/umbral-go/pkg/math/sample"
)

// KeyFrag is one share of a (t, n) split of a re-encryption key for a single
// Alice→Bob delegation. The share scalar rk is secret to the proxy holding
// the fragment; the commitment rk⋅U and the signature over the fragment's
// public fields let anyone check its provenance.
type KeyFrag struct {
	// id is the non-zero evaluation point of this share.
	id curve.Scalar
	// rk = f(id), the secret share.
	rk curve.Scalar
	// commitment = rk⋅U.
	commitment curve.Point
	// precursor is X = x⋅G for the delegation's ephemeral DH secret x.
	precursor curve.Point
	// signature covers (id, commitment, precursor, delegating pk, receiving pk)
	// under Alice's signing key.
	signature keys.Signature
}

// VerifiedKeyFrag is a KeyFrag whose signature has been checked for a
// specific delegation. It is the only form Reencrypt accepts, and its only
// constructors are KeyFrag.Verify and GenerateKFrags itself.
type VerifiedKeyFrag struct {
	kf *KeyFrag
}

// Unverified discards the verification status, e.g. before sending the
// fragment over a network.
func (vkf *VerifiedKeyFrag) Unverified() *KeyFrag {
	return vkf.kf
}

// ID returns the fragment's evaluation point.
func (kf *KeyFrag) ID() *curve.Scalar {
	return &kf.id
}

// Zero wipes the secret share. The fragment is unusable afterwards.
func (kf *KeyFrag) Zero() {
	kf.rk.Zero()
}

// signatureTranscript rebuilds the exact transcript Alice signed.
func (kf *KeyFrag) signatureTranscript(delegating, receiving *keys.PublicKey) (*hash.Hash, error) {
	h := hash.New(tagKFragSignature)
	if err := h.WriteAny(&kf.id, &kf.commitment, &kf.precursor, delegating, receiving); err != nil {
		return nil, err
	}
	return h, nil
}

// sharedSecretScalar computes d = H(X, pk, D), the non-interactive DH scalar
// tying the split to the receiving key. Alice computes D = x⋅pkB, Bob
// computes D = skB⋅X; both land on the same d.
func sharedSecretScalar(precursor *curve.Point, receiving *keys.PublicKey, dhPoint *curve.Point) (*curve.Scalar, error) {
	return nonZeroChallengeScalar(tagSharedSecret, precursor, receiving, dhPoint)
}

// GenerateKFrags splits the delegating key into shares shares of which any
// threshold reconstruct the re-encryption transform towards receiving.
//
// The polynomial itself is ephemeral: only the per-fragment evaluations and
// commitments survive this call. Fewer than threshold shares reveal nothing
// about the delegating key.
//
// The returned fragments are verified at birth; serialize them with
// Unverified before distribution, and have proxies re-verify on receipt.
func GenerateKFrags(rand io.Reader, delegating *keys.SecretKey, signer *keys.Signer,
	receiving *keys.PublicKey, threshold, shares int) ([]*VerifiedKeyFrag, error) {
	if threshold < 1 || threshold > shares {
		return nil, ErrInvalidThreshold
	}

	// Ephemeral DH: x, X = x⋅G, D = x⋅pkB.
	x, precursor := sample.ScalarPointPair(rand)
	defer x.Zero()
	dhPoint := x.Act(receiving.Point())
	defer dhPoint.Zero()

	d, err := sharedSecretScalar(precursor, receiving, dhPoint)
	if err != nil {
		return nil, fmt.Errorf("umbral.GenerateKFrags: %w", err)
	}
	defer d.Zero()

	// The polynomial's constant term is sk⋅d⁻¹, so that the factor d
	// reappears, and cancels, only when Bob decapsulates.
	coeff0 := curve.NewScalar().Invert(d)
	coeff0.Multiply(coeff0, delegating.Scalar())
	defer coeff0.Zero()

	f := polynomial.NewPolynomial(rand, threshold-1, coeff0)
	defer f.Zero()

	delegatingPK := delegating.PublicKey()
	U := commitmentGenerator()

	kfrags := make([]*VerifiedKeyFrag, 0, shares)
	seen := make(map[[32]byte]struct{}, shares)
	for len(kfrags) < shares {
		id := sample.ScalarNonZero(rand)
		var idKey [32]byte
		copy(idKey[:], id.Bytes())
		if _, ok := seen[idKey]; ok {
			continue
		}
		seen[idKey] = struct{}{}

		kf := &KeyFrag{}
		kf.id.Set(id)
		kf.rk.Set(f.Evaluate(id))
		kf.commitment.Set(kf.rk.Act(U))
		kf.precursor.Set(precursor)

		transcript, err := kf.signatureTranscript(delegatingPK, receiving)
		if err != nil {
			return nil, fmt.Errorf("umbral.GenerateKFrags: %w", err)
		}
		sig, err := signer.Sign(rand, transcript)
		if err != nil {
			return nil, fmt.Errorf("umbral.GenerateKFrags: %w", err)
		}
		kf.signature = *sig

		kfrags = append(kfrags, &VerifiedKeyFrag{kf: kf})
	}
	return kfrags, nil
}

// Verify checks the fragment's authenticity signature for the delegation
// identified by (verifying, delegating, receiving). A proxy must pass this
// gate before using the fragment for re-encryption.
func (kf *KeyFrag) Verify(verifying, delegating, receiving *keys.PublicKey) (*VerifiedKeyFrag, error) {
	if kf.id.IsZero() {
		return nil, ErrSignatureInvalid
	}
	transcript, err := kf.signatureTranscript(delegating, receiving)
	if err != nil {
		return nil, ErrSignatureInvalid
	}
	if !kf.signature.Verify(transcript, verifying) {
		return nil, ErrSignatureInvalid
	}
	return &VerifiedKeyFrag{kf: kf}, nil
}

type keyFragRaw struct {
	ID         []byte
	RK         []byte
	Commitment []byte
	Precursor  []byte
	Signature  []byte
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (kf *KeyFrag) MarshalBinary() ([]byte, error) {
	commitment, err := kf.commitment.Bytes()
	if err != nil {
		return nil, fmt.Errorf("umbral.KeyFrag: %w", err)
	}
	precursor, err := kf.precursor.Bytes()
	if err != nil {
		return nil, fmt.Errorf("umbral.KeyFrag: %w", err)
	}
	sig, err := kf.signature.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("umbral.KeyFrag: %w", err)
	}
	return cbor.Marshal(&keyFragRaw{
		ID:         kf.id.Bytes(),
		RK:         kf.rk.Bytes(),
		Commitment: commitment,
		Precursor:  precursor,
		Signature:  sig,
	})
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// Decoding is purely syntactic; the receiving proxy must still call Verify.
func (kf *KeyFrag) UnmarshalBinary(data []byte) error {
	var raw keyFragRaw
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("umbral.KeyFrag: %w", err)
	}
	if err := kf.id.UnmarshalBinary(raw.ID); err != nil {
		return fmt.Errorf("umbral.KeyFrag.ID: %w", err)
	}
	if err := kf.rk.UnmarshalBinary(raw.RK); err != nil {
		return fmt.Errorf("umbral.KeyFrag.RK: %w", err)
	}
	if err := kf.commitment.UnmarshalBinary(raw.Commitment); err != nil {
		return fmt.Errorf("umbral.KeyFrag.Commitment: %w", err)
	}
	if err := kf.precursor.UnmarshalBinary(raw.Precursor); err != nil {
		return fmt.Errorf("umbral.KeyFrag.Precursor: %w", err)
	}
	if err := kf.signature.UnmarshalBinary(raw.Signature); err != nil {
		return fmt.Errorf("umbral.KeyFrag.Signature: %w", err)
	}
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The verified wrapper
// serializes exactly as the underlying fragment.
func (vkf *VerifiedKeyFrag) MarshalBinary() ([]byte, error) {
	return vkf.kf.MarshalBinary()
}
