package umbral

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/rodrigodg1/umbral-go/pkg/keys"
	"github.com/rodrigodg1/umbral-go/pkg/math/curve"
	"github.com/rodrigodg1/umbral-go/pkg/math/sample"
)

// CapsuleFragProof is the non-interactive proof that a capsule fragment was
// computed with the same share rk committed to by the key fragment. It is a
// Schnorr-style proof of equality of discrete logs across the three bases
// E, V and U.
type CapsuleFragProof struct {
	// pointE2 = τ⋅E, pointV2 = τ⋅V, pointU2 = τ⋅U for the proof nonce τ.
	pointE2 curve.Point
	pointV2 curve.Point
	pointU2 curve.Point
	// commitment = rk⋅U, carried over from the key fragment.
	commitment curve.Point
	// z = τ + h⋅rk for the challenge h.
	z curve.Scalar
	// kfragSignature is Alice's signature over the key fragment, so the
	// verifier can tie the commitment to a delegation without the kfrag.
	kfragSignature keys.Signature
}

// CapsuleFrag is the result of one proxy applying one key fragment to one
// capsule: E1 = rk⋅E, V1 = rk⋅V, plus the correctness proof. Immutable
// once produced, and disposable after combination.
type CapsuleFrag struct {
	pointE1   curve.Point
	pointV1   curve.Point
	id        curve.Scalar
	precursor curve.Point
	proof     CapsuleFragProof
}

// VerifiedCapsuleFrag is a CapsuleFrag that passed Verify. The combiner
// accepts nothing else: this type is the sole defense against a proxy
// feeding garbage into the reconstruction.
type VerifiedCapsuleFrag struct {
	cf *CapsuleFrag
}

// Unverified discards the verification status, e.g. before sending the
// fragment over a network.
func (vcf *VerifiedCapsuleFrag) Unverified() *CapsuleFrag {
	return vcf.cf
}

// ID returns the originating key fragment's evaluation point.
func (cf *CapsuleFrag) ID() *curve.Scalar {
	return &cf.id
}

// cfragChallenge computes the Fiat-Shamir challenge over the full proof
// transcript. A nil metadata is absent from the transcript, which is
// distinct from an empty one.
func cfragChallenge(capsule *Capsule, cf *CapsuleFrag, metadata []byte) (*curve.Scalar, error) {
	items := []interface{}{
		&capsule.pointE, &cf.pointE1, &cf.proof.pointE2,
		&capsule.pointV, &cf.pointV1, &cf.proof.pointV2,
		commitmentGenerator(), &cf.proof.commitment, &cf.proof.pointU2,
	}
	if metadata != nil {
		items = append(items, metadata)
	}
	return challengeScalar(tagCFragVerification, items...)
}

// Reencrypt transforms a capsule with a verified key fragment, producing a
// capsule fragment together with its correctness proof.
//
// The optional metadata is folded into the proof's challenge. When it is
// non-nil, Verify must be given the same bytes; it never leaves the proxy
// otherwise. Pass nil when no metadata binding is wanted.
//
// A fresh proof nonce is drawn on every call. Reusing a nonce across two
// re-encryptions with the same fragment leaks the fragment's secret share,
// which is why no deterministic variant of this operation exists.
func Reencrypt(rand io.Reader, capsule *Capsule, vkfrag *VerifiedKeyFrag, metadata []byte) (*VerifiedCapsuleFrag, error) {
	if err := capsule.Validate(); err != nil {
		return nil, err
	}
	kf := vkfrag.kf

	cf := &CapsuleFrag{}
	cf.pointE1.Set(kf.rk.Act(&capsule.pointE))
	cf.pointV1.Set(kf.rk.Act(&capsule.pointV))
	cf.id.Set(&kf.id)
	cf.precursor.Set(&kf.precursor)
	cf.proof.commitment.Set(&kf.commitment)
	cf.proof.kfragSignature = kf.signature

	tau := sample.ScalarNonZero(rand)
	defer tau.Zero()
	cf.proof.pointE2.Set(tau.Act(&capsule.pointE))
	cf.proof.pointV2.Set(tau.Act(&capsule.pointV))
	cf.proof.pointU2.Set(tau.Act(commitmentGenerator()))

	h, err := cfragChallenge(capsule, cf, metadata)
	if err != nil {
		return nil, fmt.Errorf("umbral.Reencrypt: %w", err)
	}
	// z = τ + h⋅rk
	cf.proof.z.MultiplyAdd(h, &kf.rk, tau)

	return &VerifiedCapsuleFrag{cf: cf}, nil
}

// Verify checks the fragment against the capsule it claims to re-encrypt
// and the delegation identified by (verifying, delegating, receiving).
// The metadata must be the same bytes the proxy passed to Reencrypt, or
// nil if none were.
//
// It re-verifies the embedded key fragment signature, then checks the
// three proof equations
//
//	z⋅E == E2 + h⋅E1
//	z⋅V == V2 + h⋅V1
//	z⋅U == U2 + h⋅commitment
//
// which together show that E1 and V1 were scaled by the very rk committed
// to in the key fragment, without revealing rk.
//
// Verify is a pure function and safe to run concurrently over many
// fragments. A failing fragment must be discarded, not retried.
func (cf *CapsuleFrag) Verify(capsule *Capsule, verifying, delegating, receiving *keys.PublicKey, metadata []byte) (*VerifiedCapsuleFrag, error) {
	if err := capsule.Validate(); err != nil {
		return nil, err
	}

	// The signature ties (id, commitment, precursor) to the delegation.
	kfView := &KeyFrag{}
	kfView.id.Set(&cf.id)
	kfView.commitment.Set(&cf.proof.commitment)
	kfView.precursor.Set(&cf.precursor)
	transcript, err := kfView.signatureTranscript(delegating, receiving)
	if err != nil {
		return nil, ErrSignatureInvalid
	}
	if !cf.proof.kfragSignature.Verify(transcript, verifying) {
		return nil, ErrSignatureInvalid
	}

	h, err := cfragChallenge(capsule, cf, metadata)
	if err != nil {
		return nil, ErrProofInvalid
	}

	lhs := cf.proof.z.Act(&capsule.pointE)
	rhs := curve.NewIdentityPoint().Add(&cf.proof.pointE2, h.Act(&cf.pointE1))
	if !lhs.Equal(rhs) {
		return nil, ErrProofInvalid
	}

	lhs = cf.proof.z.Act(&capsule.pointV)
	rhs.Add(&cf.proof.pointV2, h.Act(&cf.pointV1))
	if !lhs.Equal(rhs) {
		return nil, ErrProofInvalid
	}

	lhs = cf.proof.z.Act(commitmentGenerator())
	rhs.Add(&cf.proof.pointU2, h.Act(&cf.proof.commitment))
	if !lhs.Equal(rhs) {
		return nil, ErrProofInvalid
	}

	return &VerifiedCapsuleFrag{cf: cf}, nil
}

type capsuleFragRaw struct {
	E1        []byte
	V1        []byte
	ID        []byte
	Precursor []byte

	E2         []byte
	V2         []byte
	U2         []byte
	Commitment []byte
	Z          []byte
	Signature  []byte
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (cf *CapsuleFrag) MarshalBinary() ([]byte, error) {
	raw := &capsuleFragRaw{
		ID: cf.id.Bytes(),
		Z:  cf.proof.z.Bytes(),
	}
	var err error
	for _, field := range []struct {
		dst *[]byte
		src *curve.Point
	}{
		{&raw.E1, &cf.pointE1},
		{&raw.V1, &cf.pointV1},
		{&raw.Precursor, &cf.precursor},
		{&raw.E2, &cf.proof.pointE2},
		{&raw.V2, &cf.proof.pointV2},
		{&raw.U2, &cf.proof.pointU2},
		{&raw.Commitment, &cf.proof.commitment},
	} {
		if *field.dst, err = field.src.Bytes(); err != nil {
			return nil, fmt.Errorf("umbral.CapsuleFrag: %w", err)
		}
	}
	if raw.Signature, err = cf.proof.kfragSignature.MarshalBinary(); err != nil {
		return nil, fmt.Errorf("umbral.CapsuleFrag: %w", err)
	}
	return cbor.Marshal(raw)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// Decoding is purely syntactic; the combining party must still call Verify.
func (cf *CapsuleFrag) UnmarshalBinary(data []byte) error {
	var raw capsuleFragRaw
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("umbral.CapsuleFrag: %w", err)
	}
	for _, field := range []struct {
		name string
		src  []byte
		dst  *curve.Point
	}{
		{"E1", raw.E1, &cf.pointE1},
		{"V1", raw.V1, &cf.pointV1},
		{"Precursor", raw.Precursor, &cf.precursor},
		{"E2", raw.E2, &cf.proof.pointE2},
		{"V2", raw.V2, &cf.proof.pointV2},
		{"U2", raw.U2, &cf.proof.pointU2},
		{"Commitment", raw.Commitment, &cf.proof.commitment},
	} {
		if err := field.dst.UnmarshalBinary(field.src); err != nil {
			return fmt.Errorf("umbral.CapsuleFrag.%s: %w", field.name, err)
		}
	}
	if err := cf.id.UnmarshalBinary(raw.ID); err != nil {
		return fmt.Errorf("umbral.CapsuleFrag.ID: %w", err)
	}
	if err := cf.proof.z.UnmarshalBinary(raw.Z); err != nil {
		return fmt.Errorf("umbral.CapsuleFrag.Z: %w", err)
	}
	if err := cf.proof.kfragSignature.UnmarshalBinary(raw.Signature); err != nil {
		return fmt.Errorf("umbral.CapsuleFrag.Signature: %w", err)
	}
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The verified wrapper
// serializes exactly as the underlying fragment.
func (vcf *VerifiedCapsuleFrag) MarshalBinary() ([]byte, error) {
	return vcf.cf.MarshalBinary()
}
