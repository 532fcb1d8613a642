package umbral

import (
	"github.com/rodrigodg1/umbral-go/pkg/keys"
	"github.com/rodrigodg1/umbral-go/pkg/math/curve"
	"github.com/rodrigodg1/umbral-go/pkg/math/polynomial"
)

// combine interpolates the fragments at 0, recovering
// E' = (sk⋅d⁻¹)⋅E and V' = (sk⋅d⁻¹)⋅V.
//
// Fragment order does not matter: the Lagrange coefficient of each fragment
// depends only on the set of ids.
func combine(cfrags []*VerifiedCapsuleFrag) (ePrime, vPrime, precursor *curve.Point, err error) {
	precursor = &cfrags[0].cf.precursor
	ids := make([]*curve.Scalar, len(cfrags))
	seen := make(map[[32]byte]struct{}, len(cfrags))
	for i, vcf := range cfrags {
		cf := vcf.cf
		if !cf.precursor.Equal(precursor) {
			return nil, nil, nil, ErrMismatchedFragments
		}
		var idKey [32]byte
		copy(idKey[:], cf.id.Bytes())
		if _, ok := seen[idKey]; ok {
			return nil, nil, nil, ErrDuplicateFragment
		}
		seen[idKey] = struct{}{}
		ids[i] = &cf.id
	}

	lambdas, err := polynomial.Lagrange(ids)
	if err != nil {
		return nil, nil, nil, ErrDuplicateFragment
	}

	ePrime = curve.NewIdentityPoint()
	vPrime = curve.NewIdentityPoint()
	for i, vcf := range cfrags {
		ePrime.Add(ePrime, lambdas[i].Act(&vcf.cf.pointE1))
		vPrime.Add(vPrime, lambdas[i].Act(&vcf.cf.pointV1))
	}
	return ePrime, vPrime, precursor, nil
}

// OpenReencrypted recovers the shared secret from at least threshold
// verified capsule fragments, on the receiving side of a delegation.
//
// It reconstructs (E', V') by Lagrange interpolation, recomputes the DH
// scalar d from the receiving secret key and the delegation precursor,
// checks the reconstruction against the capsule's own s, and returns
// d⋅(E' + V'), bit-identical to the secret produced at encryption time.
func (c *Capsule) OpenReencrypted(receiving *keys.SecretKey, delegating *keys.PublicKey,
	threshold int, cfrags []*VerifiedCapsuleFrag) (*SharedSecret, error) {
	if threshold < 1 {
		return nil, ErrInvalidThreshold
	}
	if len(cfrags) < threshold {
		return nil, ErrInsufficientFragments
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	ePrime, vPrime, precursor, err := combine(cfrags)
	if err != nil {
		return nil, err
	}

	dhPoint := receiving.Scalar().Act(precursor)
	defer dhPoint.Zero()
	d, err := sharedSecretScalar(precursor, receiving.PublicKey(), dhPoint)
	if err != nil {
		return nil, ErrProofInvalid
	}
	defer d.Zero()

	// (s⋅d⁻¹)⋅pkA == V' + H(E, V)⋅E' holds exactly when the fragments
	// reconstruct the transform Alice split. Individually proven fragments
	// from mismatched delegations would still fail here.
	h, err := capsuleChallenge(&c.pointE, &c.pointV)
	if err != nil {
		return nil, ErrProofInvalid
	}
	sdInv := curve.NewScalar().Invert(d)
	sdInv.Multiply(sdInv, &c.s)
	lhs := sdInv.Act(delegating.Point())
	rhs := curve.NewIdentityPoint().Add(vPrime, h.Act(ePrime))
	if !lhs.Equal(rhs) {
		return nil, ErrProofInvalid
	}

	// d⋅(E' + V') = sk⋅(E + V) = (r+u)⋅pkA.
	sum := curve.NewIdentityPoint().Add(ePrime, vPrime)
	var ss SharedSecret
	ss.p.Set(d.Act(sum))
	return &ss, nil
}
