package umbral

import "errors"

var (
	// ErrInvalidThreshold is returned when a (t, n) policy does not satisfy 1 ≤ t ≤ n.
	ErrInvalidThreshold = errors.New("umbral: threshold must satisfy 1 ≤ t ≤ n")
	// ErrCapsuleMalformed is returned when a capsule fails its self-consistency check.
	ErrCapsuleMalformed = errors.New("umbral: capsule failed self-consistency check")
	// ErrSignatureInvalid is returned when a key fragment's authenticity signature
	// does not verify for the claimed delegation.
	ErrSignatureInvalid = errors.New("umbral: key fragment signature invalid")
	// ErrProofInvalid is returned when a capsule fragment's correctness proof,
	// or the reconstruction it contributed to, does not verify.
	ErrProofInvalid = errors.New("umbral: capsule fragment proof invalid")
	// ErrDuplicateFragment is returned when two fragments share an id.
	ErrDuplicateFragment = errors.New("umbral: duplicate fragment id")
	// ErrInsufficientFragments is returned when fewer fragments than the
	// threshold are supplied for combination.
	ErrInsufficientFragments = errors.New("umbral: not enough fragments for threshold")
	// ErrMismatchedFragments is returned when fragments from different
	// delegations are mixed in one combination.
	ErrMismatchedFragments = errors.New("umbral: fragments belong to different delegations")
)
