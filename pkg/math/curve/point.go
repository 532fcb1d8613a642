package curve

import (
	"errors"
	"fmt"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/rodrigodg1/umbral-go/internal/params"
)

// Point is an element of the secp256k1 group, the identity included.
type Point struct {
	p secp256k1.JacobianPoint
}

var (
	baseX secp256k1.FieldVal
	baseY secp256k1.FieldVal
)

func init() {
	gx := mustDecodeHex("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	gy := mustDecodeHex("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
	baseX.SetByteSlice(gx)
	baseY.SetByteSlice(gy)
}

// NewIdentityPoint returns a point set to ∞.
func NewIdentityPoint() *Point {
	return &Point{}
}

// NewBasePoint returns a point set to the canonical generator G.
func NewBasePoint() *Point {
	var v Point
	v.p.X.Set(&baseX)
	v.p.Y.Set(&baseY)
	v.p.Z.SetInt(1)
	return &v
}

// Set sets v = u, and returns v.
func (v *Point) Set(u *Point) *Point {
	v.p.Set(&u.p)
	return v
}

// Add sets v = p + q, and returns v.
func (v *Point) Add(p, q *Point) *Point {
	var r secp256k1.JacobianPoint
	secp256k1.AddNonConst(&p.p, &q.p, &r)
	v.p.Set(&r)
	return v
}

// Subtract sets v = p - q, and returns v.
func (v *Point) Subtract(p, q *Point) *Point {
	var qNeg Point
	qNeg.Negate(q)
	return v.Add(p, &qNeg)
}

// Negate sets v = -p, and returns v.
func (v *Point) Negate(p *Point) *Point {
	v.Set(p)
	v.p.Y.Negate(1)
	v.p.Y.Normalize()
	return v
}

// IsIdentity returns true if the point is ∞.
func (v *Point) IsIdentity() bool {
	return (v.p.X.IsZero() && v.p.Y.IsZero()) || v.p.Z.IsZero()
}

// Equal returns true if v and u represent the same group element.
func (v *Point) Equal(u *Point) bool {
	if v.IsIdentity() || u.IsIdentity() {
		return v.IsIdentity() && u.IsIdentity()
	}
	v.toAffine()
	u.toAffine()
	return v.p.X.Equals(&u.p.X) && v.p.Y.Equals(&u.p.Y)
}

// Zero overwrites the backing memory of v with the identity.
//
// Use it to dispose of secret points (shared secrets, DH results)
// as soon as they are no longer needed.
func (v *Point) Zero() {
	v.p.X.SetInt(0)
	v.p.Y.SetInt(0)
	v.p.Z.SetInt(0)
}

// Bytes returns the compressed SEC1 encoding of v, or an error for ∞,
// which has no SEC1 encoding.
func (v *Point) Bytes() ([]byte, error) {
	if v.IsIdentity() {
		return nil, errors.New("curve.Point: cannot encode the identity")
	}
	v.toAffine()
	out := make([]byte, params.BytesPoint)
	out[0] = 2
	if v.p.Y.IsOdd() {
		out[0] = 3
	}
	data := v.p.X.Bytes()
	copy(out[1:], data[:])
	return out, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v *Point) MarshalBinary() ([]byte, error) {
	return v.Bytes()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// Only canonical compressed encodings of non-identity points are accepted.
func (v *Point) UnmarshalBinary(data []byte) error {
	if len(data) != params.BytesPoint {
		return fmt.Errorf("curve.Point: invalid length %d", len(data))
	}
	if data[0] != 2 && data[0] != 3 {
		return fmt.Errorf("curve.Point: invalid compression prefix %#x", data[0])
	}
	var x secp256k1.FieldVal
	if x.SetByteSlice(data[1:]) {
		return errors.New("curve.Point: x coordinate out of range")
	}
	var y secp256k1.FieldVal
	if !secp256k1.DecompressY(&x, data[0] == 3, &y) {
		return errors.New("curve.Point: x coordinate not on curve")
	}
	y.Normalize()
	v.p.X.Set(&x)
	v.p.Y.Set(&y)
	v.p.Z.SetInt(1)
	return nil
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
func (v *Point) WriteTo(w io.Writer) (int64, error) {
	data, err := v.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain.
func (v *Point) Domain() string {
	return "secp256k1 Point"
}

func (v *Point) toAffine() {
	if !v.p.Z.IsOne() {
		v.p.ToAffine()
	}
}
