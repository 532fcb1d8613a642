package curve

import (
	"errors"
	"io"

	"github.com/cronokirby/saferith"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/rodrigodg1/umbral-go/internal/params"
)

// Scalar is an integer mod the order of the secp256k1 group.
type Scalar struct {
	s secp256k1.ModNScalar
}

// NewScalar returns a new zero Scalar.
func NewScalar() *Scalar {
	return &Scalar{}
}

// Set sets s = x, and returns s.
func (s *Scalar) Set(x *Scalar) *Scalar {
	s.s.Set(&x.s)
	return s
}

// SetUInt32 sets s = x, and returns s.
func (s *Scalar) SetUInt32(x uint32) *Scalar {
	s.s.SetInt(x)
	return s
}

// SetNat sets s = x mod q, and returns s.
func (s *Scalar) SetNat(x *saferith.Nat) *Scalar {
	reduced := new(saferith.Nat).Mod(x, Order())
	buf := make([]byte, params.BytesScalar)
	reduced.FillBytes(buf)
	s.s.SetByteSlice(buf)
	return s
}

// SetBytes interprets in as a canonical 32-byte big-endian encoding,
// and sets s to that value. It returns an error if in has the wrong
// length or encodes a value ⩾ q.
func (s *Scalar) SetBytes(in []byte) (*Scalar, error) {
	if len(in) != params.BytesScalar {
		return nil, errors.New("curve.Scalar: invalid scalar length")
	}
	var buf [params.BytesScalar]byte
	copy(buf[:], in)
	if s.s.SetBytes(&buf) != 0 {
		return nil, errors.New("curve.Scalar: scalar out of range")
	}
	return s, nil
}

// Add sets s = x + y mod q, and returns s.
func (s *Scalar) Add(x, y *Scalar) *Scalar {
	s.s.Add2(&x.s, &y.s)
	return s
}

// Subtract sets s = x - y mod q, and returns s.
func (s *Scalar) Subtract(x, y *Scalar) *Scalar {
	var yNeg secp256k1.ModNScalar
	yNeg.NegateVal(&y.s)
	s.s.Add2(&x.s, &yNeg)
	return s
}

// Negate sets s = -x mod q, and returns s.
func (s *Scalar) Negate(x *Scalar) *Scalar {
	s.s.NegateVal(&x.s)
	return s
}

// Multiply sets s = x * y mod q, and returns s.
func (s *Scalar) Multiply(x, y *Scalar) *Scalar {
	s.s.Mul2(&x.s, &y.s)
	return s
}

// MultiplyAdd sets s = x * y + z mod q, and returns s.
func (s *Scalar) MultiplyAdd(x, y, z *Scalar) *Scalar {
	var r secp256k1.ModNScalar
	r.Mul2(&x.s, &y.s)
	r.Add(&z.s)
	s.s.Set(&r)
	return s
}

// Invert sets s = x⁻¹ mod q, and returns s.
//
// If x is zero, the result is zero.
func (s *Scalar) Invert(x *Scalar) *Scalar {
	s.s.InverseValNonConst(&x.s)
	return s
}

// Equal returns true if s and t represent the same value.
func (s *Scalar) Equal(t *Scalar) bool {
	return s.s.Equals(&t.s)
}

// IsZero returns true if s is zero.
func (s *Scalar) IsZero() bool {
	return s.s.IsZero()
}

// Act sets v = s * q, and returns v.
func (s *Scalar) Act(q *Point) *Point {
	var v Point
	secp256k1.ScalarMultNonConst(&s.s, &q.p, &v.p)
	return &v
}

// ActOnBase sets v = s * G, where G is the canonical generator, and returns v.
func (s *Scalar) ActOnBase() *Point {
	var v Point
	secp256k1.ScalarBaseMultNonConst(&s.s, &v.p)
	return &v
}

// Bytes returns the canonical 32-byte big-endian encoding of s.
func (s *Scalar) Bytes() []byte {
	data := s.s.Bytes()
	return data[:]
}

// Zero overwrites the backing memory of s with zeros.
//
// Use it to dispose of secret scalars as soon as they are no longer needed.
func (s *Scalar) Zero() {
	s.s.Zero()
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *Scalar) MarshalBinary() ([]byte, error) {
	return s.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (s *Scalar) UnmarshalBinary(data []byte) error {
	_, err := s.SetBytes(data)
	return err
}

// WriteTo implements io.WriterTo and should be used within the hash.Hash function.
func (s *Scalar) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.Bytes())
	return int64(n), err
}

// Domain implements hash.WriterToWithDomain.
func (s *Scalar) Domain() string {
	return "secp256k1 Scalar"
}
