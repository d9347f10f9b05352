// Package curve supplies the scalar and group-element primitives the rest
// of this module builds on: F_q arithmetic and the ristretto255 prime-order
// group it rides on. The group and field arithmetic itself is an
// external-collaborator concern (it is assumed to come from a
// cryptographic library); this package is a thin, idiomatic wrapper around
// github.com/gtank/ristretto255 that gives the polynomial, Shamir, and
// Pedersen layers above it the vocabulary spec'd for them: add, negate,
// multiply, invert, equality, small-integer construction, uniform random
// sampling, and (for group elements) scalar-mul, multi-scalar-mul, and
// hash-to-curve.
package curve

import (
	"crypto/rand"
	"io"

	"github.com/cronokirby/saferith"
	"github.com/gtank/ristretto255"
)

// Scalar is an element of the ristretto255 scalar field F_q.
type Scalar struct {
	s *ristretto255.Scalar
}

// NewScalar returns the additive identity, 0.
func NewScalar() *Scalar {
	s := ristretto255.NewScalar()
	var zero [32]byte
	if err := s.Decode(zero[:]); err != nil {
		panic("curve: failed to construct zero scalar: " + err.Error())
	}
	return &Scalar{s: s}
}

// OneScalar returns the multiplicative identity, 1.
func OneScalar() *Scalar {
	return NewScalar().SetNat(new(saferith.Nat).SetUint64(1))
}

// ScalarFromUint64 constructs the scalar value of a small unsigned integer.
func ScalarFromUint64(v uint64) *Scalar {
	return NewScalar().SetNat(new(saferith.Nat).SetUint64(v))
}

// SetNat sets s to the value of a small unsigned integer represented as a
// saferith.Nat, the same bridge type the rest of the curve abstractions in
// this family of libraries use to turn participant identifiers and small
// constants into field elements.
func (s *Scalar) SetNat(n *saferith.Nat) *Scalar {
	nb := n.Bytes() // big-endian
	var buf [32]byte
	if len(nb) > len(buf) {
		panic("curve: integer too large for a scalar")
	}
	for i, b := range nb {
		buf[len(nb)-1-i] = b
	}
	if err := s.s.Decode(buf[:]); err != nil {
		panic("curve: small integer does not fit canonical scalar encoding")
	}
	return s
}

// RandomScalar samples a uniformly random field element from rnd.
func RandomScalar(rnd io.Reader) *Scalar {
	var wide [64]byte
	if _, err := io.ReadFull(rnd, wide[:]); err != nil {
		panic("curve: failed to read randomness: " + err.Error())
	}
	return &Scalar{s: ristretto255.NewScalar().FromUniformBytes(wide[:])}
}

// RandomScalarFromCSPRNG samples from crypto/rand, the source the rest of
// this module assumes is available wherever "uniform random sampling" is
// called for.
func RandomScalarFromCSPRNG() *Scalar {
	return RandomScalar(rand.Reader)
}

// Clone returns an independent copy of s.
func (s *Scalar) Clone() *Scalar {
	return NewScalar().Add(NewScalar(), s)
}

// Add sets s = x + y and returns s.
func (s *Scalar) Add(x, y *Scalar) *Scalar {
	s.s.Add(x.s, y.s)
	return s
}

// Negate sets s = -x and returns s.
func (s *Scalar) Negate(x *Scalar) *Scalar {
	s.s.Negate(x.s)
	return s
}

// Subtract sets s = x - y and returns s.
func (s *Scalar) Subtract(x, y *Scalar) *Scalar {
	neg := NewScalar().Negate(y)
	return s.Add(x, neg)
}

// Multiply sets s = x * y and returns s.
func (s *Scalar) Multiply(x, y *Scalar) *Scalar {
	s.s.Multiply(x.s, y.s)
	return s
}

// Invert sets s = x^-1 and returns s. x must be non-zero.
func (s *Scalar) Invert(x *Scalar) *Scalar {
	s.s.Invert(x.s)
	return s
}

// Equal reports whether s and t represent the same field element.
func (s *Scalar) Equal(t *Scalar) bool {
	return s.s.Equal(t.s) == 1
}

// IsZero reports whether s is the additive identity.
func (s *Scalar) IsZero() bool {
	return s.Equal(NewScalar())
}

// MarshalBinary encodes s in ristretto255's canonical 32-byte scalar
// encoding.
func (s *Scalar) MarshalBinary() ([]byte, error) {
	return s.s.Encode(nil), nil
}

// UnmarshalBinary decodes a canonical 32-byte scalar encoding into s.
func (s *Scalar) UnmarshalBinary(data []byte) error {
	decoded := ristretto255.NewScalar()
	if err := decoded.Decode(data); err != nil {
		return err
	}
	s.s = decoded
	return nil
}
