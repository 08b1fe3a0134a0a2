// Package xed25519 is the curve-primitive and incremental-hasher collaborator
// the MLSAG core depends on (spec.md §2, items 1–2): scalar and point
// arithmetic over the Ed25519 group, plus Keccak-256 incremental hashing.
// Nothing in this package knows about rings, matrices, or signatures — it is
// the "external" layer the core treats as a fixed, trusted interface.
package xed25519

import (
	"crypto/rand"

	"filippo.io/edwards25519"
)

// Scalar is an integer modulo the Ed25519 group order l, canonically
// represented as 32 little-endian bytes.
type Scalar struct {
	s *edwards25519.Scalar
}

// ZeroScalar returns a new Scalar holding zero.
func ZeroScalar() *Scalar {
	return &Scalar{edwards25519.NewScalar()}
}

// RandomScalar draws a uniformly random Scalar from a cryptographically
// secure source.
func RandomScalar() (*Scalar, error) {
	var buf [64]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return nil, err
	}
	s, err := edwards25519.NewScalar().SetUniformBytes(buf[:])
	if err != nil {
		return nil, err
	}
	return &Scalar{s}, nil
}

// Copy sets s to a copy of x and returns s.
func (s *Scalar) Copy(x *Scalar) *Scalar {
	s.s = edwards25519.NewScalar().Set(x.s)
	return s
}

// Add sets s = x + y mod l and returns s.
func (s *Scalar) Add(x, y *Scalar) *Scalar {
	s.inner().Add(x.s, y.s)
	return s
}

// Sub sets s = x - y mod l and returns s.
func (s *Scalar) Sub(x, y *Scalar) *Scalar {
	s.inner().Subtract(x.s, y.s)
	return s
}

// Mul sets s = x * y mod l and returns s.
func (s *Scalar) Mul(x, y *Scalar) *Scalar {
	s.inner().Multiply(x.s, y.s)
	return s
}

// MulSub sets s = a - b*c mod l and returns s, matching the core's
// sc_mulsub(a, b, c) primitive (spec.md §6).
func (s *Scalar) MulSub(a, b, c *Scalar) *Scalar {
	bc := edwards25519.NewScalar().Multiply(b.s, c.s)
	s.inner().Subtract(a.s, bc)
	return s
}

// Encode returns the canonical 32-byte little-endian encoding of s.
func (s *Scalar) Encode() [32]byte {
	var out [32]byte
	copy(out[:], s.s.Bytes())
	return out
}

// DecodeScalar decodes 32 canonical little-endian bytes into a Scalar.
// Returns CryptoFailure-shaped error on malformed input (non-canonical,
// wrong length).
func DecodeScalar(b []byte) (*Scalar, error) {
	s, err := edwards25519.NewScalar().SetCanonicalBytes(b)
	if err != nil {
		return nil, err
	}
	return &Scalar{s}, nil
}

// DecodeScalarReduce decodes an arbitrary-length (<=64 byte) digest into a
// Scalar, reducing modulo l. Used to turn a 32-byte Keccak digest into the
// Fiat-Shamir challenge scalar c_i.
func DecodeScalarReduce(digest []byte) (*Scalar, error) {
	var wide [64]byte
	copy(wide[:], digest)
	s, err := edwards25519.NewScalar().SetUniformBytes(wide[:])
	if err != nil {
		return nil, err
	}
	return &Scalar{s}, nil
}

// Zeroize overwrites the scalar with zero. Recommended, not required, for
// scalars that held secret material (spec.md §3 lifecycle).
func (s *Scalar) Zeroize() {
	s.inner().Set(edwards25519.NewScalar())
}

// Equal reports whether s and x represent the same residue mod l.
func (s *Scalar) Equal(x *Scalar) bool {
	return s.inner().Equal(x.inner()) == 1
}

func (s *Scalar) inner() *edwards25519.Scalar {
	if s.s == nil {
		s.s = edwards25519.NewScalar()
	}
	return s.s
}
