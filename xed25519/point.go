package xed25519

import (
	"errors"

	"filippo.io/edwards25519"
)

// Point is an element of the Ed25519 group, canonically represented as a
// 32-byte compressed encoding.
type Point struct {
	p *edwards25519.Point
}

// Identity returns the group identity element.
func Identity() *Point {
	return &Point{edwards25519.NewIdentityPoint()}
}

// Base returns the Ed25519 base point G.
func Base() *Point {
	return &Point{edwards25519.NewGeneratorPoint()}
}

// Add sets p = a + b and returns p.
func (p *Point) Add(a, b *Point) *Point {
	p.inner().Add(a.p, b.p)
	return p
}

// Sub sets p = a - b and returns p.
func (p *Point) Sub(a, b *Point) *Point {
	p.inner().Subtract(a.p, b.p)
	return p
}

// ScalarMultBase sets p = s*G and returns p.
func (p *Point) ScalarMultBase(s *Scalar) *Point {
	p.inner().ScalarBaseMult(s.s)
	return p
}

// ScalarMult sets p = s*q and returns p.
func (p *Point) ScalarMult(s *Scalar, q *Point) *Point {
	p.inner().ScalarMult(s.s, q.p)
	return p
}

// AddKeys2 sets p = a*G + c*Q, the combined operation spec.md §1/§6 calls
// add_keys2. Ring traversal (spec.md §4.5) uses this for every L
// computation, one elliptic-curve double-scalar-mult instead of two
// separate multiplies and an add.
func (p *Point) AddKeys2(a *Scalar, c *Scalar, q *Point) *Point {
	p.inner().VarTimeDoubleScalarBaseMult(c.s, q.p, a.s)
	return p
}

// AddKeys3 sets p = a*H + c*I, spec.md §1/§6's add_keys3. Used for every R
// computation across the ring traversal.
func (p *Point) AddKeys3(a *Scalar, h *Point, c *Scalar, i *Point) *Point {
	aH := edwards25519.NewIdentityPoint().ScalarMult(a.s, h.p)
	cI := edwards25519.NewIdentityPoint().ScalarMult(c.s, i.p)
	p.inner().Add(aH, cI)
	return p
}

// Encode returns the 32-byte compressed encoding of p.
func (p *Point) Encode() [32]byte {
	var out [32]byte
	copy(out[:], p.p.Bytes())
	return out
}

// DecodePoint decodes a 32-byte compressed point. Returns an error
// (CryptoFailure territory for callers) for input that is not 32 bytes or
// does not decode to a curve point. Non-canonical encodings of valid points
// are accepted, as edwards25519's SetBytes accepts them.
func DecodePoint(b []byte) (*Point, error) {
	if len(b) != 32 {
		return nil, errors.New("xed25519: point must be 32 bytes")
	}
	q, err := edwards25519.NewIdentityPoint().SetBytes(b)
	if err != nil {
		return nil, err
	}
	return &Point{q}, nil
}

// Equal reports whether p and q encode the same group element.
func (p *Point) Equal(q *Point) bool {
	return p.inner().Equal(q.inner()) == 1
}

func (p *Point) inner() *edwards25519.Point {
	if p.p == nil {
		p.p = edwards25519.NewIdentityPoint()
	}
	return p.p
}
