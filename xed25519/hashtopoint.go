package xed25519

import "filippo.io/edwards25519"

// eight is the Scalar encoding of the small integer 8, used to clear the
// Ed25519 cofactor.
var eight = mustScalar([8]byte{8})

func mustScalar(le [8]byte) *Scalar {
	var b [32]byte
	copy(b[:], le[:])
	s, err := edwards25519.NewScalar().SetCanonicalBytes(b[:])
	if err != nil {
		panic(err)
	}
	return &Scalar{s}
}

// HashToPoint maps arbitrary bytes to a point in the Ed25519 prime-order
// subgroup, deterministically and with no secret-dependent branching on
// public input (spec.md §6, hash_to_point_into). It uses a guess-and-check
// (try-and-increment) construction: hash the input, try to decompress the
// digest as a point, and on
// failure rehash with an incrementing counter appended until decompression
// succeeds. The result is then multiplied by the cofactor 8 to guarantee
// subgroup membership, exactly as a production Elligator2-based
// hash-to-point would, just by a slower, simpler route.
func HashToPoint(b []byte) *Point {
	buf := make([]byte, len(b)+1)
	copy(buf, b)

	for ctr := 0; ; ctr++ {
		buf[len(b)] = byte(ctr)
		h := NewKeccak()
		h.Write(buf)
		digest := h.Digest()

		if q, err := edwards25519.NewIdentityPoint().SetBytes(digest); err == nil {
			p := &Point{q}
			return p.ScalarMult(eight, p)
		}
	}
}
