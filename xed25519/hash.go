package xed25519

import (
	"hash"

	"golang.org/x/crypto/sha3"
)

// Keccak is the incremental hasher spec.md §2 item 2 depends on: a
// Keccak-256 sponge accepting byte chunks and producing a 32-byte digest.
// It wraps golang.org/x/crypto/sha3's legacy (non-NIST, original Keccak
// padding) Keccak-256, which is what Monero's reference client and its
// ports use for every in-protocol hash.
type Keccak struct {
	h hash.Hash
}

// NewKeccak returns a fresh Keccak hasher.
func NewKeccak() *Keccak {
	return &Keccak{sha3.NewLegacyKeccak256()}
}

// Write absorbs more bytes into the sponge. Never returns an error; present
// to satisfy the same update(bytes) shape used throughout spec.md §4.
func (k *Keccak) Write(b []byte) {
	k.h.Write(b)
}

// WritePoint absorbs the compressed encoding of p, the _hash_point helper
// from spec.md §4.4/§4.5.
func (k *Keccak) WritePoint(p *Point) {
	enc := p.Encode()
	k.h.Write(enc[:])
}

// Digest returns the 32-byte Keccak-256 digest of everything absorbed so
// far. The hasher is left usable afterward (io.Writer to hash.Hash
// semantics), though the core never reuses one past its digest call.
func (k *Keccak) Digest() []byte {
	return k.h.Sum(nil)
}
