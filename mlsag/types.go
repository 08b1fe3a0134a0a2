// Package mlsag builds and signs Monero-style MLSAG ring signatures: the
// ring matrix construction for Simple and Full RingCT inputs, the key-image
// and Fiat-Shamir challenge chain, and the serialized "mg" signature
// buffer. Verification, multisig (kLRki) signing, and everything upstream
// of a single signing call (message-digest construction, transaction
// orchestration) live outside this package.
package mlsag

import "mlsag.dev/core/xed25519"

// CtKey is the secret scalar for one ring position paired with the
// blinding factor of its commitment.
type CtKey struct {
	Dest *xed25519.Scalar
	Mask *xed25519.Scalar
}

// RingEntry is one column of the public ring: a destination key and its
// Pedersen commitment, both as compressed Ed25519 points.
type RingEntry struct {
	Dest       [32]byte
	Commitment [32]byte
}

// KeyMatrix is the ring matrix M, indexed column-major: KeyMatrix[i][j] is
// the encoded point at ring position i, layer j. Every column must carry
// the same number of entries (the matrix is rectangular).
type KeyMatrix [][][32]byte

// Rows reports the layer count of the matrix, or 0 for an empty matrix.
func (m KeyMatrix) Rows() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// MultisigLRKI is the multisig (kLRki) input the core refuses to process.
// The signer only ever checks whether one was supplied; its fields are
// never read, since the multisig signing path is rejected outright.
type MultisigLRKI struct {
	K  [32]byte
	L  [32]byte
	R  [32]byte
	KI [32]byte
}

// Signature is the result of a successful signing call: the populated
// output buffer (owned by the caller, who supplied it) and the key images
// a verifier needs, one per ds-row.
type Signature struct {
	Buf       []byte
	KeyImages [][32]byte
}
