// Package wire lays out the serialized MLSAG signature buffer: an
// unsigned-LEB128 column count, one column block per ring position (each
// prefixed by its own row count), and a trailing 32-byte challenge. It
// knows nothing about rings, keys, or challenges — it only knows byte
// offsets.
package wire

import "github.com/multiformats/go-varint"

// UvarintSize returns the number of bytes the canonical unsigned varint
// encoding of x occupies.
func UvarintSize(x uint64) int {
	return varint.UvarintSize(x)
}

// PutUvarint writes the canonical varint encoding of x into buf and
// returns the number of bytes written. buf must have at least
// UvarintSize(x) bytes of room.
func PutUvarint(buf []byte, x uint64) int {
	return varint.PutUvarint(buf, x)
}
