package mlsag

import (
	"mlsag.dev/core/wire"
	"mlsag.dev/core/xed25519"
)

// BuildSimple constructs the Simple RingCT matrix (§4.2): a fixed
// rows=2, dsRows=1 shape where row 0 carries each ring entry's destination
// key and row 1 carries that column's commitment with the pseudo-output
// commitment subtracted out:
//
//	sk[0] = inSk.Dest,   sk[1] = inSk.Mask - a
//	M[i][0] = pubs[i].Dest
//	M[i][1] = encode(decode(pubs[i].Commitment) - cout)
func BuildSimple(
	message []byte,
	pubs []RingEntry,
	inSk CtKey,
	a *xed25519.Scalar,
	cout *xed25519.Point,
	kLRki *MultisigLRKI,
	index int,
	out []byte,
) (*Signature, error) {
	cols := len(pubs)
	if cols < 1 {
		return nil, invalidArgument("empty ring")
	}

	const rows = 2
	const dsRows = 1

	M := make(KeyMatrix, cols)
	for i, entry := range pubs {
		c, err := xed25519.DecodePoint(entry.Commitment[:])
		if err != nil {
			return nil, cryptoFailure("decoding ring commitment", err)
		}
		adjusted := xed25519.Identity().Sub(c, cout)

		M[i] = [][32]byte{entry.Dest, adjusted.Encode()}
	}

	xx := []*xed25519.Scalar{
		xed25519.ZeroScalar().Copy(inSk.Dest),
		xed25519.ZeroScalar().Sub(inSk.Mask, a),
	}

	buf := out
	if buf == nil {
		buf = make([]byte, wire.Size(cols, rows))
	}

	return sign(message, M, xx, kLRki, index, dsRows, buf)
}
