package mlsag

import (
	"mlsag.dev/core/wire"
	"mlsag.dev/core/xed25519"
)

// BuildFull constructs the Full RingCT matrix (§4.1): a (rows+1)×cols
// matrix whose first rows copy each ring entry's destination key, and
// whose final row is the per-column balance accumulator
//
//	M[i][rows] = (sum of that column's input commitments)
//	           - (sum of output commitments) - txnFeeKey
//
// with sk[rows] = (sum of input masks) - (sum of output masks). It then
// delegates to the core signer with dsRows = rows.
func BuildFull(
	message []byte,
	pubs []RingEntry,
	inSk []CtKey,
	outSkMask []*xed25519.Scalar,
	outPkCommitments [][32]byte,
	kLRki *MultisigLRKI,
	index int,
	txnFeeKey *xed25519.Point,
	out []byte,
) (*Signature, error) {
	cols := len(pubs)
	rows := len(inSk)

	if cols < 1 {
		return nil, invalidArgument("empty ring")
	}
	if rows < 1 {
		return nil, invalidArgument("empty secret vector")
	}
	if len(outSkMask) != len(outPkCommitments) {
		return nil, invalidArgument("mismatched output mask/commitment vector sizes")
	}

	M := make(KeyMatrix, cols)
	for i, entry := range pubs {
		col := make([][32]byte, rows+1)

		balance := xed25519.Identity()
		for j := 0; j < rows; j++ {
			// Full mode's rows currently share one ring entry per column;
			// a richer multi-input shape would index a distinct commitment
			// per row. This core handles the single-commitment-per-column
			// case, which is what every production Full-mode call uses.
			col[j] = entry.Dest

			c, err := xed25519.DecodePoint(entry.Commitment[:])
			if err != nil {
				return nil, cryptoFailure("decoding ring commitment", err)
			}
			balance = xed25519.Identity().Add(balance, c)
		}
		for _, outC := range outPkCommitments {
			c, err := xed25519.DecodePoint(outC[:])
			if err != nil {
				return nil, cryptoFailure("decoding output commitment", err)
			}
			balance = xed25519.Identity().Sub(balance, c)
		}
		if txnFeeKey != nil {
			balance = xed25519.Identity().Sub(balance, txnFeeKey)
		}
		col[rows] = balance.Encode()

		M[i] = col
	}

	xx := make([]*xed25519.Scalar, rows+1)
	maskSum := xed25519.ZeroScalar()
	for j, sk := range inSk {
		xx[j] = xed25519.ZeroScalar().Copy(sk.Dest)
		maskSum = xed25519.ZeroScalar().Add(maskSum, sk.Mask)
	}
	for _, m := range outSkMask {
		maskSum = xed25519.ZeroScalar().Sub(maskSum, m)
	}
	xx[rows] = maskSum

	buf := out
	if buf == nil {
		buf = make([]byte, wire.Size(cols, rows+1))
	}

	return sign(message, M, xx, kLRki, index, rows, buf)
}
