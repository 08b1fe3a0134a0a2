package mlsag

import (
	"mlsag.dev/core/wire"
	"mlsag.dev/core/xed25519"
)

// sign is the core signer: the key-image/initial-challenge stage (§4.4),
// the ring-traversal stage (§4.5), and the signer-slot closure (§4.6),
// finishing with the buffer layout (§4.7). BuildFull and BuildSimple both
// delegate here once they have derived M and sk.
//
// out must be exactly wire.Size(len(M), len(xx)) bytes; the caller owns
// and pre-sizes it, matching a target where the signer never allocates
// the signature buffer itself.
func sign(message []byte, M KeyMatrix, xx []*xed25519.Scalar, kLRki *MultisigLRKI, index, dsRows int, out []byte) (*Signature, error) {
	if err := validate(M, xx, dsRows, index, kLRki); err != nil {
		return nil, err
	}

	cols := len(M)
	rows := len(xx)

	layout, err := wire.NewLayout(out, cols, rows)
	if err != nil {
		return nil, &Error{Kind: InvalidArgument, Msg: "output buffer is the wrong size for this ring shape", Err: err}
	}

	alpha := make([]*xed25519.Scalar, rows)
	for j := range alpha {
		a, err := xed25519.RandomScalar()
		if err != nil {
			return nil, cryptoFailure("drawing alpha", err)
		}
		alpha[j] = a
	}

	keyImages := make([]*xed25519.Point, dsRows)

	h0 := xed25519.NewKeccak()
	h0.Write(message)

	for j := 0; j < rows; j++ {
		pkBytes := M[index][j]
		h0.Write(pkBytes[:])

		L := xed25519.Identity().ScalarMultBase(alpha[j])

		if j < dsRows {
			Hj := xed25519.HashToPoint(pkBytes[:])
			R := xed25519.Identity().ScalarMult(alpha[j], Hj)
			keyImages[j] = xed25519.Identity().ScalarMult(xx[j], Hj)
			h0.WritePoint(L)
			h0.WritePoint(R)
		} else {
			h0.WritePoint(L)
		}
	}

	cOld, err := xed25519.DecodeScalarReduce(h0.Digest())
	if err != nil {
		return nil, cryptoFailure("decoding initial challenge", err)
	}

	var cc *xed25519.Scalar

	for i := (index + 1) % cols; i != index; i = (i + 1) % cols {
		if i == 0 {
			cc = cOld
		}

		layout.WriteColumnHeader(i)

		colSS := make([]*xed25519.Scalar, rows)
		for j := 0; j < rows; j++ {
			s, err := xed25519.RandomScalar()
			if err != nil {
				return nil, cryptoFailure("drawing ring response", err)
			}
			colSS[j] = s
		}

		h := xed25519.NewKeccak()
		h.Write(message)

		for j := 0; j < rows; j++ {
			pkBytes := M[i][j]
			pkPoint, err := xed25519.DecodePoint(pkBytes[:])
			if err != nil {
				return nil, cryptoFailure("decoding ring public key", err)
			}

			L := xed25519.Identity().AddKeys2(colSS[j], cOld, pkPoint)

			if j < dsRows {
				Hj := xed25519.HashToPoint(pkBytes[:])
				R := xed25519.Identity().AddKeys3(colSS[j], Hj, cOld, keyImages[j])
				h.Write(pkBytes[:])
				h.WritePoint(L)
				h.WritePoint(R)
			} else {
				h.Write(pkBytes[:])
				h.WritePoint(L)
			}
		}

		for j := 0; j < rows; j++ {
			layout.WriteResponse(i, j, colSS[j].Encode())
		}

		cOld, err = xed25519.DecodeScalarReduce(h.Digest())
		if err != nil {
			return nil, cryptoFailure("decoding ring challenge", err)
		}
	}

	if cc == nil {
		// index == 0: the loop above never visits column 0, since it
		// starts at index+1 and stops at index. Snapshot here instead.
		cc = cOld
	}

	encodedKeyImages := make([][32]byte, dsRows)
	for j, p := range keyImages {
		encodedKeyImages[j] = p.Encode()
	}
	keyImages = nil // large temporary, dropped before the slot closure (§5)

	layout.WriteColumnHeader(index)
	for j := 0; j < rows; j++ {
		s := xed25519.ZeroScalar().MulSub(alpha[j], cOld, xx[j])
		layout.WriteResponse(index, j, s.Encode())
	}
	layout.WriteChallenge(cc.Encode())

	if err := layout.Close(); err != nil {
		return nil, bufferOverflow("buff_offset(cols)+32 != len(buffer)", err)
	}

	for _, a := range alpha {
		a.Zeroize()
	}
	for _, x := range xx {
		x.Zeroize()
	}

	return &Signature{Buf: out, KeyImages: encodedKeyImages}, nil
}
