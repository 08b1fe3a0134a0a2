package mlsag

import (
	"testing"

	"mlsag.dev/core/internal/testutils"
	"mlsag.dev/core/wire"
	"mlsag.dev/core/xed25519"
)

func simpleRingFixture(t *testing.T, cols, index int) ([]RingEntry, CtKey, *xed25519.Scalar, *xed25519.Point) {
	t.Helper()

	h := xed25519.HashToPoint([]byte("simple mode commitment base"))

	pubs := make([]RingEntry, cols)
	for i := 0; i < cols; i++ {
		var destLE, maskLE [32]byte
		destLE[0] = byte(2*i + 1)
		maskLE[0] = byte(2*i + 2)

		destScalar, err := xed25519.DecodeScalar(destLE[:])
		if err != nil {
			t.Fatalf("DecodeScalar dest: %v", err)
		}
		maskScalar, err := xed25519.DecodeScalar(maskLE[:])
		if err != nil {
			t.Fatalf("DecodeScalar mask: %v", err)
		}

		dest := xed25519.Identity().ScalarMultBase(destScalar)
		commitment := xed25519.Identity().ScalarMultBase(maskScalar)
		commitment = xed25519.Identity().Add(commitment, xed25519.Identity().ScalarMult(maskScalar, h))

		pubs[i] = RingEntry{Dest: dest.Encode(), Commitment: commitment.Encode()}
	}

	var destLE, maskLE, aLE [32]byte
	destLE[0] = byte(2*index + 1)
	maskLE[0] = byte(2*index + 2)
	aLE[0] = 3

	destScalar, err := xed25519.DecodeScalar(destLE[:])
	if err != nil {
		t.Fatalf("DecodeScalar signer dest: %v", err)
	}
	maskScalar, err := xed25519.DecodeScalar(maskLE[:])
	if err != nil {
		t.Fatalf("DecodeScalar signer mask: %v", err)
	}
	a, err := xed25519.DecodeScalar(aLE[:])
	if err != nil {
		t.Fatalf("DecodeScalar a: %v", err)
	}

	inSk := CtKey{Dest: destScalar, Mask: maskScalar}
	cout := xed25519.Identity().ScalarMultBase(a)

	return pubs, inSk, a, cout
}

func TestBuildSimpleProducesCorrectlySizedSignature(t *testing.T) {
	const cols, index = 3, 1
	pubs, inSk, a, cout := simpleRingFixture(t, cols, index)

	sig, err := BuildSimple([]byte("tx message"), pubs, inSk, a, cout, nil, index, nil)
	if err != nil {
		t.Fatalf("BuildSimple: %v", err)
	}

	testutils.AssertIntsEqual(t, "signature length", wire.Size(cols, 2), len(sig.Buf))
	testutils.AssertIntsEqual(t, "one key image", 1, len(sig.KeyImages))
}

func TestBuildSimpleRejectsEmptyRing(t *testing.T) {
	inSk := CtKey{Dest: xed25519.ZeroScalar(), Mask: xed25519.ZeroScalar()}
	_, err := BuildSimple([]byte("m"), nil, inSk, xed25519.ZeroScalar(), xed25519.Identity(), nil, 0, nil)

	mlsagErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	testutils.AssertIntsEqual(t, "error kind", int(InvalidArgument), int(mlsagErr.Kind))
}

func TestBuildSimpleRejectsMultisig(t *testing.T) {
	const cols, index = 3, 0
	pubs, inSk, a, cout := simpleRingFixture(t, cols, index)

	_, err := BuildSimple([]byte("m"), pubs, inSk, a, cout, &MultisigLRKI{}, index, nil)

	mlsagErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	testutils.AssertIntsEqual(t, "error kind", int(NotImplemented), int(mlsagErr.Kind))
}
