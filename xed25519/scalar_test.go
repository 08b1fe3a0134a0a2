package xed25519

import (
	"testing"

	"mlsag.dev/core/internal/testutils"
)

func scalarFromSmallInt(t *testing.T, v byte) *Scalar {
	t.Helper()
	var b [32]byte
	b[0] = v
	s, err := DecodeScalar(b[:])
	if err != nil {
		t.Fatalf("DecodeScalar(%d): %v", v, err)
	}
	return s
}

func TestScalarEncodeDecodeRoundTrip(t *testing.T) {
	s, err := RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	enc := s.Encode()

	decoded, err := DecodeScalar(enc[:])
	if err != nil {
		t.Fatalf("DecodeScalar: %v", err)
	}

	testutils.AssertBoolsEqual(t, "round-tripped scalar equality", true, s.Equal(decoded))
}

func TestScalarAddSubInverse(t *testing.T) {
	a, err := RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar a: %v", err)
	}
	b, err := RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar b: %v", err)
	}

	sum := ZeroScalar().Add(a, b)
	back := ZeroScalar().Sub(sum, b)

	testutils.AssertBoolsEqual(t, "(a+b)-b == a", true, a.Equal(back))
}

func TestScalarMulByOneIsIdentity(t *testing.T) {
	a, err := RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	one := scalarFromSmallInt(t, 1)

	product := ZeroScalar().Mul(a, one)

	testutils.AssertBoolsEqual(t, "a*1 == a", true, a.Equal(product))
}

func TestScalarMulSubMatchesManualComputation(t *testing.T) {
	a, err := RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar a: %v", err)
	}
	b, err := RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar b: %v", err)
	}
	c, err := RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar c: %v", err)
	}

	got := ZeroScalar().MulSub(a, b, c)

	bc := ZeroScalar().Mul(b, c)
	want := ZeroScalar().Sub(a, bc)

	testutils.AssertBoolsEqual(t, "MulSub(a,b,c) == a-b*c", true, want.Equal(got))
}

func TestScalarZeroizeClearsValue(t *testing.T) {
	a, err := RandomScalar()
	if err != nil {
		t.Fatalf("RandomScalar: %v", err)
	}
	a.Zeroize()

	testutils.AssertBoolsEqual(t, "zeroized scalar equals zero", true, a.Equal(ZeroScalar()))
}

func TestDecodeScalarReduceIsDeterministic(t *testing.T) {
	digest := []byte("deterministic digest fixture")

	first, err := DecodeScalarReduce(digest)
	if err != nil {
		t.Fatalf("DecodeScalarReduce: %v", err)
	}
	second, err := DecodeScalarReduce(digest)
	if err != nil {
		t.Fatalf("DecodeScalarReduce: %v", err)
	}

	testutils.AssertBoolsEqual(t, "same digest reduces to same scalar", true, first.Equal(second))
}

func TestDecodeScalarRejectsNonCanonical(t *testing.T) {
	var tooBig [32]byte
	for i := range tooBig {
		tooBig[i] = 0xff
	}

	if _, err := DecodeScalar(tooBig[:]); err == nil {
		t.Fatal("expected DecodeScalar to reject a non-canonical encoding")
	}
}
