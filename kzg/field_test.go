package kzg

import (
	"crypto/sha256"
	"testing"
)

func TestFrFromHashDeterministic(t *testing.T) {
	digest := sha256.Sum256([]byte("vbtree"))
	var a, b Fr
	FrFromHash(&a, digest)
	FrFromHash(&b, digest)
	if !FrEqual(&a, &b) {
		t.Fatalf("FrFromHash produced different field elements for the same digest")
	}
}

func TestFrFromHashDiffers(t *testing.T) {
	d1 := sha256.Sum256([]byte("a"))
	d2 := sha256.Sum256([]byte("b"))
	var a, b Fr
	FrFromHash(&a, d1)
	FrFromHash(&b, d2)
	if FrEqual(&a, &b) {
		t.Fatalf("distinct digests reduced to the same field element")
	}
}

func TestSubFrNegFrRoundTrip(t *testing.T) {
	d1 := sha256.Sum256([]byte("x"))
	d2 := sha256.Sum256([]byte("y"))
	var a, b, diff, negDiff, back Fr
	FrFromHash(&a, d1)
	FrFromHash(&b, d2)
	SubFr(&diff, &a, &b)
	NegFr(&negDiff, &diff)
	AddFr(&back, &b, &diff)
	if !FrEqual(&back, &a) {
		t.Fatalf("b + (a - b) != a")
	}
	var reconstructedB Fr
	AddFr(&reconstructedB, &a, &negDiff)
	if !FrEqual(&reconstructedB, &b) {
		t.Fatalf("a + (-(a-b)) != b")
	}
}

func TestIsIdentity(t *testing.T) {
	id := Identity()
	if !IsIdentity(&id) {
		t.Fatalf("Identity() is not reported as identity")
	}

	setup, err := NewSetup(4, mustSecret(t, "1234567"))
	if err != nil {
		t.Fatalf("NewSetup: %v", err)
	}
	var one Fr
	FrFromUint64(&one, 1)
	acc := Identity()
	ScaleAddG1(&acc, &setup.Lagrange[0], &one)
	if IsIdentity(&acc) {
		t.Fatalf("adding 1*L_0 to the identity should move off the identity")
	}
}

func mustSecret(t *testing.T, decimal string) Fr {
	t.Helper()
	s, err := NewSecret(decimal)
	if err != nil {
		t.Fatalf("NewSecret: %v", err)
	}
	return s
}
