package kzg

import (
	"crypto/sha256"
	"testing"
)

func newTestEngine(t *testing.T, width int) *Engine {
	t.Helper()
	setup, err := NewSetup(width, mustSecret(t, "8927347823478352432985"))
	if err != nil {
		t.Fatalf("NewSetup: %v", err)
	}
	return NewEngine(setup)
}

func frFor(seed string) Fr {
	var f Fr
	FrFromHash(&f, sha256.Sum256([]byte(seed)))
	return f
}

func TestCommitLagrangeIsLinear(t *testing.T) {
	e := newTestEngine(t, 4)

	a := []Fr{frFor("a0"), frFor("a1"), frFor("a2"), frFor("a3")}
	b := []Fr{frFor("b0"), frFor("b1"), frFor("b2"), frFor("b3")}
	sum := make([]Fr, 4)
	for i := range sum {
		AddFr(&sum[i], &a[i], &b[i])
	}

	ca := e.CommitLagrange(a)
	var combined Point
	CopyPoint(&combined, &ca)
	for i := range b {
		ScaleAddG1(&combined, &e.setup.Lagrange[i], &b[i])
	}

	want := e.CommitLagrange(sum)
	if !PointEqual(&combined, &want) {
		t.Fatalf("Commit(a) + b·L != Commit(a+b)")
	}
}

func TestApplyDeltaMatchesFullRebuild(t *testing.T) {
	e := newTestEngine(t, 4)

	values := []Fr{frFor("x0"), frFor("x1"), frFor("x2"), frFor("x3")}
	before := e.CommitLagrange(values)

	changed := append([]Fr(nil), values...)
	newVal := frFor("x1-updated")
	var delta Fr
	SubFr(&delta, &newVal, &changed[1])
	changed[1] = newVal

	got := before
	e.ApplyDelta(&got, 1, &delta)

	want := e.CommitLagrange(changed)
	if !PointEqual(&got, &want) {
		t.Fatalf("ApplyDelta result does not match a full rebuild with the new value")
	}
}

func TestApplyDeltasBatch(t *testing.T) {
	e := newTestEngine(t, 4)

	values := []Fr{frFor("y0"), frFor("y1"), frFor("y2"), frFor("y3")}
	before := e.CommitLagrange(values)

	changed := append([]Fr(nil), values...)
	slots := []int{0, 2}
	deltas := make([]Fr, len(slots))
	for i, slot := range slots {
		nv := frFor("y-new")
		SubFr(&deltas[i], &nv, &changed[slot])
		changed[slot] = nv
	}

	got := before
	e.ApplyDeltas(&got, slots, deltas)

	want := e.CommitLagrange(changed)
	if !PointEqual(&got, &want) {
		t.Fatalf("ApplyDeltas result does not match a full rebuild with the new values")
	}
}
