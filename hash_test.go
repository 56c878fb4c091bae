package vbtree

import "testing"

func TestHashLeafDeterministic(t *testing.T) {
	keys := []Key{KeyFromUint64(1), KeyFromUint64(2)}
	values := []Val{ValFromUint64(10), ValFromUint64(20)}

	h1 := hashLeaf(keys, values)
	h2 := hashLeaf(keys, values)
	if h1 != h2 {
		t.Fatalf("hashLeaf is not deterministic")
	}

	h3 := hashLeaf(keys, []Val{ValFromUint64(11), ValFromUint64(20)})
	if h1 == h3 {
		t.Fatalf("hashLeaf did not change when a value changed")
	}
}

func TestHashInnerDependsOnCommitment(t *testing.T) {
	keys := []Key{KeyFromUint64(1)}
	values := []Val{ValFromUint64(10)}

	h1 := hashInner([]byte("commitment-a"), keys, values)
	h2 := hashInner([]byte("commitment-b"), keys, values)
	if h1 == h2 {
		t.Fatalf("hashInner did not change when the commitment bytes changed")
	}
}
