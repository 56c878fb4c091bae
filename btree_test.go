package vbtree

import (
	"math/rand/v2"
	"testing"
	"testing/quick"

	"github.com/davecgh/go-spew/spew"
)

func TestNewTreeRejectsBadWidth(t *testing.T) {
	for _, width := range []int{0, 1, 3, 5, 6} {
		if _, err := NewTree(width); err == nil {
			t.Fatalf("width %d: expected an error", width)
		}
	}
}

func TestInsertAndFind(t *testing.T) {
	tr, err := NewTree(4)
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}

	want := map[Key]Val{}
	for i := uint64(0); i < 500; i++ {
		k := KeyFromUint64(i)
		v := ValFromUint64(i * 7)
		if err := tr.InsertNode(k, v, true); err != nil {
			t.Fatalf("InsertNode(%d): %v", i, err)
		}
		want[k] = v
	}

	for k, v := range want {
		node, idx, found := tr.FindNode(k)
		if !found {
			t.Fatalf("key %v not found after insertion", k)
		}
		if node.Values[idx] != v {
			t.Fatalf("value mismatch for key %v: got %v, want %v", k, node.Values[idx], v)
		}
	}
}

func TestInsertNodeUpdateFlag(t *testing.T) {
	tr, err := NewTree(4)
	if err != nil {
		t.Fatalf("NewTree: %v", err)
	}
	k := KeyFromUint64(1)
	if err := tr.InsertNode(k, ValFromUint64(1), true); err != nil {
		t.Fatal(err)
	}
	if err := tr.InsertNode(k, ValFromUint64(2), false); err != nil {
		t.Fatal(err)
	}
	if _, idx, found := tr.FindNode(k); !found || tr.Root.Values[idx] != ValFromUint64(1) {
		t.Fatalf("update=false must not overwrite an existing value")
	}
	if err := tr.InsertNode(k, ValFromUint64(3), true); err != nil {
		t.Fatal(err)
	}
	if _, idx, found := tr.FindNode(k); !found || tr.Root.Values[idx] != ValFromUint64(3) {
		t.Fatalf("update=true must overwrite an existing value")
	}
}

// leafDepths returns the depth of every leaf in the tree, 0-indexed from
// the root, to check the all-leaves-at-equal-depth invariant.
func leafDepths(n *Node, depth int, out *[]int) {
	if n.IsLeaf() {
		*out = append(*out, depth)
		return
	}
	for _, c := range n.Children {
		leafDepths(c, depth+1, out)
	}
}

// checkOrderInvariant walks the tree verifying node key counts, strictly
// increasing keys, and children = keys+1 for every inner node.
func checkOrderInvariant(t *testing.T, tr *Tree, n *Node, isRoot bool) {
	t.Helper()
	tMin := tr.Degree()

	if !isRoot {
		if n.KeyCount() < tMin-1 {
			t.Fatalf("non-root node has %d keys, fewer than t-1=%d:\n%s", n.KeyCount(), tMin-1, spew.Sdump(n))
		}
	}
	if n.KeyCount() > 2*tMin-1 {
		t.Fatalf("node has %d keys, more than 2t-1=%d:\n%s", n.KeyCount(), 2*tMin-1, spew.Sdump(n))
	}
	for i := 1; i < n.KeyCount(); i++ {
		if CmpKey(n.Keys[i-1], n.Keys[i]) >= 0 {
			t.Fatalf("keys not strictly increasing at index %d:\n%s", i, spew.Sdump(n))
		}
	}
	if !n.IsLeaf() && n.ChildCount() != n.KeyCount()+1 {
		t.Fatalf("inner node has %d children but %d keys:\n%s", n.ChildCount(), n.KeyCount(), spew.Sdump(n))
	}
	for _, c := range n.Children {
		checkOrderInvariant(t, tr, c, false)
	}
}

func TestBTreeInvariantsHoldUnderRandomInsertion(t *testing.T) {
	cfg := &quick.Config{MaxCount: 30}
	property := func(seed int64, n uint16) bool {
		count := int(n%400) + 1
		r := rand.New(rand.NewPCG(uint64(seed), 0))

		tr, err := NewTree(4)
		if err != nil {
			t.Fatalf("NewTree: %v", err)
		}
		for i := 0; i < count; i++ {
			k := KeyFromUint64(r.Uint64())
			if err := tr.InsertNode(k, ValFromUint64(r.Uint64()), true); err != nil {
				t.Fatalf("InsertNode: %v", err)
			}
		}

		checkOrderInvariant(t, tr, tr.Root, true)

		var depths []int
		leafDepths(tr.Root, 0, &depths)
		for _, d := range depths[1:] {
			if d != depths[0] {
				t.Fatalf("leaves at unequal depths: %v", depths)
			}
		}
		return true
	}
	if err := quick.Check(property, cfg); err != nil {
		t.Fatal(err)
	}
}
