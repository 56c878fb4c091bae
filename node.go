package vbtree

import "github.com/thrylos-labs/vbtree/kzg"

// Node is a B-tree node carrying 0..2t-1 keys, 0..2t-1 values and, for an
// inner node, 0..2t children. Leaves have no children. hashSet tracks
// whether Hash reflects the node's current contents; it is cleared by any
// mutation to Keys, Values or Children and must be restored by calling
// recomputeHash (or, for an inner node, by committing first).
type Node struct {
	Keys       []Key
	Values     []Val
	Children   []*Node
	Hash       Hash
	Commitment kzg.Point
	hashSet    bool
}

// newNode returns an empty node with an identity commitment.
func newNode() *Node {
	return &Node{Commitment: kzg.Identity()}
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// KeyCount returns the number of keys stored in n.
func (n *Node) KeyCount() int { return len(n.Keys) }

// ChildCount returns the number of children of n.
func (n *Node) ChildCount() int { return len(n.Children) }

// recomputeHash recomputes Hash from n's current keys, values and (for an
// inner node) commitment, and marks it valid. Callers must ensure an inner
// node's Commitment already reflects its children before calling this.
func (n *Node) recomputeHash() {
	if n.IsLeaf() {
		n.Hash = hashLeaf(n.Keys, n.Values)
	} else {
		n.Hash = hashInner(kzg.Compress(&n.Commitment), n.Keys, n.Values)
	}
	n.hashSet = true
}

// copyShallow returns a copy of n whose Keys/Values/Children slices are
// fresh but whose *Node children are shared with the original. It exists
// for tests that need to snapshot a tree before mutating it.
func (n *Node) copyShallow() *Node {
	cp := &Node{
		Keys:       append([]Key(nil), n.Keys...),
		Values:     append([]Val(nil), n.Values...),
		Children:   append([]*Node(nil), n.Children...),
		Hash:       n.Hash,
		Commitment: n.Commitment,
		hashSet:    n.hashSet,
	}
	return cp
}
