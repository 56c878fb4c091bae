package vbtree

import "github.com/thrylos-labs/vbtree/kzg"

// AddNodeHash computes hashes and commitments recursively down from node,
// the full (non-incremental) builder: every child whose hash is not marked
// current (hashSet false) is hashed first, then the parent's commitment is
// built from scratch as Σ H(child_i)·L_i before the parent itself is
// hashed. A child already marked current is not descended into; its cached
// Hash is used as is. Children beyond ChildCount() are treated as
// zero, matching a commitment vector zero-padded out to the tree's width.
func AddNodeHash(node *Node, engine *kzg.Engine) {
	if node.IsLeaf() {
		node.recomputeHash()
		return
	}

	values := make([]kzg.Fr, len(node.Children))
	for i, child := range node.Children {
		if !child.hashSet {
			AddNodeHash(child, engine)
		}
		kzg.FrFromHash(&values[i], child.Hash)
	}
	node.Commitment = engine.CommitLagrange(values)
	node.recomputeHash()
}
