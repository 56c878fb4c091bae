package vbtree

import (
	"fmt"

	"github.com/thrylos-labs/vbtree/kzg"
)

// CheckValidTree recursively recomputes every node's hash and, for inner
// nodes, commitment, and reports a wrapped ErrValidationFailure at the
// first mismatch with what is stored.
func CheckValidTree(node *Node, engine *kzg.Engine) error {
	if node.IsLeaf() {
		want := hashLeaf(node.Keys, node.Values)
		if want != node.Hash {
			return fmt.Errorf("%w: leaf hash mismatch", ErrValidationFailure)
		}
		return nil
	}

	values := make([]kzg.Fr, len(node.Children))
	for i, child := range node.Children {
		if err := CheckValidTree(child, engine); err != nil {
			return err
		}
		kzg.FrFromHash(&values[i], child.Hash)
	}

	wantCommitment := engine.CommitLagrange(values)
	if !kzg.PointEqual(&node.Commitment, &wantCommitment) {
		return fmt.Errorf("%w: commitment mismatch", ErrValidationFailure)
	}

	wantHash := hashInner(kzg.Compress(&node.Commitment), node.Keys, node.Values)
	if wantHash != node.Hash {
		return fmt.Errorf("%w: inner hash mismatch", ErrValidationFailure)
	}
	return nil
}
