package vbtree

import "github.com/thrylos-labs/vbtree/kzg"

// slotDelta is a pending homomorphic change to one slot of a commitment:
// add delta·L_slot.
type slotDelta struct {
	slot  int
	delta kzg.Fr
}

// levelPlan records, for one level of a split-triggering insert, the slot
// in the post-mutation parent's children of the node the inserted key
// descends into (updatedIdx), the slot of the other half of a split
// (splitIdx), and which of the parent's other children were shifted one
// slot right to make room for the new sibling (shiftedIdx). Either half may
// be the original node object, which always keeps the lower half. hash is the
// level's pre-mutation hash, the baseline every delta at this level is
// computed against.
type levelPlan struct {
	leaf        bool
	hash        Hash
	updatedIdx  int
	hasSplit    bool
	splitIdx    int
	hasShifted  bool
	shiftedIdx  []int
	childHashes []Hash

	updatedNode  *Node
	splitNode    *Node
	shiftedNodes []*Node
}

// frDelta returns newHash - oldHash reduced into the scalar field, the
// quantity a homomorphic commitment update adds to a parent's slot.
func frDelta(newHash, oldHash Hash) kzg.Fr {
	var n, o, d kzg.Fr
	kzg.FrFromHash(&n, newHash)
	kzg.FrFromHash(&o, oldHash)
	kzg.SubFr(&d, &n, &o)
	return d
}

// propagateDelta walks path from its deepest entry up to and including the
// root, adding delta to each node's commitment at the slot its child
// occupies, or fully rebuilding a node that has never been committed. The hash change produced at each level
// becomes the delta fed to the level above it.
func propagateDelta(engine *kzg.Engine, path []PathEntry, delta kzg.Fr) {
	for i := len(path) - 1; i >= 0; i-- {
		node, idx := path[i].Node, path[i].Idx
		oldHash := node.Hash
		if kzg.IsIdentity(&node.Commitment) {
			AddNodeHash(node, engine)
		} else {
			engine.ApplyDelta(&node.Commitment, idx, &delta)
			node.recomputeHash()
		}
		delta = frDelta(node.Hash, oldHash)
	}
}

// UpsertVCNode inserts key/value if absent, or overwrites its value if
// present, and brings every hash and commitment from the mutated leaf up
// to the root current — including through any node splits the insert
// triggers — by applying homomorphic commitment deltas instead of
// recomputing untouched subtrees. The tree must already have fully built
// hashes and commitments (e.g. via AddNodeHash) before the first call.
func UpsertVCNode(tr *Tree, engine *kzg.Engine, key Key, value Val) error {
	t := tr.t
	path := tr.FindPathToNode(key)
	last := path[len(path)-1]

	if last.Idx < last.Node.KeyCount() && CmpKey(key, last.Node.Keys[last.Idx]) == 0 {
		oldHash := last.Node.Hash
		last.Node.Values[last.Idx] = value
		last.Node.recomputeHash()
		propagateDelta(engine, path[:len(path)-1], frDelta(last.Node.Hash, oldHash))
		return nil
	}

	splits := make([]bool, len(path))
	splitCount := 0
	for i, pe := range path {
		if pe.Node.KeyCount() == 2*t-1 {
			splits[i] = true
			splitCount++
		}
	}

	if splitCount == 0 {
		oldHash := last.Node.Hash
		if err := tr.InsertNode(key, value, false); err != nil {
			return err
		}
		last.Node.recomputeHash()
		propagateDelta(engine, path[:len(path)-1], frDelta(last.Node.Hash, oldHash))
		return nil
	}

	return upsertWithSplits(tr, engine, key, value, path, splits)
}

// upsertWithSplits handles an insert that makes one or more full nodes
// along the path to key split. It first classifies, purely from the
// pre-mutation path and each level's fullness, where every post-split
// object will end up; only then does it perform the real B-tree mutation
// and replay those classifications bottom-up as commitment deltas.
func upsertWithSplits(tr *Tree, engine *kzg.Engine, key Key, value Val, path []PathEntry, splits []bool) error {
	t := tr.t

	var plans []*levelPlan
	for i := range path {
		node, idx := path[i].Node, path[i].Idx
		leaf := node.IsLeaf()

		if !splits[i] {
			if i == 0 {
				continue
			}
			plans = append(plans, &levelPlan{leaf: leaf, hash: node.Hash, updatedIdx: path[i-1].Idx})
			continue
		}

		plan := &levelPlan{leaf: leaf, hash: node.Hash, hasSplit: true}
		if i == 0 {
			if idx > t-1 {
				plan.updatedIdx, plan.splitIdx = 1, 0
			} else {
				plan.updatedIdx, plan.splitIdx = 0, 1
			}
		} else {
			prevNode, prevIdx := path[i-1].Node, path[i-1].Idx
			if idx > t-1 {
				plan.updatedIdx, plan.splitIdx = prevIdx+1, prevIdx
			} else {
				plan.updatedIdx, plan.splitIdx = prevIdx, prevIdx+1
			}
			switch {
			case !splits[i-1] && prevNode.ChildCount() > prevIdx+1:
				for j := prevIdx + 1; j < prevNode.ChildCount(); j++ {
					plan.shiftedIdx = append(plan.shiftedIdx, j+1)
				}
				plan.hasShifted = true
			case splits[i-1] && t-1 > prevIdx:
				for j := prevIdx + 1; j < t; j++ {
					plan.shiftedIdx = append(plan.shiftedIdx, j+1)
				}
				plan.hasShifted = true
			}
		}

		if !leaf {
			plan.childHashes = make([]Hash, t)
			for j, c := range node.Children[t : 2*t] {
				plan.childHashes[j] = c.Hash
			}
			// This node is full and about to be split; from here on its
			// lower half keeps slots 0..t-1 and the upper half (now the
			// sibling's slots 0..t-1) no longer lives at idx, it lives at
			// idx-t in whichever object it ends up in.
			path[i] = PathEntry{Node: node, Idx: idx % t}
		}
		plans = append(plans, plan)
	}

	// A split whose parent is the tree root forces a full commitment
	// rebuild of the root: the root gains or loses a direct child, and
	// root has no parent of its own to receive a shifted-slot delta for
	// that change, so there is nothing to apply a delta *to* above it.
	rebuildRoot := len(plans) > 0 && plans[0].hasSplit

	if err := tr.InsertNode(key, value, false); err != nil {
		return err
	}

	current := tr.Root
	for _, plan := range plans {
		plan.updatedNode = current.Children[plan.updatedIdx]
		if plan.hasSplit {
			plan.splitNode = current.Children[plan.splitIdx]
		}
		if plan.hasShifted {
			plan.shiftedNodes = make([]*Node, len(plan.shiftedIdx))
			for k, si := range plan.shiftedIdx {
				plan.shiftedNodes[k] = current.Children[si]
			}
		}
		current = plan.updatedNode
	}

	var updateChanges, splitChanges []slotDelta
	for i := len(plans) - 1; i >= 0; i-- {
		plan := plans[i]
		plan.updatedNode.recomputeHash()

		if !plan.leaf && plan.hasSplit {
			plan.splitNode.recomputeHash()
			changesToOriginal := make([]slotDelta, t)
			changesToSplit := make([]slotDelta, t)
			for j := 0; j < t; j++ {
				var h, neg kzg.Fr
				kzg.FrFromHash(&h, plan.childHashes[j])
				kzg.NegFr(&neg, &h)
				changesToOriginal[j] = slotDelta{slot: t + j, delta: neg}
				changesToSplit[j] = slotDelta{slot: j, delta: h}
			}
			if plan.updatedIdx < plan.splitIdx {
				updateChanges = append(append([]slotDelta{}, changesToOriginal...), updateChanges...)
				splitChanges = changesToSplit
			} else {
				updateChanges = append(append([]slotDelta{}, changesToSplit...), updateChanges...)
				splitChanges = changesToOriginal
			}
		}

		if len(splitChanges) > 0 {
			for _, d := range splitChanges {
				engine.ApplyDelta(&plan.splitNode.Commitment, d.slot, &d.delta)
			}
			plan.splitNode.recomputeHash()
			splitChanges = nil
		}
		if len(updateChanges) > 0 {
			for _, d := range updateChanges {
				engine.ApplyDelta(&plan.updatedNode.Commitment, d.slot, &d.delta)
			}
			plan.updatedNode.recomputeHash()
			updateChanges = nil
		}

		if plan.hasSplit {
			plan.splitNode.recomputeHash()
			minIdx, lowNode, highNode := plan.updatedIdx, plan.updatedNode, plan.splitNode
			if plan.splitIdx < plan.updatedIdx {
				minIdx, lowNode, highNode = plan.splitIdx, plan.splitNode, plan.updatedNode
			}

			var changeToSplit kzg.Fr
			kzg.FrFromHash(&changeToSplit, highNode.Hash)
			updateChanges = append(updateChanges,
				slotDelta{slot: minIdx, delta: frDelta(lowNode.Hash, plan.hash)},
				slotDelta{slot: minIdx + 1, delta: changeToSplit},
			)

			for k, sn := range plan.shiftedNodes {
				var shifted, remove kzg.Fr
				kzg.FrFromHash(&shifted, sn.Hash)
				kzg.NegFr(&remove, &shifted)
				updateChanges = append(updateChanges,
					slotDelta{slot: plan.shiftedIdx[k] - 1, delta: remove},
					slotDelta{slot: plan.shiftedIdx[k], delta: shifted},
				)
			}
		} else {
			updateChanges = append(updateChanges, slotDelta{
				slot:  plan.updatedIdx,
				delta: frDelta(plan.updatedNode.Hash, plan.hash),
			})
		}
	}

	if rebuildRoot {
		AddNodeHash(tr.Root, engine)
		return nil
	}
	for _, d := range updateChanges {
		engine.ApplyDelta(&tr.Root.Commitment, d.slot, &d.delta)
	}
	tr.Root.recomputeHash()
	return nil
}
