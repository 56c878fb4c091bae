package vbtree

import (
	"fmt"
	"slices"
)

// Tree is a B-tree of minimum degree t = width/2. Every node but the root
// holds between t-1 and 2t-1 keys; the root may hold as few as zero. All
// leaves sit at the same depth.
type Tree struct {
	Root  *Node
	t     int
	width int
}

// PathEntry is one step of a root-to-node descent: the node visited and
// the index within it that routing continued through (or the key's match
// index, if it was found at that node).
type PathEntry struct {
	Node *Node
	Idx  int
}

// NewTree returns an empty single-leaf tree for the given width, which
// must be a power of two no smaller than 4 (so min degree t = width/2 is
// at least 2, as CLRS requires).
func NewTree(width int) (*Tree, error) {
	if width < 4 || width&(width-1) != 0 {
		return nil, fmt.Errorf("%w: width %d is not a power of two >= 4", ErrSetupInvalid, width)
	}
	return &Tree{Root: newNode(), t: width / 2, width: width}, nil
}

// Degree returns the tree's minimum degree t.
func (tr *Tree) Degree() int { return tr.t }

// FindNode searches for key starting at the root, returning the node and
// in-node index it was found at.
func (tr *Tree) FindNode(key Key) (node *Node, idx int, found bool) {
	n := tr.Root
	for n != nil {
		i := 0
		for i < n.KeyCount() && CmpKey(key, n.Keys[i]) > 0 {
			i++
		}
		if i < n.KeyCount() && CmpKey(key, n.Keys[i]) == 0 {
			return n, i, true
		}
		if n.IsLeaf() {
			return nil, 0, false
		}
		n = n.Children[i]
	}
	return nil, 0, false
}

// FindPathToNode returns the root-to-node descent path for key: every node
// visited paired with the index routing continued through (or matched).
// The last entry's Idx is either the match index, for an existing key, or
// the insertion slot, for a key not present.
func (tr *Tree) FindPathToNode(key Key) []PathEntry {
	var path []PathEntry
	n := tr.Root
	for n != nil {
		i := 0
		for i < n.KeyCount() && CmpKey(key, n.Keys[i]) > 0 {
			i++
		}
		path = append(path, PathEntry{Node: n, Idx: i})
		if i < n.KeyCount() && CmpKey(key, n.Keys[i]) == 0 {
			break
		}
		if n.IsLeaf() {
			break
		}
		n = n.Children[i]
	}
	return path
}

// splitChild splits the full child at parent.Children[idx] about its
// median key, promoting that key into parent and moving the upper half of
// the child's keys/values/children into a freshly allocated sibling
// inserted right after it.
func (tr *Tree) splitChild(parent *Node, idx int) {
	t := tr.t
	child := parent.Children[idx]
	sibling := newNode()

	parent.Children = slices.Insert(parent.Children, idx+1, sibling)
	parent.Keys = slices.Insert(parent.Keys, idx, child.Keys[t-1])
	parent.Values = slices.Insert(parent.Values, idx, child.Values[t-1])

	sibling.Keys = append([]Key(nil), child.Keys[t:2*t-1]...)
	sibling.Values = append([]Val(nil), child.Values[t:2*t-1]...)
	child.Keys = child.Keys[:t-1]
	child.Values = child.Values[:t-1]

	if !child.IsLeaf() {
		sibling.Children = append([]*Node(nil), child.Children[t:2*t]...)
		child.Children = child.Children[:t]
	}

	parent.hashSet = false
	child.hashSet = false
	sibling.hashSet = false
}

// insertNonFull inserts key/value into the subtree rooted at node, which
// must not itself already hold 2t-1 keys. Inner nodes are descended into
// after preemptively splitting any full child, so a split recursion never
// has to propagate back up.
func (tr *Tree) insertNonFull(node *Node, key Key, value Val, update bool) error {
	t := tr.t
	if node.KeyCount() == 2*t-1 {
		return ErrNodeFull
	}

	idx := node.KeyCount() - 1
	if node.IsLeaf() {
		for idx >= 0 && CmpKey(key, node.Keys[idx]) < 0 {
			idx--
		}
		node.Keys = slices.Insert(node.Keys, idx+1, key)
		node.Values = slices.Insert(node.Values, idx+1, value)
		node.hashSet = false
		return nil
	}

	for idx >= 0 && CmpKey(key, node.Keys[idx]) < 0 {
		idx--
	}
	idx++

	if node.Children[idx].KeyCount() == 2*t-1 {
		tr.splitChild(node, idx)
		if CmpKey(key, node.Keys[idx]) > 0 {
			idx++
		}
	}
	if err := tr.insertNonFull(node.Children[idx], key, value, update); err != nil {
		return err
	}
	node.hashSet = false
	return nil
}

// InsertNode inserts key/value into the tree, preemptively splitting full
// nodes along the descent path (including, if necessary, the root). If key
// already exists and update is true, its value is overwritten; if update
// is false, an existing key is left untouched.
func (tr *Tree) InsertNode(key Key, value Val, update bool) error {
	if node, idx, found := tr.FindNode(key); found {
		if update {
			node.Values[idx] = value
			node.hashSet = false
		}
		return nil
	}

	t := tr.t
	if tr.Root.KeyCount() == 2*t-1 {
		newRoot := newNode()
		newRoot.Children = append(newRoot.Children, tr.Root)
		tr.splitChild(newRoot, 0)
		tr.Root = newRoot
		return tr.insertNonFull(newRoot, key, value, update)
	}
	return tr.insertNonFull(tr.Root, key, value, update)
}
