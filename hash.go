package vbtree

import "crypto/sha256"

// HashSize is the width of a node digest.
const HashSize = sha256.Size

// Hash is a node digest.
type Hash [HashSize]byte

// hashLeaf computes H(keys ‖ values) for a leaf node: the sha256 of the
// concatenation of every key followed by every value, in order.
func hashLeaf(keys []Key, values []Val) Hash {
	h := sha256.New()
	for _, k := range keys {
		h.Write(k[:])
	}
	for _, v := range values {
		h.Write(v[:])
	}
	var out Hash
	h.Sum(out[:0])
	return out
}

// hashInner computes H(compress(commitment) ‖ keys ‖ values) for an inner
// node: the sha256 of the compressed commitment followed by every key then
// every value, in order.
func hashInner(compressedCommitment []byte, keys []Key, values []Val) Hash {
	h := sha256.New()
	h.Write(compressedCommitment)
	for _, k := range keys {
		h.Write(k[:])
	}
	for _, v := range values {
		h.Write(v[:])
	}
	var out Hash
	h.Sum(out[:0])
	return out
}
