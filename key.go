package vbtree

import "encoding/binary"

// KeySize and ValSize match the 32-byte little-endian encoding the trusted
// setup's scalar field and the benchmark driver both use for keys drawn
// from a 2^256 key space.
const (
	KeySize = 32
	ValSize = 32
)

// Key is a fixed-width tree key. Ordering follows the byte representation
// directly (not the numeric value it may encode): two keys compare equal
// iff their bytes are equal, and a key is "less than" another iff its byte
// slice is lexicographically smaller. KeyFromUint64 below stores its
// argument little-endian, so callers who only ever construct keys through
// it get an ordering that is NOT the same as numeric order for keys that
// differ in more than one byte (KeyFromUint64(256) sorts before
// KeyFromUint64(1)) — this mirrors the byte-level comparison
// the reference implementation performs on its own little-endian encoding.
type Key [KeySize]byte

// Val is a fixed-width leaf value.
type Val [ValSize]byte

// KeyFromUint64 encodes x as a little-endian 32-byte Key.
func KeyFromUint64(x uint64) Key {
	var k Key
	binary.LittleEndian.PutUint64(k[:8], x)
	return k
}

// ValFromUint64 encodes x as a little-endian 32-byte Val.
func ValFromUint64(x uint64) Val {
	var v Val
	binary.LittleEndian.PutUint64(v[:8], x)
	return v
}

// CmpKey returns -1, 0 or 1 as a is less than, equal to, or greater than b,
// comparing byte-for-byte.
func CmpKey(a, b Key) int {
	for i := 0; i < KeySize; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
