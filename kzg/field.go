// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

// Package kzg is the field, curve and commitment adapter for vbtree: Fr and
// Point alias the BLS12-381 scalar field element and G1 point types from
// go-kzg's bls subpackage.
package kzg

import (
	"bytes"
	"math/big"

	"github.com/protolambda/go-kzg/bls"
)

// Fr is a BLS12-381 scalar field element.
type Fr = bls.Fr

// Point is a BLS12-381 G1 curve point.
type Point = bls.G1Point

// modulus is the BLS12-381 scalar field order, used to reduce a 256-bit
// hash digest into a field element the same way the trusted setup's own
// scalars are reduced.
var modulus, _ = new(big.Int).SetString(
	"52435875175126190479447740508185965837690552500527637822603658699938581184513", 10)

// CopyFr copies src into dst.
func CopyFr(dst, src *Fr) { bls.CopyFr(dst, src) }

// CopyPoint copies src into dst.
func CopyPoint(dst, src *Point) { bls.CopyG1(dst, src) }

// FrFromHash reduces a 32-byte digest modulo the scalar field order and
// writes the result into out, reversing endianness around the big.Int
// reduction to match the field's own little-endian Fr encoding.
func FrFromHash(out *Fr, digest [32]byte) {
	var reversed [32]byte
	for i := range digest {
		reversed[i] = digest[len(digest)-i-1]
	}

	x := new(big.Int).SetBytes(reversed[:])
	x.Mod(x, modulus)

	for i := range reversed {
		reversed[i] = 0
	}
	xb := x.Bytes()
	copy(reversed[32-len(xb):], xb)

	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	bls.FrFrom32(out, reversed)
}

// FrFromUint64 sets out to the field element with value x.
func FrFromUint64(out *Fr, x uint64) { bls.AsFr(out, x) }

// AddFr sets out = a + b.
func AddFr(out, a, b *Fr) { bls.AddModFr(out, a, b) }

// SubFr sets out = a - b.
func SubFr(out, a, b *Fr) { bls.SubModFr(out, a, b) }

// NegFr sets out = -a.
func NegFr(out, a *Fr) { bls.SubModFr(out, &bls.ZERO, a) }

// FrIsZero reports whether f is the additive identity.
func FrIsZero(f *Fr) bool { return bls.EqualZero(f) }

// FrEqual reports whether a and b represent the same field element.
func FrEqual(a, b *Fr) bool {
	ab, bb := bls.FrTo32(a), bls.FrTo32(b)
	return bytes.Equal(ab[:], bb[:])
}

// Compress returns the compressed encoding of a G1 point.
func Compress(p *Point) []byte {
	return bls.ToCompressedG1(p)
}

// Identity returns the identity element of G1, the value an inner node's
// commitment holds before it has ever been committed.
func Identity() Point {
	var z Point
	bls.CopyG1(&z, &bls.ZERO_G1)
	return z
}

// IsIdentity reports whether p is the identity element of G1, i.e. the
// point an inner node's commitment starts at before it has ever been
// committed.
func IsIdentity(p *Point) bool {
	return bytes.Equal(Compress(p), Compress(&bls.ZERO_G1))
}

// PointEqual reports whether a and b encode the same G1 point.
func PointEqual(a, b *Point) bool {
	return bytes.Equal(Compress(a), Compress(b))
}

// ScaleAddG1 sets acc = acc + scalar*basis, mutating acc in place. This is
// the homomorphic step a single-slot commitment delta relies on.
func ScaleAddG1(acc *Point, basis *Point, scalar *Fr) {
	var scaled Point
	bls.MulG1(&scaled, basis, scalar)
	var sum Point
	bls.AddG1(&sum, acc, &scaled)
	bls.CopyG1(acc, &sum)
}
