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

package kzg

import "github.com/protolambda/go-kzg/bls"

// multiExpThreshold mirrors evalPoly's dense/sparse cutoff: below this
// many populated slots, a manual accumulation beats a multi-exponentiation
// call.
const multiExpThreshold = 25

// Engine evaluates and incrementally maintains a commitment to a vector of
// up to Setup.Width scalars, each one the field-reduced hash of a tree
// node's child.
type Engine struct {
	setup *Setup
}

// NewEngine returns an Engine bound to setup.
func NewEngine(setup *Setup) *Engine {
	return &Engine{setup: setup}
}

// Width reports the number of children a commitment produced by this
// engine can cover.
func (e *Engine) Width() int { return e.setup.Width }

// CommitLagrange computes Σ values[i]·L_i over the populated entries of
// values, zero-padding slots beyond len(values) as identity. This is the
// full, non-incremental commitment used by the bottom-up builder.
func (e *Engine) CommitLagrange(values []Fr) Point {
	nonZero := 0
	for i := range values {
		if !bls.EqualZero(&values[i]) {
			nonZero++
		}
	}

	if nonZero >= multiExpThreshold {
		return *bls.LinCombG1(e.setup.Lagrange[:len(values)], values)
	}

	comm := bls.ZERO_G1
	for i := range values {
		if bls.EqualZero(&values[i]) {
			continue
		}
		var eval Point
		bls.MulG1(&eval, &e.setup.Lagrange[i], &values[i])
		var next Point
		bls.AddG1(&next, &comm, &eval)
		comm = next
	}
	return comm
}

// ApplyDelta adds delta·L_slot to commitment in place, the homomorphic
// single-slot update that lets a B-tree mutation touch one child's
// contribution without recomputing the others.
func (e *Engine) ApplyDelta(commitment *Point, slot int, delta *Fr) {
	ScaleAddG1(commitment, &e.setup.Lagrange[slot], delta)
}

// ApplyDeltas applies a batch of slot deltas in order.
func (e *Engine) ApplyDeltas(commitment *Point, slots []int, deltas []Fr) {
	for i, slot := range slots {
		e.ApplyDelta(commitment, slot, &deltas[i])
	}
}
