// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"math/bits"
	"runtime"
)

// float64Bytes is the in-memory size of one element.
const float64Bytes = 8

// operandCount is the number of buffers a single trial keeps live (A, B, C).
const operandCount = 3

// maxElems bounds a single buffer so that its byte size fits in int.
const maxElems = math.MaxInt / float64Bytes

// mulNoOverflow returns a*b and whether the product fits in int.
// Both factors must be non-negative.
func mulNoOverflow(a, b int) (int, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}

	return int(lo), true
}

// RequiredBytes reports how many bytes the three n×n operand buffers of one
// trial occupy. ok is false when the value does not fit in uint64 or n <= 0.
func RequiredBytes(n int) (bytes uint64, ok bool) {
	if n <= 0 {
		return 0, false
	}
	elems, ok := mulNoOverflow(n, n)
	if !ok {
		return 0, false
	}
	hi, lo := bits.Mul64(uint64(elems), operandCount*float64Bytes)
	if hi != 0 {
		return 0, false
	}

	return lo, true
}

// allocFloats allocates a zeroed slice of n float64 values.
// A runtime refusal from make (length out of range) is recovered and reported
// as ErrAllocation; any other panic is re-raised.
func allocFloats(n int) (buf []float64, err error) {
	if n < 0 || n > maxElems {
		return nil, ErrAllocation
	}
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); ok {
				buf, err = nil, ErrAllocation
				return
			}
			panic(r)
		}
	}()

	return make([]float64, n), nil
}
