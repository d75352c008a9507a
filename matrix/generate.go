// SPDX-License-Identifier: MIT

// Package matrix - deterministic operand generation for benchmark trials.
//
// Purpose:
//   - Build the three n×n buffers of one trial with a fixed fill pattern so every
//     kernel multiplies exactly the same data.
//   - Fail with ErrAllocation instead of crashing when a size cannot be served.
//
// Fill contract:
//   - A[i,k] = 1.0 for all i,k.
//   - B[k,j] = k+1 for all k,j.
//   - C zero.
//
// With this contract the exact product is C[i,j] = n(n+1)/2 for every cell.

package matrix

import "fmt"

const opGenerate = "Generate"

// Operands holds the three buffers of a single trial. The trial that receives
// an Operands owns it exclusively; no storage is shared between calls.
type Operands struct {
	A, B, C *Dense
}

// Order returns the side length of the operands, or 0 after Release.
func (o *Operands) Order() int {
	if o == nil || o.A == nil {
		return 0
	}
	return o.A.r
}

// Release drops all three references so the buffers become unreachable as soon
// as the caller's scope ends. Safe to call more than once.
func (o *Operands) Release() {
	if o == nil {
		return
	}
	o.A, o.B, o.C = nil, nil, nil
}

// Generate allocates and fills fresh operands of order n.
//
// Implementation:
//   - Stage 1: reject n <= 0 with ErrInvalidDimensions before touching memory.
//   - Stage 2: compute the byte requirement for A+B+C; overflow or a request above
//     WithMemoryLimit fails with ErrAllocation.
//   - Stage 3: allocate the three buffers (runtime refusals become ErrAllocation).
//   - Stage 4: fill A with ones and B row k with k+1; C stays zero.
//
// Errors:
//   - ErrInvalidDimensions, ErrAllocation (both wrapped with "Generate").
//
// Determinism:
//   - Identical contents for identical n; no randomness.
//
// Complexity:
//   - Time O(n²), Space 3·n² float64.
func Generate(n int, opts ...Option) (*Operands, error) {
	if n <= 0 {
		return nil, matrixErrorf(opGenerate, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	need, ok := RequiredBytes(n)
	if !ok {
		return nil, matrixErrorf(opGenerate, fmt.Errorf("order %d overflows: %w", n, ErrAllocation))
	}
	if o.memoryLimit > 0 && need > o.memoryLimit {
		return nil, matrixErrorf(opGenerate,
			fmt.Errorf("order %d needs %d bytes, limit %d: %w", n, need, o.memoryLimit, ErrAllocation))
	}

	a, err := NewSquare(n)
	if err != nil {
		return nil, matrixErrorf(opGenerate, err)
	}
	b, err := NewSquare(n)
	if err != nil {
		return nil, matrixErrorf(opGenerate, err)
	}
	c, err := NewSquare(n)
	if err != nil {
		return nil, matrixErrorf(opGenerate, err)
	}

	FillOnes(a)
	FillRowIndex(b)

	return &Operands{A: a, B: b, C: c}, nil
}

// FillOnes sets every element of m to 1.0.
func FillOnes(m *Dense) {
	for i := range m.data {
		m.data[i] = 1.0
	}
}

// FillRowIndex sets every element of row i to float64(i+1).
func FillRowIndex(m *Dense) {
	var i, j, off int
	var v float64
	for i = 0; i < m.r; i++ {
		v = float64(i + 1)
		off = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[off+j] = v
		}
	}
}

// ExpectedCell is the exact value of every cell of A·B for generated operands
// of order n: Σ_k 1·(k+1) = n(n+1)/2.
func ExpectedCell(n int) float64 {
	return float64(n) * float64(n+1) / 2
}
