// SPDX-License-Identifier: MIT

// Package matrix - square operand storage for the multiplication kernels.
//
// Purpose:
//   - One contiguous []float64 per operand; element (i,j) lives at i*cols + j.
//   - At/Set check bounds and return ErrOutOfRange; kernels bypass them.
//   - Keep the hot kernels on the flat slice (see impl_kernels.go).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Zero: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a rows×cols float64 buffer in row-major order.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (> 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense allocates a zeroed rows×cols buffer.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer through allocFloats, which turns
//     overflow and runtime allocation failures into ErrAllocation.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//   - ErrAllocation (element count overflow or refused allocation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	n, ok := mulNoOverflow(rows, cols)
	if !ok {
		return nil, ErrAllocation
	}
	buf, err := allocFloats(n)
	if err != nil {
		return nil, err
	}

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewSquare is shorthand for NewDense(n, n).
func NewSquare(n int) (*Dense, error) { return NewDense(n, n) }

// NewDenseFrom wraps a copy of vals (row-major, len == rows*cols) into a Dense.
// Returns ErrInvalidDimensions on a non-positive shape and ErrDimensionMismatch
// when len(vals) does not match.
func NewDenseFrom(rows, cols int, vals []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(vals) != rows*cols {
		return nil, ErrDimensionMismatch
	}
	buf := make([]float64, len(vals))
	copy(buf, vals)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// Rows is the row count.
func (m *Dense) Rows() int { return m.r }

// Cols is the column count.
func (m *Dense) Cols() int { return m.c }

// Order returns the side length of a square matrix, or -1 when m is not square.
func (m *Dense) Order() int {
	if m.r != m.c {
		return -1
	}
	return m.r
}

// RawData exposes the row-major backing slice without copying.
// Mutations through the slice are visible in m.
func (m *Dense) RawData() []float64 { return m.data }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At reads element (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set writes v to (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Zero resets every element to 0 in place.
func (m *Dense) Zero() {
	clear(m.data)
}

// Clone copies m into fresh storage.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// RowPreview returns a copy of at most limit leading values of row i.
// It returns nil for an invalid row or a non-positive limit.
func (m *Dense) RowPreview(i, limit int) []float64 {
	if i < 0 || i >= m.r || limit <= 0 {
		return nil
	}
	limit = min(limit, m.c)
	out := make([]float64, limit)
	copy(out, m.data[i*m.c:i*m.c+limit])

	return out
}

// String prints one bracketed row per line.
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
