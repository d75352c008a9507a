// SPDX-License-Identifier: MIT
// Package matrix provides the three square multiplication kernels measured by
// the benchmark harness: the textbook i-j-k triple loop, the i-k-j row-order
// loop and the cache-blocked (tiled) row-order loop.
//
// Purpose:
//   - Keep loop nests on the flat row-major slices; no At/Set in hot loops.
//   - Validate operands once at the facade, then run an unchecked kernel.
//
// Notes:
//   - All kernels are single-threaded.
//   - MulRowOrder and MulBlocked accumulate into C; C must be zero on entry
//     to obtain A·B (Generate provides a zeroed C).

package matrix

import "fmt"

// ZeroSum is the initial value of a dot-product accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMulNaive    = "MulNaive"
	opMulRowOrder = "MulRowOrder"
	opMulBlocked  = "MulBlocked"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MulNaive computes C = A × B with the loop nest ordered i, j, k.
//
// Implementation:
//   - Stage 1: ValidateMulOperands(a, b, c).
//   - Stage 2: for each output cell accumulate Σ_k A[i,k]·B[k,j] in a register
//     and store it, overwriting C[i,j].
//
// Behavior highlights:
//   - The inner loop walks B down a column (stride m), so every step touches a
//     new cache line once m is large. This is the slow baseline.
//   - C need not be zero on entry.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (wrapped with "MulNaive").
//
// Complexity:
//   - Time O(m³), Space O(1) extra.
func MulNaive(a, b, c *Dense) error {
	if err := ValidateMulOperands(a, b, c); err != nil {
		return matrixErrorf(opMulNaive, err)
	}
	mulNaive(a.data, b.data, c.data, a.r)

	return nil
}

// MulRowOrder accumulates C += A × B with the loop nest ordered i, k, j.
//
// Implementation:
//   - Stage 1: ValidateMulOperands(a, b, c).
//   - Stage 2: for each (i,k) hoist A[i,k] and stream row k of B into row i of C.
//
// Behavior highlights:
//   - Both B and C are read row-wise in the innermost loop (unit stride).
//   - C must be zero on entry for the result to equal A·B.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (wrapped with "MulRowOrder").
//
// Complexity:
//   - Time O(m³), Space O(1) extra.
func MulRowOrder(a, b, c *Dense) error {
	if err := ValidateMulOperands(a, b, c); err != nil {
		return matrixErrorf(opMulRowOrder, err)
	}
	mulRowOrder(a.data, b.data, c.data, a.r)

	return nil
}

// MulBlocked accumulates C += A × B over cubic tiles of side blockSize.
//
// Implementation:
//   - Stage 1: ValidateMulOperands(a, b, c); ValidateBlockSize(blockSize).
//   - Stage 2: iterate tile origins iBlock, kBlock, jBlock (in that nesting);
//     clip every tile to [origin, min(origin+blockSize, m)).
//   - Stage 3: inside a tile apply the i-k-j row-order update.
//
// Behavior highlights:
//   - blockSize need not divide m; trailing tiles are clipped, never overrun.
//   - blockSize >= m degenerates to a single tile (equivalent to MulRowOrder).
//   - C must be zero on entry for the result to equal A·B.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrInvalidDimensions
//     (wrapped with "MulBlocked").
//
// Complexity:
//   - Time O(m³), Space O(1) extra.
func MulBlocked(a, b, c *Dense, blockSize int) error {
	if err := ValidateMulOperands(a, b, c); err != nil {
		return matrixErrorf(opMulBlocked, err)
	}
	if err := ValidateBlockSize(blockSize); err != nil {
		return matrixErrorf(opMulBlocked, err)
	}
	mulBlocked(a.data, b.data, c.data, a.r, blockSize)

	return nil
}

// BlockCount returns the number of tiles MulBlocked visits for order m:
// ⌈m/blockSize⌉³. It returns 0 for non-positive arguments.
func BlockCount(m, blockSize int) int {
	if m <= 0 || blockSize <= 0 {
		return 0
	}
	per := (m + blockSize - 1) / blockSize

	return per * per * per
}

// mulNaive: c[i*m+j] = Σ_k a[i*m+k]*b[k*m+j]. Slices must hold m*m values.
func mulNaive(a, b, c []float64, m int) {
	var (
		i, j, k    int
		rowA, rowC int
		sum        float64
	)
	for i = 0; i < m; i++ {
		rowA = i * m
		rowC = i * m
		for j = 0; j < m; j++ {
			sum = ZeroSum
			for k = 0; k < m; k++ {
				sum += a[rowA+k] * b[k*m+j]
			}
			c[rowC+j] = sum
		}
	}
}

// mulRowOrder: c[i*m+j] += a[i*m+k]*b[k*m+j] with j innermost.
func mulRowOrder(a, b, c []float64, m int) {
	var (
		i, k  int
		av    float64
		rowC  []float64
		rowB  []float64
		rowAo int
	)
	for i = 0; i < m; i++ {
		rowAo = i * m
		rowC = c[rowAo : rowAo+m]
		for k = 0; k < m; k++ {
			av = a[rowAo+k]
			rowB = b[k*m : k*m+m]
			for j := range rowC {
				rowC[j] += av * rowB[j]
			}
		}
	}
}

// mulBlocked: tiled i-k-j update with clipped boundary tiles.
func mulBlocked(a, b, c []float64, m, bs int) {
	var (
		iBlock, kBlock, jBlock int
		iMax, kMax, jMax       int
		i, k                   int
		av                     float64
		rowC, rowB             []float64
	)
	for iBlock = 0; iBlock < m; iBlock += bs {
		iMax = min(iBlock+bs, m)
		for kBlock = 0; kBlock < m; kBlock += bs {
			kMax = min(kBlock+bs, m)
			for jBlock = 0; jBlock < m; jBlock += bs {
				jMax = min(jBlock+bs, m)
				for i = iBlock; i < iMax; i++ {
					rowC = c[i*m+jBlock : i*m+jMax]
					for k = kBlock; k < kMax; k++ {
						av = a[i*m+k]
						rowB = b[k*m+jBlock : k*m+jMax]
						for j := range rowC {
							rowC[j] += av * rowB[j]
						}
					}
				}
			}
		}
	}
}
