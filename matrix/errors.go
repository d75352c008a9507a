// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels and constructors MUST return these sentinels (optionally
// wrapped with an operation tag) and tests MUST check them via errors.Is.
// No exported function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it greps cleanly in logs.
// Wrap with matrixErrorf(tag, ErrX) at the public boundary; callers match
// with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape (non-square) -> dimension mismatch -> block size.

var (
	// ErrInvalidDimensions indicates a non-positive matrix order or block size.
	// It is a configuration bug and is reported before any allocation happens.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrAllocation indicates that the buffers for a requested order cannot be
	// allocated: the element count overflows, the request exceeds the configured
	// memory limit, or the runtime refused the allocation.
	ErrAllocation = errors.New("matrix: cannot allocate buffers")

	// ErrNilMatrix indicates that a nil *Dense was passed to a kernel.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square operand was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates operands of different orders.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
