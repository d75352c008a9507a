// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for kernel input checks.
//  - Keep kernels minimal by delegating nil/shape/order checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can wrap again.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on the success path.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Square → SameOrder.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulOperands checks the operands of a square kernel call C = A·B:
// all three non-nil, all square, all of the same order. Square shape is
// asserted per operand, so no kernel ever relies on two strides being equal.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch (in that priority).
// Complexity: O(1).
func ValidateMulOperands(a, b, c *Dense) error {
	const tag = "ValidateMulOperands"
	for _, m := range [...]*Dense{a, b, c} {
		if err := ValidateNotNil(m); err != nil {
			return validatorErrorf(tag, err)
		}
	}
	for _, m := range [...]*Dense{a, b, c} {
		if err := ValidateSquare(m); err != nil {
			return validatorErrorf(tag, err)
		}
	}
	if a.r != b.r || a.r != c.r {
		return validatorErrorf(tag, ErrDimensionMismatch)
	}

	return nil
}

// ValidateBlockSize rejects non-positive tile sides.
// Complexity: O(1).
func ValidateBlockSize(blockSize int) error {
	if blockSize <= 0 {
		return validatorErrorf("ValidateBlockSize", ErrInvalidDimensions)
	}

	return nil
}
