// SPDX-License-Identifier: MIT
// Package bench: sentinel error set.
// Allocation and dimension errors come from the matrix package
// (matrix.ErrAllocation, matrix.ErrInvalidDimensions) and are matched with
// errors.Is; this file only adds the harness-level conditions.

package bench

import (
	"errors"
	"fmt"
)

var (
	// ErrNilReporter indicates NewRunner was given no result sink.
	ErrNilReporter = errors.New("bench: nil reporter")

	// ErrEmptySweep indicates a sweep with no sizes or no algorithms.
	ErrEmptySweep = errors.New("bench: empty sweep")

	// ErrUnknownAlgorithm indicates an algorithm value or name outside
	// Standard, Line and Block.
	ErrUnknownAlgorithm = errors.New("bench: unknown algorithm")
)

// benchErrorf wraps err with an operation or trial tag, preserving it via %w.
func benchErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
