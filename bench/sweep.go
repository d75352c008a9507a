// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/matbench/matrix"
	"github.com/samber/lo"
)

// Sweep is the ordered configuration of one benchmark run.
//
// Fields:
//   - Sizes: matrix orders, run in order.
//   - LargeSizes: optional extended orders, used only by Runner.RunAll after
//     confirmation and only with the blocked kernel.
//   - BlockSizes: tile sides for the blocked kernel, run in order.
//   - Algorithms: kernels to run per size, in order; Block expands to every
//     entry of BlockSizes.
//
// A Sweep is read-only while a runner uses it.
type Sweep struct {
	Sizes      []int
	LargeSizes []int
	BlockSizes []int
	Algorithms []Algorithm
}

// DefaultSizes returns {600, 1000, ..., 3000} in steps of 400.
func DefaultSizes() []int { return []int{600, 1000, 1400, 1800, 2200, 2600, 3000} }

// DefaultLargeSizes returns {4096, 6144, 8192, 10240}.
func DefaultLargeSizes() []int { return []int{4096, 6144, 8192, 10240} }

// DefaultBlockSizes returns {128, 256, 512}.
func DefaultBlockSizes() []int { return []int{128, 256, 512} }

// DefaultSweep is the size sweep over every algorithm with the extended
// large-size list attached (RunAll asks before using it).
func DefaultSweep() Sweep {
	return Sweep{
		Sizes:      DefaultSizes(),
		LargeSizes: DefaultLargeSizes(),
		BlockSizes: DefaultBlockSizes(),
		Algorithms: AllAlgorithms(),
	}
}

// FixedSweep runs a single algorithm at a single size. blockSize is used only
// for Block.
func FixedSweep(alg Algorithm, size, blockSize int) Sweep {
	s := Sweep{Sizes: []int{size}, Algorithms: []Algorithm{alg}}
	if alg == Block {
		s.BlockSizes = []int{blockSize}
	}
	return s
}

// Clone returns a deep copy so callers can derive sweeps without aliasing.
func (s Sweep) Clone() Sweep {
	return Sweep{
		Sizes:      slices.Clone(s.Sizes),
		LargeSizes: slices.Clone(s.LargeSizes),
		BlockSizes: slices.Clone(s.BlockSizes),
		Algorithms: slices.Clone(s.Algorithms),
	}
}

// Validate checks the whole sweep before any work starts.
//
// Errors:
//   - ErrEmptySweep when Sizes or Algorithms is empty.
//   - ErrUnknownAlgorithm for an invalid Algorithms entry.
//   - matrix.ErrInvalidDimensions for any non-positive size, large size or
//     block size, and when Block is requested without block sizes.
//
// LargeSizes only need block sizes under RunAll; validate ForAll() for that.
func (s Sweep) Validate() error {
	const tag = "Sweep.Validate"
	if len(s.Sizes) == 0 {
		return benchErrorf(tag, fmt.Errorf("no sizes: %w", ErrEmptySweep))
	}
	if len(s.Algorithms) == 0 {
		return benchErrorf(tag, fmt.Errorf("no algorithms: %w", ErrEmptySweep))
	}
	if bad := lo.Reject(s.Algorithms, func(a Algorithm, _ int) bool { return a.Valid() }); len(bad) > 0 {
		return benchErrorf(tag, fmt.Errorf("%v: %w", bad, ErrUnknownAlgorithm))
	}
	nonPositive := func(n int, _ int) bool { return n <= 0 }
	if bad := lo.Filter(s.Sizes, nonPositive); len(bad) > 0 {
		return benchErrorf(tag, fmt.Errorf("sizes %v: %w", bad, matrix.ErrInvalidDimensions))
	}
	if bad := lo.Filter(s.LargeSizes, nonPositive); len(bad) > 0 {
		return benchErrorf(tag, fmt.Errorf("large sizes %v: %w", bad, matrix.ErrInvalidDimensions))
	}
	if bad := lo.Filter(s.BlockSizes, nonPositive); len(bad) > 0 {
		return benchErrorf(tag, fmt.Errorf("block sizes %v: %w", bad, matrix.ErrInvalidDimensions))
	}
	if lo.Contains(s.Algorithms, Block) && len(s.BlockSizes) == 0 {
		return benchErrorf(tag, fmt.Errorf("block kernel needs a block size: %w", matrix.ErrInvalidDimensions))
	}

	return nil
}

// ForAll is the sweep RunAll executes: every algorithm, in AllAlgorithms
// order, over the same size lists.
func (s Sweep) ForAll() Sweep {
	all := s.Clone()
	all.Algorithms = AllAlgorithms()
	return all
}

// TrialsFor expands the algorithms of s into the ordered trials for size n.
func (s Sweep) TrialsFor(n int) []Trial {
	return lo.FlatMap(s.Algorithms, func(a Algorithm, _ int) []Trial {
		if a != Block {
			return []Trial{{Algorithm: a, Size: n}}
		}
		return lo.Map(s.BlockSizes, func(bs int, _ int) Trial {
			return Trial{Algorithm: Block, Size: n, BlockSize: bs}
		})
	})
}

// Trials expands every size of s, in order.
func (s Sweep) Trials() []Trial {
	return lo.FlatMap(s.Sizes, func(n int, _ int) []Trial { return s.TrialsFor(n) })
}

// largePhase derives the blocked-only sweep over LargeSizes.
func (s Sweep) largePhase() Sweep {
	return Sweep{
		Sizes:      slices.Clone(s.LargeSizes),
		BlockSizes: slices.Clone(s.BlockSizes),
		Algorithms: []Algorithm{Block},
	}
}
