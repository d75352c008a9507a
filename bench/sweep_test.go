package bench_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matbench/bench"
	"github.com/katalvlaran/matbench/matrix"
)

// TestDefaultSweep pins the default size, large-size and block-size lists.
func TestDefaultSweep(t *testing.T) {
	s := bench.DefaultSweep()
	assert.Equal(t, []int{600, 1000, 1400, 1800, 2200, 2600, 3000}, s.Sizes)
	assert.Equal(t, []int{4096, 6144, 8192, 10240}, s.LargeSizes)
	assert.Equal(t, []int{128, 256, 512}, s.BlockSizes)
	assert.Equal(t, []bench.Algorithm{bench.Standard, bench.Line, bench.Block}, s.Algorithms)
	require.NoError(t, s.Validate())
	assert.Len(t, s.Trials(), 7*5)
}

func TestFixedSweep(t *testing.T) {
	s := bench.FixedSweep(bench.Block, 1000, 128)
	require.NoError(t, s.Validate())
	require.Equal(t, []bench.Trial{{Algorithm: bench.Block, Size: 1000, BlockSize: 128}}, s.Trials())

	s = bench.FixedSweep(bench.Line, 500, 64)
	require.NoError(t, s.Validate())
	assert.Empty(t, s.BlockSizes, "block size is dropped for non-blocked kernels")
	require.Equal(t, []bench.Trial{{Algorithm: bench.Line, Size: 500}}, s.Trials())
}

// TestSweep_TrialsOrder expands Block over every block size in place.
func TestSweep_TrialsOrder(t *testing.T) {
	s := bench.Sweep{
		Sizes:      []int{10, 20},
		BlockSizes: []int{4, 8},
		Algorithms: []bench.Algorithm{bench.Block, bench.Standard},
	}
	want := []bench.Trial{
		{Algorithm: bench.Block, Size: 10, BlockSize: 4},
		{Algorithm: bench.Block, Size: 10, BlockSize: 8},
		{Algorithm: bench.Standard, Size: 10},
		{Algorithm: bench.Block, Size: 20, BlockSize: 4},
		{Algorithm: bench.Block, Size: 20, BlockSize: 8},
		{Algorithm: bench.Standard, Size: 20},
	}
	require.Equal(t, want, s.Trials())
	require.Equal(t, want[:3], s.TrialsFor(10))
}

func TestSweep_Validate(t *testing.T) {
	cases := []struct {
		name  string
		sweep bench.Sweep
		want  error
	}{
		{"no sizes", bench.Sweep{Algorithms: []bench.Algorithm{bench.Line}}, bench.ErrEmptySweep},
		{"no algorithms", bench.Sweep{Sizes: []int{4}}, bench.ErrEmptySweep},
		{"unknown algorithm", bench.Sweep{Sizes: []int{4}, Algorithms: []bench.Algorithm{7}}, bench.ErrUnknownAlgorithm},
		{"zero size", bench.Sweep{Sizes: []int{4, 0}, Algorithms: []bench.Algorithm{bench.Line}}, matrix.ErrInvalidDimensions},
		{"negative large size", bench.Sweep{Sizes: []int{4}, LargeSizes: []int{-8}, BlockSizes: []int{2}, Algorithms: []bench.Algorithm{bench.Line}}, matrix.ErrInvalidDimensions},
		{"zero block size", bench.Sweep{Sizes: []int{4}, BlockSizes: []int{0}, Algorithms: []bench.Algorithm{bench.Block}}, matrix.ErrInvalidDimensions},
		{"block without sizes", bench.Sweep{Sizes: []int{4}, Algorithms: []bench.Algorithm{bench.Block}}, matrix.ErrInvalidDimensions},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.sweep.Validate(), tc.want)
		})
	}

	ok := bench.Sweep{Sizes: []int{4}, Algorithms: []bench.Algorithm{bench.Standard, bench.Line}}
	require.NoError(t, ok.Validate())
}

// TestSweep_ForAll needs block sizes for large sizes only in run-everything mode.
func TestSweep_ForAll(t *testing.T) {
	s := bench.Sweep{Sizes: []int{4}, LargeSizes: []int{8}, Algorithms: []bench.Algorithm{bench.Line}}
	require.NoError(t, s.Validate(), "Run ignores LargeSizes")

	all := s.ForAll()
	assert.Equal(t, bench.AllAlgorithms(), all.Algorithms)
	assert.Equal(t, []bench.Algorithm{bench.Line}, s.Algorithms, "receiver untouched")
	require.ErrorIs(t, all.Validate(), matrix.ErrInvalidDimensions)

	s.BlockSizes = []int{2}
	require.NoError(t, s.ForAll().Validate())
}

// TestSweep_Clone does not alias the source slices.
func TestSweep_Clone(t *testing.T) {
	src := bench.DefaultSweep()
	cp := src.Clone()
	cp.Sizes[0] = 1
	cp.BlockSizes[0] = 1
	cp.LargeSizes[0] = 1
	cp.Algorithms[0] = bench.Block

	assert.Equal(t, bench.DefaultSweep(), src)
}
