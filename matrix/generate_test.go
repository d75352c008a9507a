// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matbench/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate_FillContract checks A all ones, B row k = k+1 and C zero.
func TestGenerate_FillContract(t *testing.T) {
	for _, n := range []int{1, 2, 5, 17} {
		ops, err := matrix.Generate(n)
		require.NoError(t, err)
		require.Equal(t, n, ops.Order())

		RequireAllEqual(t, 1.0, ops.A.RawData())
		RequireAllEqual(t, 0.0, ops.C.RawData())
		for k := 0; k < n; k++ {
			for j := 0; j < n; j++ {
				v, err := ops.B.At(k, j)
				require.NoError(t, err)
				require.Equal(t, float64(k+1), v, "B[%d,%d]", k, j)
			}
		}
	}
}

// TestGenerate_NoAliasing ensures two calls and the three buffers never share storage.
func TestGenerate_NoAliasing(t *testing.T) {
	first, err := matrix.Generate(4)
	require.NoError(t, err)
	second, err := matrix.Generate(4)
	require.NoError(t, err)

	first.A.RawData()[0] = 42
	first.C.RawData()[0] = 7
	assert.Equal(t, 1.0, second.A.RawData()[0])
	assert.Equal(t, 0.0, second.C.RawData()[0])
	assert.Equal(t, 1.0, first.B.RawData()[0])
	assert.NotSame(t, &first.A.RawData()[0], &first.B.RawData()[0])
}

// TestGenerate_InvalidOrder rejects non-positive orders before allocating.
func TestGenerate_InvalidOrder(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := matrix.Generate(n)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		require.NotErrorIs(t, err, matrix.ErrAllocation)
	}
}

// TestGenerate_MemoryLimit fails with ErrAllocation when A+B+C exceed the limit.
func TestGenerate_MemoryLimit(t *testing.T) {
	need, ok := matrix.RequiredBytes(64)
	require.True(t, ok)
	require.Equal(t, uint64(3*64*64*8), need)

	_, err := matrix.Generate(64, matrix.WithMemoryLimit(need-1))
	require.ErrorIs(t, err, matrix.ErrAllocation)

	ops, err := matrix.Generate(64, matrix.WithMemoryLimit(need))
	require.NoError(t, err)
	require.Equal(t, 64, ops.Order())
}

// TestGenerate_OverflowingOrder fails cleanly for an order whose n² overflows.
func TestGenerate_OverflowingOrder(t *testing.T) {
	_, err := matrix.Generate(math.MaxInt32 * 4)
	require.ErrorIs(t, err, matrix.ErrAllocation)

	_, ok := matrix.RequiredBytes(math.MaxInt32 * 4)
	require.False(t, ok)
}

// TestOperandsRelease drops every reference and is idempotent.
func TestOperandsRelease(t *testing.T) {
	ops, err := matrix.Generate(3)
	require.NoError(t, err)

	ops.Release()
	ops.Release()
	require.Nil(t, ops.A)
	require.Nil(t, ops.B)
	require.Nil(t, ops.C)
	require.Equal(t, 0, ops.Order())

	var nilOps *matrix.Operands
	nilOps.Release()
}

// TestAllocFloats covers the guarded allocator directly.
func TestAllocFloats(t *testing.T) {
	buf, err := matrix.AllocFloatsForTest(8)
	require.NoError(t, err)
	require.Len(t, buf, 8)

	_, err = matrix.AllocFloatsForTest(-1)
	require.ErrorIs(t, err, matrix.ErrAllocation)

	_, err = matrix.AllocFloatsForTest(math.MaxInt)
	require.ErrorIs(t, err, matrix.ErrAllocation)
}

// TestMulNoOverflow checks the overflow-aware product.
func TestMulNoOverflow(t *testing.T) {
	p, ok := matrix.MulNoOverflowForTest(1<<20, 1<<20)
	require.True(t, ok)
	require.Equal(t, 1<<40, p)

	_, ok = matrix.MulNoOverflowForTest(math.MaxInt, 2)
	require.False(t, ok)
}

// TestOptionsDefaults verifies documented defaults and nil-option tolerance.
func TestOptionsDefaults(t *testing.T) {
	o := matrix.GatherOptionsForTest()
	require.Equal(t, matrix.DefaultMemoryLimit, o.MemoryLimit())

	o = matrix.GatherOptionsForTest(nil, matrix.WithMemoryLimit(1024))
	require.Equal(t, uint64(1024), o.MemoryLimit())
}
