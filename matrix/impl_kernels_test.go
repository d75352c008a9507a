// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/matbench/matrix"
	"github.com/stretchr/testify/require"
)

// TestKernels_TwoByTwo pins the worked example: A=[[1,1],[1,1]], B=[[1,1],[2,2]] → C=[[3,3],[3,3]].
func TestKernels_TwoByTwo(t *testing.T) {
	want := []float64{3, 3, 3, 3}
	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			ops, err := matrix.Generate(2)
			require.NoError(t, err)
			require.Equal(t, []float64{1, 1, 1, 1}, ops.A.RawData())
			require.Equal(t, []float64{1, 1, 2, 2}, ops.B.RawData())

			require.NoError(t, k.fn(ops.A, ops.B, ops.C))
			require.Equal(t, want, ops.C.RawData())
		})
	}
}

// TestKernels_GeneratedOperandsExact checks C[i,j] = n(n+1)/2 exactly for generated inputs.
func TestKernels_GeneratedOperandsExact(t *testing.T) {
	for _, n := range []int{1, 3, 8, 31, 64} {
		for _, k := range kernels {
			t.Run(fmt.Sprintf("%s/n=%d", k.name, n), func(t *testing.T) {
				ops, err := matrix.Generate(n)
				require.NoError(t, err)
				require.NoError(t, k.fn(ops.A, ops.B, ops.C))
				RequireAllEqual(t, matrix.ExpectedCell(n), ops.C.RawData())
			})
		}
	}
}

// TestKernels_AgreeWithReference multiplies random operands with every kernel
// and compares against gonum's product.
func TestKernels_AgreeWithReference(t *testing.T) {
	for _, n := range []int{1, 2, 5, 16, 33, 70} {
		a := RandSquare(t, n, int64(n))
		b := RandSquare(t, n, int64(n)*31+7)
		want := gonumProduct(a, b)

		for _, k := range kernels {
			t.Run(fmt.Sprintf("%s/n=%d", k.name, n), func(t *testing.T) {
				c := MustSquare(t, n)
				require.NoError(t, k.fn(a, b, c))
				RequireClose(t, want, c.RawData())
			})
		}
	}
}

// TestMulBlocked_BlockSizeInvariance compares every tile side (divisors,
// non-divisors and sides larger than n) with blockSize = 1.
func TestMulBlocked_BlockSizeInvariance(t *testing.T) {
	for _, n := range []int{1, 7, 12, 29} {
		a := RandSquare(t, n, 100+int64(n))
		b := RandSquare(t, n, 200+int64(n))

		ref := MustSquare(t, n)
		require.NoError(t, matrix.MulBlocked(a, b, ref, 1))

		for bs := 1; bs <= n+3; bs++ {
			c := MustSquare(t, n)
			require.NoError(t, matrix.MulBlocked(a, b, c, bs), "n=%d bs=%d", n, bs)
			RequireClose(t, ref.RawData(), c.RawData(), "n=%d bs=%d", n, bs)
		}
		huge := MustSquare(t, n)
		require.NoError(t, matrix.MulBlocked(a, b, huge, 1<<20))
		RequireClose(t, ref.RawData(), huge.RawData(), "n=%d bs=huge", n)
	}
}

// TestMulBlocked_StaysInBounds runs clipped tiles across many (n, bs) pairs.
// Any index past a buffer would panic on the slice bounds check; inputs must
// come back unmodified.
func TestMulBlocked_StaysInBounds(t *testing.T) {
	for n := 1; n <= 13; n++ {
		for _, bs := range []int{1, 2, 3, 4, 5, 8, 13, 14, 64} {
			ops, err := matrix.Generate(n)
			require.NoError(t, err)
			require.NotPanics(t, func() {
				require.NoError(t, matrix.MulBlocked(ops.A, ops.B, ops.C, bs))
			}, "n=%d bs=%d", n, bs)
			RequireAllEqual(t, matrix.ExpectedCell(n), ops.C.RawData())
			RequireAllEqual(t, 1.0, ops.A.RawData())
		}
	}
}

// TestAccumulatingKernels_AddIntoC documents the += contract of MulRowOrder and
// MulBlocked versus the overwrite contract of MulNaive.
func TestAccumulatingKernels_AddIntoC(t *testing.T) {
	const n = 4
	exp := matrix.ExpectedCell(n)

	ops, err := matrix.Generate(n)
	require.NoError(t, err)
	require.NoError(t, matrix.MulRowOrder(ops.A, ops.B, ops.C))
	require.NoError(t, matrix.MulRowOrder(ops.A, ops.B, ops.C))
	RequireAllEqual(t, 2*exp, ops.C.RawData())

	require.NoError(t, matrix.MulBlocked(ops.A, ops.B, ops.C, 3))
	RequireAllEqual(t, 3*exp, ops.C.RawData())

	require.NoError(t, matrix.MulNaive(ops.A, ops.B, ops.C))
	RequireAllEqual(t, exp, ops.C.RawData())

	ops.C.Zero()
	require.NoError(t, matrix.MulBlocked(ops.A, ops.B, ops.C, 3))
	RequireAllEqual(t, exp, ops.C.RawData())
}

// TestKernels_Validation covers the error priority nil → non-square → mismatch.
func TestKernels_Validation(t *testing.T) {
	sq3 := MustSquare(t, 3)
	sq4 := MustSquare(t, 4)
	rect, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	for _, k := range kernels {
		t.Run(k.name, func(t *testing.T) {
			require.ErrorIs(t, k.fn(nil, sq3, sq3), matrix.ErrNilMatrix)
			require.ErrorIs(t, k.fn(sq3, sq3, nil), matrix.ErrNilMatrix)
			require.ErrorIs(t, k.fn(rect, sq3, sq3), matrix.ErrNonSquare)
			require.ErrorIs(t, k.fn(sq3, sq3, rect), matrix.ErrNonSquare)
			require.ErrorIs(t, k.fn(sq3, sq4, sq3), matrix.ErrDimensionMismatch)
			require.ErrorIs(t, k.fn(sq3, sq3, sq4), matrix.ErrDimensionMismatch)
		})
	}
}

// TestMulBlocked_InvalidBlockSize rejects non-positive tile sides.
func TestMulBlocked_InvalidBlockSize(t *testing.T) {
	ops, err := matrix.Generate(3)
	require.NoError(t, err)
	for _, bs := range []int{0, -1} {
		err := matrix.MulBlocked(ops.A, ops.B, ops.C, bs)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
	RequireAllEqual(t, 0, ops.C.RawData())
}

// TestBlockCount checks ⌈m/bs⌉³ including clipped and degenerate tiles.
func TestBlockCount(t *testing.T) {
	cases := []struct{ m, bs, want int }{
		{600, 128, 125},
		{10240, 512, 8000},
		{10, 4, 27},
		{5, 10, 1},
		{0, 4, 0},
		{4, 0, 0},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, matrix.BlockCount(tc.m, tc.bs), "m=%d bs=%d", tc.m, tc.bs)
	}
}
