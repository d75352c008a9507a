// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep all data finite so approximate comparisons stay meaningful.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matbench/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// kernelTol is the absolute tolerance used when kernels disagree only by
// floating-point summation order.
const kernelTol = 1e-9

// kernelFunc adapts every kernel to one signature for table-driven tests.
type kernelFunc func(a, b, c *matrix.Dense) error

// kernels lists the three variants, with MulBlocked pinned to a tile of 7 so
// boundary clipping is exercised for most orders.
var kernels = []struct {
	name string
	fn   kernelFunc
}{
	{"naive", matrix.MulNaive},
	{"row-order", matrix.MulRowOrder},
	{"blocked-7", func(a, b, c *matrix.Dense) error { return matrix.MulBlocked(a, b, c, 7) }},
}

// MustSquare ALLOCATES an n×n zero *Dense or fails the test.
func MustSquare(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewSquare(n)
	require.NoError(t, err, "NewSquare(%d)", n)

	return m
}

// NewFilledDense BUILDS an r×c *Dense from a row-major flat slice.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err, "NewDenseFrom(%d,%d)", r, c)

	return m
}

// RandSquare FILLS an n×n *Dense with deterministic U(-1,1) values by seed.
func RandSquare(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustSquare(t, n)
	data := m.RawData()
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}

	return m
}

// gonumProduct computes A·B with gonum as an independent reference.
func gonumProduct(a, b *matrix.Dense) []float64 {
	n := a.Rows()
	ga := mat.NewDense(n, n, append([]float64(nil), a.RawData()...))
	gb := mat.NewDense(n, n, append([]float64(nil), b.RawData()...))
	var gc mat.Dense
	gc.Mul(ga, gb)

	return gc.RawMatrix().Data
}

// RequireClose asserts element-wise |want-got| <= kernelTol.
func RequireClose(t testing.TB, want, got []float64, msgAndArgs ...any) {
	t.Helper()
	require.Len(t, got, len(want), msgAndArgs...)
	require.True(t, floats.EqualApprox(want, got, kernelTol), msgAndArgs...)
}

// RequireAllEqual asserts every element of got equals v exactly.
func RequireAllEqual(t testing.TB, v float64, got []float64) {
	t.Helper()
	for idx, x := range got {
		if x != v {
			t.Fatalf("element %d = %g, want %g", idx, x, v)
		}
	}
}

// ---------- bench helpers ----------

// sinks to defeat dead-code elimination
var sinkErr error

func mustOperands(b *testing.B, n int) *matrix.Operands {
	b.Helper()
	ops, err := matrix.Generate(n)
	if err != nil {
		b.Fatalf("Generate(%d): %v", n, err)
	}
	return ops
}
