// SPDX-License-Identifier: MIT

package matrix

// Test-only bridges to unexported helpers for the external matrix_test package.

// AllocFloatsForTest exposes allocFloats.
func AllocFloatsForTest(n int) ([]float64, error) { return allocFloats(n) }

// MulNoOverflowForTest exposes mulNoOverflow.
func MulNoOverflowForTest(a, b int) (int, bool) { return mulNoOverflow(a, b) }

// GatherOptionsForTest exposes the resolved options.
func GatherOptionsForTest(opts ...Option) Options { return gatherOptions(opts...) }
