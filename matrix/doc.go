// Package matrix offers the dense square buffers and multiplication kernels
// measured by matbench.
//
// The matrix package provides:
//
//   - Dense, a flat row-major float64 buffer (element (i,j) at i*cols+j) with
//     bounds-checked At/Set and zero-copy RawData for hot loops.
//   - Generate, which builds the three operands of one benchmark trial with a
//     reproducible fill (A all ones, B row k = k+1, C zero) and reports
//     ErrAllocation instead of crashing when a size cannot be served.
//   - MulNaive (i-j-k), MulRowOrder (i-k-j) and MulBlocked (tiled i-k-j) kernels
//     over square operands. Square shape is validated explicitly on every call.
//
// All kernels are single-threaded baselines; their results agree up to
// floating-point summation order.
//
// See the examples in this package and bench for usage patterns.
package matrix
