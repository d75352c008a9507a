// Package bench drives square matrix-multiplication benchmarks.
//
// A Runner walks a Sweep one trial at a time. Every trial gets freshly
// generated operands (matrix.Generate), one timed kernel call and exactly one
// Report to the configured Reporter; only the kernel call is inside the timed
// window. After the last trial of a size the runner releases memory before the
// next size allocates.
//
// Trials whose buffers cannot be allocated are skipped, logged at Warn level
// and handed to an optional SkipHook; the sweep goes on with the next trial.
// Invalid dimensions, reporter failures and context cancellation stop it.
//
// Modes:
//
//	Runner.RunTrial(ctx, Trial{Algorithm: Block, Size: 1000, BlockSize: 128})
//	Runner.Run(ctx, DefaultSweep())              // Sizes × Algorithms
//	Runner.RunAll(ctx, DefaultSweep(), confirm)  // all kernels, then large sizes on yes
//
// Trials never run concurrently. A Runner is single-goroutine state.
package bench
