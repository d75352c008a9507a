// Package matbench measures how loop order and cache blocking change the cost
// of dense square matrix multiplication.
//
// Three kernels multiply the same deterministic operands:
//
//	Standard  i-j-k triple loop; strided walk down B's columns
//	Line      i-k-j row order; unit-stride rows of B and C
//	Block_bs  i-k-j over cubic bs×bs tiles, clipped at the edges
//
// Every trial allocates fresh A (all ones), B (row k = k+1) and zeroed C, times
// exactly one kernel call and reports "<label>,<size>,<seconds>" to the console
// or a CSV log. Sizes that cannot be allocated are skipped and the sweep goes on.
//
// Layout:
//
//	matrix/       Dense storage, operand generation, kernels, validators
//	bench/        Trial, Sweep, Runner, timer and result types
//	sink/         Console, CSV, Recorder, Tee and the summary table
//	config/       YAML configuration
//	hostinfo/     CPU features and memory probe
//	cmd/matbench/ the CLI (run, sweep, all, host)
//
// Quick start:
//
//	go run ./cmd/matbench run --algorithm block --size 2000 --block-size 256
//	go run ./cmd/matbench all --sink csv --output metrics/results.csv
package matbench
