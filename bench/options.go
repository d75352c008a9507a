// SPDX-License-Identifier: MIT

// Package bench: functional configuration for Runner.
// Constructors panic only on values no caller should pass (nil logger,
// nil kernel); everything else is resolved in gatherOptions.
package bench

import (
	"io"
	"log/slog"
	"runtime/debug"

	"github.com/katalvlaran/matbench/matrix"
)

// ---------- Internal panic messages ----------

const (
	panicNilLogger    = "bench: WithLogger: logger must not be nil"
	panicNilGenerator = "bench: WithGenerator: generator must not be nil"
	panicNilKernel    = "bench: WithKernel: kernel must not be nil"
	panicBadAlgorithm = "bench: WithKernel: unknown algorithm"
)

// GenerateFunc builds fresh operands of order n. matrix.Generate is the default.
type GenerateFunc func(n int, opts ...matrix.Option) (*matrix.Operands, error)

// KernelFunc multiplies square operands into c. blockSize is ignored by
// kernels that do not tile.
type KernelFunc func(a, b, c *matrix.Dense, blockSize int) error

// SkipHook is called once per trial skipped for lack of memory.
type SkipHook func(Skip)

// Option mutates runner options.
type Option func(*Options)

// Options is the resolved runner configuration.
type Options struct {
	logger         *slog.Logger
	memoryLimit    uint64
	memoryLimitSet bool
	generate       GenerateFunc
	kernels        map[Algorithm]KernelFunc
	release        func()
	onState        StateHook
	onSkip         SkipHook
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *Options) { o.logger = l }
}

// WithMemoryLimit caps the bytes one trial may allocate for A, B and C.
// Zero means unlimited. Without this option the runner derives a limit from
// GOMEMLIMIT or the host's available memory (see resolveMemoryLimit).
func WithMemoryLimit(bytes uint64) Option {
	return func(o *Options) {
		o.memoryLimit = bytes
		o.memoryLimitSet = true
	}
}

// WithGenerator replaces operand generation (tests use it to inject delays).
func WithGenerator(g GenerateFunc) Option {
	if g == nil {
		panic(panicNilGenerator)
	}
	return func(o *Options) { o.generate = g }
}

// WithKernel replaces the kernel used for alg.
func WithKernel(alg Algorithm, k KernelFunc) Option {
	if !alg.Valid() {
		panic(panicBadAlgorithm)
	}
	if k == nil {
		panic(panicNilKernel)
	}
	return func(o *Options) { o.kernels[alg] = k }
}

// WithReleaseFunc replaces the end-of-size memory release.
// The default is runtime/debug.FreeOSMemory. nil disables the release step.
func WithReleaseFunc(f func()) Option {
	return func(o *Options) { o.release = f }
}

// WithStateHook observes state transitions.
func WithStateHook(h StateHook) Option {
	return func(o *Options) { o.onState = h }
}

// WithSkipHook is notified about every skipped trial, after it is logged.
func WithSkipHook(h SkipHook) Option {
	return func(o *Options) { o.onSkip = h }
}

// DefaultKernels maps each algorithm to its matrix kernel.
func DefaultKernels() map[Algorithm]KernelFunc {
	return map[Algorithm]KernelFunc{
		Standard: func(a, b, c *matrix.Dense, _ int) error { return matrix.MulNaive(a, b, c) },
		Line:     func(a, b, c *matrix.Dense, _ int) error { return matrix.MulRowOrder(a, b, c) },
		Block:    matrix.MulBlocked,
	}
}

func defaultOptions() Options {
	return Options{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		generate: matrix.Generate,
		kernels:  DefaultKernels(),
		release:  debug.FreeOSMemory,
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
