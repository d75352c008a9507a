// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"runtime/debug"

	"github.com/katalvlaran/matbench/hostinfo"
	"github.com/katalvlaran/matbench/matrix"
)

// Runner executes trials one at a time and forwards every result to its
// Reporter. A Runner is not safe for concurrent use; independent sweeps use
// independent runners.
type Runner struct {
	reporter Reporter
	opts     Options
	log      *slog.Logger
	memLimit uint64
	state    State
}

// NewRunner builds a runner that reports to r.
//
// Implementation:
//   - Stage 1: reject a nil reporter (ErrNilReporter).
//   - Stage 2: resolve options and the per-trial memory limit.
//
// Complexity:
//   - Time O(1).
func NewRunner(r Reporter, opts ...Option) (*Runner, error) {
	if r == nil {
		return nil, benchErrorf("NewRunner", ErrNilReporter)
	}
	o := gatherOptions(opts...)
	limit := o.memoryLimit
	if !o.memoryLimitSet {
		limit = resolveMemoryLimit()
	}

	return &Runner{reporter: r, opts: o, log: o.logger, memLimit: limit, state: StateIdle}, nil
}

// MemoryLimit returns the per-trial byte budget in effect (0 = unlimited).
func (r *Runner) MemoryLimit() uint64 { return r.memLimit }

// State returns the current position in the sweep.
func (r *Runner) State() State { return r.state }

// resolveMemoryLimit prefers GOMEMLIMIT, then the host's available memory.
func resolveMemoryLimit() uint64 {
	if soft := debug.SetMemoryLimit(-1); soft > 0 && soft < math.MaxInt64 {
		return uint64(soft)
	}
	return hostinfo.Probe().AvailableMemory
}

// RunTrial runs a single trial: fresh inputs, one timed kernel call, one
// report, then the size's memory is released. An allocation failure is
// returned (matching matrix.ErrAllocation) and nothing is reported.
func (r *Runner) RunTrial(ctx context.Context, t Trial) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := t.Validate(); err != nil {
		return Result{}, err
	}
	res, err := r.runTrial(ctx, t)
	r.releaseSize(t.Size)
	r.setState(StateIdle, Trial{})

	return res, err
}

// Run executes sweep.Sizes × sweep.Algorithms in order. LargeSizes is ignored
// here; see RunAll.
//
// Implementation:
//   - Stage 1: validate the whole sweep; invalid dimensions fail before any work.
//   - Stage 2: for each size run its trials; an allocation failure becomes a
//     Skip (logged, hooked) and the sweep continues.
//   - Stage 3: after each size, release memory before the next size allocates.
//
// Errors:
//   - Validation errors, context errors between trials, reporter errors and
//     kernel errors abort the sweep; the partial Outcome is returned with them.
func (r *Runner) Run(ctx context.Context, sweep Sweep) (Outcome, error) {
	if err := sweep.Validate(); err != nil {
		return Outcome{}, err
	}

	return r.run(ctx, sweep)
}

// RunAll is the run-everything mode: for every size Standard, Line, then Block
// for each block size. If sweep.LargeSizes is non-empty, confirm is asked
// once; on yes the blocked kernel alone runs over LargeSizes × BlockSizes.
// sweep.Algorithms is ignored. A nil confirm declines the large phase.
func (r *Runner) RunAll(ctx context.Context, sweep Sweep, confirm Confirmer) (Outcome, error) {
	main := sweep.ForAll()
	if err := main.Validate(); err != nil {
		return Outcome{}, err
	}

	r.log.Info("phase start", "phase", "standard", "sizes", main.Sizes, "block_sizes", main.BlockSizes)
	out, err := r.run(ctx, Sweep{Sizes: main.Sizes, BlockSizes: main.BlockSizes, Algorithms: main.Algorithms})
	if err != nil {
		return out, err
	}
	if len(main.LargeSizes) == 0 {
		return out, nil
	}
	if confirm == nil || !confirm(main.LargeSizes) {
		r.log.Info("phase declined", "phase", "large", "sizes", main.LargeSizes)
		return out, nil
	}

	r.log.Info("phase start", "phase", "large", "sizes", main.LargeSizes, "block_sizes", main.BlockSizes)
	large, err := r.run(ctx, main.largePhase())
	out.merge(large)

	return out, err
}

// run assumes sweep has been validated.
func (r *Runner) run(ctx context.Context, sweep Sweep) (Outcome, error) {
	var out Outcome
	defer r.setState(StateIdle, Trial{})

	for _, n := range sweep.Sizes {
		err := r.runSize(ctx, sweep.TrialsFor(n), &out)
		r.releaseSize(n)
		if err != nil {
			return out, err
		}
	}

	return out, nil
}

// runSize runs the trials of one size, turning allocation failures into skips.
func (r *Runner) runSize(ctx context.Context, trials []Trial, out *Outcome) error {
	for _, t := range trials {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := r.runTrial(ctx, t)
		switch {
		case err == nil:
			out.Results = append(out.Results, res)
		case errors.Is(err, matrix.ErrAllocation):
			r.skip(ctx, Skip{Trial: t, Err: err}, out)
		default:
			return err
		}
	}

	return nil
}

// runTrial owns the operands for exactly one trial; they become unreachable
// when it returns.
func (r *Runner) runTrial(ctx context.Context, t Trial) (Result, error) {
	kernel, ok := r.opts.kernels[t.Algorithm]
	if !ok {
		return Result{}, benchErrorf(t.Label(), ErrUnknownAlgorithm)
	}

	r.setState(StatePreparingInputs, t)
	ops, err := r.opts.generate(t.Size, matrix.WithMemoryLimit(r.memLimit))
	if err != nil {
		return Result{}, benchErrorf(fmt.Sprintf("%s/%d", t.Label(), t.Size), err)
	}
	defer ops.Release()

	r.setState(StateInvoking, t)
	var kerr error
	elapsed := Measure(func() { kerr = kernel(ops.A, ops.B, ops.C, t.BlockSize) })
	if kerr != nil {
		return Result{}, benchErrorf(fmt.Sprintf("%s/%d", t.Label(), t.Size), kerr)
	}

	res := Result{
		Label:     t.Label(),
		Algorithm: t.Algorithm,
		Size:      t.Size,
		BlockSize: t.BlockSize,
		Elapsed:   elapsed,
	}
	r.logTrial(ctx, res, ops)

	r.setState(StateReporting, t)
	if err = r.reporter.Report(res); err != nil {
		return res, benchErrorf("Report", err)
	}

	return res, nil
}

func (r *Runner) skip(ctx context.Context, s Skip, out *Outcome) {
	out.Skips = append(out.Skips, s)
	need, _ := matrix.RequiredBytes(s.Trial.Size)
	r.log.WarnContext(ctx, "trial skipped",
		"label", s.Trial.Label(),
		"size", s.Trial.Size,
		"need_bytes", need,
		"limit_bytes", r.memLimit,
		"err", s.Err)
	if r.opts.onSkip != nil {
		r.opts.onSkip(s)
	}
}

// logTrial emits the per-trial debug record. The row preview is read after
// the timed window closed.
func (r *Runner) logTrial(ctx context.Context, res Result, ops *matrix.Operands) {
	if !r.log.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs := []any{
		"label", res.Label,
		"size", res.Size,
		"seconds", res.Seconds(),
		"mflops", res.MFlops(),
	}
	if res.Algorithm == Block {
		attrs = append(attrs, "block_size", res.BlockSize, "tiles", matrix.BlockCount(res.Size, res.BlockSize))
	}
	attrs = append(attrs, "first_row", ops.C.RowPreview(0, matrix.DefaultPreviewLen))
	r.log.DebugContext(ctx, "trial complete", attrs...)
}

func (r *Runner) releaseSize(n int) {
	r.setState(StateReleasing, Trial{Size: n})
	if r.opts.release != nil {
		r.opts.release()
	}
}

func (r *Runner) setState(s State, t Trial) {
	r.state = s
	if r.opts.onState != nil {
		r.opts.onState(s, t)
	}
}
