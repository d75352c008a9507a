package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matbench/bench"
	"github.com/katalvlaran/matbench/hostinfo"
	"github.com/katalvlaran/matbench/matrix"
)

var errBlockSizeRequired = errors.New("--block-size is required for the blocked algorithm")

// newRunCmd is fixed-size mode: one algorithm, one size.
func newRunCmd(a *app) *cobra.Command {
	var (
		algName   string
		size      int
		blockSize int
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Time one algorithm at one matrix size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			alg, err := bench.ParseAlgorithm(algName)
			if err != nil {
				return err
			}
			if alg == bench.Block && !cmd.Flags().Changed("block-size") {
				return errBlockSizeRequired
			}
			sweep := bench.FixedSweep(alg, size, blockSize)
			if err = sweep.Validate(); err != nil {
				return err
			}

			s, err := a.openSession()
			if err != nil {
				return err
			}
			out, err := s.runner.Run(cmd.Context(), sweep)
			return a.finish(s, out, err, false)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&algName, "algorithm", "a", "standard", "standard|line|block")
	f.IntVarP(&size, "size", "n", 0, "matrix order")
	f.IntVarP(&blockSize, "block-size", "b", 0, "tile side for the blocked algorithm")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}

// sweepFlags are the list overrides shared by sweep and all.
type sweepFlags struct {
	sizes      []int
	largeSizes []int
	blockSizes []int
	algorithms []string
}

// apply overlays explicitly given list flags on the configured sweep.
func (sf *sweepFlags) apply(cmd *cobra.Command, base bench.Sweep) (bench.Sweep, error) {
	s := base.Clone()
	f := cmd.Flags()
	if f.Changed("sizes") {
		s.Sizes = sf.sizes
	}
	if f.Changed("large-sizes") {
		s.LargeSizes = sf.largeSizes
	}
	if f.Changed("block-sizes") {
		s.BlockSizes = sf.blockSizes
	}
	if f.Changed("algorithms") {
		algs := make([]bench.Algorithm, 0, len(sf.algorithms))
		for _, name := range sf.algorithms {
			alg, err := bench.ParseAlgorithm(name)
			if err != nil {
				return bench.Sweep{}, err
			}
			algs = append(algs, alg)
		}
		s.Algorithms = algs
	}

	return s, nil
}

func (sf *sweepFlags) register(cmd *cobra.Command, withAlgorithms, withLarge bool) {
	f := cmd.Flags()
	f.IntSliceVar(&sf.sizes, "sizes", nil, "matrix orders, in run order")
	f.IntSliceVar(&sf.blockSizes, "block-sizes", nil, "tile sides for the blocked algorithm")
	if withAlgorithms {
		f.StringSliceVar(&sf.algorithms, "algorithms", nil, "kernels per size: standard,line,block")
	}
	if withLarge {
		f.IntSliceVar(&sf.largeSizes, "large-sizes", nil, "orders for the blocked-only large phase")
	}
}

func newSweepCmd(a *app) *cobra.Command {
	var sf sweepFlags
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run the selected algorithms over every configured size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			base, err := a.cfg.Sweep()
			if err != nil {
				return err
			}
			sweep, err := sf.apply(cmd, base)
			if err != nil {
				return err
			}
			if err = sweep.Validate(); err != nil {
				return err
			}

			s, err := a.openSession()
			if err != nil {
				return err
			}
			out, err := s.runner.Run(cmd.Context(), sweep)
			return a.finish(s, out, err, true)
		},
	}
	sf.register(cmd, true, false)

	return cmd
}

func newAllCmd(a *app) *cobra.Command {
	var sf sweepFlags
	large := newChoice(largeAsk, largeAsk, largeYes, largeNo)
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run every algorithm over every size, then optionally the large sizes",
		Long: "Runs Standard, Line and Block (for each block size) at every size. " +
			"If large sizes are configured, --large decides whether the blocked " +
			"kernel then runs on them; the default asks on stdin.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			base, err := a.cfg.Sweep()
			if err != nil {
				return err
			}
			sweep, err := sf.apply(cmd, base)
			if err != nil {
				return err
			}
			if err = sweep.ForAll().Validate(); err != nil {
				return err
			}

			s, err := a.openSession()
			if err != nil {
				return err
			}
			confirm := largeConfirmer(large.String(), a.stdin, a.stdout)
			out, err := s.runner.RunAll(cmd.Context(), sweep, confirm)
			return a.finish(s, out, err, true)
		},
	}
	sf.register(cmd, false, true)
	cmd.Flags().Var(large, "large", "run the large-size phase")

	return cmd
}

func newHostCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "host",
		Short: "Print CPU, memory and the per-trial memory budget",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			h := hostinfo.Probe()
			fmt.Fprintln(a.stdout, h.String())

			budget := h.AvailableMemory
			if limit, ok := a.cfg.MemoryLimit(); ok {
				budget = limit
			}
			if budget == 0 {
				fmt.Fprintln(a.stdout, "trial budget: unlimited")
				return nil
			}
			fmt.Fprintf(a.stdout, "trial budget: %s (largest order %d)\n",
				hostinfo.FormatBytes(budget), largestOrder(budget))

			return nil
		},
	}
}

// largestOrder is the biggest n whose three n×n float64 buffers fit in budget.
func largestOrder(budget uint64) int {
	lo, hi := 0, 1<<20
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if need, ok := matrix.RequiredBytes(mid); ok && need <= budget {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	return lo
}
