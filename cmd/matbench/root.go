package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matbench/bench"
	"github.com/katalvlaran/matbench/config"
	"github.com/katalvlaran/matbench/hostinfo"
	"github.com/katalvlaran/matbench/sink"
)

// app carries the streams, global flags and the resolved configuration
// shared by every subcommand.
type app struct {
	stdin          io.Reader
	stdout, stderr io.Writer

	cfgPath     string
	sinkMode    *choiceValue
	output      string
	reinit      bool
	logLevel    *choiceValue
	memLimitMB  int64
	showSummary bool

	cfg *config.File
	log *slog.Logger
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
		sinkMode: newChoice(string(sink.ModeConsole), string(sink.ModeConsole), string(sink.ModeCSV)),
		logLevel: newChoice("info", "debug", "info", "warn", "error"),
	}

	root := &cobra.Command{
		Use:           "matbench",
		Short:         "Benchmark dense square matrix multiplication kernels",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	pf.Var(a.sinkMode, "sink", "result destination")
	pf.StringVar(&a.output, "output", "", "CSV file for --sink csv (default "+config.DefaultCSVPath+")")
	pf.BoolVar(&a.reinit, "reinit", false, "truncate the CSV log and rewrite its header before running")
	pf.Var(a.logLevel, "log-level", "stderr log level")
	pf.Int64Var(&a.memLimitMB, "memory-limit-mb", -1, "per-trial buffer cap in MiB (0 = unlimited, -1 = GOMEMLIMIT or available memory)")
	pf.BoolVar(&a.showSummary, "summary", true, "print a summary table after sweep and all")

	root.AddCommand(
		newRunCmd(a),
		newSweepCmd(a),
		newAllCmd(a),
		newHostCmd(a),
	)

	return root
}

// setup loads the config file, applies flag overrides and builds the logger.
// Flags win over file values only when given explicitly.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("sink") {
		cfg.Sink.Mode = a.sinkMode.String()
	}
	if flags.Changed("output") {
		cfg.Sink.Path = a.output
	}
	if flags.Changed("reinit") {
		cfg.Sink.Reinit = a.reinit
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel.String()
	}
	if flags.Changed("memory-limit-mb") && a.memLimitMB >= 0 {
		mb := uint64(a.memLimitMB)
		cfg.MemoryLimitMB = &mb
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	if cmd.Name() != "host" {
		h := hostinfo.Probe()
		a.log.Info("host", "os", h.OS, "arch", h.Arch, "cpus", h.NumCPU,
			"features", h.Features, "available_memory", hostinfo.FormatBytes(h.AvailableMemory))
	}

	return nil
}

// session is one command's reporter chain and runner.
type session struct {
	runner   *bench.Runner
	recorder *sink.Recorder
	csv      *sink.CSV
}

// openSession builds the configured sink, a recorder for the summary and a
// runner that logs through a.log.
func (a *app) openSession() (*session, error) {
	s := &session{recorder: &sink.Recorder{}}

	var primary bench.Reporter
	switch sink.Mode(a.cfg.Sink.Mode) {
	case sink.ModeCSV:
		var opts []sink.CSVOption
		if a.cfg.Sink.Reinit {
			opts = append(opts, sink.WithReinit())
		}
		c, err := sink.OpenCSV(a.cfg.Sink.Path, opts...)
		if err != nil {
			return nil, err
		}
		s.csv, primary = c, c
		a.log.Info("csv sink", "path", c.Path(), "reinit", a.cfg.Sink.Reinit)
	default:
		primary = sink.NewConsole(a.stdout)
	}

	opts := []bench.Option{
		bench.WithLogger(a.log),
		bench.WithSkipHook(func(sk bench.Skip) {
			fmt.Fprintf(a.stderr, "%s - %d - skipped: not enough memory\n", sk.Trial.Label(), sk.Trial.Size)
		}),
	}
	if limit, ok := a.cfg.MemoryLimit(); ok {
		opts = append(opts, bench.WithMemoryLimit(limit))
	}
	r, err := bench.NewRunner(sink.Tee(primary, s.recorder), opts...)
	if err != nil {
		_ = s.close()
		return nil, err
	}
	s.runner = r

	return s, nil
}

func (s *session) close() error {
	if s.csv == nil {
		return nil
	}
	return s.csv.Close()
}

// finish closes the sink, logs skips and, when summary is set and enabled,
// prints the summary table.
func (a *app) finish(s *session, out bench.Outcome, runErr error, summary bool) error {
	closeErr := s.close()
	if len(out.Skips) > 0 {
		a.log.Warn("trials skipped", "count", len(out.Skips))
	}
	if summary && a.showSummary && s.recorder.Len() > 0 {
		fmt.Fprintln(a.stdout)
		if err := sink.WriteSummary(a.stdout, s.recorder.Results()); err != nil && runErr == nil {
			runErr = err
		}
	}
	if runErr == nil {
		runErr = closeErr
	}

	return runErr
}
