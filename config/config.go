// SPDX-License-Identifier: MIT

// Package config loads benchmark settings from YAML and turns them into a
// bench.Sweep plus sink and logging choices for the CLI.
//
// Example file:
//
//	sizes: [600, 1000, 1400]
//	large_sizes: [4096]
//	block_sizes: [128, 256]
//	algorithms: [standard, line, block]
//	sink:
//	  mode: csv
//	  path: metrics/results.csv
//	  reinit: false
//	memory_limit_mb: 8192
//	log_level: info
//
// Omitted keys keep their Default values; unknown keys are rejected.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matbench/bench"
	"github.com/katalvlaran/matbench/sink"
)

// DefaultCSVPath is where CSV results go when no path is configured.
const DefaultCSVPath = "metrics/results.csv"

// File is the on-disk configuration.
type File struct {
	Sizes      []int    `yaml:"sizes"`
	LargeSizes []int    `yaml:"large_sizes"`
	BlockSizes []int    `yaml:"block_sizes"`
	Algorithms []string `yaml:"algorithms"`
	Sink       Sink     `yaml:"sink"`

	// MemoryLimitMB caps one trial's buffers in MiB. nil derives the limit
	// from GOMEMLIMIT or the host; 0 disables it.
	MemoryLimitMB *uint64 `yaml:"memory_limit_mb"`

	LogLevel string `yaml:"log_level"`
}

// Sink selects where results are written.
type Sink struct {
	Mode   string `yaml:"mode"`
	Path   string `yaml:"path"`
	Reinit bool   `yaml:"reinit"`
}

// Default returns the built-in sweep with a console sink at info level.
func Default() *File {
	d := bench.DefaultSweep()
	return &File{
		Sizes:      d.Sizes,
		LargeSizes: d.LargeSizes,
		BlockSizes: d.BlockSizes,
		Algorithms: []string{"standard", "line", "block"},
		Sink:       Sink{Mode: string(sink.ModeConsole), Path: DefaultCSVPath},
		LogLevel:   "info",
	}
}

// Load reads path on top of Default. An empty path returns Default.
func Load(path string) (*File, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, configErrorf("Load", err)
	}
	f, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, configErrorf(path, err)
	}

	return f, nil
}

// Parse decodes YAML from r on top of Default and validates the result.
// An empty document yields Default.
func Parse(r io.Reader) (*File, error) {
	f := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, configErrorf("Parse", fmt.Errorf("%w: %v", ErrInvalidConfig, err))
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// Validate checks every field without running anything.
func (f *File) Validate() error {
	const tag = "Validate"
	if _, err := f.Sweep(); err != nil {
		return configErrorf(tag, err)
	}
	if _, err := sink.ParseMode(f.Sink.Mode); err != nil {
		return configErrorf(tag, err)
	}
	if f.Sink.Mode == string(sink.ModeCSV) && f.Sink.Path == "" {
		return configErrorf(tag, fmt.Errorf("sink.path: %w", ErrInvalidConfig))
	}
	if _, err := ParseLevel(f.LogLevel); err != nil {
		return configErrorf(tag, err)
	}

	return nil
}

// Sweep converts the size, block-size and algorithm lists into a validated
// bench.Sweep.
func (f *File) Sweep() (bench.Sweep, error) {
	algs := make([]bench.Algorithm, 0, len(f.Algorithms))
	for _, name := range f.Algorithms {
		a, err := bench.ParseAlgorithm(name)
		if err != nil {
			return bench.Sweep{}, err
		}
		algs = append(algs, a)
	}
	s := bench.Sweep{
		Sizes:      f.Sizes,
		LargeSizes: f.LargeSizes,
		BlockSizes: f.BlockSizes,
		Algorithms: algs,
	}.Clone()
	if err := s.Validate(); err != nil {
		return bench.Sweep{}, err
	}

	return s, nil
}

// MemoryLimit returns the per-trial byte cap and whether one was configured.
func (f *File) MemoryLimit() (limit uint64, ok bool) {
	if f.MemoryLimitMB == nil {
		return 0, false
	}
	return *f.MemoryLimitMB << 20, true
}

// ParseLevel maps debug|info|warn|error (any case) to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownLogLevel)
}
