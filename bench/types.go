// SPDX-License-Identifier: MIT

// Package bench: domain types shared by the runner and result sinks.
package bench

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/matbench/matrix"
)

// Algorithm selects one multiplication kernel.
//
//   - Standard: i-j-k triple loop (matrix.MulNaive).
//   - Line: i-k-j row-order loop (matrix.MulRowOrder).
//   - Block: tiled i-k-j loop (matrix.MulBlocked), parameterized by block size.
type Algorithm int

const (
	// Standard is the textbook i-j-k kernel.
	Standard Algorithm = iota + 1

	// Line is the row-order i-k-j kernel.
	Line

	// Block is the cache-blocked kernel; each trial carries a block size.
	Block
)

// Label literals as they appear in reports and CSV rows.
const (
	labelStandard    = "Standard"
	labelLine        = "Line"
	labelBlockPrefix = "Block_"
)

// AllAlgorithms is the run-everything order: Standard, Line, then Block.
func AllAlgorithms() []Algorithm { return []Algorithm{Standard, Line, Block} }

// String returns the report label of a for non-blocked kernels and "Block"
// for the blocked kernel.
func (a Algorithm) String() string {
	switch a {
	case Standard:
		return labelStandard
	case Line:
		return labelLine
	case Block:
		return "Block"
	default:
		return "Algorithm(" + strconv.Itoa(int(a)) + ")"
	}
}

// Valid reports whether a is one of the known algorithms.
func (a Algorithm) Valid() bool { return a >= Standard && a <= Block }

// ParseAlgorithm maps a case-insensitive name to an Algorithm.
// Accepted: standard|naive, line|row-order|roworder, block|blocked.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "standard", "naive":
		return Standard, nil
	case "line", "row-order", "roworder":
		return Line, nil
	case "block", "blocked":
		return Block, nil
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
}

// Trial is one (algorithm, size[, block size]) benchmark execution.
type Trial struct {
	Algorithm Algorithm
	Size      int
	BlockSize int // used only when Algorithm == Block
}

// Label returns the report label: Standard, Line or Block_<blockSize>.
func (t Trial) Label() string {
	if t.Algorithm == Block {
		return labelBlockPrefix + strconv.Itoa(t.BlockSize)
	}
	return t.Algorithm.String()
}

// Validate rejects unknown algorithms and non-positive size or block size.
func (t Trial) Validate() error {
	if !t.Algorithm.Valid() {
		return benchErrorf("Trial", fmt.Errorf("%v: %w", t.Algorithm, ErrUnknownAlgorithm))
	}
	if t.Size <= 0 {
		return benchErrorf(t.Label(), fmt.Errorf("size %d: %w", t.Size, matrix.ErrInvalidDimensions))
	}
	if t.Algorithm == Block && t.BlockSize <= 0 {
		return benchErrorf(t.Label(), fmt.Errorf("block size %d: %w", t.BlockSize, matrix.ErrInvalidDimensions))
	}

	return nil
}

// Result is the immutable outcome of one trial.
type Result struct {
	Label     string
	Algorithm Algorithm
	Size      int
	BlockSize int
	Elapsed   time.Duration
}

// Seconds returns the elapsed time in seconds.
func (r Result) Seconds() float64 { return r.Elapsed.Seconds() }

// MFlops returns 2·n³ / (seconds·1e6), or 0 when no time elapsed.
func (r Result) MFlops() float64 {
	s := r.Seconds()
	if s <= 0 {
		return 0
	}
	n := float64(r.Size)

	return 2 * n * n * n / (s * 1e6)
}

// Reporter receives each result exactly once, in trial order.
type Reporter interface {
	Report(Result) error
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(Result) error

// Report calls f(r).
func (f ReporterFunc) Report(r Result) error { return f(r) }

// Confirmer is the driver-supplied yes/no gate before the large-size phase.
// It receives the large sizes about to run and is called at most once per RunAll.
type Confirmer func(largeSizes []int) bool

// Skip records a trial abandoned because its buffers could not be allocated.
type Skip struct {
	Trial Trial
	Err   error
}

// Outcome collects what a sweep produced.
type Outcome struct {
	Results []Result
	Skips   []Skip
}

// Completed returns the number of trials that produced a result.
func (o Outcome) Completed() int { return len(o.Results) }

func (o *Outcome) merge(other Outcome) {
	o.Results = append(o.Results, other.Results...)
	o.Skips = append(o.Skips, other.Skips...)
}
