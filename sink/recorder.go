// SPDX-License-Identifier: MIT

package sink

import (
	"slices"

	"github.com/katalvlaran/matbench/bench"
)

// Recorder keeps every reported result in order.
type Recorder struct {
	results []bench.Result
}

var _ bench.Reporter = (*Recorder)(nil)

// Report appends r. It never fails.
func (rec *Recorder) Report(r bench.Result) error {
	rec.results = append(rec.results, r)
	return nil
}

// Results returns a copy of the recorded results.
func (rec *Recorder) Results() []bench.Result { return slices.Clone(rec.results) }

// Len returns the number of recorded results.
func (rec *Recorder) Len() int { return len(rec.results) }

// Reset forgets all results.
func (rec *Recorder) Reset() { rec.results = nil }

// tee reports to each sink in order and stops at the first error.
type tee []bench.Reporter

// Tee fans every result out to reporters, in argument order.
// nil reporters are dropped.
func Tee(reporters ...bench.Reporter) bench.Reporter {
	out := make(tee, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

func (t tee) Report(r bench.Result) error {
	for _, rep := range t {
		if err := rep.Report(r); err != nil {
			return err
		}
	}
	return nil
}
