// SPDX-License-Identifier: MIT

package sink

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/matbench/bench"
)

// Header is the first line of every CSV log.
var Header = []string{"algorithm", "size", "time"}

// CSVOption configures OpenCSV.
type CSVOption func(*csvOptions)

type csvOptions struct {
	reinit bool
}

// WithReinit truncates an existing log and rewrites the header on open.
func WithReinit() CSVOption {
	return func(o *csvOptions) { o.reinit = true }
}

// CSV appends one row per result to a file. Rows are flushed per Report, so a
// crash mid-sweep keeps every finished trial.
type CSV struct {
	path string
	f    *os.File
	w    *csv.Writer
}

var _ bench.Reporter = (*CSV)(nil)

// OpenCSV opens (or creates) the log at path for appending.
//
// Implementation:
//   - Stage 1: create the parent directory if missing.
//   - Stage 2: open append-only; with WithReinit truncate first.
//   - Stage 3: if the file is empty, write the header.
//
// Errors:
//   - ErrEmptyPath; filesystem errors wrapped with "OpenCSV".
func OpenCSV(path string, opts ...CSVOption) (*CSV, error) {
	const tag = "OpenCSV"
	if path == "" {
		return nil, sinkErrorf(tag, ErrEmptyPath)
	}
	var o csvOptions
	for _, opt := range opts {
		opt(&o)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, sinkErrorf(tag, err)
		}
	}
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if o.reinit {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, sinkErrorf(tag, err)
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, sinkErrorf(tag, err)
	}

	s := &CSV{path: path, f: f, w: csv.NewWriter(f)}
	if st.Size() == 0 {
		if err = s.write(Header); err != nil {
			_ = f.Close()
			return nil, sinkErrorf(tag, err)
		}
	}

	return s, nil
}

// Path returns the file the sink appends to.
func (s *CSV) Path() string { return s.path }

// Report appends "<label>,<size>,<seconds>".
func (s *CSV) Report(r bench.Result) error {
	if s.f == nil {
		return sinkErrorf("CSV.Report", ErrClosed)
	}
	row := []string{r.Label, strconv.Itoa(r.Size), FormatSeconds(r.Seconds())}
	if err := s.write(row); err != nil {
		return sinkErrorf("CSV.Report", err)
	}
	return nil
}

// Close flushes and closes the file. Safe to call more than once.
func (s *CSV) Close() error {
	if s.f == nil {
		return nil
	}
	s.w.Flush()
	werr := s.w.Error()
	cerr := s.f.Close()
	s.f = nil
	if werr != nil {
		return sinkErrorf("CSV.Close", werr)
	}
	if cerr != nil {
		return sinkErrorf("CSV.Close", cerr)
	}
	return nil
}

func (s *CSV) write(rec []string) error {
	if err := s.w.Write(rec); err != nil {
		return err
	}
	s.w.Flush()
	return s.w.Error()
}
