// SPDX-License-Identifier: MIT

package sink

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/matbench/bench"
)

// Mode selects the sink a driver builds.
type Mode string

const (
	// ModeConsole prints formatted lines.
	ModeConsole Mode = "console"

	// ModeCSV appends CSV rows to a file.
	ModeCSV Mode = "csv"
)

// ParseMode accepts "console" or "csv".
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeConsole, ModeCSV:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownMode)
}

// FormatSeconds renders elapsed seconds as a plain decimal (never exponent
// notation) with the shortest exact representation.
func FormatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}

// Console writes one human-readable line per result.
type Console struct {
	w io.Writer
}

var _ bench.Reporter = (*Console)(nil)

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console { return &Console{w: w} }

// Report writes "<label> - <size> - <seconds>(s)".
func (c *Console) Report(r bench.Result) error {
	_, err := fmt.Fprintf(c.w, "%s - %d - %s(s)\n", r.Label, r.Size, FormatSeconds(r.Seconds()))
	if err != nil {
		return sinkErrorf("Console.Report", err)
	}
	return nil
}
