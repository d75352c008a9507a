// SPDX-License-Identifier: MIT

package sink

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/matbench/bench"
	"github.com/samber/lo"
)

// WriteSummary prints results as an aligned table: label, size, seconds,
// MFLOPS and the speedup over the Standard result of the same size ("-" when
// that size has no Standard result or it took no time). Rows keep input order.
func WriteSummary(w io.Writer, results []bench.Result) error {
	baseline := lo.MapValues(
		lo.GroupBy(lo.Filter(results, func(r bench.Result, _ int) bool { return r.Algorithm == bench.Standard }),
			func(r bench.Result) int { return r.Size }),
		func(rs []bench.Result, _ int) float64 { return rs[0].Seconds() },
	)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tSIZE\tSECONDS\tMFLOPS\tSPEEDUP")
	for _, r := range results {
		speedup := "-"
		if base, ok := baseline[r.Size]; ok && r.Seconds() > 0 {
			speedup = fmt.Sprintf("%.2fx", base/r.Seconds())
		}
		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.1f\t%s\n", r.Label, r.Size, r.Seconds(), r.MFlops(), speedup)
	}

	if err := tw.Flush(); err != nil {
		return sinkErrorf("WriteSummary", err)
	}
	return nil
}
