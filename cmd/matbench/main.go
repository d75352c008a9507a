// Command matbench times dense square matrix multiplication kernels.
//
// Usage:
//
//	matbench run --algorithm block --size 2000 --block-size 256
//	matbench sweep --sizes 600,1000 --algorithms standard,line
//	matbench all --large yes --sink csv --output metrics/results.csv
//	matbench host
//
// Results go to stdout ("<label> - <size> - <seconds>(s)") or are appended
// to a CSV log. Logs go to stderr; --log-level debug adds per-trial MFLOPS,
// tile counts and a preview of the product's first row.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "matbench:", err)
		stop()
		os.Exit(1)
	}
}
