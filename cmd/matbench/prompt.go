package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/matbench/bench"
)

// promptConfirmer asks once on out and reads a y/n answer from in.
// Anything but y or yes, including EOF, declines.
func promptConfirmer(in io.Reader, out io.Writer) bench.Confirmer {
	return func(sizes []int) bool {
		fmt.Fprintf(out, "Run the blocked kernel on large sizes %v? This may take a long time [y/N]: ", sizes)
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	}
}

// largeConfirmer maps the --large answer to a Confirmer.
func largeConfirmer(answer string, in io.Reader, out io.Writer) bench.Confirmer {
	switch answer {
	case largeYes:
		return func([]int) bool { return true }
	case largeNo:
		return nil
	default:
		return promptConfirmer(in, out)
	}
}
