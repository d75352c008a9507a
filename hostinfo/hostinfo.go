// SPDX-License-Identifier: MIT

// Package hostinfo probes the machine a benchmark runs on: architecture, CPU
// SIMD features, logical CPUs and physical memory. The runner uses the
// available-memory figure as its default per-trial allocation budget, and the
// CLI prints the banner before a sweep so result files can be tied to hardware.
package hostinfo

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Info is a snapshot of the host.
type Info struct {
	OS         string
	Arch       string
	NumCPU     int
	GOMAXPROCS int
	Features   []string // detected SIMD/FP features, stable order
	// TotalMemory and AvailableMemory are bytes; 0 means unknown.
	TotalMemory     uint64
	AvailableMemory uint64
}

// Probe collects an Info for the current process.
func Probe() Info {
	total, avail := memoryStats()
	return Info{
		OS:              runtime.GOOS,
		Arch:            runtime.GOARCH,
		NumCPU:          runtime.NumCPU(),
		GOMAXPROCS:      runtime.GOMAXPROCS(0),
		Features:        cpuFeatures(),
		TotalMemory:     total,
		AvailableMemory: avail,
	}
}

// String renders a one-line banner.
func (i Info) String() string {
	feats := "none"
	if len(i.Features) > 0 {
		feats = strings.Join(i.Features, ",")
	}
	return fmt.Sprintf("%s/%s cpus=%d gomaxprocs=%d features=%s mem_total=%s mem_avail=%s",
		i.OS, i.Arch, i.NumCPU, i.GOMAXPROCS, feats, FormatBytes(i.TotalMemory), FormatBytes(i.AvailableMemory))
}

// FormatBytes renders b with a binary unit (KiB, MiB, GiB); 0 is "unknown".
func FormatBytes(b uint64) string {
	const unit = 1024
	if b == 0 {
		return "unknown"
	}
	if b < unit {
		return fmt.Sprintf("%dB", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit && exp < 3; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f%ciB", float64(b)/float64(div), "KMGT"[exp])
}

// cpuFeatures lists the feature flags relevant to dense float64 kernels.
func cpuFeatures() []string {
	var out []string
	add := func(ok bool, name string) {
		if ok {
			out = append(out, name)
		}
	}
	switch runtime.GOARCH {
	case "amd64", "386":
		add(cpu.X86.HasSSE2, "sse2")
		add(cpu.X86.HasSSE42, "sse4.2")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasFMA, "fma")
		add(cpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		add(cpu.ARM64.HasFP, "fp")
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasSVE, "sve")
	}

	return out
}
