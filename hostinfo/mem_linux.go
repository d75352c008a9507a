// SPDX-License-Identifier: MIT

//go:build linux

package hostinfo

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

const (
	procMeminfo = "/proc/meminfo"

	cgroup2Max     = "/sys/fs/cgroup/memory.max"
	cgroup2Current = "/sys/fs/cgroup/memory.current"
	cgroup1Max     = "/sys/fs/cgroup/memory/memory.limit_in_bytes"
	cgroup1Current = "/sys/fs/cgroup/memory/memory.usage_in_bytes"
)

// memoryStats returns MemTotal and MemAvailable from /proc/meminfo, capped by
// the cgroup headroom when the process runs under a memory limit. Kernels
// without MemAvailable (or without /proc) fall back to sysinfo(2).
func memoryStats() (total, available uint64) {
	var ok bool
	if data, err := os.ReadFile(procMeminfo); err == nil {
		total, available, ok = parseMeminfo(string(data))
	}
	if !ok {
		total, available = sysinfoStats()
	}
	if room, capped := cgroupHeadroom(); capped && room < available {
		// An exhausted cgroup still reports a non-zero budget; zero means unknown.
		available = max(room, 1)
	}

	return total, available
}

// parseMeminfo extracts MemTotal and MemAvailable (reported in kB) from the
// contents of /proc/meminfo. ok is false unless both are present.
func parseMeminfo(s string) (total, available uint64, ok bool) {
	var haveTotal, haveAvail bool
	for _, line := range strings.Split(s, "\n") {
		key, rest, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			continue
		}
		v, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			continue
		}
		if len(fields) > 1 && fields[1] == "kB" {
			v <<= 10
		}
		switch key {
		case "MemTotal":
			total, haveTotal = v, true
		case "MemAvailable":
			available, haveAvail = v, true
		}
	}

	return total, available, haveTotal && haveAvail
}

// cgroupHeadroom is limit minus usage of the process's memory cgroup, v2
// first, then v1. capped is false when no limit is set.
func cgroupHeadroom() (room uint64, capped bool) {
	for _, p := range [][2]string{{cgroup2Max, cgroup2Current}, {cgroup1Max, cgroup1Current}} {
		limit, err := os.ReadFile(p[0])
		if err != nil {
			continue
		}
		usage, err := os.ReadFile(p[1])
		if err != nil {
			continue
		}
		return headroom(string(limit), string(usage))
	}

	return 0, false
}

// headroom parses a cgroup limit/usage pair. "max" (v2) means no limit; v1
// reports "no limit" as a page-aligned value near MaxInt64, which callers
// cap against MemAvailable anyway.
func headroom(limit, usage string) (room uint64, capped bool) {
	limit = strings.TrimSpace(limit)
	if limit == "" || limit == "max" {
		return 0, false
	}
	l, err := strconv.ParseUint(limit, 10, 64)
	if err != nil {
		return 0, false
	}
	u, err := strconv.ParseUint(strings.TrimSpace(usage), 10, 64)
	if err != nil {
		return 0, false
	}
	if u >= l {
		return 0, true
	}

	return l - u, true
}

// sysinfoStats is the fallback: available is free plus buffer RAM, which
// undercounts reclaimable page cache.
func sysinfoStats() (total, available uint64) {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return 0, 0
	}
	unit := uint64(si.Unit)
	if unit == 0 {
		unit = 1
	}

	return uint64(si.Totalram) * unit, (uint64(si.Freeram) + uint64(si.Bufferram)) * unit
}
