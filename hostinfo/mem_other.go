// SPDX-License-Identifier: MIT

//go:build !linux

package hostinfo

// memoryStats is not implemented off Linux; zero means unknown.
func memoryStats() (total, available uint64) { return 0, 0 }
