// SPDX-License-Identifier: MIT

package bench

import "time"

// Measure runs fn once and returns the wall-clock time it took.
// The window opens immediately before fn and closes immediately after it
// returns; anything the caller does before or after (allocation, filling,
// reporting) is outside it. time.Since reads the monotonic clock, so the
// result is never negative and has sub-microsecond resolution.
func Measure(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}
