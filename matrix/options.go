// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for operand generation.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMemoryLimit is the byte budget for one trial's three operands.
	// Zero means "no explicit limit": only overflow and runtime refusals fail.
	DefaultMemoryLimit uint64 = 0

	// DefaultPreviewLen is how many leading values of a row RowPreview callers
	// typically request when logging results.
	DefaultPreviewLen = 10
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	memoryLimit uint64 // bytes for A+B+C; 0 = unlimited
}

// WithMemoryLimit caps the bytes that Generate may allocate for the three
// operands of one trial. A request above the limit fails with ErrAllocation
// before anything is allocated. Zero disables the cap.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithMemoryLimit(bytes uint64) Option {
	return func(o *Options) { o.memoryLimit = bytes }
}

// MemoryLimit returns the resolved byte limit (0 = unlimited).
func (o Options) MemoryLimit() uint64 { return o.memoryLimit }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{memoryLimit: DefaultMemoryLimit}
}

// gatherOptions applies opts on top of the defaults. nil options are ignored.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
