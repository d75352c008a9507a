// SPDX-License-Identifier: MIT

package sink

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed indicates Report on a sink after Close.
	ErrClosed = errors.New("sink: closed")

	// ErrUnknownMode indicates a sink mode other than console or csv.
	ErrUnknownMode = errors.New("sink: unknown mode")

	// ErrEmptyPath indicates a CSV sink without a file path.
	ErrEmptyPath = errors.New("sink: empty csv path")
)

func sinkErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
