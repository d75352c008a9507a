// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates a configuration value that cannot be used.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownLogLevel indicates a log level other than debug, info, warn or error.
	ErrUnknownLogLevel = errors.New("config: unknown log level")
)

func configErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
