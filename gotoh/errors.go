// SPDX-License-Identifier: MIT

package gotoh

import "errors"

var (
	// ErrNilConfig indicates that New was called without a scoring configuration.
	ErrNilConfig = errors.New("gotoh: score config is nil")

	// ErrTooLong indicates a sequence longer than score.MaxLength.
	ErrTooLong = errors.New("gotoh: sequence exceeds maximum length")

	// ErrOutOfRange is the panic payload of a prefix query outside the tables.
	ErrOutOfRange = errors.New("gotoh: prefix position out of range")
)
