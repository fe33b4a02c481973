// SPDX-License-Identifier: MIT

package score

import "errors"

var (
	// ErrNilConfig indicates that a nil *Config was passed where one is required.
	ErrNilConfig = errors.New("score: config is nil")

	// ErrAsymmetric indicates that the substitution table is not symmetric.
	ErrAsymmetric = errors.New("score: substitution table is not symmetric")

	// ErrMagnitude indicates a substitution or gap value beyond ±MaxMagnitude.
	ErrMagnitude = errors.New("score: value exceeds MaxMagnitude")

	// ErrBadScale indicates a Scale that is not a positive finite number.
	ErrBadScale = errors.New("score: scale must be positive and finite")
)
