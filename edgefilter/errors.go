// SPDX-License-Identifier: MIT

package edgefilter

import "errors"

var (
	// ErrNilConfig indicates that no scoring configuration was given.
	ErrNilConfig = errors.New("edgefilter: score config is nil")

	// ErrNegativeMargin indicates a suboptimality margin below zero.
	ErrNegativeMargin = errors.New("edgefilter: suboptimal margin must be >= 0")

	// ErrInconsistent indicates that the forward and backward optima differ.
	// It signals a defect in the recurrence or the scoring configuration; the
	// pair is aborted and no edge set is returned.
	ErrInconsistent = errors.New("edgefilter: forward and backward optimal scores differ")

	// ErrTooFewSequences indicates AllPairs was given fewer than two sequences.
	ErrTooFewSequences = errors.New("edgefilter: at least two sequences are required")
)
