// SPDX-License-Identifier: MIT

package grid

import "errors"

// Every message is prefixed with "grid: ..." for consistency. Context is
// attached at the detection site with fmt.Errorf("...: %w", ErrX); callers
// match with errors.Is.
var (
	// ErrInvalidDimensions indicates that requested dimensions are negative.
	ErrInvalidDimensions = errors.New("grid: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set return it; MustAt/MustSet panic with it.
	ErrOutOfRange = errors.New("grid: index out of range")
)
