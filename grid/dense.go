// SPDX-License-Identifier: MIT

// Package grid - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Offer MustAt/MustSet for hot loops whose indices are correct by construction;
//     a violated index there is a programming error and fails fast.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).

package grid

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major 2D table.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T any] struct {
	r, c int // row and column counts (>=0)
	data []T // contiguous row-major storage (len == r*c)
}

// NewDense creates an r×c table filled with the zero value of T.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Zero-sized shapes are accepted: an edge set between an empty sequence and
// any other sequence is a legal 0×k table.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T any](rows, cols int) (*Dense[T], error) {
	// Validate shape.
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]T, rows*cols)

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// Rows returns the number of rows.
func (d *Dense[T]) Rows() int { return d.r }

// Cols returns the number of columns.
func (d *Dense[T]) Cols() int { return d.c }

// Len returns the total number of cells (Rows*Cols).
func (d *Dense[T]) Len() int { return len(d.data) }

// indexOf computes the flat index for (row, col) or reports ErrOutOfRange.
// Complexity: O(1).
func (d *Dense[T]) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= d.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= d.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*d.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange (wrapped with coordinates) on invalid indices.
// Complexity: O(1).
func (d *Dense[T]) At(row, col int) (T, error) {
	idx, err := d.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T

		return zero, err
	}

	return d.data[idx], nil
}

// Set assigns v at (row, col).
// Returns ErrOutOfRange (wrapped with coordinates) on invalid indices.
// Complexity: O(1).
func (d *Dense[T]) Set(row, col int, v T) error {
	idx, err := d.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	d.data[idx] = v

	return nil
}

// MustAt is At for callers whose indices are correct by construction.
// It panics with a wrapped ErrOutOfRange on an invalid index.
func (d *Dense[T]) MustAt(row, col int) T {
	idx, err := d.indexOf(ctxAt, row, col)
	if err != nil {
		panic(err)
	}

	return d.data[idx]
}

// MustSet is Set for callers whose indices are correct by construction.
// It panics with a wrapped ErrOutOfRange on an invalid index.
func (d *Dense[T]) MustSet(row, col int, v T) {
	idx, err := d.indexOf(ctxSet, row, col)
	if err != nil {
		panic(err)
	}
	d.data[idx] = v
}

// Fill assigns v to every cell.
func (d *Dense[T]) Fill(v T) {
	for i := range d.data {
		d.data[i] = v
	}
}

// Values returns a row-major copy of all cells (offset = i*Cols + j).
// Mutating the result does not affect d.
func (d *Dense[T]) Values() []T {
	out := make([]T, len(d.data))
	copy(out, d.data)

	return out
}

// Format renders the table one row per line. Each row is wrapped in open
// and closeLn, cells are joined by sep and drawn by cell.
func (d *Dense[T]) Format(open, sep, closeLn string, cell func(T) string) string {
	var sb strings.Builder
	for i := 0; i < d.r; i++ {
		sb.WriteString(open)
		for j := 0; j < d.c; j++ {
			if j > 0 {
				sb.WriteString(sep)
			}
			sb.WriteString(cell(d.data[i*d.c+j]))
		}
		sb.WriteString(closeLn)
	}

	return sb.String()
}
