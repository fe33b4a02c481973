// SPDX-License-Identifier: MIT

// Package grid provides dense, row-major 2D containers with bounds-checked
// accessors.
//
// What is grid?
//
//	A Dense[T] stores r×c values of any element type in one flat slice with
//	the explicit offset formula i*cols + j. Callers never compute offsets
//	themselves: every read and write goes through At/Set (error returning)
//	or MustAt/MustSet (panicking), so an index outside [0,r)×[0,c) is always
//	detected.
//
// Typical uses in this module:
//   - dynamic-programming tables of score.Value, shape (lenA+1)×(lenB+1)
//   - boolean edge sets, shape lenA×lenB
//
// Zero-sized shapes (0×k, k×0) are legal; they hold no cells and every
// access is out of range.
//
// Complexity:
//   - NewDense: O(r*c) zero-init; At/Set/MustAt/MustSet: O(1); Values, Fill, Format: O(r*c).
package grid
