// SPDX-License-Identifier: MIT

// Package score defines the numeric score domain used by the aligners and
// the scoring configuration shared by every pass.
//
// Value is a signed 64-bit score with a designated negative-infinity
// sentinel, NegInf, that marks disallowed dynamic-programming states.
//
// Sentinel bound (invariant):
//
//	NegInf       = MinInt64 / 4          (-2^61)
//	|entry|     <= MaxMagnitude = 2^30   for every substitution and gap value
//	len(seq)    <= MaxLength    = 2^24
//
// Any real alignment score is a sum of at most 2*MaxLength terms, so it lies
// in (-2^55, 2^55), and a sum of three such scores (as the edge filter forms)
// stays within (-2^57, 2^57). Real scores therefore never reach NegInf.
// Add and Sub saturate at NegInf instead of relying on wrap-around, so
// NegInf plus any finite value remains NegInf.
//
// Config carries the symmetric 5×5 substitution table over rna symbols, the
// gap-open and gap-extend scores, and the fixed-point Scale used to turn an
// optimal score into a per-column identity estimate.
package score
