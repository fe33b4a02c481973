// SPDX-License-Identifier: MIT

// Package rna defines the five-letter nucleotide alphabet (A, C, G, U and the
// unknown symbol N), immutable sequences over it, and a zero-copy reversed
// view used by the backward alignment pass.
//
// Parsing is case-insensitive. T is read as U so that DNA input can be
// aligned unchanged; every other IUPAC ambiguity code collapses to N.
//
//	s, err := rna.Parse("ACGUn")
//	r := s.Reverse() // r.At(0) == rna.N, no copy
package rna
