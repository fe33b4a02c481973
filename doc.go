// SPDX-License-Identifier: MIT

// Package lara2 computes sparse, suboptimality-bounded candidate edge sets
// between pairs of RNA sequences for a downstream structural-alignment
// optimizer.
//
// What is in here?
//
//	A small, dependency-light library organised leaves first:
//		• rna/: Rna5 alphabet, immutable sequences, zero-copy reversed views
//		• score/: score values with a saturating -∞ sentinel, scoring configuration
//		• grid/: bounds-checked dense row-major 2D tables
//		• gotoh/: three-state affine-gap DP tables with prefix-score queries
//		• edgefilter/: forward+backward edge filter, identity estimate, all-pairs batch
//		• cmd/lara-edges: FASTA in, one report line per sequence pair out
//
// Quick example:
//
//	cfg, _ := score.NewSimple(2, -1, -4, -1, 1)
//	edges, identity, err := edgefilter.GenerateEdges(rna.MustParse("ACGU"), rna.MustParse("AGU"), cfg, 0)
//
// The edge set contains every residue pair (a, b) whose best forced
// alignment scores within the margin of the optimum; it never drops a pair
// of a near-optimal alignment.
package lara2
