// SPDX-License-Identifier: MIT

// Package gotoh builds the three-state affine-gap dynamic-programming tables
// of a global pairwise alignment and answers prefix-score queries on them.
//
// What is Gotoh?
//
//	Gotoh's formulation keeps one table per alignment state so that a gap
//	run of length k costs open + (k-1)*extend at O(1) per extra column:
//	  • M: the last column aligns A[a-1] with B[b-1]
//	  • H: the last column consumes B[b-1] against a gap (horizontal move)
//	  • V: the last column consumes A[a-1] against a gap (vertical move)
//
// Usage:
//
//	al, err := gotoh.New(seqA, seqB, cfg)
//	best := al.OptimalScore()       // == al.PrefixScore(len(A), len(B))
//	pre := al.PrefixScore(3, 5)     // best score of A[0:3] vs B[0:5]
//
// All three tables are kept for the lifetime of the Aligner because callers
// query arbitrary prefixes after the fill. Nothing is mutated after New
// returns, so an Aligner is safe for concurrent readers.
//
// Complexity:
//
//   - Time:   O(lenA·lenB)
//   - Memory: 3·(lenA+1)·(lenB+1) score values
package gotoh
