// SPDX-License-Identifier: MIT

// Package edgefilter selects the residue pairs that can take part in a
// near-optimal global alignment of two sequences.
//
// How it works:
//
//	Two Gotoh aligners are filled, one over (A, B) and one over the
//	reversed pair. For a residue pair (a, b) the sum
//
//	  forward.PrefixScore(a, b) + sub(A[a], B[b]) + backward.PrefixScore(lenA-a-1, lenB-b-1)
//
//	is the best score of any full alignment forced to align A[a] with B[b].
//	The pair becomes an edge iff that sum is at least optimum - margin.
//	The result is a superset of the matched pairs of every alignment within
//	the margin, never a subset.
//
// Usage:
//
//	edges, identity, err := edgefilter.GenerateEdges(seqA, seqB, cfg, 10)
//	for _, p := range edges.Pairs() { ... }
//
// AllPairs runs GenerateEdges for every pair i<j of a sequence set on a
// bounded worker pool, reporting each finished pair through an optional
// progress callback.
//
// Complexity (one pair):
//
//   - Time:   O(lenA·lenB)
//   - Memory: 6·(lenA+1)·(lenB+1) score values while both aligners live,
//     plus lenA·lenB booleans for the edge set.
package edgefilter
