// SPDX-License-Identifier: MIT

package edgefilter

import (
	"fmt"
	"sync"

	"github.com/seqan/lara2/gotoh"
	"github.com/seqan/lara2/rna"
	"github.com/seqan/lara2/score"
)

// GenerateEdges computes the suboptimal edge set of seqA against seqB and a
// sequence identity estimate.
//
// Algorithm Outline:
//  1. forward  = gotoh.New(A, B); backward = gotoh.New(reverse(A), reverse(B)).
//     With ParallelPasses the two fills run concurrently and are joined here.
//  2. Require forward.OptimalScore() == backward.OptimalScore().
//  3. threshold = optimum - margin (saturating at score.NegInf).
//  4. For every (a, b): edge iff
//     forward.PrefixScore(a, b) + sub(A[a], B[b]) + backward.PrefixScore(lenA-a-1, lenB-b-1) >= threshold.
//  5. identity = optimum / cfg.Scale / max(lenA, lenB).
//
// If either sequence is empty the result is an empty lenA×lenB edge set with
// identity 0; no aligner is built.
//
// Errors:
//   - ErrNilConfig: cfg is nil.
//   - ErrNegativeMargin: margin < 0.
//   - errors from cfg.Validate (score.ErrAsymmetric, score.ErrMagnitude, score.ErrBadScale).
//   - ErrInconsistent: the two passes disagree on the optimum; no edge set is returned.
//   - errors from gotoh.New (e.g. gotoh.ErrTooLong).
func GenerateEdges(seqA, seqB rna.Sequence, cfg *score.Config, margin score.Value, opts ...Option) (*EdgeSet, float64, error) {
	edges, _, identity, err := generate(seqA, seqB, cfg, margin, buildOptions(opts))

	return edges, identity, err
}

// generate is GenerateEdges that also reports the optimum, for AllPairs.
func generate(seqA, seqB rna.Sequence, cfg *score.Config, margin score.Value, o Options) (*EdgeSet, score.Value, float64, error) {
	if cfg == nil {
		return nil, 0, 0, ErrNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, 0, 0, err
	}
	if margin < 0 {
		return nil, 0, 0, fmt.Errorf("margin %d: %w", margin, ErrNegativeMargin)
	}

	lenA, lenB := seqA.Len(), seqB.Len()
	edges, err := newEdgeSet(lenA, lenB)
	if err != nil {
		return nil, 0, 0, err
	}
	if lenA == 0 || lenB == 0 {
		return edges, 0, 0, nil
	}

	forward, backward, err := buildPasses(seqA, seqB, cfg, o.ParallelPasses)
	if err != nil {
		return nil, 0, 0, err
	}

	optimum := forward.OptimalScore()
	if err := consistent(optimum, backward.OptimalScore()); err != nil {
		return nil, 0, 0, err
	}
	threshold := score.Sub(optimum, margin)
	identity := float64(optimum) / cfg.Scale / float64(max(lenA, lenB))

	// Every saturated sum reaches a saturated threshold.
	if threshold.IsNegInf() {
		edges.addAll()

		return edges, optimum, identity, nil
	}

	for a := 0; a < lenA; a++ {
		symA := seqA.At(a)
		for b := 0; b < lenB; b++ {
			forced := score.Add(forward.PrefixScore(a, b), cfg.Sub(symA, seqB.At(b)))
			forced = score.Add(forced, backward.PrefixScore(lenA-a-1, lenB-b-1))
			if forced >= threshold {
				edges.add(a, b)
			}
		}
	}

	return edges, optimum, identity, nil
}

// consistent enforces that both passes found the same optimum; the global
// alignment problem is symmetric under joint reversal of both sequences.
func consistent(forward, backward score.Value) error {
	if forward != backward {
		return fmt.Errorf("forward %v, backward %v: %w", forward, backward, ErrInconsistent)
	}

	return nil
}

// buildPasses fills the forward aligner over (A, B) and the backward aligner
// over the reversed views. The aligners share nothing, so the parallel
// variant needs no synchronisation beyond the join.
func buildPasses(seqA, seqB rna.Sequence, cfg *score.Config, parallel bool) (*gotoh.Aligner, *gotoh.Aligner, error) {
	if !parallel {
		forward, err := gotoh.New(seqA, seqB, cfg)
		if err != nil {
			return nil, nil, err
		}
		backward, err := gotoh.New(seqA.Reverse(), seqB.Reverse(), cfg)
		if err != nil {
			return nil, nil, err
		}

		return forward, backward, nil
	}

	var (
		wg          sync.WaitGroup
		backward    *gotoh.Aligner
		errBackward error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		backward, errBackward = gotoh.New(seqA.Reverse(), seqB.Reverse(), cfg)
	}()
	forward, errForward := gotoh.New(seqA, seqB, cfg)
	wg.Wait()

	if errForward != nil {
		return nil, nil, errForward
	}
	if errBackward != nil {
		return nil, nil, errBackward
	}

	return forward, backward, nil
}
