// SPDX-License-Identifier: MIT

package edgefilter

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/seqan/lara2/rna"
	"github.com/seqan/lara2/score"
)

// PairCount returns the number of unordered pairs i<j among n sequences.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// AllPairs runs GenerateEdges for every pair i<j of seqs.
//
// Pairs are enumerated in row order (0,1), (0,2), …, (1,2), … and the returned
// slice keeps that order regardless of completion order. Work is spread over
// Options.Workers goroutines. A per-pair failure (e.g. ErrInconsistent) is
// stored in that pair's Result.Err and does not stop the batch.
//
// Cancelling ctx stops handing out new pairs; pairs already running finish,
// and AllPairs returns ctx.Err() with no results.
//
// Errors:
//   - ErrTooFewSequences: len(seqs) < 2.
//   - ErrNilConfig, ErrNegativeMargin, cfg.Validate errors: as GenerateEdges, checked up front.
//   - ctx.Err() on cancellation.
func AllPairs(ctx context.Context, seqs []rna.Sequence, cfg *score.Config, margin score.Value, opts ...Option) ([]Result, error) {
	if len(seqs) < 2 {
		return nil, fmt.Errorf("got %d: %w", len(seqs), ErrTooFewSequences)
	}
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if margin < 0 {
		return nil, fmt.Errorf("margin %d: %w", margin, ErrNegativeMargin)
	}
	o := buildOptions(opts)
	workers := o.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, 0, PairCount(len(seqs)))
	for i := 0; i < len(seqs)-1; i++ {
		for j := i + 1; j < len(seqs); j++ {
			results = append(results, Result{IdxA: i, IdxB: j})
		}
	}
	if workers > len(results) {
		workers = len(results)
	}

	jobs := make(chan int) // index into results
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range jobs {
				r := &results[k] // each slot is written by exactly one worker
				r.Edges, r.Optimal, r.Identity, r.Err = generate(seqs[r.IdxA], seqs[r.IdxB], cfg, margin, o)
				if o.Progress != nil {
					o.Progress(*r)
				}
			}
		}()
	}

	var cancelled error
feed:
	for k := range results {
		if err := ctx.Err(); err != nil {
			cancelled = err

			break
		}
		select {
		case <-ctx.Done():
			cancelled = ctx.Err()

			break feed
		case jobs <- k:
		}
	}
	close(jobs)
	wg.Wait()

	if cancelled != nil {
		return nil, cancelled
	}

	return results, nil
}
