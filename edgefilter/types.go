// SPDX-License-Identifier: MIT

package edgefilter

import "github.com/seqan/lara2/score"

// Pair is one candidate edge: residue A[A] aligned with residue B[B].
type Pair struct {
	A, B int
}

// Result is the outcome of one sequence pair in AllPairs.
//
// Fields:
//   - IdxA, IdxB: positions of the two sequences in the input slice (IdxA < IdxB).
//   - Edges: the edge set; nil when Err is set.
//   - Optimal: optimal global alignment score of the pair.
//   - Identity: normalised per-column score (see GenerateEdges).
//   - Err: per-pair failure, e.g. wrapping ErrInconsistent.
type Result struct {
	IdxA, IdxB int
	Edges      *EdgeSet
	Optimal    score.Value
	Identity   float64
	Err        error
}

// Options configures GenerateEdges and AllPairs.
//
// Fields:
//   - ParallelPasses: fill the forward and backward aligners in two goroutines.
//   - Workers: AllPairs pool size; <= 0 means runtime.NumCPU().
//   - Progress: called once per finished pair by AllPairs, from worker
//     goroutines; must be safe for concurrent use.
type Options struct {
	ParallelPasses bool
	Workers        int
	Progress       func(Result)
}

// DefaultOptions returns ParallelPasses=true, Workers=0 (all CPUs), no progress callback.
func DefaultOptions() Options {
	return Options{ParallelPasses: true}
}

// Option mutates Options.
type Option func(*Options)

// WithParallelPasses toggles concurrent filling of the two aligners.
func WithParallelPasses(on bool) Option {
	return func(o *Options) { o.ParallelPasses = on }
}

// WithWorkers sets the AllPairs pool size.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithProgress installs a per-pair completion callback for AllPairs.
func WithProgress(fn func(Result)) Option {
	return func(o *Options) { o.Progress = fn }
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
