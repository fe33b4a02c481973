package edgefilter_test

import (
	"math/rand"
	"testing"

	"github.com/seqan/lara2/edgefilter"
	"github.com/seqan/lara2/rna"
	"github.com/seqan/lara2/score"
	"github.com/stretchr/testify/require"
)

// simple returns the match=2, mismatch=-1, open=-4, extend=-1 scheme with the given scale.
func simple(t testing.TB, scale float64) *score.Config {
	t.Helper()
	cfg, err := score.NewSimple(2, -1, -4, -1, scale)
	require.NoError(t, err)

	return cfg
}

func randomSeq(rng *rand.Rand, n int) rna.Sequence {
	const letters = "ACGU"
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = letters[rng.Intn(len(letters))]
	}

	return rna.MustParse(string(buf))
}

// exhaustive is the brute-force reference: it enumerates every global
// alignment of a and b and records, per residue pair, the best score of an
// alignment that matches that pair.
type exhaustive struct {
	optimum  score.Value
	forced   [][]score.Value // forced[a][b], NegInf when no alignment matches (a,b)
	bestPath []edgefilter.Pair
}

func enumerate(a, b rna.Sequence, cfg *score.Config) exhaustive {
	const (
		stMatch = iota
		stGapA  // consumes B
		stGapB  // consumes A
	)
	ex := exhaustive{optimum: score.NegInf, forced: make([][]score.Value, a.Len())}
	for i := range ex.forced {
		ex.forced[i] = make([]score.Value, b.Len())
		for j := range ex.forced[i] {
			ex.forced[i][j] = score.NegInf
		}
	}

	var pairs []edgefilter.Pair
	var rec func(i, j, last int, total score.Value)
	rec = func(i, j, last int, total score.Value) {
		if i == a.Len() && j == b.Len() {
			if total > ex.optimum {
				ex.optimum = total
				ex.bestPath = append([]edgefilter.Pair(nil), pairs...)
			}
			for _, p := range pairs {
				if total > ex.forced[p.A][p.B] {
					ex.forced[p.A][p.B] = total
				}
			}

			return
		}
		if i < a.Len() && j < b.Len() {
			pairs = append(pairs, edgefilter.Pair{A: i, B: j})
			rec(i+1, j+1, stMatch, total+cfg.Sub(a.At(i), b.At(j)))
			pairs = pairs[:len(pairs)-1]
		}
		if j < b.Len() {
			g := cfg.GapOpen
			if last == stGapA {
				g = cfg.GapExtend
			}
			rec(i, j+1, stGapA, total+g)
		}
		if i < a.Len() {
			g := cfg.GapOpen
			if last == stGapB {
				g = cfg.GapExtend
			}
			rec(i+1, j, stGapB, total+g)
		}
	}
	rec(0, 0, stMatch, 0)

	return ex
}

// expected returns the edges the reference admits for the given margin.
func (ex exhaustive) expected(margin score.Value) []edgefilter.Pair {
	var out []edgefilter.Pair
	for a := range ex.forced {
		for b := range ex.forced[a] {
			if ex.forced[a][b] >= ex.optimum-margin {
				out = append(out, edgefilter.Pair{A: a, B: b})
			}
		}
	}

	return out
}

// isSubset reports whether every edge of small is also in big.
func isSubset(small, big *edgefilter.EdgeSet) bool {
	for _, p := range small.Pairs() {
		if !big.Has(p.A, p.B) {
			return false
		}
	}

	return true
}
