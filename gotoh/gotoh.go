// SPDX-License-Identifier: MIT

package gotoh

import (
	"fmt"

	"github.com/seqan/lara2/grid"
	"github.com/seqan/lara2/rna"
	"github.com/seqan/lara2/score"
)

// table is one (lenA+1)×(lenB+1) DP layer.
type table = grid.Dense[score.Value]

// Aligner holds the filled Match, HorizontalGap and VerticalGap tables of
// one global alignment of A against B.
type Aligner struct {
	lenA, lenB int
	m, h, v    *table
}

// New fills the three Gotoh tables for a against b under cfg.
//
// Algorithm Outline (go = cfg.GapOpen, ge = cfg.GapExtend):
//  1. Allocate M, H, V of shape (lenA+1)×(lenB+1).
//  2. Initialize:
//     M[0][0] = 0, H[0][0] = V[0][0] = -∞
//     M[a][0] = V[a][0] = go + ge·(a-1), H[a][0] = -∞   for a = 1..lenA
//     M[0][b] = H[0][b] = go + ge·(b-1), V[0][b] = -∞   for b = 1..lenB
//  3. For a = 1..lenA, b = 1..lenB:
//     M[a][b] = max(M, H, V)[a-1][b-1] + sub(A[a-1], B[b-1])
//     H[a][b] = max(M[a][b-1]+go, H[a][b-1]+ge, V[a][b-1]+go)
//     V[a][b] = max(M[a-1][b]+go, H[a-1][b]+go, V[a-1][b]+ge)
//
// The boundaries model a single leading gap run over the whole prefix.
//
// Errors:
//   - ErrNilConfig: cfg is nil.
//   - errors from cfg.Validate, wrapped (score.ErrMagnitude, score.ErrAsymmetric, score.ErrBadScale).
//     Out-of-bound values would let real scores reach the NegInf sentinel.
//   - ErrTooLong: either input longer than score.MaxLength.
func New(a, b rna.Symbols, cfg *score.Config) (*Aligner, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	lenA, lenB := a.Len(), b.Len()
	if lenA > score.MaxLength || lenB > score.MaxLength {
		return nil, fmt.Errorf("lengths %d, %d: %w", lenA, lenB, ErrTooLong)
	}

	al := &Aligner{lenA: lenA, lenB: lenB}
	var err error
	if al.m, err = grid.NewDense[score.Value](lenA+1, lenB+1); err != nil {
		return nil, err
	}
	if al.h, err = grid.NewDense[score.Value](lenA+1, lenB+1); err != nil {
		return nil, err
	}
	if al.v, err = grid.NewDense[score.Value](lenA+1, lenB+1); err != nil {
		return nil, err
	}

	al.initBorders(cfg.GapOpen, cfg.GapExtend)
	al.fill(a, b, cfg)

	return al, nil
}

// initBorders writes row 0 and column 0 of all three tables.
func (al *Aligner) initBorders(gapOpen, gapExtend score.Value) {
	m, h, v := al.m, al.h, al.v

	m.MustSet(0, 0, 0)
	h.MustSet(0, 0, score.NegInf)
	v.MustSet(0, 0, score.NegInf)

	// Column 0: all of A[0:a+1] against one leading gap run.
	for a := 0; a < al.lenA; a++ {
		run := gapOpen + gapExtend*score.Value(a)
		m.MustSet(a+1, 0, run)
		h.MustSet(a+1, 0, score.NegInf)
		v.MustSet(a+1, 0, run)
	}

	// Row 0: all of B[0:b+1] against one leading gap run.
	for b := 0; b < al.lenB; b++ {
		run := gapOpen + gapExtend*score.Value(b)
		m.MustSet(0, b+1, run)
		h.MustSet(0, b+1, run)
		v.MustSet(0, b+1, score.NegInf)
	}
}

// fill runs the recurrence row by row.
func (al *Aligner) fill(seqA, seqB rna.Symbols, cfg *score.Config) {
	m, h, v := al.m, al.h, al.v
	gapOpen, gapExtend := cfg.GapOpen, cfg.GapExtend

	for a := 0; a < al.lenA; a++ {
		symA := seqA.At(a)
		for b := 0; b < al.lenB; b++ {
			diag := score.Max3(m.MustAt(a, b), h.MustAt(a, b), v.MustAt(a, b))
			m.MustSet(a+1, b+1, score.Add(diag, cfg.Sub(symA, seqB.At(b))))

			h.MustSet(a+1, b+1, score.Max3(
				score.Add(m.MustAt(a+1, b), gapOpen),
				score.Add(h.MustAt(a+1, b), gapExtend),
				score.Add(v.MustAt(a+1, b), gapOpen)))

			v.MustSet(a+1, b+1, score.Max3(
				score.Add(m.MustAt(a, b+1), gapOpen),
				score.Add(h.MustAt(a, b+1), gapOpen),
				score.Add(v.MustAt(a, b+1), gapExtend)))
		}
	}
}

// LenA returns the length of the first sequence.
func (al *Aligner) LenA() int { return al.lenA }

// LenB returns the length of the second sequence.
func (al *Aligner) LenB() int { return al.lenB }

// PrefixScore returns the best score of aligning A[0:posA] with B[0:posB],
// ending in any of the three states.
//
// Precondition: 0 <= posA <= LenA() and 0 <= posB <= LenB(). A violation is a
// programming error: PrefixScore panics with an error wrapping ErrOutOfRange
// rather than clamping.
func (al *Aligner) PrefixScore(posA, posB int) score.Value {
	if posA < 0 || posA > al.lenA || posB < 0 || posB > al.lenB {
		panic(fmt.Errorf("PrefixScore(%d,%d) on %dx%d: %w", posA, posB, al.lenA, al.lenB, ErrOutOfRange))
	}

	return score.Max3(al.m.MustAt(posA, posB), al.h.MustAt(posA, posB), al.v.MustAt(posA, posB))
}

// OptimalScore returns the global alignment score, PrefixScore(LenA(), LenB()).
func (al *Aligner) OptimalScore() score.Value {
	return al.PrefixScore(al.lenA, al.lenB)
}
