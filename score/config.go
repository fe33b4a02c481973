// SPDX-License-Identifier: MIT

package score

import (
	"fmt"
	"math"

	"github.com/seqan/lara2/rna"
)

// Default parameters of the simple match/mismatch scheme used by NewSimple
// callers that have no scoring module of their own.
const (
	DefaultMatch     Value = 2
	DefaultMismatch  Value = -1
	DefaultGapOpen   Value = -4
	DefaultGapExtend Value = -1
)

// Config is the scoring configuration shared by the forward and backward passes.
//
// Fields:
//   - Matrix: substitution score for every ordered symbol pair; must be symmetric.
//   - GapOpen: score added for the first column of a gap run (normally negative).
//   - GapExtend: score added for each further column of the same run (normally negative).
//   - Scale: fixed-point factor of the scoring module; the identity estimate
//     divides the optimal score by it. Supplied by the caller, never derived here.
//
// A Config must not be modified once handed to an aligner.
type Config struct {
	Matrix    [rna.Size][rna.Size]Value
	GapOpen   Value
	GapExtend Value
	Scale     float64
}

// NewSimple builds a Config scoring match for equal symbols and mismatch
// otherwise (N equals only N), then validates it.
func NewSimple(match, mismatch, gapOpen, gapExtend Value, scale float64) (*Config, error) {
	cfg := &Config{GapOpen: gapOpen, GapExtend: gapExtend, Scale: scale}
	for x := 0; x < rna.Size; x++ {
		for y := 0; y < rna.Size; y++ {
			if x == y {
				cfg.Matrix[x][y] = match
			} else {
				cfg.Matrix[x][y] = mismatch
			}
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewMatrix builds a Config from an explicit substitution table and validates it.
func NewMatrix(matrix [rna.Size][rna.Size]Value, gapOpen, gapExtend Value, scale float64) (*Config, error) {
	cfg := &Config{Matrix: matrix, GapOpen: gapOpen, GapExtend: gapExtend, Scale: scale}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the simple scheme built from the Default* constants with Scale 1.
func Default() *Config {
	cfg, err := NewSimple(DefaultMatch, DefaultMismatch, DefaultGapOpen, DefaultGapExtend, 1)
	if err != nil {
		panic(err) // constants are valid
	}

	return cfg
}

// Sub returns the substitution score of aligning x with y.
func (c *Config) Sub(x, y rna.Symbol) Value { return c.Matrix[x][y] }

// Validate checks the invariants every aligner relies on.
//
// Errors:
//   - ErrNilConfig: c is nil.
//   - ErrMagnitude: an entry or gap value outside ±MaxMagnitude.
//   - ErrAsymmetric: Matrix[x][y] != Matrix[y][x] for some pair.
//   - ErrBadScale: Scale is zero, negative, NaN or infinite.
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}
	if !inRange(c.GapOpen) {
		return fmt.Errorf("gap open %d: %w", c.GapOpen, ErrMagnitude)
	}
	if !inRange(c.GapExtend) {
		return fmt.Errorf("gap extend %d: %w", c.GapExtend, ErrMagnitude)
	}
	for x := 0; x < rna.Size; x++ {
		for y := 0; y < rna.Size; y++ {
			if !inRange(c.Matrix[x][y]) {
				return fmt.Errorf("%v/%v = %d: %w", rna.Symbol(x), rna.Symbol(y), c.Matrix[x][y], ErrMagnitude)
			}
			if c.Matrix[x][y] != c.Matrix[y][x] {
				return fmt.Errorf("%v/%v: %w", rna.Symbol(x), rna.Symbol(y), ErrAsymmetric)
			}
		}
	}
	if c.Scale <= 0 || math.IsNaN(c.Scale) || math.IsInf(c.Scale, 0) {
		return fmt.Errorf("scale %v: %w", c.Scale, ErrBadScale)
	}

	return nil
}

func inRange(v Value) bool { return v >= -MaxMagnitude && v <= MaxMagnitude }
