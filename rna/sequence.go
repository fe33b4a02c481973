// SPDX-License-Identifier: MIT

package rna

import (
	"fmt"

	"github.com/biogo/biogo/alphabet"
)

// Symbols is read-only indexed access to a run of residues.
// Sequence and Reversed both implement it, so aligners consume either
// without knowing the direction.
type Symbols interface {
	Len() int
	At(i int) Symbol
}

// Sequence is an immutable, ordered run of symbols.
// The zero value is the empty sequence.
type Sequence struct {
	syms []Symbol
}

// Compile-time assertions for interface conformance.
var (
	_ Symbols      = Sequence{}
	_ Symbols      = Reversed{}
	_ fmt.Stringer = Sequence{}
	_ fmt.Stringer = Reversed{}
)

// Parse converts text into a Sequence. Empty input yields the empty sequence.
// Returns ErrInvalidSymbol (wrapped with the offending position) on the first
// byte that is not a nucleotide or IUPAC code.
func Parse(s string) (Sequence, error) {
	syms := make([]Symbol, len(s))
	for i := 0; i < len(s); i++ {
		sym, err := FromByte(s[i])
		if err != nil {
			return Sequence{}, fmt.Errorf("position %d: %w", i, err)
		}
		syms[i] = sym
	}

	return Sequence{syms: syms}, nil
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(s string) Sequence {
	seq, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return seq
}

// FromLetters converts biogo letters (as read by its FASTA reader) into a Sequence.
func FromLetters(ls alphabet.Letters) (Sequence, error) {
	syms := make([]Symbol, len(ls))
	for i, l := range ls {
		sym, err := FromByte(byte(l))
		if err != nil {
			return Sequence{}, fmt.Errorf("position %d: %w", i, err)
		}
		syms[i] = sym
	}

	return Sequence{syms: syms}, nil
}

// Len returns the number of symbols.
func (s Sequence) Len() int { return len(s.syms) }

// At returns the symbol at position i. Indexing outside [0, Len()) panics.
func (s Sequence) At(i int) Symbol { return s.syms[i] }

// Reverse returns an index-reversed view of s that shares its storage.
func (s Sequence) Reverse() Reversed { return Reversed{seq: s} }

// String renders the sequence with canonical upper-case letters.
func (s Sequence) String() string { return render(s) }

// Reversed reads a Sequence back to front without copying it.
type Reversed struct {
	seq Sequence
}

// Len returns the length of the underlying sequence.
func (r Reversed) Len() int { return r.seq.Len() }

// At returns the symbol at position Len()-1-i of the underlying sequence.
func (r Reversed) At(i int) Symbol { return r.seq.syms[len(r.seq.syms)-1-i] }

// String renders the reversed view.
func (r Reversed) String() string { return render(r) }

func render(s Symbols) string {
	buf := make([]byte, s.Len())
	for i := range buf {
		buf[i] = s.At(i).Byte()
	}

	return string(buf)
}
