// SPDX-License-Identifier: MIT

package rna

import "fmt"

// Symbol is one residue of the Rna5 alphabet. Its value is a dense index in
// [0, Size) suitable for direct table lookups.
type Symbol uint8

// Alphabet members in index order.
const (
	A Symbol = iota
	C
	G
	U
	N // unknown or ambiguous
)

// Size is the number of symbols in the alphabet.
const Size = 5

// letters maps a Symbol to its canonical upper-case letter.
var letters = [Size]byte{'A', 'C', 'G', 'U', 'N'}

// invalid marks bytes in the lookup table that are not nucleotides.
const invalid = 0xff

// codes maps every input byte to a Symbol, or to invalid.
var codes = func() (t [256]uint8) {
	for i := range t {
		t[i] = invalid
	}
	set := func(s Symbol, bs ...byte) {
		for _, b := range bs {
			t[b] = uint8(s)
			t[b+'a'-'A'] = uint8(s)
		}
	}
	set(A, 'A')
	set(C, 'C')
	set(G, 'G')
	set(U, 'U', 'T')
	// IUPAC ambiguity codes.
	set(N, 'N', 'R', 'Y', 'S', 'W', 'K', 'M', 'B', 'D', 'H', 'V')

	return t
}()

// FromByte converts a single letter to a Symbol.
// Returns ErrInvalidSymbol for anything that is not a nucleotide or IUPAC code.
func FromByte(b byte) (Symbol, error) {
	c := codes[b]
	if c == invalid {
		return 0, fmt.Errorf("%q: %w", b, ErrInvalidSymbol)
	}

	return Symbol(c), nil
}

// Byte returns the canonical upper-case letter of s.
func (s Symbol) Byte() byte {
	if int(s) >= Size {
		return '?'
	}

	return letters[s]
}

// String implements fmt.Stringer.
func (s Symbol) String() string { return string(s.Byte()) }
