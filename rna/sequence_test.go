package rna_test

import (
	"testing"

	"github.com/biogo/biogo/alphabet"
	"github.com/seqan/lara2/rna"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromByte covers canonical letters, lower case, T→U and IUPAC collapsing.
func TestFromByte(t *testing.T) {
	cases := map[byte]rna.Symbol{
		'A': rna.A, 'c': rna.C, 'G': rna.G, 'u': rna.U,
		'T': rna.U, 't': rna.U,
		'N': rna.N, 'r': rna.N, 'Y': rna.N, 'k': rna.N,
	}
	for in, want := range cases {
		got, err := rna.FromByte(in)
		require.NoError(t, err, "byte %q", in)
		assert.Equal(t, want, got, "byte %q", in)
	}

	for _, bad := range []byte{'-', '.', '1', ' ', 'X', 'Z', 0} {
		_, err := rna.FromByte(bad)
		assert.ErrorIs(t, err, rna.ErrInvalidSymbol, "byte %q", bad)
	}
}

// TestParseRoundTrip verifies Parse followed by String normalises case and T.
func TestParseRoundTrip(t *testing.T) {
	s, err := rna.Parse("acgTnW")
	require.NoError(t, err)
	assert.Equal(t, 6, s.Len())
	assert.Equal(t, "ACGUNN", s.String())
	assert.Equal(t, rna.G, s.At(2))
}

// TestParseErrors reports the offending position.
func TestParseErrors(t *testing.T) {
	_, err := rna.Parse("AC-G")
	require.ErrorIs(t, err, rna.ErrInvalidSymbol)
	assert.Contains(t, err.Error(), "position 2")

	assert.Panics(t, func() { rna.MustParse("A?") })
}

// TestEmptySequence checks the zero value and empty parsing.
func TestEmptySequence(t *testing.T) {
	var zero rna.Sequence
	assert.Equal(t, 0, zero.Len())
	assert.Equal(t, 0, zero.Reverse().Len())

	s, err := rna.Parse("")
	require.NoError(t, err)
	assert.Equal(t, "", s.String())
}

// TestReversedView checks index mapping of the reversed view.
func TestReversedView(t *testing.T) {
	s := rna.MustParse("ACGUU")
	r := s.Reverse()

	require.Equal(t, s.Len(), r.Len())
	for i := 0; i < s.Len(); i++ {
		assert.Equal(t, s.At(s.Len()-1-i), r.At(i), "index %d", i)
	}
	assert.Equal(t, "UUGCA", r.String())
	assert.Equal(t, "ACGUU", s.String(), "reversing must not touch the source")
}

// TestFromLetters converts biogo letters.
func TestFromLetters(t *testing.T) {
	s, err := rna.FromLetters(alphabet.BytesToLetters([]byte("gauc")))
	require.NoError(t, err)
	assert.Equal(t, "GAUC", s.String())

	_, err = rna.FromLetters(alphabet.BytesToLetters([]byte("ga*")))
	assert.ErrorIs(t, err, rna.ErrInvalidSymbol)
}

// TestSymbolString covers the Stringer of each symbol.
func TestSymbolString(t *testing.T) {
	assert.Equal(t, "A", rna.A.String())
	assert.Equal(t, "N", rna.N.String())
	assert.Equal(t, "?", rna.Symbol(rna.Size).String())
}
