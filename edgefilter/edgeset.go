// SPDX-License-Identifier: MIT

package edgefilter

import "github.com/seqan/lara2/grid"

// EdgeSet is a dense lenA×lenB boolean grid; cell (a, b) is true when
// residue A[a] may be aligned with residue B[b].
// Its row-major layout matches the flat index lenB*a + b.
type EdgeSet struct {
	cells *grid.Dense[bool]
	count int
}

func newEdgeSet(rows, cols int) (*EdgeSet, error) {
	cells, err := grid.NewDense[bool](rows, cols)
	if err != nil {
		return nil, err
	}

	return &EdgeSet{cells: cells}, nil
}

// add marks (a, b); indices come from the filter loop and are in range.
func (e *EdgeSet) add(a, b int) {
	if !e.cells.MustAt(a, b) {
		e.cells.MustSet(a, b, true)
		e.count++
	}
}

// addAll marks every cell.
func (e *EdgeSet) addAll() {
	e.cells.Fill(true)
	e.count = e.cells.Len()
}

// Rows returns lenA.
func (e *EdgeSet) Rows() int { return e.cells.Rows() }

// Cols returns lenB.
func (e *EdgeSet) Cols() int { return e.cells.Cols() }

// At reports whether (a, b) is an edge.
// Returns grid.ErrOutOfRange (wrapped) for coordinates outside the grid.
func (e *EdgeSet) At(a, b int) (bool, error) { return e.cells.At(a, b) }

// Has reports whether (a, b) is an edge; coordinates outside the grid are never edges.
func (e *EdgeSet) Has(a, b int) bool {
	ok, err := e.cells.At(a, b)

	return err == nil && ok
}

// Count returns the number of edges.
func (e *EdgeSet) Count() int { return e.count }

// Pairs lists the edges in row-major order.
func (e *EdgeSet) Pairs() []Pair {
	out := make([]Pair, 0, e.count)
	for a := 0; a < e.Rows(); a++ {
		for b := 0; b < e.Cols(); b++ {
			if e.cells.MustAt(a, b) {
				out = append(out, Pair{A: a, B: b})
			}
		}
	}

	return out
}

// Bits returns a row-major copy of the grid (index lenB*a + b), the layout
// expected by consumers that index a flat edge vector.
func (e *EdgeSet) Bits() []bool { return e.cells.Values() }

// String draws the grid, one row of A per line: 'x' for an edge, '.' otherwise.
func (e *EdgeSet) String() string {
	return e.cells.Format("", "", "\n", func(edge bool) string {
		if edge {
			return "x"
		}

		return "."
	})
}
