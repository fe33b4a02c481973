package edgefilter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConsistent verifies the forward/backward optimum check.
func TestConsistent(t *testing.T) {
	require.NoError(t, consistent(8, 8))

	err := consistent(8, 7)
	require.ErrorIs(t, err, ErrInconsistent)
	require.Contains(t, err.Error(), "forward 8, backward 7")
}

// TestEdgeSetAddIdempotent ensures re-adding an edge does not inflate Count.
func TestEdgeSetAddIdempotent(t *testing.T) {
	e, err := newEdgeSet(2, 3)
	require.NoError(t, err)

	e.add(1, 2)
	e.add(1, 2)
	require.Equal(t, 1, e.Count())
	require.Equal(t, []Pair{{A: 1, B: 2}}, e.Pairs())
}
