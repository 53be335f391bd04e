package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastelov/grapnel/csr"
	"github.com/kastelov/grapnel/gen"
)

func TestPath(t *testing.T) {
	_, err := gen.Path(1, true)
	assert.ErrorIs(t, err, gen.ErrTooFewVertices)

	g, err := gen.Path(4, true)
	require.NoError(t, err)
	assert.Equal(t, csr.NodeID(4), g.NumNodes())
	assert.Equal(t, int64(3), g.NumEdgesDirected())
	assert.Equal(t, []csr.NodeID{1}, g.OutNeighbors(0))
	assert.Empty(t, g.OutNeighbors(3))

	und, err := gen.Path(4, false)
	require.NoError(t, err)
	assert.Equal(t, int64(6), und.NumEdgesDirected())
	assert.ElementsMatch(t, []csr.NodeID{0, 2}, und.OutNeighbors(1))
}

func TestCycle(t *testing.T) {
	_, err := gen.Cycle(2, false)
	assert.ErrorIs(t, err, gen.ErrTooFewVertices)

	g, err := gen.Cycle(5, true)
	require.NoError(t, err)
	assert.Equal(t, []csr.NodeID{0}, g.OutNeighbors(4))
	for u := csr.NodeID(0); u < 5; u++ {
		assert.Equal(t, csr.NodeID(1), g.OutDegree(u))
		assert.Equal(t, csr.NodeID(1), g.InDegree(u))
	}
}

func TestStar(t *testing.T) {
	_, err := gen.Star(1, true)
	assert.ErrorIs(t, err, gen.ErrTooFewVertices)

	g, err := gen.Star(6, true)
	require.NoError(t, err)
	assert.Equal(t, csr.NodeID(5), g.OutDegree(0))
	for u := csr.NodeID(1); u < 6; u++ {
		assert.Equal(t, csr.NodeID(0), g.OutDegree(u))
		assert.Equal(t, []csr.NodeID{0}, g.InNeighbors(u))
	}
}

func TestComplete(t *testing.T) {
	_, err := gen.Complete(0)
	assert.ErrorIs(t, err, gen.ErrTooFewVertices)

	g, err := gen.Complete(5)
	require.NoError(t, err)
	assert.Equal(t, int64(5*4), g.NumEdgesDirected())
	for u := csr.NodeID(0); u < 5; u++ {
		assert.Equal(t, csr.NodeID(4), g.OutDegree(u))
	}
}

func TestGrid(t *testing.T) {
	_, err := gen.Grid(0, 3)
	assert.ErrorIs(t, err, gen.ErrBadDimensions)

	g, err := gen.Grid(3, 4)
	require.NoError(t, err)
	assert.Equal(t, csr.NodeID(12), g.NumNodes())
	// corner, edge, interior degrees of a 4-neighborhood grid
	assert.Equal(t, csr.NodeID(2), g.OutDegree(0))
	assert.Equal(t, csr.NodeID(3), g.OutDegree(1))
	assert.Equal(t, csr.NodeID(4), g.OutDegree(5))
}

func TestRandomSparse(t *testing.T) {
	_, err := gen.RandomSparse(0, 5, 1, true)
	assert.ErrorIs(t, err, gen.ErrTooFewVertices)
	_, err = gen.RandomSparse(5, -1, 1, true)
	assert.ErrorIs(t, err, gen.ErrBadEdgeCount)

	a, err := gen.RandomSparse(100, 400, 42, false)
	require.NoError(t, err)
	b, err := gen.RandomSparse(100, 400, 42, false)
	require.NoError(t, err)

	// same seed, same graph
	require.Equal(t, a.NumNodes(), b.NumNodes())
	require.Equal(t, a.NumEdgesDirected(), b.NumEdgesDirected())
	for u := csr.NodeID(0); u < a.NumNodes(); u++ {
		assert.Equal(t, a.OutNeighbors(u), b.OutNeighbors(u))
	}

	// different seed, very likely a different topology
	c, err := gen.RandomSparse(100, 400, 43, false)
	require.NoError(t, err)
	diff := false
	for u := csr.NodeID(0); u < a.NumNodes() && !diff; u++ {
		diff = len(a.OutNeighbors(u)) != len(c.OutNeighbors(u))
	}
	assert.True(t, diff, "seeds 42 and 43 produced identical degree sequences")
}
