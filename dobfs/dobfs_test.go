package dobfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kastelov/grapnel/csr"
	"github.com/kastelov/grapnel/dobfs"
	"github.com/kastelov/grapnel/gen"
)

// treeDepths resolves every vertex's depth by walking parent chains.
// Unreached vertices map to -1.
func treeDepths(t *testing.T, parent []csr.NodeID) []int {
	t.Helper()
	depth := make([]int, len(parent))
	for u := range parent {
		if parent[u] < 0 {
			depth[u] = -1
			continue
		}
		d := 0
		for v := csr.NodeID(u); parent[v] != v; v = parent[v] {
			d++
			require.LessOrEqual(t, d, len(parent), "parent chain of %d does not terminate", u)
		}
		depth[u] = d
	}
	return depth
}

func TestRun_Errors(t *testing.T) {
	_, err := dobfs.Run(nil, 0)
	assert.ErrorIs(t, err, dobfs.ErrGraphNil)

	g, err := gen.Path(4, true)
	require.NoError(t, err)

	_, err = dobfs.Run(g, -1)
	assert.ErrorIs(t, err, dobfs.ErrSourceOutOfRange)
	_, err = dobfs.Run(g, 4)
	assert.ErrorIs(t, err, dobfs.ErrSourceOutOfRange)

	_, err = dobfs.Run(g, 0, dobfs.WithAlpha(0))
	assert.ErrorIs(t, err, dobfs.ErrOptionViolation)
	_, err = dobfs.Run(g, 0, dobfs.WithBeta(-3))
	assert.ErrorIs(t, err, dobfs.ErrOptionViolation)
	_, err = dobfs.Run(g, 0, dobfs.WithWorkers(0))
	assert.ErrorIs(t, err, dobfs.ErrOptionViolation)
}

func TestInitParent_Encoding(t *testing.T) {
	// degrees: 0→{1,2}, 1→{2}, 2→{}, 3 isolated
	g, err := csr.FromEdges(4, []csr.Edge{
		{From: 0, To: 1}, {From: 0, To: 2}, {From: 1, To: 2},
	}, true)
	require.NoError(t, err)

	parent := dobfs.InitParent(g, 4)
	assert.Equal(t, []csr.NodeID{-2, -1, -1, -1}, parent)
}

func TestRun_DirectedPath(t *testing.T) {
	g, err := gen.Path(4, true)
	require.NoError(t, err)

	parent, err := dobfs.Run(g, 0)
	require.NoError(t, err)
	// every vertex has a unique predecessor, so the tree is exact
	assert.Equal(t, []csr.NodeID{0, 0, 1, 2}, parent)
	assert.NoError(t, dobfs.Verify(g, 0, parent))
}

func TestRun_Star(t *testing.T) {
	g, err := gen.Star(6, true)
	require.NoError(t, err)

	parent, err := dobfs.Run(g, 0)
	require.NoError(t, err)
	assert.Equal(t, csr.NodeID(0), parent[0])
	for u := csr.NodeID(1); u < 6; u++ {
		assert.Equal(t, csr.NodeID(0), parent[u], "leaf %d", u)
	}
	assert.NoError(t, dobfs.Verify(g, 0, parent))
}

func TestRun_DisconnectedKeepsIsolatedUnreached(t *testing.T) {
	// component {0..3}, vertices 4..9 unreachable, 9 fully isolated
	g, err := csr.FromEdges(10, []csr.Edge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3},
		{From: 4, To: 5},
	}, true)
	require.NoError(t, err)

	parent, err := dobfs.Run(g, 0)
	require.NoError(t, err)
	for u := csr.NodeID(4); u < 10; u++ {
		assert.Equal(t, csr.NodeID(-1), parent[u], "vertex %d must stay unreached", u)
	}
	assert.NoError(t, dobfs.Verify(g, 0, parent))
}

func TestRun_SingleVertex(t *testing.T) {
	g, err := csr.FromEdges(1, nil, true)
	require.NoError(t, err)

	parent, err := dobfs.Run(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []csr.NodeID{0}, parent)
	assert.NoError(t, dobfs.Verify(g, 0, parent))
}

func TestRun_UndirectedTriangle(t *testing.T) {
	g, err := gen.Cycle(3, false)
	require.NoError(t, err)

	parent, err := dobfs.Run(g, 1)
	require.NoError(t, err)
	// only the source sits at depth 0, so both others must claim it
	assert.Equal(t, []csr.NodeID{1, 1, 1}, parent)
	assert.Equal(t, []int{1, 0, 1}, treeDepths(t, parent))
	assert.NoError(t, dobfs.Verify(g, 1, parent))
}

func TestRun_ZeroDegreeSource(t *testing.T) {
	g, err := csr.FromEdges(3, []csr.Edge{{From: 1, To: 2}}, true)
	require.NoError(t, err)

	parent, err := dobfs.Run(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []csr.NodeID{0, -1, -1}, parent)
	assert.NoError(t, dobfs.Verify(g, 0, parent))
}

// TestRun_HeuristicIndependence forces the controller into always
// top-down, eagerly bottom-up, and default modes; the reached set and
// all depths must be identical, only predecessors may differ.
func TestRun_HeuristicIndependence(t *testing.T) {
	g, err := gen.RandomSparse(2000, 12000, 7, false)
	require.NoError(t, err)
	const source = 0

	variants := map[string][]dobfs.Option{
		"default":       nil,
		"alwaysTopDown": {dobfs.WithAlpha(1)},
		"eagerBottomUp": {dobfs.WithAlpha(1 << 30), dobfs.WithBeta(1)},
		"singleWorker":  {dobfs.WithWorkers(1)},
		"denseBottomUp": {dobfs.WithAlpha(1 << 30), dobfs.WithBeta(1 << 30)},
	}

	var baseline []int
	for name, opts := range variants {
		parent, err := dobfs.Run(g, source, opts...)
		require.NoError(t, err, name)
		require.NoError(t, dobfs.Verify(g, source, parent), name)

		depth := treeDepths(t, parent)
		if baseline == nil {
			baseline = depth
			continue
		}
		assert.Equal(t, baseline, depth, "depths diverged in variant %q", name)
	}
}

// TestRun_GridAllSources cross-checks the parallel result against the
// verifier from several sources of a graph with many equal-length paths.
func TestRun_GridAllSources(t *testing.T) {
	g, err := gen.Grid(17, 23)
	require.NoError(t, err)

	for _, source := range []csr.NodeID{0, 5, 200, g.NumNodes() - 1} {
		parent, err := dobfs.Run(g, source)
		require.NoError(t, err)
		require.NoError(t, dobfs.Verify(g, source, parent), "source %d", source)

		stats := dobfs.TreeStats(g, parent)
		assert.Equal(t, int64(g.NumNodes()), stats.TreeNodes, "grid is connected")
	}
}

// TestRun_ManyWorkersRepeated hammers the claim race: different worker
// counts and repetitions must always yield a valid forest.
func TestRun_ManyWorkersRepeated(t *testing.T) {
	g, err := gen.RandomSparse(5000, 40000, 99, true)
	require.NoError(t, err)

	for _, workers := range []int{1, 2, 4, 8, 16} {
		for rep := 0; rep < 3; rep++ {
			parent, err := dobfs.Run(g, 0, dobfs.WithWorkers(workers))
			require.NoError(t, err)
			require.NoError(t, dobfs.Verify(g, 0, parent), "workers=%d rep=%d", workers, rep)
		}
	}
}

func TestTreeStats(t *testing.T) {
	g, err := csr.FromEdges(5, []csr.Edge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 3, To: 4},
	}, true)
	require.NoError(t, err)

	parent, err := dobfs.Run(g, 0)
	require.NoError(t, err)

	stats := dobfs.TreeStats(g, parent)
	assert.Equal(t, int64(3), stats.TreeNodes)
	assert.Equal(t, int64(2), stats.TreeEdges)
}
