package dobfs

import (
	"errors"
	"fmt"

	"github.com/gammazero/deque"

	"github.com/kastelov/grapnel/csr"
)

// unreachedDepth marks vertices the reference BFS never reached; it is
// the same sentinel an unreached parent entry must hold.
const unreachedDepth csr.NodeID = -1

// Sentinel errors naming the first forest invariant a Verify call found
// violated.
var (
	// ErrParentLength is returned when the parent slice does not cover
	// every vertex exactly once.
	ErrParentLength = errors.New("dobfs: parent length does not match vertex count")

	// ErrSourceEncoding is returned when the source is not its own
	// parent at depth zero.
	ErrSourceEncoding = errors.New("dobfs: source vertex encoded incorrectly")

	// ErrMissingEdge is returned when a claimed parent has no arc to its
	// child.
	ErrMissingEdge = errors.New("dobfs: no edge from parent to child")

	// ErrDepthMismatch is returned when a child is not exactly one level
	// below its parent.
	ErrDepthMismatch = errors.New("dobfs: parent and child depths inconsistent")

	// ErrReachabilityMismatch is returned when the parallel result and
	// the reference traversal disagree on whether a vertex was reached.
	ErrReachabilityMismatch = errors.New("dobfs: reachability mismatch")
)

// Verify replays a strictly sequential BFS from source and checks parent
// against it: the source must be its own parent at depth zero, every
// other reached vertex must be claimed by an in-neighbor one level
// above, and unreached vertices must hold the -1 sentinel. Any valid
// shortest-path predecessor passes; the first violated invariant is
// returned as a wrapped sentinel error, nil means the forest is valid.
func Verify(g *csr.Graph, source csr.NodeID, parent []csr.NodeID) error {
	if g == nil {
		return ErrGraphNil
	}
	if source < 0 || source >= g.NumNodes() {
		return ErrSourceOutOfRange
	}
	if len(parent) != int(g.NumNodes()) {
		return fmt.Errorf("%w: got %d, want %d", ErrParentLength, len(parent), g.NumNodes())
	}

	depth := referenceDepths(g, source)

	for u := csr.NodeID(0); u < g.NumNodes(); u++ {
		switch {
		case depth[u] != unreachedDepth && parent[u] != unreachedDepth:
			if u == source {
				if parent[u] != u || depth[u] != 0 {
					return fmt.Errorf("%w: parent[%d]=%d, depth=%d", ErrSourceEncoding, u, parent[u], depth[u])
				}
				continue
			}
			if err := checkClaim(g, depth, parent[u], u); err != nil {
				return err
			}
		case depth[u] != parent[u]:
			return fmt.Errorf("%w: vertex %d has depth %d but parent %d", ErrReachabilityMismatch, u, depth[u], parent[u])
		}
	}
	return nil
}

// referenceDepths runs the single-threaded BFS and returns per-vertex
// depths, unreachedDepth for vertices outside source's component.
func referenceDepths(g *csr.Graph, source csr.NodeID) []csr.NodeID {
	depth := make([]csr.NodeID, g.NumNodes())
	for i := range depth {
		depth[i] = unreachedDepth
	}
	depth[source] = 0

	var toVisit deque.Deque[csr.NodeID]
	toVisit.PushBack(source)
	for toVisit.Len() > 0 {
		u := toVisit.PopFront()
		for _, v := range g.OutNeighbors(u) {
			if depth[v] == unreachedDepth {
				depth[v] = depth[u] + 1
				toVisit.PushBack(v)
			}
		}
	}
	return depth
}

// checkClaim validates one parent claim p→u: the arc must exist and p
// must sit exactly one level above u.
func checkClaim(g *csr.Graph, depth []csr.NodeID, p, u csr.NodeID) error {
	for _, v := range g.InNeighbors(u) {
		if v != p {
			continue
		}
		if depth[v] != depth[u]-1 {
			return fmt.Errorf("%w: parent %d at depth %d, child %d at depth %d",
				ErrDepthMismatch, v, depth[v], u, depth[u])
		}
		return nil
	}
	return fmt.Errorf("%w: %d→%d", ErrMissingEdge, p, u)
}
