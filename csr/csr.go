package csr

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction.
var (
	// ErrNoVertices indicates a vertex count below one.
	ErrNoVertices = errors.New("csr: graph needs at least one vertex")

	// ErrEdgeOutOfRange indicates an edge endpoint outside [0, n).
	ErrEdgeOutOfRange = errors.New("csr: edge endpoint out of range")
)

// NodeID is a dense vertex identifier in [0, NumNodes), used as a direct
// array index throughout the library. It is an alias so callers can apply
// sync/atomic operations to NodeID slices directly.
type NodeID = int32

// Edge is a single directed arc From→To of an input edge list.
// For undirected construction it represents the unordered pair {From, To}.
type Edge struct {
	From NodeID
	To   NodeID
}

// Graph is an immutable CSR digraph. For undirected graphs the in- and
// out-adjacency views alias the same symmetrized arrays.
type Graph struct {
	n        NodeID
	directed bool

	outIndex []int64
	outAdj   []NodeID
	inIndex  []int64
	inAdj    []NodeID
}

// FromEdges builds a Graph with n vertices from the given edge list.
// When directed is false every edge is inserted in both directions and the
// two adjacency views coincide. Self-loops and parallel edges are kept as-is.
func FromEdges(n int, edges []Edge, directed bool) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrNoVertices, n)
	}
	for _, e := range edges {
		if e.From < 0 || e.From >= NodeID(n) || e.To < 0 || e.To >= NodeID(n) {
			return nil, fmt.Errorf("%w: %d→%d with n=%d", ErrEdgeOutOfRange, e.From, e.To, n)
		}
	}

	g := &Graph{n: NodeID(n), directed: directed}
	if directed {
		g.outIndex, g.outAdj = buildAdjacency(n, edges, false)
		g.inIndex, g.inAdj = buildAdjacency(n, edges, true)
	} else {
		sym := make([]Edge, 0, 2*len(edges))
		for _, e := range edges {
			sym = append(sym, e, Edge{From: e.To, To: e.From})
		}
		g.outIndex, g.outAdj = buildAdjacency(n, sym, false)
		g.inIndex, g.inAdj = g.outIndex, g.outAdj
	}
	return g, nil
}

// buildAdjacency lays out one CSR direction with a stable counting sort.
// With reverse set, edges are keyed by To and store From.
func buildAdjacency(n int, edges []Edge, reverse bool) ([]int64, []NodeID) {
	index := make([]int64, n+1)
	for _, e := range edges {
		src := e.From
		if reverse {
			src = e.To
		}
		index[src+1]++
	}
	for i := 0; i < n; i++ {
		index[i+1] += index[i]
	}
	adj := make([]NodeID, len(edges))
	cursor := make([]int64, n)
	copy(cursor, index[:n])
	for _, e := range edges {
		src, dst := e.From, e.To
		if reverse {
			src, dst = dst, src
		}
		adj[cursor[src]] = dst
		cursor[src]++
	}
	return index, adj
}

// NumNodes returns the number of vertices.
func (g *Graph) NumNodes() NodeID { return g.n }

// NumEdgesDirected returns the total directed arc count: the edge list
// length for directed graphs, twice it for undirected ones. This is the
// edge-examination budget a full traversal can spend.
func (g *Graph) NumEdgesDirected() int64 { return int64(len(g.outAdj)) }

// Directed reports whether the graph was built as a digraph.
func (g *Graph) Directed() bool { return g.directed }

// OutDegree returns the number of out-neighbors of u.
func (g *Graph) OutDegree(u NodeID) NodeID {
	return NodeID(g.outIndex[u+1] - g.outIndex[u])
}

// InDegree returns the number of in-neighbors of u.
func (g *Graph) InDegree(u NodeID) NodeID {
	return NodeID(g.inIndex[u+1] - g.inIndex[u])
}

// OutNeighbors returns the vertices reachable from u by one arc.
// The slice is a view into the graph and must not be modified.
func (g *Graph) OutNeighbors(u NodeID) []NodeID {
	return g.outAdj[g.outIndex[u]:g.outIndex[u+1]]
}

// InNeighbors returns the vertices with an arc into u.
// The slice is a view into the graph and must not be modified.
func (g *Graph) InNeighbors(u NodeID) []NodeID {
	return g.inAdj[g.inIndex[u]:g.inIndex[u+1]]
}
