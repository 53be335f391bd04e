package gen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/kastelov/grapnel/csr"
)

// Shape minima. A path needs two endpoints, a cycle a triangle, a star
// a center and one leaf.
const (
	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
)

// Sentinel errors for generator parameters.
var (
	// ErrTooFewVertices indicates n below the shape's minimum.
	ErrTooFewVertices = errors.New("gen: too few vertices for shape")

	// ErrBadDimensions indicates a grid dimension below one.
	ErrBadDimensions = errors.New("gen: grid dimensions must be positive")

	// ErrBadEdgeCount indicates a negative requested edge count.
	ErrBadEdgeCount = errors.New("gen: edge count must be non-negative")
)

// Path builds P_n: vertices 0..n-1 with edges i→i+1 (n ≥ 2).
func Path(n int, directed bool) (*csr.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%w: path needs n ≥ %d, got %d", ErrTooFewVertices, minPathNodes, n)
	}
	edges := make([]csr.Edge, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, csr.Edge{From: csr.NodeID(i), To: csr.NodeID(i + 1)})
	}
	return csr.FromEdges(n, edges, directed)
}

// Cycle builds C_n: a path closed by the edge (n-1)→0 (n ≥ 3).
func Cycle(n int, directed bool) (*csr.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%w: cycle needs n ≥ %d, got %d", ErrTooFewVertices, minCycleNodes, n)
	}
	edges := make([]csr.Edge, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, csr.Edge{From: csr.NodeID(i), To: csr.NodeID((i + 1) % n)})
	}
	return csr.FromEdges(n, edges, directed)
}

// Star builds S_n: center 0 with edges 0→i for i=1..n-1 (n ≥ 2).
func Star(n int, directed bool) (*csr.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("%w: star needs n ≥ %d, got %d", ErrTooFewVertices, minStarNodes, n)
	}
	edges := make([]csr.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, csr.Edge{From: 0, To: csr.NodeID(i)})
	}
	return csr.FromEdges(n, edges, directed)
}

// Complete builds the undirected complete graph K_n (n ≥ 1).
func Complete(n int) (*csr.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: complete needs n ≥ 1, got %d", ErrTooFewVertices, n)
	}
	edges := make([]csr.Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, csr.Edge{From: csr.NodeID(i), To: csr.NodeID(j)})
		}
	}
	return csr.FromEdges(n, edges, false)
}

// Grid builds an undirected rows×cols 4-neighborhood grid, row-major
// numbering (both dimensions ≥ 1).
func Grid(rows, cols int) (*csr.Graph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, rows, cols)
	}
	edges := make([]csr.Edge, 0, 2*rows*cols)
	id := func(r, c int) csr.NodeID { return csr.NodeID(r*cols + c) }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				edges = append(edges, csr.Edge{From: id(r, c), To: id(r, c+1)})
			}
			if r+1 < rows {
				edges = append(edges, csr.Edge{From: id(r, c), To: id(r+1, c)})
			}
		}
	}
	return csr.FromEdges(rows*cols, edges, false)
}

// RandomSparse builds a uniform random multigraph with n vertices and m
// edges drawn from the given seed. Self-loops and duplicates may occur,
// matching a uniform edge-list sample.
func RandomSparse(n, m int, seed int64, directed bool) (*csr.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: random needs n ≥ 1, got %d", ErrTooFewVertices, n)
	}
	if m < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadEdgeCount, m)
	}
	rng := rand.New(rand.NewSource(seed))
	edges := make([]csr.Edge, 0, m)
	for k := 0; k < m; k++ {
		edges = append(edges, csr.Edge{
			From: csr.NodeID(rng.Intn(n)),
			To:   csr.NodeID(rng.Intn(n)),
		})
	}
	return csr.FromEdges(n, edges, directed)
}
