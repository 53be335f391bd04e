// Package csr provides an immutable Compressed Sparse Row graph,
// the read-only adjacency layout consumed by the traversal kernels.
//
// What
//
//   - Graph: dense-integer vertices in [0, NumNodes), out- and in-adjacency
//     stored as two index/neighbor array pairs.
//   - FromEdges: one-shot construction from an edge list, directed or
//     undirected (undirected input is symmetrized, so both endpoints see
//     the edge and the two adjacency views coincide).
//   - Degree and neighbor lookups are O(1) slicing into the shared arrays;
//     returned neighbor slices are views and must not be mutated.
//
// Why
//
//	CSR keeps each neighborhood contiguous in memory, which is what the
//	frontier-driven and vertex-driven BFS phases both scan in their inner
//	loops. A pointer-based adjacency structure would trade that locality
//	away for mutability the kernels never use.
//
// Determinism
//
//	Construction is a stable counting sort: neighbors appear in each
//	row in input edge order. Same edge list in, same Graph out.
//
// Errors
//
//   - ErrNoVertices     if the requested vertex count is < 1.
//   - ErrEdgeOutOfRange if an edge endpoint falls outside [0, n).
//
// A Graph is immutable after construction and safe for concurrent readers.
package csr
