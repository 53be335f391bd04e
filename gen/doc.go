// Package gen builds deterministic synthetic csr.Graph topologies for
// tests, benchmarks, and the benchmark driver.
//
// What
//
//   - Path, Cycle, Star, Complete, Grid: classic fixed shapes with a
//     stable vertex numbering and edge emission order.
//   - RandomSparse: a uniform random edge list drawn from a seeded
//     generator, so the same (n, m, seed) always yields the same graph.
//
// Why
//
//	Traversal kernels need graphs with known diameters, degree skews,
//	and component structure. Generating them on demand keeps fixtures
//	out of the repository and makes benchmark scales a flag, not a file.
//
// Determinism
//
//	Every generator is a pure function of its arguments. RandomSparse
//	derives all randomness from the given seed.
//
// Errors
//
//   - ErrTooFewVertices if n is below the shape's minimum.
//   - ErrBadDimensions  if a grid dimension is below one.
//   - ErrBadEdgeCount   if a negative edge count is requested.
package gen
