// Package grapnel is a graph-analytics kernel library built around
// direction-optimizing breadth-first search.
//
// What's inside
//
//   - csr/      — immutable Compressed Sparse Row graphs built from edge lists
//   - gen/      — deterministic synthetic graph generators for tests and benchmarks
//   - frontier/ — sliding-queue and bitmap frontier representations
//   - dobfs/    — the direction-optimizing BFS kernel and its sequential verifier
//   - cmd/      — a benchmark driver running timed, verified traversal trials
//
// The kernel adaptively switches between frontier-driven (top-down) and
// vertex-driven (bottom-up) rounds based on runtime edge-examination
// estimates, claiming vertices with lock-free compare-and-swap so a
// traversal scales across cores without locks.
//
// Quick start:
//
//	g, _ := gen.Grid(1000, 1000)
//	parent, err := dobfs.Run(g, 0)
//	if err != nil { ... }
//	if err := dobfs.Verify(g, 0, parent); err != nil { ... }
package grapnel
