// Package dobfs implements direction-optimizing breadth-first search
// over a csr.Graph, returning the BFS spanning forest as a parent array.
//
// What
//
//   - Run(g, source, opts...) traverses g from source and returns
//     parent, where parent[v] is v's BFS-tree predecessor, the source is
//     its own parent, and unreached vertices hold -1.
//   - Each round the controller picks one of two phases: top-down
//     expands the frontier queue through out-neighbors with lock-free
//     claims; bottom-up scans every unvisited vertex for an in-neighbor
//     already in the frontier bitmap.
//   - Switching is driven by two integer heuristics: alpha compares the
//     projected top-down cost (scout count) against the remaining edge
//     budget, beta keeps bottom-up running while the frontier stays
//     dense relative to the graph.
//   - Verify(g, source, parent) replays a strictly sequential BFS and
//     reports the first violated forest invariant, if any.
//
// Encoding
//
//	Before a vertex is claimed its parent entry stores the negated
//	out-degree (-1 for degree zero). A claim is a single compare-and-swap
//	from that negative value to the predecessor id, so "first claim wins"
//	is linearizable and the winning worker learns the claimed vertex's
//	degree from the old value at no extra cost.
//
// Determinism
//
//	The set of reached vertices and their depths is fully determined by
//	the graph and source, whatever alpha, beta, or worker count is used.
//	The chosen predecessor among equal-depth candidates depends on worker
//	interleaving and is deliberately unspecified; Verify accepts any
//	valid shortest-path predecessor.
//
// Complexity (V = |vertices|, E = directed arcs)
//
//   - Time:   O(V + E) work, direction switching only reduces the
//     constant (edge examinations), never the bound.
//   - Memory: O(V) for the parent array, queue, and two bitmaps.
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrSourceOutOfRange  if source is outside [0, NumNodes).
//   - ErrOptionViolation   if an invalid Option is supplied.
//   - Verify additionally reports ErrParentLength, ErrSourceEncoding,
//     ErrDepthMismatch, ErrMissingEdge, or ErrReachabilityMismatch.
//
// Usage
//
//	parent, err := dobfs.Run(g, 0, dobfs.WithWorkers(8))
//	if err != nil { ... }
//	if err := dobfs.Verify(g, 0, parent); err != nil { ... }
package dobfs
