// Package frontier provides the two interchangeable frontier
// representations used by direction-optimizing traversals: a sliding
// queue of vertex ids for frontier-driven (top-down) rounds and a
// bit-per-vertex Bitmap for vertex-driven (bottom-up) rounds.
//
// What
//
//   - Queue[T]: a fixed-capacity append-only array with an explicit
//     window. PushBack appends behind the window; SlideWindow seals all
//     pending appends into the next iterable window and discards the
//     previous one. Window() exposes the current window as a slice.
//   - Buffer[T]: a worker-local batch that flushes into a shared Queue
//     with a single atomic reservation, so parallel producers never
//     contend on individual appends.
//   - Bitmap: a packed uint64 bit vector with non-atomic and atomic
//     set operations and an O(1) Swap for double-buffered rounds.
//
// Why
//
//	The queue avoids touching untouched vertices when the frontier is
//	small; the bitmap is cache-dense for whole-graph membership tests
//	when the frontier is large. Keeping both, with cheap conversions in
//	the traversal layer, is what makes direction switching pay off.
//
// Concurrency
//
//   - Queue: concurrent PushBack/Flush are safe (tail reservation is
//     atomic); SlideWindow and Window must only run between parallel
//     regions.
//   - Buffer: owned by exactly one worker; only Flush touches the queue.
//   - Bitmap: SetBitAtomic and GetBit are safe concurrently; Reset,
//     SetBit and Swap require external ordering.
//
// Capacity is a contract, not a runtime check: a traversal that claims
// each vertex at most once never appends more than capacity elements.
package frontier
