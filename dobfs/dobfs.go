package dobfs

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/kastelov/grapnel/csr"
	"github.com/kastelov/grapnel/frontier"
)

// buChunkSize is the dynamic scheduling granule of the bottom-up step.
// A multiple of 64, so two workers never own bits of the same bitmap
// word and the non-atomic SetBit in BUStep stays race-free.
const buChunkSize = 1024

// forEachSpan splits [0, n) into up to workers contiguous spans and runs
// fn on each span in its own goroutine, waiting for all of them.
func forEachSpan(workers, n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers
	var eg errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		lo := lo
		hi := min(lo+chunk, n)
		eg.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = eg.Wait()
}

// InitParent builds the pre-traversal parent array: -OutDegree(u) for
// vertices with outgoing arcs, -1 otherwise. The negative value marks
// the vertex unvisited while caching the edge count its discovery will
// expose.
func InitParent(g *csr.Graph, workers int) []csr.NodeID {
	parent := make([]csr.NodeID, g.NumNodes())
	forEachSpan(workers, int(g.NumNodes()), func(lo, hi int) {
		for u := csr.NodeID(lo); u < csr.NodeID(hi); u++ {
			if d := g.OutDegree(u); d != 0 {
				parent[u] = -d
			} else {
				parent[u] = -1
			}
		}
	})
	return parent
}

// TDStep expands the current frontier window through out-neighbors.
// Each unvisited neighbor is claimed with a compare-and-swap against its
// negative encoding; the winning worker buffers it for the next window
// and accounts the degree the old value carried. Returns the scout
// count: the summed out-degrees of everything discovered this round.
func TDStep(g *csr.Graph, parent []csr.NodeID, q *frontier.Queue[csr.NodeID], workers int) int64 {
	win := q.Window()
	var scout atomic.Int64
	forEachSpan(workers, len(win), func(lo, hi int) {
		buf := frontier.NewBuffer(q)
		var local int64
		for _, u := range win[lo:hi] {
			for _, v := range g.OutNeighbors(u) {
				cur := atomic.LoadInt32(&parent[v])
				if cur < 0 && atomic.CompareAndSwapInt32(&parent[v], cur, u) {
					buf.PushBack(v)
					local += int64(-cur)
				}
			}
		}
		buf.Flush()
		scout.Add(local)
	})
	return scout.Load()
}

// BUStep scans every unvisited vertex for an in-neighbor present in the
// front bitmap, claiming the first match and marking the vertex in next.
// Vertices are carved into word-aligned chunks claimed dynamically, so
// each vertex has exactly one writer and no claim needs an atomic.
// Returns the awake count: vertices discovered this round.
func BUStep(g *csr.Graph, parent []csr.NodeID, front, next *frontier.Bitmap, workers int) int64 {
	next.Reset()
	n := int64(g.NumNodes())
	var cursor, awake atomic.Int64
	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			var local int64
			for {
				lo := cursor.Add(buChunkSize) - buChunkSize
				if lo >= n {
					break
				}
				hi := min(lo+buChunkSize, n)
				for u := csr.NodeID(lo); int64(u) < hi; u++ {
					if parent[u] >= 0 {
						continue
					}
					for _, v := range g.InNeighbors(u) {
						if front.GetBit(int(v)) {
							parent[u] = v
							next.SetBit(int(u))
							local++
							break
						}
					}
				}
			}
			awake.Add(local)
			return nil
		})
	}
	_ = eg.Wait()
	return awake.Load()
}

// QueueToBitmap marks every vertex of the current frontier window in bm.
func QueueToBitmap(q *frontier.Queue[csr.NodeID], bm *frontier.Bitmap, workers int) {
	win := q.Window()
	forEachSpan(workers, len(win), func(lo, hi int) {
		for _, u := range win[lo:hi] {
			bm.SetBitAtomic(int(u))
		}
	})
}

// BitmapToQueue appends every set bit of bm into q through worker-local
// buffers and seals the result as the next window. Window order is
// ascending per worker batch; batch interleaving is unspecified.
func BitmapToQueue(g *csr.Graph, bm *frontier.Bitmap, q *frontier.Queue[csr.NodeID], workers int) {
	forEachSpan(workers, int(g.NumNodes()), func(lo, hi int) {
		buf := frontier.NewBuffer(q)
		for u := lo; u < hi; u++ {
			if bm.GetBit(u) {
				buf.PushBack(csr.NodeID(u))
			}
		}
		buf.Flush()
	})
	q.SlideWindow()
}

// Run performs a direction-optimizing BFS from source and returns the
// parent array of the resulting spanning forest: parent[source]==source,
// parent[v] is v's tree predecessor for every reached v, and -1 marks
// unreached vertices.
func Run(g *csr.Graph, source csr.NodeID, opts ...Option) ([]csr.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if source < 0 || source >= g.NumNodes() {
		return nil, ErrSourceOutOfRange
	}

	n := int(g.NumNodes())
	parent := InitParent(g, o.Workers)
	parent[source] = source

	q := frontier.NewQueue[csr.NodeID](n)
	q.PushBack(source)
	q.SlideWindow()
	front := frontier.NewBitmap(n)
	curr := frontier.NewBitmap(n)

	edgesToCheck := g.NumEdgesDirected()
	scoutCount := int64(g.OutDegree(source))

	for !q.Empty() {
		if scoutCount > edgesToCheck/o.Alpha {
			// Projected top-down cost beats the budget share: go bottom-up
			// and stay there while discovery keeps growing or the frontier
			// stays dense.
			QueueToBitmap(q, front, o.Workers)
			awakeCount := int64(q.Size())
			q.SlideWindow()
			for {
				oldAwakeCount := awakeCount
				awakeCount = BUStep(g, parent, front, curr, o.Workers)
				front.Swap(curr)
				if awakeCount < oldAwakeCount && awakeCount <= int64(n)/o.Beta {
					break
				}
			}
			BitmapToQueue(g, front, q, o.Workers)
			// Near-zero scout estimate: attempt at least one top-down round
			// before the threshold can trigger again.
			scoutCount = 1
		} else {
			edgesToCheck -= scoutCount
			scoutCount = TDStep(g, parent, q, o.Workers)
			q.SlideWindow()
		}
	}

	// Restore the unreached sentinel: degree encodings below -1 collapse
	// to -1 so unvisited entries compare equal to the verifier's depth
	// sentinel.
	forEachSpan(o.Workers, n, func(lo, hi int) {
		for u := lo; u < hi; u++ {
			if parent[u] < -1 {
				parent[u] = -1
			}
		}
	})
	return parent, nil
}

// Stats summarizes a BFS forest: vertices reached and the directed arcs
// leaving them (the edges a full expansion of the tree would examine).
type Stats struct {
	TreeNodes int64
	TreeEdges int64
}

// TreeStats tallies the reached portion of parent against g.
func TreeStats(g *csr.Graph, parent []csr.NodeID) Stats {
	var s Stats
	for u := csr.NodeID(0); u < g.NumNodes(); u++ {
		if parent[u] >= 0 {
			s.TreeNodes++
			s.TreeEdges += int64(g.OutDegree(u))
		}
	}
	return s
}
