package frontier

import "sync/atomic"

// DefaultBufferSize is the per-worker batch size used by NewBuffer.
// Large enough to amortize the shared tail reservation, small enough to
// stay inside one L1 line burst.
const DefaultBufferSize = 1024

// Queue is a fixed-capacity sliding queue. Elements appended via
// PushBack (or a Buffer flush) land behind the current window and become
// iterable only after the next SlideWindow call.
//
// The total number of appends over the queue's lifetime must not exceed
// its capacity; the sliding window never wraps.
type Queue[T any] struct {
	shared []T
	in     atomic.Int64
	// current window bounds into shared
	outStart int64
	outEnd   int64
}

// NewQueue returns a queue able to hold capacity elements in total.
func NewQueue[T any](capacity int) *Queue[T] {
	return &Queue[T]{shared: make([]T, capacity)}
}

// PushBack appends v behind the current window.
func (q *Queue[T]) PushBack(v T) {
	q.shared[q.in.Add(1)-1] = v
}

// reserve claims n consecutive slots behind the window and returns the
// first index. Safe for concurrent callers.
func (q *Queue[T]) reserve(n int) int64 {
	return q.in.Add(int64(n)) - int64(n)
}

// SlideWindow seals every pending append into the new window and
// discards the previous window. Must not race with producers.
func (q *Queue[T]) SlideWindow() {
	q.outStart = q.outEnd
	q.outEnd = q.in.Load()
}

// Window returns the current window as a slice view. The view is valid
// until the next SlideWindow.
func (q *Queue[T]) Window() []T {
	return q.shared[q.outStart:q.outEnd]
}

// Size returns the number of elements in the current window.
func (q *Queue[T]) Size() int { return int(q.outEnd - q.outStart) }

// Empty reports whether the current window holds no elements.
func (q *Queue[T]) Empty() bool { return q.outEnd == q.outStart }

// Buffer is a worker-local staging area for Queue appends. Each worker
// owns one Buffer; PushBack never touches shared state until the batch
// fills or Flush is called.
type Buffer[T any] struct {
	local []T
	queue *Queue[T]
}

// NewBuffer returns a Buffer of DefaultBufferSize bound to q.
func NewBuffer[T any](q *Queue[T]) *Buffer[T] {
	return &Buffer[T]{local: make([]T, 0, DefaultBufferSize), queue: q}
}

// PushBack stages v, flushing first if the batch is full.
func (b *Buffer[T]) PushBack(v T) {
	if len(b.local) == cap(b.local) {
		b.Flush()
	}
	b.local = append(b.local, v)
}

// Flush moves the staged batch into the shared queue with one atomic
// tail reservation and empties the buffer.
func (b *Buffer[T]) Flush() {
	if len(b.local) == 0 {
		return
	}
	pos := b.queue.reserve(len(b.local))
	copy(b.queue.shared[pos:], b.local)
	b.local = b.local[:0]
}
