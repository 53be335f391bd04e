package frontier

import "sync/atomic"

const bitsPerWord = 64

// Bitmap is a fixed-size bit-per-vertex set packed into uint64 words.
type Bitmap struct {
	words []uint64
	n     int
}

// NewBitmap returns a zeroed bitmap covering indices [0, n).
func NewBitmap(n int) *Bitmap {
	return &Bitmap{words: make([]uint64, (n+bitsPerWord-1)/bitsPerWord), n: n}
}

// Len returns the number of indices the bitmap covers.
func (b *Bitmap) Len() int { return b.n }

// Reset clears every bit. Not safe against concurrent writers.
func (b *Bitmap) Reset() {
	for i := range b.words {
		b.words[i] = 0
	}
}

// SetBit sets bit i without synchronization. Callers that partition the
// index space must keep each word owned by a single writer.
func (b *Bitmap) SetBit(i int) {
	b.words[i/bitsPerWord] |= 1 << (uint(i) % bitsPerWord)
}

// SetBitAtomic sets bit i with a fetch-or CAS loop, safe for concurrent
// producers racing on the same word.
func (b *Bitmap) SetBitAtomic(i int) {
	word := &b.words[i/bitsPerWord]
	mask := uint64(1) << (uint(i) % bitsPerWord)
	for {
		old := atomic.LoadUint64(word)
		if old&mask != 0 {
			return
		}
		if atomic.CompareAndSwapUint64(word, old, old|mask) {
			return
		}
	}
}

// GetBit reports whether bit i is set.
func (b *Bitmap) GetBit(i int) bool {
	return b.words[i/bitsPerWord]&(1<<(uint(i)%bitsPerWord)) != 0
}

// Swap exchanges the contents of b and other in O(1).
func (b *Bitmap) Swap(other *Bitmap) {
	b.words, other.words = other.words, b.words
	b.n, other.n = other.n, b.n
}
