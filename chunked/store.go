package chunked

import (
	"iter"
	"math"
)

// DefaultChunkSize is the number of elements per chunk when New receives a
// non-positive chunk size. 1024 keeps chunk headers negligible while staying
// small enough that a sparsely filled store does not waste much memory.
const DefaultChunkSize = 1024

// Store is an append-only container that allocates elements in fixed-size
// chunks. Elements never move after insertion: every chunk is allocated at
// its full capacity up front, so pointers returned by Add and At remain
// valid until the Store itself is garbage collected.
//
// Elements are addressed by dense uint32 indices in insertion order. The
// zero value is not usable; create instances with New.
//
// Store performs no locking. Add requires external synchronization with all
// other calls; concurrent reads of previously inserted elements are safe.
type Store[T any] struct {
	chunks    [][]T
	chunkSize uint32
	count     uint32
}

// New creates a Store with the given chunk size and reserves outer capacity
// for reserveChunks chunks. The first chunk is allocated immediately, so the
// first Add never allocates.
//
// A non-positive chunkSize selects DefaultChunkSize. A non-positive
// reserveChunks reserves nothing beyond the initial chunk. The reservation
// sizes only the outer chunk index; chunks themselves are allocated one at
// a time as the store grows.
//
// Parameters:
//   - chunkSize: number of elements per chunk
//   - reserveChunks: expected number of chunks, used to presize the chunk index
//
// Returns:
//   - *Store[T]: an empty store ready for Add
//
// Example:
//
//	// Roomy chunks for a table expected to hold ~100k entries.
//	store := chunked.New[Entry](4096, 32)
func New[T any](chunkSize, reserveChunks int) *Store[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	if uint64(chunkSize) > math.MaxUint32 {
		panic("chunked: chunk size exceeds index space")
	}
	if reserveChunks < 0 {
		reserveChunks = 0
	}

	s := &Store[T]{
		chunks:    make([][]T, 0, reserveChunks),
		chunkSize: uint32(chunkSize),
	}
	s.addChunk()

	return s
}

// Len returns the number of elements in the store.
func (s *Store[T]) Len() int {
	return int(s.count)
}

// Chunks returns the number of chunks currently allocated. It is always at
// least 1 and grows by one each time the current chunk fills.
func (s *Store[T]) Chunks() int {
	return len(s.chunks)
}

// ChunkSize returns the number of elements each chunk holds.
func (s *Store[T]) ChunkSize() int {
	return int(s.chunkSize)
}

// Add appends value and returns a pointer to the stored element together
// with its index. The pointer stays valid for the lifetime of the store;
// the index is dense, starting at 0 and increasing by 1 per Add.
//
// Add runs in O(1): the element is copied into the current chunk, and a new
// chunk is allocated only when the current one is full. Existing elements
// are never moved.
//
// Add panics if the store would grow past the uint32 index space. Callers
// that can approach 4 billion elements have outgrown this container.
//
// Parameters:
//   - value: element to append; the store keeps its own copy
//
// Returns:
//   - *T: pointer to the stored copy, stable until the store is released
//   - uint32: index of the element, usable with At
func (s *Store[T]) Add(value T) (*T, uint32) {
	idx := s.count
	last := len(s.chunks) - 1
	if uint32(len(s.chunks[last])) == s.chunkSize {
		last = s.addChunk()
	}

	s.chunks[last] = append(s.chunks[last], value)
	s.count++

	chunk := s.chunks[last]

	return &chunk[len(chunk)-1], idx
}

// At returns a pointer to the element at index without bounds checking
// beyond what the runtime enforces. Passing an index that was never
// returned by Add is a bug in the caller and panics.
//
// At runs in O(1): two divisions and an indexed load.
func (s *Store[T]) At(index uint32) *T {
	return &s.chunks[index/s.chunkSize][index%s.chunkSize]
}

// All returns an iterator over (index, pointer) pairs in insertion order.
//
// The yielded pointers have the same lifetime guarantee as those returned
// by Add. Mutating the store while iterating is undefined; finish the loop
// before the next Add.
//
// Example:
//
//	for idx, elem := range store.All() {
//	    fmt.Println(idx, *elem)
//	}
func (s *Store[T]) All() iter.Seq2[uint32, *T] {
	return func(yield func(uint32, *T) bool) {
		var idx uint32
		for _, chunk := range s.chunks {
			for i := range chunk {
				if !yield(idx, &chunk[i]) {
					return
				}
				idx++
			}
		}
	}
}

// Values returns an iterator over copies of the elements in insertion
// order. Use All to obtain stable pointers instead of copies.
func (s *Store[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, chunk := range s.chunks {
			for i := range chunk {
				if !yield(chunk[i]) {
					return
				}
			}
		}
	}
}

// addChunk allocates the next chunk at full capacity and returns its
// position in the chunk index. It panics if the new chunk could carry the
// element count past the uint32 index space; checking here keeps the
// overflow test off Add's fast path, at the cost of refusing a chunk whose
// capacity would only partially fit.
func (s *Store[T]) addChunk() int {
	if uint64(s.count)+uint64(s.chunkSize) > math.MaxUint32 {
		panic("chunked: index space exhausted")
	}

	s.chunks = append(s.chunks, make([]T, 0, s.chunkSize))

	return len(s.chunks) - 1
}
