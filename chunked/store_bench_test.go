package chunked

import (
	"testing"
)

func BenchmarkStore_Add(b *testing.B) {
	b.ReportAllocs()

	store := New[int64](DefaultChunkSize, 64)
	var i int64
	for b.Loop() {
		store.Add(i)
		i++
	}
}

func BenchmarkStore_Add_SmallChunks(b *testing.B) {
	b.ReportAllocs()

	store := New[int64](64, 0)
	var i int64
	for b.Loop() {
		store.Add(i)
		i++
	}
}

// Baseline for Add: the cost of plain slice append, which amortizes
// reallocation but moves elements on growth.
func BenchmarkSliceAppend_Baseline(b *testing.B) {
	b.ReportAllocs()

	values := make([]int64, 0, DefaultChunkSize)
	var i int64
	for b.Loop() {
		values = append(values, i)
		i++
	}
}

func BenchmarkStore_At(b *testing.B) {
	const size = 1 << 17

	store := New[int64](DefaultChunkSize, size/DefaultChunkSize)
	for i := range int64(size) {
		store.Add(i)
	}

	b.ReportAllocs()

	var idx uint32
	for b.Loop() {
		_ = *store.At(idx & (size - 1))
		idx++
	}
}

func BenchmarkStore_All(b *testing.B) {
	const size = 100_000

	store := New[int64](DefaultChunkSize, 0)
	for i := range int64(size) {
		store.Add(i)
	}

	b.ReportAllocs()

	for b.Loop() {
		var sum int64
		for _, ptr := range store.All() {
			sum += *ptr
		}
		_ = sum
	}
}

func BenchmarkStore_Values(b *testing.B) {
	const size = 100_000

	store := New[int64](DefaultChunkSize, 0)
	for i := range int64(size) {
		store.Add(i)
	}

	b.ReportAllocs()

	for b.Loop() {
		var sum int64
		for v := range store.Values() {
			sum += v
		}
		_ = sum
	}
}
