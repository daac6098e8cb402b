// Package chunked provides an append-only container that allocates storage in
// fixed-size chunks and hands out element pointers that stay valid for the
// lifetime of the container.
//
// The central type is Store[T]: a generic, chunk-allocated sequence addressed
// by dense uint32 indices. Unlike a plain slice, a Store never relocates
// elements when it grows. Each chunk is allocated once at its full capacity
// and never reallocated, so the pointer returned by Add or At can be retained
// indefinitely and remains valid across any number of subsequent Adds.
//
// # When To Use
//
// Store[T] is built for arena-style workloads that accumulate many small
// values and reference them by pointer or by index:
//   - Symbol and string tables that hand out stable references
//   - Node pools for graphs, tries, and expression trees
//   - Registries keyed by a compact uint32 handle instead of a pointer
//
// For workloads that delete, reorder, or random-insert, use a different
// container; Store only grows.
//
// # Index Space
//
// Indices are uint32 and assigned densely in insertion order: the first Add
// returns index 0, the next 1, and so on. The index doubles as a compact
// handle that survives arbitrary growth. When a Store would grow past the
// uint32 index space it panics; that limit is a hard sizing contract, not a
// recoverable condition.
//
// # Concurrency
//
// A Store performs no internal locking. Concurrent readers are safe only
// against each other; Add requires external synchronization. Element
// pointers obtained before a concurrent Add remain safe to dereference,
// because growth never moves existing elements.
//
// # Example
//
//	store := chunked.New[string](64, 4)
//
//	ptr, idx := store.Add("alpha")
//	_ = ptr // stable for the store's lifetime
//
//	store.Add("beta")
//	store.Add("gamma")
//
//	for i, s := range store.All() {
//	    fmt.Println(i, *s)
//	}
//
//	fmt.Println(store.Len(), *store.At(idx)) // 3 alpha
package chunked
