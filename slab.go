// Package slab provides stable-address building blocks for programs that
// accumulate large numbers of small values: a chunk-allocated store, a
// copy-on-write byte view, and a string interning table built on both.
//
// Slab is optimized for arena-style workloads (symbol tables, node pools,
// identifier registries) where values are added once, referenced many
// times, and never removed. Elements get compact uint32 handles and
// pointers that stay valid no matter how much the containers grow.
//
// # Core Features
//
//   - Chunked storage that never relocates elements (pointers stay valid)
//   - Dense uint32 indices usable as compact handles
//   - O(1) append and O(1) unchecked access
//   - Copy-on-write byte views with a single explicit copy point
//   - String interning with xxHash64 lookup and zero-allocation hits
//
// # Basic Usage
//
// Storing values with stable addresses:
//
//	import "github.com/lumanik/slab"
//
//	store := slab.NewStore[Node](1024, 16)
//
//	ptr, idx := store.Add(Node{Name: "root"})
//	// ptr stays valid forever; idx is a compact handle for it
//
//	for i, node := range store.All() {
//	    fmt.Println(i, node.Name)
//	}
//
// Interning strings:
//
//	table, _ := slab.NewInterner()
//
//	sym := table.Intern("cpu.usage")
//	fmt.Println(table.Resolve(sym)) // cpu.usage
//
// Deferring buffer copies until ownership is actually needed:
//
//	view := slab.BorrowedString(header.Name) // no copy
//	if mustRetain {
//	    saved := view.IntoOwned() // the one copy, only when required
//	    keep(saved)
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the chunked,
// cow, and intern packages, simplifying the most common use cases. For
// fine-grained control, use those packages directly.
package slab

import (
	"github.com/lumanik/slab/chunked"
	"github.com/lumanik/slab/cow"
	"github.com/lumanik/slab/intern"
)

// NewStore creates a chunk-allocated store with the given chunk size and
// reserved chunk-index capacity.
//
// Parameters:
//   - chunkSize: elements per chunk; non-positive selects chunked.DefaultChunkSize
//   - reserveChunks: expected chunk count used to presize the chunk index
//
// Returns:
//   - *chunked.Store[T]: an empty store whose elements never move
//
// Example:
//
//	store := slab.NewStore[Entry](4096, 8)
func NewStore[T any](chunkSize, reserveChunks int) *chunked.Store[T] {
	return chunked.New[T](chunkSize, reserveChunks)
}

// NewDefaultStore creates a store with the default chunk size and no
// reserved capacity. Suitable when the eventual size is unknown.
func NewDefaultStore[T any]() *chunked.Store[T] {
	return chunked.New[T](chunked.DefaultChunkSize, 0)
}

// NewInterner creates a string interning table.
//
// Parameters:
//   - opts: optional intern.WithChunkSize and intern.WithCapacityHint
//
// Returns:
//   - *intern.Table: an empty table
//   - error: an errs sentinel if an option is invalid
//
// Example:
//
//	table, err := slab.NewInterner(intern.WithCapacityHint(50_000))
func NewInterner(opts ...intern.Option) (*intern.Table, error) {
	return intern.New(opts...)
}

// Owned wraps buf in a view that owns it. See cow.Owned.
func Owned(buf []byte) cow.View {
	return cow.Owned(buf)
}

// Borrowed wraps buf in a view that aliases it without copying. See
// cow.Borrowed.
func Borrowed(buf []byte) cow.View {
	return cow.Borrowed(buf)
}

// BorrowedString wraps s in a view that aliases the string's bytes without
// copying. See cow.BorrowedString.
func BorrowedString(s string) cow.View {
	return cow.BorrowedString(s)
}
