// Package intern deduplicates strings into a table that hands out compact,
// stable identifiers.
//
// Each distinct string is stored exactly once, in a chunked store that never
// relocates it, and is identified by a dense uint32 Symbol. Symbols are
// cheaper to store, hash, and compare than the strings they stand for, which
// makes them a good fit for identifier-heavy structures: attribute names,
// metric labels, path segments.
//
// A Table is not safe for concurrent use; guard it externally or keep it
// confined to one goroutine.
package intern

import (
	"iter"

	"github.com/lumanik/slab/chunked"
	"github.com/lumanik/slab/internal/hash"
	"github.com/lumanik/slab/internal/options"
	"github.com/lumanik/slab/internal/zerocopy"
)

// DefaultChunkSize is the per-chunk string count used when no chunk size is
// configured. Interning workloads tend to hold many small strings, so the
// chunks are larger than the chunked package's general-purpose default.
const DefaultChunkSize = 4096

// Symbol identifies an interned string. Symbols are dense: a table with N
// entries has exactly the symbols [0, N), assigned in interning order.
type Symbol uint32

// Table is a string interning table. Use New to create one; the zero value
// is not usable.
//
// The table stores each distinct string once and resolves symbols in O(1).
// Stored strings never move, so the string returned by Resolve stays valid
// for the lifetime of the table no matter how much it grows.
type Table struct {
	// index maps xxHash64 of the content to the symbols whose stored
	// strings carry that hash. Buckets almost always hold one entry;
	// collisions are resolved by comparing content during the walk.
	index map[uint64][]Symbol
	store *chunked.Store[string]

	chunkSize    int
	capacityHint int
}

// New creates an empty Table.
//
// Parameters:
//   - opts: optional WithChunkSize and WithCapacityHint configuration
//
// Returns:
//   - *Table: ready for use
//   - error: a sentinel from the errs package when an option is invalid
//
// Example:
//
//	table, err := intern.New(intern.WithCapacityHint(100_000))
//	if err != nil {
//	    return err
//	}
//	sym := table.Intern("cpu.usage")
func New(opts ...Option) (*Table, error) {
	t := &Table{}
	if err := options.Apply(t, opts...); err != nil {
		return nil, err
	}

	if t.chunkSize == 0 {
		t.chunkSize = DefaultChunkSize
	}

	reserve := 0
	if t.capacityHint > 0 {
		reserve = (t.capacityHint + t.chunkSize - 1) / t.chunkSize
	}

	t.index = make(map[uint64][]Symbol, t.capacityHint)
	t.store = chunked.New[string](t.chunkSize, reserve)

	return t, nil
}

// Intern returns the symbol for s, storing s first if it has not been seen.
// Interning the same content always yields the same symbol.
func (t *Table) Intern(s string) Symbol {
	key := hash.ID(s)
	if sym, ok := t.find(key, s); ok {
		return sym
	}

	return t.insert(key, s)
}

// InternBytes is Intern keyed by raw bytes. When the content is already
// interned it allocates nothing: the lookup hashes and compares the bytes
// in place. On a miss the bytes are copied into an immutable string once.
//
// The table never retains b; callers may reuse the slice immediately.
func (t *Table) InternBytes(b []byte) Symbol {
	key := hash.IDBytes(b)
	if sym, ok := t.find(key, zerocopy.String(b)); ok {
		return sym
	}

	return t.insert(key, string(b))
}

// Lookup returns the symbol for s without interning it. The second result
// reports whether s was present.
func (t *Table) Lookup(s string) (Symbol, bool) {
	return t.find(hash.ID(s), s)
}

// LookupBytes is Lookup keyed by raw bytes. It never allocates.
func (t *Table) LookupBytes(b []byte) (Symbol, bool) {
	return t.find(hash.IDBytes(b), zerocopy.String(b))
}

// Resolve returns the string sym stands for. The result is the stored
// string itself, valid for the table's lifetime.
//
// Resolve does not validate sym: passing a symbol that this table never
// issued is a bug in the caller and panics.
func (t *Table) Resolve(sym Symbol) string {
	return *t.store.At(uint32(sym))
}

// Len returns the number of distinct strings in the table.
func (t *Table) Len() int {
	return t.store.Len()
}

// All returns an iterator over (symbol, string) pairs in interning order,
// which is also ascending symbol order.
func (t *Table) All() iter.Seq2[Symbol, string] {
	return func(yield func(Symbol, string) bool) {
		for idx, ptr := range t.store.All() {
			if !yield(Symbol(idx), *ptr) {
				return
			}
		}
	}
}

// find walks the hash bucket for key and returns the symbol whose stored
// content equals s. Content comparison makes hash collisions harmless.
func (t *Table) find(key uint64, s string) (Symbol, bool) {
	for _, sym := range t.index[key] {
		if *t.store.At(uint32(sym)) == s {
			return sym, true
		}
	}

	return 0, false
}

func (t *Table) insert(key uint64, s string) Symbol {
	_, idx := t.store.Add(s)
	sym := Symbol(idx)
	t.index[key] = append(t.index[key], sym)

	return sym
}
