package slab

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumanik/slab/chunked"
	"github.com/lumanik/slab/errs"
	"github.com/lumanik/slab/intern"
)

// TestNewStore verifies the wrapper forwards sizing to the chunked package
func TestNewStore(t *testing.T) {
	store := NewStore[int](8, 4)

	require.Equal(t, 8, store.ChunkSize())
	require.Equal(t, 0, store.Len())
	require.Equal(t, 1, store.Chunks())
}

// TestNewDefaultStore verifies the default store uses the package default chunk size
func TestNewDefaultStore(t *testing.T) {
	store := NewDefaultStore[string]()

	require.Equal(t, chunked.DefaultChunkSize, store.ChunkSize())
	require.Equal(t, 0, store.Len())
}

// TestStoreRoundTrip exercises the add/index/pointer flow end to end
func TestStoreRoundTrip(t *testing.T) {
	type node struct {
		name string
		next uint32
	}

	store := NewStore[node](2, 0)

	rootPtr, rootIdx := store.Add(node{name: "root"})
	childPtr, childIdx := store.Add(node{name: "child"})
	rootPtr.next = childIdx

	// Growth into further chunks must not disturb the linked records.
	for range 100 {
		store.Add(node{name: "filler"})
	}

	require.Same(t, rootPtr, store.At(rootIdx))
	require.Same(t, childPtr, store.At(childIdx))
	require.Equal(t, "child", store.At(store.At(rootIdx).next).name)
}

// TestNewInterner verifies construction and option validation through the wrapper
func TestNewInterner(t *testing.T) {
	table, err := NewInterner()
	require.NoError(t, err)
	require.Equal(t, 0, table.Len())

	_, err = NewInterner(intern.WithChunkSize(-1))
	require.ErrorIs(t, err, errs.ErrInvalidChunkSize)
}

// TestInternerRoundTrip exercises intern/resolve through the wrapper
func TestInternerRoundTrip(t *testing.T) {
	table, err := NewInterner(intern.WithCapacityHint(10))
	require.NoError(t, err)

	a := table.Intern("alpha")
	b := table.Intern("beta")

	require.NotEqual(t, a, b)
	require.Equal(t, a, table.Intern("alpha"))
	require.Equal(t, "alpha", table.Resolve(a))
	require.Equal(t, "beta", table.Resolve(b))
	require.Equal(t, 2, table.Len())
}

// TestViewConstructors verifies ownership flags and the single copy point
func TestViewConstructors(t *testing.T) {
	owned := Owned([]byte("owned"))
	require.True(t, owned.IsOwned())

	borrowed := Borrowed([]byte("borrowed"))
	require.False(t, borrowed.IsOwned())

	fromString := BorrowedString("from string")
	require.False(t, fromString.IsOwned())
	require.Equal(t, "from string", fromString.String())

	src := []byte("move me")
	v := Owned(src)
	got := v.IntoOwned()
	require.Same(t, &src[0], &got[0], "owned views must surrender their buffer without copying")
}
