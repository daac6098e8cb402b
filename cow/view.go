// Package cow provides View, a byte view that either borrows its storage or
// owns it, with a single explicit copy point.
//
// A View created with Borrowed or BorrowedString aliases storage owned by the
// caller: no allocation, no copy. A View created with Owned carries its own
// buffer. Both flavors expose the same read accessors, so code that only
// inspects bytes never needs to know which flavor it holds. Code that must
// outlive the source calls IntoOwned, which is the only place in the package
// where bytes are copied, and then only for borrowed views.
//
// The package copies nothing else and never writes through a view's bytes.
package cow

import (
	"github.com/lumanik/slab/internal/zerocopy"
)

// View is a byte sequence backed either by borrowed or by owned storage.
//
// The zero View is an empty borrowed view and is ready to use. Views are
// plain values and may be passed around freely; copying a View copies only
// the (pointer, length, flag) header, never the underlying bytes. The only
// caution is that after IntoOwned consumes a view, other copies of that
// view made earlier still alias the surrendered buffer.
//
// Lifetime contract: a borrowed View is valid while its source is alive and
// unmutated. The caller of Owned must not retain or mutate the buffer it
// handed over. View itself never mutates the bytes it holds.
type View struct {
	data  []byte
	owned bool
}

// Owned wraps buf in a View that owns it. The caller transfers the buffer:
// it must not retain, mutate, or reuse buf afterwards.
func Owned(buf []byte) View {
	return View{data: buf, owned: true}
}

// Borrowed wraps buf in a View that aliases it without copying. The caller
// keeps ownership and must keep buf alive and unmutated for as long as the
// View (or any string or slice obtained from it) is in use.
func Borrowed(buf []byte) View {
	return View{data: buf}
}

// BorrowedString wraps s in a View that aliases the string's bytes without
// copying. Safe because a View never writes through its data.
func BorrowedString(s string) View {
	return View{data: zerocopy.Bytes(s)}
}

// IsOwned reports whether the view owns its storage.
func (v View) IsOwned() bool {
	return v.owned
}

// Bytes returns the viewed bytes without copying. The result aliases the
// view's storage: treat it as read-only, and do not use it past the
// lifetime of a borrowed view's source.
func (v View) Bytes() []byte {
	return v.data
}

// String returns the viewed bytes as a string without copying. The result
// aliases the view's storage and shares its lifetime contract; callers that
// need a string outliving the source should go through IntoOwned.
func (v View) String() string {
	return zerocopy.String(v.data)
}

// Len returns the number of bytes in the view.
func (v View) Len() int {
	return len(v.data)
}

// IntoOwned consumes the view and returns a buffer the caller owns.
//
// An owned view surrenders its buffer as-is: no allocation, no copy. A
// borrowed view is cloned, which is the only copy this package ever makes.
// Either way the view is reset to the empty borrowed state and must not be
// used for the old contents afterwards.
func (v *View) IntoOwned() []byte {
	data := v.data
	owned := v.owned
	*v = View{}

	if owned {
		return data
	}

	return append([]byte(nil), data...)
}
