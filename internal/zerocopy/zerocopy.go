// Package zerocopy converts between strings and byte slices without copying.
//
// Both directions alias the same backing memory, so the usual string
// immutability guarantee is traded away: the caller must ensure the bytes
// are never mutated while an aliased string is reachable. All call sites
// in this module are read-only over the aliased data.
package zerocopy

import "unsafe"

// String returns a string aliasing b without copying.
//
// The returned string shares b's backing array. It stays valid only while
// b is alive, and b must not be mutated while the string is in use.
func String(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	return unsafe.String(&b[0], len(b))
}

// Bytes returns a byte slice aliasing s without copying.
//
// The returned slice shares the string's backing array and must be treated
// as read-only; writing through it is undefined behavior.
func Bytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}

	return unsafe.Slice(unsafe.StringData(s), len(s))
}
