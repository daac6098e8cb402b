package zerocopy

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	b := []byte("hello world")

	s := String(b)

	require.Equal(t, "hello world", s)
	// The string aliases b's backing array rather than copying it.
	require.Equal(t, unsafe.Pointer(&b[0]), unsafe.Pointer(unsafe.StringData(s)))
}

func TestString_Empty(t *testing.T) {
	require.Equal(t, "", String(nil))
	require.Equal(t, "", String([]byte{}))
}

func TestBytes(t *testing.T) {
	s := "hello world"

	b := Bytes(s)

	require.Equal(t, []byte("hello world"), b)
	require.Equal(t, len(s), cap(b))
	// The slice aliases the string's backing array rather than copying it.
	require.Equal(t, unsafe.Pointer(unsafe.StringData(s)), unsafe.Pointer(&b[0]))
}

func TestBytes_Empty(t *testing.T) {
	require.Nil(t, Bytes(""))
}

func TestRoundTrip(t *testing.T) {
	orig := "round trip payload"

	b := Bytes(orig)
	s := String(b)

	require.Equal(t, orig, s)
	require.Equal(t, unsafe.Pointer(unsafe.StringData(orig)), unsafe.Pointer(unsafe.StringData(s)))
}
