package zc

// Package zc contains opt-in zero-copy views over byte buffers. The safe
// bytecast API decodes into an owned slice; this package instead aliases the
// buffer memory directly, in native byte order, under unsafe lifetime
// assumptions: the caller must keep the buffer alive and unmodified for as
// long as the returned slice is in use.

import (
	"errors"
	"unsafe"

	"github.com/rawbytedev/bytecast"
)

// Options contains runtime flags controlling zero-copy behaviour.
type Options struct {
	// CheckAlignment enables a runtime alignment check before aliasing.
	CheckAlignment bool
}

var ErrMisaligned = errors.New("buffer not aligned for target type")

// Slice aliases b as a []T without copying. Element i shares memory with
// bytes [i*W, (i+1)*W) of b, interpreted in the host's native byte order.
// Length validation matches bytecast.ToSlice; with CheckAlignment set, a
// buffer whose start is not aligned for T is rejected instead of aliased.
func Slice[T bytecast.Fixed](b []byte, o Options) ([]T, error) {
	width := bytecast.Width[T]()
	if len(b)%width != 0 {
		return nil, &bytecast.LengthError{Len: len(b), Width: width}
	}
	if len(b) == 0 {
		return []T{}, nil
	}
	if o.CheckAlignment && uintptr(unsafe.Pointer(&b[0]))%uintptr(width) != 0 {
		return nil, ErrMisaligned
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), len(b)/width), nil
}

// Bytes aliases vals as a raw byte slice without copying, in native byte
// order. Same lifetime rules as Slice.
func Bytes[T bytecast.Fixed](vals []T) []byte {
	if len(vals) == 0 {
		return []byte{}
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&vals[0])), len(vals)*bytecast.Width[T]())
}
