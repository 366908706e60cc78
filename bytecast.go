package bytecast

import (
	"encoding/binary"
	"math"
)

// Fixed is the set of fixed-width numeric types the conversions operate on.
type Fixed interface {
	int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Width returns the byte width of T.
func Width[T Fixed]() int {
	var v T
	switch any(v).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	case int64, uint64, float64:
		return 8
	default:
		panic("not fixed")
	}
}

// ToSlice decodes b into an owned []T, reading non-overlapping chunks of
// Width[T]() bytes in little-endian order. Element i always decodes bytes
// [i*W, (i+1)*W). The buffer is not retained; an empty buffer yields an
// empty slice. If len(b) is not a multiple of the width, ToSlice returns
// a *LengthError and no partial result.
func ToSlice[T Fixed](b []byte) ([]T, error) {
	width := Width[T]()
	if len(b)%width != 0 {
		return nil, &LengthError{Len: len(b), Width: width}
	}
	out := make([]T, len(b)/width)
	for i := range out {
		out[i] = decodeFixed[T](b[i*width:])
	}
	return out, nil
}

// Append appends the little-endian encoding of vals to dst and returns the
// extended buffer. Inverse of ToSlice.
func Append[T Fixed](dst []byte, vals []T) []byte {
	for _, v := range vals {
		dst = appendFixed(dst, v)
	}
	return dst
}

// Bytes encodes vals into a fresh little-endian buffer of exactly
// len(vals)*Width[T]() bytes.
func Bytes[T Fixed](vals []T) []byte {
	return Append(make([]byte, 0, len(vals)*Width[T]()), vals)
}

func decodeFixed[T Fixed](b []byte) T {
	var v T
	switch p := any(&v).(type) {
	case *int8:
		*p = int8(b[0])
	case *uint8:
		*p = b[0]
	case *int16:
		*p = int16(binary.LittleEndian.Uint16(b))
	case *uint16:
		*p = binary.LittleEndian.Uint16(b)
	case *int32:
		*p = int32(binary.LittleEndian.Uint32(b))
	case *uint32:
		*p = binary.LittleEndian.Uint32(b)
	case *int64:
		*p = int64(binary.LittleEndian.Uint64(b))
	case *uint64:
		*p = binary.LittleEndian.Uint64(b)
	case *float32:
		*p = math.Float32frombits(binary.LittleEndian.Uint32(b))
	case *float64:
		*p = math.Float64frombits(binary.LittleEndian.Uint64(b))
	}
	return v
}

func appendFixed[T Fixed](dst []byte, v T) []byte {
	switch x := any(v).(type) {
	case int8:
		return append(dst, byte(x))
	case uint8:
		return append(dst, x)
	case int16:
		return binary.LittleEndian.AppendUint16(dst, uint16(x))
	case uint16:
		return binary.LittleEndian.AppendUint16(dst, x)
	case int32:
		return binary.LittleEndian.AppendUint32(dst, uint32(x))
	case uint32:
		return binary.LittleEndian.AppendUint32(dst, x)
	case int64:
		return binary.LittleEndian.AppendUint64(dst, uint64(x))
	case uint64:
		return binary.LittleEndian.AppendUint64(dst, x)
	case float32:
		return binary.LittleEndian.AppendUint32(dst, math.Float32bits(x))
	case float64:
		return binary.LittleEndian.AppendUint64(dst, math.Float64bits(x))
	default:
		panic("not fixed")
	}
}
