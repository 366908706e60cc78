package bytecast

import (
	"reflect"

	"github.com/rawbytedev/bytecast/internal/common"
)

// Into decodes data into *out, where out is a pointer to a slice of any
// fixed-size primitive (including bool). It is the runtime-dispatch
// counterpart of ToSlice for callers that don't know the element type at
// compile time. Same little-endian chunk rule, same length check.
func Into(data []byte, out any) error {
	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Slice {
		return ErrNotSlicePtr
	}
	dst := v.Elem()
	k := dst.Type().Elem().Kind()
	if !common.IsFixedKind(k) {
		return ErrUnsupported
	}
	width := common.FixedSize(k)
	if len(data)%width != 0 {
		return &LengthError{Len: len(data), Width: width}
	}
	n := len(data) / width
	slice := reflect.MakeSlice(dst.Type(), n, n)
	for i := 0; i < n; i++ {
		common.SetFixed(slice.Index(i), data[i*width:(i+1)*width], k)
	}
	dst.Set(slice)
	return nil
}
