package bytecast

import (
	"errors"
	"fmt"
)

var (
	ErrNotSlicePtr = errors.New("expected pointer to slice")
	ErrUnsupported = errors.New("unsupported element type")
)

// LengthError reports a buffer whose length is not an exact multiple of the
// target type's byte width.
type LengthError struct {
	Len   int // offending buffer length
	Width int // required byte width
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("buffer length %d is not a multiple of %d", e.Len, e.Width)
}
