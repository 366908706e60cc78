package bytecast

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntoUint32(t *testing.T) {
	var out []uint32
	err := Into([]byte{1, 2, 3, 4, 5, 6, 7, 8}, &out)
	require.NoError(t, err)
	require.Equal(t, []uint32{67305985, 134678021}, out)
}

func TestIntoBool(t *testing.T) {
	var out []bool
	err := Into([]byte{0, 1, 2}, &out)
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, true}, out)
}

func TestIntoErrors(t *testing.T) {
	var out []uint32
	err := Into([]byte{1, 2, 3}, out) // needs pointer
	require.ErrorIs(t, err, ErrNotSlicePtr)

	var v uint32
	err = Into([]byte{1, 2, 3, 4}, &v) // not a slice
	require.ErrorIs(t, err, ErrNotSlicePtr)

	var strs []string
	err = Into([]byte{1, 2, 3, 4}, &strs)
	require.ErrorIs(t, err, ErrUnsupported)

	err = Into([]byte{1, 2, 3}, &out)
	var lerr *LengthError
	require.ErrorAs(t, err, &lerr)
	require.Equal(t, 3, lerr.Len)
	require.Equal(t, 4, lerr.Width)
	require.Nil(t, out)
}

func TestIntoMatchesGeneric(t *testing.T) {
	condition := func(vals []int16) bool {
		raw := Bytes(vals)
		want, err := ToSlice[int16](raw)
		require.NoError(t, err)
		var got []int16
		require.NoError(t, Into(raw, &got))
		return assert.ObjectsAreEqual(want, got)
	}
	err := quick.Check(condition, &quick.Config{})
	if err != nil {
		t.Errorf("Error: %v", err)
	}
}
