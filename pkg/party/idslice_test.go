package party

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeIDs(t *testing.T) {
	ids := RangeIDs(4)
	assert.True(t, ids.Sorted())
	assert.Equal(t, 4, ids.Len())
	for i := 0; i < 4; i++ {
		assert.True(t, ids.Contains(ID(i)))
		assert.Equal(t, i, ids.GetIndex(ID(i)))
	}
	assert.False(t, ids.Contains(ID(4)))
	assert.Equal(t, -1, ids.GetIndex(ID(4)))
}

func TestSorted(t *testing.T) {
	assert.True(t, IDSlice{0, 1, 5}.Sorted())
	assert.False(t, IDSlice{1, 0}.Sorted())
	assert.False(t, IDSlice{1, 1}.Sorted(), "duplicates are invalid")

	shuffled := IDSlice{3, 0, 2}
	cp := shuffled.Copy()
	assert.True(t, cp.Sorted())
	assert.Equal(t, IDSlice{3, 0, 2}, shuffled, "copy must not reorder the original")
}

func TestIDBytesRoundTrip(t *testing.T) {
	for _, id := range []ID{0, 1, 255, MAX} {
		assert.Equal(t, id, FromBytes(id.Bytes()))
	}
}
