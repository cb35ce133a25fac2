package span_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lennartvoelz/ds-and-algo/ds/span"
)

func TestSliceRange(t *testing.T) {
	arr := [4]int{1, 2, 3, 4}
	r := span.Slice[int](arr[:])

	assert.Equal(t, 4, r.Len())
	assert.Same(t, &arr[0], r.Data())
	assert.Equal(t, 4, r.End().Distance(r.Begin()))
	assert.Same(t, &arr[3], r.End().Sub(1).Ptr())

	var nilRange span.Slice[int]
	assert.Equal(t, 0, nilRange.Len())
	assert.Nil(t, nilRange.Data())
	assert.True(t, nilRange.Begin().Equal(nilRange.End()))
}

func TestRangeSources(t *testing.T) {
	arr := [3]int{1, 2, 3}
	dynamic := span.Of(arr[:])
	fixed := span.MustFromSlice[span.N3](arr[:])

	sources := []struct {
		name string
		r    span.ContiguousRange[int]
	}{
		{name: "Array", r: span.Slice[int](arr[:])},
		{name: "DynamicSpan", r: dynamic},
		{name: "StaticSpan", r: fixed},
	}

	for _, tt := range sources {
		t.Run(tt.name, func(t *testing.T) {
			s, err := span.FromRange[span.N3](tt.r)
			assert.NoError(t, err)
			assert.Same(t, &arr[0], s.Data())
			assert.True(t, s.End().Equal(tt.r.End()))
		})
	}
}
