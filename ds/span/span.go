// Package span provides Span, a non-owning view over contiguous storage, and
// Iterator, a random-access cursor over it.
//
// A span never allocates, copies elements or frees the memory it points at.
// It is only valid while the storage it was built from is alive and has not
// moved; appending to a slice that reallocates leaves the span dangling.
// Indexing and iterator arithmetic are unchecked. Build with the spancheck
// tag to turn preconditions into assertions.
package span

import (
	"fmt"
	"iter"
	"unsafe"

	"github.com/samber/mo"

	"github.com/lennartvoelz/ds-and-algo/internal/assert"
)

// Span is a borrowed view of contiguous elements of type T. E is Dynamic for
// a length chosen at run time, or a static extent such as N3 whose length is
// part of the type and occupies no memory.
//
// The zero value of a static span is not a view: it reports the extent's
// length over a nil base. Use a span returned with an error only to check
// that error.
type Span[T any, E Extent] struct {
	// ext comes first: a trailing zero-sized field would be padded.
	ext E
	ptr *T
}

func newSpan[E Extent, T any](ptr *T, n int) Span[T, E] {
	s := Span[T, E]{ptr: ptr}
	if d, ok := any(&s.ext).(*Dynamic); ok {
		d.n = n
	} else if assert.Enabled {
		assert.True(n == s.ext.Len(), "span of static extent %d built from %d elements", s.ext.Len(), n)
	}
	return s
}

// FromCount returns a span over count elements starting at first. The
// elements must be live and contiguous; this is not checked.
func FromCount[E Extent, T any](first Iterator[T], count int) Span[T, E] {
	if assert.Enabled {
		assert.True(count >= 0, "negative span length %d", count)
	}
	if count == 0 {
		return newSpan[E, T](nil, 0)
	}
	return newSpan[E](first.Ptr(), count)
}

// FromIterators returns a span over [first, last). Both iterators must
// reference the same storage with last not before first.
func FromIterators[E Extent, T any](first, last Iterator[T]) Span[T, E] {
	return FromCount[E](first, last.Distance(first))
}

// FromIterator returns a span over the E.Len() elements starting at first.
// It is only defined for static extents, which supply the length.
func FromIterator[E StaticExtent, T any](first Iterator[T]) Span[T, E] {
	var e E
	return FromCount[E](first, e.Len())
}

// FromRange returns a span over r. A dynamic span takes the length of r.
// A static span covers the first E.Len() elements and fails with
// ErrLengthMismatch if r is shorter than that.
func FromRange[E Extent, T any](r ContiguousRange[T]) (Span[T, E], error) {
	n := r.Len()
	var e E
	if _, ok := any(e).(StaticExtent); ok {
		if n < e.Len() {
			return Span[T, E]{}, fmt.Errorf("%w: range has %d elements, extent is %d", ErrLengthMismatch, n, e.Len())
		}
		n = e.Len()
	}
	return newSpan[E](r.Data(), n), nil
}

// MustFromRange is like FromRange but panics if the span cannot be built.
func MustFromRange[E Extent, T any](r ContiguousRange[T]) Span[T, E] {
	s, err := FromRange[E](r)
	if err != nil {
		panic(err)
	}
	return s
}

// FromSlice returns a span over the elements of s. See FromRange.
func FromSlice[E Extent, T any](s []T) (Span[T, E], error) {
	return FromRange[E, T](Slice[T](s))
}

// MustFromSlice is like FromSlice but panics if the span cannot be built.
func MustFromSlice[E Extent, T any](s []T) Span[T, E] {
	return MustFromRange[E, T](Slice[T](s))
}

// Of returns a dynamic span over s.
func Of[T any](s []T) Span[T, Dynamic] {
	return newSpan[Dynamic](unsafe.SliceData(s), len(s))
}

// Len returns the number of elements in the span. For a static extent this
// is the constant from the type.
func (s Span[T, E]) Len() int {
	return s.ext.Len()
}

// Empty reports whether the span has no elements.
func (s Span[T, E]) Empty() bool {
	return s.Len() == 0
}

// Extent returns the compile-time length of the span, or None if the span
// has a dynamic extent.
func (s Span[T, E]) Extent() mo.Option[int] {
	if _, ok := any(s.ext).(StaticExtent); ok {
		return mo.Some(s.ext.Len())
	}
	return mo.None[int]()
}

// Data returns the address of the first element. It may be nil only when
// the span is empty.
func (s Span[T, E]) Data() *T {
	return s.ptr
}

// At returns the address of element i. i must be in [0, Len()).
func (s Span[T, E]) At(i int) *T {
	if assert.Enabled {
		assert.True(i >= 0 && i < s.Len(), "index %d out of range [0, %d)", i, s.Len())
	}
	return offset(s.ptr, i)
}

// Front returns the address of the first element of a non-empty span.
func (s Span[T, E]) Front() *T {
	return s.At(0)
}

// Back returns the address of the last element of a non-empty span.
func (s Span[T, E]) Back() *T {
	return s.At(s.Len() - 1)
}

// Begin returns an iterator at the first element.
func (s Span[T, E]) Begin() Iterator[T] {
	return Iterator[T]{base: s.ptr}
}

// End returns the one-past-the-last sentinel. It must not be dereferenced.
func (s Span[T, E]) End() Iterator[T] {
	return Iterator[T]{base: s.ptr, pos: s.Len()}
}

// All yields the index and address of each element in order.
func (s Span[T, E]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < s.Len(); i++ {
			if !yield(i, offset(s.ptr, i)) {
				return
			}
		}
	}
}

// Values yields a copy of each element in order.
func (s Span[T, E]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.Len(); i++ {
			if !yield(*offset(s.ptr, i)) {
				return
			}
		}
	}
}

// Slice returns the viewed elements as a slice sharing the same memory, for
// use with the slices and sort packages. Its capacity equals its length.
func (s Span[T, E]) Slice() []T {
	if s.ptr == nil {
		return nil
	}
	return unsafe.Slice(s.ptr, s.Len())
}
