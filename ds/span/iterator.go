package span

import (
	"unsafe"

	"github.com/lennartvoelz/ds-and-algo/internal/assert"
)

// Iterator is a random-access cursor over contiguous storage. The zero value
// is a sentinel that references nothing and must not be dereferenced.
//
// An Iterator holds a valid address inside its storage and an element offset
// from it. The current position is base+pos, which may be the one-past-the-end
// sentinel; that address is compared and subtracted but never turned into a
// pointer.
//
// Nothing is bounds checked. Moving outside [begin, end] of the span the
// iterator came from, or comparing iterators over different storage for
// distance or order, is a contract violation.
type Iterator[T any] struct {
	base *T
	pos  int
}

func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// offset returns p advanced by n elements. Only call it with an in-bounds result.
func offset[T any](p *T, n int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(p), n*int(elemSize[T]())))
}

func (it Iterator[T]) addr() uintptr {
	return uintptr(unsafe.Pointer(it.base)) + uintptr(it.pos)*elemSize[T]()
}

// Ptr returns the address of the current element.
func (it Iterator[T]) Ptr() *T {
	if assert.Enabled {
		assert.True(it.base != nil, "dereference of a sentinel iterator")
	}
	return offset(it.base, it.pos)
}

// Value returns a copy of the current element.
func (it Iterator[T]) Value() T {
	return *it.Ptr()
}

// At returns the address of the element n positions away; it.At(n) is it.Add(n).Ptr().
func (it Iterator[T]) At(n int) *T {
	return it.Add(n).Ptr()
}

// Inc moves the iterator to the next element.
func (it *Iterator[T]) Inc() *Iterator[T] {
	it.pos++
	return it
}

// Dec moves the iterator to the previous element.
func (it *Iterator[T]) Dec() *Iterator[T] {
	it.pos--
	return it
}

// Advance moves the iterator n elements forward. n may be negative.
func (it *Iterator[T]) Advance(n int) *Iterator[T] {
	it.pos += n
	return it
}

// Retreat moves the iterator n elements backward.
func (it *Iterator[T]) Retreat(n int) *Iterator[T] {
	it.pos -= n
	return it
}

// Add returns a copy of the iterator advanced n elements.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.Advance(n)
	return it
}

// Sub returns a copy of the iterator moved n elements backward.
func (it Iterator[T]) Sub(n int) Iterator[T] {
	it.Retreat(n)
	return it
}

// Distance returns the signed number of elements from o to it, so that
// o.Add(it.Distance(o)) equals it.
func (it Iterator[T]) Distance(o Iterator[T]) int {
	size := elemSize[T]()
	if size == 0 {
		// Zero-sized elements share an address.
		return it.pos - o.pos
	}
	return (int(it.addr()) - int(o.addr())) / int(size)
}

// Equal reports whether both iterators reference the same position.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	if elemSize[T]() == 0 {
		return it.base == o.base && it.pos == o.pos
	}
	return it.addr() == o.addr()
}

// NotEqual reports whether the iterators reference different positions.
func (it Iterator[T]) NotEqual(o Iterator[T]) bool {
	return !it.Equal(o)
}

// Compare orders iterators by position: -1 if it comes before o, 0 if they
// are equal and +1 if it comes after.
func (it Iterator[T]) Compare(o Iterator[T]) int {
	switch d := it.Distance(o); {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	return 0
}

// Less reports whether it comes before o.
func (it Iterator[T]) Less(o Iterator[T]) bool {
	return it.Compare(o) < 0
}
