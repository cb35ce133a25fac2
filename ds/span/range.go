package span

import "unsafe"

// ContiguousRange is anything that exposes its elements as one gapless block
// of memory: Data points at element 0, elements [0, Len()) follow it, and
// Begin and End bound the same elements.
type ContiguousRange[T any] interface {
	Data() *T
	Len() int
	Begin() Iterator[T]
	End() Iterator[T]
}

var (
	_ ContiguousRange[int] = Slice[int](nil)
	_ ContiguousRange[int] = Span[int, Dynamic]{}
	_ ContiguousRange[int] = Span[int, N4]{}
)

// Slice adapts a Go slice, or an array via arr[:], to ContiguousRange.
type Slice[T any] []T

func (s Slice[T]) Data() *T {
	return unsafe.SliceData(s)
}

func (s Slice[T]) Len() int {
	return len(s)
}

func (s Slice[T]) Begin() Iterator[T] {
	return Iterator[T]{base: unsafe.SliceData(s)}
}

func (s Slice[T]) End() Iterator[T] {
	return Iterator[T]{base: unsafe.SliceData(s), pos: len(s)}
}
