package span

// Extent describes how many elements a Span covers. Dynamic carries the
// length at run time; static extents are zero-sized tag types whose Len
// returns a constant, so the length lives in the type and nowhere else.
//
// The set is closed: an extent is Dynamic or a type embedding Static.
type Extent interface {
	Len() int
	extent()
}

// StaticExtent is satisfied only by types that embed Static. Constructors
// that cannot know a length on their own (FromIterator) require it.
type StaticExtent interface {
	Extent
	static()
}

// Dynamic is the extent of a span whose length is chosen at construction.
type Dynamic struct {
	n int
}

func (d Dynamic) Len() int {
	return d.n
}

func (Dynamic) extent() {}

// Static marks an extent as fixed at compile time. Embed it in a zero-sized
// struct and give that struct a Len method returning the constant:
//
//	type N5 struct{ span.Static }
//
//	func (N5) Len() int { return 5 }
type Static struct{}

func (Static) extent() {}
func (Static) static() {}

type (
	N1  struct{ Static }
	N2  struct{ Static }
	N3  struct{ Static }
	N4  struct{ Static }
	N5  struct{ Static }
	N6  struct{ Static }
	N7  struct{ Static }
	N8  struct{ Static }
	N16 struct{ Static }
	N32 struct{ Static }
	N64 struct{ Static }
)

func (N1) Len() int  { return 1 }
func (N2) Len() int  { return 2 }
func (N3) Len() int  { return 3 }
func (N4) Len() int  { return 4 }
func (N5) Len() int  { return 5 }
func (N6) Len() int  { return 6 }
func (N7) Len() int  { return 7 }
func (N8) Len() int  { return 8 }
func (N16) Len() int { return 16 }
func (N32) Len() int { return 32 }
func (N64) Len() int { return 64 }

// IsStatic reports whether E is a compile-time extent.
func IsStatic[E Extent]() bool {
	var e E
	_, ok := any(e).(StaticExtent)
	return ok
}
