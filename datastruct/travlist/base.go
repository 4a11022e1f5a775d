package travlist

import "iter"

// base carries the capacity and forwards the secondary operations to the
// generic algorithms, with self pointing at the embedding store.
type base[E any] struct {
	self     TravList[E]
	capacity int
}

func newBase[E any](self TravList[E], capacity int) base[E] {
	if capacity <= 0 {
		panic("travlist: capacity must be positive")
	}
	return base[E]{self: self, capacity: capacity}
}

func (b *base[E]) Capacity() int {
	return b.capacity
}

func (b *base[E]) Replace(e E) (E, error) {
	return Replace[E](b.self, e)
}

func (b *base[E]) Reverse() error {
	return Reverse(b.self)
}

func (b *base[E]) Splice(that TravList[E]) error {
	return Splice(b.self, that)
}

func (b *base[E]) SwapRights(that TravList[E]) error {
	return SwapRights(b.self, that)
}

func (b *base[E]) ListIterator() *ListIterator[E] {
	return NewListIterator[E](b.self)
}

func (b *base[E]) Iterator() *RightIterator[E] {
	return NewRightIterator[E](b.self)
}

func (b *base[E]) All() iter.Seq[E] {
	return All[E](b.self)
}

func (b *base[E]) String() string {
	return Format(b.self)
}
