package seq

// From returns a Seq that owns the given iterator.
// The iterator must not be used by anyone else afterwards;
// a Seq assumes exclusive access to the cursor it was given.
// Construction is lazy, the source is not touched until the first Next.
func From[V any](src Iterator[V]) *Seq[V] {
	return &Seq[V]{src: src}
}

// FromSlice returns a Seq over the elements of the given slice, in order.
func FromSlice[V any](vs []V) *Seq[V] {
	return From[V](&sliceIter[V]{slice: vs})
}

// Of returns a Seq over exactly the given values, in the given order.
func Of[V any](vs ...V) *Seq[V] {
	return FromSlice(vs)
}

// Seq is a lazy, single-pass sequence of values.
//
// A Seq owns exactly one upstream iterator for its whole lifetime and is
// itself an Iterator, so it can be consumed directly or handed to any
// operation of this package, including the constructors.
// Once exhausted it stays exhausted: re-draining a spent Seq yields nothing,
// even if the underlying cursor misbehaves and starts producing again.
type Seq[V any] struct {
	src  Iterator[V]
	cur  V
	done bool
}

// Next pulls the next element from the owned cursor.
func (s *Seq[V]) Next() bool {
	if s.done {
		return false
	}
	if !s.src.Next() {
		s.done = true
		return false
	}
	s.cur = s.src.Value()
	return true
}

// Value returns the element produced by the last successful Next.
func (s *Seq[V]) Value() V {
	return s.cur
}

// Iterate returns the Seq's own cursor, which is the Seq itself.
func (s *Seq[V]) Iterate() Iterator[V] {
	return s
}

// Values is the identity view of the Seq.
func (s *Seq[V]) Values() *Seq[V] {
	return s
}

// Collect drains the Seq into a slice.
func (s *Seq[V]) Collect() []V {
	var vs []V
	for s.Next() {
		vs = append(vs, s.Value())
	}
	return vs
}
