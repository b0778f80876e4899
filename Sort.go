package seq

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Sorted drains the Seq, sorts the elements into ascending natural order
// and returns a fresh Seq over the result.
// Unlike the lazy operations, this requires full materialization.
func Sorted[V constraints.Ordered](s *Seq[V]) *Seq[V] {
	vs := s.Collect()
	slices.Sort(vs)
	return FromSlice(vs)
}

// SortFunc is Sorted with a three-way comparator:
// cmp must return a negative number when a sorts before b,
// a positive number when a sorts after b, and zero otherwise.
func (s *Seq[V]) SortFunc(cmp func(a, b V) int) *Seq[V] {
	vs := s.Collect()
	slices.SortFunc(vs, cmp)
	return FromSlice(vs)
}

// Reverse drains the Seq and returns a fresh Seq over the elements
// in reverse production order. Eager, like Sorted.
func (s *Seq[V]) Reverse() *Seq[V] {
	vs := s.Collect()
	slices.Reverse(vs)
	return FromSlice(vs)
}
