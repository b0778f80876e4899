package seq

// Entries pairs each element with its zero-based position.
func (s *Seq[V]) Entries() *Seq[Pair[int, V]] {
	return Map(s, func(v V, index int) Pair[int, V] {
		return Pair[int, V]{First: index, Second: v}
	})
}

// Keys yields the zero-based position of each element, discarding the values.
func (s *Seq[V]) Keys() *Seq[int] {
	return Map(s, func(_ V, index int) int {
		return index
	})
}
