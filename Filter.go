package seq

// Filter returns a lazy Seq of the elements the selector allows,
// in their original relative order.
//
// The index passed to the selector counts every examined source element,
// including the discarded ones, matching array filter semantics.
func (s *Seq[V]) Filter(selector func(value V, index int) bool) *Seq[V] {
	return From[V](&filterIter[V]{src: s, match: selector})
}

type filterIter[V any] struct {
	src   Iterator[V]
	match func(V, int) bool

	index int
	value V
}

func (i *filterIter[V]) Next() bool {
	for i.src.Next() {
		v, index := i.src.Value(), i.index
		i.index++

		if i.match(v, index) {
			i.value = v
			return true
		}
	}
	return false
}

func (i *filterIter[V]) Value() V {
	return i.value
}
