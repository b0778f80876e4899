package seq

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
//
// The transformation is lazy: transform runs exactly once per element,
// at the moment that element is pulled downstream, never ahead of it.
// The index counts produced elements of the source, starting at 0.
func Map[V, U any](s *Seq[V], transform func(value V, index int) U) *Seq[U] {
	return From[U](&mapIter[V, U]{src: s, transform: transform})
}

type mapIter[V, U any] struct {
	src       Iterator[V]
	transform func(V, int) U

	index int
	value U
}

func (i *mapIter[V, U]) Next() bool {
	if !i.src.Next() {
		return false
	}

	i.value = i.transform(i.src.Value(), i.index)
	i.index++
	return true
}

func (i *mapIter[V, U]) Value() U {
	return i.value
}
