package seq

type sliceIter[V any] struct {
	slice []V

	index int
	value V
}

func (i *sliceIter[V]) Next() bool {
	if len(i.slice) <= i.index {
		return false
	}

	i.value = i.slice[i.index]
	i.index++
	return true
}

func (i *sliceIter[V]) Value() V {
	return i.value
}
