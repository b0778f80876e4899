package seq

// Init returns a lazy Seq of initializer(0) .. initializer(count-1), in order.
// A count of zero or less behaves as Empty.
func Init[V any](count int, initializer func(index int) V) *Seq[V] {
	return From[V](&initIter[V]{count: count, initializer: initializer})
}

// Range is Init without an initializer: the integers 0 .. count-1.
func Range(count int) *Seq[int] {
	return Init(count, identity)
}

// InitInfinite returns an unbounded lazy Seq of initializer(0), initializer(1), …
// It never exhausts; draining it without a bounding operation such as
// Find or FindIndex does not terminate.
func InitInfinite[V any](initializer func(index int) V) *Seq[V] {
	return From[V](&initIter[V]{count: -1, initializer: initializer})
}

// Naturals is InitInfinite without an initializer: 0, 1, 2, …
func Naturals() *Seq[int] {
	return InitInfinite(identity)
}

func identity(index int) int { return index }

// initIter counts upwards; a negative count means unbounded.
type initIter[V any] struct {
	count       int
	initializer func(int) V

	index int
	value V
}

func (i *initIter[V]) Next() bool {
	if 0 <= i.count && i.count <= i.index {
		return false
	}

	i.value = i.initializer(i.index)
	i.index++
	return true
}

func (i *initIter[V]) Value() V {
	return i.value
}
