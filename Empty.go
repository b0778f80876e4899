package seq

// Empty returns a Seq that is already exhausted.
// It can help achieve Null Object Pattern when no value is logically expected
// but a Seq should be returned.
// The result holds no state, so every Empty value behaves as the same
// shared constant.
func Empty[V any]() *Seq[V] {
	return From[V](emptyIter[V]{})
}

type emptyIter[V any] struct{}

func (emptyIter[V]) Next() bool {
	return false
}

func (emptyIter[V]) Value() V {
	var v V
	return v
}
