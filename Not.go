package seq

// Not returns a selector that negates the given selector,
// passing its arguments through unchanged.
func Not[V any](selector func(value V, index int) bool) func(V, int) bool {
	return func(v V, index int) bool {
		return !selector(v, index)
	}
}
