package seq

// ForEach drains the Seq, calling fn with each produced element and its
// zero-based position, in production order.
func (s *Seq[V]) ForEach(fn func(value V, index int)) {
	for index := 0; s.Next(); index++ {
		fn(s.Value(), index)
	}
}
