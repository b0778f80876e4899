package seq

// Find drains the Seq until the first element satisfying the selector and
// returns it. The boolean reports whether such an element was found before
// exhaustion. The remaining tail of the Seq is left unconsumed.
func (s *Seq[V]) Find(selector func(value V, index int) bool) (V, bool) {
	for index := 0; s.Next(); index++ {
		if v := s.Value(); selector(v, index) {
			return v, true
		}
	}
	var v V
	return v, false
}

// FindIndex is Find returning the position of the first match, or -1.
func (s *Seq[V]) FindIndex(selector func(value V, index int) bool) int {
	for index := 0; s.Next(); index++ {
		if selector(s.Value(), index) {
			return index
		}
	}
	return -1
}
