package seq

// Every reports whether no element of the Seq fails the selector.
// It stops pulling at the first failing element.
// An already exhausted Seq satisfies Every.
func (s *Seq[V]) Every(selector func(value V, index int) bool) bool {
	return s.FindIndex(Not(selector)) == -1
}

// Some reports whether any element of the Seq satisfies the selector.
// It stops pulling at the first satisfying element.
// An already exhausted Seq satisfies no selector.
func (s *Seq[V]) Some(selector func(value V, index int) bool) bool {
	_, found := s.Find(selector)
	return found
}
