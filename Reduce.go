package seq

// Reduce folds the Seq left to right in production order,
// seeding the accumulator with initial.
// The index passed to blk is the position of the element being folded in.
func Reduce[V, R any](s *Seq[V], initial R, blk func(result R, value V, index int) R) R {
	result := initial
	for index := 0; s.Next(); index++ {
		result = blk(result, s.Value(), index)
	}
	return result
}

// Reduce folds the Seq left to right without an initial value:
// the first element seeds the accumulator and folding starts from the second,
// so a one element Seq returns that element without ever calling blk.
// On an already exhausted Seq it returns ErrEmptyReduction.
func (s *Seq[V]) Reduce(blk func(result V, value V, index int) V) (V, error) {
	if !s.Next() {
		var v V
		return v, ErrEmptyReduction
	}

	result := s.Value()
	for index := 1; s.Next(); index++ {
		result = blk(result, s.Value(), index)
	}
	return result, nil
}
