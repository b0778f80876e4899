package seq

// Includes drains the Seq until an element at position >= fromIndex matches
// the target under SameValue, and reports whether one was found.
// Omitting fromIndex means no lower bound.
func Includes[V comparable](s *Seq[V], target V, fromIndex ...int) bool {
	var from int
	if 0 < len(fromIndex) {
		from = fromIndex[0]
	}

	for index := 0; s.Next(); index++ {
		if from <= index && SameValue(s.Value(), target) {
			return true
		}
	}
	return false
}

// SameValue reports whether the two values are identical under ==,
// with the exception that a floating point NaN compares equal to itself.
func SameValue[V comparable](a, b V) bool {
	if a == b {
		return true
	}
	return isNaN(a) && isNaN(b)
}

func isNaN[V comparable](v V) bool {
	switch n := any(v).(type) {
	case float64:
		return n != n
	case float32:
		return n != n
	default:
		return false
	}
}
