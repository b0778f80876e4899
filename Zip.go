package seq

// Pair is a two element tuple, used by Zip and Entries.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip returns a lazy Seq pairing up the elements of the two sources,
// pulling one element from each per step.
// It exhausts as soon as either source does; the unconsumed tail of the
// longer source is discarded.
// The Seq takes ownership of both cursors.
func Zip[A, B any](a Iterator[A], b Iterator[B]) *Seq[Pair[A, B]] {
	return From[Pair[A, B]](&zipIter[A, B]{a: a, b: b})
}

type zipIter[A, B any] struct {
	a Iterator[A]
	b Iterator[B]

	value Pair[A, B]
}

func (i *zipIter[A, B]) Next() bool {
	if !i.a.Next() {
		return false
	}
	if !i.b.Next() {
		return false
	}

	i.value = Pair[A, B]{First: i.a.Value(), Second: i.b.Value()}
	return true
}

func (i *zipIter[A, B]) Value() Pair[A, B] {
	return i.value
}
