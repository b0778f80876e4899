package seq

// Item is one argument of a concatenation: either a wrapped sequence or a
// bare value standing in for a one element sequence.
// Which one it is gets resolved to a cursor only when the concatenation
// reaches it.
type Item[V any] struct {
	src     Iterator[V]
	value   V
	wrapped bool
}

// Wrap marks an iterator as a concatenation argument.
// The concatenation takes ownership of the iterator.
func Wrap[V any](src Iterator[V]) Item[V] {
	return Item[V]{src: src, wrapped: true}
}

// Val marks a bare value as a concatenation argument,
// treated as a one element sequence.
func Val[V any](v V) Item[V] {
	return Item[V]{value: v}
}

func (it Item[V]) cursor() Iterator[V] {
	if it.wrapped {
		return it.src
	}
	return &singleIter[V]{value: it.value}
}

// Concat returns a lazy Seq that drains each item in argument order,
// advancing to the next item as the current one exhausts.
// With no items it behaves as Empty.
func Concat[V any](items ...Item[V]) *Seq[V] {
	if len(items) == 0 {
		return Empty[V]()
	}
	return From[V](&concatIter[V]{items: items})
}

// Concat is the static Concat with the receiver prepended.
func (s *Seq[V]) Concat(items ...Item[V]) *Seq[V] {
	return Concat(append([]Item[V]{Wrap[V](s)}, items...)...)
}

type concatIter[V any] struct {
	items []Item[V]
	cur   Iterator[V]
}

func (i *concatIter[V]) Next() bool {
	for {
		if i.cur == nil {
			if len(i.items) == 0 {
				return false
			}
			i.cur = i.items[0].cursor()
			i.items = i.items[1:]
		}

		if i.cur.Next() {
			return true
		}
		i.cur = nil
	}
}

func (i *concatIter[V]) Value() V {
	return i.cur.Value()
}

// singleIter ensures Next can only succeed once.
type singleIter[V any] struct {
	value V
	index int
}

func (i *singleIter[V]) Next() bool {
	if i.index == 0 {
		i.index++
		return true
	}
	return false
}

func (i *singleIter[V]) Value() V {
	return i.value
}
