package seq

// NewStub wraps an iterator so tests can override parts of its behavior.
func NewStub[V any](src Iterator[V]) *Stub[V] {
	return &Stub[V]{
		Iterator:  src,
		StubNext:  src.Next,
		StubValue: src.Value,
	}
}

// Stub is a test double for the Iterator contract.
type Stub[V any] struct {
	Iterator  Iterator[V]
	StubNext  func() bool
	StubValue func() V
}

func (m *Stub[V]) Next() bool {
	return m.StubNext()
}

func (m *Stub[V]) Value() V {
	return m.StubValue()
}

// ResetNext restores the wrapped iterator's Next.
func (m *Stub[V]) ResetNext() {
	m.StubNext = m.Iterator.Next
}

// ResetValue restores the wrapped iterator's Value.
func (m *Stub[V]) ResetValue() {
	m.StubValue = m.Iterator.Value
}
