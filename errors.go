package seq

// Error is an implementation for the error interface that allow you to declare exported globals with the `const` keyword.
type Error string

// Error implement the error interface
func (err Error) Error() string { return string(err) }

const (
	// ErrEmptyReduction is returned when Reduce is called without an initial
	// value on a Seq that is already exhausted.
	ErrEmptyReduction Error = "EmptyReduction"
)
