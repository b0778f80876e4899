package seq

import (
	"fmt"
	"strings"
)

// Join drains the Seq and concatenates the textual form of its elements
// with the given separator between them.
func (s *Seq[V]) Join(sep string) string {
	var parts []string
	for s.Next() {
		parts = append(parts, fmt.Sprint(s.Value()))
	}
	return strings.Join(parts, sep)
}

// String implements fmt.Stringer as Join with a comma separator.
// Like Join, it consumes the Seq.
func (s *Seq[V]) String() string {
	return s.Join(",")
}
