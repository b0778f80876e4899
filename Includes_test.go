package seq_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	seq "github.com/yever/go-seq"
)

func TestIncludes(t *testing.T) {
	t.Parallel()

	t.Run("true when the target is present", func(t *testing.T) {
		t.Parallel()

		require.True(t, seq.Includes(seq.Of(1, 2, 3), 2))
	})

	t.Run("false when the target is absent", func(t *testing.T) {
		t.Parallel()

		require.False(t, seq.Includes(seq.Of(1, 2, 3), 9))
	})

	t.Run("matches NaN against itself", func(t *testing.T) {
		t.Parallel()

		nan := math.NaN()

		require.True(t, seq.Includes(seq.Of(1.0, nan, 3.0), nan))
	})

	t.Run("fromIndex skips earlier occurrences", func(t *testing.T) {
		t.Parallel()

		require.False(t, seq.Includes(seq.Of("a", "b", "c"), "a", 1))
		require.True(t, seq.Includes(seq.Of("a", "b", "a"), "a", 1))
	})

	t.Run("stops pulling at the first match", func(t *testing.T) {
		t.Parallel()

		var pulls int
		src := seq.NewStub[int](seq.Of(7, 8, 9))
		src.StubNext = func() bool {
			pulls++
			return src.Iterator.Next()
		}

		require.True(t, seq.Includes(seq.From[int](src), 8))
		require.Equal(t, 2, pulls)
	})
}

func TestSameValue(t *testing.T) {
	t.Parallel()

	require.True(t, seq.SameValue(42, 42))
	require.False(t, seq.SameValue(42, 43))

	require.True(t, seq.SameValue(math.NaN(), math.NaN()))
	require.True(t, seq.SameValue(float32(math.NaN()), float32(math.NaN())))
	require.False(t, seq.SameValue(math.NaN(), 1.0))
}
