package seq_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	seq "github.com/yever/go-seq"
)

func TestFind(t *testing.T) {
	t.Parallel()

	t.Run("returns the first satisfying element", func(t *testing.T) {
		t.Parallel()

		v, found := seq.Of(1, 3, 4, 6).Find(func(n, _ int) bool { return n%2 == 0 })

		require.True(t, found)
		require.Equal(t, 4, v)
	})

	t.Run("reports absence after exhaustion without a match", func(t *testing.T) {
		t.Parallel()

		v, found := seq.Of(1, 3, 5).Find(func(n, _ int) bool { return n%2 == 0 })

		require.False(t, found)
		require.Zero(t, v)
	})

	t.Run("stops pulling at the first match", func(t *testing.T) {
		t.Parallel()

		var pulls int
		src := seq.NewStub[int](seq.Of(1, 2, 3, 4))
		src.StubNext = func() bool {
			pulls++
			return src.Iterator.Next()
		}

		_, found := seq.From[int](src).Find(func(n, _ int) bool { return n == 2 })

		require.True(t, found)
		require.Equal(t, 2, pulls)
	})

	t.Run("leaves the tail consumable", func(t *testing.T) {
		t.Parallel()

		s := seq.Of(1, 2, 3, 4)
		_, _ = s.Find(func(n, _ int) bool { return n == 2 })

		require.Equal(t, []int{3, 4}, s.Collect())
	})
}

func TestFindIndex(t *testing.T) {
	t.Parallel()

	t.Run("returns the position of the first match", func(t *testing.T) {
		t.Parallel()

		index := seq.Of("a", "b", "c").FindIndex(func(v string, _ int) bool { return v == "b" })

		require.Equal(t, 1, index)
	})

	t.Run("returns -1 when nothing matches", func(t *testing.T) {
		t.Parallel()

		index := seq.Of("a", "b").FindIndex(func(v string, _ int) bool { return v == "z" })

		require.Equal(t, -1, index)
	})
}
