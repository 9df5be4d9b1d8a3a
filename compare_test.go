package vec_test

import (
	"strings"
	"testing"

	"github.com/teenjuna/vec"
	"github.com/teenjuna/vec/internal/testing/require"
)

func TestEqual(t *testing.T) {
	require.True(t, vec.Equal(vec.Of(1, 2, 3), vec.Of(1, 2, 3)))
	require.True(t, vec.Equal(vec.New[int](), vec.New[int]()))
	require.False(t, vec.Equal(vec.Of(1, 2, 3), vec.Of(1, 2)))
	require.False(t, vec.Equal(vec.Of(1, 2, 3), vec.Of(1, 2, 4)))

	// Capacity never takes part in equality.
	a := vec.Of(1, 2)
	b := vec.WithCapacity[int](100)
	b.PushBack(1)
	b.PushBack(2)
	require.True(t, vec.Equal(a, b))
}

func TestEqualFunc(t *testing.T) {
	a := vec.Of("a", "b")
	b := vec.Of("A", "B")
	require.False(t, vec.Equal(a, b))
	require.True(t, vec.EqualFunc(a, b, strings.EqualFold))
}

func TestCompare(t *testing.T) {
	t.Run("Prefix orders before longer", func(t *testing.T) {
		require.Equal(t, vec.Compare(vec.Of(1, 2), vec.Of(1, 2, 3)), -1)
		require.Equal(t, vec.Compare(vec.Of(1, 2, 3), vec.Of(1, 2)), 1)
	})

	t.Run("First unequal pair decides", func(t *testing.T) {
		require.Equal(t, vec.Compare(vec.Of(1, 3), vec.Of(1, 2, 9)), 1)
		require.Equal(t, vec.Compare(vec.Of(1, 2, 9), vec.Of(1, 3)), -1)
	})

	t.Run("Equal vectors", func(t *testing.T) {
		require.Equal(t, vec.Compare(vec.Of(1, 2), vec.Of(1, 2)), 0)
		require.Equal(t, vec.Compare(vec.New[int](), vec.New[int]()), 0)
	})

	t.Run("Empty orders before anything", func(t *testing.T) {
		require.Equal(t, vec.Compare(vec.New[int](), vec.Of(0)), -1)
	})
}

func TestCompareFunc(t *testing.T) {
	desc := func(a, b int) int { return b - a }
	require.Equal(t, vec.CompareFunc(vec.Of(3), vec.Of(1), desc), -2)
	require.Equal(t, vec.CompareFunc(vec.Of(1), vec.Of(1), desc), 0)
}
