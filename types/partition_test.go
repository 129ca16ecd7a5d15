package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartition_Contains(t *testing.T) {
	p := Partition{Number: 2, Min: 44, Max: 66}

	require.True(t, p.Contains(44))
	require.True(t, p.Contains(55))
	require.True(t, p.Contains(66))
	require.False(t, p.Contains(43))
	require.False(t, p.Contains(67))
}

func TestPartition_Size(t *testing.T) {
	t.Run("counts both endpoints", func(t *testing.T) {
		p := Partition{Number: 9, Min: 299, Max: 308}
		require.Equal(t, 10, p.Size())
	})

	t.Run("single ID interval", func(t *testing.T) {
		p := Partition{Number: 1, Min: 5, Max: 5}
		require.Equal(t, 1, p.Size())
	})

	t.Run("inverted interval is empty", func(t *testing.T) {
		p := Partition{Number: 1, Min: 10, Max: 5}
		require.Equal(t, 0, p.Size())
	})
}

func TestPartition_DisplayLabel(t *testing.T) {
	t.Run("bare number by default", func(t *testing.T) {
		p := Partition{Number: 7, Min: 248, Max: 270}
		require.Equal(t, "7", p.DisplayLabel())
	})

	t.Run("symbolic override when label set", func(t *testing.T) {
		p := Partition{Number: 18, Label: "Regola ASS", Min: 622, Max: 690}
		require.Equal(t, "Regola ASS", p.DisplayLabel())
	})
}

func TestPartition_Compare(t *testing.T) {
	a := Partition{Number: 1, Min: 1, Max: 43}
	b := Partition{Number: 2, Min: 44, Max: 66}

	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(a))

	t.Run("ties broken by number", func(t *testing.T) {
		c := Partition{Number: 3, Min: 1, Max: 10}
		require.Equal(t, -1, a.Compare(c))
		require.Equal(t, 1, c.Compare(a))
	})
}
