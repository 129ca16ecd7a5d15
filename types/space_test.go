package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func testPartitions() []Partition {
	return []Partition{
		{Number: 1, Min: 1, Max: 5},
		{Number: 2, Min: 6, Max: 10},
		{Number: 3, Min: 11, Max: 20},
	}
}

func TestNewSpace(t *testing.T) {
	t.Run("valid partitions", func(t *testing.T) {
		space, err := NewSpace(testPartitions())

		require.NoError(t, err)
		require.Equal(t, 3, space.Len())
		require.Equal(t, 1, space.MinID())
		require.Equal(t, 20, space.MaxID())
		require.Equal(t, 20, space.Size())
	})

	t.Run("accepts unsorted input", func(t *testing.T) {
		parts := []Partition{
			{Number: 2, Min: 6, Max: 10},
			{Number: 1, Min: 1, Max: 5},
		}
		space, err := NewSpace(parts)

		require.NoError(t, err)
		require.Equal(t, 1, space.Partitions()[0].Number)
	})

	t.Run("rejects empty partition list", func(t *testing.T) {
		_, err := NewSpace(nil)
		require.ErrorIs(t, err, ErrInvalidSpace)
	})

	t.Run("rejects inverted interval", func(t *testing.T) {
		_, err := NewSpace([]Partition{{Number: 1, Min: 10, Max: 1}})
		require.ErrorIs(t, err, ErrInvalidSpace)
	})

	t.Run("rejects overlapping intervals", func(t *testing.T) {
		_, err := NewSpace([]Partition{
			{Number: 1, Min: 1, Max: 6},
			{Number: 2, Min: 6, Max: 10},
		})
		require.ErrorIs(t, err, ErrInvalidSpace)
		require.Contains(t, err.Error(), "overlaps")
	})

	t.Run("rejects gapped intervals", func(t *testing.T) {
		_, err := NewSpace([]Partition{
			{Number: 1, Min: 1, Max: 5},
			{Number: 2, Min: 8, Max: 10},
		})
		require.ErrorIs(t, err, ErrInvalidSpace)
		require.Contains(t, err.Error(), "gap")
	})

	t.Run("rejects duplicate partition numbers", func(t *testing.T) {
		_, err := NewSpace([]Partition{
			{Number: 1, Min: 1, Max: 5},
			{Number: 1, Min: 6, Max: 10},
		})
		require.ErrorIs(t, err, ErrInvalidSpace)
	})
}

func TestSpace_Resolve(t *testing.T) {
	space, err := NewSpace(testPartitions())
	require.NoError(t, err)

	t.Run("resolves interval membership", func(t *testing.T) {
		p, err := space.Resolve(7)
		require.NoError(t, err)
		require.Equal(t, 2, p.Number)

		p, err = space.Resolve(1)
		require.NoError(t, err)
		require.Equal(t, 1, p.Number)

		p, err = space.Resolve(20)
		require.NoError(t, err)
		require.Equal(t, 3, p.Number)
	})

	t.Run("out of range ID fails", func(t *testing.T) {
		_, err := space.Resolve(21)
		require.Error(t, err)

		var oor *OutOfRangeError
		require.True(t, errors.As(err, &oor))
		require.Equal(t, 21, oor.ID)
		require.Equal(t, 1, oor.Min)
		require.Equal(t, 20, oor.Max)
	})
}

func TestSpace_Partitions_DoesNotExposeInternalSlice(t *testing.T) {
	space, err := NewSpace(testPartitions())
	require.NoError(t, err)

	result := space.Partitions()
	result[0].Max = 999

	require.Equal(t, 5, space.Partitions()[0].Max)
}

func TestSpace_Contains(t *testing.T) {
	space, err := NewSpace(testPartitions())
	require.NoError(t, err)

	require.True(t, space.Contains(1))
	require.True(t, space.Contains(20))
	require.False(t, space.Contains(0))
	require.False(t, space.Contains(21))
}
