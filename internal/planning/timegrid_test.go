package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crwnt7462-cloud/ALICIAAA-sub003/pkg/types"
)

func TestGenerateSlots(t *testing.T) {
	t.Run("standard working day with 30 minute step", func(t *testing.T) {
		slots, err := GenerateSlots(9, 19, 30)
		require.NoError(t, err)

		// 10 часов по 2 слота в час плюс включительный последний слот
		assert.Len(t, slots, 21)
		assert.Equal(t, types.TimeString("09:00"), slots[0])
		assert.Equal(t, types.TimeString("09:30"), slots[1])
		assert.Equal(t, types.TimeString("19:00"), slots[len(slots)-1])
	})

	t.Run("15 minute step", func(t *testing.T) {
		slots, err := GenerateSlots(10, 12, 15)
		require.NoError(t, err)

		assert.Len(t, slots, 9)
		assert.Equal(t, types.TimeString("10:00"), slots[0])
		assert.Equal(t, types.TimeString("10:15"), slots[1])
		assert.Equal(t, types.TimeString("12:00"), slots[8])
	})

	t.Run("hour step", func(t *testing.T) {
		slots, err := GenerateSlots(9, 12, 60)
		require.NoError(t, err)

		assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00", "12:00"}, slots)
	})

	t.Run("slots are strictly increasing", func(t *testing.T) {
		slots, err := GenerateSlots(8, 20, 30)
		require.NoError(t, err)

		for i := 1; i < len(slots); i++ {
			assert.True(t, slots[i-1].IsBefore(slots[i]),
				"slot %s should be before %s", slots[i-1], slots[i])
		}
	})

	t.Run("start hour equal to end hour", func(t *testing.T) {
		_, err := GenerateSlots(9, 9, 30)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("start hour after end hour", func(t *testing.T) {
		_, err := GenerateSlots(19, 9, 30)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("zero step", func(t *testing.T) {
		_, err := GenerateSlots(9, 19, 0)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("negative step", func(t *testing.T) {
		_, err := GenerateSlots(9, 19, -15)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("step not dividing an hour", func(t *testing.T) {
		_, err := GenerateSlots(9, 19, 45)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("hours out of range", func(t *testing.T) {
		_, err := GenerateSlots(-1, 19, 30)
		assert.ErrorIs(t, err, ErrInvalidRange)

		_, err = GenerateSlots(9, 24, 30)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}
