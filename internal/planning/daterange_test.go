package planning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseViewMode(t *testing.T) {
	t.Run("valid modes", func(t *testing.T) {
		for _, s := range []string{"day", "week", "month"} {
			mode, err := ParseViewMode(s)
			require.NoError(t, err)
			assert.Equal(t, ViewMode(s), mode)
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := ParseViewMode("year")
		assert.ErrorIs(t, err, ErrUnknownViewMode)
	})

	t.Run("empty mode", func(t *testing.T) {
		_, err := ParseViewMode("")
		assert.ErrorIs(t, err, ErrUnknownViewMode)
	})
}

func TestBoundsFor(t *testing.T) {
	t.Run("day mode is a single day", func(t *testing.T) {
		r, err := BoundsFor(date(2025, time.January, 15), ModeDay, time.Monday)
		require.NoError(t, err)

		assert.Equal(t, date(2025, time.January, 15), r.Start)
		assert.Equal(t, date(2025, time.January, 15), r.End)
		require.Len(t, r.Days, 1)
		assert.True(t, r.Days[0].IsCurrentMonth)
	})

	t.Run("week mode starts on monday", func(t *testing.T) {
		// 15 января 2025 - среда
		r, err := BoundsFor(date(2025, time.January, 15), ModeWeek, time.Monday)
		require.NoError(t, err)

		assert.Equal(t, date(2025, time.January, 13), r.Start)
		assert.Equal(t, date(2025, time.January, 19), r.End)
		require.Len(t, r.Days, 7)
		assert.Equal(t, time.Monday, r.Days[0].Date.Weekday())
		assert.Equal(t, time.Sunday, r.Days[6].Date.Weekday())
	})

	t.Run("week mode with sunday start", func(t *testing.T) {
		r, err := BoundsFor(date(2025, time.January, 15), ModeWeek, time.Sunday)
		require.NoError(t, err)

		assert.Equal(t, date(2025, time.January, 12), r.Start)
		assert.Equal(t, date(2025, time.January, 18), r.End)
	})

	t.Run("week containing the reference monday starts on it", func(t *testing.T) {
		r, err := BoundsFor(date(2025, time.January, 13), ModeWeek, time.Monday)
		require.NoError(t, err)

		assert.Equal(t, date(2025, time.January, 13), r.Start)
	})

	t.Run("january 2025 month grid spans adjacent months", func(t *testing.T) {
		// 1 января 2025 - среда, 31 января - пятница.
		// Сетка с понедельника: 2024-12-30 .. 2025-02-02.
		r, err := BoundsFor(date(2025, time.January, 15), ModeMonth, time.Monday)
		require.NoError(t, err)

		assert.Equal(t, date(2025, time.January, 1), r.Start)
		assert.Equal(t, date(2025, time.January, 31), r.End)

		require.Len(t, r.Days, 35)
		assert.Equal(t, date(2024, time.December, 30), r.Days[0].Date)
		assert.Equal(t, date(2025, time.February, 2), r.Days[len(r.Days)-1].Date)

		// Хвосты соседних месяцев помечены
		assert.False(t, r.Days[0].IsCurrentMonth)  // 30 декабря
		assert.False(t, r.Days[1].IsCurrentMonth)  // 31 декабря
		assert.True(t, r.Days[2].IsCurrentMonth)   // 1 января
		assert.True(t, r.Days[32].IsCurrentMonth)  // 31 января
		assert.False(t, r.Days[33].IsCurrentMonth) // 1 февраля
		assert.False(t, r.Days[34].IsCurrentMonth)
	})

	t.Run("month grid length is a multiple of seven", func(t *testing.T) {
		for month := time.January; month <= time.December; month++ {
			r, err := BoundsFor(date(2025, month, 10), ModeMonth, time.Monday)
			require.NoError(t, err)
			assert.Zero(t, len(r.Days)%7, "month %s grid must be whole weeks", month)
		}
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := BoundsFor(date(2025, time.January, 15), ViewMode("year"), time.Monday)
		assert.ErrorIs(t, err, ErrUnknownViewMode)
	})
}

func TestNavigate(t *testing.T) {
	t.Run("day navigation", func(t *testing.T) {
		next, err := Navigate(date(2025, time.January, 31), ModeDay, DirectionNext)
		require.NoError(t, err)
		assert.Equal(t, date(2025, time.February, 1), next)

		prev, err := Navigate(date(2025, time.January, 1), ModeDay, DirectionPrev)
		require.NoError(t, err)
		assert.Equal(t, date(2024, time.December, 31), prev)
	})

	t.Run("week navigation", func(t *testing.T) {
		next, err := Navigate(date(2025, time.January, 15), ModeWeek, DirectionNext)
		require.NoError(t, err)
		assert.Equal(t, date(2025, time.January, 22), next)

		prev, err := Navigate(date(2025, time.January, 15), ModeWeek, DirectionPrev)
		require.NoError(t, err)
		assert.Equal(t, date(2025, time.January, 8), prev)
	})

	t.Run("month navigation clamps day of month", func(t *testing.T) {
		// 31 января + месяц = 28 февраля, не 3 марта
		next, err := Navigate(date(2025, time.January, 31), ModeMonth, DirectionNext)
		require.NoError(t, err)
		assert.Equal(t, date(2025, time.February, 28), next)

		// 31 марта - месяц = 28 февраля
		prev, err := Navigate(date(2025, time.March, 31), ModeMonth, DirectionPrev)
		require.NoError(t, err)
		assert.Equal(t, date(2025, time.February, 28), prev)
	})

	t.Run("month navigation clamps to leap day", func(t *testing.T) {
		next, err := Navigate(date(2024, time.January, 31), ModeMonth, DirectionNext)
		require.NoError(t, err)
		assert.Equal(t, date(2024, time.February, 29), next)
	})

	t.Run("month navigation keeps day when it fits", func(t *testing.T) {
		next, err := Navigate(date(2025, time.January, 15), ModeMonth, DirectionNext)
		require.NoError(t, err)
		assert.Equal(t, date(2025, time.February, 15), next)
	})

	t.Run("prev and next are inverse for mid-month days", func(t *testing.T) {
		start := date(2025, time.June, 10)
		next, err := Navigate(start, ModeMonth, DirectionNext)
		require.NoError(t, err)
		back, err := Navigate(next, ModeMonth, DirectionPrev)
		require.NoError(t, err)
		assert.Equal(t, start, back)
	})

	t.Run("unknown direction", func(t *testing.T) {
		_, err := Navigate(date(2025, time.January, 15), ModeDay, Direction("sideways"))
		assert.ErrorIs(t, err, ErrUnknownDirection)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := Navigate(date(2025, time.January, 15), ViewMode("year"), DirectionNext)
		assert.ErrorIs(t, err, ErrUnknownViewMode)
	})
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay(
		time.Date(2025, time.January, 15, 9, 30, 0, 0, time.UTC),
		time.Date(2025, time.January, 15, 23, 59, 0, 0, time.UTC),
	))
	assert.False(t, SameDay(date(2025, time.January, 15), date(2025, time.January, 16)))
}
