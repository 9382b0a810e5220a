package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid times", func(t *testing.T) {
		for _, s := range []string{"00:00", "09:30", "23:59"} {
			ts, err := NewTimeStringFromString(s)
			require.NoError(t, err)
			assert.Equal(t, s, ts.String())
		}
	})

	t.Run("invalid times", func(t *testing.T) {
		for _, s := range []string{"", "24:00", "9:30:00", "abc", "12-30"} {
			_, err := NewTimeStringFromString(s)
			assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", s)
		}
	})
}

func TestTimeString_Minutes(t *testing.T) {
	minutes, err := TimeString("10:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, minutes)

	minutes, err = TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Zero(t, minutes)

	_, err = TimeString("25:00").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:01"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("18:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))

	// Некорректные значения не считаются ни раньше, ни позже
	assert.False(t, TimeString("bad").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("bad"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	t.Run("within the day", func(t *testing.T) {
		ts, err := TimeString("09:45").AddMinutes(30)
		require.NoError(t, err)
		assert.Equal(t, TimeString("10:15"), ts)
	})

	t.Run("overflow past midnight", func(t *testing.T) {
		_, err := TimeString("23:45").AddMinutes(30)
		assert.ErrorIs(t, err, ErrTimeOutOfRange)
	})

	t.Run("negative shift below midnight", func(t *testing.T) {
		_, err := TimeString("00:10").AddMinutes(-30)
		assert.ErrorIs(t, err, ErrTimeOutOfRange)
	})
}

func TestTimeString_MinutesUntil(t *testing.T) {
	d, err := TimeString("10:00").MinutesUntil("11:30")
	require.NoError(t, err)
	assert.Equal(t, 90, d)

	d, err = TimeString("11:30").MinutesUntil("10:00")
	require.NoError(t, err)
	assert.Equal(t, -90, d)
}

func TestTimeString_Scan(t *testing.T) {
	t.Run("string with seconds from postgres", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan("14:30:00"))
		assert.Equal(t, TimeString("14:30"), ts)
	})

	t.Run("bytes", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan([]byte("09:15")))
		assert.Equal(t, TimeString("09:15"), ts)
	})

	t.Run("time.Time", func(t *testing.T) {
		var ts TimeString
		require.NoError(t, ts.Scan(time.Date(2000, 1, 1, 8, 5, 0, 0, time.UTC)))
		assert.Equal(t, TimeString("08:05"), ts)
	})

	t.Run("nil clears the value", func(t *testing.T) {
		ts := TimeString("10:00")
		require.NoError(t, ts.Scan(nil))
		assert.True(t, ts.IsZero())
	})

	t.Run("unsupported type", func(t *testing.T) {
		var ts TimeString
		assert.ErrorIs(t, ts.Scan(42), ErrInvalidTimeString)
	})
}

func TestTimeString_Value(t *testing.T) {
	v, err := TimeString("12:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "12:00", v)

	_, err = TimeString("bad").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
