package json_types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWallClock(t *testing.T) {
	t.Run("Without Seconds", func(t *testing.T) {
		clock, err := ParseWallClock("09:05")
		require.NoError(t, err)
		assert.Equal(t, "09:05", clock.String())
	})

	t.Run("With Seconds", func(t *testing.T) {
		// Секунды отбрасываются
		clock, err := ParseWallClock("09:05:30")
		require.NoError(t, err)
		assert.Equal(t, "09:05", clock.String())
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := ParseWallClock("25:70")
		assert.Error(t, err)

		_, err = ParseWallClock("morning")
		assert.Error(t, err)
	})
}

func TestWallClockArithmetic(t *testing.T) {
	start := NewWallClock(9, 15)
	end := NewWallClock(10, 0)

	assert.Equal(t, 9*60+15, start.MinuteOfDay())
	assert.Equal(t, 45*time.Minute, end.Sub(start))

	assert.True(t, start.Before(end))
	assert.True(t, end.After(start))
	assert.False(t, start.Equal(end))
	assert.True(t, start.Equal(NewWallClock(9, 15)))
}

func TestParseDate(t *testing.T) {
	t.Run("Plain Date", func(t *testing.T) {
		date, err := ParseDate("2026-09-07")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-07", date.String())
		assert.Equal(t, time.Monday, date.Weekday())
	})

	t.Run("Date With Time", func(t *testing.T) {
		// Время отбрасывается, остается календарная дата
		date, err := ParseDate("2026-09-07T13:45:00")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-07", date.String())
	})

	t.Run("RFC3339", func(t *testing.T) {
		date, err := ParseDate("2026-09-07T13:45:00Z")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-07", date.String())
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := ParseDate("07/09/2026")
		assert.Error(t, err)
	})
}

func TestDateArithmetic(t *testing.T) {
	date := NewDate(2026, time.September, 30)

	assert.Equal(t, "2026-10-01", date.AddDays(1).String())
	assert.True(t, date.Before(date.AddDays(1)))
	assert.True(t, date.AddDays(1).After(date))
	assert.True(t, date.Equal(NewDate(2026, time.September, 30)))
	assert.False(t, date.IsZero())
	assert.True(t, Date{}.IsZero())
}
