package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2025-01-06", DateKey(d))
	assert.Equal(t, "01-06", MonthDayKey(d))

	d, err = ParseDate("2025-01-06T23:30:00+07:00")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-06", DateKey(d))

	_, err = ParseDate("06/01/2025")
	assert.Error(t, err)
}

func TestDateNormalizesMonthZero(t *testing.T) {
	d := Date(2025, 0, 21)
	assert.Equal(t, "2024-12-21", DateKey(d))
}

func TestInRange(t *testing.T) {
	start := Date(2024, 12, 21)
	end := Date(2025, 1, 20)

	tests := []struct {
		name     string
		date     time.Time
		expected bool
	}{
		{"start is inclusive", start, true},
		{"end is inclusive", end, true},
		{"end with time of day", time.Date(2025, 1, 20, 23, 59, 0, 0, time.UTC), true},
		{"day before start", Date(2024, 12, 20), false},
		{"day after end", Date(2025, 1, 21), false},
		{"inside", Date(2025, 1, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InRange(tt.date, start, end))
		})
	}
}

func TestIsSunday(t *testing.T) {
	assert.True(t, IsSunday(Date(2025, 1, 5)))
	assert.False(t, IsSunday(Date(2025, 1, 6)))
}

func TestParseClock(t *testing.T) {
	m, ok := ParseClock("08:30")
	assert.True(t, ok)
	assert.Equal(t, 510, m)

	_, ok = ParseClock("")
	assert.False(t, ok)
	_, ok = ParseClock("25:00")
	assert.False(t, ok)
}

func TestElapsedMinutes(t *testing.T) {
	tests := []struct {
		name     string
		in, out  string
		expected int
		ok       bool
	}{
		{"same day", "08:00", "17:30", 570, true},
		{"crosses midnight", "22:00", "06:00", 480, true},
		{"equal times is a full day", "08:00", "08:00", 1440, true},
		{"missing check-out", "08:00", "", 0, false},
		{"garbage", "x", "17:00", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ElapsedMinutes(tt.in, tt.out)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDaysBetween(t *testing.T) {
	days := DaysBetween(Date(2024, 12, 30), Date(2025, 1, 2))
	require.Len(t, days, 4)
	assert.Equal(t, "2024-12-30", DateKey(days[0]))
	assert.Equal(t, "2025-01-02", DateKey(days[3]))

	assert.Empty(t, DaysBetween(Date(2025, 1, 2), Date(2025, 1, 1)))
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2024))
	assert.False(t, IsLeapYear(2025))
	assert.False(t, IsLeapYear(1900))
	assert.True(t, IsLeapYear(2000))
}
