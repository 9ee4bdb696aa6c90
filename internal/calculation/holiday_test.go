package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ympay/payroll-calculator/internal/domain"
	"github.com/ympay/payroll-calculator/pkg/dateutil"
)

func TestFixedHolidayRecursEveryYear(t *testing.T) {
	cal := DefaultCalendar()
	for _, year := range []int{2019, 2025, 2031} {
		name, ok := cal.HolidayName(dateutil.Date(year, 1, 1))
		assert.True(t, ok, "year %d", year)
		assert.Equal(t, "Tết Dương lịch", name)
	}
}

func TestMovableHolidayIsYearSpecific(t *testing.T) {
	cal := DefaultCalendar()

	name, ok := cal.HolidayName(dateutil.Date(2025, 1, 29))
	assert.True(t, ok)
	assert.Equal(t, "Tết Nguyên Đán", name)

	_, ok = cal.HolidayName(dateutil.Date(2026, 1, 29))
	assert.False(t, ok)
}

func TestOrdinaryDayIsNotHoliday(t *testing.T) {
	_, ok := DefaultCalendar().HolidayName(dateutil.Date(2025, 1, 6))
	assert.False(t, ok)
}

func TestFixedTakesPriorityOverMovable(t *testing.T) {
	cal := NewStaticCalendar(
		map[string]string{"09-02": "fixed"},
		map[string]string{"2025-09-02": "movable"},
	)
	name, ok := cal.HolidayName(dateutil.Date(2025, 9, 2))
	assert.True(t, ok)
	assert.Equal(t, "fixed", name)
}

func TestNilCalendarHasNoHolidays(t *testing.T) {
	var cal *StaticCalendar
	_, ok := cal.HolidayName(dateutil.Date(2025, 1, 1))
	assert.False(t, ok)
}

func TestWithEntriesExtendsWithoutMutating(t *testing.T) {
	base := DefaultCalendar()
	extended := base.WithEntries([]domain.HolidayEntry{
		{Date: dateutil.Date(2030, 2, 3), Name: "Tết Nguyên Đán"},
		{Name: "no date"},
	})

	_, ok := extended.HolidayName(dateutil.Date(2030, 2, 3))
	assert.True(t, ok)
	_, ok = base.HolidayName(dateutil.Date(2030, 2, 3))
	assert.False(t, ok)
}

func TestHolidaysBetween(t *testing.T) {
	cal := DefaultCalendar()
	holidays := cal.HolidaysBetween(dateutil.Date(2024, 12, 21), dateutil.Date(2025, 2, 20))

	require.Len(t, holidays, 6)
	assert.Equal(t, "2025-01-01", dateutil.DateKey(holidays[0].Date))
	assert.True(t, holidays[0].Fixed)
	assert.Equal(t, "2025-01-27", dateutil.DateKey(holidays[1].Date))
	assert.False(t, holidays[1].Fixed)
	assert.Equal(t, "2025-01-31", dateutil.DateKey(holidays[5].Date))
}

func TestHolidaysBetweenSpansYears(t *testing.T) {
	cal := NewStaticCalendar(map[string]string{"01-01": "New Year"}, nil)
	holidays := cal.HolidaysBetween(dateutil.Date(2023, 6, 1), dateutil.Date(2026, 6, 1))

	require.Len(t, holidays, 3)
	for i, year := range []int{2024, 2025, 2026} {
		assert.Equal(t, year, holidays[i].Date.Year())
	}
}

func TestHolidaysBetweenLeapDay(t *testing.T) {
	cal := NewStaticCalendar(map[string]string{"02-29": "Leap"}, nil)
	holidays := cal.HolidaysBetween(dateutil.Date(2023, 1, 1), dateutil.Date(2028, 12, 31))

	require.Len(t, holidays, 2)
	assert.Equal(t, "2024-02-29", dateutil.DateKey(holidays[0].Date))
	assert.Equal(t, "2028-02-29", dateutil.DateKey(holidays[1].Date))
}

func TestHolidaysBetweenEmptyRange(t *testing.T) {
	assert.Empty(t, DefaultCalendar().HolidaysBetween(dateutil.Date(2025, 2, 1), dateutil.Date(2025, 1, 1)))
}
