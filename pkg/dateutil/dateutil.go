package dateutil

import (
	"strings"
	"time"
)

// DateLayout is the key format used for day records and holiday tables.
const DateLayout = "2006-01-02"

// ClockLayout is the wall-clock format for check-in and check-out times.
const ClockLayout = "15:04"

// MonthDayLayout keys fixed-date yearly holidays.
const MonthDayLayout = "01-02"

// DateOnly strips the time of day and location, keeping the calendar date.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Date builds a day-granularity date. Out-of-range values normalize the
// way time.Date does, so month 0 is December of the prior year.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD key into a day-granularity date. Full
// RFC 3339 timestamps are accepted and truncated to their calendar date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		ts, tsErr := time.Parse(time.RFC3339, s)
		if tsErr != nil {
			return time.Time{}, err
		}
		t = ts
	}
	return DateOnly(t), nil
}

// DateKey formats a date as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthDayKey formats a date as MM-DD.
func MonthDayKey(t time.Time) string {
	return t.Format(MonthDayLayout)
}

// InRange reports whether date falls within [start, end], compared by day.
func InRange(date, start, end time.Time) bool {
	d := DateOnly(date)
	return !d.Before(DateOnly(start)) && !d.After(DateOnly(end))
}

// IsSunday checks the weekday of a date
func IsSunday(t time.Time) bool {
	return t.Weekday() == time.Sunday
}

// ParseClock parses an HH:MM wall-clock time and returns minutes since midnight.
func ParseClock(s string) (int, bool) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// ElapsedMinutes returns the minutes between two wall-clock times. A
// check-out at or before check-in is taken to be on the following day.
func ElapsedMinutes(checkIn, checkOut string) (int, bool) {
	in, ok := ParseClock(checkIn)
	if !ok {
		return 0, false
	}
	out, ok := ParseClock(checkOut)
	if !ok {
		return 0, false
	}
	if out <= in {
		out += 24 * 60
	}
	return out - in, true
}

// DaysBetween lists every date from start to end inclusive.
func DaysBetween(start, end time.Time) []time.Time {
	var days []time.Time
	for d := DateOnly(start); !d.After(DateOnly(end)); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
