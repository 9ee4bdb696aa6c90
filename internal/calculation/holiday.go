package calculation

import (
	"sort"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/ympay/payroll-calculator/internal/domain"
	"github.com/ympay/payroll-calculator/pkg/dateutil"
)

// HolidayCalendar resolves a calendar date to a public holiday label.
type HolidayCalendar interface {
	HolidayName(date time.Time) (string, bool)
}

// Holiday is one dated occurrence returned by HolidaysBetween
type Holiday struct {
	Date  time.Time `json:"date"`
	Name  string    `json:"name"`
	Fixed bool      `json:"fixed"`
}

// StaticCalendar is a table-driven HolidayCalendar. Fixed holidays recur
// every year and are keyed MM-DD; movable holidays are keyed YYYY-MM-DD.
// Fixed matches take priority.
type StaticCalendar struct {
	Fixed   map[string]string
	Movable map[string]string
}

// NewStaticCalendar copies the given tables into a new calendar
func NewStaticCalendar(fixed, movable map[string]string) *StaticCalendar {
	sc := &StaticCalendar{
		Fixed:   make(map[string]string, len(fixed)),
		Movable: make(map[string]string, len(movable)),
	}
	for k, v := range fixed {
		sc.Fixed[k] = v
	}
	for k, v := range movable {
		sc.Movable[k] = v
	}
	return sc
}

// DefaultCalendar returns the built-in public holiday calendar.
func DefaultCalendar() *StaticCalendar {
	return NewStaticCalendar(fixedHolidays, movableHolidays)
}

// HolidayName implements HolidayCalendar
func (sc *StaticCalendar) HolidayName(date time.Time) (string, bool) {
	if sc == nil {
		return "", false
	}
	if name, ok := sc.Fixed[dateutil.MonthDayKey(date)]; ok {
		return name, true
	}
	if name, ok := sc.Movable[dateutil.DateKey(date)]; ok {
		return name, true
	}
	return "", false
}

// WithEntries returns a copy of the calendar with extra movable holidays.
// Entries with a zero date are skipped.
func (sc *StaticCalendar) WithEntries(entries []domain.HolidayEntry) *StaticCalendar {
	out := NewStaticCalendar(sc.Fixed, sc.Movable)
	for _, e := range entries {
		if e.Date.IsZero() {
			continue
		}
		out.Movable[dateutil.DateKey(e.Date)] = e.Name
	}
	return out
}

// HolidaysBetween lists every holiday from start to end inclusive, ordered by date.
func (sc *StaticCalendar) HolidaysBetween(start, end time.Time) []Holiday {
	start, end = dateutil.DateOnly(start), dateutil.DateOnly(end)
	if end.Before(start) {
		return nil
	}

	seen := make(map[string]bool)
	var holidays []Holiday

	for key, name := range sc.Fixed {
		md, err := time.Parse(dateutil.MonthDayLayout, key)
		if err != nil {
			continue
		}
		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:       rrule.YEARLY,
			Dtstart:    start,
			Until:      end,
			Bymonth:    []int{int(md.Month())},
			Bymonthday: []int{md.Day()},
		})
		if err != nil {
			continue
		}
		for _, occ := range rule.Between(start, end, true) {
			d := dateutil.DateOnly(occ)
			seen[dateutil.DateKey(d)] = true
			holidays = append(holidays, Holiday{Date: d, Name: name, Fixed: true})
		}
	}

	for key, name := range sc.Movable {
		d, err := dateutil.ParseDate(key)
		if err != nil || !dateutil.InRange(d, start, end) || seen[key] {
			continue
		}
		if _, fixed := sc.Fixed[dateutil.MonthDayKey(d)]; fixed {
			continue
		}
		holidays = append(holidays, Holiday{Date: d, Name: name})
	}

	sort.Slice(holidays, func(i, j int) bool { return holidays[i].Date.Before(holidays[j].Date) })
	return holidays
}
