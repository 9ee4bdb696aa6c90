package calculation

import (
	"fmt"
	"time"

	"github.com/ympay/payroll-calculator/internal/domain"
	"github.com/ympay/payroll-calculator/pkg/dateutil"
)

const defaultCycleStartDay = 21

// PayCycle is an inclusive, day-granularity pay period
type PayCycle struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Start time.Time  `json:"start"`
	End   time.Time  `json:"end"`
}

// Contains reports whether date falls within the cycle.
func (p PayCycle) Contains(date time.Time) bool {
	return dateutil.InRange(date, p.Start, p.End)
}

// Days lists every date in the cycle.
func (p PayCycle) Days() []time.Time {
	return dateutil.DaysBetween(p.Start, p.End)
}

func (p PayCycle) String() string {
	return fmt.Sprintf("%04d-%02d (%s to %s)", p.Year, int(p.Month), dateutil.DateKey(p.Start), dateutil.DateKey(p.End))
}

// CycleResolver maps a target month to its pay-cycle boundaries
type CycleResolver struct {
	Rule domain.PayCycleRule
}

// NewCycleResolver creates a resolver for the given boundary rule
func NewCycleResolver(rule domain.PayCycleRule) CycleResolver {
	return CycleResolver{Rule: rule}
}

func (cr CycleResolver) startDay() int {
	if cr.Rule.StartDay < 1 || cr.Rule.StartDay > 28 {
		return defaultCycleStartDay
	}
	return cr.Rule.StartDay
}

// Resolve returns the cycle paid in the given month. With the default rule
// that is the 21st of the previous month through the 20th of month.
func (cr CycleResolver) Resolve(year int, month time.Month) PayCycle {
	s := cr.startDay()
	if s == 1 {
		return PayCycle{
			Year:  year,
			Month: month,
			Start: dateutil.Date(year, month, 1),
			End:   dateutil.Date(year, month+1, 0),
		}
	}
	// time.Date normalizes month 0 to December of the prior year.
	return PayCycle{
		Year:  year,
		Month: month,
		Start: dateutil.Date(year, month-1, s),
		End:   dateutil.Date(year, month, s-1),
	}
}

// Containing returns the cycle whose range includes date.
func (cr CycleResolver) Containing(date time.Time) PayCycle {
	d := dateutil.DateOnly(date)
	s := cr.startDay()
	if s == 1 || d.Day() < s {
		return cr.Resolve(d.Year(), d.Month())
	}
	next := dateutil.Date(d.Year(), d.Month()+1, 1)
	return cr.Resolve(next.Year(), next.Month())
}

// Current returns the cycle containing today.
func (cr CycleResolver) Current() PayCycle {
	return cr.Containing(nowFunc())
}
