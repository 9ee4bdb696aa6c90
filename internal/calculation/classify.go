package calculation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ympay/payroll-calculator/internal/domain"
	"github.com/ympay/payroll-calculator/pkg/dateutil"
)

var minutesPerHour = decimal.NewFromInt(60)

// DayClassification is the classifier's reading of one day record.
type DayClassification struct {
	Date        time.Time
	Kind        domain.DayKind
	IsSunday    bool
	IsHoliday   bool
	HolidayName string

	// Leave is the leave charged against the employee. It is LeaveNone on
	// Sundays and holidays even when the record carries a leave selection.
	Leave domain.LeaveType

	// CountsAsWork feeds the worked-day tally that base pay is paid on.
	CountsAsWork bool

	// WorkedHours is always a total for the day.
	WorkedHours decimal.Decimal

	// ScheduledHours is the implicit base added to stored hours: the standard
	// shift on an ordinary day with a shift, zero otherwise.
	ScheduledHours decimal.Decimal

	// OvertimeHours is the part of WorkedHours that is overtime-rated. On
	// ordinary days only the hours beyond the base shift count, with or
	// without a scheduled shift.
	OvertimeHours decimal.Decimal
}

// DayClassifier determines leave, holiday, Sunday and worked-hour facts for day records
type DayClassifier struct {
	Calendar       HolidayCalendar
	BaseShiftHours decimal.Decimal
}

// NewDayClassifier creates a classifier backed by the given calendar
func NewDayClassifier(calendar HolidayCalendar, baseShiftHours decimal.Decimal) *DayClassifier {
	return &DayClassifier{Calendar: calendar, BaseShiftHours: baseShiftHours}
}

// Classify reads one day record. Precedence is holiday, then leave, then shift;
// Sundays never count toward the worked-day tally and never consume leave.
func (dc *DayClassifier) Classify(day domain.DayRecord) DayClassification {
	date := dateutil.DateOnly(day.Date)
	c := DayClassification{
		Date:     date,
		Kind:     domain.DayOrdinary,
		IsSunday: dateutil.IsSunday(date),
		Leave:    day.Leave.Normalize(),
	}

	if dc.Calendar != nil {
		if name, ok := dc.Calendar.HolidayName(date); ok {
			c.IsHoliday = true
			c.HolidayName = name
		}
	}
	if day.IsHoliday {
		c.IsHoliday = true
	}

	switch {
	case c.IsHoliday:
		c.Kind = domain.DayHoliday
	case c.IsSunday:
		c.Kind = domain.DaySunday
	}
	if c.IsHoliday || c.IsSunday {
		c.Leave = domain.LeaveNone
	}

	c.CountsAsWork = dc.countsAsWork(day, c)

	if c.Kind == domain.DayOrdinary && day.Shift.Active() {
		c.ScheduledHours = dc.BaseShiftHours
	} else {
		c.ScheduledHours = decimal.Zero
	}

	c.WorkedHours = dc.workedHours(day, c)
	if c.Kind == domain.DayOrdinary {
		c.OvertimeHours = decimal.Max(decimal.Zero, c.WorkedHours.Sub(dc.BaseShiftHours))
	} else {
		c.OvertimeHours = c.WorkedHours
	}
	return c
}

func (dc *DayClassifier) countsAsWork(day domain.DayRecord, c DayClassification) bool {
	if c.IsSunday {
		return false
	}
	if c.IsHoliday {
		return true
	}
	switch c.Leave {
	case domain.LeavePaid, domain.LeaveSpecial:
		return true
	case domain.LeaveSick:
		return false
	}
	return day.Shift.Active()
}

// workedHours prefers the check-in/check-out pair. Without it the stored
// hours figure is a total on Sundays and holidays and an addition to the
// scheduled shift on ordinary days.
func (dc *DayClassifier) workedHours(day domain.DayRecord, c DayClassification) decimal.Decimal {
	if day.HasClockTimes() {
		if minutes, ok := dateutil.ElapsedMinutes(day.CheckIn, day.CheckOut); ok {
			return decimal.NewFromInt(int64(minutes)).Div(minutesPerHour)
		}
	}

	stored := decimal.Max(decimal.Zero, day.OvertimeHours)
	if c.Kind != domain.DayOrdinary {
		return stored
	}
	return c.ScheduledHours.Add(stored)
}
