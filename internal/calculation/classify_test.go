package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ympay/payroll-calculator/internal/domain"
	"github.com/ympay/payroll-calculator/pkg/dateutil"
)

func hours(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func newTestClassifier() *DayClassifier {
	return NewDayClassifier(DefaultCalendar(), decimal.NewFromInt(8))
}

func TestClassifyWorkedDayRules(t *testing.T) {
	monday := dateutil.Date(2025, 1, 6)
	sunday := dateutil.Date(2025, 1, 5)
	newYear := dateutil.Date(2025, 1, 1)

	tests := []struct {
		name          string
		day           domain.DayRecord
		expectedWork  bool
		expectedLeave domain.LeaveType
		expectedKind  domain.DayKind
	}{
		{"weekday shift", domain.DayRecord{Date: monday, Shift: domain.ShiftDay}, true, domain.LeaveNone, domain.DayOrdinary},
		{"weekday night shift", domain.DayRecord{Date: monday, Shift: domain.ShiftNight}, true, domain.LeaveNone, domain.DayOrdinary},
		{"weekday empty", domain.DayRecord{Date: monday}, false, domain.LeaveNone, domain.DayOrdinary},
		{"weekday clocked without shift", domain.DayRecord{Date: monday, CheckIn: "08:00", CheckOut: "17:00"}, false, domain.LeaveNone, domain.DayOrdinary},
		{"paid leave", domain.DayRecord{Date: monday, Leave: domain.LeavePaid}, true, domain.LeavePaid, domain.DayOrdinary},
		{"special leave", domain.DayRecord{Date: monday, Leave: domain.LeaveSpecial}, true, domain.LeaveSpecial, domain.DayOrdinary},
		{"sick leave", domain.DayRecord{Date: monday, Leave: domain.LeaveSick}, false, domain.LeaveSick, domain.DayOrdinary},
		{"sunday shift", domain.DayRecord{Date: sunday, Shift: domain.ShiftDay}, false, domain.LeaveNone, domain.DaySunday},
		{"sunday paid leave consumes nothing", domain.DayRecord{Date: sunday, Leave: domain.LeavePaid}, false, domain.LeaveNone, domain.DaySunday},
		{"calendar holiday without shift", domain.DayRecord{Date: newYear}, true, domain.LeaveNone, domain.DayHoliday},
		{"holiday wins over sick leave", domain.DayRecord{Date: newYear, Leave: domain.LeaveSick}, true, domain.LeaveNone, domain.DayHoliday},
		{"manual holiday flag", domain.DayRecord{Date: monday, IsHoliday: true}, true, domain.LeaveNone, domain.DayHoliday},
		{"manual holiday on sunday", domain.DayRecord{Date: sunday, IsHoliday: true, Shift: domain.ShiftDay}, false, domain.LeaveNone, domain.DayHoliday},
	}

	c := newTestClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.day)
			assert.Equal(t, tt.expectedWork, got.CountsAsWork)
			assert.Equal(t, tt.expectedLeave, got.Leave)
			assert.Equal(t, tt.expectedKind, got.Kind)
		})
	}
}

func TestClassifyHolidayName(t *testing.T) {
	c := newTestClassifier()

	got := c.Classify(domain.DayRecord{Date: dateutil.Date(2025, 1, 1)})
	assert.True(t, got.IsHoliday)
	assert.Equal(t, "Tết Dương lịch", got.HolidayName)

	manual := c.Classify(domain.DayRecord{Date: dateutil.Date(2025, 1, 6), IsHoliday: true})
	assert.True(t, manual.IsHoliday)
	assert.Empty(t, manual.HolidayName)
}

func TestClassifyWorkedHours(t *testing.T) {
	monday := dateutil.Date(2025, 1, 6)
	sunday := dateutil.Date(2025, 1, 5)

	tests := []struct {
		name          string
		day           domain.DayRecord
		expectedTotal decimal.Decimal
		expectedOT    decimal.Decimal
	}{
		{
			name:          "weekday stored hours are extra",
			day:           domain.DayRecord{Date: monday, Shift: domain.ShiftDay, OvertimeHours: hours(2)},
			expectedTotal: hours(10),
			expectedOT:    hours(2),
		},
		{
			name:          "weekday shift without overtime",
			day:           domain.DayRecord{Date: monday, Shift: domain.ShiftDay},
			expectedTotal: hours(8),
			expectedOT:    decimal.Zero,
		},
		{
			name:          "weekday without shift stays under the base",
			day:           domain.DayRecord{Date: monday, OvertimeHours: hours(3)},
			expectedTotal: hours(3),
			expectedOT:    decimal.Zero,
		},
		{
			name:          "weekday without shift rates only hours beyond the base",
			day:           domain.DayRecord{Date: monday, CheckIn: "08:00", CheckOut: "17:00"},
			expectedTotal: hours(9),
			expectedOT:    hours(1),
		},
		{
			name:          "sunday stored hours are a total",
			day:           domain.DayRecord{Date: sunday, OvertimeHours: hours(4)},
			expectedTotal: hours(4),
			expectedOT:    hours(4),
		},
		{
			name:          "sunday with shift gets no implicit base",
			day:           domain.DayRecord{Date: sunday, Shift: domain.ShiftDay, OvertimeHours: hours(4)},
			expectedTotal: hours(4),
			expectedOT:    hours(4),
		},
		{
			name:          "clock times are authoritative",
			day:           domain.DayRecord{Date: monday, Shift: domain.ShiftDay, CheckIn: "08:00", CheckOut: "18:30", OvertimeHours: hours(5)},
			expectedTotal: hours(10.5),
			expectedOT:    hours(2.5),
		},
		{
			name:          "night shift crossing midnight",
			day:           domain.DayRecord{Date: monday, Shift: domain.ShiftNight, CheckIn: "20:00", CheckOut: "07:00"},
			expectedTotal: hours(11),
			expectedOT:    hours(3),
		},
		{
			name:          "malformed clock falls back to stored hours",
			day:           domain.DayRecord{Date: monday, Shift: domain.ShiftDay, CheckIn: "8am", CheckOut: "17:00", OvertimeHours: hours(1)},
			expectedTotal: hours(9),
			expectedOT:    hours(1),
		},
		{
			name:          "negative stored hours clamp to zero",
			day:           domain.DayRecord{Date: sunday, OvertimeHours: hours(-2)},
			expectedTotal: decimal.Zero,
			expectedOT:    decimal.Zero,
		},
	}

	c := newTestClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.day)
			assert.True(t, tt.expectedTotal.Equal(got.WorkedHours), "worked: want %s got %s", tt.expectedTotal, got.WorkedHours)
			assert.True(t, tt.expectedOT.Equal(got.OvertimeHours), "overtime: want %s got %s", tt.expectedOT, got.OvertimeHours)
		})
	}
}

func TestClassifyNilCalendar(t *testing.T) {
	c := NewDayClassifier(nil, decimal.NewFromInt(8))
	got := c.Classify(domain.DayRecord{Date: dateutil.Date(2025, 1, 1), Shift: domain.ShiftDay})
	assert.False(t, got.IsHoliday)
	assert.Equal(t, domain.DayOrdinary, got.Kind)
}
