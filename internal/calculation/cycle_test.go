package calculation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ympay/payroll-calculator/internal/domain"
	"github.com/ympay/payroll-calculator/pkg/dateutil"
)

func TestCycleResolve(t *testing.T) {
	resolver := NewCycleResolver(domain.PayCycleRule{StartDay: 21})

	tests := []struct {
		name          string
		year          int
		month         time.Month
		expectedStart string
		expectedEnd   string
	}{
		{"January crosses year boundary", 2025, time.January, "2024-12-21", "2025-01-20"},
		{"March after short February", 2025, time.March, "2025-02-21", "2025-03-20"},
		{"December", 2025, time.December, "2025-11-21", "2025-12-20"},
		{"leap February", 2024, time.February, "2024-01-21", "2024-02-20"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := resolver.Resolve(tt.year, tt.month)
			assert.Equal(t, tt.expectedStart, dateutil.DateKey(c.Start))
			assert.Equal(t, tt.expectedEnd, dateutil.DateKey(c.End))
			assert.Equal(t, tt.year, c.Year)
			assert.Equal(t, tt.month, c.Month)
		})
	}
}

func TestCycleResolveCustomStartDay(t *testing.T) {
	c := NewCycleResolver(domain.PayCycleRule{StartDay: 26}).Resolve(2025, time.January)
	assert.Equal(t, "2024-12-26", dateutil.DateKey(c.Start))
	assert.Equal(t, "2025-01-25", dateutil.DateKey(c.End))

	cal := NewCycleResolver(domain.PayCycleRule{StartDay: 1}).Resolve(2024, time.February)
	assert.Equal(t, "2024-02-01", dateutil.DateKey(cal.Start))
	assert.Equal(t, "2024-02-29", dateutil.DateKey(cal.End))
}

func TestCycleResolveInvalidStartDayUsesDefault(t *testing.T) {
	for _, s := range []int{0, -3, 31} {
		c := NewCycleResolver(domain.PayCycleRule{StartDay: s}).Resolve(2025, time.January)
		assert.Equal(t, "2024-12-21", dateutil.DateKey(c.Start), "start day %d", s)
	}
}

func TestCycleContains(t *testing.T) {
	c := NewCycleResolver(domain.PayCycleRule{StartDay: 21}).Resolve(2025, time.January)

	assert.True(t, c.Contains(dateutil.Date(2024, 12, 21)))
	assert.True(t, c.Contains(time.Date(2025, 1, 20, 23, 59, 59, 0, time.UTC)))
	assert.False(t, c.Contains(dateutil.Date(2024, 12, 20)))
	assert.False(t, c.Contains(dateutil.Date(2025, 1, 21)))
	assert.Len(t, c.Days(), 31)
	assert.Equal(t, "2025-01 (2024-12-21 to 2025-01-20)", c.String())
}

func TestCycleContaining(t *testing.T) {
	resolver := NewCycleResolver(domain.PayCycleRule{StartDay: 21})

	tests := []struct {
		date          time.Time
		expectedYear  int
		expectedMonth time.Month
	}{
		{dateutil.Date(2025, 1, 20), 2025, time.January},
		{dateutil.Date(2025, 1, 21), 2025, time.February},
		{dateutil.Date(2024, 12, 28), 2025, time.January},
		{dateutil.Date(2024, 12, 1), 2024, time.December},
	}
	for _, tt := range tests {
		c := resolver.Containing(tt.date)
		assert.Equal(t, tt.expectedYear, c.Year, dateutil.DateKey(tt.date))
		assert.Equal(t, tt.expectedMonth, c.Month, dateutil.DateKey(tt.date))
		assert.True(t, c.Contains(tt.date))
	}
}

func TestCycleCurrentUsesNowFunc(t *testing.T) {
	defer SetNowFunc(time.Now)
	SetNowFunc(func() time.Time { return time.Date(2025, 3, 25, 10, 0, 0, 0, time.UTC) })

	c := NewCycleResolver(domain.PayCycleRule{StartDay: 21}).Current()
	assert.Equal(t, time.April, c.Month)
	assert.Equal(t, "2025-03-21", dateutil.DateKey(c.Start))
}
