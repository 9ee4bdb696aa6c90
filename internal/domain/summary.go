package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayKind is the overtime category a day falls into
type DayKind string

const (
	DayOrdinary DayKind = "ordinary"
	DaySunday   DayKind = "sunday"
	DayHoliday  DayKind = "holiday"
)

// DayBreakdown reports how one day record in the cycle was classified and paid.
// Amounts are unrounded.
type DayBreakdown struct {
	Date          time.Time       `json:"date"`
	Kind          DayKind         `json:"kind"`
	HolidayName   string          `json:"holiday_name,omitempty"`
	Shift         ShiftType       `json:"shift"`
	Leave         LeaveType       `json:"leave"`
	CountsAsWork  bool            `json:"counts_as_work"`
	WorkedHours   decimal.Decimal `json:"worked_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	OvertimePay   decimal.Decimal `json:"overtime_pay"`
	TaxExemptPay  decimal.Decimal `json:"tax_exempt_pay"`
	Allowance     decimal.Decimal `json:"allowance"`
}

// PayrollSummary is the full payroll breakdown for one pay cycle. It is
// produced fresh on every calculation; monetary fields are whole currency units.
type PayrollSummary struct {
	Year       int        `json:"year"`
	Month      time.Month `json:"month"`
	CycleStart time.Time  `json:"cycle_start"`
	CycleEnd   time.Time  `json:"cycle_end"`

	TotalWorkDays    int `json:"total_work_days"`
	PaidLeaveDays    int `json:"paid_leave_days"`
	SickLeaveDays    int `json:"sick_leave_days"`
	SpecialLeaveDays int `json:"special_leave_days"`
	HolidayDays      int `json:"holiday_days"`

	TotalOTHours      decimal.Decimal `json:"total_ot_hours"`
	OTHoursNormal     decimal.Decimal `json:"ot_hours_normal"`
	OTHoursSunday     decimal.Decimal `json:"ot_hours_sunday"`
	OTHoursHolidayX2  decimal.Decimal `json:"ot_hours_holiday_x2"`
	OTHoursHolidayX3  decimal.Decimal `json:"ot_hours_holiday_x3"`
	OTHoursNightExtra decimal.Decimal `json:"ot_hours_night_extra"`

	OTAmountNormal     decimal.Decimal `json:"ot_amount_normal"`
	OTAmountSunday     decimal.Decimal `json:"ot_amount_sunday"`
	OTAmountHolidayX2  decimal.Decimal `json:"ot_amount_holiday_x2"`
	OTAmountHolidayX3  decimal.Decimal `json:"ot_amount_holiday_x3"`
	OTAmountNightExtra decimal.Decimal `json:"ot_amount_night_extra"`

	SundayAllowanceTotal decimal.Decimal `json:"sunday_allowance_total"`
	TotalAllowances      decimal.Decimal `json:"total_allowances"`
	OTIncome             decimal.Decimal `json:"ot_income"`
	BaseIncome           decimal.Decimal `json:"base_income"`
	GrossIncome          decimal.Decimal `json:"gross_income"`

	InsuranceDeduction decimal.Decimal `json:"insurance_deduction"`
	TaxExemptOT        decimal.Decimal `json:"tax_exempt_ot"`
	TaxableIncome      decimal.Decimal `json:"taxable_income"`
	PersonalTax        decimal.Decimal `json:"personal_tax"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`
	NetIncome          decimal.Decimal `json:"net_income"`

	DailyRate  decimal.Decimal `json:"daily_rate"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`

	Days []DayBreakdown `json:"days,omitempty"`

	// Assumptions lists the rules in effect, for rendering alongside the figures.
	Assumptions []string `json:"assumptions,omitempty"`
}
