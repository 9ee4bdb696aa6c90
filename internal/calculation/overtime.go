package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ympay/payroll-calculator/internal/domain"
)

// OvertimeResult holds the hours and pay a single day contributes to each
// overtime bucket. Amounts are unrounded.
type OvertimeResult struct {
	NormalHours    decimal.Decimal
	SundayHours    decimal.Decimal
	HolidayX2Hours decimal.Decimal
	HolidayX3Hours decimal.Decimal
	NightHours     decimal.Decimal // subset of NormalHours

	NormalAmount    decimal.Decimal
	SundayAmount    decimal.Decimal
	HolidayX2Amount decimal.Decimal
	HolidayX3Amount decimal.Decimal
	NightAmount     decimal.Decimal // surcharge only, on top of NormalAmount

	// TaxExempt is the premium paid over the straight-time equivalent.
	TaxExempt decimal.Decimal

	// Allowance is the flat Sunday attendance allowance, when earned.
	Allowance decimal.Decimal
}

// Hours returns the total overtime-rated hours. Night hours are already counted as normal hours.
func (r OvertimeResult) Hours() decimal.Decimal {
	return r.NormalHours.Add(r.SundayHours).Add(r.HolidayX2Hours).Add(r.HolidayX3Hours)
}

// Amount returns the total overtime pay, excluding the Sunday allowance.
func (r OvertimeResult) Amount() decimal.Decimal {
	return r.NormalAmount.Add(r.SundayAmount).Add(r.HolidayX2Amount).Add(r.HolidayX3Amount).Add(r.NightAmount)
}

// Add accumulates another result into this one
func (r OvertimeResult) Add(o OvertimeResult) OvertimeResult {
	return OvertimeResult{
		NormalHours:     r.NormalHours.Add(o.NormalHours),
		SundayHours:     r.SundayHours.Add(o.SundayHours),
		HolidayX2Hours:  r.HolidayX2Hours.Add(o.HolidayX2Hours),
		HolidayX3Hours:  r.HolidayX3Hours.Add(o.HolidayX3Hours),
		NightHours:      r.NightHours.Add(o.NightHours),
		NormalAmount:    r.NormalAmount.Add(o.NormalAmount),
		SundayAmount:    r.SundayAmount.Add(o.SundayAmount),
		HolidayX2Amount: r.HolidayX2Amount.Add(o.HolidayX2Amount),
		HolidayX3Amount: r.HolidayX3Amount.Add(o.HolidayX3Amount),
		NightAmount:     r.NightAmount.Add(o.NightAmount),
		TaxExempt:       r.TaxExempt.Add(o.TaxExempt),
		Allowance:       r.Allowance.Add(o.Allowance),
	}
}

// OvertimeCalculator rates overtime hours using a multiplier table
type OvertimeCalculator struct {
	Rules domain.OvertimeRules
}

// NewOvertimeCalculator creates a calculator for the given multiplier table
func NewOvertimeCalculator(rules domain.OvertimeRules) *OvertimeCalculator {
	return &OvertimeCalculator{Rules: rules}
}

// HourlyRate derives the overtime hourly rate: insurance base / standard days / shift hours.
func (oc *OvertimeCalculator) HourlyRate(cfg domain.SalaryConfig) decimal.Decimal {
	if cfg.StandardWorkDays <= 0 || !oc.Rules.BaseShiftHours.IsPositive() {
		return decimal.Zero
	}
	return cfg.InsuranceBase().
		Div(decimal.NewFromInt(int64(cfg.StandardWorkDays))).
		Div(oc.Rules.BaseShiftHours)
}

// Rate prices a classified day. Holiday takes priority over Sunday, and
// Sunday over an ordinary day; each day fills exactly one bucket set.
func (oc *OvertimeCalculator) Rate(c DayClassification, hourlyRate decimal.Decimal) OvertimeResult {
	hours := c.OvertimeHours
	if !hours.IsPositive() {
		return OvertimeResult{}
	}

	switch c.Kind {
	case domain.DayHoliday:
		return oc.rateHoliday(hours, hourlyRate)
	case domain.DaySunday:
		return oc.rateSunday(hours, hourlyRate)
	default:
		return oc.rateOrdinary(hours, hourlyRate)
	}
}

func (oc *OvertimeCalculator) rateHoliday(hours, rate decimal.Decimal) OvertimeResult {
	first := decimal.Min(hours, oc.Rules.HolidayThresholdHours)
	extra := decimal.Max(decimal.Zero, hours.Sub(first))

	var r OvertimeResult
	r.HolidayX2Hours = first
	r.HolidayX3Hours = extra
	r.HolidayX2Amount = first.Mul(rate).Mul(oc.Rules.HolidayMultiplier)
	r.HolidayX3Amount = extra.Mul(rate).Mul(oc.Rules.HolidayExtendedMultiplier)
	r.TaxExempt = premium(first, rate, oc.Rules.HolidayMultiplier).
		Add(premium(extra, rate, oc.Rules.HolidayExtendedMultiplier))
	return r
}

func (oc *OvertimeCalculator) rateSunday(hours, rate decimal.Decimal) OvertimeResult {
	var r OvertimeResult
	r.SundayHours = hours
	r.SundayAmount = hours.Mul(rate).Mul(oc.Rules.SundayMultiplier)
	r.TaxExempt = premium(hours, rate, oc.Rules.SundayMultiplier)
	r.Allowance = oc.Rules.SundayAllowance
	return r
}

func (oc *OvertimeCalculator) rateOrdinary(hours, rate decimal.Decimal) OvertimeResult {
	night := decimal.Max(decimal.Zero, hours.Sub(oc.Rules.NightThresholdHours))

	var r OvertimeResult
	r.NormalHours = hours
	r.NightHours = night
	r.NormalAmount = hours.Mul(rate).Mul(oc.Rules.OrdinaryMultiplier)
	r.NightAmount = night.Mul(rate).Mul(oc.Rules.NightSurcharge)
	r.TaxExempt = premium(hours, rate, oc.Rules.OrdinaryMultiplier).Add(r.NightAmount)
	return r
}

// premium is the pay above straight time for hours at multiplier, never negative.
func premium(hours, rate, multiplier decimal.Decimal) decimal.Decimal {
	excess := decimal.Max(decimal.Zero, multiplier.Sub(decimal.NewFromInt(1)))
	return hours.Mul(rate).Mul(excess)
}
