package calculation

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ympay/payroll-calculator/internal/domain"
	"github.com/ympay/payroll-calculator/pkg/dateutil"
)

// CalculationEngine orchestrates the payroll calculation for one pay cycle.
// It holds no mutable state once built and is safe for concurrent use.
type CalculationEngine struct {
	Rules        domain.PayrollRules
	Calendar     HolidayCalendar
	Cycles       CycleResolver
	Classifier   *DayClassifier
	OvertimeCalc *OvertimeCalculator
	TaxCalc      *TaxCalculator
	Logger       Logger
}

// NewCalculationEngine creates an engine with the default rules and holiday calendar
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithRules(domain.DefaultPayrollRules(), DefaultCalendar())
}

// NewCalculationEngineWithRules creates an engine with configurable rules and calendar.
// See PayrollRules.WithDefaults for the fields filled when left zero.
func NewCalculationEngineWithRules(rules domain.PayrollRules, calendar HolidayCalendar) *CalculationEngine {
	rules = rules.WithDefaults()
	if calendar == nil {
		calendar = DefaultCalendar()
	}
	return &CalculationEngine{
		Rules:        rules,
		Calendar:     calendar,
		Cycles:       NewCycleResolver(rules.Cycle),
		Classifier:   NewDayClassifier(calendar, rules.Overtime.BaseShiftHours),
		OvertimeCalc: NewOvertimeCalculator(rules.Overtime),
		TaxCalc:      NewTaxCalculator(rules.Deductions, rules.TaxBrackets),
		Logger:       NopLogger{},
	}
}

// NewCalculationEngineForTimesheet applies the timesheet's rule overrides and
// extra holidays on top of the defaults.
func NewCalculationEngineForTimesheet(ts *domain.Timesheet) *CalculationEngine {
	rules := domain.DefaultPayrollRules()
	if ts.Rules != nil {
		rules = *ts.Rules
	}
	return NewCalculationEngineWithRules(rules, DefaultCalendar().WithEntries(ts.Holidays))
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// ResolveCycle returns the pay cycle for a target month
func (ce *CalculationEngine) ResolveCycle(year int, month time.Month) PayCycle {
	return ce.Cycles.Resolve(year, month)
}

// CalculateTimesheet runs Calculate over a loaded timesheet document
func (ce *CalculationEngine) CalculateTimesheet(ts *domain.Timesheet, year int, month time.Month) domain.PayrollSummary {
	return ce.Calculate(ts.Days, ts.SalaryConfig, ts.Allowances, year, month)
}

// Calculate produces the payroll summary for the cycle paid in year/month.
// Records outside the cycle are ignored; when two records share a date the
// later one wins.
func (ce *CalculationEngine) Calculate(days []domain.DayRecord, cfg domain.SalaryConfig, allowances []domain.Allowance, year int, month time.Month) domain.PayrollSummary {
	cycle := ce.ResolveCycle(year, month)
	records := ce.cycleRecords(days, cycle)

	dailyRate := decimal.Zero
	if cfg.StandardWorkDays > 0 {
		dailyRate = cfg.BaseSalary.Div(decimal.NewFromInt(int64(cfg.StandardWorkDays)))
	}
	hourlyRate := ce.OvertimeCalc.HourlyRate(cfg)

	summary := domain.PayrollSummary{
		Year:       year,
		Month:      month,
		CycleStart: cycle.Start,
		CycleEnd:   cycle.End,
		Days:       make([]domain.DayBreakdown, 0, len(records)),
	}

	var ot OvertimeResult
	for _, day := range records {
		c := ce.Classifier.Classify(day)
		r := ce.OvertimeCalc.Rate(c, hourlyRate)
		ot = ot.Add(r)

		if c.CountsAsWork {
			summary.TotalWorkDays++
		}
		if c.IsHoliday {
			summary.HolidayDays++
		}
		switch c.Leave {
		case domain.LeavePaid:
			summary.PaidLeaveDays++
		case domain.LeaveSick:
			summary.SickLeaveDays++
		case domain.LeaveSpecial:
			summary.SpecialLeaveDays++
		}

		ce.Logger.Debugf("%s kind=%s work=%t worked=%s ot=%s pay=%s",
			dateutil.DateKey(c.Date), c.Kind, c.CountsAsWork,
			c.WorkedHours.StringFixed(2), c.OvertimeHours.StringFixed(2), r.Amount().StringFixed(0))

		summary.Days = append(summary.Days, domain.DayBreakdown{
			Date:          c.Date,
			Kind:          c.Kind,
			HolidayName:   c.HolidayName,
			Shift:         day.Shift.Normalize(),
			Leave:         c.Leave,
			CountsAsWork:  c.CountsAsWork,
			WorkedHours:   c.WorkedHours,
			OvertimeHours: c.OvertimeHours,
			OvertimePay:   r.Amount(),
			TaxExemptPay:  r.TaxExempt,
			Allowance:     r.Allowance,
		})
	}

	summary.OTHoursNormal = ot.NormalHours
	summary.OTHoursSunday = ot.SundayHours
	summary.OTHoursHolidayX2 = ot.HolidayX2Hours
	summary.OTHoursHolidayX3 = ot.HolidayX3Hours
	summary.OTHoursNightExtra = ot.NightHours
	summary.TotalOTHours = ot.Hours()

	summary.OTAmountNormal = ot.NormalAmount.Round(0)
	summary.OTAmountSunday = ot.SundayAmount.Round(0)
	summary.OTAmountHolidayX2 = ot.HolidayX2Amount.Round(0)
	summary.OTAmountHolidayX3 = ot.HolidayX3Amount.Round(0)
	summary.OTAmountNightExtra = ot.NightAmount.Round(0)

	summary.SundayAllowanceTotal = ot.Allowance.Round(0)
	summary.TotalAllowances = domain.ActiveAllowanceTotal(allowances).Add(ot.Allowance).Round(0)
	summary.OTIncome = ot.Amount().Round(0)
	summary.BaseIncome = dailyRate.Mul(decimal.NewFromInt(int64(summary.TotalWorkDays))).Round(0)
	summary.GrossIncome = summary.BaseIncome.Add(summary.OTIncome).Add(summary.TotalAllowances)

	tax := ce.TaxCalc.Compute(summary.GrossIncome, cfg.InsuranceBase(), ot.TaxExempt, cfg.Dependents)
	summary.InsuranceDeduction = tax.InsuranceDeduction
	summary.TaxExemptOT = ot.TaxExempt.Round(0)
	summary.TaxableIncome = tax.TaxableIncome.Round(0)
	summary.PersonalTax = tax.PersonalTax
	summary.TotalDeductions = tax.InsuranceDeduction.Add(tax.PersonalTax)
	summary.NetIncome = summary.GrossIncome.Sub(summary.TotalDeductions)

	summary.DailyRate = dailyRate.Round(0)
	summary.HourlyRate = hourlyRate.Round(0)

	ce.Logger.Infof("cycle %s: work days=%d ot=%s gross=%s net=%s",
		cycle, summary.TotalWorkDays, summary.TotalOTHours.StringFixed(2),
		summary.GrossIncome.StringFixed(0), summary.NetIncome.StringFixed(0))

	return summary
}

// cycleRecords filters records to the cycle, keeps the last record per date
// and orders the result by date.
func (ce *CalculationEngine) cycleRecords(days []domain.DayRecord, cycle PayCycle) []domain.DayRecord {
	byDate := make(map[string]domain.DayRecord)
	for _, d := range days {
		if d.Date.IsZero() || !cycle.Contains(d.Date) {
			continue
		}
		key := dateutil.DateKey(d.Date)
		if _, dup := byDate[key]; dup {
			ce.Logger.Warnf("duplicate day record for %s, using the later entry", key)
		}
		byDate[key] = d
	}

	records := make([]domain.DayRecord, 0, len(byDate))
	for _, d := range byDate {
		records = append(records, d)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date.Before(records[j].Date) })
	return records
}
