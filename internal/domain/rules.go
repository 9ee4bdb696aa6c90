package domain

import (
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// PayrollRules groups every business constant the engine applies, so that a
// revised multiplier, bracket or cycle boundary is a data change.
type PayrollRules struct {
	Cycle       PayCycleRule   `yaml:"cycle" json:"cycle"`
	Overtime    OvertimeRules  `yaml:"overtime" json:"overtime"`
	Deductions  DeductionRules `yaml:"deductions" json:"deductions"`
	TaxBrackets []TaxBracket   `yaml:"tax_brackets,omitempty" json:"tax_brackets,omitempty"`
}

// PayCycleRule fixes the pay-cycle boundary. A cycle for month M runs from
// StartDay of month M-1 through StartDay-1 of month M. StartDay 1 means the
// calendar month itself.
type PayCycleRule struct {
	StartDay int `yaml:"start_day" json:"start_day" validate:"gte=0,lte=28"`
}

// OvertimeRules holds the multiplier table for overtime buckets
type OvertimeRules struct {
	BaseShiftHours            decimal.Decimal `yaml:"base_shift_hours" json:"base_shift_hours"`
	OrdinaryMultiplier        decimal.Decimal `yaml:"ordinary_multiplier" json:"ordinary_multiplier"`
	SundayMultiplier          decimal.Decimal `yaml:"sunday_multiplier" json:"sunday_multiplier"`
	HolidayMultiplier         decimal.Decimal `yaml:"holiday_multiplier" json:"holiday_multiplier"`
	HolidayExtendedMultiplier decimal.Decimal `yaml:"holiday_extended_multiplier" json:"holiday_extended_multiplier"`
	HolidayThresholdHours     decimal.Decimal `yaml:"holiday_threshold_hours" json:"holiday_threshold_hours"`

	// NightSurcharge is added on top of the ordinary multiplier for ordinary
	// overtime hours beyond NightThresholdHours.
	NightSurcharge      decimal.Decimal `yaml:"night_surcharge" json:"night_surcharge"`
	NightThresholdHours decimal.Decimal `yaml:"night_threshold_hours" json:"night_threshold_hours"`

	// SundayAllowance is paid once for each non-holiday Sunday with worked hours.
	SundayAllowance decimal.Decimal `yaml:"sunday_allowance" json:"sunday_allowance"`
}

// DeductionRules holds the statutory deduction parameters
type DeductionRules struct {
	InsuranceRate   decimal.Decimal `yaml:"insurance_rate" json:"insurance_rate"`
	PersonalRelief  decimal.Decimal `yaml:"personal_relief" json:"personal_relief"`
	DependentRelief decimal.Decimal `yaml:"dependent_relief" json:"dependent_relief"`
}

// TaxBracket is one row of the progressive schedule: tax = income*Rate - Subtract
// for incomes up to Ceiling. A zero Ceiling marks the open-ended top bracket.
type TaxBracket struct {
	Ceiling  decimal.Decimal `yaml:"ceiling" json:"ceiling"`
	Rate     decimal.Decimal `yaml:"rate" json:"rate"`
	Subtract decimal.Decimal `yaml:"subtract" json:"subtract"`
}

// Unbounded reports whether this is the open-ended top bracket.
func (b TaxBracket) Unbounded() bool {
	return b.Ceiling.IsZero()
}

// DefaultPayrollRules returns the current statutory rule set.
func DefaultPayrollRules() PayrollRules {
	return PayrollRules{
		Cycle: PayCycleRule{StartDay: 21},
		Overtime: OvertimeRules{
			BaseShiftHours:            decimal.NewFromInt(8),
			OrdinaryMultiplier:        decimal.NewFromFloat(1.5),
			SundayMultiplier:          decimal.NewFromFloat(2.0),
			HolidayMultiplier:         decimal.NewFromFloat(2.0),
			HolidayExtendedMultiplier: decimal.NewFromFloat(3.0),
			HolidayThresholdHours:     decimal.NewFromInt(8),
			NightSurcharge:            decimal.NewFromFloat(0.3),
			NightThresholdHours:       decimal.NewFromInt(8),
			SundayAllowance:           decimal.NewFromInt(22000),
		},
		Deductions: DeductionRules{
			InsuranceRate:   decimal.NewFromFloat(0.105),
			PersonalRelief:  decimal.NewFromInt(11000000),
			DependentRelief: decimal.NewFromInt(4400000),
		},
		TaxBrackets: DefaultTaxBrackets(),
	}
}

// DefaultTaxBrackets returns the seven-step personal income tax schedule.
func DefaultTaxBrackets() []TaxBracket {
	return []TaxBracket{
		{decimal.NewFromInt(5000000), decimal.NewFromFloat(0.05), decimal.Zero},
		{decimal.NewFromInt(10000000), decimal.NewFromFloat(0.10), decimal.NewFromInt(250000)},
		{decimal.NewFromInt(18000000), decimal.NewFromFloat(0.15), decimal.NewFromInt(750000)},
		{decimal.NewFromInt(32000000), decimal.NewFromFloat(0.20), decimal.NewFromInt(1650000)},
		{decimal.NewFromInt(52000000), decimal.NewFromFloat(0.25), decimal.NewFromInt(3250000)},
		{decimal.NewFromInt(80000000), decimal.NewFromFloat(0.30), decimal.NewFromInt(5850000)},
		{decimal.Zero, decimal.NewFromFloat(0.35), decimal.NewFromInt(9850000)},
	}
}

// UnmarshalYAML decodes overrides on top of DefaultPayrollRules: omitted keys
// keep the default and an explicit zero stays zero. A tax_brackets list
// replaces the whole default schedule.
func (r *PayrollRules) UnmarshalYAML(value *yaml.Node) error {
	type plain PayrollRules
	p := plain(DefaultPayrollRules())
	if err := value.Decode(&p); err != nil {
		return err
	}
	*r = PayrollRules(p)
	return nil
}

// WithDefaults fills the fields for which zero has no meaning: the cycle start
// day, the base shift, the pay multipliers and an empty bracket list.
// Surcharges, thresholds, allowances, the insurance rate and reliefs may be
// zero deliberately and are kept as given.
func (r PayrollRules) WithDefaults() PayrollRules {
	def := DefaultPayrollRules()
	if r.Cycle.StartDay <= 0 {
		r.Cycle.StartDay = def.Cycle.StartDay
	}

	ot := &r.Overtime
	fill(&ot.BaseShiftHours, def.Overtime.BaseShiftHours)
	fill(&ot.OrdinaryMultiplier, def.Overtime.OrdinaryMultiplier)
	fill(&ot.SundayMultiplier, def.Overtime.SundayMultiplier)
	fill(&ot.HolidayMultiplier, def.Overtime.HolidayMultiplier)
	fill(&ot.HolidayExtendedMultiplier, def.Overtime.HolidayExtendedMultiplier)

	if len(r.TaxBrackets) == 0 {
		r.TaxBrackets = def.TaxBrackets
	}
	return r
}

func fill(field *decimal.Decimal, def decimal.Decimal) {
	if field.IsZero() {
		*field = def
	}
}
