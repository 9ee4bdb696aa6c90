package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ympay/payroll-calculator/internal/domain"
	"github.com/ympay/payroll-calculator/pkg/dateutil"
)

// DefaultStandardWorkDays is applied when a timesheet omits standard_work_days.
const DefaultStandardWorkDays = 26

var (
	// ErrDuplicateDate is returned when two day records share a date.
	ErrDuplicateDate = errors.New("duplicate day record")
	// ErrInvalidCycleDay is returned for a cycle start day outside 1..28.
	ErrInvalidCycleDay = errors.New("cycle start day must be between 1 and 28")
)

// InputParser handles parsing of timesheet documents
type InputParser struct {
	validate *validator.Validate
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &InputParser{validate: v}
}

// LoadFromFile loads a timesheet from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Timesheet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	ts, err := ip.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return ts, nil
}

// Parse decodes a timesheet document, applies defaults and validates it.
// JSON is accepted as a YAML subset.
func (ip *InputParser) Parse(data []byte) (*domain.Timesheet, error) {
	var ts domain.Timesheet
	if err := yaml.Unmarshal(data, &ts); err != nil {
		return nil, fmt.Errorf("failed to parse timesheet: %w", err)
	}

	ip.ApplyDefaults(&ts)

	if err := ip.ValidateTimesheet(&ts); err != nil {
		return nil, fmt.Errorf("timesheet validation failed: %w", err)
	}
	return &ts, nil
}

// ApplyDefaults fills omitted settings, assigns missing allowance ids and
// drops day records whose date could not be read.
func (ip *InputParser) ApplyDefaults(ts *domain.Timesheet) {
	if ts.SalaryConfig.StandardWorkDays == 0 {
		ts.SalaryConfig.StandardWorkDays = DefaultStandardWorkDays
	}

	for i := range ts.Allowances {
		if ts.Allowances[i].ID == "" {
			ts.Allowances[i].ID = uuid.NewString()
		}
	}

	days := ts.Days[:0]
	for i, d := range ts.Days {
		if d.Date.IsZero() {
			zap.S().Warnf("skipping day record %d: missing or malformed date", i)
			continue
		}
		days = append(days, d)
	}
	ts.Days = days
}

// ValidateTimesheet validates a decoded timesheet
func (ip *InputParser) ValidateTimesheet(ts *domain.Timesheet) error {
	if err := ip.validateSalaryConfig(&ts.SalaryConfig); err != nil {
		return fmt.Errorf("salary_config: %w", err)
	}

	seen := make(map[string]int, len(ts.Days))
	for i, d := range ts.Days {
		key := dateutil.DateKey(d.Date)
		if prev, dup := seen[key]; dup {
			return fmt.Errorf("days[%d] and days[%d] (%s): %w", prev, i, key, ErrDuplicateDate)
		}
		seen[key] = i
		if d.OvertimeHours.IsNegative() {
			return fmt.Errorf("days[%d] (%s): overtime hours cannot be negative", i, key)
		}
	}

	for i, a := range ts.Allowances {
		if a.Amount.IsNegative() {
			return fmt.Errorf("allowances[%d] (%s): amount cannot be negative", i, a.Name)
		}
	}

	if ts.Rules != nil {
		if err := ip.ValidateRules(ts.Rules); err != nil {
			return fmt.Errorf("rules: %w", err)
		}
	}

	return ip.structErrors(ts)
}

func (ip *InputParser) validateSalaryConfig(cfg *domain.SalaryConfig) error {
	if cfg.BaseSalary.IsNegative() {
		return fmt.Errorf("base salary cannot be negative")
	}
	if cfg.InsuranceSalary.IsNegative() {
		return fmt.Errorf("insurance salary cannot be negative")
	}
	return nil
}

// ValidateRules validates rule overrides. Zero fields are allowed and fall
// back to the defaults when the engine is built.
func (ip *InputParser) ValidateRules(rules *domain.PayrollRules) error {
	if rules.Cycle.StartDay < 0 || rules.Cycle.StartDay > 28 {
		return fmt.Errorf("start day %d: %w", rules.Cycle.StartDay, ErrInvalidCycleDay)
	}

	ot := rules.Overtime
	for name, v := range map[string]decimal.Decimal{
		"base_shift_hours":            ot.BaseShiftHours,
		"ordinary_multiplier":         ot.OrdinaryMultiplier,
		"sunday_multiplier":           ot.SundayMultiplier,
		"holiday_multiplier":          ot.HolidayMultiplier,
		"holiday_extended_multiplier": ot.HolidayExtendedMultiplier,
		"holiday_threshold_hours":     ot.HolidayThresholdHours,
		"night_surcharge":             ot.NightSurcharge,
		"night_threshold_hours":       ot.NightThresholdHours,
		"sunday_allowance":            ot.SundayAllowance,
		"insurance_rate":              rules.Deductions.InsuranceRate,
		"personal_relief":             rules.Deductions.PersonalRelief,
		"dependent_relief":            rules.Deductions.DependentRelief,
	} {
		if v.IsNegative() {
			return fmt.Errorf("%s cannot be negative", name)
		}
	}
	if rules.Deductions.InsuranceRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("insurance_rate must be between 0 and 1")
	}

	for i, b := range rules.TaxBrackets {
		if b.Unbounded() && i != len(rules.TaxBrackets)-1 {
			return fmt.Errorf("tax_brackets[%d]: only the last bracket may be open-ended", i)
		}
		if i > 0 && !b.Unbounded() && !b.Ceiling.GreaterThan(rules.TaxBrackets[i-1].Ceiling) {
			return fmt.Errorf("tax_brackets[%d]: ceilings must increase", i)
		}
		if b.Rate.IsNegative() || b.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("tax_brackets[%d]: rate must be between 0 and 1", i)
		}
	}
	return nil
}

// structErrors runs the struct-tag validation and flattens every failure into one error.
func (ip *InputParser) structErrors(ts *domain.Timesheet) error {
	err := ip.validate.Struct(ts)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return err
	}

	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		field := strings.TrimPrefix(e.Namespace(), "Timesheet.")
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %v", field, e.Param(), e.Value()))
		case "datetime":
			msgs = append(msgs, fmt.Sprintf("%s must be a time in %s format, got %v", field, e.Param(), e.Value()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", field, e.Tag(), e.Param()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

// MarshalTimesheet encodes a timesheet as YAML
func (ip *InputParser) MarshalTimesheet(ts *domain.Timesheet) ([]byte, error) {
	data, err := yaml.Marshal(ts)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timesheet: %w", err)
	}
	return data, nil
}

// SaveTimesheet writes a timesheet as YAML
func (ip *InputParser) SaveTimesheet(ts *domain.Timesheet, filename string) error {
	data, err := ip.MarshalTimesheet(ts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// CreateExampleTimesheet creates an example timesheet for the January 2025 cycle
func (ip *InputParser) CreateExampleTimesheet() *domain.Timesheet {
	return &domain.Timesheet{
		SalaryConfig: domain.SalaryConfig{
			BaseSalary:       decimal.NewFromInt(10000000),
			StandardWorkDays: DefaultStandardWorkDays,
			InsuranceSalary:  decimal.NewFromInt(10000000),
		},
		Allowances: []domain.Allowance{
			{ID: "fuel", Name: "Xăng xe", Amount: decimal.NewFromInt(500000), IsActive: true},
			{ID: "phone", Name: "Điện thoại", Amount: decimal.NewFromInt(200000), IsActive: false},
		},
		Days: []domain.DayRecord{
			{Date: dateutil.Date(2025, 1, 1), Shift: domain.ShiftNone, Leave: domain.LeaveNone, OvertimeHours: decimal.NewFromInt(10), Notes: "Tết Dương lịch"},
			{Date: dateutil.Date(2025, 1, 5), Shift: domain.ShiftNone, Leave: domain.LeaveNone, OvertimeHours: decimal.NewFromInt(4)},
			{Date: dateutil.Date(2025, 1, 6), Shift: domain.ShiftDay, Leave: domain.LeaveNone, OvertimeHours: decimal.NewFromInt(2)},
			{Date: dateutil.Date(2025, 1, 7), Shift: domain.ShiftNone, Leave: domain.LeavePaid},
			{Date: dateutil.Date(2025, 1, 8), Shift: domain.ShiftNone, Leave: domain.LeaveSick},
			{Date: dateutil.Date(2025, 1, 9), Shift: domain.ShiftNight, Leave: domain.LeaveNone, CheckIn: "20:00", CheckOut: "07:00"},
		},
	}
}
