package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/ympay/payroll-calculator/pkg/dateutil"
)

// ShiftType identifies the scheduled standard shift for a day
type ShiftType string

const (
	ShiftNone  ShiftType = "NONE"
	ShiftDay   ShiftType = "DAY"
	ShiftNight ShiftType = "NIGHT"
)

// Active reports whether a standard shift was scheduled. Unknown values are inactive.
func (s ShiftType) Active() bool {
	return s == ShiftDay || s == ShiftNight
}

// Normalize maps unknown or empty values to ShiftNone.
func (s ShiftType) Normalize() ShiftType {
	if s.Active() {
		return s
	}
	return ShiftNone
}

// LeaveType identifies the kind of leave taken on a day
type LeaveType string

const (
	LeaveNone    LeaveType = "NONE"
	LeavePaid    LeaveType = "PAID"    // annual leave, paid as a worked day
	LeaveSick    LeaveType = "SICK"    // unpaid by the employer
	LeaveSpecial LeaveType = "SPECIAL" // statutory holiday leave such as Tết
)

// Normalize maps unknown or empty values to LeaveNone.
func (l LeaveType) Normalize() LeaveType {
	switch l {
	case LeavePaid, LeaveSick, LeaveSpecial:
		return l
	default:
		return LeaveNone
	}
}

// DayRecord is one calendar day's attendance entry. Date is unique across a history.
type DayRecord struct {
	Date     time.Time `yaml:"date" json:"date" validate:"required"`
	Shift    ShiftType `yaml:"shift" json:"shift" validate:"omitempty,oneof=NONE DAY NIGHT"`
	Leave    LeaveType `yaml:"leave" json:"leave" validate:"omitempty,oneof=NONE PAID SICK SPECIAL"`
	CheckIn  string    `yaml:"check_in,omitempty" json:"check_in,omitempty" validate:"omitempty,datetime=15:04"`
	CheckOut string    `yaml:"check_out,omitempty" json:"check_out,omitempty" validate:"omitempty,datetime=15:04"`

	// OvertimeHours is the stored hours figure used when no check-in/check-out
	// pair is present: extra hours on ordinary days, total hours on Sundays and holidays.
	OvertimeHours decimal.Decimal `yaml:"overtime_hours" json:"overtime_hours"`
	IsHoliday     bool            `yaml:"is_holiday" json:"is_holiday"`
	Notes         string          `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// HasClockTimes reports whether both check-in and check-out are recorded.
func (d DayRecord) HasClockTimes() bool {
	return strings.TrimSpace(d.CheckIn) != "" && strings.TrimSpace(d.CheckOut) != ""
}

// IsEmpty reports whether the record carries no information and can be dropped from storage.
func (d DayRecord) IsEmpty() bool {
	return !d.Shift.Active() &&
		d.Leave.Normalize() == LeaveNone &&
		d.OvertimeHours.IsZero() &&
		!d.IsHoliday &&
		strings.TrimSpace(d.Notes) == "" &&
		strings.TrimSpace(d.CheckIn) == "" &&
		strings.TrimSpace(d.CheckOut) == ""
}

// UnmarshalYAML decodes a day record leniently: malformed numbers and flags
// become zero values, and a malformed date becomes the zero time.
func (d *DayRecord) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		Date          string `yaml:"date"`
		Shift         string `yaml:"shift"`
		Leave         string `yaml:"leave"`
		CheckIn       string `yaml:"check_in"`
		CheckOut      string `yaml:"check_out"`
		OvertimeHours string `yaml:"overtime_hours"`
		IsHoliday     string `yaml:"is_holiday"`
		Notes         string `yaml:"notes"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	date, err := dateutil.ParseDate(aux.Date)
	if err != nil {
		date = time.Time{}
	}
	d.Date = date
	d.Shift = ShiftType(strings.ToUpper(strings.TrimSpace(aux.Shift)))
	if d.Shift == "" {
		d.Shift = ShiftNone
	}
	d.Leave = LeaveType(strings.ToUpper(strings.TrimSpace(aux.Leave)))
	if d.Leave == "" {
		d.Leave = LeaveNone
	}
	d.CheckIn = strings.TrimSpace(aux.CheckIn)
	d.CheckOut = strings.TrimSpace(aux.CheckOut)
	d.OvertimeHours = LenientDecimal(aux.OvertimeHours)
	d.IsHoliday = LenientBool(aux.IsHoliday)
	d.Notes = aux.Notes
	return nil
}

// MarshalYAML writes the date as a YYYY-MM-DD key and omits empty fields.
func (d DayRecord) MarshalYAML() (interface{}, error) {
	type Alias struct {
		Date          string          `yaml:"date"`
		Shift         ShiftType       `yaml:"shift"`
		Leave         LeaveType       `yaml:"leave"`
		CheckIn       string          `yaml:"check_in,omitempty"`
		CheckOut      string          `yaml:"check_out,omitempty"`
		OvertimeHours decimal.Decimal `yaml:"overtime_hours"`
		IsHoliday     bool            `yaml:"is_holiday,omitempty"`
		Notes         string          `yaml:"notes,omitempty"`
	}
	return Alias{
		Date:          dateutil.DateKey(d.Date),
		Shift:         d.Shift,
		Leave:         d.Leave,
		CheckIn:       d.CheckIn,
		CheckOut:      d.CheckOut,
		OvertimeHours: d.OvertimeHours,
		IsHoliday:     d.IsHoliday,
		Notes:         d.Notes,
	}, nil
}

// SalaryConfig holds cycle-independent pay settings
type SalaryConfig struct {
	BaseSalary       decimal.Decimal `yaml:"base_salary" json:"base_salary"`
	StandardWorkDays int             `yaml:"standard_work_days" json:"standard_work_days" validate:"gte=0,lte=31"`
	InsuranceSalary  decimal.Decimal `yaml:"insurance_salary,omitempty" json:"insurance_salary,omitempty"`
	Dependents       int             `yaml:"dependents,omitempty" json:"dependents,omitempty" validate:"gte=0"`
}

// InsuranceBase returns the insurance salary, or the base salary when none is configured.
func (c SalaryConfig) InsuranceBase() decimal.Decimal {
	if c.InsuranceSalary.IsPositive() {
		return c.InsuranceSalary
	}
	return c.BaseSalary
}

// UnmarshalYAML decodes salary settings leniently.
func (c *SalaryConfig) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		BaseSalary       string `yaml:"base_salary"`
		StandardWorkDays string `yaml:"standard_work_days"`
		InsuranceSalary  string `yaml:"insurance_salary"`
		Dependents       string `yaml:"dependents"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	c.BaseSalary = LenientDecimal(aux.BaseSalary)
	c.StandardWorkDays = LenientInt(aux.StandardWorkDays)
	c.InsuranceSalary = LenientDecimal(aux.InsuranceSalary)
	c.Dependents = LenientInt(aux.Dependents)
	return nil
}

// Allowance is a named monthly amount; only active allowances count toward income.
type Allowance struct {
	ID       string          `yaml:"id" json:"id"`
	Name     string          `yaml:"name" json:"name" validate:"required"`
	Amount   decimal.Decimal `yaml:"amount" json:"amount"`
	IsActive bool            `yaml:"is_active" json:"is_active"`
}

// UnmarshalYAML decodes an allowance leniently.
func (a *Allowance) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		ID       string `yaml:"id"`
		Name     string `yaml:"name"`
		Amount   string `yaml:"amount"`
		IsActive string `yaml:"is_active"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	a.ID = strings.TrimSpace(aux.ID)
	a.Name = strings.TrimSpace(aux.Name)
	a.Amount = LenientDecimal(aux.Amount)
	a.IsActive = LenientBool(aux.IsActive)
	return nil
}

// ActiveAllowanceTotal sums the amounts of active allowances.
func ActiveAllowanceTotal(allowances []Allowance) decimal.Decimal {
	total := decimal.Zero
	for _, a := range allowances {
		if a.IsActive {
			total = total.Add(a.Amount)
		}
	}
	return total
}

// HolidayEntry is a dated holiday supplied as data.
type HolidayEntry struct {
	Date time.Time `yaml:"date" json:"date" validate:"required"`
	Name string    `yaml:"name" json:"name" validate:"required"`
}

// UnmarshalYAML accepts the date as a YYYY-MM-DD key.
func (h *HolidayEntry) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		Date string `yaml:"date"`
		Name string `yaml:"name"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	date, err := dateutil.ParseDate(aux.Date)
	if err != nil {
		date = time.Time{}
	}
	h.Date = date
	h.Name = strings.TrimSpace(aux.Name)
	return nil
}

// MarshalYAML writes the date as a YYYY-MM-DD key.
func (h HolidayEntry) MarshalYAML() (interface{}, error) {
	return struct {
		Date string `yaml:"date"`
		Name string `yaml:"name"`
	}{dateutil.DateKey(h.Date), h.Name}, nil
}

// Timesheet is the complete input document: settings, allowances and the day history.
type Timesheet struct {
	SalaryConfig SalaryConfig   `yaml:"salary_config" json:"salary_config"`
	Allowances   []Allowance    `yaml:"allowances" json:"allowances" validate:"dive"`
	Days         []DayRecord    `yaml:"days" json:"days" validate:"dive"`
	Rules        *PayrollRules  `yaml:"rules,omitempty" json:"rules,omitempty"`
	Holidays     []HolidayEntry `yaml:"holidays,omitempty" json:"holidays,omitempty" validate:"dive"`
}
