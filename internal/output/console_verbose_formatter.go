package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ympay/payroll-calculator/internal/domain"
	"github.com/ympay/payroll-calculator/pkg/dateutil"
)

// ConsoleVerboseFormatter renders the detailed payslip with the per-day table.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(s *domain.PayrollSummary) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintf(&buf, "PAYSLIP %04d-%02d\n", s.Year, int(s.Month))
	fmt.Fprintln(&buf, strings.Repeat("=", 72))
	fmt.Fprintf(&buf, "Cycle:        %s\n", FormatCycle(s))
	fmt.Fprintf(&buf, "Daily rate:   %s\n", FormatCurrency(s.DailyRate))
	fmt.Fprintf(&buf, "Hourly rate:  %s\n", FormatCurrency(s.HourlyRate))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "ATTENDANCE")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "  Work days:         %d\n", s.TotalWorkDays)
	fmt.Fprintf(&buf, "  Paid leave:        %d\n", s.PaidLeaveDays)
	fmt.Fprintf(&buf, "  Sick leave:        %d\n", s.SickLeaveDays)
	fmt.Fprintf(&buf, "  Special leave:     %d\n", s.SpecialLeaveDays)
	fmt.Fprintf(&buf, "  Holidays:          %d\n", s.HolidayDays)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "OVERTIME")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	writeOvertimeLine(&buf, "Weekday ×1.5", s.OTHoursNormal, s.OTAmountNormal)
	writeOvertimeLine(&buf, "Night surcharge", s.OTHoursNightExtra, s.OTAmountNightExtra)
	writeOvertimeLine(&buf, "Sunday ×2.0", s.OTHoursSunday, s.OTAmountSunday)
	writeOvertimeLine(&buf, "Holiday ×2.0", s.OTHoursHolidayX2, s.OTAmountHolidayX2)
	writeOvertimeLine(&buf, "Holiday ×3.0", s.OTHoursHolidayX3, s.OTAmountHolidayX3)
	fmt.Fprintf(&buf, "  %-18s %8s  %s\n", "Total", FormatHours(s.TotalOTHours), FormatCurrency(s.OTIncome))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "INCOME")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "  Base pay:          %s\n", FormatCurrency(s.BaseIncome))
	fmt.Fprintf(&buf, "  Overtime:          %s\n", FormatCurrency(s.OTIncome))
	fmt.Fprintf(&buf, "  Allowances:        %s\n", FormatCurrency(s.TotalAllowances))
	if s.SundayAllowanceTotal.IsPositive() {
		fmt.Fprintf(&buf, "    incl. Sunday:    %s\n", FormatCurrency(s.SundayAllowanceTotal))
	}
	fmt.Fprintf(&buf, "  GROSS:             %s\n", FormatCurrency(s.GrossIncome))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "DEDUCTIONS & TAXES")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "  Insurance:         %s\n", FormatCurrency(s.InsuranceDeduction))
	fmt.Fprintf(&buf, "  Tax-exempt OT:     %s\n", FormatCurrency(s.TaxExemptOT))
	fmt.Fprintf(&buf, "  Taxable income:    %s\n", FormatCurrency(s.TaxableIncome))
	fmt.Fprintf(&buf, "  Personal tax:      %s\n", FormatCurrency(s.PersonalTax))
	fmt.Fprintf(&buf, "  TOTAL DEDUCTIONS:  %s\n", FormatCurrency(s.TotalDeductions))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "NET INCOME:          %s\n", FormatCurrency(s.NetIncome))
	fmt.Fprintln(&buf)

	a := AnalyzeSummary(s)
	fmt.Fprintln(&buf, "COMPOSITION")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "  Base %s  Overtime %s  Allowances %s\n", FormatPercentage(a.BaseShare), FormatPercentage(a.OvertimeShare), FormatPercentage(a.AllowanceShare))
	fmt.Fprintf(&buf, "  Deductions %s  Effective tax %s\n", FormatPercentage(a.DeductionRate), FormatPercentage(a.EffectiveTaxRate))
	fmt.Fprintln(&buf)

	if len(s.Days) > 0 {
		writeDayTable(&buf, s.Days)
	}

	fmt.Fprintln(&buf, "RULES APPLIED:")
	assumptions := s.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	return buf.Bytes(), nil
}

func writeOvertimeLine(w io.Writer, label string, hours, amount decimal.Decimal) {
	if hours.IsZero() && amount.IsZero() {
		return
	}
	fmt.Fprintf(w, "  %-18s %8s  %s\n", label, FormatHours(hours), FormatCurrency(amount))
}

func writeDayTable(w io.Writer, days []domain.DayBreakdown) {
	fmt.Fprintln(w, "DAYS")
	fmt.Fprintln(w, strings.Repeat("-", 72))
	fmt.Fprintf(w, "  %-10s %-3s %-8s %-6s %-7s %-4s %7s %7s  %s\n", "Date", "Day", "Kind", "Shift", "Leave", "Work", "Hours", "OT", "OT pay")
	for _, d := range days {
		work := ""
		if d.CountsAsWork {
			work = "yes"
		}
		fmt.Fprintf(w, "  %-10s %-3s %-8s %-6s %-7s %-4s %7s %7s  %s",
			dateutil.DateKey(d.Date), d.Date.Weekday().String()[:3], d.Kind, d.Shift, d.Leave, work,
			FormatHours(d.WorkedHours), FormatHours(d.OvertimeHours), FormatCurrency(d.OvertimePay))
		if d.HolidayName != "" {
			fmt.Fprintf(w, "  %s", d.HolidayName)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w)
}
