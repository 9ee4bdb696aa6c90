package output

import (
	"bytes"
	"fmt"

	"github.com/ympay/payroll-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(s *domain.PayrollSummary) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "PAYROLL %04d-%02d (%s)\n", s.Year, int(s.Month), FormatCycle(s))
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Work days: %d  Leave: %d paid / %d sick / %d special  OT: %s\n",
		s.TotalWorkDays, s.PaidLeaveDays, s.SickLeaveDays, s.SpecialLeaveDays, FormatHours(s.TotalOTHours))
	fmt.Fprintf(&buf, "Gross=%s Insurance=%s Tax=%s\n",
		FormatCurrency(s.GrossIncome), FormatCurrency(s.InsuranceDeduction), FormatCurrency(s.PersonalTax))
	fmt.Fprintf(&buf, "Net: %s\n", FormatCurrency(s.NetIncome))
	return buf.Bytes(), nil
}
