package output

import (
	"bytes"
	"encoding/csv"

	"github.com/ympay/payroll-calculator/internal/domain"
	"github.com/ympay/payroll-calculator/pkg/dateutil"
)

// CSVSummarizer implements the summary CSV output (one row per pay cycle).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(s *domain.PayrollSummary) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Year", "Month", "CycleStart", "CycleEnd",
		"TotalWorkDays", "PaidLeaveDays", "SickLeaveDays", "SpecialLeaveDays", "HolidayDays",
		"TotalOTHours", "OTHoursNormal", "OTHoursSunday", "OTHoursHolidayX2", "OTHoursHolidayX3", "OTHoursNightExtra",
		"OTAmountNormal", "OTAmountSunday", "OTAmountHolidayX2", "OTAmountHolidayX3", "OTAmountNightExtra",
		"BaseIncome", "OTIncome", "SundayAllowance", "TotalAllowances", "GrossIncome",
		"InsuranceDeduction", "TaxExemptOT", "TaxableIncome", "PersonalTax", "TotalDeductions", "NetIncome",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	row := []string{
		intToString(s.Year), intToString(int(s.Month)), dateutil.DateKey(s.CycleStart), dateutil.DateKey(s.CycleEnd),
		intToString(s.TotalWorkDays), intToString(s.PaidLeaveDays), intToString(s.SickLeaveDays), intToString(s.SpecialLeaveDays), intToString(s.HolidayDays),
		s.TotalOTHours.StringFixed(2), s.OTHoursNormal.StringFixed(2), s.OTHoursSunday.StringFixed(2),
		s.OTHoursHolidayX2.StringFixed(2), s.OTHoursHolidayX3.StringFixed(2), s.OTHoursNightExtra.StringFixed(2),
		s.OTAmountNormal.StringFixed(0), s.OTAmountSunday.StringFixed(0), s.OTAmountHolidayX2.StringFixed(0),
		s.OTAmountHolidayX3.StringFixed(0), s.OTAmountNightExtra.StringFixed(0),
		s.BaseIncome.StringFixed(0), s.OTIncome.StringFixed(0), s.SundayAllowanceTotal.StringFixed(0),
		s.TotalAllowances.StringFixed(0), s.GrossIncome.StringFixed(0),
		s.InsuranceDeduction.StringFixed(0), s.TaxExemptOT.StringFixed(0), s.TaxableIncome.StringFixed(0),
		s.PersonalTax.StringFixed(0), s.TotalDeductions.StringFixed(0), s.NetIncome.StringFixed(0),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
