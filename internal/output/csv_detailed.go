package output

import (
	"bytes"

	"github.com/gocarina/gocsv"

	"github.com/ympay/payroll-calculator/internal/domain"
	"github.com/ympay/payroll-calculator/pkg/dateutil"
)

// CSVDetailedExporter provides one row per classified day in the cycle.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

// dayRow is the exported shape of a DayBreakdown; amounts are pre-rounded strings.
type dayRow struct {
	Date          string `csv:"Date"`
	Weekday       string `csv:"Weekday"`
	Kind          string `csv:"Kind"`
	Holiday       string `csv:"Holiday"`
	Shift         string `csv:"Shift"`
	Leave         string `csv:"Leave"`
	CountsAsWork  string `csv:"CountsAsWork"`
	WorkedHours   string `csv:"WorkedHours"`
	OvertimeHours string `csv:"OvertimeHours"`
	OvertimePay   string `csv:"OvertimePay"`
	TaxExemptPay  string `csv:"TaxExemptPay"`
	Allowance     string `csv:"Allowance"`
}

func newDayRow(d domain.DayBreakdown) dayRow {
	return dayRow{
		Date:          dateutil.DateKey(d.Date),
		Weekday:       d.Date.Weekday().String(),
		Kind:          string(d.Kind),
		Holiday:       d.HolidayName,
		Shift:         string(d.Shift),
		Leave:         string(d.Leave),
		CountsAsWork:  boolToString(d.CountsAsWork),
		WorkedHours:   d.WorkedHours.StringFixed(2),
		OvertimeHours: d.OvertimeHours.StringFixed(2),
		OvertimePay:   d.OvertimePay.StringFixed(0),
		TaxExemptPay:  d.TaxExemptPay.StringFixed(0),
		Allowance:     d.Allowance.StringFixed(0),
	}
}

func (c CSVDetailedExporter) Format(s *domain.PayrollSummary) ([]byte, error) {
	rows := make([]dayRow, 0, len(s.Days))
	for _, d := range s.Days {
		rows = append(rows, newDayRow(d))
	}
	buf := &bytes.Buffer{}
	if err := gocsv.Marshal(rows, buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
