package output

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/ympay/payroll-calculator/internal/domain"
	pkgdecimal "github.com/ympay/payroll-calculator/pkg/decimal"
	"github.com/ympay/payroll-calculator/pkg/dateutil"
)

// FormatCurrency formats an amount as whole đồng with vi-VN digit grouping, e.g. 10.000.000 ₫.
func FormatCurrency(amount decimal.Decimal) string {
	return pkgdecimal.FormatDecimal(amount)
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatHours formats an hour count with up to 2 decimals.
func FormatHours(hours decimal.Decimal) string { return hours.Round(2).String() + "h" }

// FormatCycle renders the cycle range of a summary.
func FormatCycle(s *domain.PayrollSummary) string {
	return dateutil.DateKey(s.CycleStart) + " → " + dateutil.DateKey(s.CycleEnd)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
