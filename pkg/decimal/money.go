package decimal

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol is appended by Format.
const CurrencySymbol = "₫"

var printer = message.NewPrinter(language.Vietnamese)

// Money is an amount in whole dong; VND has no minor unit.
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal wraps a decimal amount
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds to whole currency units, half away from zero.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(0)}
}

// Format renders the rounded amount with dot grouping and the currency symbol,
// e.g. "10.000.000 ₫".
func (m Money) Format() string {
	return printer.Sprintf("%d", m.Round().IntPart()) + " " + CurrencySymbol
}

// FormatDecimal is Format for a bare decimal.
func FormatDecimal(d decimal.Decimal) string {
	return NewMoneyFromDecimal(d).Format()
}
