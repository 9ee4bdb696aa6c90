package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/ympay/payroll-calculator/internal/domain"
)

// TAX AND DEDUCTION ASSUMPTIONS:
//
// 1. Mandatory insurance: flat rate (10.5%) of the insurance salary, never of allowances.
// 2. Relief: personal relief plus a fixed amount per dependent, from taxable income.
// 3. Overtime premium over straight time is exempt from personal income tax.
// 4. Progressive schedule uses the quick-deduction form: income*rate - subtract.

// TaxResult is the output of the tax and deduction step
type TaxResult struct {
	InsuranceDeduction decimal.Decimal
	PersonalRelief     decimal.Decimal
	DependentRelief    decimal.Decimal
	TaxableIncome      decimal.Decimal
	PersonalTax        decimal.Decimal
}

// TaxCalculator computes insurance deduction and personal income tax
type TaxCalculator struct {
	Deductions domain.DeductionRules
	Brackets   []domain.TaxBracket
}

// NewTaxCalculator creates a tax calculator with the given deductions and schedule
func NewTaxCalculator(deductions domain.DeductionRules, brackets []domain.TaxBracket) *TaxCalculator {
	return &TaxCalculator{Deductions: deductions, Brackets: brackets}
}

// InsuranceDeduction returns the rounded mandatory-insurance deduction.
func (tc *TaxCalculator) InsuranceDeduction(insuranceBase decimal.Decimal) decimal.Decimal {
	if !insuranceBase.IsPositive() {
		return decimal.Zero
	}
	return insuranceBase.Mul(tc.Deductions.InsuranceRate).Round(0)
}

// Compute converts gross income into taxable income and personal tax.
// PersonalTax is rounded; TaxableIncome keeps full precision.
func (tc *TaxCalculator) Compute(grossIncome, insuranceBase, taxExemptOT decimal.Decimal, dependents int) TaxResult {
	if dependents < 0 {
		dependents = 0
	}
	res := TaxResult{
		InsuranceDeduction: tc.InsuranceDeduction(insuranceBase),
		PersonalRelief:     tc.Deductions.PersonalRelief,
		DependentRelief:    tc.Deductions.DependentRelief.Mul(decimal.NewFromInt(int64(dependents))),
	}

	taxable := grossIncome.
		Sub(res.InsuranceDeduction).
		Sub(taxExemptOT).
		Sub(res.PersonalRelief).
		Sub(res.DependentRelief)
	res.TaxableIncome = decimal.Max(decimal.Zero, taxable)
	res.PersonalTax = tc.ProgressiveTax(res.TaxableIncome).Round(0)
	return res
}

// ProgressiveTax applies the first bracket whose ceiling covers taxableIncome.
// The result is never negative.
func (tc *TaxCalculator) ProgressiveTax(taxableIncome decimal.Decimal) decimal.Decimal {
	if !taxableIncome.IsPositive() {
		return decimal.Zero
	}
	for _, b := range tc.Brackets {
		if b.Unbounded() || taxableIncome.LessThanOrEqual(b.Ceiling) {
			tax := taxableIncome.Mul(b.Rate).Sub(b.Subtract)
			return decimal.Max(decimal.Zero, tax)
		}
	}
	// schedule without an open-ended bracket: extend the last row
	if n := len(tc.Brackets); n > 0 {
		last := tc.Brackets[n-1]
		return decimal.Max(decimal.Zero, taxableIncome.Mul(last.Rate).Sub(last.Subtract))
	}
	return decimal.Zero
}
