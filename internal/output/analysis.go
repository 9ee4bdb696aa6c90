package output

import (
	"github.com/shopspring/decimal"

	"github.com/ympay/payroll-calculator/internal/domain"
)

// IncomeAnalysis expresses the composition of a cycle's pay as percentages of gross.
type IncomeAnalysis struct {
	BaseShare        decimal.Decimal
	OvertimeShare    decimal.Decimal
	AllowanceShare   decimal.Decimal
	DeductionRate    decimal.Decimal
	EffectiveTaxRate decimal.Decimal
	NetShare         decimal.Decimal

	// AverageOvertimeRate is overtime income per overtime-rated hour.
	AverageOvertimeRate decimal.Decimal
}

var decimalHundred = decimal.NewFromInt(100)

// AnalyzeSummary computes the composition of a payroll summary. A zero gross yields zero shares.
func AnalyzeSummary(s *domain.PayrollSummary) IncomeAnalysis {
	var a IncomeAnalysis
	if s.TotalOTHours.IsPositive() {
		a.AverageOvertimeRate = s.OTIncome.Div(s.TotalOTHours).Round(0)
	}
	if !s.GrossIncome.IsPositive() {
		return a
	}

	share := func(v decimal.Decimal) decimal.Decimal {
		return v.Div(s.GrossIncome).Mul(decimalHundred).Round(2)
	}
	a.BaseShare = share(s.BaseIncome)
	a.OvertimeShare = share(s.OTIncome)
	a.AllowanceShare = share(s.TotalAllowances)
	a.DeductionRate = share(s.TotalDeductions)
	a.EffectiveTaxRate = share(s.PersonalTax)
	a.NetShare = share(s.NetIncome)
	return a
}
