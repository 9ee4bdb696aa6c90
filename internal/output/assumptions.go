package output

import (
	"fmt"

	"github.com/ympay/payroll-calculator/internal/domain"
)

// DefaultAssumptions lists the default payroll rules rendered in detailed outputs.
var DefaultAssumptions = GenerateAssumptions(domain.DefaultPayrollRules())

// GenerateAssumptions describes the rules a summary was computed with
func GenerateAssumptions(rules domain.PayrollRules) []string {
	ot := rules.Overtime
	ded := rules.Deductions

	cycle := fmt.Sprintf("Pay cycle: day %d of the previous month to day %d of the pay month", rules.Cycle.StartDay, rules.Cycle.StartDay-1)
	if rules.Cycle.StartDay == 1 {
		cycle = "Pay cycle: calendar month"
	}

	return []string{
		cycle,
		fmt.Sprintf("Overtime: ×%s weekday, ×%s Sunday, ×%s holiday (×%s beyond %s hours)",
			ot.OrdinaryMultiplier, ot.SundayMultiplier, ot.HolidayMultiplier, ot.HolidayExtendedMultiplier, ot.HolidayThresholdHours),
		fmt.Sprintf("Night surcharge: +×%s for weekday overtime beyond %s hours", ot.NightSurcharge, ot.NightThresholdHours),
		fmt.Sprintf("Sunday attendance allowance: %s per Sunday worked", FormatCurrency(ot.SundayAllowance)),
		fmt.Sprintf("Mandatory insurance: %s of insurance salary", FormatPercentage(ded.InsuranceRate.Mul(decimalHundred))),
		fmt.Sprintf("Tax relief: %s personal, %s per dependent", FormatCurrency(ded.PersonalRelief), FormatCurrency(ded.DependentRelief)),
		fmt.Sprintf("Personal income tax: %d-step progressive schedule, overtime premium exempt", len(rules.TaxBrackets)),
	}
}
