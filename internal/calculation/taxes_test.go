package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ympay/payroll-calculator/internal/domain"
)

func newTestTaxCalc() *TaxCalculator {
	rules := domain.DefaultPayrollRules()
	return NewTaxCalculator(rules.Deductions, rules.TaxBrackets)
}

func TestProgressiveTax(t *testing.T) {
	calculator := newTestTaxCalc()

	tests := []struct {
		name        string
		taxable     int64
		expectedTax int64
	}{
		{"zero", 0, 0},
		{"negative", -1000000, 0},
		{"first bracket", 4000000, 200000},
		{"first bracket ceiling", 5000000, 250000},
		{"second bracket", 8000000, 550000},
		{"third bracket", 15000000, 1500000},
		{"fourth bracket", 30000000, 4350000},
		{"fifth bracket", 50000000, 9250000},
		{"sixth bracket", 80000000, 18150000},
		{"top bracket", 100000000, 25150000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tax := calculator.ProgressiveTax(decimal.NewFromInt(tt.taxable))
			assert.Equal(t, decimal.NewFromInt(tt.expectedTax).String(), tax.Round(0).String())
		})
	}
}

func TestProgressiveTaxContinuousAtBoundaries(t *testing.T) {
	calculator := newTestTaxCalc()
	for _, b := range calculator.Brackets {
		if b.Unbounded() {
			continue
		}
		below := calculator.ProgressiveTax(b.Ceiling.Sub(decimal.NewFromInt(1)))
		at := calculator.ProgressiveTax(b.Ceiling)
		above := calculator.ProgressiveTax(b.Ceiling.Add(decimal.NewFromInt(1)))

		assert.True(t, at.GreaterThanOrEqual(below), "ceiling %s: %s < %s", b.Ceiling, at, below)
		assert.True(t, above.GreaterThanOrEqual(at), "ceiling %s: %s < %s", b.Ceiling, above, at)
		assert.True(t, above.Sub(below).LessThan(decimal.NewFromInt(1)), "ceiling %s jumps", b.Ceiling)
	}

	assert.Equal(t, "250000", calculator.ProgressiveTax(decimal.NewFromInt(4999999)).Round(0).String())
	assert.Equal(t, "250000", calculator.ProgressiveTax(decimal.NewFromInt(5000000)).Round(0).String())
	assert.Equal(t, "250000", calculator.ProgressiveTax(decimal.NewFromInt(5000001)).Round(0).String())
}

func TestProgressiveTaxNeverNegative(t *testing.T) {
	calculator := NewTaxCalculator(domain.DeductionRules{}, []domain.TaxBracket{
		{Rate: decimal.NewFromFloat(0.1), Subtract: decimal.NewFromInt(1000)},
	})
	assert.True(t, calculator.ProgressiveTax(decimal.NewFromInt(500)).IsZero())
}

func TestProgressiveTaxWithoutOpenBracket(t *testing.T) {
	calculator := NewTaxCalculator(domain.DeductionRules{}, []domain.TaxBracket{
		{Ceiling: decimal.NewFromInt(100), Rate: decimal.NewFromFloat(0.1)},
	})
	assert.Equal(t, "20", calculator.ProgressiveTax(decimal.NewFromInt(200)).String())
	assert.True(t, NewTaxCalculator(domain.DeductionRules{}, nil).ProgressiveTax(decimal.NewFromInt(200)).IsZero())
}

func TestInsuranceDeduction(t *testing.T) {
	calculator := newTestTaxCalc()
	assert.Equal(t, "1050000", calculator.InsuranceDeduction(decimal.NewFromInt(10000000)).String())
	assert.Equal(t, "490088", calculator.InsuranceDeduction(decimal.NewFromInt(4667500)).String())
	assert.True(t, calculator.InsuranceDeduction(decimal.Zero).IsZero())
}

func TestComputeTax(t *testing.T) {
	calculator := newTestTaxCalc()

	tests := []struct {
		name            string
		gross           int64
		insuranceBase   int64
		exempt          int64
		dependents      int
		expectedTaxable int64
		expectedTax     int64
	}{
		{"below relief", 10000000, 10000000, 0, 0, 0, 0},
		{"single no dependents", 25000000, 20000000, 0, 0, 11900000, 1035000},
		{"exempt overtime lowers taxable", 25000000, 20000000, 2000000, 0, 9900000, 740000},
		{"dependents relief", 25000000, 20000000, 0, 1, 7500000, 500000},
		{"negative dependents treated as zero", 25000000, 20000000, 0, -2, 11900000, 1035000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := calculator.Compute(decimal.NewFromInt(tt.gross), decimal.NewFromInt(tt.insuranceBase), decimal.NewFromInt(tt.exempt), tt.dependents)
			assert.Equal(t, decimal.NewFromInt(tt.expectedTaxable).String(), res.TaxableIncome.Round(0).String())
			assert.Equal(t, decimal.NewFromInt(tt.expectedTax).String(), res.PersonalTax.String())
			assert.True(t, res.PersonalTax.GreaterThanOrEqual(decimal.Zero))
		})
	}
}
